// Package store provides loading of category rules and budget limits from
// YAML configuration files.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Steven-Machin/financial-analyzer/internal/logging"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

// Default file names looked up in the standard config locations.
const (
	DefaultRulesFile   = "rules.yaml"
	DefaultBudgetsFile = "budgets.yaml"
)

// RuleStore is the interface consumed by the command layer.
type RuleStore interface {
	LoadRules() ([]models.CategoryRule, error)
	LoadBudgets() ([]models.BudgetLimit, error)
}

// YAMLStore loads rules and budgets from YAML files on disk.
type YAMLStore struct {
	RulesFile   string
	BudgetsFile string
	logger      logging.Logger
}

// NewYAMLStore creates a store for the given file names. Empty names fall
// back to the defaults.
func NewYAMLStore(rulesFile, budgetsFile string, logger logging.Logger) *YAMLStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &YAMLStore{
		RulesFile:   rulesFile,
		BudgetsFile: budgetsFile,
		logger:      logger,
	}
}

// ruleFile is the on-disk shape of rules.yaml.
type ruleFile struct {
	Categories []models.CategoryRule `yaml:"categories"`
}

// budgetEntry is the on-disk shape of a single budget. Limits are plain
// YAML numbers and converted to decimals on load.
type budgetEntry struct {
	Category     string  `yaml:"category"`
	MonthlyLimit float64 `yaml:"monthly_limit"`
}

type budgetFile struct {
	Budgets []budgetEntry `yaml:"budgets"`
}

// FindConfigFile looks for a configuration file in standard locations:
// the current directory, ./config/, and ~/.config/finance-analyzer/.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "finance-analyzer", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads category rules from the rules file. A missing file is not
// an error; it returns an empty slice so callers can fall back to built-in
// defaults.
func (s *YAMLStore) LoadRules() ([]models.CategoryRule, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = DefaultRulesFile
	}

	filePath, err := FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, filename).Debug("Rules file not found, using defaults")
			return []models.CategoryRule{}, nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var parsed ruleFile
	if err := yaml.Unmarshal(data, &parsed); err == nil && len(parsed.Categories) > 0 {
		s.logger.WithField(logging.FieldFile, filePath).Debug("Loaded category rules")
		return normalizeRules(parsed.Categories), nil
	}

	// Fallback: a bare list of rules without the top-level key.
	var rules []models.CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}
	return normalizeRules(rules), nil
}

// normalizeRules lowercases and trims keywords so matching never depends on
// how the YAML was written.
func normalizeRules(rules []models.CategoryRule) []models.CategoryRule {
	for i := range rules {
		for j, kw := range rules[i].Keywords {
			rules[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	return rules
}

// LoadBudgets loads budget limits from the budgets file. A missing file is
// not an error; budgets are an optional feature.
func (s *YAMLStore) LoadBudgets() ([]models.BudgetLimit, error) {
	filename := s.BudgetsFile
	if filename == "" {
		filename = DefaultBudgetsFile
	}

	filePath, err := FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, filename).Debug("Budgets file not found")
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving budgets file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading budgets file: %w", err)
	}

	var parsed budgetFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing budgets file %s: %w", filePath, err)
	}

	budgets := make([]models.BudgetLimit, 0, len(parsed.Budgets))
	for _, entry := range parsed.Budgets {
		if entry.Category == "" {
			continue
		}
		budgets = append(budgets, models.BudgetLimit{
			Category:     entry.Category,
			MonthlyLimit: decimal.NewFromFloat(entry.MonthlyLimit),
		})
	}
	s.logger.Debug("Loaded budget limits",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(budgets)})
	return budgets, nil
}
