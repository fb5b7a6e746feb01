// Package analyze implements the statement analysis command.
package analyze

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Steven-Machin/financial-analyzer/cmd/root"
	"github.com/Steven-Machin/financial-analyzer/internal/analytics"
	"github.com/Steven-Machin/financial-analyzer/internal/categorizer"
	"github.com/Steven-Machin/financial-analyzer/internal/config"
	"github.com/Steven-Machin/financial-analyzer/internal/csvparser"
	"github.com/Steven-Machin/financial-analyzer/internal/dateutils"
	"github.com/Steven-Machin/financial-analyzer/internal/logging"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
	"github.com/Steven-Machin/financial-analyzer/internal/report"
	"github.com/Steven-Machin/financial-analyzer/internal/store"
)

var (
	fromDate        string
	toDate          string
	asOfDate        string
	topMerchants    int
	jsonOutput      string
	csvOutput       string
	categorizedFile string
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze [statement.csv ...]",
	Short: "Categorize statements and print a spending summary",
	Long: `Analyze reads one or more bank statement CSV files, categorizes every
transaction using keyword rules, and prints a summary covering totals,
category spend, monthly totals, top merchants, recurring payments and
budget tracking.`,
	Args: cobra.MinimumNArgs(1),
	RunE: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVar(&fromDate, "from", "", "Only include transactions on or after this date")
	Cmd.Flags().StringVar(&toDate, "to", "", "Only include transactions on or before this date")
	Cmd.Flags().StringVar(&asOfDate, "as-of", "", "Treat this date's month as the current month for budget tracking")
	Cmd.Flags().IntVar(&topMerchants, "top", 0, "Number of top merchants to report")
	Cmd.Flags().StringVar(&jsonOutput, "json", "", "Write the summary as JSON to this file")
	Cmd.Flags().StringVar(&csvOutput, "csv", "", "Write the summary as CSV to this file")
	Cmd.Flags().StringVar(&categorizedFile, "categorized", "", "Write categorized transactions as CSV to this file")
}

func analyzeFunc(cmd *cobra.Command, args []string) error {
	log := root.Log
	cfg := root.Cfg

	txns, err := csvparser.LoadFiles(args, log)
	if err != nil {
		return err
	}

	txns, err = filterByDate(txns, fromDate, toDate)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		log.Warn("No transactions matched the given files and date range")
	}

	rules, budgets, err := loadRulesAndBudgets(cfg, log)
	if err != nil {
		return err
	}

	cat := categorizer.New(rules, cfg.Categorization.DefaultCategory, log)
	cat.Apply(txns)

	if categorizedFile != "" {
		if err := csvparser.WriteTransactionsFile(txns, categorizedFile, log); err != nil {
			return err
		}
	}

	engine, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}
	summary := report.BuildSummary(engine, txns, budgets)

	fmt.Fprint(cmd.OutOrStdout(), report.FormatText(summary))

	if jsonOutput != "" {
		if err := report.WriteJSONFile(summary, jsonOutput); err != nil {
			return err
		}
		log.WithField(logging.FieldOutputFile, jsonOutput).Info("Wrote JSON summary")
	}
	if csvOutput != "" {
		if err := report.WriteCSVFile(summary, csvOutput); err != nil {
			return err
		}
		log.WithField(logging.FieldOutputFile, csvOutput).Info("Wrote CSV summary")
	}
	return nil
}

// loadRulesAndBudgets reads the YAML configuration, falling back to the
// built-in rule set when no rules file exists.
func loadRulesAndBudgets(cfg *config.Config, log logging.Logger) ([]models.CategoryRule, []models.BudgetLimit, error) {
	s := store.NewYAMLStore(cfg.Files.Rules, cfg.Files.Budgets, log)

	rules, err := s.LoadRules()
	if err != nil {
		return nil, nil, err
	}
	if len(rules) == 0 {
		log.Debug("Using built-in category rules")
		rules = config.DefaultRules()
	}

	budgets, err := s.LoadBudgets()
	if err != nil {
		return nil, nil, err
	}
	return rules, budgets, nil
}

func buildEngine(cfg *config.Config, log logging.Logger) (*analytics.Engine, error) {
	top := cfg.Analytics.TopMerchants
	if topMerchants > 0 {
		top = topMerchants
	}

	opts := []analytics.Option{
		analytics.WithTopMerchants(top),
		analytics.WithRecurring(cfg.Analytics.Recurring.MinMonths, decimal.NewFromFloat(cfg.Analytics.Recurring.Tolerance)),
		analytics.WithLogger(log),
	}
	if asOfDate != "" {
		asOf, _, err := dateutils.ParseDate(asOfDate)
		if err != nil {
			return nil, fmt.Errorf("invalid --as-of date: %w", err)
		}
		opts = append(opts, analytics.WithAsOf(asOf))
	}
	return analytics.NewEngine(opts...), nil
}

// filterByDate keeps transactions within the inclusive [from, to] range.
func filterByDate(txns []models.Transaction, from, to string) ([]models.Transaction, error) {
	if from == "" && to == "" {
		return txns, nil
	}

	var fromTime, toTime time.Time
	var err error
	if from != "" {
		if fromTime, _, err = dateutils.ParseDate(from); err != nil {
			return nil, fmt.Errorf("invalid --from date: %w", err)
		}
	}
	if to != "" {
		if toTime, _, err = dateutils.ParseDate(to); err != nil {
			return nil, fmt.Errorf("invalid --to date: %w", err)
		}
	}

	filtered := txns[:0:0]
	for _, tx := range txns {
		if from != "" && tx.Date.Before(fromTime) {
			continue
		}
		if to != "" && tx.Date.After(toTime) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered, nil
}
