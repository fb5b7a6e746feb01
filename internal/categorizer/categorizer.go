// Package categorizer assigns categories to transactions using keyword rules
// with heuristic fallbacks:
// 1. Substring scan of rule keywords over the normalized description
// 2. A single compiled regex alternation over longer keywords
// 3. An income heuristic for unmatched positive amounts
// Unmatched transactions always receive the default category, so
// categorization cannot fail on well-formed input.
package categorizer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Steven-Machin/financial-analyzer/internal/logging"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
	"github.com/Steven-Machin/financial-analyzer/internal/textutils"
)

// fallbackKeywordLen is the keyword length threshold for the regex fallback.
// Keywords of this many characters or fewer stay out of the combined
// alternation, which keeps the pattern from exploding on many short keys.
const fallbackKeywordLen = 2

// Categorizer resolves transaction descriptions to categories using a
// flattened keyword lookup built from an ordered rule set.
type Categorizer struct {
	keywords        []string          // declaration order, first occurrence only
	byKeyword       map[string]string // keyword -> category
	fallback        *regexp.Regexp    // alternation over keywords longer than fallbackKeywordLen
	defaultCategory string
	logger          logging.Logger
}

// New builds a Categorizer from an ordered rule set. Keywords are trimmed
// and lowercased; when the same keyword is declared under multiple
// categories the earliest-declared category wins. defaultCategory falls back
// to models.CategoryOther when empty.
func New(rules []models.CategoryRule, defaultCategory string, logger logging.Logger) *Categorizer {
	if defaultCategory == "" {
		defaultCategory = models.CategoryOther
	}
	if logger == nil {
		logger = &logging.MockLogger{}
	}

	c := &Categorizer{
		byKeyword:       make(map[string]string),
		defaultCategory: defaultCategory,
		logger:          logger,
	}

	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if _, seen := c.byKeyword[kw]; seen {
				continue // first-wins
			}
			c.byKeyword[kw] = rule.Name
			c.keywords = append(c.keywords, kw)
		}
	}

	var tokens []string
	for _, kw := range c.keywords {
		if len(kw) > fallbackKeywordLen {
			tokens = append(tokens, regexp.QuoteMeta(kw))
		}
	}
	if len(tokens) > 0 {
		c.fallback = regexp.MustCompile("(" + strings.Join(tokens, "|") + ")")
	}

	return c
}

// Apply categorizes every uncategorized transaction in place. Transactions
// that already carry a category are left untouched, so re-running Apply on
// labeled data is a no-op.
func (c *Categorizer) Apply(txns []models.Transaction) {
	categorized := 0
	for i := range txns {
		if txns[i].Category != "" {
			continue
		}
		txns[i].Category = c.Categorize(txns[i].Description, txns[i].Amount)
		categorized++
	}
	c.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: categorized},
	).Debug("Applied keyword categorization")
}

// Categorize resolves a single description/amount pair to a category.
func (c *Categorizer) Categorize(description string, amount decimal.Decimal) string {
	norm := textutils.Normalize(description)

	// Exact keyword containment, declaration order.
	for _, kw := range c.keywords {
		if strings.Contains(norm, kw) {
			c.logger.WithFields(
				logging.Field{Key: logging.FieldKeyword, Value: kw},
				logging.Field{Key: logging.FieldCategory, Value: c.byKeyword[kw]},
			).Debug("Matched keyword")
			return c.byKeyword[kw]
		}
	}

	// Regex fallback to catch tokenized descriptions.
	if c.fallback != nil {
		if token := c.fallback.FindString(norm); token != "" {
			if cat, ok := c.byKeyword[token]; ok {
				c.logger.WithFields(
					logging.Field{Key: logging.FieldKeyword, Value: token},
					logging.Field{Key: logging.FieldCategory, Value: cat},
				).Debug("Matched keyword via fallback pattern")
				return cat
			}
		}
	}

	// Income heuristic: positive amounts without an explicit match.
	if amount.IsPositive() {
		return models.CategoryIncome
	}

	return c.defaultCategory
}

// DefaultCategory returns the category assigned when nothing matches.
func (c *Categorizer) DefaultCategory() string {
	return c.defaultCategory
}
