package categorizer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steven-Machin/financial-analyzer/internal/logging"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCategorize(t *testing.T) {
	rules := []models.CategoryRule{
		{Name: "Dining", Keywords: []string{"coffee", "restaurant"}},
		{Name: "Shopping", Keywords: []string{"coffee", "amazon"}},
		{Name: "Transport", Keywords: []string{"uber", "lyft"}},
	}

	tests := []struct {
		name        string
		description string
		amount      string
		expected    string
	}{
		{
			name:        "first declared category wins on shared keyword",
			description: "Blue Bottle Coffee",
			amount:      "-4.50",
			expected:    "Dining",
		},
		{
			name:        "match is case insensitive",
			description: "UBER *TRIP 12345",
			amount:      "-18.20",
			expected:    "Transport",
		},
		{
			name:        "punctuation in description does not block the match",
			description: "AMAZON.COM*A1B2C3",
			amount:      "-25.00",
			expected:    "Shopping",
		},
		{
			name:        "unmatched positive amount is income",
			description: "ACH CREDIT EMPLOYER",
			amount:      "2500.00",
			expected:    models.CategoryIncome,
		},
		{
			name:        "unmatched negative amount gets the default",
			description: "MYSTERY MERCHANT",
			amount:      "-10.00",
			expected:    models.CategoryOther,
		},
	}

	c := New(rules, "", &logging.MockLogger{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amt, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Categorize(tt.description, amt))
		})
	}
}

func TestNew_KeywordsTrimmedAndLowercased(t *testing.T) {
	rules := []models.CategoryRule{
		{Name: "Groceries", Keywords: []string{"  Whole Foods  ", ""}},
	}
	c := New(rules, "Misc", &logging.MockLogger{})

	assert.Equal(t, "Groceries", c.Categorize("WHOLE FOODS MKT #123", decimal.NewFromInt(-50)))
	assert.Equal(t, "Misc", c.DefaultCategory())
}

func TestNew_RegexMetacharactersInKeywordsAreQuoted(t *testing.T) {
	rules := []models.CategoryRule{
		{Name: "Software", Keywords: []string{"c++ store"}},
	}
	// Must not panic building the fallback pattern.
	c := New(rules, "", &logging.MockLogger{})
	assert.Equal(t, models.CategoryOther, c.Categorize("UNRELATED", decimal.NewFromInt(-5)))
}

func TestApply_SkipsCategorizedAndIsIdempotent(t *testing.T) {
	rules := []models.CategoryRule{
		{Name: "Dining", Keywords: []string{"starbucks"}},
	}
	c := New(rules, "", &logging.MockLogger{})

	txns := []models.Transaction{
		{Date: day("2024-01-05"), Description: "STARBUCKS 123", Amount: decimal.NewFromFloat(-6.30)},
		{Date: day("2024-01-06"), Description: "STARBUCKS 456", Amount: decimal.NewFromFloat(-4.10), Category: "Treats"},
		{Date: day("2024-01-07"), Description: "SOMETHING ELSE", Amount: decimal.NewFromFloat(-9.99)},
	}

	c.Apply(txns)

	assert.Equal(t, "Dining", txns[0].Category)
	assert.Equal(t, "Treats", txns[1].Category, "pre-labeled transactions must be left untouched")
	assert.Equal(t, models.CategoryOther, txns[2].Category)

	// Re-running on already-labeled data is a no-op.
	before := append([]models.Transaction(nil), txns...)
	c.Apply(txns)
	assert.Equal(t, before, txns)
}

func TestApply_ShortKeywordsStayOutOfFallbackPattern(t *testing.T) {
	rules := []models.CategoryRule{
		{Name: "Travel", Keywords: []string{"aa"}},
		{Name: "Subscriptions", Keywords: []string{"netflix"}},
	}
	c := New(rules, "", &logging.MockLogger{})

	// The two-character keyword still matches via the substring pass.
	assert.Equal(t, "Travel", c.Categorize("AA FLIGHT 100", decimal.NewFromInt(-200)))
	require.NotNil(t, c.fallback)
	assert.NotContains(t, c.fallback.String(), "aa|")
}
