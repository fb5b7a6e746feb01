package report

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steven-Machin/financial-analyzer/internal/analytics"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{Date: day("2024-01-05"), Description: "PAYROLL", Amount: dec("3000.00"), Category: "Income"},
		{Date: day("2024-01-10"), Description: "WHOLE FOODS", Amount: dec("-120.00"), Category: "Groceries"},
		{Date: day("2024-01-15"), Description: "NETFLIX.COM", Amount: dec("-15.49"), Category: "Subscriptions"},
		{Date: day("2024-02-15"), Description: "NETFLIX.COM", Amount: dec("-15.49"), Category: "Subscriptions"},
		{Date: day("2024-03-15"), Description: "NETFLIX.COM", Amount: dec("-15.49"), Category: "Subscriptions"},
	}
}

func TestBuildSummary(t *testing.T) {
	engine := analytics.NewEngine(analytics.WithAsOf(day("2024-03-20")))
	budgets := []models.BudgetLimit{
		{Category: "Groceries", MonthlyLimit: dec("400")},
	}

	summary := BuildSummary(engine, sampleTransactions(), budgets)

	assert.True(t, summary.Totals.Income.Equal(dec("3000.00")))
	assert.True(t, summary.Totals.Net.Equal(summary.Totals.Income.Sub(summary.Totals.Expense)))
	require.Len(t, summary.CategorySpend, 2)
	assert.Equal(t, "Groceries", summary.CategorySpend[0].Category)
	require.Len(t, summary.Monthly, 3)
	assert.Equal(t, "2024-01", summary.Monthly[0].Month)
	require.Len(t, summary.Recurring, 1)
	assert.Equal(t, "NETFLIX.COM", summary.Recurring[0].Description)
	require.Len(t, summary.BudgetStatus, 1)
	require.Len(t, summary.BudgetUsage, 1)
}

func TestBuildSummary_NoBudgets(t *testing.T) {
	engine := analytics.NewEngine()
	summary := BuildSummary(engine, sampleTransactions(), nil)

	assert.Nil(t, summary.BudgetStatus)
	assert.NotNil(t, summary.BudgetUsage)
	assert.Empty(t, summary.BudgetUsage)
}

func TestBuildSummary_EmptyInput(t *testing.T) {
	engine := analytics.NewEngine()
	summary := BuildSummary(engine, nil, nil)

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	// Empty sections serialize as empty containers, never null.
	s := string(data)
	assert.Contains(t, s, `"category_spend":{}`)
	assert.Contains(t, s, `"monthly":{}`)
	assert.Contains(t, s, `"top_merchants":[]`)
	assert.Contains(t, s, `"recurring":[]`)
	assert.Contains(t, s, `"budget_usage":[]`)
	assert.NotContains(t, s, "budget_status")
}

func TestSummaryJSON_Shape(t *testing.T) {
	engine := analytics.NewEngine(analytics.WithAsOf(day("2024-03-20")))
	budgets := []models.BudgetLimit{
		{Category: "Groceries", MonthlyLimit: dec("400")},
	}
	summary := BuildSummary(engine, sampleTransactions(), budgets)

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"totals", "category_spend", "monthly", "top_merchants", "recurring", "budget_status", "budget_usage"} {
		assert.Contains(t, decoded, key)
	}

	// Amounts serialize as JSON numbers, not strings.
	var totals map[string]float64
	require.NoError(t, json.Unmarshal(decoded["totals"], &totals))
	assert.InDelta(t, 3000.00, totals["income"], 0.001)

	// category_spend is an object keyed by category; highest spend first.
	spend := string(decoded["category_spend"])
	assert.True(t, strings.Index(spend, "Groceries") < strings.Index(spend, "Subscriptions"),
		"category_spend must keep descending order: %s", spend)

	// monthly is an object keyed by ascending YYYY-MM buckets.
	var monthly map[string]map[string]float64
	require.NoError(t, json.Unmarshal(decoded["monthly"], &monthly))
	require.Contains(t, monthly, "2024-01")
	assert.InDelta(t, 3000.00, monthly["2024-01"]["income"], 0.001)
}

func TestFormatText(t *testing.T) {
	engine := analytics.NewEngine(analytics.WithAsOf(day("2024-03-20")))
	budgets := []models.BudgetLimit{
		{Category: "Groceries", MonthlyLimit: dec("400")},
	}
	summary := BuildSummary(engine, sampleTransactions(), budgets)

	text := FormatText(summary)

	assert.Contains(t, text, "=== Personal Finance Summary ===")
	assert.Contains(t, text, "Income:  $3000.00")
	assert.Contains(t, text, "-- Spend by Category --")
	assert.Contains(t, text, "-- Monthly Totals --")
	assert.Contains(t, text, "2024-01 | Inc $3000.00")
	assert.Contains(t, text, "-- Budget Status (Current Month) --")
	assert.Contains(t, text, "-- Top Merchants (Spend) --")
	assert.Contains(t, text, "-- Recurring Payments (Detected) --")
	assert.Contains(t, text, "(3 months)")
}

func TestFormatText_LongDescriptionsTruncated(t *testing.T) {
	long := strings.Repeat("X", 60)
	summary := models.Summary{
		TopMerchants: []models.MerchantSpend{{Description: long, Amount: dec("9.99")}},
	}

	text := FormatText(summary)
	assert.Contains(t, text, strings.Repeat("X", 40))
	assert.NotContains(t, text, strings.Repeat("X", 41))
}

func TestWriteCSV(t *testing.T) {
	engine := analytics.NewEngine(analytics.WithAsOf(day("2024-03-20")))
	budgets := []models.BudgetLimit{
		{Category: "Groceries", MonthlyLimit: dec("400")},
	}
	summary := BuildSummary(engine, sampleTransactions(), budgets)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(summary, &buf))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Section,Item,Metric,Value", lines[0])
	assert.Contains(t, out, "Totals,,Income,3000.00")
	assert.Contains(t, out, "Monthly Totals,2024-01,Net,")
	assert.Contains(t, out, "Recurring Payments,NETFLIX.COM,Months Seen,3")
	assert.Contains(t, out, "Budget Status,Groceries,Limit,400.00")
	assert.Contains(t, out, "Budget Usage,Groceries,Percent Used,")
}

func TestWriteJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/nested/summary.json"
	summary := BuildSummary(analytics.NewEngine(), sampleTransactions(), nil)

	require.NoError(t, WriteJSONFile(summary, path))

	data, err := json.Marshal(summary)
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(written))
}
