package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// Summary consumers expect plain JSON numbers for amounts. All amounts
	// are rounded to 2 decimals before they reach a summary, so no precision
	// is lost by emitting them unquoted.
	decimal.MarshalJSONWithoutQuotes = true
}

// Totals holds the overall income/expense/net summary.
// Expense is reported as a positive magnitude; Net = Income - Expense.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// CategorySpend is one category's total expense.
type CategorySpend struct {
	Category string
	Amount   decimal.Decimal
}

// CategorySpendList is spend per category, ordered by descending amount with
// ties in first-appearance order. It marshals to a JSON object that
// preserves that order.
type CategorySpendList []CategorySpend

// MarshalJSON emits the list as an ordered JSON object keyed by category.
func (l CategorySpendList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cs := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cs.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(cs.Amount.String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MonthTotals holds one month bucket's income, expense and net.
type MonthTotals struct {
	Month   string          `json:"-"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlySeries is per-month totals in ascending YYYY-MM order. It marshals
// to a JSON object keyed by month bucket, preserving that order.
type MonthlySeries []MonthTotals

// MarshalJSON emits the series as an ordered JSON object keyed by month.
func (s MonthlySeries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mt := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mt.Month)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		body, err := json.Marshal(struct {
			Income  decimal.Decimal `json:"income"`
			Expense decimal.Decimal `json:"expense"`
			Net     decimal.Decimal `json:"net"`
		}{mt.Income, mt.Expense, mt.Net})
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MerchantSpend is total expense attributed to one raw merchant description.
type MerchantSpend struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// RecurringPayment is a detected recurring charge: the most common raw
// spelling of the merchant, the typical monthly amount (2-decimal), and the
// number of distinct months it recurred in. Recomputed on every analysis
// run; there is no persisted identity.
type RecurringPayment struct {
	Description   string          `json:"description"`
	TypicalAmount decimal.Decimal `json:"typical_amount"`
	MonthCount    int             `json:"month_count"`
}

// BudgetStatus compares one category's current-month spend to its limit.
type BudgetStatus struct {
	Category  string
	Limit     decimal.Decimal `json:"limit"`
	Actual    decimal.Decimal `json:"actual"`
	Remaining decimal.Decimal `json:"remaining"`
}

// BudgetStatusList is per-category budget comparison in budget declaration
// order. It marshals to a JSON object keyed by category.
type BudgetStatusList []BudgetStatus

// MarshalJSON emits the list as an ordered JSON object keyed by category.
func (l BudgetStatusList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, bs := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(bs.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		body, err := json.Marshal(struct {
			Limit     decimal.Decimal `json:"limit"`
			Actual    decimal.Decimal `json:"actual"`
			Remaining decimal.Decimal `json:"remaining"`
		}{bs.Limit, bs.Actual, bs.Remaining})
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BudgetUsage reports how much of one category's monthly limit the
// current-month spend has consumed.
type BudgetUsage struct {
	Category    string          `json:"category"`
	Spent       decimal.Decimal `json:"spent"`
	Limit       decimal.Decimal `json:"limit"`
	PercentUsed decimal.Decimal `json:"percent_used"`
}

// Summary is the composed analysis report. Field names and shapes are the
// stable contract consumed by the text, JSON and CSV renderers.
type Summary struct {
	Totals        Totals             `json:"totals"`
	CategorySpend CategorySpendList  `json:"category_spend"`
	Monthly       MonthlySeries      `json:"monthly"`
	TopMerchants  []MerchantSpend    `json:"top_merchants"`
	Recurring     []RecurringPayment `json:"recurring"`
	BudgetStatus  BudgetStatusList   `json:"budget_status,omitempty"`
	BudgetUsage   []BudgetUsage      `json:"budget_usage"`
}
