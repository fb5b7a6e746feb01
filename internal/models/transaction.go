// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single bank or card transaction. Amounts are
// signed: positive is income/credit, negative is expense/debit. Category is
// the only field the categorization engine mutates; everything else is
// treated as immutable input.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Account     string          `json:"account,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// IsExpense returns true if the transaction is an expense (negative amount).
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome returns true if the transaction is income (positive amount).
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// CategoryOrDefault returns the assigned category, or CategoryOther when the
// transaction has not been categorized.
func (t *Transaction) CategoryOrDefault() string {
	if t.Category == "" {
		return CategoryOther
	}
	return t.Category
}

// AccountOrDefault returns the account label, or AccountUnspecified when the
// transaction carries none.
func (t *Transaction) AccountOrDefault() string {
	if t.Account == "" {
		return AccountUnspecified
	}
	return t.Account
}

// MonthKey returns the YYYY-MM bucket for a date. Two transactions share a
// bucket iff they share calendar year and month.
func MonthKey(d time.Time) string {
	return d.Format("2006-01")
}
