package models

import (
	"github.com/shopspring/decimal"
)

// CategoryRule associates a category name with the lowercase keywords that
// map a transaction description to it. Rule order matters: when the same
// keyword appears under several categories, the earliest-declared category
// claims it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// BudgetLimit is a monthly spending limit for one category.
type BudgetLimit struct {
	Category     string
	MonthlyLimit decimal.Decimal
}

// CloneRules returns a deep copy of a rule set so callers can hand out the
// built-in defaults without sharing mutable state.
func CloneRules(rules []CategoryRule) []CategoryRule {
	out := make([]CategoryRule, len(rules))
	for i, r := range rules {
		out[i] = CategoryRule{
			Name:     r.Name,
			Keywords: append([]string(nil), r.Keywords...),
		}
	}
	return out
}
