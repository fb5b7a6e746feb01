package store

import (
	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

// MockRuleStore is a mock implementation of RuleStore for testing.
type MockRuleStore struct {
	Rules   []models.CategoryRule
	Budgets []models.BudgetLimit

	// Error flags for testing error conditions
	LoadRulesError   error
	LoadBudgetsError error
}

// LoadRules returns the mock rules.
func (m *MockRuleStore) LoadRules() ([]models.CategoryRule, error) {
	if m.LoadRulesError != nil {
		return nil, m.LoadRulesError
	}
	return models.CloneRules(m.Rules), nil
}

// LoadBudgets returns the mock budgets.
func (m *MockRuleStore) LoadBudgets() ([]models.BudgetLimit, error) {
	if m.LoadBudgetsError != nil {
		return nil, m.LoadBudgetsError
	}
	return m.Budgets, nil
}
