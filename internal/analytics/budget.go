package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

var hundred = decimal.NewFromInt(100)

// currentMonthSpend sums expenses per category restricted to the engine's
// current reporting month.
func (e *Engine) currentMonthSpend(txns []models.Transaction) map[string]decimal.Decimal {
	current := e.currentMonth()
	spend := make(map[string]decimal.Decimal)
	for i := range txns {
		if !txns[i].IsExpense() {
			continue
		}
		if models.MonthKey(txns[i].Date) != current {
			continue
		}
		cat := txns[i].CategoryOrDefault()
		spend[cat] = spend[cat].Sub(txns[i].Amount)
	}
	return spend
}

// BudgetComparison compares current-month spend against each configured
// monthly limit. Results follow budget declaration order.
func (e *Engine) BudgetComparison(txns []models.Transaction, budgets []models.BudgetLimit) models.BudgetStatusList {
	if len(budgets) == 0 {
		return nil
	}
	spend := e.currentMonthSpend(txns)

	result := make(models.BudgetStatusList, 0, len(budgets))
	for _, b := range budgets {
		limit := b.MonthlyLimit.Round(2)
		actual := spend[b.Category].Round(2)
		result = append(result, models.BudgetStatus{
			Category:  b.Category,
			Limit:     limit,
			Actual:    actual,
			Remaining: limit.Sub(actual),
		})
	}
	return result
}

// BudgetUsage reports the percentage of each configured monthly limit
// consumed by current-month spend. A zero limit is special-cased instead of
// dividing: any spend against it reads as 100% used, no spend as 0%.
func (e *Engine) BudgetUsage(txns []models.Transaction, budgets []models.BudgetLimit) []models.BudgetUsage {
	if len(budgets) == 0 {
		return []models.BudgetUsage{}
	}
	spend := e.currentMonthSpend(txns)

	usage := make([]models.BudgetUsage, 0, len(budgets))
	for _, b := range budgets {
		limit := b.MonthlyLimit.Round(2)
		spent := spend[b.Category].Round(2)

		var percent decimal.Decimal
		if limit.IsPositive() {
			percent = spent.Div(limit).Mul(hundred).Round(2)
		} else if spent.IsPositive() {
			percent = hundred
		} else {
			percent = decimal.Zero
		}

		usage = append(usage, models.BudgetUsage{
			Category:    b.Category,
			Spent:       spent,
			Limit:       limit,
			PercentUsed: percent,
		})
	}
	return usage
}
