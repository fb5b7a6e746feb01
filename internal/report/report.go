// Package report composes analytics results into a single summary and
// renders it as text, JSON or CSV. The assembly itself carries no business
// logic; its contract is the stable set of field names and shapes consumers
// depend on.
package report

import (
	"github.com/Steven-Machin/financial-analyzer/internal/analytics"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

// BuildSummary runs every analysis over the transaction collection and
// composes the results. The budget sections are only populated when budget
// limits are supplied; budget_usage is always present (possibly empty) for
// shape stability.
func BuildSummary(engine *analytics.Engine, txns []models.Transaction, budgets []models.BudgetLimit) models.Summary {
	summary := models.Summary{
		Totals:        engine.Totals(txns),
		CategorySpend: engine.SpendingByCategory(txns),
		Monthly:       engine.MonthlyTotals(txns),
		TopMerchants:  engine.TopMerchants(txns),
		Recurring:     engine.DetectRecurring(txns),
		BudgetUsage:   engine.BudgetUsage(txns, budgets),
	}
	if len(budgets) > 0 {
		summary.BudgetStatus = engine.BudgetComparison(txns, budgets)
	}

	// JSON consumers expect arrays, not null, for empty sections.
	if summary.CategorySpend == nil {
		summary.CategorySpend = models.CategorySpendList{}
	}
	if summary.Monthly == nil {
		summary.Monthly = models.MonthlySeries{}
	}
	if summary.TopMerchants == nil {
		summary.TopMerchants = []models.MerchantSpend{}
	}
	if summary.Recurring == nil {
		summary.Recurring = []models.RecurringPayment{}
	}
	return summary
}
