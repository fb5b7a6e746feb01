package report

import (
	"fmt"
	"strings"

	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

// maxDescriptionWidth bounds merchant descriptions in the text report.
const maxDescriptionWidth = 40

// FormatText renders the summary as a human-readable report.
func FormatText(summary models.Summary) string {
	var b strings.Builder

	b.WriteString("=== Personal Finance Summary ===\n")
	fmt.Fprintf(&b, "Income:  $%s\n", summary.Totals.Income.StringFixed(2))
	fmt.Fprintf(&b, "Expense: $%s\n", summary.Totals.Expense.StringFixed(2))
	fmt.Fprintf(&b, "Net:     $%s\n", summary.Totals.Net.StringFixed(2))
	b.WriteString("\n")

	b.WriteString("-- Spend by Category --\n")
	for _, cs := range summary.CategorySpend {
		fmt.Fprintf(&b, "%-15s $%s\n", cs.Category, cs.Amount.StringFixed(2))
	}
	b.WriteString("\n")

	b.WriteString("-- Monthly Totals --\n")
	for _, mt := range summary.Monthly {
		fmt.Fprintf(&b, "%s | Inc $%s  Exp $%s  Net $%s\n",
			mt.Month,
			mt.Income.StringFixed(2),
			mt.Expense.StringFixed(2),
			mt.Net.StringFixed(2))
	}
	b.WriteString("\n")

	if len(summary.BudgetStatus) > 0 {
		b.WriteString("-- Budget Status (Current Month) --\n")
		for _, bs := range summary.BudgetStatus {
			fmt.Fprintf(&b, "%-15s Limit $%s  Actual $%s  Remaining $%s\n",
				bs.Category,
				bs.Limit.StringFixed(2),
				bs.Actual.StringFixed(2),
				bs.Remaining.StringFixed(2))
		}
		b.WriteString("\n")
	}

	if len(summary.BudgetUsage) > 0 {
		b.WriteString("-- Budget Usage (Current Month) --\n")
		for _, bu := range summary.BudgetUsage {
			fmt.Fprintf(&b, "%-15s Spent $%s of $%s (%s%%)\n",
				bu.Category,
				bu.Spent.StringFixed(2),
				bu.Limit.StringFixed(2),
				bu.PercentUsed.StringFixed(2))
		}
		b.WriteString("\n")
	}

	b.WriteString("-- Top Merchants (Spend) --\n")
	for _, ms := range summary.TopMerchants {
		fmt.Fprintf(&b, "%-40s $%s\n", truncate(ms.Description, maxDescriptionWidth), ms.Amount.StringFixed(2))
	}
	b.WriteString("\n")

	b.WriteString("-- Recurring Payments (Detected) --\n")
	for _, rp := range summary.Recurring {
		fmt.Fprintf(&b, "%-40s $%s  (%d months)\n",
			truncate(rp.Description, maxDescriptionWidth),
			rp.TypicalAmount.StringFixed(2),
			rp.MonthCount)
	}

	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
