package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Steven-Machin/financial-analyzer/internal/logging"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
	"github.com/Steven-Machin/financial-analyzer/internal/textutils"
)

// recurringGroup accumulates the expense charges seen for one normalized
// merchant key.
type recurringGroup struct {
	amountsByMonth map[string][]decimal.Decimal
	rawCounts      map[string]int
	rawOrder       []string // raw spellings in first-seen order
}

// DetectRecurring finds merchants charged at a consistent amount in at least
// the engine's minimum number of distinct months.
//
// Expenses are grouped by the recurring-profile normalization of their
// description, then by month bucket. Each (merchant, month) pair contributes
// the median of its absolute amounts, which keeps duplicate same-month
// charges from skewing the figure. A group qualifies when enough of its
// monthly medians sit within the tolerance window of their overall median;
// the window is the larger of |median| * tolerance and an absolute $1 floor.
// The reported typical amount is the mean of the accepted month values,
// which smooths outliers the tolerance filter already bounded.
func (e *Engine) DetectRecurring(txns []models.Transaction) []models.RecurringPayment {
	groups := make(map[string]*recurringGroup)
	var groupOrder []string

	for i := range txns {
		if !txns[i].IsExpense() {
			continue
		}
		key := textutils.GroupKey(txns[i].Description)
		g, ok := groups[key]
		if !ok {
			g = &recurringGroup{
				amountsByMonth: make(map[string][]decimal.Decimal),
				rawCounts:      make(map[string]int),
			}
			groups[key] = g
			groupOrder = append(groupOrder, key)
		}
		month := models.MonthKey(txns[i].Date)
		g.amountsByMonth[month] = append(g.amountsByMonth[month], txns[i].Amount.Abs())
		if g.rawCounts[txns[i].Description] == 0 {
			g.rawOrder = append(g.rawOrder, txns[i].Description)
		}
		g.rawCounts[txns[i].Description]++
	}

	var recurring []models.RecurringPayment
	for _, key := range groupOrder {
		g := groups[key]

		months := make([]string, 0, len(g.amountsByMonth))
		for month := range g.amountsByMonth {
			months = append(months, month)
		}
		sort.Strings(months)

		monthAmounts := make([]decimal.Decimal, 0, len(months))
		for _, month := range months {
			if amts := g.amountsByMonth[month]; len(amts) > 0 {
				monthAmounts = append(monthAmounts, median(amts))
			}
		}
		if len(monthAmounts) < e.minMonths {
			continue
		}

		med := median(monthAmounts)
		window := decimal.Max(med.Abs().Mul(e.tolerance), toleranceFloor)

		var accepted []decimal.Decimal
		for _, amt := range monthAmounts {
			if amt.Sub(med).Abs().LessThanOrEqual(window) {
				accepted = append(accepted, amt)
			}
		}
		if len(accepted) < e.minMonths {
			continue
		}

		payment := models.RecurringPayment{
			Description:   g.displayLabel(),
			TypicalAmount: mean(accepted).Round(2),
			MonthCount:    len(monthAmounts),
		}
		recurring = append(recurring, payment)

		e.logger.WithFields(
			logging.Field{Key: logging.FieldMerchant, Value: payment.Description},
			logging.Field{Key: logging.FieldCount, Value: payment.MonthCount},
		).Debug("Detected recurring payment")
	}

	sort.SliceStable(recurring, func(i, j int) bool {
		if recurring[i].MonthCount != recurring[j].MonthCount {
			return recurring[i].MonthCount > recurring[j].MonthCount
		}
		return recurring[i].TypicalAmount.GreaterThan(recurring[j].TypicalAmount)
	})
	return recurring
}

// displayLabel picks the most frequently seen raw spelling of the merchant,
// breaking ties in favor of the spelling seen first.
func (g *recurringGroup) displayLabel() string {
	best := ""
	bestCount := 0
	for _, raw := range g.rawOrder {
		if g.rawCounts[raw] > bestCount {
			best = raw
			bestCount = g.rawCounts[raw]
		}
	}
	return best
}

// median returns the middle value of the amounts; for an even count it is
// the mean of the two middle values. The caller guarantees a non-empty
// slice. Input is not mutated.
func median(amounts []decimal.Decimal) decimal.Decimal {
	sorted := append([]decimal.Decimal(nil), amounts...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}

// mean averages the amounts. The caller guarantees a non-empty slice.
func mean(amounts []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, amt := range amounts {
		sum = sum.Add(amt)
	}
	return sum.Div(decimal.NewFromInt(int64(len(amounts))))
}
