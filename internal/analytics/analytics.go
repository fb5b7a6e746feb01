// Package analytics computes financial summaries from a categorized
// transaction collection: income/expense totals, per-category spend, monthly
// trends, top merchants, recurring-payment detection and budget tracking.
// Every computation is a pure function of its input: nothing is cached or
// mutated, so the same transaction set always produces the same summary.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Steven-Machin/financial-analyzer/internal/logging"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

// Tuned defaults for the analysis parameters.
const (
	// DefaultTopMerchants is the number of merchants reported by TopMerchants.
	DefaultTopMerchants = 10

	// DefaultMinMonths is the minimum number of distinct months a merchant
	// must recur in to be reported as a recurring payment.
	DefaultMinMonths = 3
)

// DefaultToleranceRatio is the relative amount tolerance for recurring
// detection. It was tuned together with the absolute floor in
// toleranceFloor; change them as a pair or not at all.
var DefaultToleranceRatio = decimal.NewFromFloat(0.15)

// toleranceFloor is the absolute minimum tolerance window. Without it a
// small recurring charge (a $2/month fee, say) would be rejected on
// cent-level noise that a pure percentage test cannot absorb.
var toleranceFloor = decimal.NewFromInt(1)

// Engine computes analysis results with a fixed set of parameters. The zero
// value is not usable; construct with NewEngine.
type Engine struct {
	topN      int
	minMonths int
	tolerance decimal.Decimal
	asOf      time.Time
	logger    logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTopMerchants sets how many merchants TopMerchants reports.
func WithTopMerchants(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topN = n
		}
	}
}

// WithRecurring sets the recurring-detection parameters: the minimum number
// of qualifying months and the relative amount tolerance.
func WithRecurring(minMonths int, tolerance decimal.Decimal) Option {
	return func(e *Engine) {
		if minMonths > 0 {
			e.minMonths = minMonths
		}
		if tolerance.IsPositive() {
			e.tolerance = tolerance
		}
	}
}

// WithAsOf fixes the reporting date used to resolve the "current month" for
// budget calculations. When unset the engine uses the wall clock.
func WithAsOf(t time.Time) Option {
	return func(e *Engine) {
		e.asOf = t
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine with the given options applied over the
// defaults.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		topN:      DefaultTopMerchants,
		minMonths: DefaultMinMonths,
		tolerance: DefaultToleranceRatio,
		logger:    &logging.MockLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// currentMonth resolves the month bucket budget calculations compare
// against: the configured as-of date, or the wall clock when none was set.
func (e *Engine) currentMonth() string {
	if !e.asOf.IsZero() {
		return models.MonthKey(e.asOf)
	}
	return models.MonthKey(time.Now())
}

// Totals sums income (positive amounts) and expense (negated negative
// amounts) across the collection. Net is income minus expense. Rounding to
// 2 decimals happens only here at the output boundary, never during
// accumulation.
func (e *Engine) Totals(txns []models.Transaction) models.Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for i := range txns {
		switch {
		case txns[i].Amount.IsPositive():
			income = income.Add(txns[i].Amount)
		case txns[i].Amount.IsNegative():
			expense = expense.Sub(txns[i].Amount)
		}
	}
	income = income.Round(2)
	expense = expense.Round(2)
	return models.Totals{
		Income:  income,
		Expense: expense,
		// Derived from the rounded values so net == income - expense holds
		// exactly in the output.
		Net: income.Sub(expense),
	}
}

// SpendingByCategory sums expenses per category, ordered by descending
// total. Ties keep the order in which the categories first appeared in the
// input.
func (e *Engine) SpendingByCategory(txns []models.Transaction) models.CategorySpendList {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for i := range txns {
		if !txns[i].IsExpense() {
			continue
		}
		cat := txns[i].CategoryOrDefault()
		if _, seen := totals[cat]; !seen {
			order = append(order, cat)
		}
		totals[cat] = totals[cat].Sub(txns[i].Amount)
	}

	result := make(models.CategorySpendList, 0, len(order))
	for _, cat := range order {
		result = append(result, models.CategorySpend{Category: cat, Amount: totals[cat]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})
	for i := range result {
		result[i].Amount = result[i].Amount.Round(2)
	}
	return result
}

// MonthlyTotals groups the collection by month bucket and reports income,
// expense and net per bucket in ascending chronological order. Net is
// recomputed from the bucket's income and expense rather than accumulated
// separately, so the three figures cannot drift apart.
func (e *Engine) MonthlyTotals(txns []models.Transaction) models.MonthlySeries {
	type bucket struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for i := range txns {
		key := models.MonthKey(txns[i].Date)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		if txns[i].Amount.IsPositive() {
			b.income = b.income.Add(txns[i].Amount)
		} else {
			b.expense = b.expense.Sub(txns[i].Amount)
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := make(models.MonthlySeries, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		income := b.income.Round(2)
		expense := b.expense.Round(2)
		series = append(series, models.MonthTotals{
			Month:   key,
			Income:  income,
			Expense: expense,
			Net:     income.Sub(expense),
		})
	}
	return series
}

// TopMerchants sums expenses per raw (non-normalized) description and
// returns the top spenders in descending order, truncated to the engine's
// configured count. Ties keep the original relative order.
func (e *Engine) TopMerchants(txns []models.Transaction) []models.MerchantSpend {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for i := range txns {
		if !txns[i].IsExpense() {
			continue
		}
		desc := txns[i].Description
		if _, seen := totals[desc]; !seen {
			order = append(order, desc)
		}
		totals[desc] = totals[desc].Sub(txns[i].Amount)
	}

	ranked := make([]models.MerchantSpend, 0, len(order))
	for _, desc := range order {
		ranked = append(ranked, models.MerchantSpend{Description: desc, Amount: totals[desc]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})
	if len(ranked) > e.topN {
		ranked = ranked[:e.topN]
	}
	for i := range ranked {
		ranked[i].Amount = ranked[i].Amount.Round(2)
	}
	return ranked
}
