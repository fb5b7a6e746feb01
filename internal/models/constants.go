package models

// Category names with special meaning to the categorization engine.
const (
	// CategoryOther is the fallback category for transactions no rule matches.
	CategoryOther = "Other"

	// CategoryIncome is the reserved category assigned by the income
	// heuristic to unmatched positive-amount transactions.
	CategoryIncome = "Income"
)

// AccountUnspecified is the sentinel account label used when a transaction
// carries no account information.
const AccountUnspecified = "Unspecified"
