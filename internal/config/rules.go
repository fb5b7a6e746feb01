package config

import (
	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

// defaultRules is the built-in keyword rule set, applied when no rules file
// is present. Order matters: earlier categories win when keywords overlap.
var defaultRules = []models.CategoryRule{
	{Name: "Income", Keywords: []string{"payroll", "direct deposit", "salary", "stripe payout", "refund"}},
	{Name: "Rent", Keywords: []string{"apartment", "rent", "landlord"}},
	{Name: "Groceries", Keywords: []string{"whole foods", "trader joe", "kroger", "walmart grocery", "aldi", "heb"}},
	{Name: "Dining", Keywords: []string{"starbucks", "mcdonald", "ubereats", "doordash", "grubhub", "restaurant", "bar"}},
	{Name: "Transport", Keywords: []string{"uber", "lyft", "shell", "exxon", "chevron", "gas", "metro", "transit"}},
	{Name: "Utilities", Keywords: []string{"comcast", "xfinity", "att", "verizon", "electric", "water", "gas co"}},
	{Name: "Subscriptions", Keywords: []string{"netflix", "spotify", "icloud", "google storage", "prime", "hulu"}},
	{Name: "Shopping", Keywords: []string{"amazon", "target", "walmart", "best buy", "ebay"}},
	{Name: "Health", Keywords: []string{"pharmacy", "cvs", "walgreens", "doctor", "dentist", "copay"}},
	{Name: "Entertainment", Keywords: []string{"movie", "theater", "concert", "ticketmaster"}},
	{Name: "Travel", Keywords: []string{"airbnb", "hotel", "delta", "united", "aa", "southwest", "booking"}},
	{Name: "Savings", Keywords: []string{"transfer to savings", "ally", "capital one 360"}},
	{Name: "Fees", Keywords: []string{"fee", "interest charge", "atm fee"}},
	{Name: "Other", Keywords: nil},
}

// DefaultRules returns a copy of the built-in categorization rules.
func DefaultRules() []models.CategoryRule {
	return models.CloneRules(defaultRules)
}
