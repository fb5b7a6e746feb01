// Package categorize handles single transaction categorization
package categorize

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Steven-Machin/financial-analyzer/cmd/root"
	"github.com/Steven-Machin/financial-analyzer/internal/categorizer"
	"github.com/Steven-Machin/financial-analyzer/internal/config"
	"github.com/Steven-Machin/financial-analyzer/internal/store"
)

var (
	description string
	amount      string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize resolves the category for a single transaction description
using the configured keyword rules. The amount is optional; positive
amounts without a keyword match fall back to Income.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount (optional)")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	log := root.Log
	cfg := root.Cfg

	s := store.NewYAMLStore(cfg.Files.Rules, cfg.Files.Budgets, log)
	rules, err := s.LoadRules()
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		rules = config.DefaultRules()
	}

	amt := decimal.Zero
	if amount != "" {
		if amt, err = decimal.NewFromString(amount); err != nil {
			return fmt.Errorf("invalid --amount: %w", err)
		}
	}

	cat := categorizer.New(rules, cfg.Categorization.DefaultCategory, log)
	category := cat.Categorize(description, amt)

	fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", category)
	return nil
}
