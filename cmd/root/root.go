// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"github.com/Steven-Machin/financial-analyzer/internal/config"
	"github.com/Steven-Machin/financial-analyzer/internal/logging"
)

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the resolved application configuration, available to all
	// subcommands after PersistentPreRunE.
	Cfg *config.Config

	// Persistent flag values shared across commands
	LogLevel    string
	RulesFile   string
	BudgetsFile string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-analyzer",
		Short: "Categorize bank statement CSVs and summarize spending.",
		Long: `finance-analyzer reads bank statement CSV exports, assigns categories
to transactions using keyword rules, and produces spending summaries:
totals, per-category and monthly breakdowns, top merchants, recurring
payments and budget tracking.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finance-analyzer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			if LogLevel != "" {
				cfg.Log.Level = LogLevel
			}
			if RulesFile != "" {
				cfg.Files.Rules = RulesFile
			}
			if BudgetsFile != "" {
				cfg.Files.Budgets = BudgetsFile
			}

			Cfg = cfg
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLogging(cfg.Log.Level, cfg.Log.Format))
			return nil
		},
	}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&RulesFile, "rules", "", "Category rules YAML file")
	Cmd.PersistentFlags().StringVar(&BudgetsFile, "budgets", "", "Budget limits YAML file")
}
