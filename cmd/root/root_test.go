package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "finance-analyzer", Cmd.Use)
	assert.Contains(t, Cmd.Short, "Categorize bank statement CSVs")
	assert.NotNil(t, Cmd.Run)
	assert.NotNil(t, Cmd.PersistentPreRunE)
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	Init()

	for _, name := range []string{"log-level", "rules", "budgets"} {
		assert.NotNil(t, Cmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestPersistentPreRun_AppliesFlagOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	LogLevel = "debug"
	RulesFile = "custom-rules.yaml"
	t.Cleanup(func() {
		LogLevel, RulesFile, BudgetsFile = "", "", ""
	})

	require.NoError(t, Cmd.PersistentPreRunE(Cmd, nil))

	require.NotNil(t, Cfg)
	assert.Equal(t, "debug", Cfg.Log.Level)
	assert.Equal(t, "custom-rules.yaml", Cfg.Files.Rules)
	assert.NotNil(t, Log)
}
