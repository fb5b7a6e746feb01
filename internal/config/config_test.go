package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Analytics.TopMerchants)
	assert.Equal(t, 3, cfg.Analytics.Recurring.MinMonths)
	assert.InDelta(t, 0.15, cfg.Analytics.Recurring.Tolerance, 0.0001)
	assert.Equal(t, "Other", cfg.Categorization.DefaultCategory)
	assert.Equal(t, "rules.yaml", cfg.Files.Rules)
	assert.Equal(t, "budgets.yaml", cfg.Files.Budgets)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FINANCE_LOG_LEVEL", "debug")
	t.Setenv("FINANCE_ANALYTICS_TOP_MERCHANTS", "5")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Analytics.TopMerchants)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	content := "log:\n  level: warn\nanalytics:\n  recurring:\n    min_months: 4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Analytics.Recurring.MinMonths)
	// Untouched values keep their defaults.
	assert.Equal(t, 10, cfg.Analytics.TopMerchants)
}

func TestInitializeConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "FINANCE_LOG_LEVEL", "verbose"},
		{"bad log format", "FINANCE_LOG_FORMAT", "xml"},
		{"zero top merchants", "FINANCE_ANALYTICS_TOP_MERCHANTS", "0"},
		{"negative min months", "FINANCE_ANALYTICS_RECURRING_MIN_MONTHS", "-1"},
		{"tolerance above one", "FINANCE_ANALYTICS_RECURRING_TOLERANCE", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(tt.key, tt.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	logger := ConfigureLogging("debug", "json")
	assert.Equal(t, "debug", logger.GetLevel().String())

	// Invalid level falls back to info instead of failing.
	logger = ConfigureLogging("bogus", "text")
	assert.Equal(t, "info", logger.GetLevel().String())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FINANCE_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("FINANCE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FINANCE_TEST_MISSING_KEY", "fallback"))
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	require.NotEmpty(t, rules)
	assert.Equal(t, "Income", rules[0].Name)
	assert.Equal(t, models.CategoryOther, rules[len(rules)-1].Name)

	// Mutating the returned copy must not affect later calls.
	rules[0].Keywords[0] = "mutated"
	fresh := DefaultRules()
	assert.Equal(t, "payroll", fresh[0].Keywords[0])
}

// chdirTemp moves the test into an empty directory so stray config files in
// the working tree cannot leak into config loading.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}
