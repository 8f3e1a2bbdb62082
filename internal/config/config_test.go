package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, []string{"payroll", "paycheck", "employer", "direct deposit"}, s.IncomeKeywords)
}

func TestLoadSettingsFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "currency: EUR\nincome_keywords: [salary]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, []string{"salary"}, s.IncomeKeywords)
}

func TestLoadSettingsPartialFileNotMerged(t *testing.T) {
	// A present file fully overrides defaults; only the currency fallback
	// applies when the key is absent.
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("income_keywords: [salary]\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, []string{"salary"}, s.IncomeKeywords)
}

func TestLoadSettingsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("currency: [unclosed\n"), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}
