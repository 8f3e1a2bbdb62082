package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSettings is the embedded settings document used when no config
// file exists on disk.
const DefaultSettings = `currency: USD
income_keywords: [payroll, paycheck, employer, direct deposit]
`

// Settings represents the top-level config.yml document.
type Settings struct {
	Currency string `yaml:"currency"`

	// IncomeKeywords is parsed for forward compatibility but not consulted
	// anywhere: income/expense classification goes by amount sign.
	IncomeKeywords []string `yaml:"income_keywords"`
}

// LoadSettings reads settings from path. A missing file falls back to the
// embedded defaults; a present file fully overrides them (no merging).
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data = []byte(DefaultSettings)
	} else if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if s.Currency == "" {
		s.Currency = "USD"
	}
	return s, nil
}
