package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/budgeteer-dev/budgeteer/internal/config"
	"github.com/budgeteer-dev/budgeteer/internal/rules"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold editable config files and output directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, cmd)
		},
	}
	return cmd
}

func runInit(dir string, cmd *cobra.Command) error {
	for _, d := range []string{"outputs", "plots"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Seed the two config documents from the embedded defaults, but never
	// clobber files the user has already edited.
	seeds := []struct {
		name    string
		content string
	}{
		{"categories.yml", rules.DefaultRules},
		{"config.yml", config.DefaultSettings},
	}
	for _, s := range seeds {
		path := filepath.Join(dir, s.name)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists; refusing to overwrite", path)
		}
		if err := os.WriteFile(path, []byte(s.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", s.name, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized budgeteer project at %s\n", dir)
	return nil
}
