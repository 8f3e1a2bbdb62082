package commands

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/budgeteer-dev/budgeteer/internal/buildinfo"
)

// NewRootCommand creates the budgeteer CLI. The root command itself runs
// the report pipeline over a transactions CSV; subcommands cover project
// scaffolding.
func NewRootCommand() *cobra.Command {
	var (
		month          string
		categoriesPath string
		settingsPath   string
		invert         bool
		verbose        bool
		outputDir      string
	)

	rootCmd := &cobra.Command{
		Use:     "budgeteer <csv_path>",
		Short:   "Categorize transactions and create monthly reports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.ExactArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), verbose)
			return runReport(reportParams{
				csvPath:        args[0],
				month:          month,
				categoriesPath: categoriesPath,
				settingsPath:   settingsPath,
				invert:         invert,
				outputDir:      outputDir,
				stdout:         cmd.OutOrStdout(),
			}, log)
		},
	}

	rootCmd.Flags().StringVar(&month, "month", "", "YYYY-MM to filter (optional)")
	rootCmd.Flags().StringVar(&categoriesPath, "categories", "categories.yml", "category rules file")
	rootCmd.Flags().StringVar(&settingsPath, "config", "config.yml", "settings file")
	rootCmd.Flags().BoolVar(&invert, "invert", false, "invert amounts if expenses are positive")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", ".", "directory for outputs/ and plots/")

	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// newLogger builds the pipeline logger. Normal runs log warnings only so
// the console output stays at the single summary line.
func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
