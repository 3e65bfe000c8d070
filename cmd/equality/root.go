package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/equality"
)

var (
	verbose  bool
	dataDir  string
	output   string
	patterns []string
	nfc      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "equality",
	Short: "Compile inconsiderate/considerate phrase records into a matcher dataset",
	Long: `equality reads YAML records pairing inconsiderate phrases with considerate
alternatives, validates them and writes one normalized dataset.
Compilation is all-or-nothing: any invalid record or repeated phrase aborts
it before anything is written.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "dir", "d", "", "Directory holding the record files (default: project root or current directory)")
	rootCmd.PersistentFlags().StringVarP(&output, "out", "o", "", "Dataset file; .json, .yml or .yaml (default: patterns.json in the data directory)")
	rootCmd.PersistentFlags().StringSliceVarP(&patterns, "pattern", "p", nil, "Glob selecting record files, relative to the data directory (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&nfc, "nfc", false, "Normalize phrases to Unicode NFC before checking them")
}

// newService resolves the project root, merges .equality.yml with the flags
// (flags win) and builds the compiler service.
func newService(cmd *cobra.Command, extra ...equality.Option) (*equality.Service, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	root, err := equality.FindRoot(wd)
	if err != nil {
		root = wd
	}

	cfg, err := equality.LoadProjectConfig(root)
	if err != nil {
		return nil, err
	}

	dir := wd
	if cfg.Data != "" {
		dir = cfg.Data
	}
	if dataDir != "" {
		dir = dataDir
	}
	slog.Debug("resolved project", "root", root, "data", dir)

	opts := append(cfg.Options(), equality.WithLogger(slog.Default()))
	flags := cmd.Flags()
	if flags.Changed("out") {
		opts = append(opts, equality.WithOutput(output))
	}
	if flags.Changed("pattern") {
		opts = append(opts, equality.WithPatterns(patterns...))
	}
	if flags.Changed("nfc") {
		opts = append(opts, equality.WithUnicodeNormalization(nfc))
	}
	// An explicit data directory must exist; the implicit one may be empty.
	opts = append(opts, equality.WithMustExist(dataDir != "" || cfg.Data != ""))
	opts = append(opts, extra...)

	return equality.New(dir, opts...)
}

// exitCode maps compile failures to distinct exit statuses for scripts.
func exitCode(err error) int {
	switch {
	case errors.Is(err, equality.ErrSchemaViolation):
		return 2
	case errors.Is(err, equality.ErrForbiddenCharacter):
		return 3
	case errors.Is(err, equality.ErrDuplicatePhrase):
		return 4
	default:
		return 1
	}
}

func compileFailed(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(exitCode(err))
}
