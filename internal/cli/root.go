// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hightemp/iso3166/internal/batch"
	"github.com/hightemp/iso3166/internal/config"
	"github.com/hightemp/iso3166/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

// exitError carries a process exit code. The failure has already been
// reported on stdout when msg is empty.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.msg
}

// options holds flag values shared by all commands.
type options struct {
	configPath  string
	logLevel    string
	logFile     string
	jsonOutput  bool
	concurrency int

	cfg *config.Config
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "iso3166 [code]",
		Short: "ISO 3166-1 country codes - convert between alpha-2 codes, names and numeric codes",
		Long: `iso3166 looks up ISO 3166-1 countries by alpha-2 code, English short
name or numeric code.

For single code lookup:
  iso3166 PL

For batch processing (read from stdin):
  cat codes.txt | iso3166

Codes are matched exactly: "pl" is not a valid code. The empty code is the
"unspecified" country.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, batch.ModeCode, args)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "configuration file path")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, or error")
	flags.StringVar(&opts.logFile, "log-file", "", "also write logs to this file (rotated)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	flags.IntVar(&opts.concurrency, "concurrency", config.DefaultConcurrency, "parallel lookups for batch input")

	// Add subcommands
	rootCmd.AddCommand(newNameCmd(opts))
	rootCmd.AddCommand(newNumericCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the configuration file, applies flag overrides and configures logging.
func (o *options) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	cfg, err := config.Load(o.configPath, flags.Changed("config"))
	if err != nil {
		return &exitError{code: ExitInvalidInput, msg: err.Error()}
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if flags.Changed("json") {
		cfg.Format = config.FormatText
		if o.jsonOutput {
			cfg.Format = config.FormatJSON
		}
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if err := cfg.Validate(); err != nil {
		return &exitError{code: ExitInvalidInput, msg: err.Error()}
	}

	rotation := logger.LogRotationConfig{
		MaxSizeMB:  config.DefaultLogMaxSizeMB,
		MaxBackups: config.DefaultLogMaxBackups,
		MaxAgeDays: config.DefaultLogMaxAgeDays,
	}
	if err := logger.SetupWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFile, rotation); err != nil {
		return &exitError{code: ExitInvalidInput, msg: err.Error()}
	}

	logrus.WithFields(logrus.Fields{
		"config":      o.configPath,
		"format":      cfg.Format,
		"concurrency": cfg.Concurrency,
	}).Debug("Configuration loaded")

	o.cfg = cfg
	return nil
}

// Execute runs the root command and exits with the matching exit code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command tree with the given arguments and streams and
// returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	logger.Close()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.msg != "" {
			fmt.Fprintln(stderr, "Error:", exitErr.msg)
		}
		return exitErr.code
	}

	fmt.Fprintln(stderr, "Error:", err)
	return ExitFailure
}
