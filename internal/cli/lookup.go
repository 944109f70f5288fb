package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hightemp/iso3166/internal/batch"
	"github.com/hightemp/iso3166/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newNameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "name [name]",
		Short: "Look up a country by English short name",
		Long: `Looks up a country by its English short name or a recognized alias.
Names are matched exactly.

Examples:
  iso3166 name Poland
  iso3166 name "Iran (Islamic Republic of)"
  iso3166 name Tanzania`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, batch.ModeName, args)
		},
	}
}

func newNumericCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "numeric [code]",
		Short: "Look up a country by ISO 3166-1 numeric code",
		Long: `Looks up a country by its ISO 3166-1 numeric code.

Examples:
  iso3166 numeric 616
  iso3166 numeric 004`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, batch.ModeNumeric, args)
		},
	}
}

// failureCode returns the exit code for failed lookups in mode.
func failureCode(mode batch.Mode) int {
	if mode == batch.ModeCode {
		return ExitInvalidInput
	}
	return ExitNotFound
}

func runLookup(cmd *cobra.Command, opts *options, mode batch.Mode, args []string) error {
	jsonOutput := opts.cfg.IsJSON()
	w := cmd.OutOrStdout()

	// Check if we have an argument or should read from stdin
	if len(args) == 1 {
		// Single lookup
		return lookupSingle(w, mode, args[0], jsonOutput)
	}

	// Check if stdin is a terminal
	if isTerminal(cmd.InOrStdin()) {
		// stdin is a terminal, show help
		return cmd.Help()
	}

	// Batch mode from stdin
	processor := batch.NewProcessor(mode, opts.cfg.Concurrency)
	failed, err := processor.ProcessInput(cmd.Context(), cmd.InOrStdin(), w, jsonOutput)
	if err != nil {
		return fmt.Errorf("process input: %w", err)
	}
	if failed > 0 {
		return &exitError{code: failureCode(mode)}
	}
	return nil
}

func lookupSingle(w io.Writer, mode batch.Mode, input string, jsonOutput bool) error {
	result := batch.Resolve(mode, input)

	logrus.WithFields(logrus.Fields{
		"mode":  mode,
		"input": input,
		"code":  result.Code.String(),
	}).Debug("Lookup")

	if result.Error != "" && !jsonOutput {
		return &exitError{code: failureCode(mode), msg: result.Error}
	}

	// Output
	if err := printResult(w, result, jsonOutput); err != nil {
		return err
	}
	if result.Error != "" {
		return &exitError{code: failureCode(mode)}
	}
	return nil
}

func printResult(w io.Writer, result *output.Result, jsonOutput bool) error {
	if jsonOutput {
		jsonStr, err := result.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, jsonStr)
		return nil
	}
	fmt.Fprintln(w, result.FormatText())
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
