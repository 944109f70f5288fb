package cli

import (
	"fmt"

	"github.com/hightemp/iso3166/country"
	"github.com/hightemp/iso3166/internal/output"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all ISO 3166-1 countries",
		Long: `Prints every assigned country with its alpha-2 code, English short name
and numeric code, ordered by code.

Examples:
  iso3166 list
  iso3166 list --style csv
  iso3166 list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := country.All()

			if opts.cfg.IsJSON() {
				batch := &output.BatchResult{}
				for _, c := range all {
					batch.Results = append(batch.Results, output.NewResult(c.String(), c))
				}
				jsonStr, err := batch.FormatJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
				return nil
			}

			if err := output.RenderTable(cmd.OutOrStdout(), all, style); err != nil {
				return &exitError{code: ExitInvalidInput, msg: err.Error()}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", output.StyleTable, "table style: table, csv, markdown, or html")
	return cmd
}
