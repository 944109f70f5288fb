package cli

import (
	"fmt"

	"github.com/hightemp/iso3166/country"
	"github.com/hightemp/iso3166/internal/config"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", config.AppName, Version)
			fmt.Fprintf(w, "  Commit: %s\n", Commit)
			fmt.Fprintf(w, "  Built: %s\n", BuildTime)
			fmt.Fprintf(w, "  Countries: %d\n", country.Count())
			return nil
		},
	}
}
