package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"alaynorm/internal/core/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := version.Info("alaynorm")
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), b)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "alaynorm %s (%s, %s, %s)\n", b.Version, b.Commit, b.Date, b.GoVersion)
			return nil
		},
	}
}
