// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pkglist version %s\n", version)
		fmt.Fprintln(out, "Installed package inventory for Debian-family systems")
		fmt.Fprintln(out, "https://github.com/arc-language/pkglist")
	},
}
