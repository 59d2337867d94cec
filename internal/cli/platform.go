// internal/cli/platform.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/pkglist/pkg/platform"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the platform and listing tool availability",
	Long:  `Report the OS, architecture and whether the configured listing tool is on PATH.`,
	Args:  cobra.NoArgs,
	RunE:  runPlatform,
}

func runPlatform(cmd *cobra.Command, args []string) error {
	plat := platform.Detect(config.Command)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Platform: %s/%s\n", plat.OS, plat.Arch)
	if plat.DebianArch != "" {
		fmt.Fprintf(out, "Debian architecture: %s\n", plat.DebianArch)
	}

	fmt.Fprintf(out, "\nListing tool:\n")
	for _, tool := range plat.Available {
		fmt.Fprintf(out, "  ✓ %s\n", tool)
	}
	for _, tool := range plat.Missing {
		fmt.Fprintf(out, "  ✗ %s (not found in PATH)\n", tool)
	}

	if !plat.Supported() {
		return fmt.Errorf("%s cannot list packages on %s", config.Command, plat.OS)
	}

	return nil
}
