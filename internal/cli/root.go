// internal/cli/root.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/pkglist"
	"github.com/arc-language/pkglist/pkg/core"
)

const version = "0.1.0"

var (
	cfgFile  string
	debug    bool
	fromPath string
	output   string
	timeout  string
	config   *core.Config

	// runner replaces the process runner when set; tests use it to fake dpkg
	runner pkglist.Runner
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pkglist",
	Short: "List installed Debian packages as JSON",
	Long: `pkglist - installed package inventory

Runs dpkg -l, keeps the fully installed ("ii") packages and prints
{"packages": [{"name": ..., "version": ...}, ...]} on stdout.

Examples:
  pkglist
  pkglist --output packages.json
  pkglist --from dpkg-l.txt.xz
  dpkg -l | pkglist --from -`,
	Version:           version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runList,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pkglist/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&timeout, "timeout", "", "abort the listing tool after this duration (e.g. 30s)")

	rootCmd.Flags().StringVar(&fromPath, "from", "", "parse a saved dpkg -l capture (.xz and .gz supported, - for stdin)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: stdout)")

	// Add commands
	rootCmd.AddCommand(platformCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	if timeout != "" {
		config.Timeout = timeout
	}

	return config.Validate()
}
