// internal/cli/list.go
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/pkglist"
)

func runList(cmd *cobra.Command, args []string) error {
	cfg := &pkglist.Config{Config: config, Runner: runner}
	if config.Debug {
		cfg.Logger = log.New(cmd.ErrOrStderr(), "[pkglist] ", log.LstdFlags)
	}

	mgr, err := pkglist.NewManager(cfg)
	if err != nil {
		return err
	}

	var packages pkglist.PackageList
	if fromPath != "" {
		packages, err = listFrom(mgr, fromPath)
	} else {
		packages, err = mgr.List(cmd.Context())
	}
	if err != nil {
		return err
	}

	// Render fully before writing so a failure never leaves partial JSON
	data, err := pkglist.Marshal(packages)
	if err != nil {
		return fmt.Errorf("encoding packages: %w", err)
	}
	data = append(data, '\n')

	if output != "" {
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if config.Debug {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d packages to %s\n", len(packages), output)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func listFrom(mgr *pkglist.Manager, path string) (pkglist.PackageList, error) {
	r, err := pkglist.OpenListing(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return mgr.ListFrom(r, path)
}
