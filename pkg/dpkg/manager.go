// pkg/dpkg/manager.go
package dpkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/arc-language/pkglist/pkg/core"
	"github.com/arc-language/pkglist/pkg/platform"
)

// NewPackageManager creates a new dpkg lister
func NewPackageManager(cfg *Config) *PackageManager {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.Command == "" {
		cfg.Command = core.DefaultCommand
	}
	if len(cfg.Args) == 0 && cfg.Command == core.DefaultCommand {
		cfg.Args = append([]string(nil), core.DefaultArgs...)
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[pkglist] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	run := cfg.Runner
	if run == nil {
		run = execRunner
	}

	pm := &PackageManager{
		config: cfg,
		logger: logger,
		run:    run,
	}

	if cfg.Debug {
		pm.logger.Printf("Initialized dpkg PackageManager")
		pm.logger.Printf("  Command: %s %s", cfg.Command, strings.Join(cfg.Args, " "))
		if cfg.Timeout > 0 {
			pm.logger.Printf("  Timeout: %s", cfg.Timeout)
		}
	}

	return pm
}

// Name returns the backend name
func (pm *PackageManager) Name() string {
	return "dpkg"
}

// Available checks if the configured listing tool is on PATH
func (pm *PackageManager) Available() bool {
	return platform.CommandExists(pm.config.Command)
}

// List runs the listing tool and parses its output
func (pm *PackageManager) List(ctx context.Context) (core.PackageList, error) {
	if pm.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pm.config.Timeout)
		defer cancel()
	}

	pm.logger.Printf("Running %s %s", pm.config.Command, strings.Join(pm.config.Args, " "))
	out, err := pm.run(ctx, pm.config.Command, pm.config.Args...)
	if err != nil {
		return nil, pm.commandError(ctx, err)
	}
	pm.logger.Printf("  ✓ Captured %d bytes", len(out))

	return pm.parse(out)
}

// ListFrom parses a listing captured earlier, e.g. from OpenListing
func (pm *PackageManager) ListFrom(r io.Reader) (core.PackageList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}
	pm.logger.Printf("Read %d bytes of listing", len(data))

	return pm.parse(data)
}

func (pm *PackageManager) parse(data []byte) (core.PackageList, error) {
	packages, err := ParseList(data)
	if err != nil {
		return nil, err
	}
	pm.logger.Printf("  ✓ Parsed %d installed packages", len(packages))
	return packages, nil
}

// commandError converts a runner failure into a *CommandError
func (pm *PackageManager) commandError(ctx context.Context, err error) error {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr
	}

	ce := &CommandError{
		Command:  pm.config.Command,
		Args:     pm.config.Args,
		ExitCode: -1,
		Err:      err,
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ce.ExitCode = exitErr.ExitCode()
		ce.Stderr = strings.TrimSpace(string(exitErr.Stderr))
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		ce.Err = fmt.Errorf("%w (%v)", ctxErr, err)
	}

	pm.logger.Printf("  ✗ %s exited with code %d", pm.config.Command, ce.ExitCode)
	return ce
}

// execRunner runs the command and captures stdout. Output waits for the
// process and closes the pipe on both success and failure.
func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}
