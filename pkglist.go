// pkglist.go
package pkglist

import (
	"context"
	"io"
	"log"

	"github.com/arc-language/pkglist/pkg/core"
	"github.com/arc-language/pkglist/pkg/dpkg"
)

// Re-export core types for convenience
type (
	Package     = core.Package
	PackageList = core.PackageList
	Document    = core.Document
	Runner      = dpkg.Runner
)

// Config configures a Manager
type Config struct {
	*core.Config

	// Logger for custom logging (optional)
	Logger *log.Logger

	// Runner replaces the process runner (optional)
	Runner Runner
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{Config: core.DefaultConfig()}
}

// Manager lists installed packages
type Manager struct {
	lister core.Lister
	source string
}

// NewManager creates a manager backed by dpkg
func NewManager(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Config == nil {
		cfg.Config = core.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Op: "configure", Err: err}
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, &Error{Op: "configure", Err: err}
	}

	pm := dpkg.NewPackageManager(&dpkg.Config{
		Command: cfg.Command,
		Args:    cfg.Args,
		Timeout: timeout,
		Debug:   cfg.Debug,
		Logger:  cfg.Logger,
		Runner:  cfg.Runner,
	})

	return &Manager{lister: pm, source: cfg.Command}, nil
}

// Backend returns the name of the listing backend
func (m *Manager) Backend() string {
	return m.lister.Name()
}

// Available reports whether the listing tool is on PATH
func (m *Manager) Available() bool {
	return m.lister.Available()
}

// List runs the listing tool and returns the installed packages
func (m *Manager) List(ctx context.Context) (PackageList, error) {
	packages, err := m.lister.List(ctx)
	if err != nil {
		return nil, &Error{Op: "list", Source: m.source, Err: err}
	}
	return packages, nil
}

// ListFrom parses a captured listing read from r.
// name identifies the capture in errors.
func (m *Manager) ListFrom(r io.Reader, name string) (PackageList, error) {
	packages, err := m.lister.ListFrom(r)
	if err != nil {
		return nil, &Error{Op: "parse", Source: name, Err: err}
	}
	return packages, nil
}

// Marshal encodes packages as the {"packages": [...]} document
func Marshal(packages PackageList) ([]byte, error) {
	return core.Marshal(packages)
}

// OpenListing opens a saved dpkg -l capture; see dpkg.OpenListing
func OpenListing(path string) (io.ReadCloser, error) {
	return dpkg.OpenListing(path)
}
