// pkg/core/interface.go
package core

import (
	"context"
	"io"
)

// Lister defines the interface for an installed-package source
type Lister interface {
	// Name returns the backend name (e.g., "dpkg")
	Name() string

	// List runs the system listing tool and parses its output
	List(ctx context.Context) (PackageList, error)

	// ListFrom parses a listing that was captured earlier
	ListFrom(r io.Reader) (PackageList, error)

	// Available checks if the listing tool is on PATH
	Available() bool
}
