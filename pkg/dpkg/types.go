// pkg/dpkg/types.go
package dpkg

import (
	"context"
	"log"
	"time"
)

// Runner executes name with args and returns its captured stdout.
// Implementations must release the stdout pipe before returning.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Config configures the dpkg lister
type Config struct {
	Command string        // Default: dpkg
	Args    []string      // Default: -l --no-pager
	Timeout time.Duration // Zero means no deadline
	Debug   bool          // Enable debug logging
	Logger  *log.Logger   // Custom logger (optional)
	Runner  Runner        // Custom process runner (optional, used by tests)
}

// PackageManager lists installed Debian packages
type PackageManager struct {
	config *Config
	logger *log.Logger
	run    Runner
}
