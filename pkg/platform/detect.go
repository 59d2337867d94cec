// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Platform represents the detected system platform
type Platform struct {
	OS         string   // linux, darwin, windows
	Arch       string   // amd64, arm64, 386, arm
	DebianArch string   // amd64, arm64, i386, armhf (empty if unknown)
	Available  []string // Listing tools found on PATH
	Missing    []string // Listing tools not found on PATH
}

// Detect detects the current platform and which of the given listing tools
// are available
func Detect(tools ...string) *Platform {
	p := &Platform{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		DebianArch: DebianArch(runtime.GOARCH),
		Available:  []string{},
		Missing:    []string{},
	}

	for _, tool := range tools {
		if contains(p.Available, tool) || contains(p.Missing, tool) {
			continue
		}
		if CommandExists(tool) {
			p.Available = append(p.Available, tool)
		} else {
			p.Missing = append(p.Missing, tool)
		}
	}

	return p
}

// Supported reports whether the platform can run the listing tool
func (p *Platform) Supported() bool {
	return p.OS == "linux" && len(p.Available) > 0
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, missing: %v)",
		p.OS, p.Arch, p.Available, p.Missing)
}

// DebianArch maps a GOARCH value to the Debian architecture name
func DebianArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "amd64"
	case "386":
		return "i386"
	case "arm64":
		return "arm64"
	case "arm":
		// Default to armhf for ARM 32-bit
		return "armhf"
	case "ppc64le":
		return "ppc64el"
	case "s390x":
		return "s390x"
	case "mips64le":
		return "mips64el"
	case "riscv64":
		return "riscv64"
	default:
		return ""
	}
}
