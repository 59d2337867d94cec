// pkg/dpkg/constants.go
package dpkg

const (
	// StatusInstalled is the desired=install, status=installed marker dpkg -l
	// prints in the first two columns
	StatusInstalled = "ii"

	// Column positions after whitespace normalization
	nameColumn    = 1
	versionColumn = 2
	minColumns    = versionColumn + 1
)
