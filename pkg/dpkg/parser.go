// pkg/dpkg/parser.go
package dpkg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arc-language/pkglist/pkg/core"
)

// ParseList parses the output of dpkg -l.
// Only lines starting with the installed marker produce a package, in the
// order they appear. The first installed line with fewer than three columns
// aborts the parse.
func ParseList(data []byte) (core.PackageList, error) {
	if off := invalidUTF8Offset(data); off >= 0 {
		return nil, &DecodeError{Offset: off}
	}

	packages := core.PackageList{}
	for i, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, StatusInstalled) {
			continue
		}

		pkg, err := parseLine(line)
		if err != nil {
			err.Line = i + 1
			return nil, err
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

// parseLine extracts name and version from a single installed line
func parseLine(line string) (core.Package, *MalformedLineError) {
	cols := splitColumns(line)

	name, ok := cols.token(nameColumn)
	if !ok {
		return core.Package{}, &MalformedLineError{Text: line, Tokens: len(cols)}
	}
	version, ok := cols.token(versionColumn)
	if !ok {
		return core.Package{}, &MalformedLineError{Text: line, Tokens: len(cols)}
	}

	return core.Package{Name: name, Version: version}, nil
}

// columns is a whitespace-normalized listing line split on single spaces
type columns []string

func (c columns) token(i int) (string, bool) {
	if i < 0 || i >= len(c) {
		return "", false
	}
	return c[i], true
}

// splitColumns collapses every whitespace run to one space, then splits on
// single spaces. Trailing whitespace therefore leaves an empty last column.
func splitColumns(line string) columns {
	return strings.Split(normalizeWhitespace(line), " ")
}

func normalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}

	return b.String()
}

// isSpace matches unicode.IsSpace plus the ASCII file, group, record and
// unit separators
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// invalidUTF8Offset returns the byte offset of the first invalid sequence,
// or -1 if data is valid UTF-8
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for off := 0; off < len(data); {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size == 1 {
			return off
		}
		off += size
	}
	return -1
}
