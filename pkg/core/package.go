// pkg/core/package.go
package core

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"
)

// Package is a single installed package as reported by the listing tool
type Package struct {
	Name    string `json:"name"`    // Package name
	Version string `json:"version"` // Opaque version string, never parsed
}

// PackageList is an ordered sequence of packages, in the order the tool printed them
type PackageList []Package

// Document is the top-level JSON shape written to stdout
type Document struct {
	Packages PackageList `json:"packages"`
}

// MarshalJSON encodes the document as {"packages": [...]}.
// Separators are ": " and ", ", and runes outside printable ASCII are
// \u-escaped. encoding/json compacts Marshaler output, so callers wanting
// this exact layout go through Marshal.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"packages": [`)
	for i, p := range d.Packages {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(`{"name": `)
		writeString(&buf, p.Name)
		buf.WriteString(`, "version": `)
		writeString(&buf, p.Version)
		buf.WriteByte('}')
	}
	buf.WriteString("]}")
	return buf.Bytes(), nil
}

// Marshal returns the JSON document for list
func Marshal(list PackageList) ([]byte, error) {
	return Document{Packages: list}.MarshalJSON()
}

const hexDigits = "0123456789abcdef"

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			switch {
			case r < 0x20 || (r > 0x7e && r < utf8.RuneSelf):
				writeEscape(buf, r)
			case r < utf8.RuneSelf:
				buf.WriteRune(r)
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				writeEscape(buf, r1)
				writeEscape(buf, r2)
			default:
				writeEscape(buf, r)
			}
		}
	}
	buf.WriteByte('"')
}

func writeEscape(buf *bytes.Buffer, r rune) {
	buf.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		buf.WriteByte(hexDigits[(r>>uint(shift))&0xf])
	}
}

// String returns the apt-style name=version form
func (p Package) String() string {
	return p.Name + "=" + p.Version
}
