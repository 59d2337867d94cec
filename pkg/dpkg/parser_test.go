package dpkg

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/arc-language/pkglist/pkg/core"
)

const sampleListing = `Desired=Unknown/Install/Remove/Purge/Hold
| Status=Not/Inst/Conf-files/Unpacked/halF-conf/Half-inst/trig-aWait/Trig-pend
|/ Err?=(none)/Reinst-required (Status,Err: uppercase=bad)
||/ Name           Version           Architecture Description
+++-==============-=================-============-=================================
ii  adduser        3.134             all          add and remove users and groups
ii  bash          5.1-6ubuntu1      amd64  bourne shell
rc  old-package    1.0              amd64  removed config
iU  half-done      2.0-1             amd64        unpacked only
ii  libc6:amd64    2.36-9+deb12u4    amd64        GNU C Library: Shared libraries
hi  held           0.9               all          held back
`

func TestParseList(t *testing.T) {
	got, err := ParseList([]byte(sampleListing))
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}

	want := core.PackageList{
		{Name: "adduser", Version: "3.134"},
		{Name: "bash", Version: "5.1-6ubuntu1"},
		{Name: "libc6:amd64", Version: "2.36-9+deb12u4"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseList() =\n  %v\nwant\n  %v", got, want)
	}
}

func TestParseList_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  core.PackageList
	}{
		{
			"installed line",
			"ii  bash          5.1-6ubuntu1      amd64  bourne shell",
			core.PackageList{{Name: "bash", Version: "5.1-6ubuntu1"}},
		},
		{
			"removed config line",
			"rc  old-package    1.0              amd64  removed config",
			core.PackageList{},
		},
		{
			"header only",
			"Desired=Unknown/Install/Remove/Purge/Hold\n||/ Name Version Architecture Description\n",
			core.PackageList{},
		},
		{"empty output", "", core.PackageList{}},
		{
			"prefix must start the line",
			" ii  bash 5.1 amd64\nhii bash 5.1\nIi bash 5.1\n",
			core.PackageList{},
		},
		{
			"marker glued to name",
			"iifoo bar baz\n",
			core.PackageList{{Name: "bar", Version: "baz"}},
		},
		{
			"tabs and crlf",
			"ii\tzlib1g\t\t1:1.2.13.dfsg-1\tamd64\r\n",
			core.PackageList{{Name: "zlib1g", Version: "1:1.2.13.dfsg-1"}},
		},
		{
			"trailing whitespace leaves empty version",
			"ii  tiny   \n",
			core.PackageList{{Name: "tiny", Version: ""}},
		},
		{
			"duplicates pass through",
			"ii a 1\nii a 1\n",
			core.PackageList{{Name: "a", Version: "1"}, {Name: "a", Version: "1"}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseList([]byte(c.input))
			if err != nil {
				t.Fatalf("ParseList failed: %v", err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseList_WhitespaceNormalizationIdempotent(t *testing.T) {
	separators := []string{" ", "  ", "\t", " \t ", " ", "          "}
	for _, sep := range separators {
		line := strings.Join([]string{"ii", "bash", "5.1-6ubuntu1", "amd64", "shell"}, sep)
		got, err := ParseList([]byte(line))
		if err != nil {
			t.Fatalf("separator %q: %v", sep, err)
		}
		want := core.PackageList{{Name: "bash", Version: "5.1-6ubuntu1"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("separator %q: got %v", sep, got)
		}

		once := normalizeWhitespace(line)
		if twice := normalizeWhitespace(once); twice != once {
			t.Errorf("normalizeWhitespace not idempotent: %q -> %q", once, twice)
		}
	}
}

func TestParseList_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		line   int
		tokens int
	}{
		{"marker only", "ii\n", 1, 1},
		{"name without version", "header\nii  bash\n", 2, 2},
		{"marker and whitespace", "ii a 1\nii   \t\n", 2, 2},
		{"stops at first", "ii ok 1\nii bad\nii\n", 2, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseList([]byte(c.input))
			if err == nil {
				t.Fatalf("expected error, got %v", got)
			}
			if got != nil {
				t.Errorf("expected no partial result, got %v", got)
			}
			if !errors.Is(err, ErrMalformedLine) {
				t.Errorf("expected ErrMalformedLine, got %v", err)
			}

			var mle *MalformedLineError
			if !errors.As(err, &mle) {
				t.Fatalf("expected *MalformedLineError, got %T", err)
			}
			if mle.Line != c.line || mle.Tokens != c.tokens {
				t.Errorf("got line %d tokens %d, want line %d tokens %d", mle.Line, mle.Tokens, c.line, c.tokens)
			}
		})
	}
}

func TestParseList_InvalidUTF8(t *testing.T) {
	data := []byte("ii  ok 1.0\nii  bad\xff\xfe 1.0\n")

	_, err := ParseList(data)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if want := strings.Index(string(data), "\xff"); de.Offset != want {
		t.Errorf("expected offset %d, got %d", want, de.Offset)
	}
}

func TestInvalidUTF8Offset(t *testing.T) {
	cases := []struct {
		input []byte
		want  int
	}{
		{[]byte("plain"), -1},
		{[]byte("café"), -1},
		{[]byte{0x80}, 0},
		{[]byte{'a', 'b', 0xc3}, 2},
	}
	for _, c := range cases {
		if got := invalidUTF8Offset(c.input); got != c.want {
			t.Errorf("invalidUTF8Offset(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestColumnsToken(t *testing.T) {
	cols := splitColumns("ii  bash   5.1")
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d: %q", len(cols), cols)
	}
	if v, ok := cols.token(2); !ok || v != "5.1" {
		t.Errorf("token(2) = %q, %v", v, ok)
	}
	if _, ok := cols.token(3); ok {
		t.Error("token(3) should be out of range")
	}
	if _, ok := cols.token(-1); ok {
		t.Error("token(-1) should be out of range")
	}
}
