package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"s", SNBTFormat},
		{"snbt", SNBTFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got %s", tt.in, got)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s: got %s", f, g)
		}
		if f.Suffix() != "."+string(d) {
			t.Errorf("%s: suffix %s", f, f.Suffix())
		}
	}
	bad := Format(7)
	if _, err := bad.MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if bad.String() != "Format(7)" || bad.Suffix() != "" {
		t.Errorf("invalid format: %s %q", bad, bad.Suffix())
	}
	if Names() != "snbt/s, yaml/y, json/j" {
		t.Error(Names())
	}
}
