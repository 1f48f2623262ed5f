package format

import (
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	SNBTFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	name, abbrev string
}

var formatInfos = [...]formatInfo{
	SNBTFormat: {"snbt", "s"},
	YAMLFormat: {"yaml", "y"},
	JSONFormat: {"json", "j"},
}

// AllFormats returns every format, SNBT first.
func AllFormats() []Format {
	return []Format{SNBTFormat, YAMLFormat, JSONFormat}
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formatInfos)
}

// ParseFormat accepts a format name or its one letter abbreviation.
func ParseFormat(v string) (Format, error) {
	for _, f := range AllFormats() {
		info := formatInfos[f]
		if v == info.name || v == info.abbrev {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrBadFormat, v, Names())
}

// Names lists the format names as "snbt/s, yaml/y, json/j".
func Names() string {
	parts := make([]string, 0, len(formatInfos))
	for _, f := range AllFormats() {
		parts = append(parts, formatInfos[f].name+"/"+formatInfos[f].abbrev)
	}
	return strings.Join(parts, ", ")
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatInfos[f].name
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formatInfos[f].name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsSNBT() bool { return f == SNBTFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for f, including the dot.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return "." + formatInfos[f].name
}
