package debug

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

type debug struct {
	Path    bool `env:"TAGTREE_DEBUG_PATH"`
	Indexed bool `env:"TAGTREE_DEBUG_INDEXED"`
	Parse   bool `env:"TAGTREE_DEBUG_PARSE"`
	Query   bool `env:"TAGTREE_DEBUG_QUERY"`
	Diff    bool `env:"TAGTREE_DEBUG_DIFF"`
}

var d *debug

func init() {
	d = &debug{}
	if err := env.Parse(d); err != nil {
		// a malformed flag leaves every flag off
		fmt.Fprintf(os.Stderr, "tagtree: ignoring debug env: %v\n", err)
		d = &debug{}
	}
}

func Path() bool {
	return d.Path
}
func Indexed() bool {
	return d.Indexed
}
func Parse() bool {
	return d.Parse
}
func Query() bool {
	return d.Query
}
func Diff() bool {
	return d.Diff
}
