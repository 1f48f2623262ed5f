package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/tagtree/encode"
	"github.com/signadot/tagtree/format"
	"github.com/signadot/tagtree/tag"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	f := format.JSONFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	for _, arg := range fileArgs(args) {
		if cfg.Write && arg == "-" {
			return fmt.Errorf("%w: -w needs file arguments", cli.ErrUsage)
		}
		root, err := getTreeFile(cc, arg)
		if err != nil {
			return err
		}
		if !cfg.Write {
			if err := encode.Export(root, cc.Out, f, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error exporting %s as %s: %w", arg, f, err)
			}
			continue
		}
		if err := exportBeside(cfg, root, arg, f); err != nil {
			return err
		}
	}
	return nil
}

// exportBeside writes root next to its input file, replacing the input's
// extension with the suffix of f.
func exportBeside(cfg *ExportConfig, root *tag.Tag, arg string, f format.Format) error {
	out := strings.TrimSuffix(arg, filepath.Ext(arg)) + f.Suffix()
	if out == arg {
		return fmt.Errorf("refusing to overwrite %s", arg)
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := encode.Export(root, w, f, cfg.encOpts(w)...); err != nil {
		w.Close()
		return fmt.Errorf("error exporting %s as %s: %w", arg, f, err)
	}
	return w.Close()
}
