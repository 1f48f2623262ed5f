package main

import (
	"fmt"

	"github.com/signadot/tagtree/libdiff"
	"github.com/signadot/tagtree/tagpath"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getTreeFile(cc, args[0])
	if err != nil {
		return err
	}
	b, err := getTreeFile(cc, args[1])
	if err != nil {
		return err
	}
	var changes []libdiff.Change
	if cfg.Key == "" {
		changes = libdiff.Diff(a, b)
	} else {
		if cfg.Path == "" {
			return fmt.Errorf("%w: -k requires -p", cli.ErrUsage)
		}
		path, err := pathArg(cfg.Path)
		if err != nil {
			return err
		}
		la, err := tagpath.Get(a, path...)
		if err != nil {
			return err
		}
		lb, err := tagpath.Get(b, path...)
		if err != nil {
			return err
		}
		changes, err = libdiff.DiffByKey(la, lb, cfg.Key)
		if err != nil {
			return fmt.Errorf("error diffing %s by %s: %w", path, cfg.Key, err)
		}
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(cc.Out, c.String()); err != nil {
			return err
		}
	}
	if len(changes) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
