package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tagtree/parse"
	"github.com/signadot/tagtree/tag"
	"github.com/signadot/tagtree/tag/kpath"

	"github.com/scott-cotton/cli"
)

func tagtreeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// getTreeFile reads the root compound stored in path, "-" for stdin.
func getTreeFile(cc *cli.Context, path string) (*tag.Tag, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	root, err := parse.ParseCompound(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return root, nil
}

// fileArgs defaults an empty file list to stdin.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func pathArg(arg string) (kpath.Path, error) {
	p, err := kpath.Parse(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, nil
}
