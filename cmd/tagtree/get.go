package main

import (
	"fmt"

	"github.com/signadot/tagtree/encode"
	"github.com/signadot/tagtree/parse"
	"github.com/signadot/tagtree/tagpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a tag path", cli.ErrUsage)
	}
	path, err := pathArg(args[0])
	if err != nil {
		return err
	}
	for _, arg := range fileArgs(args[1:]) {
		root, err := getTreeFile(cc, arg)
		if err != nil {
			return err
		}
		res, err := tagpath.Get(root, path...)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, arg, err)
		}
		if res == nil {
			// absent paths print nothing
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a tag path, a value and at most one file", cli.ErrUsage)
	}
	path, err := pathArg(args[0])
	if err != nil {
		return err
	}
	val, err := parse.Parse([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("%w: bad value: %w", cli.ErrUsage, err)
	}
	file := "-"
	if len(args) == 3 {
		file = args[2]
	}
	root, err := getTreeFile(cc, file)
	if err != nil {
		return err
	}
	if err := tagpath.Set(root, val, path...); err != nil {
		return err
	}
	return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...)
}

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		cfg.Remove.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: rm requires a tag path and at most one file", cli.ErrUsage)
	}
	path, err := pathArg(args[0])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	root, err := getTreeFile(cc, file)
	if err != nil {
		return err
	}
	if err := tagpath.Remove(root, path...); err != nil {
		return err
	}
	return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...)
}
