package main

import (
	"fmt"

	"github.com/signadot/tagtree/encode"
	"github.com/signadot/tagtree/indexed"
	"github.com/signadot/tagtree/tag"
	"github.com/signadot/tagtree/tagpath"

	"github.com/scott-cotton/cli"
)

func slots(cfg *SlotsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Slots.Parse(cc, args)
	if err != nil {
		cfg.Slots.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: slots requires a tag path and at most one file", cli.ErrUsage)
	}
	if cfg.Capacity < 0 || cfg.Capacity > indexed.MaxCapacity {
		return fmt.Errorf("%w: capacity %d out of range", cli.ErrUsage, cfg.Capacity)
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
	list, err := tagpath.Get(root, path...)
	if err != nil {
		return err
	}
	if list == nil {
		return fmt.Errorf("no tag at %s", path)
	}
	var overflow []*tag.Tag
	items, err := indexed.Read(list, make([]*tag.Tag, cfg.Capacity),
		func(t *tag.Tag) (*tag.Tag, error) { return t, nil },
		func(t *tag.Tag) { overflow = append(overflow, t) })
	if err != nil {
		return err
	}
	for i, item := range items {
		if item == nil {
			fmt.Fprintf(cc.Out, "%d: -\n", i)
			continue
		}
		fmt.Fprintf(cc.Out, "%d: %s\n", i, encode.MustString(item))
	}
	for _, t := range overflow {
		fmt.Fprintf(cc.Out, "overflow: %s\n", encode.MustString(t))
	}
	return nil
}
