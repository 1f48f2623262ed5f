package main

import (
	"fmt"

	"github.com/signadot/tagtree/encode"
	"github.com/signadot/tagtree/eval"
	"github.com/signadot/tagtree/tagmap"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	input := args[0]
	for _, arg := range fileArgs(args[1:]) {
		root, err := getTreeFile(cc, arg)
		if err != nil {
			return err
		}
		if cfg.Match {
			ok, err := eval.Match(root, input)
			if err != nil {
				return fmt.Errorf("error evaluating on %s: %w", arg, err)
			}
			if ok {
				fmt.Fprintln(cc.Out, arg)
			}
			continue
		}
		res, err := eval.Eval(root, input)
		if err != nil {
			return fmt.Errorf("error evaluating on %s: %w", arg, err)
		}
		t, err := tagmap.ToTag(res)
		if err != nil {
			// results with no tag form print as Go values
			fmt.Fprintf(cc.Out, "%v\n", res)
			continue
		}
		if err := encode.Encode(t, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
