package main

import (
	"github.com/signadot/tagtree/format"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tagtree").
		WithSynopsis("tagtree [opts] command [opts]").
		WithDescription("tagtree is a tool for working with tagged-value trees in SNBT.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tagtreeMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			RemoveCommand(cfg),
			DiffCommand(cfg),
			EvalCommand(cfg),
			ExportCommand(cfg),
			SlotsCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view tag trees, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the tag at a path of each file").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set <path> <snbt value> [file]").
		WithDescription("set a tag at a path, creating parent compounds, and write the tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RemoveConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("rm").
		WithAliases("remove").
		WithSynopsis("rm <path> [file]").
		WithDescription("remove the tag at a path, pruning emptied parents, and write the tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
	cfg.Remove = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-k key -p path] file1 file2").
		WithDescription("show the differences between two tag trees, exit 1 if any").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithOpts(opts...).
		WithSynopsis("eval [-m] <expr> [files]").
		WithDescription("evaluate an expression against each tree; with -m print the names of matching files").
		WithRun(func(cc *cli.Context, args []string) error {
			return evalCmd(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: " + format.Names(),
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
	})
	cmd := cli.NewCommand("export").
		WithAliases("x").
		WithOpts(opts...).
		WithSynopsis("export [-O format] [-w] [files]").
		WithDescription("write tag trees as json or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}

func SlotsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SlotsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("slots").
		WithOpts(opts...).
		WithSynopsis("slots -n capacity <path> [file]").
		WithDescription("decode the indexed entry list at path into capacity slots, listing overflow").
		WithRun(func(cc *cli.Context, args []string) error {
			return slots(cfg, cc, args)
		})
	cfg.Slots = cmd
	return cmd
}
