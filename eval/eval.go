// Package eval evaluates expr-lang expressions against a tag tree.
//
// The entries of the root compound are visible by name, with compounds as
// maps and lists as slices:
//
//	eval.Match(root, `display.color == 16711680 && len(items) > 2`)
//
// The functions get(path), has(path) and typeof(path) take a dotted path
// (see package kpath) and give the plain value, presence, and variant name
// of the tag found there.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/tagtree/debug"
	"github.com/signadot/tagtree/tag"
	"github.com/signadot/tagtree/tag/kpath"
	"github.com/signadot/tagtree/tagmap"
	"github.com/signadot/tagtree/tagpath"
)

type Env map[string]any

// EnvOf returns the evaluation environment for root.
func EnvOf(root *tag.Tag) (Env, error) {
	if root == nil || root.Type != tag.CompoundType {
		return nil, fmt.Errorf("%w: root is not a compound", tag.ErrInvalidArgument)
	}
	return Env(tagmap.ToAny(root).(map[string]any)), nil
}

// Compile compiles input with the path functions bound to root.
func Compile(root *tag.Tag, input string) (*vm.Program, error) {
	return expr.Compile(input, exprOpts(root)...)
}

// Eval evaluates input against root.
func Eval(root *tag.Tag, input string) (any, error) {
	env, err := EnvOf(root)
	if err != nil {
		return nil, err
	}
	prg, err := Compile(root, input)
	if err != nil {
		return nil, err
	}
	res, err := vm.Run(prg, map[string]any(env))
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("eval: %s => %v\n", input, res)
	}
	return res, nil
}

// Match evaluates input against root, which must give a bool.
func Match(root *tag.Tag, input string) (bool, error) {
	res, err := Eval(root, input)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", tag.ErrTypeMismatch, input, res)
	}
	return b, nil
}

func lookup(root *tag.Tag, params []any) (*tag.Tag, error) {
	s, ok := params[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: path is %T, not string", tag.ErrInvalidArgument, params[0])
	}
	p, err := kpath.Parse(s)
	if err != nil {
		return nil, err
	}
	return tagpath.Get(root, p...)
}

func exprOpts(root *tag.Tag) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			t, err := lookup(root, params)
			if err != nil {
				return nil, err
			}
			return tagmap.ToAny(t), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			t, err := lookup(root, params)
			if err != nil {
				return nil, err
			}
			return t != nil, nil
		},
			new(func(string) bool)),
		expr.Function("typeof", func(params ...any) (any, error) {
			t, err := lookup(root, params)
			if err != nil {
				return nil, err
			}
			if t == nil {
				return "", nil
			}
			return t.Type.String(), nil
		},
			new(func(string) string)),
	}
}
