/*
File    : t/internal/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the focus stack and every operator handler.
// Evaluator.Run walks an ordered list of operators, threading state
// from one to the next — the state is a (Value, focus depth) pair
// rather than a lexical scope, since t has no variables.
package eval

import (
	"fmt"

	"github.com/akashmaji946/t/internal/parser"
	"github.com/akashmaji946/t/internal/value"
)

// Config carries the evaluator knobs that come from CLI flags rather
// than from the program text: `-c` (CSV-aware split/join on comma
// delimiters).
type Config struct {
	CSV bool
}

// Evaluator runs a parsed program against an input Value. It is
// stateless between calls to Run; the interactive shell in
// internal/replsvc builds a fresh Evaluator for each entered line.
type Evaluator struct {
	Config Config
}

// New builds an Evaluator with the given configuration.
func New(cfg Config) *Evaluator {
	return &Evaluator{Config: cfg}
}

// Run executes ops against input in order: `@`/`^` adjust the focus
// depth; `;` is a no-op; every other op is dispatched at the current
// (Value, depth). The first failing op halts evaluation and its index
// is attached to the returned *Error.
func (e *Evaluator) Run(ops []parser.Op, input value.Value) (value.Value, error) {
	v := input
	k := 0
	for i, op := range ops {
		switch op.Kind {
		case parser.KindNoop:
			// contributes nothing to V or k.
		case parser.KindFocusIn:
			k++
		case parser.KindFocusOut:
			if k > 0 {
				k--
			}
		default:
			nv, err := dispatch(op, v, k, e.Config)
			if err != nil {
				return nil, errf(i, "%v", err)
			}
			v = nv
		}
	}
	return v, nil
}

func dispatch(op parser.Op, v value.Value, k int, cfg Config) (value.Value, error) {
	switch op.Kind {
	case parser.KindSplit:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doSplit(sub, k) })
	case parser.KindSplitDelim:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doSplitDelim(sub, op.Delim, cfg) })
	case parser.KindJoin:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doJoin(sub, k, cfg) })
	case parser.KindJoinDelim:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doJoinDelim(sub, op.Delim, cfg) })
	case parser.KindFlatten:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doFlatten(sub) })

	case parser.KindLower:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doLowerUpper(sub, false) })
	case parser.KindUpper:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doLowerUpper(sub, true) })
	case parser.KindTrim:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doTrim(sub) })
	case parser.KindToNumber:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doToNumber(sub) })
	case parser.KindLowerSel:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doSelTransform(sub, op.Sel, selLower) })
	case parser.KindUpperSel:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doSelTransform(sub, op.Sel, selUpper) })
	case parser.KindToNumberSel:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doSelTransform(sub, op.Sel, selToNumber) })
	case parser.KindTrimSel:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doSelTransform(sub, op.Sel, selTrim) })
	case parser.KindReplace:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doReplace(sub, op) })

	case parser.KindFilterMatch:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doFilter(sub, k, op.Pattern, true) })
	case parser.KindFilterNotMatch:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doFilter(sub, k, op.Pattern, false) })
	case parser.KindFilterExtract:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doExtract(sub, k, op.Pattern) })
	case parser.KindCompact:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doCompact(sub) })

	case parser.KindSelection:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return op.Sel.Apply(sub) })
	case parser.KindSortDesc:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doSort(sub, true) })
	case parser.KindSortAsc:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doSort(sub, false) })
	case parser.KindGroup:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doGroup(sub, op.Sel) })
	case parser.KindDedupe:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doDedupe(sub, nil) })
	case parser.KindDedupeSel:
		sel := op.Sel
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doDedupe(sub, &sel) })
	case parser.KindCount:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doCount(sub) })
	case parser.KindSum:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return sumLeaves(sub), nil })
	case parser.KindColumnate:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doColumnate(sub) })
	case parser.KindPartition:
		return applyAtDepth(v, k, func(sub value.Value) (value.Value, error) { return doPartition(sub, op.Sel) })

	default:
		return nil, fmt.Errorf("unhandled op kind %d", op.Kind)
	}
}

// applyAtDepth implements the focus-descent rule common to every op:
// descend k levels along the array spine (each intermediate level must
// be an Array), then call apply independently on each leaf-at-depth-k
// value, rebuilding the tree around the result.
func applyAtDepth(v value.Value, k int, apply func(value.Value) (value.Value, error)) (value.Value, error) {
	if k == 0 {
		return apply(v)
	}
	arr, ok := v.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot descend: not an array")
	}
	out := make([]value.Value, len(arr.Elems))
	for i, e := range arr.Elems {
		r, err := applyAtDepth(e, k-1, apply)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return value.NewArr(out), nil
}

// mapStringLeaves is the shared machinery behind the element-wise
// transforms (l, u, t, n, unary r): it recurses through nested arrays
// below the point it is called at, applying transform to every string
// leaf and leaving every non-string leaf untouched, preserving shape.
func mapStringLeaves(v value.Value, transform func(string) (value.Value, error)) (value.Value, error) {
	switch t := v.(type) {
	case *value.Str:
		return transform(t.S)
	case *value.Arr:
		out := make([]value.Value, len(t.Elems))
		for i, e := range t.Elems {
			r, err := mapStringLeaves(e, transform)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return value.NewArr(out), nil
	default:
		return v, nil
	}
}
