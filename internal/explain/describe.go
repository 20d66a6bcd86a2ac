/*
File    : t/internal/explain/describe.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package explain

import (
	"fmt"

	"github.com/akashmaji946/t/internal/parser"
)

// shortForm reconstructs a short token for op, the way a parse-tree
// dump echoes the operator rather than narrating it.
func shortForm(op parser.Op) string {
	switch op.Kind {
	case parser.KindNoop:
		return "; (noop)"
	case parser.KindFocusIn:
		return "@"
	case parser.KindFocusOut:
		return "^"
	case parser.KindSplit:
		return "s"
	case parser.KindSplitDelim:
		return fmt.Sprintf("S%q", op.Delim)
	case parser.KindJoin:
		return "j"
	case parser.KindJoinDelim:
		return fmt.Sprintf("J%q", op.Delim)
	case parser.KindFlatten:
		return "f"
	case parser.KindLower:
		return "l"
	case parser.KindUpper:
		return "u"
	case parser.KindTrim:
		return "t"
	case parser.KindToNumber:
		return "n"
	case parser.KindLowerSel:
		return "L<sel>"
	case parser.KindUpperSel:
		return "U<sel>"
	case parser.KindToNumberSel:
		return "N<sel>"
	case parser.KindTrimSel:
		return "T<sel>"
	case parser.KindReplace:
		return fmt.Sprintf("r/%s/%s/", op.PatternSrc, op.Replacement)
	case parser.KindFilterMatch:
		return fmt.Sprintf("/%s/", op.PatternSrc)
	case parser.KindFilterNotMatch:
		return fmt.Sprintf("!/%s/", op.PatternSrc)
	case parser.KindFilterExtract:
		return fmt.Sprintf("m/%s/", op.PatternSrc)
	case parser.KindCompact:
		return "x"
	case parser.KindSelection:
		return "[sel]"
	case parser.KindSortDesc:
		return "o"
	case parser.KindSortAsc:
		return "O"
	case parser.KindGroup:
		return "g<sel>"
	case parser.KindDedupe:
		return "d"
	case parser.KindDedupeSel:
		return "D<sel>"
	case parser.KindCount:
		return "#"
	case parser.KindSum:
		return "+"
	case parser.KindColumnate:
		return "c"
	case parser.KindPartition:
		return "p<sel>"
	default:
		return "?"
	}
}

// describe narrates op in one sentence, the `-e` flag's output.
func describe(op parser.Op) string {
	switch op.Kind {
	case parser.KindNoop:
		return "do nothing"
	case parser.KindFocusIn:
		return "push the focus one level deeper (@)"
	case parser.KindFocusOut:
		return "pop the focus back out one level (^)"
	case parser.KindSplit:
		return "split the focused level using the level's default delimiter"
	case parser.KindSplitDelim:
		return fmt.Sprintf("split the focused level on %q", op.Delim)
	case parser.KindJoin:
		return "join the focused level's children back into strings"
	case parser.KindJoinDelim:
		return fmt.Sprintf("join the focused level's children on %q", op.Delim)
	case parser.KindFlatten:
		return "flatten one level of nested arrays at the focus"
	case parser.KindLower:
		return "lowercase every string leaf beneath the focus"
	case parser.KindUpper:
		return "uppercase every string leaf beneath the focus"
	case parser.KindTrim:
		return "trim surrounding whitespace from every string leaf beneath the focus"
	case parser.KindToNumber:
		return "parse every string leaf beneath the focus as a number"
	case parser.KindLowerSel:
		return fmt.Sprintf("lowercase the selected elements %s", describeSel(op))
	case parser.KindUpperSel:
		return fmt.Sprintf("uppercase the selected elements %s", describeSel(op))
	case parser.KindToNumberSel:
		return fmt.Sprintf("parse the selected elements %s as numbers", describeSel(op))
	case parser.KindTrimSel:
		return fmt.Sprintf("trim the selected elements %s", describeSel(op))
	case parser.KindReplace:
		scope := "every string leaf beneath the focus"
		if op.HasSel {
			scope = "the selected children " + describeSel(op)
		}
		return fmt.Sprintf("replace %q with %q in %s", op.PatternSrc, op.Replacement, scope)
	case parser.KindFilterMatch:
		return fmt.Sprintf("keep only children matching %q", op.PatternSrc)
	case parser.KindFilterNotMatch:
		return fmt.Sprintf("drop children matching %q", op.PatternSrc)
	case parser.KindFilterExtract:
		return fmt.Sprintf("extract matches of %q from each child", op.PatternSrc)
	case parser.KindCompact:
		return "drop empty strings and empty arrays from the focused level"
	case parser.KindSelection:
		return fmt.Sprintf("select %s from the focused level", describeSel(op))
	case parser.KindSortDesc:
		return "sort the focused level in descending order"
	case parser.KindSortAsc:
		return "sort the focused level in ascending order"
	case parser.KindGroup:
		return fmt.Sprintf("group the focused level by %s", describeSel(op))
	case parser.KindDedupe:
		return "deduplicate the focused level by whole-element equality"
	case parser.KindDedupeSel:
		return fmt.Sprintf("deduplicate the focused level by %s", describeSel(op))
	case parser.KindCount:
		return "replace the focused level with its element count"
	case parser.KindSum:
		return "sum every numeric leaf beneath the focus"
	case parser.KindColumnate:
		return "columnate the focused level into aligned rows"
	case parser.KindPartition:
		return fmt.Sprintf("partition the focused level at %s", describeSel(op))
	default:
		return "unknown operation"
	}
}

func describeSel(op parser.Op) string {
	if op.Sel.Scalar {
		return "at the given index"
	}
	return "at the given selection"
}
