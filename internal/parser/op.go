/*
File    : t/internal/parser/op.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a t program string into a flat []Op list, via a
// single dispatch loop: a t program has no nesting, no precedence, and
// no sub-expressions — every op is recognized by its leading character
// and consumes exactly its own arguments before the next op begins.
package parser

import (
	"github.com/akashmaji946/t/internal/rx"
	"github.com/akashmaji946/t/internal/selection"
)

// Kind identifies which operator an Op represents.
type Kind int

const (
	KindNoop Kind = iota
	KindFocusIn
	KindFocusOut
	KindSplit
	KindSplitDelim
	KindJoin
	KindJoinDelim
	KindFlatten
	KindLower
	KindUpper
	KindTrim
	KindToNumber
	KindLowerSel
	KindUpperSel
	KindToNumberSel
	KindTrimSel
	KindReplace
	KindFilterMatch
	KindFilterNotMatch
	KindFilterExtract
	KindCompact
	KindSelection
	KindSortDesc
	KindSortAsc
	KindGroup
	KindDedupe
	KindDedupeSel
	KindCount
	KindSum
	KindColumnate
	KindPartition
)

// Op is one parsed operator together with its pre-parsed arguments:
// a selection, a delimiter, or a compiled regex pattern/replacement,
// whichever the Kind calls for. Which fields are meaningful depends on
// the Kind, as noted beside each field; KindReplace uses several.
type Op struct {
	Kind Kind

	Delim string // KindSplitDelim, KindJoinDelim

	Sel    selection.Selection // KindLowerSel/UpperSel/ToNumberSel/TrimSel/DedupeSel/Group/Partition/Selection, and optionally KindReplace
	HasSel bool                // true when Sel is present (meaningful for KindReplace, where the selection is optional)

	Pattern     *rx.Pattern // KindReplace, KindFilterMatch, KindFilterNotMatch, KindFilterExtract
	PatternSrc  string      // original source text of Pattern, for explain/parse-tree output
	Replacement string      // KindReplace
}
