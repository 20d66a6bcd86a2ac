/*
File    : t/internal/eval/reduce.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package eval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akashmaji946/t/internal/selection"
	"github.com/akashmaji946/t/internal/value"
)

// doSort implements `o`/`O`: sorts the focused array using the
// polymorphic order in value.Compare. The sort is stable.
func doSort(sub value.Value, descending bool) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot sort: %s is not an array", sub.Kind())
	}
	out := make([]value.Value, len(arr.Elems))
	copy(out, arr.Elems)
	sort.SliceStable(out, func(i, j int) bool {
		c := value.Compare(out[i], out[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
	return value.NewArr(out), nil
}

// doGroup implements `g<sel>`: buckets the focused array's children by
// the value sel produces for each, in first-occurrence order of keys,
// and returns an array of [key, members] pairs.
type groupBucket struct {
	key     value.Value
	members []value.Value
}

func doGroup(sub value.Value, sel selection.Selection) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot group: %s is not an array", sub.Kind())
	}
	var buckets []*groupBucket
	for _, e := range arr.Elems {
		key, err := sel.Apply(e)
		if err != nil {
			return nil, err
		}
		var b *groupBucket
		for _, cand := range buckets {
			if value.Equal(cand.key, key) {
				b = cand
				break
			}
		}
		if b == nil {
			b = &groupBucket{key: key}
			buckets = append(buckets, b)
		}
		b.members = append(b.members, e)
	}
	out := make([]value.Value, len(buckets))
	for i, b := range buckets {
		out[i] = value.NewArr([]value.Value{b.key, value.NewArr(b.members)})
	}
	return value.NewArr(out), nil
}

// doDedupe implements `d` (sel == nil) and `D<sel>`: children are
// bucketed by structural equality (or by sel's output), producing
// [count, representative] pairs sorted by count descending with ties
// broken by first-occurrence order. The representative is always the
// first member encountered for that key.
func doDedupe(sub value.Value, sel *selection.Selection) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot dedupe: %s is not an array", sub.Kind())
	}
	type dbucket struct {
		key   value.Value
		first value.Value
		count int
		order int
	}
	var buckets []*dbucket
	for i, e := range arr.Elems {
		key := e
		if sel != nil {
			k, err := sel.Apply(e)
			if err != nil {
				return nil, err
			}
			key = k
		}
		var found *dbucket
		for _, b := range buckets {
			if value.Equal(b.key, key) {
				found = b
				break
			}
		}
		if found == nil {
			found = &dbucket{key: key, first: e, order: i}
			buckets = append(buckets, found)
		}
		found.count++
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].order < buckets[j].order
	})
	out := make([]value.Value, len(buckets))
	for i, b := range buckets {
		out[i] = value.NewArr([]value.Value{value.Int(int64(b.count)), b.first})
	}
	return value.NewArr(out), nil
}

// doCount implements `#`: replaces the focused array with its length.
func doCount(sub value.Value) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot count: %s is not an array", sub.Kind())
	}
	return value.Int(int64(len(arr.Elems))), nil
}

// sumLeaves implements `+`: sums every numeric leaf beneath the focused
// value, recursing through arbitrarily nested arrays. Non-numeric
// strings contribute zero rather than erroring. The result is an
// integer Number when every contributing leaf was integer-valued.
func sumLeaves(v value.Value) value.Value {
	isInt := true
	var isum int64
	var fsum float64
	var walk func(value.Value)
	walk = func(v value.Value) {
		switch t := v.(type) {
		case *value.Number:
			if t.IsInt {
				isum += t.I
				fsum += float64(t.I)
			} else {
				isInt = false
				fsum += t.F
			}
		case *value.Str:
			n := value.ParseNumberLenient(t.S)
			if n.IsInt {
				isum += n.I
				fsum += float64(n.I)
			} else {
				isInt = false
				fsum += n.F
			}
		case *value.Arr:
			for _, e := range t.Elems {
				walk(e)
			}
		}
	}
	walk(v)
	if isInt {
		return value.Int(isum)
	}
	return value.Float(fsum)
}

// doColumnate implements `c`: the focused array must be an array of
// arrays of strings; it renders as a single string, rows joined with
// "\n", columns left-aligned to the widest field in that column with a
// two-space gutter, shorter rows padded with empty fields.
func doColumnate(sub value.Value) (value.Value, error) {
	arr, ok := sub.(*value.Arr)
	if !ok {
		return nil, fmt.Errorf("cannot columnate: %s is not an array", sub.Kind())
	}
	rows := make([][]string, len(arr.Elems))
	maxCols := 0
	for i, e := range arr.Elems {
		row, ok := e.(*value.Arr)
		if !ok {
			return nil, fmt.Errorf("cannot columnate: row %d is not an array", i)
		}
		fields := make([]string, len(row.Elems))
		for j, ce := range row.Elems {
			cs, ok := ce.(*value.Str)
			if !ok {
				return nil, fmt.Errorf("cannot columnate: row %d has a non-string field", i)
			}
			fields[j] = cs.S
		}
		rows[i] = fields
		if len(fields) > maxCols {
			maxCols = len(fields)
		}
	}
	widths := make([]int, maxCols)
	for _, row := range rows {
		for j, f := range row {
			if w := len([]rune(f)); w > widths[j] {
				widths[j] = w
			}
		}
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for j := 0; j < maxCols; j++ {
			field := ""
			if j < len(row) {
				field = row[j]
			}
			b.WriteString(field)
			if j < maxCols-1 {
				b.WriteString(strings.Repeat(" ", widths[j]-len([]rune(field))+2))
			}
		}
		lines[i] = b.String()
	}
	return &value.Str{S: strings.Join(lines, "\n")}, nil
}

// doPartition implements `p<sel>`: cuts the focused array (or string,
// treated as chars) at each index sel produces over the domain [0, n),
// yielding consecutive chunks. Cut indices are deduplicated and sorted;
// index 0 is always an implicit cut so no leading elements are lost.
func doPartition(sub value.Value, sel selection.Selection) (value.Value, error) {
	switch t := sub.(type) {
	case *value.Arr:
		cuts, err := partitionCuts(sel, len(t.Elems))
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, len(cuts))
		for i, start := range cuts {
			end := len(t.Elems)
			if i+1 < len(cuts) {
				end = cuts[i+1]
			}
			chunk := make([]value.Value, end-start)
			copy(chunk, t.Elems[start:end])
			out[i] = value.NewArr(chunk)
		}
		return value.NewArr(out), nil
	case *value.Str:
		runes := t.Runes()
		cuts, err := partitionCuts(sel, len(runes))
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, len(cuts))
		for i, start := range cuts {
			end := len(runes)
			if i+1 < len(cuts) {
				end = cuts[i+1]
			}
			out[i] = &value.Str{S: string(runes[start:end])}
		}
		return value.NewArr(out), nil
	default:
		return nil, fmt.Errorf("cannot partition: %s is neither array nor string", sub.Kind())
	}
}

func partitionCuts(sel selection.Selection, n int) ([]int, error) {
	idxs, err := sel.Indices(n)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(idxs))
	var cuts []int
	for _, idx := range idxs {
		if !seen[idx] {
			seen[idx] = true
			cuts = append(cuts, idx)
		}
	}
	sort.Ints(cuts)
	if len(cuts) == 0 || cuts[0] != 0 {
		cuts = append([]int{0}, cuts...)
	}
	return cuts, nil
}
