/*
File    : t/internal/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/t/internal/parser"
	"github.com/akashmaji946/t/internal/value"
)

func run(t *testing.T, program string, lines []string, cfg Config) value.Value {
	t.Helper()
	ops, err := parser.Parse(program)
	require.NoError(t, err)
	ev := New(cfg)
	out, err := ev.Run(ops, value.Strs(lines))
	require.NoError(t, err)
	return out
}

// TestScenarioWordFrequency is end-to-end scenario 1 from the spec:
// split lines to words, flatten, lowercase, dedupe with counts, then
// take the first 20 (all of them here).
func TestScenarioWordFrequency(t *testing.T) {
	out := run(t, "sfld:20", []string{"The cat sat", "the cat slept"}, Config{})
	arr, ok := out.(*value.Arr)
	require.True(t, ok)
	require.Len(t, arr.Elems, 4)

	pair := func(i int) (int64, string) {
		p := arr.Elems[i].(*value.Arr)
		return p.Elems[0].(*value.Number).I, p.Elems[1].(*value.Str).S
	}
	c, w := pair(0)
	assert.Equal(t, int64(2), c)
	assert.Equal(t, "the", w)
	c, w = pair(1)
	assert.Equal(t, int64(2), c)
	assert.Equal(t, "cat", w)
	c, w = pair(2)
	assert.Equal(t, int64(1), c)
	assert.Equal(t, "sat", w)
	c, w = pair(3)
	assert.Equal(t, int64(1), c)
	assert.Equal(t, "slept", w)
}

// TestScenarioPasswdFields is scenario 2: split on ':', descend with
// '@', then pick fields 0 and -1.
func TestScenarioPasswdFields(t *testing.T) {
	out := run(t, "S:@0,-1", []string{"root:x:0:0:root:/root:/bin/bash"}, Config{})
	arr := out.(*value.Arr)
	require.Len(t, arr.Elems, 1)
	row := arr.Elems[0].(*value.Arr)
	require.Len(t, row.Elems, 2)
	assert.Equal(t, "root", row.Elems[0].(*value.Str).S)
	assert.Equal(t, "/bin/bash", row.Elems[1].(*value.Str).S)
}

// TestScenarioSumColumn is scenario 3: convert every leaf to a number
// and sum them.
func TestScenarioSumColumn(t *testing.T) {
	out := run(t, "n+", []string{"1", "2", "3", "4"}, Config{})
	n := out.(*value.Number)
	assert.True(t, n.IsInt)
	assert.Equal(t, int64(10), n.I)
}

// TestScenarioExtractThenFlatten is scenario 4: m/\d+/ pulls matches
// out as a nested array, f flattens it back to a flat list.
func TestScenarioExtractThenFlatten(t *testing.T) {
	out := run(t, `m/\d+/f`, []string{"price: $42, qty: 7"}, Config{})
	arr := out.(*value.Arr)
	require.Len(t, arr.Elems, 2)
	assert.Equal(t, "42", arr.Elems[0].(*value.Str).S)
	assert.Equal(t, "7", arr.Elems[1].(*value.Str).S)
}

// TestScenarioDoubleFilter is scenario 5: keep lines matching one
// pattern, then drop those matching another.
func TestScenarioDoubleFilter(t *testing.T) {
	out := run(t, `/fail/!/expected/`, []string{"ok", "fail A", "fail expected B"}, Config{})
	arr := out.(*value.Arr)
	require.Len(t, arr.Elems, 1)
	assert.Equal(t, "fail A", arr.Elems[0].(*value.Str).S)
}

// TestScenarioStrideSelection is scenario 6: a stride-3 slice over six
// lines picks indices 1 and 4.
func TestScenarioStrideSelection(t *testing.T) {
	out := run(t, "1::3", []string{"a", "b", "c", "d", "e", "f"}, Config{})
	arr := out.(*value.Arr)
	require.Len(t, arr.Elems, 2)
	assert.Equal(t, "b", arr.Elems[0].(*value.Str).S)
	assert.Equal(t, "e", arr.Elems[1].(*value.Str).S)
}

func TestFocusBalanceNoopIsInert(t *testing.T) {
	out1 := run(t, "l", []string{"AbC"}, Config{})
	out2 := run(t, ";l;", []string{"AbC"}, Config{})
	assert.Equal(t, value.Native(out1), value.Native(out2))
}

func TestFocusOutBelowZeroIsNoop(t *testing.T) {
	// '^' with no prior '@' must not error.
	out := run(t, "^l", []string{"AbC"}, Config{})
	arr := out.(*value.Arr)
	assert.Equal(t, "abc", arr.Elems[0].(*value.Str).S)
}

func TestIdempotentLower(t *testing.T) {
	out1 := run(t, "l", []string{"AbC", "DeF"}, Config{})
	out2 := run(t, "ll", []string{"AbC", "DeF"}, Config{})
	assert.Equal(t, value.Native(out1), value.Native(out2))
}

func TestDedupeCountConservation(t *testing.T) {
	lines := []string{"a", "b", "a", "c", "b", "a"}
	out := run(t, "d", lines, Config{})
	arr := out.(*value.Arr)
	var total int64
	for _, e := range arr.Elems {
		pair := e.(*value.Arr)
		total += pair.Elems[0].(*value.Number).I
	}
	assert.Equal(t, int64(len(lines)), total)
}

func TestGroupPreservesMembership(t *testing.T) {
	lines := []string{"aa", "bb", "ab", "ba"}
	ops, err := parser.Parse("g0")
	require.NoError(t, err)
	ev := New(Config{})
	result, err := ev.Run(ops, value.Strs(lines))
	require.NoError(t, err)
	groups := result.(*value.Arr)
	seen := map[string]bool{}
	count := 0
	for _, g := range groups.Elems {
		pair := g.(*value.Arr)
		members := pair.Elems[1].(*value.Arr)
		for _, m := range members.Elems {
			seen[m.(*value.Str).S] = true
			count++
		}
	}
	assert.Equal(t, len(lines), count)
	for _, l := range lines {
		assert.True(t, seen[l])
	}
}

func TestWhitespaceInProgramIsParseError(t *testing.T) {
	_, err := parser.Parse("n s")
	assert.Error(t, err)
}

func TestEvalErrorCarriesOpIndex(t *testing.T) {
	ops, err := parser.Parse("l5")
	require.NoError(t, err)
	ev := New(Config{})
	_, err = ev.Run(ops, value.Strs([]string{"a"}))
	require.Error(t, err)
	evalErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, 1, evalErr.OpIndex)
}

func TestCSVModeSplit(t *testing.T) {
	out := run(t, `S,`, []string{`a,"b,c",d`}, Config{CSV: true})
	arr := out.(*value.Arr)
	row := arr.Elems[0].(*value.Arr)
	require.Len(t, row.Elems, 3)
	assert.Equal(t, "b,c", row.Elems[1].(*value.Str).S)
}

func TestPartitionStride(t *testing.T) {
	out := run(t, "p::2", []string{"a", "b", "c", "d", "e"}, Config{})
	arr := out.(*value.Arr)
	require.Len(t, arr.Elems, 3)
	chunk0 := arr.Elems[0].(*value.Arr)
	assert.Len(t, chunk0.Elems, 2)
	last := arr.Elems[2].(*value.Arr)
	assert.Len(t, last.Elems, 1) // short last chunk
}
