/*
File    : t/internal/selection/selection_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/t/internal/lexer"
	"github.com/akashmaji946/t/internal/value"
)

func mustParse(t *testing.T, s string) Selection {
	t.Helper()
	sel, err := Parse(lexer.NewScanner(s))
	require.NoError(t, err)
	return sel
}

func TestParseScalar(t *testing.T) {
	sel := mustParse(t, "0")
	assert.True(t, sel.Scalar)
	assert.Len(t, sel.Items, 1)
}

func TestParseSliceAndMultiItem(t *testing.T) {
	sel := mustParse(t, "0,-1")
	assert.False(t, sel.Scalar)
	assert.Len(t, sel.Items, 2)

	sel = mustParse(t, "1::3")
	assert.False(t, sel.Scalar)
	require.Len(t, sel.Items, 1)
	assert.True(t, sel.Items[0].IsSlice)
	assert.Equal(t, 1, sel.Items[0].Start)
	assert.Equal(t, 3, sel.Items[0].Step)
}

func TestParseStepZeroError(t *testing.T) {
	_, err := Parse(lexer.NewScanner("::0"))
	assert.Error(t, err)
}

func TestApplyScalarArray(t *testing.T) {
	arr := value.NewArr([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	sel := mustParse(t, "-1")
	got, err := sel.Apply(arr)
	require.NoError(t, err)
	n, ok := got.(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(3), n.I)
}

func TestApplyStrideSelection(t *testing.T) {
	// scenario 6 from the spec's worked examples: 1::3 over six elements
	// picks indices 1 and 4.
	elems := make([]value.Value, 6)
	for i, s := range []string{"a", "b", "c", "d", "e", "f"} {
		elems[i] = &value.Str{S: s}
	}
	arr := value.NewArr(elems)
	sel := mustParse(t, "1::3")
	got, err := sel.Apply(arr)
	require.NoError(t, err)
	out, ok := got.(*value.Arr)
	require.True(t, ok)
	require.Len(t, out.Elems, 2)
	assert.Equal(t, "b", out.Elems[0].(*value.Str).S)
	assert.Equal(t, "e", out.Elems[1].(*value.Str).S)
}

func TestApplyMultiItemConcat(t *testing.T) {
	fields := []string{"root", "x", "0", "0", "root", "/root", "/bin/bash"}
	elems := make([]value.Value, len(fields))
	for i, s := range fields {
		elems[i] = &value.Str{S: s}
	}
	arr := value.NewArr(elems)
	sel := mustParse(t, "0,-1")
	got, err := sel.Apply(arr)
	require.NoError(t, err)
	out := got.(*value.Arr)
	require.Len(t, out.Elems, 2)
	assert.Equal(t, "root", out.Elems[0].(*value.Str).S)
	assert.Equal(t, "/bin/bash", out.Elems[1].(*value.Str).S)
}

func TestApplyOutOfRangeScalarErrors(t *testing.T) {
	arr := value.NewArr([]value.Value{value.Int(1)})
	sel := mustParse(t, "5")
	_, err := sel.Apply(arr)
	assert.Error(t, err)
}

func TestApplyOutOfRangeSliceEnumeratesWithinBounds(t *testing.T) {
	arr := value.NewArr([]value.Value{value.Int(1), value.Int(2)})
	sel := mustParse(t, "0:10")
	got, err := sel.Apply(arr)
	require.NoError(t, err)
	out := got.(*value.Arr)
	assert.Len(t, out.Elems, 2)
}

func TestApplyOnString(t *testing.T) {
	s := &value.Str{S: "hello"}
	sel := mustParse(t, "1:3")
	got, err := sel.Apply(s)
	require.NoError(t, err)
	assert.Equal(t, "el", got.(*value.Str).S)

	sel = mustParse(t, "0")
	got, err = sel.Apply(s)
	require.NoError(t, err)
	assert.Equal(t, "h", got.(*value.Str).S)
}
