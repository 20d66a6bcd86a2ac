/*
File    : t/internal/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberText(t *testing.T) {
	tests := []struct {
		name string
		n    *Number
		want string
	}{
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"float", Float(3.5), "3.5"},
		{"float no trailing zero", Float(2.0), "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.Text())
		})
	}
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("20")
	require.NoError(t, err)
	assert.True(t, n.IsInt)
	assert.Equal(t, int64(20), n.I)

	n, err = ParseNumber("3.25")
	require.NoError(t, err)
	assert.False(t, n.IsInt)
	assert.Equal(t, 3.25, n.F)

	_, err = ParseNumber("abc")
	assert.Error(t, err)
}

func TestParseNumberLenient(t *testing.T) {
	n := ParseNumberLenient("abc")
	assert.True(t, n.IsInt)
	assert.Equal(t, int64(0), n.I)
}

func TestCompareCrossKind(t *testing.T) {
	num := Int(5)
	str := &Str{S: "a"}
	arr := NewArr(nil)

	assert.Less(t, Compare(num, str), 0)
	assert.Less(t, Compare(str, arr), 0)
	assert.Greater(t, Compare(arr, num), 0)
}

func TestCompareWithinKind(t *testing.T) {
	assert.Less(t, Compare(Int(1), Int(2)), 0)
	assert.Equal(t, 0, Compare(Float(1.5), Float(1.5)))
	assert.Less(t, Compare(&Str{S: "apple"}, &Str{S: "banana"}), 0)
}

func TestCompareArraysLexicographic(t *testing.T) {
	a := NewArr([]Value{Int(1), Int(2)})
	b := NewArr([]Value{Int(1), Int(3)})
	c := NewArr([]Value{Int(1)})

	assert.Less(t, Compare(a, b), 0)
	assert.Greater(t, Compare(a, c), 0)
	assert.True(t, Equal(NewArr([]Value{Int(1)}), NewArr([]Value{Int(1)})))
}

func TestNative(t *testing.T) {
	arr := NewArr([]Value{Int(1), &Str{S: "x"}, NewArr([]Value{Float(2.5)})})
	got := Native(arr)
	list, ok := got.([]interface{})
	require.True(t, ok)
	require.Len(t, list, 3)
	assert.Equal(t, int64(1), list[0])
	assert.Equal(t, "x", list[1])
}
