/*
File    : t/internal/render/render_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/t/internal/value"
)

func TestTextTopLevelString(t *testing.T) {
	assert.Equal(t, "hello", Text(&value.Str{S: "hello"}, "\n"))
}

func TestTextTopLevelNumber(t *testing.T) {
	assert.Equal(t, "42", Text(value.Int(42), "\n"))
}

func TestTextTopLevelArray(t *testing.T) {
	arr := value.Strs([]string{"a", "b", "c"})
	assert.Equal(t, "a\nb\nc", Text(arr, "\n"))
}

func TestTextCustomOutputDelim(t *testing.T) {
	arr := value.Strs([]string{"a", "b"})
	assert.Equal(t, "a,b", Text(arr, ","))
}

func TestTextNestedArrayUsesWordThenCharJoin(t *testing.T) {
	inner := value.NewArr([]value.Value{
		value.NewArr([]value.Value{&value.Str{S: "a"}, &value.Str{S: "b"}}),
		&value.Str{S: "c"},
	})
	outer := value.NewArr([]value.Value{inner})
	got := Text(outer, "\n")
	assert.Equal(t, "ab c", got)
}

func TestJSONRoundTripShape(t *testing.T) {
	arr := value.NewArr([]value.Value{value.Int(1), &value.Str{S: "x"}})
	got, err := JSON(arr)
	require.NoError(t, err)
	assert.Equal(t, `[1,"x"]`, got)
}
