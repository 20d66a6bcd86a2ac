/*
File    : t/internal/ingest/ingest_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLinesDefaultTrailingNewline(t *testing.T) {
	lines := splitLines("The cat sat\nthe cat slept\n", "")
	assert.Equal(t, []string{"The cat sat", "the cat slept"}, lines)
}

func TestSplitLinesNoTrailingNewline(t *testing.T) {
	lines := splitLines("a\nb\nc", "")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestSplitLinesEmptyInput(t *testing.T) {
	lines := splitLines("", "")
	assert.Equal(t, []string{}, lines)
}

func TestSplitLinesCRLF(t *testing.T) {
	lines := splitLines("a\r\nb\r\n", "")
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestSplitLinesCustomDelim(t *testing.T) {
	lines := splitLines("a;b;c;", ";")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

