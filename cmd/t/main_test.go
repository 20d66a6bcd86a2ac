/*
File    : t/cmd/t/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunPipelineSuccess(t *testing.T) {
	path := writeTempFile(t, "The cat sat\nthe cat slept\n")
	code := run([]string{"sfld:20", path})
	assert.Equal(t, exitOK, code)
}

func TestRunPipelineParseError(t *testing.T) {
	path := writeTempFile(t, "a\n")
	code := run([]string{"%", path})
	assert.Equal(t, exitParse, code)
}

func TestRunPipelineEvalError(t *testing.T) {
	path := writeTempFile(t, "a\n")
	code := run([]string{"@@s", path})
	assert.Equal(t, exitEval, code)
}

func TestRunPipelineMissingProgramIsUsageError(t *testing.T) {
	code := run([]string{})
	assert.Equal(t, exitUsage, code)
}

func TestRunPipelineMissingFileIsEvalError(t *testing.T) {
	code := run([]string{"s", "/does/not/exist"})
	assert.Equal(t, exitEval, code)
}

func TestRunExplainExitsOK(t *testing.T) {
	code := run([]string{"-e", "sld"})
	assert.Equal(t, exitOK, code)
}

func TestRunParseTreeExitsOK(t *testing.T) {
	code := run([]string{"-p", "sld"})
	assert.Equal(t, exitOK, code)
}

func TestRunExplainParseErrorExitsWithParseCode(t *testing.T) {
	code := run([]string{"-e", "%"})
	assert.Equal(t, exitParse, code)
}

func TestRunJSONFlag(t *testing.T) {
	path := writeTempFile(t, "a b\n")
	code := run([]string{"-j", "s", path})
	assert.Equal(t, exitOK, code)
}

func TestRunCSVFlag(t *testing.T) {
	path := writeTempFile(t, "a,\"b,c\",d\n")
	code := run([]string{"-c", "S,", path})
	assert.Equal(t, exitOK, code)
}
