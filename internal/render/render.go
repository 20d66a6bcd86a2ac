/*
File    : t/internal/render/render.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package render turns a final Value into output text: a human-facing
// string form and a machine-facing JSON form. Text renders the way a
// human reads a result, JSON renders the way a machine consumes it,
// via encoding/json.
package render

import (
	"encoding/json"
	"strings"

	"github.com/akashmaji946/t/internal/textlevel"
	"github.com/akashmaji946/t/internal/value"
)

// Text renders v for human consumption: a top-level string prints
// verbatim, a top-level Number prints as integer-or-shortest-decimal,
// and a top-level array prints one element per outputDelim, recursing at
// inner levels with the same space/empty join rule `s`/`j` use.
func Text(v value.Value, outputDelim string) string {
	return textAtDepth(v, 0, outputDelim)
}

func textAtDepth(v value.Value, depth int, outputDelim string) string {
	switch t := v.(type) {
	case *value.Str:
		return t.S
	case *value.Number:
		return t.Text()
	case *value.Arr:
		delim := textlevel.RenderJoinDelim(depth, outputDelim)
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = textAtDepth(e, depth+1, outputDelim)
		}
		return strings.Join(parts, delim)
	default:
		return ""
	}
}

// JSON renders v as standard JSON: Numbers as JSON numbers, arrays as
// arrays, strings as JSON strings.
func JSON(v value.Value) (string, error) {
	bytes, err := json.Marshal(value.Native(v))
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
