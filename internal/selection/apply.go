/*
File    : t/internal/selection/apply.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package selection

import (
	"fmt"

	"github.com/akashmaji946/t/internal/value"
)

// Indices resolves the selection against a target of length n, returning
// the concrete (already-normalized) list of indices it denotes in order,
// one entry per index item and one run of entries per slice item,
// concatenated in selection order.
func (sel Selection) Indices(n int) ([]int, error) {
	var out []int
	for _, it := range sel.Items {
		if !it.IsSlice {
			idx, err := normalizeIndex(it.Index, n)
			if err != nil {
				return nil, err
			}
			out = append(out, idx)
			continue
		}
		idxs, err := sliceIndices(it, n)
		if err != nil {
			return nil, err
		}
		out = append(out, idxs...)
	}
	return out, nil
}

func normalizeIndex(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index out of range")
	}
	return i, nil
}

func sliceIndices(it Item, n int) ([]int, error) {
	step := 1
	if it.HasStep {
		step = it.Step
	}
	if step == 0 {
		return nil, fmt.Errorf("slice step cannot be zero")
	}

	start := 0
	if step < 0 {
		start = n - 1
	}
	if it.HasStart {
		start = it.Start
		if start < 0 {
			start += n
		}
	}

	end := n
	if step < 0 {
		end = -n - 1
	}
	if it.HasEnd {
		end = it.End
		if end < 0 {
			end += n
		}
	}

	var out []int
	for idx := start; (step > 0 && idx < end) || (step < 0 && idx > end); idx += step {
		if idx >= 0 && idx < n {
			out = append(out, idx)
		}
	}
	return out, nil
}

// Apply evaluates the selection against target: scalar selection on an
// Array returns the element; array selection returns an Array. Scalar
// selection on a String returns a one-rune String; array selection on
// a String returns a String of the selected runes joined.
func (sel Selection) Apply(target value.Value) (value.Value, error) {
	switch t := target.(type) {
	case *value.Arr:
		idxs, err := sel.Indices(len(t.Elems))
		if err != nil {
			return nil, err
		}
		if sel.Scalar {
			return t.Elems[idxs[0]], nil
		}
		out := make([]value.Value, len(idxs))
		for i, idx := range idxs {
			out[i] = t.Elems[idx]
		}
		return value.NewArr(out), nil
	case *value.Str:
		runes := t.Runes()
		idxs, err := sel.Indices(len(runes))
		if err != nil {
			return nil, err
		}
		if sel.Scalar {
			return &value.Str{S: string(runes[idxs[0]])}, nil
		}
		out := make([]rune, len(idxs))
		for i, idx := range idxs {
			out[i] = runes[idx]
		}
		return &value.Str{S: string(out)}, nil
	default:
		return nil, fmt.Errorf("cannot select from a %s", target.Kind())
	}
}
