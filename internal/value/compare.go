/*
File    : t/internal/value/compare.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package value

// Compare imposes the polymorphic total order every sort/dedupe/group op
// relies on: Number < String < Array across types, and the natural order
// within a type. Arrays compare lexicographically, element by element,
// with the shorter of two equal-prefix arrays sorting first. Equal keys
// compare as 0; callers that need stability (o/O) must use a stable
// sort algorithm with this comparator, which Compare itself does not
// provide.
func Compare(a, b Value) int {
	if a.Kind() != b.Kind() {
		return int(a.Kind()) - int(b.Kind())
	}
	switch av := a.(type) {
	case *Number:
		bv := b.(*Number)
		af, bf := av.AsFloat(), bv.AsFloat()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	case *Str:
		bv := b.(*Str)
		switch {
		case av.S < bv.S:
			return -1
		case av.S > bv.S:
			return 1
		default:
			return 0
		}
	case *Arr:
		bv := b.(*Arr)
		n := len(av.Elems)
		if len(bv.Elems) < n {
			n = len(bv.Elems)
		}
		for i := 0; i < n; i++ {
			if c := Compare(av.Elems[i], bv.Elems[i]); c != 0 {
				return c
			}
		}
		return len(av.Elems) - len(bv.Elems)
	default:
		return 0
	}
}

// Equal reports whether two values are structurally identical, the
// notion of equality `d`/`D`/`g` use to collapse and bucket elements.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// Less is a convenience wrapper for sort.Slice/sort.SliceStable callers.
func Less(a, b Value) bool { return Compare(a, b) < 0 }
