/*
File    : t/internal/value/native.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package value

// Native converts a Value into the plain interface{} tree (float64 /
// string / []interface{}) that encoding/json.Marshal understands.
// Integers are handed to json as int64 so they marshal without a
// decimal point; floats marshal as Go's encoding/json already renders
// float64.
func Native(v Value) interface{} {
	switch n := v.(type) {
	case *Number:
		if n.IsInt {
			return n.I
		}
		return n.F
	case *Str:
		return n.S
	case *Arr:
		out := make([]interface{}, len(n.Elems))
		for i, e := range n.Elems {
			out[i] = Native(e)
		}
		return out
	default:
		return nil
	}
}
