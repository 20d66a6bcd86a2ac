/*
File    : t/internal/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value implements the recursive tagged data model that every
// operator in the t language reads and produces: a number, a string, or
// an array of values. A Value is produced once by an operator and never
// mutated afterwards — every transform builds a new Value from its input.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant of the tagged union a Value holds.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindArray
)

// String returns a human-readable name for the Kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is the interface implemented by Number, Str, and Arr. It has no
// behavior of its own beyond identifying its Kind; all operator logic
// lives in the eval package, which type-switches on the concrete type.
type Value interface {
	Kind() Kind
}

// Number is a 64-bit value that is either integer- or float-valued. The
// two are distinguished so that integer-valued numbers round-trip
// through text rendering without growing a spurious ".0".
type Number struct {
	IsInt bool
	I     int64
	F     float64
}

// Int builds an integer-valued Number.
func Int(i int64) *Number { return &Number{IsInt: true, I: i} }

// Float builds a float-valued Number.
func Float(f float64) *Number { return &Number{IsInt: false, F: f} }

// Kind implements Value.
func (*Number) Kind() Kind { return KindNumber }

// AsFloat returns the Number as a float64 regardless of which field is live.
func (n *Number) AsFloat() float64 {
	if n.IsInt {
		return float64(n.I)
	}
	return n.F
}

// Text renders the number the way the text renderer and every leaf
// stringification in eval needs: integers print without a fractional
// part, floats print as the shortest round-trippable decimal.
func (n *Number) Text() string {
	if n.IsInt {
		return strconv.FormatInt(n.I, 10)
	}
	if math.IsInf(n.F, 0) || math.IsNaN(n.F) {
		return strconv.FormatFloat(n.F, 'g', -1, 64)
	}
	return strconv.FormatFloat(n.F, 'f', -1, 64)
}

// Str is an immutable string of Unicode scalar values.
type Str struct {
	S string
}

// Kind implements Value.
func (*Str) Kind() Kind { return KindString }

// Runes returns the string as a slice of Unicode scalar values, the unit
// every char-level and indexing operation works over.
func (s *Str) Runes() []rune { return []rune(s.S) }

// Arr is an ordered, zero-indexed sequence of Values.
type Arr struct {
	Elems []Value
}

// Kind implements Value.
func (*Arr) Kind() Kind { return KindArray }

// NewArr builds an Arr from a slice, taking ownership of it.
func NewArr(elems []Value) *Arr { return &Arr{Elems: elems} }

// Strs builds an Arr of Str values from plain Go strings.
func Strs(ss []string) *Arr {
	elems := make([]Value, len(ss))
	for i, s := range ss {
		elems[i] = &Str{S: s}
	}
	return &Arr{Elems: elems}
}

// ParseNumber converts a string to a Number: optional leading sign,
// decimal digits, optional fractional part and exponent. It is strict
// — used by the `n` op, which errors on non-numeric input (unlike `+`,
// which coerces leniently via ParseNumberLenient).
func ParseNumber(s string) (*Number, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Int(i), nil
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Float(f), nil
	}
	return nil, fmt.Errorf("not a number: %q", s)
}

// ParseNumberLenient implements the coercion rule `+` uses: a
// non-numeric string contributes zero rather than erroring.
func ParseNumberLenient(s string) *Number {
	n, err := ParseNumber(s)
	if err != nil {
		return Int(0)
	}
	return n
}
