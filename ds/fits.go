package ds

import (
	"golang.org/x/exp/constraints"
)

// Fits reports whether v survives a conversion to T without wrapping
// or losing its sign.
func Fits[T constraints.Integer](v int64) bool {
	t := T(v)
	return int64(t) == v && (t < 0) == (v < 0)
}
