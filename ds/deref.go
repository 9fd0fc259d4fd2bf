package ds

import (
	"github.com/iancoleman/orderedmap"
)

// Deref normalizes a value that came out of an ordered map. Nested objects
// are stored by value after unmarshalling and by pointer when built in code,
// so both shapes are accepted.
func Deref(value any) (orderedmap.OrderedMap, bool) {
	switch v := value.(type) {
	case orderedmap.OrderedMap:
		return v, true
	case *orderedmap.OrderedMap:
		if v == nil {
			return orderedmap.OrderedMap{}, false
		}
		return *v, true
	default:
		return orderedmap.OrderedMap{}, false
	}
}
