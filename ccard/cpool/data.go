// Package cpool builds the string pool that follows the record block and
// patches every record pointer to reference it.
package cpool

type (
	// Placement records where one pooled string ended up.
	Placement struct {
		EntryIndex  int    `json:"entry_index"`
		Slot        string `json:"slot"`
		FieldOffset int64  `json:"field_offset"`
		Start       int64  `json:"start"`
		// Length counts the string bytes, the terminator and the padding.
		Length  int   `json:"length"`
		Pointer int64 `json:"pointer"`
	}
)
