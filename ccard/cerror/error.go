// Package cerror holds the failure kinds shared by the card table codec.
// Every kind aborts the whole operation; callers match them with errors.As
// after any amount of wrapping.
package cerror

import (
	"fmt"
)

type (
	// ErrTruncatedInput means the buffer ends before the geometry the header
	// or a record demands.
	ErrTruncatedInput struct {
		Caller string
		Offset int64
		Need   int64
		Have   int64
	}
	// ErrPointerOutOfBounds means a relative pointer resolves outside of the
	// region strings may live in.
	ErrPointerOutOfBounds struct {
		Caller      string
		EntryIndex  int
		Slot        string
		FieldOffset int64
		Pointer     int64
		Resolved    int64
		Lower       int64
		Upper       int64
	}
	// ErrMalformedInput means a structured document is missing a required
	// field or holds a value its field cannot represent.
	ErrMalformedInput struct {
		Caller string
		Field  string
		Reason string
	}
	// ErrDestinationExists is returned instead of overwriting a file the
	// caller did not allow to be replaced.
	ErrDestinationExists struct {
		Caller string
		Path   string
	}
	// ErrIOFailure wraps a failure of the byte source or sink.
	ErrIOFailure struct {
		Caller string
		Path   string
		Err    error
	}
)

func (r ErrTruncatedInput) Error() string {
	return fmt.Sprintf(
		`%s: truncated input: need %d bytes at offset %d, buffer has %d`,
		r.Caller, r.Need, r.Offset, r.Have,
	)
}

func (r ErrPointerOutOfBounds) Error() string {
	return fmt.Sprintf(
		`%s: entry %d slot "%s": pointer %d at offset %d resolves to %d, outside [%d, %d)`,
		r.Caller, r.EntryIndex, r.Slot, r.Pointer, r.FieldOffset, r.Resolved, r.Lower, r.Upper,
	)
}

func (r ErrMalformedInput) Error() string {
	if r.Field == "" {
		return fmt.Sprintf(`%s: malformed document: %s`, r.Caller, r.Reason)
	}
	return fmt.Sprintf(`%s: malformed document: field "%s": %s`, r.Caller, r.Field, r.Reason)
}

func (r ErrDestinationExists) Error() string {
	return fmt.Sprintf(`%s: destination file existed: "%s"`, r.Caller, r.Path)
}

func (r ErrIOFailure) Error() string {
	return fmt.Sprintf(`%s: io failure on "%s": %v`, r.Caller, r.Path, r.Err)
}

func (r ErrIOFailure) Unwrap() error {
	return r.Err
}
