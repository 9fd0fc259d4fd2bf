package cpool

import (
	"github.com/maxcabd/custom-card-parser/ccard/centry"
	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ccard/ctext"
	"github.com/maxcabd/custom-card-parser/ccard/lbytes"
	"github.com/maxcabd/custom-card-parser/ds"
	"github.com/pkg/errors"
)

// CalculatePaddedLength is the room a string of n text bytes takes in the
// pool: the bytes, the terminator, then zeroes up to the next multiple of
// the alignment counted from the string's first byte.
func CalculatePaddedLength(n int) int {
	terminated := n + 1
	return terminated + ds.PaddingToM(terminated, clayout.Alignment)
}

// AppendString appends text to bs as a padded, null-terminated run and
// returns the grown buffer with the offset the run starts at.
func AppendString(bs []byte, text []byte) ([]byte, int64, error) {
	start := int64(len(bs))
	terminated, err := lbytes.EncodeNullString(text)
	if err != nil {
		return nil, 0, err
	}
	bs = append(bs, terminated...)
	bs = append(bs, lbytes.CreateZeroBytes(CalculatePaddedLength(len(text))-len(terminated))...)
	return bs, start, nil
}

// Emit appends the pool for entries to bs, which must already hold the
// header and every record, and patches the pointer of every non-empty
// string. Entries go in index order and slots in layout order; empty
// strings write nothing and keep a zero pointer.
func Emit(bs []byte, entries []centry.Entry, charset ctext.Charset) ([]byte, []Placement, error) {
	if int64(len(bs)) != clayout.RegionSize(len(entries)) {
		return nil, nil, cerror.ErrTruncatedInput{
			Caller: "cpool.Emit",
			Offset: 0,
			Need:   clayout.RegionSize(len(entries)),
			Have:   int64(len(bs)),
		}
	}

	placements := make([]Placement, 0)
	for index := range entries {
		entry := &entries[index]
		for _, field := range clayout.Entry.Pointers() {
			ref, err := entry.StringRef(field.Name)
			if err != nil {
				return nil, nil, err
			}
			if *ref == "" {
				continue
			}

			key := centry.SlotKeys[field.Name]
			text, err := charset.Encode(*ref)
			if err != nil {
				return nil, nil, cerror.ErrMalformedInput{
					Caller: "cpool.Emit",
					Field:  key,
					Reason: errors.Wrapf(err, "entry %d", index).Error(),
				}
			}
			var start int64
			bs, start, err = AppendString(bs, text)
			if err != nil {
				return nil, nil, cerror.ErrMalformedInput{
					Caller: "cpool.Emit",
					Field:  key,
					Reason: errors.Wrapf(err, "entry %d", index).Error(),
				}
			}

			fieldOffset := clayout.FieldOffset(index, field)
			pointer := clayout.Relative(fieldOffset, start)
			if err := lbytes.PutField(bs, clayout.RecordOffset(index), field, pointer); err != nil {
				return nil, nil, errors.Wrap(err, "cpool.Emit error")
			}
			placements = append(placements, Placement{
				EntryIndex:  index,
				Slot:        field.Name,
				FieldOffset: fieldOffset,
				Start:       start,
				Length:      int(int64(len(bs)) - start),
				Pointer:     pointer,
			})
		}
	}

	return bs, placements, nil
}
