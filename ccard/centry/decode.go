package centry

import (
	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ccard/ctext"
	"github.com/maxcabd/custom-card-parser/ccard/lbytes"
	"github.com/pkg/errors"
)

// DecodeSlot reads the pointer field of slot in record index and returns
// the string it references, or "" for a zero pointer.
func DecodeSlot(reader *lbytes.Reader, index int, field clayout.Field, charset ctext.Charset) (string, error) {
	fieldOffset := clayout.FieldOffset(index, field)
	pointer, err := reader.ReadLongAt(fieldOffset)
	if err != nil {
		return "", errors.Wrapf(err, `DecodeSlot error reading pointer "%s"`, field.Name)
	}
	if pointer == 0 {
		return "", nil
	}

	lower := int64(clayout.HeaderSize)
	upper := reader.Size()
	// compared against the distance to the bounds so a huge pointer cannot
	// overflow into range
	if pointer < lower-fieldOffset || pointer >= upper-fieldOffset {
		return "", cerror.ErrPointerOutOfBounds{
			Caller:      "DecodeSlot",
			EntryIndex:  index,
			Slot:        field.Name,
			FieldOffset: fieldOffset,
			Pointer:     pointer,
			Resolved:    clayout.Resolve(fieldOffset, pointer),
			Lower:       lower,
			Upper:       upper,
		}
	}

	bs, err := reader.ReadNullStringAt(clayout.Resolve(fieldOffset, pointer))
	if err != nil {
		return "", errors.Wrapf(err, `DecodeSlot error reading string of entry %d slot "%s"`, index, field.Name)
	}
	text, err := charset.Decode(bs)
	if err != nil {
		return "", errors.Wrapf(err, `DecodeSlot error decoding string of entry %d slot "%s"`, index, field.Name)
	}
	return text, nil
}

func DecodeEntry(reader *lbytes.Reader, index int, charset ctext.Charset) (*Entry, error) {
	base := clayout.RecordOffset(index)
	entryInstructions := lbytes.CreateLayoutInstructions(reader, base, clayout.Entry.Values())
	entry, err := lbytes.ExecuteInstructions[Entry](entryInstructions)
	if err != nil {
		err := errors.Wrapf(err, "DecodeEntry error at index %d", index)
		return nil, err
	}

	for _, field := range clayout.Entry.Pointers() {
		text, err := DecodeSlot(reader, index, field, charset)
		if err != nil {
			return nil, err
		}
		ref, err := entry.StringRef(field.Name)
		if err != nil {
			return nil, err
		}
		*ref = text
	}

	return entry, nil
}

func DecodeBlock(reader *lbytes.Reader, numEntries int, charset ctext.Charset) ([]Entry, error) {
	entries := make([]Entry, 0, numEntries)
	for i := 0; i < numEntries; i++ {
		entry, err := DecodeEntry(reader, i, charset)
		if err != nil {
			err := errors.Wrap(err, "centry.DecodeBlock error")
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}
