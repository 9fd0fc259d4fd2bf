package centry

import (
	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ccard/lbytes"
	"github.com/pkg/errors"
)

// EncodeEntry writes the record with every pointer left at zero; the string
// pool patches them once string positions are known.
func EncodeEntry(entry Entry) ([]byte, error) {
	values, err := lbytes.ExtractValues(entry)
	if err != nil {
		return nil, errors.Wrap(err, "EncodeEntry error")
	}
	bs := lbytes.CreateZeroBytes(clayout.RecordSize)
	if err := lbytes.PutValues(bs, 0, clayout.Entry.Values(), values); err != nil {
		return nil, errors.Wrap(err, "EncodeEntry error")
	}
	return bs, nil
}

func EncodeBlock(entries []Entry) ([]byte, error) {
	bs := make([]byte, 0, CalculateBlockLength(len(entries)))
	for i, entry := range entries {
		entryBytes, err := EncodeEntry(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "centry.EncodeBlock error at index %d", i)
		}
		bs = append(bs, entryBytes...)
	}
	return bs, nil
}

func CalculateBlockLength(numEntries int) int {
	return numEntries * clayout.RecordSize
}
