package cstruct

import (
	"github.com/maxcabd/custom-card-parser/ccard/centry"
	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/cheader"
	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ccard/lbytes"
	"github.com/pkg/errors"
)

// ToTable decodes a card table file. The declared entry count is only
// trusted after checking the buffer holds that many records.
func ToTable(bs []byte, opts Options) (*Table, error) {
	reader := lbytes.NewBytesReader(bs)

	header, err := cheader.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "ToTable error")
	}

	numEntries := int(header.EntryCount)
	need := clayout.RegionSize(numEntries)
	if int64(len(bs)) < need {
		return nil, cerror.ErrTruncatedInput{
			Caller: "ToTable",
			Offset: clayout.HeaderSize,
			Need:   need - clayout.HeaderSize,
			Have:   int64(len(bs)),
		}
	}

	entries, err := centry.DecodeBlock(reader, numEntries, opts.Charset)
	if err != nil {
		return nil, errors.Wrapf(err, "ToTable error decoding %d entries", numEntries)
	}

	return &Table{
		Header:  *header,
		Entries: entries,
	}, nil
}
