package cstruct

import (
	"fmt"
	"math"

	"github.com/maxcabd/custom-card-parser/ccard/centry"
	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/cheader"
	"github.com/maxcabd/custom-card-parser/ccard/cpool"
	"github.com/pkg/errors"
)

// EmitTable encodes table and also returns where every string was pooled.
// The entry count written is always the number of entries; the one carried
// by table is ignored.
func EmitTable(table Table, opts Options) ([]byte, []cpool.Placement, error) {
	if len(table.Entries) > math.MaxUint16 {
		return nil, nil, cerror.ErrMalformedInput{
			Caller: "EmitTable",
			Field:  "entries",
			Reason: fmt.Sprintf("%d entries do not fit the 16-bit entry count", len(table.Entries)),
		}
	}
	header := table.Header
	header.EntryCount = uint16(len(table.Entries))

	headerBytes, err := cheader.Encode(header)
	if err != nil {
		return nil, nil, errors.Wrap(err, "EmitTable error")
	}
	blockBytes, err := centry.EncodeBlock(table.Entries)
	if err != nil {
		return nil, nil, errors.Wrap(err, "EmitTable error")
	}

	bs := make([]byte, 0, len(headerBytes)+len(blockBytes))
	bs = append(bs, headerBytes...)
	bs = append(bs, blockBytes...)

	bs, placements, err := cpool.Emit(bs, table.Entries, opts.Charset)
	if err != nil {
		return nil, nil, errors.Wrap(err, "EmitTable error")
	}
	return bs, placements, nil
}

func EncodeTable(table Table, opts Options) ([]byte, error) {
	bs, _, err := EmitTable(table, opts)
	return bs, err
}
