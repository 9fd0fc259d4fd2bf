package ccard

import (
	"bytes"
	"reflect"

	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ccard/cpool"
	"github.com/maxcabd/custom-card-parser/ccard/cstruct"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	// Report describes a decode, encode, decode cycle of one file.
	Report struct {
		NumEntries   int `json:"num_entries"`
		NumStrings   int `json:"num_strings"`
		OriginalSize int `json:"original_size"`
		EncodedSize  int `json:"encoded_size"`
		PoolSize     int `json:"pool_size"`
		// FixedPoint is true when decoding the re-encoded file gives back
		// the same table.
		FixedPoint bool `json:"fixed_point"`
		// ByteIdentical is true when the re-encoded file equals the input,
		// which only holds for files whose pool is already canonical.
		ByteIdentical bool `json:"byte_identical"`
		// FailedFormat names the document format whose round trip did not
		// come back to the same table.
		FailedFormat Format `json:"failed_format,omitempty"`
		// FirstDifference is the index of the first differing entry, or -1
		// when only the header differs or nothing does.
		FirstDifference int `json:"first_difference"`
	}
)

// Verify decodes bs, renders the table as every document format, parses
// each document back and encodes it, then decodes the result. This is the
// path convert takes in both directions, so a fixed point here means a
// file survives a round trip through its document.
func Verify(bs []byte, opts cstruct.Options) (*Report, error) {
	original, err := cstruct.ToTable(bs, opts)
	if err != nil {
		return nil, errors.Wrap(err, "Verify error decoding input")
	}

	report := Report{
		NumEntries:      len(original.Entries),
		OriginalSize:    len(bs),
		FixedPoint:      true,
		FirstDifference: -1,
	}
	for _, format := range []Format{FormatJSON, FormatYAML} {
		encoded, placements, decoded, err := roundTrip(*original, format, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "Verify error in the %s round trip", format)
		}
		if format == FormatJSON {
			report.NumStrings = len(placements)
			report.EncodedSize = len(encoded)
			report.PoolSize = len(encoded) - int(clayout.RegionSize(len(original.Entries)))
			report.ByteIdentical = bytes.Equal(bs, encoded)
		}
		if report.FixedPoint && !reflect.DeepEqual(original, decoded) {
			report.FixedPoint = false
			report.FailedFormat = format
			report.FirstDifference = findFirstDifference(*original, *decoded)
		}
	}
	return &report, nil
}

func roundTrip(table cstruct.Table, format Format, opts cstruct.Options) ([]byte, []cpool.Placement, *cstruct.Table, error) {
	documentBytes, err := RenderDocument(table, format)
	if err != nil {
		return nil, nil, nil, err
	}
	parsed, err := ParseDocument(documentBytes, format)
	if err != nil {
		return nil, nil, nil, err
	}
	encoded, placements, err := cstruct.EmitTable(*parsed, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	decoded, err := cstruct.ToTable(encoded, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	return encoded, placements, decoded, nil
}

func findFirstDifference(a cstruct.Table, b cstruct.Table) int {
	for i := 0; i < lo.Min([]int{len(a.Entries), len(b.Entries)}); i++ {
		if !reflect.DeepEqual(a.Entries[i], b.Entries[i]) {
			return i
		}
	}
	if len(a.Entries) != len(b.Entries) {
		return lo.Min([]int{len(a.Entries), len(b.Entries)})
	}
	return -1
}
