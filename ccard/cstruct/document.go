package cstruct

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/iancoleman/orderedmap"
	"github.com/maxcabd/custom-card-parser/ccard/centry"
	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/cheader"
	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ccard/lbytes"
	"github.com/maxcabd/custom-card-parser/ds"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ToLinkedHashMap lays the table out as the structured document, keys in
// layout order so that the output diffs cleanly against older documents.
func ToLinkedHashMap(table Table) (*orderedmap.OrderedMap, error) {
	lhm := orderedmap.New()
	headerValues, err := lbytes.ExtractValues(table.Header)
	if err != nil {
		return nil, errors.Wrap(err, "ToLinkedHashMap error")
	}
	for _, field := range clayout.Header.Values() {
		lhm.Set(field.Name, headerValues[field.Name])
	}

	entries := make([]any, 0, len(table.Entries))
	for i := range table.Entries {
		entry := table.Entries[i]
		entryValues, err := lbytes.ExtractValues(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "ToLinkedHashMap error at entry %d", i)
		}
		entryLhm := orderedmap.New()
		for _, field := range clayout.Entry.Values() {
			entryLhm.Set(field.Name, entryValues[field.Name])
		}
		for _, slot := range clayout.Slots() {
			ref, err := entry.StringRef(slot)
			if err != nil {
				return nil, err
			}
			entryLhm.Set(centry.SlotKeys[slot], *ref)
		}
		entries = append(entries, entryLhm)
	}
	lhm.Set(clayout.FieldNameEntries, entries)

	return lhm, nil
}

// ImplyInteger accepts the shapes a number takes after unmarshalling and
// rejects anything with a fractional part.
func ImplyInteger(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		if math.Trunc(v) != v || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		i, err := v.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func createValueReadFunction(lhm orderedmap.OrderedMap, path string, field clayout.Field, required bool) lbytes.ReadFunction {
	return func() (any, error) {
		value, ok := lhm.Get(field.Name)
		if !ok {
			if !required {
				return 0, nil
			}
			return nil, cerror.ErrMalformedInput{Caller: "FromLinkedHashMap", Field: path + field.Name, Reason: "missing"}
		}
		i, ok := ImplyInteger(value)
		if !ok {
			return nil, cerror.ErrMalformedInput{
				Caller: "FromLinkedHashMap",
				Field:  path + field.Name,
				Reason: fmt.Sprintf(`"%v" is not an integer`, value),
			}
		}
		if err := lbytes.CheckField(field, i); err != nil {
			return nil, cerror.ErrMalformedInput{
				Caller: "FromLinkedHashMap",
				Field:  path + field.Name,
				Reason: fmt.Sprintf("value %d does not fit %s", i, field.Kind),
			}
		}
		return i, nil
	}
}

// createStringReadFunction treats a missing or null string as absent.
func createStringReadFunction(lhm orderedmap.OrderedMap, path string, key string) lbytes.ReadFunction {
	return func() (any, error) {
		value, ok := lhm.Get(key)
		if !ok || value == nil {
			return "", nil
		}
		s, ok := value.(string)
		if !ok {
			return nil, cerror.ErrMalformedInput{
				Caller: "FromLinkedHashMap",
				Field:  path + key,
				Reason: fmt.Sprintf(`"%v" is not a string`, value),
			}
		}
		return s, nil
	}
}

func createHeaderInstructions(lhm orderedmap.OrderedMap) []lbytes.Instruction {
	return lo.Map(
		clayout.Header.Values(),
		func(field clayout.Field, _ int) lbytes.Instruction {
			required := field.Name != clayout.FieldNameEntryCount
			return lbytes.Instruction{
				Key:          field.Name,
				ReadFunction: createValueReadFunction(lhm, "", field, required),
			}
		},
	)
}

func createEntryInstructions(lhm orderedmap.OrderedMap, index int) []lbytes.Instruction {
	path := fmt.Sprintf("%s[%d].", clayout.FieldNameEntries, index)
	instructions := lo.Map(
		clayout.Entry.Values(),
		func(field clayout.Field, _ int) lbytes.Instruction {
			return lbytes.Instruction{
				Key:          field.Name,
				ReadFunction: createValueReadFunction(lhm, path, field, true),
			}
		},
	)
	for _, slot := range clayout.Slots() {
		key := centry.SlotKeys[slot]
		instructions = append(instructions, lbytes.Instruction{
			Key:          key,
			ReadFunction: createStringReadFunction(lhm, path, key),
		})
	}
	return instructions
}

// FromLinkedHashMap checks the structured document and builds the table
// from it. Every numeric field is required except entry_count, which is
// derived from the entries; a missing string means the slot is empty.
func FromLinkedHashMap(lhm orderedmap.OrderedMap) (*Table, error) {
	header, err := lbytes.ExecuteInstructions[cheader.Header](createHeaderInstructions(lhm))
	if err != nil {
		return nil, err
	}

	entriesAny, ok := lhm.Get(clayout.FieldNameEntries)
	if !ok {
		return nil, cerror.ErrMalformedInput{Caller: "FromLinkedHashMap", Field: clayout.FieldNameEntries, Reason: "missing"}
	}
	entriesSlice, ok := entriesAny.([]any)
	if !ok {
		return nil, cerror.ErrMalformedInput{
			Caller: "FromLinkedHashMap",
			Field:  clayout.FieldNameEntries,
			Reason: fmt.Sprintf(`"%v" is not a list`, entriesAny),
		}
	}

	entries := make([]centry.Entry, 0, len(entriesSlice))
	for i, entryAny := range entriesSlice {
		entryLhm, ok := ds.Deref(entryAny)
		if !ok {
			return nil, cerror.ErrMalformedInput{
				Caller: "FromLinkedHashMap",
				Field:  fmt.Sprintf("%s[%d]", clayout.FieldNameEntries, i),
				Reason: "not an object",
			}
		}
		entry, err := lbytes.ExecuteInstructions[centry.Entry](createEntryInstructions(entryLhm, i))
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if len(entries) <= math.MaxUint16 {
		header.EntryCount = uint16(len(entries))
	}
	return &Table{
		Header:  *header,
		Entries: entries,
	}, nil
}
