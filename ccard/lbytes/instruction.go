package lbytes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ds"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ExecuteInstructions create the final value t with type T by
//
//   - Reading the instruction into a map, then
//   - Create JSON bytes from the map, and finally
//   - Read the JSON bytes into t
//
// In order to lessen the burden of manual mapping.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	tMap := map[string]any{}
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		tMap[instruction.Key] = value
	}
	tBytes, err := json.Marshal(tMap)
	if err != nil {
		err := errors.Wrapf(err, `ExecuteInstructions error marshalling map "%v" to JSON`, tMap)
		return nil, err
	}

	var t T
	if err := json.Unmarshal(tBytes, &t); err != nil {
		err := errors.Wrapf(
			err, `ExecuteInstructions error unmarshalling bytes "%s" to type "%T"`,
			string(tBytes), t,
		)
		return nil, err
	}

	return &t, nil
}

// ExtractValues is the reverse of ExecuteInstructions: it flattens t into a
// map keyed by its JSON names, keeping integers exact.
func ExtractValues[T any](t T) (map[string]any, error) {
	tBytes, err := json.Marshal(t)
	if err != nil {
		err := errors.Wrapf(err, `ExtractValues error marshalling "%T" to JSON`, t)
		return nil, err
	}
	decoder := json.NewDecoder(bytes.NewReader(tBytes))
	decoder.UseNumber()
	tMap := map[string]any{}
	if err := decoder.Decode(&tMap); err != nil {
		err := errors.Wrapf(err, `ExtractValues error decoding "%s" to a map`, string(tBytes))
		return nil, err
	}
	return tMap, nil
}

// CreateFieldReadFunction reads one numeric field of a record starting at
// base.
func CreateFieldReadFunction(reader *Reader, base int64, field clayout.Field) ReadFunction {
	offset := base + int64(field.Offset)
	return func() (any, error) {
		switch field.Kind {
		case clayout.KindUint16:
			return reader.ReadUint16At(offset)
		case clayout.KindUint32:
			return reader.ReadUint32At(offset)
		case clayout.KindInt32:
			return reader.ReadIntAt(offset)
		case clayout.KindPointer:
			return reader.ReadLongAt(offset)
		default:
			return nil, ds.ErrUnreachableCode{Caller: "CreateFieldReadFunction " + string(field.Kind)}
		}
	}
}

func CreateLayoutInstructions(reader *Reader, base int64, fields []clayout.Field) []Instruction {
	return lo.Map(
		fields,
		func(field clayout.Field, _ int) Instruction {
			return Instruction{
				Key:          field.Name,
				ReadFunction: CreateFieldReadFunction(reader, base, field),
			}
		},
	)
}

// PutValues writes every field of fields from values, a map produced by
// ExtractValues. A missing key is an error rather than a silent zero.
func PutValues(bs []byte, base int64, fields []clayout.Field, values map[string]any) error {
	for _, field := range fields {
		raw, ok := values[field.Name]
		if !ok {
			return errors.Errorf(`PutValues error: no value for field "%s"`, field.Name)
		}
		number, ok := raw.(json.Number)
		if !ok {
			return errors.Errorf(`PutValues error: value "%v" of field "%s" is not a number`, raw, field.Name)
		}
		value, err := number.Int64()
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf(`PutValues error: field "%s"`, field.Name))
		}
		if err := PutField(bs, base, field, value); err != nil {
			return errors.Wrap(err, "PutValues error")
		}
	}
	return nil
}
