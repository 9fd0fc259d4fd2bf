package clayout

import (
	"fmt"

	"github.com/maxcabd/custom-card-parser/ds"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func (k Kind) Width() int {
	switch k {
	case KindUint16:
		return 2
	case KindUint32, KindInt32:
		return 4
	case KindPointer:
		return 8
	default:
		return 0
	}
}

func (r Field) Width() int {
	if r.Kind == KindPadding {
		return r.Length
	}
	return r.Kind.Width()
}

func (r Field) End() int {
	return r.Offset + r.Width()
}

// Values returns the plain numeric fields, the ones that show up in the
// structured document as numbers.
func (r Layout) Values() []Field {
	return lo.Filter(
		r.Fields,
		func(field Field, _ int) bool {
			return field.Kind != KindPointer && field.Kind != KindPadding
		},
	)
}

// Pointers returns the relative pointer fields in pooling order.
func (r Layout) Pointers() []Field {
	return lo.Filter(
		r.Fields,
		func(field Field, _ int) bool {
			return field.Kind == KindPointer
		},
	)
}

func (r Layout) Field(name string) (Field, bool) {
	return lo.Find(
		r.Fields,
		func(field Field) bool {
			return field.Name == name
		},
	)
}

// Validate checks that the fields tile the layout exactly: sorted, no gap,
// no overlap, and the last field ends at Size.
func (r Layout) Validate() error {
	cursor := 0
	names := map[string]struct{}{}
	for _, field := range r.Fields {
		if field.Width() <= 0 {
			return fmt.Errorf(`%s layout: field "%s" has no width`, r.Name, field.Name)
		}
		if field.Offset != cursor {
			return fmt.Errorf(
				`%s layout: field "%s" starts at 0x%X, expected 0x%X`,
				r.Name, field.Name, field.Offset, cursor,
			)
		}
		if _, ok := names[field.Name]; ok {
			return fmt.Errorf(`%s layout: duplicated field "%s"`, r.Name, field.Name)
		}
		names[field.Name] = struct{}{}
		cursor = field.End()
	}
	if cursor != r.Size {
		return fmt.Errorf(`%s layout: fields end at 0x%X, size is 0x%X`, r.Name, cursor, r.Size)
	}
	return nil
}

func init() {
	for _, layout := range []Layout{Header, Entry} {
		if err := layout.Validate(); err != nil {
			panic(errors.Wrap(err, "clayout init error"))
		}
	}
	if _, ok := Header.Field(FieldNameEntryCount); !ok {
		panic(ds.ErrUnreachableCode{Caller: "clayout init"})
	}
}

// Slots returns the string slot names in pooling order.
func Slots() []string {
	return lo.Map(
		Entry.Pointers(),
		func(field Field, _ int) string {
			return field.Name
		},
	)
}

// RecordOffset is the absolute offset of the record at index.
func RecordOffset(index int) int64 {
	return int64(HeaderSize) + int64(index)*int64(RecordSize)
}

// FieldOffset is the absolute offset of a record field.
func FieldOffset(index int, field Field) int64 {
	return RecordOffset(index) + int64(field.Offset)
}

// RegionSize is the number of bytes a header plus count records occupy,
// which is also where the string pool starts.
func RegionSize(count int) int64 {
	return RecordOffset(count)
}

// Resolve turns a relative pointer into an absolute offset. The base is
// always the absolute offset of the pointer field itself.
func Resolve(fieldOffset int64, pointer int64) int64 {
	return fieldOffset + pointer
}

// Relative is the inverse of Resolve.
func Relative(fieldOffset int64, target int64) int64 {
	return target - fieldOffset
}
