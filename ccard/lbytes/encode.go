package lbytes

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ds"
)

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}

// EncodeNullString appends the terminating zero byte. Text that already
// holds a zero byte would be cut short on the next read, so it is refused.
func EncodeNullString(text []byte) ([]byte, error) {
	if bytes.IndexByte(text, 0) >= 0 {
		return nil, fmt.Errorf(`string "%s" contains a zero byte`, text)
	}
	bs := make([]byte, 0, len(text)+1)
	bs = append(bs, text...)
	bs = append(bs, '\u0000')
	return bs, nil
}

func PutUint16At(bs []byte, offset int64, value uint16) {
	binary.LittleEndian.PutUint16(bs[offset:], value)
}

func PutUint32At(bs []byte, offset int64, value uint32) {
	binary.LittleEndian.PutUint32(bs[offset:], value)
}

func PutLongAt(bs []byte, offset int64, value int64) {
	binary.LittleEndian.PutUint64(bs[offset:], uint64(value))
}

// PutField writes value at base + field.Offset using the field's kind,
// refusing values the kind cannot represent.
func PutField(bs []byte, base int64, field clayout.Field, value int64) error {
	offset := base + int64(field.Offset)
	if offset < 0 || offset+int64(field.Width()) > int64(len(bs)) {
		return cerror.ErrTruncatedInput{
			Caller: "PutField",
			Offset: offset,
			Need:   int64(field.Width()),
			Have:   int64(len(bs)),
		}
	}
	if err := CheckField(field, value); err != nil {
		return err
	}
	switch field.Kind {
	case clayout.KindUint16:
		PutUint16At(bs, offset, uint16(value))
	case clayout.KindUint32:
		PutUint32At(bs, offset, uint32(value))
	case clayout.KindInt32:
		PutUint32At(bs, offset, uint32(int32(value)))
	case clayout.KindPointer:
		PutLongAt(bs, offset, value)
	case clayout.KindPadding:
		copy(bs[offset:offset+int64(field.Length)], CreateZeroBytes(field.Length))
	default:
		return ds.ErrUnreachableCode{Caller: "PutField"}
	}
	return nil
}

// CheckField reports whether value fits the width and signedness of field.
func CheckField(field clayout.Field, value int64) error {
	fits := true
	switch field.Kind {
	case clayout.KindUint16:
		fits = ds.Fits[uint16](value)
	case clayout.KindUint32:
		fits = ds.Fits[uint32](value)
	case clayout.KindInt32:
		fits = ds.Fits[int32](value)
	}
	if !fits {
		return cerror.ErrMalformedInput{
			Caller: "CheckField",
			Field:  field.Name,
			Reason: fmt.Sprintf(`value %d does not fit %s`, value, field.Kind),
		}
	}
	return nil
}
