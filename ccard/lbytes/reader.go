package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// ReadBytesAt reads exactly n bytes starting at offset.
func (b *Reader) ReadBytesAt(offset int64, n int) ([]byte, error) {
	bs := make([]byte, n)
	// return early so that a zero-length read at the very end is not an EOF
	if n == 0 {
		return bs, nil
	}
	if offset < 0 || offset+int64(n) > b.Size() {
		return nil, cerror.ErrTruncatedInput{
			Caller: "ReadBytesAt",
			Offset: offset,
			Need:   int64(n),
			Have:   b.Size(),
		}
	}
	_, err := b.ReadAt(bs, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, cerror.ErrIOFailure{Caller: "ReadBytesAt", Path: "<buffer>", Err: err}
	}
	return bs, nil
}

func (b *Reader) ReadUint16At(offset int64) (uint16, error) {
	bs, err := b.ReadBytesAt(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint32At(offset int64) (uint32, error) {
	bs, err := b.ReadBytesAt(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadIntAt(offset int64) (int32, error) {
	result, err := b.ReadUint32At(offset)
	return int32(result), err
}

func (b *Reader) ReadLongAt(offset int64) (int64, error) {
	bs, err := b.ReadBytesAt(offset, 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(bs)), nil
}

// ReadNullStringAt reads the bytes from offset up to, not including, the
// next zero byte. A run that reaches the end of the buffer without a
// terminator is truncated input.
func (b *Reader) ReadNullStringAt(offset int64) ([]byte, error) {
	if offset < 0 || offset >= b.Size() {
		return nil, cerror.ErrTruncatedInput{
			Caller: "ReadNullStringAt",
			Offset: offset,
			Need:   1,
			Have:   b.Size(),
		}
	}
	rest, err := b.ReadBytesAt(offset, int(b.Size()-offset))
	if err != nil {
		return nil, err
	}
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return nil, cerror.ErrTruncatedInput{
			Caller: "ReadNullStringAt",
			Offset: offset,
			Need:   int64(len(rest)) + 1,
			Have:   b.Size(),
		}
	}
	return rest[:end], nil
}
