package cheader

import (
	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ccard/lbytes"
	"github.com/pkg/errors"
)

func Encode(header Header) ([]byte, error) {
	values, err := lbytes.ExtractValues(header)
	if err != nil {
		return nil, errors.Wrap(err, "cheader.Encode error")
	}
	bs := lbytes.CreateZeroBytes(clayout.HeaderSize)
	if err := lbytes.PutValues(bs, 0, clayout.Header.Values(), values); err != nil {
		return nil, errors.Wrap(err, "cheader.Encode error")
	}
	return bs, nil
}
