package cheader

import (
	"github.com/maxcabd/custom-card-parser/ccard/clayout"
	"github.com/maxcabd/custom-card-parser/ccard/lbytes"
	"github.com/pkg/errors"
)

func Decode(reader *lbytes.Reader) (*Header, error) {
	headerInstructions := lbytes.CreateLayoutInstructions(reader, 0, clayout.Header.Values())
	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		err := errors.Wrap(err, "cheader.Decode error")
		return nil, err
	}

	return header, nil
}
