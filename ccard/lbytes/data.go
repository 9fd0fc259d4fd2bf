// Package lbytes holds the little-endian primitives of the card table codec.
// Every read names its absolute offset; no cursor is shared between fields.
package lbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
