package cstruct

import (
	"github.com/maxcabd/custom-card-parser/ccard/centry"
	"github.com/maxcabd/custom-card-parser/ccard/cheader"
	"github.com/maxcabd/custom-card-parser/ccard/ctext"
)

type (
	// Table is a whole card table file with every pointer resolved. The
	// header fields sit at the top level of the structured document.
	Table struct {
		cheader.Header `yaml:",inline"`
		Entries        []centry.Entry `json:"entries" yaml:"entries"`
	}
	Options struct {
		Charset ctext.Charset
	}
)

func DefaultOptions() Options {
	return Options{
		Charset: ctext.DefaultCharset,
	}
}
