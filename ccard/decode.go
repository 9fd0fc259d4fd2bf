package ccard

import (
	"encoding/json"

	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/cstruct"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DecodeBinary turns card table bytes into a document in the given format.
func DecodeBinary(bs []byte, format Format, opts cstruct.Options) ([]byte, error) {
	table, err := cstruct.ToTable(bs, opts)
	if err != nil {
		return nil, err
	}
	return RenderDocument(*table, format)
}

func RenderDocument(table cstruct.Table, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		lhm, err := cstruct.ToLinkedHashMap(table)
		if err != nil {
			return nil, err
		}
		decodedBytes, err := json.MarshalIndent(lhm, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "RenderDocument error marshalling JSON")
		}
		return decodedBytes, nil
	case FormatYAML:
		decodedBytes, err := yaml.Marshal(table)
		if err != nil {
			return nil, errors.Wrap(err, "RenderDocument error marshalling YAML")
		}
		return decodedBytes, nil
	default:
		return nil, cerror.ErrMalformedInput{
			Caller: "RenderDocument",
			Reason: `unsupported document format "` + string(format) + `"`,
		}
	}
}
