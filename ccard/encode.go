package ccard

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/cstruct"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EncodeDocument turns a JSON or YAML document into card table bytes.
func EncodeDocument(bs []byte, format Format, opts cstruct.Options) ([]byte, error) {
	table, err := ParseDocument(bs, format)
	if err != nil {
		return nil, err
	}
	return cstruct.EncodeTable(*table, opts)
}

// ParseDocument reads a document into a table. JSON may carry comments and
// trailing commas; YAML is first normalized to JSON so both formats go
// through the same checks.
func ParseDocument(bs []byte, format Format) (*cstruct.Table, error) {
	switch format {
	case FormatJSON:
	case FormatYAML:
		var document any
		if err := yaml.Unmarshal(bs, &document); err != nil {
			return nil, cerror.ErrMalformedInput{Caller: "ParseDocument", Reason: err.Error()}
		}
		if _, ok := document.(map[string]any); !ok {
			return nil, cerror.ErrMalformedInput{
				Caller: "ParseDocument",
				Reason: fmt.Sprintf("top level is %T, not a mapping", document),
			}
		}
		jsonBytes, err := json.Marshal(document)
		if err != nil {
			return nil, cerror.ErrMalformedInput{Caller: "ParseDocument", Reason: err.Error()}
		}
		bs = jsonBytes
	default:
		return nil, cerror.ErrMalformedInput{
			Caller: "ParseDocument",
			Reason: `unsupported document format "` + string(format) + `"`,
		}
	}

	lhm := orderedmap.New()
	if err := json.Unmarshal(jsonc.ToJSON(bs), lhm); err != nil {
		return nil, cerror.ErrMalformedInput{Caller: "ParseDocument", Reason: err.Error()}
	}
	return cstruct.FromLinkedHashMap(*lhm)
}
