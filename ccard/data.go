// Package ccard stores the code to decode and encode custom card table
// files (".binary") to and from an editable JSON or YAML document.
package ccard

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

type Format string

const (
	FormatBinary = Format("binary")
	FormatJSON   = Format("json")
	FormatYAML   = Format("yaml")
)

// FormatFromPath picks a format from the file extension. The second result
// is false for extensions the tool does not know.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".binary", ".bin":
		return FormatBinary, true
	case ".json", ".jsonc":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Extension is the conventional file extension of a format.
func (r Format) Extension() string {
	return "." + string(r)
}

// IsDocument sniffs whether bs looks like a JSON document. Card tables
// start with small 16-bit counters, so their first byte is never '{'.
func IsDocument(bs []byte) bool {
	trimmed := bytes.TrimSpace(jsonc.ToJSON(bs))
	return len(trimmed) > 0 && trimmed[0] == '{'
}
