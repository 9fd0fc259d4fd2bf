package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maxcabd/custom-card-parser/ccard"
	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/cstruct"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `{
  "unk1": 0, "unk2": 0, "version": 1, "unk3": 0, "unk4": 0, "unk5": 0, "unk6": 0,
  "entries": [
    {
      "part": 1, "unk1": 0, "medal_type": 0, "unk2": 0, "unk3": 0, "unk4": 0, "unk5": 0,
      "unlock_condition": 0, "unk6": 0, "cost": 100, "index": 0,
      "card_id": "ABC"
    }
  ]
}`

func TestDefaultDestination(t *testing.T) {
	assert.Equal(t, "cards.json", DefaultDestination("cards.binary", ccard.FormatJSON))
	assert.Equal(t, "dir.v2/cards.binary", DefaultDestination("dir.v2/cards.json", ccard.FormatBinary))
	assert.Equal(t, "dir.v2/cards.json", DefaultDestination("dir.v2/cards", ccard.FormatJSON))
}

func TestResolveDirection(t *testing.T) {
	source, destination, err := ResolveDirection("a.binary", "", nil)
	require.NoError(t, err)
	assert.Equal(t, ccard.FormatBinary, source)
	assert.Equal(t, ccard.FormatJSON, destination)

	source, destination, err = ResolveDirection("a.binary", "a.yml", nil)
	require.NoError(t, err)
	assert.Equal(t, ccard.FormatBinary, source)
	assert.Equal(t, ccard.FormatYAML, destination)

	source, destination, err = ResolveDirection("a.yaml", "out", nil)
	require.NoError(t, err)
	assert.Equal(t, ccard.FormatYAML, source)
	assert.Equal(t, ccard.FormatBinary, destination)

	source, _, err = ResolveDirection("a.dat", "", []byte(document))
	require.NoError(t, err)
	assert.Equal(t, ccard.FormatJSON, source)

	source, _, err = ResolveDirection("a.dat", "", []byte{1, 0})
	require.NoError(t, err)
	assert.Equal(t, ccard.FormatBinary, source)
}

func TestResolveDirectionWrongDestination(t *testing.T) {
	var wrongFormat ErrDestinationFormat

	_, _, err := ResolveDirection("a.binary", "b.binary", nil)
	require.True(t, errors.As(err, &wrongFormat))
	assert.Equal(t, ccard.FormatJSON, wrongFormat.Expected)

	_, _, err = ResolveDirection("a.json", "x.json", nil)
	require.True(t, errors.As(err, &wrongFormat))
	assert.Equal(t, ccard.FormatBinary, wrongFormat.Expected)

	_, _, err = ResolveDirection("a.dat", "x.yaml", []byte(document))
	assert.True(t, errors.As(err, &wrongFormat))
}

func TestConvertBothWays(t *testing.T) {
	dir := t.TempDir()
	opts := cstruct.DefaultOptions()
	jsonPath := filepath.Join(dir, "cards.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(document), 0644))

	binaryPath, err := Convert(jsonPath, "", false, opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cards.binary"), binaryPath)

	_, err = Convert(binaryPath, jsonPath, false, opts)
	var exists cerror.ErrDestinationExists
	require.True(t, errors.As(err, &exists))

	written, err := Convert(binaryPath, jsonPath, true, opts)
	require.NoError(t, err)
	assert.Equal(t, jsonPath, written)

	decoded, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), `"card_id": "ABC"`)
	assert.Contains(t, string(decoded), `"entry_count": 1`)
}

func TestConvertFailuresWriteNothing(t *testing.T) {
	dir := t.TempDir()
	opts := cstruct.DefaultOptions()

	_, err := Convert(filepath.Join(dir, "missing.binary"), "", false, opts)
	var ioFailure cerror.ErrIOFailure
	assert.True(t, errors.As(err, &ioFailure))

	brokenPath := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(brokenPath, []byte(`{"entries": []}`), 0644))
	_, err = Convert(brokenPath, "", false, opts)
	var malformed cerror.ErrMalformedInput
	assert.True(t, errors.As(err, &malformed))
	assert.False(t, CheckExistence(filepath.Join(dir, "broken.binary")))

	truncatedPath := filepath.Join(dir, "truncated.binary")
	require.NoError(t, os.WriteFile(truncatedPath, []byte{0, 0, 0, 0, 0, 0, 0, 0, 5, 0}, 0644))
	_, err = Convert(truncatedPath, "", false, opts)
	var truncated cerror.ErrTruncatedInput
	assert.True(t, errors.As(err, &truncated))
	assert.False(t, CheckExistence(filepath.Join(dir, "truncated.json")))

	jsonPath := filepath.Join(dir, "cards.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(document), 0644))
	_, err = Convert(jsonPath, filepath.Join(dir, "copy.json"), false, opts)
	var wrongFormat ErrDestinationFormat
	assert.True(t, errors.As(err, &wrongFormat))
	assert.False(t, CheckExistence(filepath.Join(dir, "copy.json")))
}

func TestFormatReport(t *testing.T) {
	text := FormatReport(ccard.Report{NumEntries: 3, FixedPoint: true, ByteIdentical: false})
	assert.Contains(t, text, "entries:        3")
	assert.Contains(t, text, "round trip:     ok")
	assert.Contains(t, text, "differs in layout only")

	text = FormatReport(ccard.Report{FailedFormat: ccard.FormatYAML, FirstDifference: 2})
	assert.Contains(t, text, "FAILED through yaml at entry 2")
}

func TestStartVerifying(t *testing.T) {
	dir := t.TempDir()
	opts := cstruct.DefaultOptions()
	jsonPath := filepath.Join(dir, "cards.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(document), 0644))
	binaryPath, err := Convert(jsonPath, "", false, opts)
	require.NoError(t, err)

	assert.Equal(t, 0, StartVerifying(binaryPath, true, opts))
	assert.Equal(t, 0, StartVerifying(binaryPath, false, opts))
	assert.Equal(t, 1, StartVerifying(filepath.Join(dir, "missing.binary"), true, opts))
	assert.Equal(t, 1, StartVerifying(jsonPath, true, opts), "a document is not a card table")
}
