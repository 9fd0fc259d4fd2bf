package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/maxcabd/custom-card-parser/ccard"
	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/maxcabd/custom-card-parser/ccard/cstruct"
	"github.com/maxcabd/custom-card-parser/ccard/ctext"
	"github.com/maxcabd/custom-card-parser/ui"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"pick a file to convert from the current directory"`
		Convert     *ConvertCmd     `arg:"subcommand:convert" help:"convert a .binary file to a document or back"`
		Verify      *VerifyCmd      `arg:"subcommand:verify" help:"check that a .binary file survives a round trip"`
		Charset     string          `arg:"--charset,env:CCARD_CHARSET" default:"utf-8" help:"string bytes convention: utf-8 or latin-1"`
	}
	InteractiveCmd struct{}
	ConvertCmd     struct {
		From  string `arg:"positional,required" help:"path to source file" placeholder:"FROM"`
		To    string `arg:"positional" help:"path to destination file; defaults to FROM with the other extension" placeholder:"TO"`
		Force bool   `arg:"env:CCARD_FORCE" help:"overwrite the destination file"`
	}
	VerifyCmd struct {
		Path string `arg:"positional,required" help:"path to a .binary file" placeholder:"FILE"`
		JSON bool   `arg:"--json" help:"print the report as JSON"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Convert custom card tables (.binary) to editable JSON or YAML and back.\n",
			"The direction is chosen from the source extension: .binary decodes,",
			".json, .jsonc, .yaml and .yml encode.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// ErrDestinationFormat is returned when TO names a format the conversion
// cannot produce, like a document written under a .binary name.
type ErrDestinationFormat struct {
	Path     string
	Expected ccard.Format
}

func (r ErrDestinationFormat) Error() string {
	return fmt.Sprintf(`destination "%s" does not hold %s; use a %s file name`, r.Path, r.Expected, r.Expected.Extension())
}

// ResolveDirection decides what the source is and what it becomes. A known
// extension wins; otherwise the content is sniffed. A destination whose
// known extension names the wrong kind of file is refused.
func ResolveDirection(from string, to string, fileBytes []byte) (ccard.Format, ccard.Format, error) {
	source, ok := ccard.FormatFromPath(from)
	if !ok {
		source = ccard.FormatBinary
		if ccard.IsDocument(fileBytes) {
			source = ccard.FormatJSON
		}
	}
	requested, known := ccard.FormatFromPath(to)

	if source != ccard.FormatBinary {
		if known && requested != ccard.FormatBinary {
			return "", "", ErrDestinationFormat{Path: to, Expected: ccard.FormatBinary}
		}
		return source, ccard.FormatBinary, nil
	}
	if !known {
		return source, ccard.FormatJSON, nil
	}
	if requested == ccard.FormatBinary {
		return "", "", ErrDestinationFormat{Path: to, Expected: ccard.FormatJSON}
	}
	return source, requested, nil
}

// DefaultDestination swaps the extension of from for the one of format.
func DefaultDestination(from string, format ccard.Format) string {
	ext := ""
	if index := strings.LastIndex(from, "."); index > strings.LastIndexAny(from, `/\`) {
		ext = from[index:]
	}
	return strings.TrimSuffix(from, ext) + format.Extension()
}

// Convert runs one conversion and returns the path it wrote.
func Convert(from string, to string, force bool, opts cstruct.Options) (string, error) {
	if !CheckExistence(from) {
		return "", cerror.ErrIOFailure{Caller: "Convert", Path: from, Err: os.ErrNotExist}
	}
	fileBytes, err := os.ReadFile(from)
	if err != nil {
		return "", cerror.ErrIOFailure{Caller: "Convert", Path: from, Err: err}
	}

	source, destination, err := ResolveDirection(from, to, fileBytes)
	if err != nil {
		return "", err
	}
	if to == "" {
		to = DefaultDestination(from, destination)
	}
	if CheckExistence(to) && !force {
		return "", cerror.ErrDestinationExists{Caller: "Convert", Path: to}
	}

	var resultBytes []byte
	if source == ccard.FormatBinary {
		resultBytes, err = ccard.DecodeBinary(fileBytes, destination, opts)
	} else {
		resultBytes, err = ccard.EncodeDocument(fileBytes, source, opts)
	}
	if err != nil {
		return "", errors.Wrapf(err, `Convert error on "%s"`, from)
	}

	// nothing is written unless the whole conversion succeeded
	if err := os.WriteFile(to, resultBytes, 0644); err != nil {
		return "", cerror.ErrIOFailure{Caller: "Convert", Path: to, Err: err}
	}
	return to, nil
}

func StartConverting(from string, to string, force bool, opts cstruct.Options) int {
	written, err := Convert(from, to, force, opts)
	var exists cerror.ErrDestinationExists
	switch {
	case err == nil:
		println("Done converting. Please check your result file at: " + written)
		return 0
	case errors.As(err, &exists):
		println("Destination file existed. Please type the command again with --force to allow overwriting!")
		println("Explicit --force is needed to make sure that you paid attention not to overwriting a game file in your folder.")
		return 1
	default:
		println("Error happened converting: " + err.Error())
		return 1
	}
}

func StartVerifying(path string, asJSON bool, opts cstruct.Options) int {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		println("Error happened reading file: " + err.Error())
		return 1
	}
	report, err := ccard.Verify(fileBytes, opts)
	if err != nil {
		println("Error happened verifying: " + err.Error())
		return 1
	}

	if asJSON {
		reportBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			println("Error happened writing the report: " + err.Error())
			return 1
		}
		println(string(reportBytes))
	} else {
		println(FormatReport(*report))
	}
	if !report.FixedPoint {
		return 1
	}
	return 0
}

func StartInteractive(opts cstruct.Options) int {
	cwd, err := os.Getwd()
	if err != nil {
		println("Error happened reading the current directory: " + err.Error())
		return 1
	}
	convert := func(path string, force bool) (string, error) {
		return Convert(path, "", force, opts)
	}
	if err := ui.Start(cwd, convert); err != nil {
		println("Error happened in interactive mode: " + err.Error())
		return 1
	}
	return 0
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	charset, err := ctext.ParseCharset(args.Charset)
	if err != nil {
		parser.Fail(err.Error())
	}
	opts := cstruct.Options{Charset: charset}

	code := 0
	switch {
	case args.Convert != nil:
		code = StartConverting(args.Convert.From, args.Convert.To, args.Convert.Force, opts)
	case args.Verify != nil:
		code = StartVerifying(args.Verify.Path, args.Verify.JSON, opts)
	default:
		code = StartInteractive(opts)
	}
	os.Exit(code)
}
