package cli

import (
	"fmt"
	"strings"

	"github.com/maxcabd/custom-card-parser/ccard"
)

func FormatReport(report ccard.Report) string {
	lines := []string{
		fmt.Sprintf("entries:        %d", report.NumEntries),
		fmt.Sprintf("strings:        %d", report.NumStrings),
		fmt.Sprintf("string pool:    %d bytes", report.PoolSize),
		fmt.Sprintf("size:           %d -> %d bytes", report.OriginalSize, report.EncodedSize),
	}
	if report.FixedPoint {
		lines = append(lines, "round trip:     ok")
	} else {
		lines = append(lines, fmt.Sprintf("round trip:     FAILED through %s at entry %d", report.FailedFormat, report.FirstDifference))
	}
	if report.ByteIdentical {
		lines = append(lines, "re-encoded file is byte identical")
	} else {
		lines = append(lines, "re-encoded file differs in layout only")
	}
	return strings.Join(lines, "\n")
}
