package report

import (
	"fmt"
	"io"

	"github.com/example/osshealth/internal/finding"
)

// Write prints errors then warnings, one message per line, in detection order.
func Write(w io.Writer, findings *finding.List) error {
	if err := writeSection(w, findings.Errors(), "Errors found:", "No errors"); err != nil {
		return err
	}
	return writeSection(w, findings.Warnings(), "Warnings found:", "No warnings")
}

func writeSection(w io.Writer, items []finding.Finding, header, empty string) error {
	if len(items) == 0 {
		_, err := fmt.Fprintf(w, "\n%s\n", empty)
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", header); err != nil {
		return err
	}
	for _, f := range items {
		if _, err := fmt.Fprintln(w, f.Message); err != nil {
			return err
		}
	}
	return nil
}
