package diag

import (
	"fmt"
	"strings"
)

// Formatter renders Diagnostics as multi-line, rustc-flavored text for a
// terminal, in contrast to Diagnostic.Error's single-line form.
type Formatter struct{}

// NewFormatter creates a diagnostic formatter.
func NewFormatter() *Formatter { return &Formatter{} }

// Format renders a diagnostic as a short report.
func (f *Formatter) Format(d *Diagnostic) string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]: %s\n", d.Severity, d.Code, d.Message)
	fmt.Fprintf(&b, "  = kind: %s\n", d.Kind)
	for _, note := range d.Notes {
		fmt.Fprintf(&b, "  = note: %s\n", note)
	}
	return b.String()
}
