package diag_test

import (
	"testing"

	"github.com/shiika-lang/shiika-core/internal/diag"
	"github.com/stretchr/testify/assert"
)

func TestNewSetsFields(t *testing.T) {
	d := diag.New(diag.KindType, diag.CodeTypeMismatch, "expected Int, got Bool")

	assert.Equal(t, diag.KindType, d.Kind)
	assert.Equal(t, diag.CodeTypeMismatch, d.Code)
	assert.Equal(t, diag.SeverityError, d.Severity)
	assert.Equal(t, "expected Int, got Bool", d.Message)
}

func TestErrorIncludesKindAndMessage(t *testing.T) {
	d := diag.New(diag.KindName, diag.CodeUnknownLvar, "unknown local \"x\"")
	assert.Equal(t, `NameError: unknown local "x"`, d.Error())
}

func TestWithNoteAppends(t *testing.T) {
	d := diag.New(diag.KindProgram, diag.CodeReassignLet, "x is read-only").WithNote("declared with let")
	assert.Equal(t, []string{"declared with let"}, d.Notes)
}

func TestFormatterIncludesNotes(t *testing.T) {
	d := diag.New(diag.KindProgram, diag.CodeReassignLet, "x is read-only").WithNote("declared with let")
	out := diag.NewFormatter().Format(d)
	assert.Contains(t, out, "ProgramError")
	assert.Contains(t, out, "declared with let")
}
