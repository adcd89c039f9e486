// Package diag defines the single error channel the semantic core surfaces
// to its caller: a Diagnostic carrying one of the three error kinds named
// by the specification (NameError, TypeError, ProgramError).
package diag

import "fmt"

// Stage identifies which phase of analysis produced the diagnostic.
type Stage string

const (
	StageTypeCheck Stage = "typecheck"
	StageRegistry  Stage = "registry"
)

// Severity captures how impactful the diagnostic is. The core only ever
// raises errors (analysis aborts on the first one), but Severity is kept
// for parity with the richer diagnostic model a future incremental checker
// might want.
type Severity string

const (
	SeverityError Severity = "error"
)

// Kind is one of the three error kinds the specification names.
type Kind string

const (
	KindName    Kind = "NameError"
	KindType    Kind = "TypeError"
	KindProgram Kind = "ProgramError"
)

// Code is a stable, greppable identifier for a diagnostic, independent of
// its human-readable message.
type Code string

const (
	CodeUnknownLvar       Code = "UNKNOWN_LVAR"
	CodeUnknownIvar       Code = "UNKNOWN_IVAR"
	CodeUnknownConst      Code = "UNKNOWN_CONST"
	CodeUnknownClass      Code = "UNKNOWN_CLASS"
	CodeUnknownMethod     Code = "UNKNOWN_METHOD"
	CodeNoSelf            Code = "NO_SELF"
	CodeBadReceiver       Code = "BAD_RECEIVER"
	CodeIfCondNotBool     Code = "IF_COND_NOT_BOOL"
	CodeIfBranchMismatch  Code = "IF_BRANCH_MISMATCH"
	CodeTypeMismatch      Code = "TYPE_MISMATCH"
	CodeArityMismatch     Code = "ARITY_MISMATCH"
	CodeReturnMismatch    Code = "RETURN_MISMATCH"
	CodeBadVararg         Code = "BAD_VARARG_TYPE"
	CodeArrayElemMismatch Code = "ARRAY_ELEM_MISMATCH"
	CodeNotGeneric        Code = "NOT_GENERIC"
	CodeNotClassConst     Code = "NOT_CLASS_CONST"
	CodeVoidAssignment    Code = "VOID_ASSIGNMENT"
	CodeReassignLet       Code = "REASSIGN_LET"
	CodeReassignType      Code = "REASSIGN_TYPE_MISMATCH"
	CodeDoubleAddType     Code = "DOUBLE_ADD_TYPE"
	CodeDuplicateIvar     Code = "DUPLICATE_IVAR"
	CodeUnsupported       Code = "UNSUPPORTED"
)

// Diagnostic is the single error value the core ever raises. It implements
// error so it can be returned directly from Analyze.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Kind     Kind
	Code     Code
	Message  string
	// Notes are optional supplementary lines (e.g. "note: declared here").
	Notes []string
}

// New constructs an error-severity diagnostic of the given kind.
func New(kind Kind, code Code, message string) *Diagnostic {
	return &Diagnostic{
		Stage:    StageTypeCheck,
		Severity: SeverityError,
		Kind:     kind,
		Code:     code,
		Message:  message,
	}
}

// Newf is New with fmt.Sprintf-style formatting of the message.
func Newf(kind Kind, code Code, format string, args ...any) *Diagnostic {
	return New(kind, code, fmt.Sprintf(format, args...))
}

// WithNote appends a supplementary note and returns the receiver for
// chaining at the call site.
func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// Error renders the diagnostic as a single line, satisfying the error
// interface.
func (d *Diagnostic) Error() string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}
