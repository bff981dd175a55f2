package todo

import "fmt"

// Kind classifies a validation failure.
type Kind string

const (
	// InvalidReference means a task reference did not match the
	// "number plus optional letter" grammar.
	InvalidReference Kind = "invalid reference"

	// OutOfRange means a reference resolved outside the document.
	OutOfRange Kind = "out of range"

	// LimitExceeded means an operation would break a size limit.
	LimitExceeded Kind = "limit exceeded"

	// EmptyInput means required text was empty or whitespace-only.
	EmptyInput Kind = "empty input"
)

// ValidationError reports bad input shape or range. It is recoverable:
// the operation that returned it applied no mutation.
type ValidationError struct {
	Kind Kind
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// validationErrorf builds a ValidationError with a formatted message.
func validationErrorf(kind Kind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// FormatError reports on-disk content that fails the archive file's
// strict structural rules. Only the archive parser returns it; the
// todo parser never does. The file is left untouched.
type FormatError struct {
	Line    int    // 1-based line number
	Content string // the offending line as read
	Msg     string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at line %d: %s", e.Msg, e.Line, e.Content)
}
