/*
File    : lumascript/errs/errs.go
Package errs implements the single-slot error carrier shared by the
lexer and the parser.

Unlike gix's pkg/parser/errors.go, which accumulates a ParseErrors slice
so a whole file's worth of mistakes can be reported at once, lumascript's
front-end aborts on the first syntactic fault (spec §4.2.9, §7): only one
SyntaxError is ever meaningful, so Sink is a first-write-wins holder
rather than an accumulator.
*/
package errs

import "fmt"

// SyntaxError is the only error kind the lexer and parser produce.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// NewSyntaxError formats a SyntaxError the way fmt.Errorf would.
func NewSyntaxError(format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}

// Sink holds at most one error. Both the lexer and the parser write to
// it on failure; whichever call reaches it first wins, and later calls
// to Set are no-ops. Exactly one component runs at a time (§5), so no
// locking is needed.
type Sink struct {
	err *SyntaxError
}

// Set records err if no error has been recorded yet.
func (s *Sink) Set(err *SyntaxError) {
	if s.err == nil {
		s.err = err
	}
}

// Get returns the recorded error, or nil if none was set.
func (s *Sink) Get() *SyntaxError {
	return s.err
}

// HasError reports whether an error has been recorded.
func (s *Sink) HasError() bool {
	return s.err != nil
}
