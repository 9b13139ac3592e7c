package fdon

import "fmt"

// ParseError records a single fatal parsing failure. FDON's parser
// aborts on the first error it detects, so a ParseError always carries
// both a human-readable message and the byte offset into the input at
// which the problem was found.
type ParseError struct {
	Msg    string
	Offset int
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", pe.Msg, pe.Offset)
}

func newParseError(offset int, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Offset: offset}
}
