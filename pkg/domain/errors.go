package domain

import "fmt"

// MalformedRecordError reports an input line that produced fewer than
// the two tokens (number, title) a course record requires. It is
// recoverable: loaders skip the line and continue.
type MalformedRecordError struct {
	Line   string
	Tokens int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed course record %q: got %d tokens, need at least 2", e.Line, e.Tokens)
}
