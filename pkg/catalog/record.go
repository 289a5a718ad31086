package catalog

import (
	"strings"

	"github.com/ksemonis/advisor/pkg/domain"
)

// Delimiter separates fields in the course data format:
// number,title[,prerequisite]* with no quoting, escaping, or header row.
const Delimiter = ","

// SplitLine splits one raw input line into record tokens. The format
// has no quoting, so a plain split is the whole grammar; encoding/csv
// would accept a different language.
func SplitLine(line string) []string {
	return strings.Split(line, Delimiter)
}

// ParseRecord converts the tokens of one input line into a course
// record. It requires at least two tokens (number, title); any further
// tokens become prerequisites in their original order. Fewer than two
// tokens yields a *domain.MalformedRecordError, which callers treat as
// skip-and-continue, never as a fatal load failure.
//
// No validation beyond the token count is performed: an empty number
// parses, and prerequisites are not checked against the catalog.
func ParseRecord(tokens []string) (domain.Course, error) {
	if len(tokens) < 2 {
		return domain.Course{}, &domain.MalformedRecordError{
			Line:   strings.Join(tokens, Delimiter),
			Tokens: len(tokens),
		}
	}
	return domain.NewCourse(tokens[0], tokens[1], tokens[2:]), nil
}
