package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksemonis/advisor/pkg/catalog"
	"github.com/ksemonis/advisor/pkg/domain"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name          string
		tokens        []string
		expectedError bool
		expected      domain.Course
	}{
		{
			name:          "number and title only",
			tokens:        []string{"CS101", "Intro to CS"},
			expectedError: false,
			expected:      domain.Course{Number: "CS101", Title: "Intro to CS"},
		},
		{
			name:          "with prerequisites in order",
			tokens:        []string{"CS101", "Intro to CS", "CS100", "MATH100"},
			expectedError: false,
			expected: domain.Course{
				Number:        "CS101",
				Title:         "Intro to CS",
				Prerequisites: []string{"CS100", "MATH100"},
			},
		},
		{
			name:          "single token",
			tokens:        []string{"CS101"},
			expectedError: true,
		},
		{
			name:          "no tokens",
			tokens:        nil,
			expectedError: true,
		},
		{
			name:          "empty number still parses",
			tokens:        []string{"", "Untitled"},
			expectedError: false,
			expected:      domain.Course{Number: "", Title: "Untitled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, err := catalog.ParseRecord(tt.tokens)

			if tt.expectedError {
				require.Error(t, err)
				var malformed *domain.MalformedRecordError
				require.ErrorAs(t, err, &malformed)
				assert.Equal(t, len(tt.tokens), malformed.Tokens)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, course)
		})
	}
}

func TestSplitLine(t *testing.T) {
	assert.Equal(t, []string{"CS300", "Data Structures", "CS200"}, catalog.SplitLine("CS300,Data Structures,CS200"))
	assert.Equal(t, []string{"CS100", "Intro to CS"}, catalog.SplitLine("CS100,Intro to CS"))
	// No quoting in this format: an empty line is one empty token.
	assert.Equal(t, []string{""}, catalog.SplitLine(""))
}
