package main

import (
	"bufio"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ScoreMap
	}{
		{
			name:  "first and last column",
			input: "cat 5\ndog\tnoun  10\nfish a b c 3\n",
			want:  ScoreMap{"cat": 5, "dog": 10, "fish": 3},
		},
		{
			name:  "last occurrence wins",
			input: "a 1\na 2\n",
			want:  ScoreMap{"a": 2},
		},
		{
			name:  "blank lines skipped",
			input: "\n   \ncat 5\n\t\n",
			want:  ScoreMap{"cat": 5},
		},
		{
			name:  "signed scores",
			input: "up +3\ndown -4\n",
			want:  ScoreMap{"up": 3, "down": -4},
		},
		{
			name:  "no trailing newline",
			input: "cat 5",
			want:  ScoreMap{"cat": 5},
		},
		{
			name:  "empty",
			input: "",
			want:  ScoreMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDataset(strings.NewReader(tt.input), "dataset.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDatasetMalformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		line     int
		text     string
		checkErr func(t *testing.T, err error)
	}{
		{
			name:  "single field",
			input: "cat 5\nlonely\n",
			line:  2,
			text:  "lonely",
			checkErr: func(t *testing.T, err error) {
				assert.Equal(t, errTooFewFields, err)
			},
		},
		{
			name:  "score not an integer",
			input: "cat 5\n\ndog 1.5\n",
			line:  3,
			text:  "dog 1.5",
			checkErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, strconv.ErrSyntax))
			},
		},
		{
			name:  "score out of range",
			input: "big 99999999999999999999\n",
			line:  1,
			text:  "big 99999999999999999999",
			checkErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, strconv.ErrRange))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDataset(strings.NewReader(tt.input), "dataset.txt")
			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "dataset.txt", perr.Path)
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, tt.text, perr.Text)
			tt.checkErr(t, perr.Err)
			assert.Contains(t, err.Error(), "dataset.txt:"+strconv.Itoa(tt.line))
		})
	}
}

func TestParseDatasetLineTooLong(t *testing.T) {
	long := strings.Repeat("x", int(MaxLineSize)+1) + " 1\n"
	_, err := parseDataset(strings.NewReader(long), "dataset.txt")
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
	assert.True(t, errors.Is(err, bufio.ErrTooLong))
}
