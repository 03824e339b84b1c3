package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepSet(t *testing.T) {
	keep := make(KeepSet)
	keep.Add("pear")
	keep.Add("apple")
	keep.Add("pear")

	assert.Equal(t, 2, keep.Len())
	assert.Equal(t, []string{"apple", "pear"}, keep.Sorted())
}

func TestParseWordList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  KeepSet
	}{
		{
			name:  "trimmed and deduplicated",
			input: "  dog\ncat  \n\tdog\t\nbig cat\n",
			want:  KeepSet{"dog": {}, "cat": {}, "big cat": {}},
		},
		{
			name:  "blank lines keep the empty word",
			input: "dog\n\n   \ncat",
			want:  KeepSet{"dog": {}, "": {}, "cat": {}},
		},
		{
			name:  "final newline adds no word",
			input: "dog\n",
			want:  KeepSet{"dog": {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep, err := parseWordList(strings.NewReader(tt.input), "words.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, keep)
		})
	}
}

func TestLoadWordList(t *testing.T) {
	path := writeFile(t, t.TempDir(), "words.txt", "dog", "cat", "dog")
	keep, err := LoadWordList(path, nullLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, keep.Sorted())
}
