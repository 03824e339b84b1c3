package main

import (
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// KeepSet holds the words whose scores should be reported.
type KeepSet map[string]struct{}

func (set KeepSet) Add(word string) {
	set[word] = struct{}{}
}

func (set KeepSet) Len() int {
	return len(set)
}

// Sorted returns the words in ascending order.
func (set KeepSet) Sorted() []string {
	words := make([]string, 0, len(set))
	for word := range set {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// LoadWordList reads one word per line from path. The file is closed before
// LoadWordList returns.
func LoadWordList(path string, logger logrus.FieldLogger) (KeepSet, error) {
	reader, err := ReadFromFile(path, logger)
	if err != nil {
		return nil, errors.Wrap(err, "load word list")
	}
	defer reader.Close()

	logger.WithField("size", reader.Size.String()).Infof("reading word list %s", path)
	keep, err := parseWordList(reader, path)
	if err != nil {
		return nil, errors.Wrap(err, "load word list")
	}
	logger.Infof("word list %s holds %d distinct words", path, keep.Len())
	return keep, nil
}

// A blank line keeps the empty word, which no dataset line can score.
func parseWordList(r io.Reader, path string) (KeepSet, error) {
	keep := make(KeepSet)
	err := scanLines(r, path, func(_ int, line string) error {
		keep.Add(strings.TrimSpace(line))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keep, nil
}
