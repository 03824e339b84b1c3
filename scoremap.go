package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MaxLineSize bounds a single line of either input file.
const MaxLineSize = 1 * bytesize.MB

// ScoreMap maps a dataset word to its score. Later lines overwrite earlier
// ones for the same word.
type ScoreMap map[string]int64

var errTooFewFields = errors.New("need a word and a score")

// LoadDataset reads the dataset at path into a ScoreMap. The file is closed
// before LoadDataset returns.
func LoadDataset(path string, logger logrus.FieldLogger) (ScoreMap, error) {
	reader, err := ReadFromFile(path, logger)
	if err != nil {
		return nil, errors.Wrap(err, "load dataset")
	}
	defer reader.Close()

	logger.WithField("size", reader.Size.String()).Infof("reading dataset %s", path)
	scores, err := parseDataset(reader, path)
	if err != nil {
		return nil, errors.Wrap(err, "load dataset")
	}
	logger.Infof("dataset %s holds %d words", path, len(scores))
	return scores, nil
}

func parseDataset(r io.Reader, path string) (ScoreMap, error) {
	scores := make(ScoreMap)
	err := scanLines(r, path, func(lineNo int, line string) error {
		fields := strings.Fields(line)
		switch len(fields) {
		case 0:
			return nil
		case 1:
			return &ParseError{Path: path, Line: lineNo, Text: line, Err: errTooFewFields}
		}
		word, last := fields[0], fields[len(fields)-1]
		score, err := strconv.ParseInt(last, 10, 64)
		if err != nil {
			return &ParseError{Path: path, Line: lineNo, Text: line, Err: err}
		}
		scores[word] = score
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// scanLines calls fn for every line of r, numbering lines from 1.
func scanLines(r io.Reader, path string, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, int(64*bytesize.KB)), int(MaxLineSize))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := fn(lineNo, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			return ioErr
		}
		return &IOError{Op: "read", Path: path, Err: err}
	}
	return nil
}
