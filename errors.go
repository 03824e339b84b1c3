package main

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/pkg/errors"
)

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Msg
}

// IOError reports a file that could not be opened or read.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports a dataset line without a usable word and score.
// Line is 1-based.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed line %q: %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingWordError reports a kept word that has no score in the dataset.
type MissingWordError struct {
	Word string
}

func (e *MissingWordError) Error() string {
	return fmt.Sprintf("'%s' not found in dataset", e.Word)
}

// joinErrors renders a multierror on one line so it stays readable in logs.
func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
