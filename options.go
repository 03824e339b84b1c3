package main

import (
	"fmt"
	"io"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type options struct {
	Verbose []bool `short:"v" long:"verbose" description:"Log progress to stderr; repeat for debug output"`
	Profile string `long:"profile" value-name:"DIR" description:"Write a CPU profile to DIR"`

	Args struct {
		Dataset  string `positional-arg-name:"dataset_file" description:"File whose lines hold a word first and an integer score last"`
		WordList string `positional-arg-name:"wordlist_file" description:"File with one word per line"`
	} `positional-args:"yes" required:"yes"`
}

func (o *options) logLevel() logrus.Level {
	switch len(o.Verbose) {
	case 0:
		return logrus.WarnLevel
	case 1:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

func newParser(opts *options) *flags.Parser {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "infuse-freq"
	parser.Usage = "[OPTIONS] <dataset_file> <wordlist_file>"
	return parser
}

// parseOptions returns errHelp when help was requested and writes the help
// text to help.
func parseOptions(args []string, help io.Writer) (*options, error) {
	opts := &options{}
	parser := newParser(opts)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(help, flagsErr.Message)
			return nil, errHelp
		}
		return nil, &UsageError{Msg: err.Error()}
	}
	if len(rest) > 0 {
		return nil, &UsageError{Msg: fmt.Sprintf("unexpected arguments: %s", strings.Join(rest, " "))}
	}
	return opts, nil
}

func writeUsage(w io.Writer) {
	newParser(&options{}).WriteHelp(w)
}
