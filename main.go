package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

var errHelp = errors.New("help requested")

func newLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Out = out
	logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	logger.Level = logrus.WarnLevel
	return logger
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)
	mainLog := logger.WithField("component", "main")

	opts, err := parseOptions(args, stdout)
	if err != nil {
		if err == errHelp {
			return exitOK
		}
		mainLog.Error(err)
		writeUsage(stderr)
		return exitUsage
	}
	logger.SetLevel(opts.logLevel())

	if opts.Profile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.Profile),
			profile.Quiet, profile.NoShutdownHook).Stop()
		mainLog.Infof("writing CPU profile to %s", opts.Profile)
	}

	infused, err := NewInfuser(logger).InfuseFiles(opts.Args.Dataset, opts.Args.WordList)
	if err != nil {
		mainLog.Error(err)
		return exitFatal
	}
	if err := WriteInfused(stdout, infused); err != nil {
		mainLog.Error(err)
		return exitFatal
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
