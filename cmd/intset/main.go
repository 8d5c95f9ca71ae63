// Command intset runs scripts of set operations against named IntSets and
// prints the results.
//
//	add a 1 2 3
//	add b 3 4
//	union c a b
//	dump c
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/rdeusser/intset/logging"
)

type options struct {
	script    string
	logLevel  string
	logFormat string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options

	flag := flag.NewFlagSet("intset", flag.ContinueOnError)

	flag.StringVar(&opts.script, "script", "", "script to run; default stdin")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flag.StringVar(&opts.logFormat, "log-format", string(logging.FormatPretty), "log format: pretty or json")

	if err := flag.Parse(args); err != nil {
		return err
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  level,
		Format: logging.Format(opts.logFormat),
		Name:   "intset",
	})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	in := stdin
	if opts.script != "" {
		f, err := os.Open(opts.script)
		if err != nil {
			return err
		}
		defer f.Close()

		in = f
	}

	if err := NewInterpreter(stdout, logger).Run(in); err != nil {
		logger.Error("script failed", zap.String("script", opts.script), zap.Error(err))
		return err
	}

	return nil
}
