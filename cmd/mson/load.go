package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mson-format/go-mson/element"
	"github.com/mson-format/go-mson/parse"
)

// readArg reads a source argument, with "-" standing for stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func compileArg(arg string, opts ...parse.ParseOption) (*element.Document, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %s: %w", arg, err)
	}
	return doc, nil
}

// sourceArgs defaults to stdin when no files are named.
func sourceArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
