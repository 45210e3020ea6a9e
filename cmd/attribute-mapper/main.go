// Package main provides the CLI entrypoint for attribute-mapper.
//
// attribute-mapper builds canonical attribute records from loosely keyed
// input using a YAML schema file:
//   - check: validate a schema file and print its diagnostics
//   - map: map one JSON or YAML record and print the result
//   - serve: expose mapping over HTTP
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const usage = `attribute-mapper - map loosely keyed records onto declared attributes

Usage:
  attribute-mapper check -schema FILE
  attribute-mapper map   -schema FILE -class NAME [-input FILE] [-extend NAME] [-format json|yaml]
  attribute-mapper serve -schema FILE [-addr :8080]

Run "attribute-mapper COMMAND -h" for command flags.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch args[0] {
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "map":
		return runMap(args[1:], stdin, stdout, stderr)
	case "serve":
		return runServe(args[1:], stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
