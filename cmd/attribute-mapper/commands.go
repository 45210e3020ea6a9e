package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"attribute-mapper/internal/diagnostic"
	"attribute-mapper/internal/mapping"
	"attribute-mapper/mapper"
)

// result is the printed outcome of mapping one record.
type result struct {
	Class       string         `json:"class" yaml:"class"`
	ID          string         `json:"id" yaml:"id"`
	Attributes  map[string]any `json:"attributes" yaml:"attributes"`
	Unprocessed []string       `json:"unprocessed,omitempty" yaml:"unprocessed,omitempty"`
	NilValued   []string       `json:"nil_valued,omitempty" yaml:"nil_valued,omitempty"`
}

func newResult(inst *mapper.Instance) result {
	return result{
		Class:       inst.Class().Name(),
		ID:          inst.ID().String(),
		Attributes:  inst.Attributes(),
		Unprocessed: inst.UnprocessedAttributeNames(),
		NilValued:   inst.NilValuedAttributeNames(),
	}
}

// loadClasses loads, validates and builds the schema file at path.
// Warnings are logged; errors fail.
func loadClasses(path string) (map[string]*mapper.Class, *diagnostic.Diagnostics, error) {
	if path == "" {
		return nil, nil, errors.New("-schema is required")
	}

	sf, err := mapping.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	classes, diags := mapping.Build(sf, builtinComputes())
	if diags.HasErrors() {
		return nil, diags, fmt.Errorf("invalid schema %s: %w", path, diags.Error())
	}

	return classes, diags, nil
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaPath := fs.String("schema", "", "schema file")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	sf, err := mapping.LoadFile(*schemaPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	diags := mapping.Validate(sf, builtinComputes())
	for _, d := range diags.All() {
		fmt.Fprintf(stdout, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return 1
	}

	fmt.Fprintf(stdout, "ok: %d classes\n", len(sf.Classes))

	return 0
}

func runMap(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("map", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaPath := fs.String("schema", "", "schema file")
	className := fs.String("class", "", "class to construct")
	inputPath := fs.String("input", "-", "input record, JSON or YAML; - reads stdin")
	extendName := fs.String("extend", "", "class whose attributes extend the instance after construction")
	format := fs.String("format", "json", "output format: json or yaml")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *verbose)

	classes, diags, err := loadClasses(*schemaPath)
	if err != nil {
		logger.Error("loading schema", "error", err)
		return 1
	}

	for _, w := range diags.Warnings {
		logger.Warn("schema", "diagnostic", w.String())
	}

	class, ok := classes[*className]
	if !ok {
		logger.Error("unknown class", "class", *className)
		return 1
	}

	input, err := readInput(*inputPath, stdin)
	if err != nil {
		logger.Error("reading input", "error", err)
		return 1
	}

	inst, err := class.New(input)
	if err != nil {
		logger.Error("mapping record", "class", class.Name(), "error", err)
		return 1
	}

	logger.Debug("constructed", "class", class.Name(), "id", inst.ID(), "nil_keys", inst.NilKeys())

	if *extendName != "" {
		ext, ok := classes[*extendName]
		if !ok {
			logger.Error("unknown extension class", "class", *extendName)
			return 1
		}

		if err := inst.Extend(ext.Schema().Attributes()...); err != nil {
			logger.Error("extending", "id", inst.ID(), "extension", ext.Name(), "error", err)
			return 1
		}

		logger.Debug("extended", "id", inst.ID(), "extension", ext.Name(), "attributes", inst.Schema().Names())
	}

	if err := writeResult(stdout, *format, newResult(inst)); err != nil {
		logger.Error("writing output", "error", err)
		return 1
	}

	return 0
}

// readInput decodes one record. YAML is a superset of JSON, so one
// decoder serves both.
func readInput(path string, stdin io.Reader) (map[string]any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	input := map[string]any{}
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input %s: %w", path, err)
	}

	return input, nil
}

func writeResult(w io.Writer, format string, res result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(res); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
