package cli

import (
	"errors"
	"flag"
	"io"
)

var (
	ErrNoArguments     = errors.New("no arguments provided")
	ErrManyOps         = errors.New("at most one of -get, -set, -delete, -select, -find may be given")
	ErrMissingValue    = errors.New("-set requires -value")
	ErrValueWithoutSet = errors.New("-value requires -set")
	ErrRawWithoutSet   = errors.New("-raw requires -set")
	ErrOutputForm      = errors.New("-compact and -pretty are mutually exclusive")
	ErrYAMLOutExtras   = errors.New("-yaml-out cannot be combined with -color, -sort-keys or -compact")
	ErrManyFiles       = errors.New("at most one input file may be given")
)

// Config represents the complete configuration for the jd tool.
type Config struct {
	// Operation (at most one)
	Get    string
	Set    string
	Delete string
	Select string
	Find   string

	// Assignment value
	Value string
	Raw   bool

	// Output form
	Pretty   bool
	Compact  bool
	Tab      string
	Color    bool
	SortKeys bool

	// YAML bridges
	YAMLIn  bool
	YAMLOut bool

	// Path strictness applied to every segment
	Optional bool
	Lenient  bool

	// Input document; empty means stdin
	File string
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	ops := 0
	for _, op := range []string{c.Get, c.Set, c.Delete, c.Select, c.Find} {
		if op != "" {
			ops++
		}
	}
	if ops > 1 {
		return ErrManyOps
	}

	if c.Set != "" && c.Value == "" {
		return ErrMissingValue
	}
	if c.Set == "" && c.Value != "" {
		return ErrValueWithoutSet
	}
	if c.Set == "" && c.Raw {
		return ErrRawWithoutSet
	}

	if c.Compact && c.Pretty {
		return ErrOutputForm
	}
	if c.YAMLOut && (c.Color || c.SortKeys || c.Compact) {
		return ErrYAMLOutExtras
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *Result) {
	if len(args) == 0 {
		return nil, Usagef("Error: %v\n\n%s\n", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		get      = fs.String("get", "", "Print the element the path addresses")
		set      = fs.String("set", "", "Assign -value at the path and print the document")
		del      = fs.String("delete", "", "Delete the element the path addresses and print the document")
		sel      = fs.String("select", "", "Print elements matched by an RFC 9535 JSONPath query")
		find     = fs.String("find", "", "Print path/element pairs whose path matches the glob pattern")
		value    = fs.String("value", "", "Value for -set, parsed as a document after template expansion")
		raw      = fs.Bool("raw", false, "Assign -value as a string literal instead of parsing it")
		prettyF  = fs.Bool("pretty", false, "Indented output (the default)")
		compact  = fs.Bool("compact", false, "Single-line output")
		tab      = fs.String("tab", "  ", "Indentation unit for pretty output")
		color    = fs.Bool("color", false, "ANSI-colored output")
		sortKeys = fs.Bool("sort-keys", false, "Sort object keys in the output")
		yamlIn   = fs.Bool("yaml-in", false, "Read the input document as YAML")
		yamlOut  = fs.Bool("yaml-out", false, "Write the result as YAML")
		optional = fs.Bool("optional", false, "Treat every path segment as optional")
		lenient  = fs.Bool("lenient", false, "Treat every path segment as lenient")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, Success(Usage() + "\n")
		}
		return nil, Usagef("Error: failed to parse arguments: %v\n\n%s\n", err, Usage())
	}

	files := fs.Args()
	if len(files) > 1 {
		return nil, Usagef("Error: %v\n\n%s\n", ErrManyFiles, Usage())
	}
	var file string
	if len(files) == 1 {
		file = files[0]
	}

	config := &Config{
		Get:      *get,
		Set:      *set,
		Delete:   *del,
		Select:   *sel,
		Find:     *find,
		Value:    *value,
		Raw:      *raw,
		Pretty:   *prettyF,
		Compact:  *compact,
		Tab:      *tab,
		Color:    *color,
		SortKeys: *sortKeys,
		YAMLIn:   *yamlIn,
		YAMLOut:  *yamlOut,
		Optional: *optional,
		Lenient:  *lenient,
		File:     file,
	}

	if err := config.Validate(); err != nil {
		return nil, Usagef("Error: %v\n\n%s\n", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jd - path-addressed JSON document editor

Usage: jd [options] [file]

Reads the document from file, or from stdin when no file is given.
Without an operation flag the document is reformatted and printed.

Options:
  -get PATH       Print the element the path addresses
  -set PATH       Assign -value at the path and print the document
  -value TEXT     Value for -set, parsed as a document after template
                  expansion ({{uuid}}, {{now}}, {{timestamp}})
  -raw            Assign -value as a string literal instead of parsing it
  -delete PATH    Delete the element the path addresses and print the document
  -select EXPR    Print elements matched by an RFC 9535 JSONPath query
  -find PATTERN   Print path/element pairs whose path matches the glob pattern
  -pretty         Indented output (the default)
  -tab STRING     Indentation unit for pretty output (default two spaces)
  -compact        Single-line output
  -color          ANSI-colored output
  -sort-keys      Sort object keys in the output
  -yaml-in        Read the input document as YAML
  -yaml-out       Write the result as YAML
  -optional       Treat every path segment as optional
  -lenient        Treat every path segment as lenient
  -h, -help       Show this help message

Paths separate segments with '.'; a '?' suffix marks a segment optional,
a '~' suffix marks it lenient, and a backslash escapes those characters
inside names.

Exit codes: 0 success, 1 operation error, 2 usage error.

Examples:
  jd doc.json                                 # pretty-print
  jd -get users.0.name doc.json               # query a path
  jd -set a.b -value '{"x":1}' doc.json       # assign a subtree
  jd -set meta.id -raw -value '{{uuid}}'      # generated string assign
  jd -delete items.2 doc.json                 # delete an element
  jd -select '$..price' doc.json              # JSONPath selection
  jd -find 'users.*.name' doc.json            # glob search
  jd -get meta?.labels -lenient doc.json      # short-circuit to null
  jd -yaml-in -yaml-out config.yaml           # YAML in and out`
}
