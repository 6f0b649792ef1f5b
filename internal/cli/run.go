package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/pretty"

	"github.com/jacoelho/jdom"
	"github.com/jacoelho/jdom/internal/genvalue"
	"github.com/jacoelho/jdom/query"
	"github.com/jacoelho/jdom/yamlconv"
)

// Run executes the configured operation against the input document and
// writes the rendered result to stdout. A nil return means success.
func Run(cfg *Config, stdin io.Reader, stdout io.Writer) *Result {
	data, err := readInput(cfg, stdin)
	if err != nil {
		return Errorf("Error: %v\n", err)
	}

	doc, err := decodeInput(cfg, data)
	if err != nil {
		return Errorf("Error: %v\n", err)
	}

	result, err := apply(cfg, doc)
	if err != nil {
		return Errorf("Error: %v\n", err)
	}

	out, err := render(cfg, result)
	if err != nil {
		return Errorf("Error: %v\n", err)
	}

	if _, err := stdout.Write(out); err != nil {
		return Errorf("Error: write output: %v\n", err)
	}

	return nil
}

func readInput(cfg *Config, stdin io.Reader) ([]byte, error) {
	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", cfg.File, err)
		}
		return data, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func decodeInput(cfg *Config, data []byte) (jdom.Element, error) {
	if cfg.YAMLIn {
		return yamlconv.Decode(data)
	}
	return jdom.Parse(string(data))
}

// apply dispatches the configured operation and returns the element to
// render: the target for -get, the whole document for -set and -delete,
// the collected matches for -select and -find, and the document itself
// when no operation was requested.
func apply(cfg *Config, doc jdom.Element) (jdom.Element, error) {
	switch {
	case cfg.Get != "":
		root, path, err := compilePath(cfg, doc, cfg.Get)
		if err != nil {
			return nil, err
		}
		return root.Query(path)

	case cfg.Set != "":
		value, err := assignValue(cfg)
		if err != nil {
			return nil, err
		}
		root, path, err := compilePath(cfg, doc, cfg.Set)
		if err != nil {
			return nil, err
		}
		if _, err := root.Assign(path, value); err != nil {
			return nil, err
		}
		return doc, nil

	case cfg.Delete != "":
		root, path, err := compilePath(cfg, doc, cfg.Delete)
		if err != nil {
			return nil, err
		}
		if _, err := root.Delete(path); err != nil {
			return nil, err
		}
		return doc, nil

	case cfg.Select != "":
		matches, err := query.Select(doc, cfg.Select)
		if err != nil {
			return nil, err
		}
		return jdom.NewArray(matches...), nil

	case cfg.Find != "":
		found := jdom.NewObject()
		for _, m := range query.Glob(doc, cfg.Find) {
			found.Set(m.Path, m.Value)
		}
		return found, nil

	default:
		return doc, nil
	}
}

// compilePath compiles a path expression against the document root,
// folding the -optional and -lenient flags into every segment.
func compilePath(cfg *Config, doc jdom.Element, expr string) (jdom.Composite, *jdom.Segment, error) {
	root, ok := doc.(jdom.Composite)
	if !ok {
		return nil, nil, fmt.Errorf("%w: document root is a %s, path operations need an array or object", jdom.ErrTypeMismatch, doc.Kind())
	}

	path, err := jdom.ParsePath(expr)
	if err != nil {
		return nil, nil, err
	}

	for seg := path; seg != nil; seg = seg.Next() {
		if cfg.Optional {
			seg.SetOptional(true)
		}
		if cfg.Lenient {
			seg.SetLenient(true)
		}
	}

	return root, path, nil
}

// assignValue builds the element -set assigns: the -value text runs
// through the generated-value templates, then parses as a document, or
// stays a string literal under -raw.
func assignValue(cfg *Config) (jdom.Element, error) {
	expanded, err := genvalue.Expand(cfg.Value)
	if err != nil {
		return nil, fmt.Errorf("expand value template: %w", err)
	}

	if cfg.Raw {
		return jdom.String(expanded), nil
	}

	el, err := jdom.Parse(expanded)
	if err != nil {
		return nil, fmt.Errorf("parse value: %w", err)
	}
	return el, nil
}

// render serializes el per the output flags. A nil element (a query that
// short-circuited or found nothing) renders as null.
func render(cfg *Config, el jdom.Element) ([]byte, error) {
	if el == nil {
		el = jdom.Null{}
	}

	if cfg.YAMLOut {
		return yamlconv.Encode(el)
	}

	var out []byte
	if cfg.Compact {
		out = []byte(el.Compact())
	} else {
		out = []byte(el.Pretty("", cfg.Tab))
	}

	if cfg.SortKeys {
		out = pretty.PrettyOptions(out, &pretty.Options{Indent: cfg.Tab, SortKeys: true})
		if cfg.Compact {
			out = pretty.Ugly(out)
		}
	}
	if cfg.Color {
		out = pretty.Color(out, nil)
	}

	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	return out, nil
}
