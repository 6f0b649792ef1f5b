package jdom

import (
	"testing"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// oracleDoc is shared by the gjson and sjson cross-checks; both sides
// address it with the same dotted paths.
const oracleDoc = `{"name":"svc","replicas":3,"ready":true,"labels":{"env":"prod","tier":"web"},"ports":[80,443,8080],"nodes":[{"host":"a","weight":1.5},{"host":"b","weight":2.25}],"note":null}`

func TestQueryAgreesWithGJSON(t *testing.T) {
	t.Parallel()

	paths := []string{
		"name",
		"replicas",
		"ready",
		"note",
		"labels",
		"labels.env",
		"ports",
		"ports.0",
		"ports.2",
		"nodes.1.host",
		"nodes.0.weight",
	}

	root := mustParseObject(t, oracleDoc)
	for _, path := range paths {
		got, err := Query(root, path)
		if err != nil {
			t.Fatalf("Query(%q) returned error: %v", path, err)
		}

		want := gjson.Get(oracleDoc, path)
		if !want.Exists() {
			t.Fatalf("gjson.Get(%q) found nothing, fix the corpus", path)
		}
		if got.Compact() != want.Raw {
			t.Fatalf("Query(%q) = %s, gjson raw %s", path, got.Compact(), want.Raw)
		}
	}
}

func TestQueryMissingAgreesWithGJSON(t *testing.T) {
	t.Parallel()

	paths := []string{"labels.absent", "ports.9", "nodes.1.absent"}

	root := mustParseObject(t, oracleDoc)
	for _, path := range paths {
		got, err := Query(root, path)
		if err != nil {
			t.Fatalf("Query(%q) returned error: %v", path, err)
		}
		if got != nil {
			t.Fatalf("Query(%q) = %s, want nil", path, got.Compact())
		}
		if gjson.Get(oracleDoc, path).Exists() {
			t.Fatalf("gjson.Get(%q) exists, fix the corpus", path)
		}
	}
}

func TestAssignAgreesWithSJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		value string
	}{
		{name: "replace_scalar", path: "replicas", value: "5"},
		{name: "replace_nested", path: "labels.env", value: `"qa"`},
		{name: "new_member", path: "labels.team", value: `"core"`},
		{name: "replace_array_element", path: "ports.1", value: "8443"},
		{name: "pad_array", path: "ports.5", value: "9090"},
		{name: "replace_subtree", path: "nodes.0", value: `{"host":"c","weight":3}`},
		{name: "new_top_member", path: "owner", value: `{"team":"infra"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := mustParseObject(t, oracleDoc)
			if _, err := Assign(root, tt.path, mustParse(t, tt.value)); err != nil {
				t.Fatalf("Assign(%q) returned error: %v", tt.path, err)
			}

			want, err := sjson.SetRaw(oracleDoc, tt.path, tt.value)
			if err != nil {
				t.Fatalf("sjson.SetRaw(%q) returned error: %v", tt.path, err)
			}

			if !root.Equal(mustParse(t, want)) {
				t.Fatalf("Assign(%q) = %s, sjson %s", tt.path, root.Compact(), want)
			}
			if !gjson.Valid(root.Compact()) {
				t.Fatalf("Assign(%q) produced invalid JSON: %s", tt.path, root.Compact())
			}
		})
	}
}

func TestDeleteAgreesWithSJSON(t *testing.T) {
	t.Parallel()

	paths := []string{"labels.tier", "ports.1", "nodes.0", "name", "note"}

	for _, path := range paths {
		root := mustParseObject(t, oracleDoc)
		if _, err := Delete(root, path); err != nil {
			t.Fatalf("Delete(%q) returned error: %v", path, err)
		}

		want, err := sjson.Delete(oracleDoc, path)
		if err != nil {
			t.Fatalf("sjson.Delete(%q) returned error: %v", path, err)
		}

		if !root.Equal(mustParse(t, want)) {
			t.Fatalf("Delete(%q) = %s, sjson %s", path, root.Compact(), want)
		}
	}
}

func TestSerializedFormsAreGJSONValid(t *testing.T) {
	t.Parallel()

	docs := []string{
		oracleDoc,
		`{}`,
		`[]`,
		`[1,2.5,-3e2,18446744073709551615]`,
		`{"text":"tab\tquote\"backslash\\accent é"}`,
		`{"nested":{"deep":[[[{"x":null}]]]}}`,
	}

	for _, doc := range docs {
		el := mustParse(t, doc)
		if compact := el.Compact(); !gjson.Valid(compact) {
			t.Fatalf("Compact of %s is not valid JSON: %s", doc, compact)
		}
		if pretty := el.Pretty("", "  "); !gjson.Valid(pretty) {
			t.Fatalf("Pretty of %s is not valid JSON: %s", doc, pretty)
		}
	}
}
