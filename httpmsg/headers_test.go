package httpmsg

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewHeader(t *testing.T) {
	t.Parallel()

	if _, err := NewHeader("Content-Type", "application/json"); err != nil {
		t.Fatalf("NewHeader returned error: %v", err)
	}
	if _, err := NewHeader("X-Token", "a\tb"); err != nil {
		t.Fatalf("NewHeader rejected a tab in the value: %v", err)
	}

	invalid := []struct {
		name  string
		value string
	}{
		{name: "", value: "x"},
		{name: "Bad Name", value: "x"},
		{name: "Bad:Name", value: "x"},
		{name: "X", value: "line\r\nbreak"},
		{name: "X", value: "nul\x00"},
	}
	for _, tt := range invalid {
		if _, err := NewHeader(tt.name, tt.value); !errors.Is(err, ErrInvalid) {
			t.Fatalf("NewHeader(%q, %q) error = %v, want ErrInvalid", tt.name, tt.value, err)
		}
	}
}

func TestHeadersGetFoldsCase(t *testing.T) {
	t.Parallel()

	h := Headers{
		MustHeader("Content-Type", "text/plain"),
		MustHeader("X-Trace", "one"),
		MustHeader("x-trace", "two"),
	}

	if got, ok := h.Get("content-type"); !ok || got != "text/plain" {
		t.Fatalf("Get(content-type) = (%q, %v)", got, ok)
	}
	if got, ok := h.Get("X-TRACE"); !ok || got != "two" {
		t.Fatalf("Get(X-TRACE) = (%q, %v), want last value", got, ok)
	}
	if _, ok := h.Get("Missing"); ok {
		t.Fatal("Get(Missing) reported a value")
	}
	if got := h.GetAll("X-Trace"); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Fatalf("GetAll(X-Trace) = %v", got)
	}
}

func TestHeadersWithWithoutCopies(t *testing.T) {
	t.Parallel()

	base := Headers{MustHeader("Accept", "*/*")}
	extended := base.With(MustHeader("X-A", "1")).With(MustHeader("X-B", "2"))
	trimmed := extended.Without("x-a")

	if len(base) != 1 {
		t.Fatalf("base grew to %d headers", len(base))
	}
	if len(extended) != 3 {
		t.Fatalf("extended has %d headers, want 3", len(extended))
	}
	if len(trimmed) != 2 {
		t.Fatalf("trimmed has %d headers, want 2", len(trimmed))
	}
	if _, ok := trimmed.Get("X-A"); ok {
		t.Fatal("Without left X-A behind")
	}
	if _, ok := extended.Get("X-A"); !ok {
		t.Fatal("Without modified its receiver")
	}
}

func TestHeadersNames(t *testing.T) {
	t.Parallel()

	h := Headers{
		MustHeader("Set-Cookie", "a=1"),
		MustHeader("Content-Type", "text/html"),
		MustHeader("set-cookie", "b=2"),
	}
	got := h.Names()
	want := []string{"Set-Cookie", "Content-Type"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}
