package httpmsg

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "a=1", want: Query{{Key: "a", Value: "1"}}},
		{
			name:  "order_preserved",
			input: "z=26&a=1&m=13",
			want:  Query{{Key: "z", Value: "26"}, {Key: "a", Value: "1"}, {Key: "m", Value: "13"}},
		},
		{
			name:  "repeated_key",
			input: "tag=x&tag=y",
			want:  Query{{Key: "tag", Value: "x"}, {Key: "tag", Value: "y"}},
		},
		{name: "no_value", input: "flag", want: Query{{Key: "flag", Value: ""}}},
		{name: "empty_value", input: "k=", want: Query{{Key: "k", Value: ""}}},
		{name: "plus_is_space", input: "q=a+b", want: Query{{Key: "q", Value: "a b"}}},
		{name: "percent_escape", input: "q=a%26b", want: Query{{Key: "q", Value: "a&b"}}},
		{name: "blank_pairs_skipped", input: "a=1&&b=2", want: Query{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuery(tt.input)
			if err != nil {
				t.Fatalf("ParseQuery(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseQuery(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, input := range []string{"a=%zz", "%=1"} {
		if _, err := ParseQuery(input); !errors.Is(err, ErrInvalid) {
			t.Fatalf("ParseQuery(%q) error = %v, want ErrInvalid", input, err)
		}
	}
}

func TestQueryLookups(t *testing.T) {
	t.Parallel()

	q := MustQuery("a=1&b=2&a=3")

	if got, ok := q.Get("a"); !ok || got != "3" {
		t.Fatalf("Get(a) = (%q, %v), want last value 3", got, ok)
	}
	if _, ok := q.Get("missing"); ok {
		t.Fatal("Get(missing) reported a value")
	}
	if got := q.GetAll("a"); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Fatalf("GetAll(a) = %v", got)
	}
}

func TestQueryWithWithoutCopies(t *testing.T) {
	t.Parallel()

	base := MustQuery("a=1")
	extended := base.With("b", "2")
	trimmed := extended.Without("a")

	if base.Encode() != "a=1" {
		t.Fatalf("base mutated: %q", base.Encode())
	}
	if extended.Encode() != "a=1&b=2" {
		t.Fatalf("With = %q", extended.Encode())
	}
	if trimmed.Encode() != "b=2" {
		t.Fatalf("Without = %q", trimmed.Encode())
	}
}

func TestQueryEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	q := Query{
		{Key: "plain", Value: "x"},
		{Key: "spaced key", Value: "a b"},
		{Key: "sym", Value: "&=?#"},
		{Key: "unicode", Value: "héllo"},
		{Key: "empty", Value: ""},
	}

	back, err := ParseQuery(q.Encode())
	if err != nil {
		t.Fatalf("ParseQuery of encoded text returned error: %v", err)
	}
	if !reflect.DeepEqual(back, q) {
		t.Fatalf("round-trip = %v, want %v", back, q)
	}
}
