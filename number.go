package jdom

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Number is a JSON number held as an exact decimal, never a binary float.
// The literal text that produced it is preserved and reused when
// serializing, so parsing and re-rendering never reformats a number.
// The zero value is 0.
type Number struct {
	lit string
	dec decimal.Decimal
}

// NumberFromInt returns the Number for v.
func NumberFromInt(v int64) Number {
	return Number{lit: strconv.FormatInt(v, 10), dec: decimal.NewFromInt(v)}
}

// NumberFromUint returns the Number for v.
func NumberFromUint(v uint64) Number {
	return Number{lit: strconv.FormatUint(v, 10), dec: decimal.NewFromUint64(v)}
}

// NumberFromFloat returns the Number for the shortest decimal that
// converts back to v. NaN and infinities have no JSON representation and
// return ErrArgument.
func NumberFromFloat(v float64) (Number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}, fmt.Errorf("%w: %v has no number representation", ErrArgument, v)
	}
	d := decimal.NewFromFloat(v)
	return Number{lit: d.String(), dec: d}, nil
}

// NumberFromString parses s as a JSON number literal.
func NumberFromString(s string) (Number, error) {
	return ParseNumber(s)
}

// NumberFromDecimal returns the Number for d.
func NumberFromDecimal(d decimal.Decimal) Number {
	return Number{lit: d.String(), dec: d}
}

// Decimal returns the exact numeric value.
func (n Number) Decimal() decimal.Decimal { return n.dec }

func (n Number) Kind() Kind { return KindNumber }

// Equal compares numeric value, not literal text: 1, 1.0 and 1e0 are all
// equal Numbers.
func (n Number) Equal(other Element) bool {
	o, ok := other.(Number)
	return ok && n.dec.Equal(o.dec)
}

func (n Number) Hash() uint64 {
	h := hashByte(fnvOffset, byte(KindNumber))
	return hashUint64(h, math.Float64bits(n.dec.InexactFloat64()))
}

func (n Number) Clone() Element { return n }

// literal is the serialized form; the zero value carries no literal and
// falls back to the decimal rendering.
func (n Number) literal() string {
	if n.lit == "" {
		return n.dec.String()
	}
	return n.lit
}
