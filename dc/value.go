package dc

import (
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Value is an element of a Stack: either a Number or a Text.
type Value interface {
	String() string
	isValue()
}

// Number is an arbitrary precision decimal value.
type Number struct{ *apd.Decimal }

// Text is a string value, as pushed by a [bracketed] literal.
type Text string

func (Number) isValue() {}
func (Text) isValue()   {}

func (t Text) String() string { return string(t) }

// Int returns a Number holding n.
func Int(n int64) Number { return Number{apd.New(n, 0)} }

// ParseNumber parses s as a decimal under ctx, rounding it to ctx's precision.
// A leading '_' is accepted as a negative sign, as in dc's literal syntax.
func ParseNumber(ctx *apd.Context, s string) (Number, error) {
	s = strings.Replace(s, "_", "-", 1)
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	} else if strings.HasPrefix(s, "-.") {
		s = "-0" + s[1:]
	}
	d, _, err := ctx.NewFromString(s)
	if err != nil {
		return Number{}, err
	}
	return Number{d}, nil
}

// Int64 truncates n towards zero, returning an error if n is not finite or
// does not fit in an int64.
func (n Number) Int64() (int64, error) {
	if n.Decimal == nil || n.Form != apd.Finite {
		return 0, NumberError{n, "not a finite number"}
	}
	var integ, frac apd.Decimal
	n.Modf(&integ, &frac)
	i, err := integ.Int64()
	if err != nil {
		return 0, NumberError{n, err.Error()}
	}
	return i, nil
}

func (n Number) String() string {
	if n.Decimal == nil {
		return "0"
	}
	return n.Decimal.String()
}

// Replicate returns t repeated count times; negative counts produce empty text.
func (t Text) Replicate(count int64) (Text, error) {
	if count <= 0 || len(t) == 0 {
		return "", nil
	}
	if count > int64(math.MaxInt32)/int64(len(t)) {
		return "", ReplicateError{t, count}
	}
	return Text(strings.Repeat(string(t), int(count))), nil
}

func asNumber(op string, v Value) (Number, error) {
	if n, ok := v.(Number); ok && n.Decimal != nil {
		return n, nil
	}
	return Number{}, TypeError{op, v}
}

// multiply implements '*', which is the only operation defined on Text: a
// Text times a Number in either order replicates the text.
func multiply(ctx *apd.Context, a, b Value) (Value, error) {
	if t, ok := a.(Text); ok {
		return replicate(t, b)
	}
	if t, ok := b.(Text); ok {
		return replicate(t, a)
	}
	x, err := asNumber("*", a)
	if err != nil {
		return nil, err
	}
	y, err := asNumber("*", b)
	if err != nil {
		return nil, err
	}
	var d apd.Decimal
	if _, err := ctx.Mul(&d, x.Decimal, y.Decimal); err != nil {
		return nil, err
	}
	return Number{&d}, nil
}

func replicate(t Text, by Value) (Value, error) {
	count, err := asNumber("*", by)
	if err != nil {
		return nil, err
	}
	n, err := count.Int64()
	if err != nil {
		return nil, err
	}
	r, err := t.Replicate(n)
	if err != nil {
		return nil, err
	}
	return r, nil
}
