package dc

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// DefaultRegistry holds the built-in commands. Parse uses it; to add commands
// without affecting other users, Clone it first.
var DefaultRegistry = builtins()

func builtins() *Registry {
	var reg Registry

	// Order matters: whitespace and comments come first, and numeric literals
	// precede any operator.
	reg.MustRegister(`[\s\v]+`, nop)
	reg.MustRegister(`#[^\n]*`, nop)
	reg.MustRegister(`_?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)`, pushNumber)
	reg.MustRegister(`\[[^\]\n]*\]`, pushText)

	reg.MustRegister(`[IO]`, pushRadix)
	reg.MustRegister(`K`, pushPrecision)
	reg.MustRegister(`k`, setPrecision)
	reg.MustRegister(`f`, printStack)

	reg.MustRegister(`r`, swap)
	reg.MustRegister(`R`, rotate)
	reg.MustRegister(`c`, clearStack)
	reg.MustRegister(`d`, dup)
	reg.MustRegister(`z`, pushDepth)

	reg.MustRegister(`v`, sqrt)
	reg.MustRegister(`[-+*/^]`, arith)
	reg.MustRegister(`%`, rem)
	reg.MustRegister(`~`, divRem)
	reg.MustRegister(`\|`, modExp)

	return &reg
}

func nop(string, *Stack, *apd.Context) error { return nil }

func pushNumber(cmd string, st *Stack, ctx *apd.Context) error {
	n, err := ParseNumber(ctx, cmd)
	if err != nil {
		return err
	}
	st.Push(n)
	return nil
}

func pushText(cmd string, st *Stack, _ *apd.Context) error {
	st.Push(Text(cmd[1 : len(cmd)-1]))
	return nil
}

// Only decimal input and output is supported.
func pushRadix(_ string, st *Stack, _ *apd.Context) error {
	st.Push(Int(10))
	return nil
}

// Precision counts significant digits, unlike dc's scale which counts
// fraction digits.
func pushPrecision(_ string, st *Stack, ctx *apd.Context) error {
	st.Push(Int(int64(ctx.Precision)))
	return nil
}

func setPrecision(_ string, st *Stack, ctx *apd.Context) error {
	n, err := popNumber("k", st)
	if err != nil {
		return err
	}
	prec, err := n.Int64()
	if err != nil {
		return err
	}
	if prec < 1 || prec > MaxPrecision {
		return PrecisionError{prec}
	}
	ctx.Precision = uint32(prec)
	return nil
}

func printStack(_ string, st *Stack, _ *apd.Context) error {
	if err := st.Print(st.out); err != nil {
		return err
	}
	return st.out.Flush()
}

func swap(_ string, st *Stack, _ *apd.Context) error {
	vals, err := st.PopMany(2)
	if err != nil {
		return err
	}
	st.Push(vals...)
	return nil
}

// rotate pops a count n, then rotates the top min(|n|, depth) values: for
// n >= 0 the deepest of them moves to the top, otherwise the top moves to the
// deepest position. The count is clamped before it is truncated to an integer,
// so counts of any magnitude are accepted.
func rotate(_ string, st *Stack, _ *apd.Context) error {
	count, err := popNumber("R", st)
	if err != nil {
		return err
	}
	if count.Form != apd.Finite && count.Form != apd.Infinite {
		return NumberError{count, "not a number"}
	}
	down := !count.Negative

	depth := int64(st.Len())
	n := depth
	var abs apd.Decimal
	if abs.Abs(count.Decimal).Cmp(apd.New(depth, 0)) < 0 {
		if n, err = (Number{&abs}).Int64(); err != nil {
			return err
		}
	}
	if n < 2 {
		return nil
	}

	vals, err := st.PopMany(int(n))
	if err != nil {
		return err
	}
	reverse(vals) // bottom first
	if down {
		vals = append(vals[1:], vals[0])
	} else {
		vals = append(vals[len(vals)-1:], vals[:len(vals)-1]...)
	}
	st.Push(vals...)
	return nil
}

func clearStack(_ string, st *Stack, _ *apd.Context) error {
	st.Clear()
	return nil
}

func dup(_ string, st *Stack, _ *apd.Context) error {
	val, err := st.Pop()
	if err != nil {
		return err
	}
	st.Push(val, val)
	return nil
}

func pushDepth(_ string, st *Stack, _ *apd.Context) error {
	st.Push(Int(int64(st.Len())))
	return nil
}

func sqrt(_ string, st *Stack, ctx *apd.Context) error {
	x, err := popNumber("v", st)
	if err != nil {
		return err
	}
	var d apd.Decimal
	if _, err := ctx.Sqrt(&d, x.Decimal); err != nil {
		return err
	}
	st.Push(Number{&d})
	return nil
}

type decimalOp func(ctx *apd.Context, d, x, y *apd.Decimal) (apd.Condition, error)

var arithOps = map[string]decimalOp{
	"+": (*apd.Context).Add,
	"-": (*apd.Context).Sub,
	"/": (*apd.Context).Quo,
	"^": (*apd.Context).Pow,
}

// arith implements the binary operators: the value popped first is the right
// hand operand.
func arith(cmd string, st *Stack, ctx *apd.Context) error {
	vals, err := st.PopMany(2)
	if err != nil {
		return err
	}
	b, a := vals[0], vals[1]

	if cmd == "*" {
		res, err := multiply(ctx, a, b)
		if err != nil {
			return err
		}
		st.Push(res)
		return nil
	}

	res, err := applyOp(ctx, cmd, arithOps[cmd], a, b)
	if err != nil {
		return err
	}
	st.Push(res)
	return nil
}

// rem computes the remainder of truncating integer division, taking the sign
// of the numerator; this is a decimal remainder, so it need not be an integer.
func rem(cmd string, st *Stack, ctx *apd.Context) error {
	vals, err := st.PopMany(2)
	if err != nil {
		return err
	}
	den, num := vals[0], vals[1]
	res, err := applyOp(ctx, cmd, (*apd.Context).Rem, num, den)
	if err != nil {
		return err
	}
	st.Push(res)
	return nil
}

// divRem pushes the truncated integer quotient, then the remainder as in rem.
func divRem(cmd string, st *Stack, ctx *apd.Context) error {
	vals, err := st.PopMany(2)
	if err != nil {
		return err
	}
	den, num := vals[0], vals[1]
	quo, err := applyOp(ctx, cmd, (*apd.Context).QuoInteger, num, den)
	if err != nil {
		return err
	}
	mod, err := applyOp(ctx, cmd, (*apd.Context).Rem, num, den)
	if err != nil {
		return err
	}
	st.Push(quo, mod)
	return nil
}

// modExp computes base^exp mod m over integers. Like rem, the result takes
// the sign of the base: it lies in (-|m|, 0] for a negative base raised to an
// odd power, and in [0, |m|) otherwise.
func modExp(cmd string, st *Stack, ctx *apd.Context) error {
	vals, err := st.PopMany(3)
	if err != nil {
		return err
	}
	var ints [3]*big.Int
	for i, val := range vals {
		n, err := asNumber(cmd, val)
		if err != nil {
			return err
		}
		if ints[i], err = bigInt(n); err != nil {
			return err
		}
	}
	m, exp, base := ints[0], ints[1], ints[2]
	if m.Sign() == 0 {
		return errModZero
	}
	if exp.Sign() < 0 {
		return errNegativeModExp
	}
	res := new(big.Int).Exp(new(big.Int).Abs(base), exp, new(big.Int).Abs(m))
	if base.Sign() < 0 && exp.Bit(0) == 1 {
		res.Neg(res)
	}
	n, err := ParseNumber(ctx, res.String())
	if err != nil {
		return err
	}
	st.Push(n)
	return nil
}

func applyOp(ctx *apd.Context, name string, op decimalOp, a, b Value) (Value, error) {
	x, err := asNumber(name, a)
	if err != nil {
		return nil, err
	}
	y, err := asNumber(name, b)
	if err != nil {
		return nil, err
	}
	var d apd.Decimal
	if _, err := op(ctx, &d, x.Decimal, y.Decimal); err != nil {
		return nil, err
	}
	return Number{&d}, nil
}

func popNumber(op string, st *Stack) (Number, error) {
	val, err := st.Pop()
	if err != nil {
		return Number{}, err
	}
	return asNumber(op, val)
}

func bigInt(n Number) (*big.Int, error) {
	if n.Form != apd.Finite {
		return nil, NumberError{n, "not a finite number"}
	}
	var integ, frac apd.Decimal
	n.Modf(&integ, &frac)
	if !frac.IsZero() {
		return nil, NumberError{n, "not an integer"}
	}
	i, ok := new(big.Int).SetString(integ.Text('f'), 10)
	if !ok {
		return nil, NumberError{n, "not an integer"}
	}
	return i, nil
}

func reverse(vals []Value) {
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
}
