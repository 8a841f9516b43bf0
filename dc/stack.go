package dc

import (
	"io"

	"github.com/cockroachdb/apd/v3"
	"github.com/jcorbin/godc/internal/flushio"
	"github.com/jcorbin/godc/internal/runeio"
)

// Context defaults, following Python's decimal module where apd allows.
const (
	DefaultPrecision   = 28
	DefaultMaxExponent = 100000
	DefaultMinExponent = -100000

	// MaxPrecision bounds the precision accepted by the 'k' command.
	MaxPrecision = 1000000
)

// DefaultContext returns the arithmetic context that new Stacks start with.
func DefaultContext() apd.Context {
	ctx := apd.BaseContext
	ctx.Precision = DefaultPrecision
	ctx.MaxExponent = DefaultMaxExponent
	ctx.MinExponent = DefaultMinExponent
	ctx.Rounding = apd.RoundHalfEven
	ctx.Traps = apd.DefaultTraps
	return ctx
}

// Stack is a LIFO of Values along with the arithmetic context that commands
// run under. A Stack is not safe for concurrent use.
type Stack struct {
	values []Value

	// The arithmetic context is passed by reference to every command handler,
	// and is saved and restored around each run by the Executor.
	ctx apd.Context

	out flushio.WriteFlusher

	logging
}

// NewStack creates an empty Stack with DefaultContext.
func NewStack(opts ...Option) *Stack {
	st := &Stack{
		ctx: DefaultContext(),
		out: flushio.Discard,
	}
	Options(opts...).apply(st)
	return st
}

// Push appends values in argument order; the last one ends up on top.
func (st *Stack) Push(values ...Value) {
	st.values = append(st.values, values...)
}

// Pop removes and returns the top value.
func (st *Stack) Pop() (Value, error) {
	i := len(st.values) - 1
	if i < 0 {
		return nil, EmptyStackError{Need: 1, Have: 0}
	}
	val := st.values[i]
	st.values[i] = nil
	st.values = st.values[:i]
	return val, nil
}

// PopMany pops n values one at a time, returning them in pop order: the
// most recently pushed value first. If the stack runs out, the values popped
// so far are returned along with an EmptyStackError, and stay popped.
func (st *Stack) PopMany(n int) ([]Value, error) {
	vals := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		val, err := st.Pop()
		if err != nil {
			return vals, EmptyStackError{Need: n, Have: i}
		}
		vals = append(vals, val)
	}
	return vals, nil
}

// Clear empties the stack.
func (st *Stack) Clear() {
	for i := range st.values {
		st.values[i] = nil
	}
	st.values = st.values[:0]
}

// Len returns the stack depth.
func (st *Stack) Len() int { return len(st.values) }

// Values returns a copy of the stack contents, bottom first.
func (st *Stack) Values() []Value {
	return append([]Value(nil), st.values...)
}

// Reversed returns a copy of the stack contents, top first.
func (st *Stack) Reversed() []Value {
	vals := make([]Value, len(st.values))
	for i, val := range st.values {
		vals[len(vals)-1-i] = val
	}
	return vals
}

// Context returns a copy of the current arithmetic context; during a run
// this reflects any precision set by 'k'.
func (st *Stack) Context() apd.Context { return st.ctx }

// Print writes every value to w, one per line, top first.
func (st *Stack) Print(w io.Writer) error {
	for i := len(st.values) - 1; i >= 0; i-- {
		if _, err := runeio.WriteANSIString(w, st.values[i].String()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Exec parses text with the DefaultRegistry, and then runs it.
func (st *Stack) Exec(text string) error {
	prog, err := Parse(text)
	if err != nil {
		return err
	}
	return st.Run(prog)
}
