package dc

import (
	"io"

	"github.com/cockroachdb/apd/v3"
	"github.com/jcorbin/godc/internal/flushio"
)

// Option configures a Stack.
type Option interface{ apply(st *Stack) }

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(st *Stack) {
	for _, opt := range opts {
		opt.apply(st)
	}
}

// WithOutput sets where the 'f' command prints; the default discards.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee adds another destination for 'f' output.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf enables trace logging of every executed command.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

// WithContext replaces the whole arithmetic context.
func WithContext(ctx apd.Context) Option { return contextOption(ctx) }

// WithPrecision sets the number of significant digits.
func WithPrecision(prec uint32) Option { return precisionOption(prec) }

// WithExponentLimits sets the arithmetic context's exponent bounds.
func WithExponentLimits(minExp, maxExp int32) Option { return exponentOption{minExp, maxExp} }

// WithValues pushes initial values onto the stack.
func WithValues(values ...Value) Option { return valuesOption(values) }

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type logfnOption func(mess string, args ...interface{})
type contextOption apd.Context
type precisionOption uint32
type exponentOption struct{ min, max int32 }
type valuesOption []Value

func (o outputOption) apply(st *Stack) {
	if st.out != nil {
		st.out.Flush()
	}
	st.out = flushio.New(o.Writer)
}

func (o teeOption) apply(st *Stack) { st.out = flushio.Tee(st.out, flushio.New(o.Writer)) }

func (logfn logfnOption) apply(st *Stack)    { st.logfn = logfn }
func (ctx contextOption) apply(st *Stack)    { st.ctx = apd.Context(ctx) }
func (prec precisionOption) apply(st *Stack) { st.ctx.Precision = uint32(prec) }
func (vals valuesOption) apply(st *Stack)    { st.Push(vals...) }

func (lim exponentOption) apply(st *Stack) {
	st.ctx.MinExponent = lim.min
	st.ctx.MaxExponent = lim.max
}
