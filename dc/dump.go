package dc

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/godc/internal/runeio"
)

// Dump writes a human readable description of the stack and its context.
func (st *Stack) Dump(w io.Writer) {
	stackDumper{st: st, out: w}.dump()
}

type stackDumper struct {
	st  *Stack
	out io.Writer

	indexWidth int
}

func (dump stackDumper) dump() {
	ctx := dump.st.ctx
	fmt.Fprintf(dump.out, "# Stack Dump\n")
	fmt.Fprintf(dump.out, "  precision: %v\n", ctx.Precision)
	fmt.Fprintf(dump.out, "  exponent: [%v, %v]\n", ctx.MinExponent, ctx.MaxExponent)
	fmt.Fprintf(dump.out, "  depth: %v\n", dump.st.Len())
	dump.dumpValues()
}

func (dump stackDumper) dumpValues() {
	vals := dump.st.values
	if dump.indexWidth == 0 {
		dump.indexWidth = len(strconv.Itoa(len(vals)))
	}
	for i := len(vals) - 1; i >= 0; i-- {
		fmt.Fprintf(dump.out, "  @%*d %v\n", dump.indexWidth, i, formatValue(vals[i]))
	}
}

func formatValue(val Value) string {
	switch v := val.(type) {
	case Text:
		return "[" + runeio.CaretString(string(v)) + "]"
	case nil:
		return "<nil>"
	default:
		return v.String()
	}
}
