package main

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	"github.com/jcorbin/godc/dc"
	"github.com/jcorbin/godc/internal/fileinput"
	"github.com/jcorbin/godc/internal/logio"
	"golang.org/x/term"
)

// repl runs each input line against one persistent stack, showing the stack
// after every line. Errors are logged, but do not end the session, nor affect
// the exit code.
type repl struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *logio.Logger
	trace  bool
}

type lineReader interface {
	ReadLine() (string, error)
}

func (r repl) run(opts ...dc.Option) error {
	if f, ok := r.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return r.runTerminal(f, opts)
	}
	return r.loop(scanLines{bufio.NewScanner(r.in)}, r.out, opts)
}

// runTerminal puts the terminal in raw mode for line editing and history;
// all output, log lines included, then goes through the term.Terminal so
// that line endings are translated.
func (r repl) runTerminal(f *os.File, opts []dc.Option) error {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, r.out}, "> ")
	r.log.SetOutput(t)
	defer r.log.SetOutput(r.errOut)

	return r.loop(t, t, opts)
}

func (r repl) loop(lines lineReader, out io.Writer, opts []dc.Option) error {
	st := dc.NewStack(append(opts, dc.WithOutput(out))...)
	for lineNo := 1; ; lineNo++ {
		line, err := lines.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if err := st.Exec(line); err != nil {
			r.log.Printf("ERROR", "%v", describeError(line, lineLocator(lineNo, line), err))
			if r.trace {
				traceError(r.log, st, err)
			}
		}
		if err := st.Print(out); err != nil {
			return err
		}
	}
}

func lineLocator(lineNo int, line string) func(int) fileinput.Location {
	return func(offset int) fileinput.Location {
		if offset > len(line) {
			offset = len(line)
		}
		return fileinput.Location{
			Name: "<stdin>",
			Line: lineNo,
			Col:  utf8.RuneCountInString(line[:offset]) + 1,
		}
	}
}

type scanLines struct{ *bufio.Scanner }

func (sl scanLines) ReadLine() (string, error) {
	if sl.Scan() {
		return sl.Text(), nil
	}
	if err := sl.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
