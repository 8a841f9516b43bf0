package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/jcorbin/godc/dc"
	"github.com/jcorbin/godc/internal/fileinput"
	"github.com/jcorbin/godc/internal/logio"
	"github.com/jcorbin/godc/internal/panicerr"
	"github.com/jcorbin/godc/internal/runeio"
)

// Exit codes.
const (
	exitOK             = 0
	exitUnknownCommand = 1
	exitEmptyStack     = 2
	exitError          = 3
)

var errExponentLimits = fmt.Errorf("exponent limits must satisfy %v <= emin <= 0 <= emax <= %v", apd.MinExponent, apd.MaxExponent)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := &logio.Logger{Prefix: "godc"}
	log.SetOutput(stderr)

	var cfg config
	fs := flag.NewFlagSet("godc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: godc [options] [file ...]\n")
		fs.PrintDefaults()
	}
	cfg.bind(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitError
	}
	if err := cfg.validate(); err != nil {
		log.Errorf(exitError, "%v", err)
		return log.ExitCode()
	}

	opts := cfg.options(log)
	if cfg.interactive {
		session := repl{
			in:     stdin,
			out:    stdout,
			errOut: stderr,
			log:    log,
			trace:  cfg.trace,
		}
		log.ErrorIf(exitError, session.run(opts...))
		return log.ExitCode()
	}

	var in fileinput.Input
	switch {
	case cfg.expr != "":
		in.Queue = append(in.Queue, fileinput.NamedReader("-e", strings.NewReader(cfg.expr)))
	case fs.NArg() > 0:
		for _, name := range fs.Args() {
			f, err := os.Open(name)
			if err != nil {
				closeAll(in.Queue)
				log.Errorf(exitError, "%v", err)
				return log.ExitCode()
			}
			in.Queue = append(in.Queue, f)
		}
	default:
		in.Queue = append(in.Queue, fileinput.NamedReader("<stdin>", stdin))
	}

	text, err := in.ReadAll()
	if err != nil {
		closeAll(in.Queue)
		log.Errorf(exitError, "%v", err)
		return log.ExitCode()
	}

	sess := dc.NewSession(append(opts, dc.WithOutput(stdout))...)
	if err := sess.Edit(text); err != nil {
		log.Errorf(exitCode(err), "%v", describeError(text, in.Locate, err))
		if cfg.trace {
			traceError(log, sess.Stack(), err)
		}
		return log.ExitCode()
	}

	if err := sess.Stack().Print(stdout); err != nil {
		log.Errorf(exitError, "%v", err)
	}
	return log.ExitCode()
}

// closeAll closes any inputs left unread.
func closeAll(queue []io.Reader) {
	for _, r := range queue {
		if cl, ok := r.(io.Closer); ok {
			cl.Close()
		}
	}
}

// exitCode classifies a run error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case dc.IsUnknownCommand(err):
		return exitUnknownCommand
	case dc.IsEmptyStack(err):
		return exitEmptyStack
	default:
		return exitError
	}
}

// describeError formats err along with the source location that caused it,
// if any.
func describeError(text string, locate func(int) fileinput.Location, err error) string {
	var uce dc.UnknownCommandError
	if errors.As(err, &uce) {
		return fmt.Sprintf("unknown command at %v: %q", locate(uce.Offset), nearText(text, uce.Offset))
	}

	var ce dc.CommandError
	if errors.As(err, &ce) {
		return fmt.Sprintf("%v: %q: %v", locate(ce.Offset), runeio.CaretString(ce.Text), ce.Err)
	}

	return err.Error()
}

// traceError logs the stack left behind by a failed run, preceded by a stack
// trace if a command panicked.
func traceError(log *logio.Logger, st *dc.Stack, err error) {
	if stack := panicerr.PanicStack(err); stack != "" {
		log.Printf("TRACE", "panic stack:\n%s", stack)
	}
	lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
	defer lw.Close()
	st.Dump(lw)
}

// nearText returns a short excerpt of text starting at offset, up to the end of
// its line, with control characters escaped.
func nearText(text string, offset int) string {
	const maxRunes = 16
	if offset >= len(text) {
		return ""
	}
	rest := text[offset:]
	end := 0
	for i := 0; end < len(rest) && i < maxRunes; i++ {
		r, n := utf8.DecodeRuneInString(rest[end:])
		if r == '\n' {
			break
		}
		end += n
	}
	return runeio.CaretString(rest[:end])
}
