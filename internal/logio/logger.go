package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger implements a leveled logging facility that remembers the most
// severe exit code reported through it.
type Logger struct {
	sync.Mutex
	// Prefix is written at the start of every line, e.g. the program name.
	Prefix string

	output   io.Writer
	buf      bytes.Buffer
	exitCode int
}

// SetOutput sets the logger's output stream.
func (log *Logger) SetOutput(out io.Writer) {
	log.Lock()
	defer log.Unlock()
	log.output = out
}

// ExitCode returns a code to pass to os.Exit: 0 unless an error was logged.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error, recording the given exit code.
func (log *Logger) ErrorIf(code int, err error) {
	if err != nil {
		log.Errorf(code, "%v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally records code so that
// ExitCode() will return it; the first non-zero code recorded sticks.
func (log *Logger) Errorf(code int, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.printf("ERROR", mess, args...)
	if log.exitCode == 0 {
		log.exitCode = code
	}
}

// Printf prints a line to the output stream like "prefix: level: message...\n".
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.printf(level, mess, args...)
}

func (log *Logger) printf(level, mess string, args ...interface{}) {
	if log.Prefix != "" {
		log.buf.WriteString(log.Prefix)
		log.buf.WriteString(": ")
	}
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	if log.output == nil {
		log.buf.Reset()
		return
	}
	// nowhere left to report a failure to write a log line
	log.buf.WriteTo(log.output)
}
