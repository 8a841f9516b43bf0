package logio_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jcorbin/godc/internal/logio"
	"github.com/stretchr/testify/assert"
)

func Test_Logger(t *testing.T) {
	var out strings.Builder
	log := logio.Logger{Prefix: "godc"}
	log.SetOutput(&out)

	log.Printf("INFO", "hello %v", "world")
	log.Leveledf("TRACE")("step %d", 1)
	assert.Equal(t, 0, log.ExitCode(), "no errors yet")

	log.ErrorIf(3, nil)
	assert.Equal(t, 0, log.ExitCode(), "nil errors are ignored")

	log.Errorf(2, "empty stack")
	log.ErrorIf(1, errors.New("later"))
	assert.Equal(t, 2, log.ExitCode(), "first exit code sticks")

	assert.Equal(t, strings.Join([]string{
		"godc: INFO: hello world",
		"godc: TRACE: step 1",
		"godc: ERROR: empty stack",
		"godc: ERROR: later",
	}, "\n")+"\n", out.String())
}

func Test_Logger_noOutput(t *testing.T) {
	var log logio.Logger
	log.Errorf(1, "dropped")
	assert.Equal(t, 1, log.ExitCode())
}

func Test_Writer(t *testing.T) {
	var lines []string
	lw := logio.Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	fmt.Fprintf(&lw, "1\n2")
	assert.Equal(t, []string{"1"}, lines, "only completed lines")

	fmt.Fprintf(&lw, "\n3")
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"1", "2", "3"}, lines)
}
