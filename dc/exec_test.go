package dc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/jcorbin/godc/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_steps(t *testing.T) {
	st := NewStack()
	ex := st.Executor(MustParse("1 2 +"))
	assert.Equal(t, Running, ex.State())

	var seen []string
	for ex.State() == Running {
		tok, ok := ex.Next()
		require.True(t, ok)
		seen = append(seen, tok.Text)
		ex.Step()
	}
	assert.Equal(t, []string{"1", " ", "2", " ", "+"}, seen)
	assert.Equal(t, HaltedOK, ex.State())
	assert.NoError(t, ex.Err())
	assert.Equal(t, []string{"3"}, valueStrings(st.Values()))

	_, ok := ex.Next()
	assert.False(t, ok, "expected no next token once halted")
	assert.False(t, ex.Step(), "expected step to be a no-op once halted")
	assert.Equal(t, HaltedOK, ex.State())
}

func TestExecutor_empty(t *testing.T) {
	st := NewStack(WithValues(Int(1)))
	ex := st.Executor(Program{})
	assert.Equal(t, HaltedOK, ex.State())
	assert.NoError(t, ex.Run())
	assert.Equal(t, []string{"1"}, valueStrings(st.Values()))
}

func TestExecutor_error(t *testing.T) {
	st := NewStack()
	ex := st.Executor(MustParse("1 2 + +"))
	err := ex.Run()
	assert.Equal(t, HaltedError, ex.State())
	assert.Equal(t, err, ex.Err())

	var ce CommandError
	require.True(t, errors.As(err, &ce), "expected command error, got %v", err)
	assert.Equal(t, "+", ce.Text)
	assert.Equal(t, 6, ce.Offset)
	assert.Equal(t, EmptyStackError{Need: 2, Have: 1}, ce.Err)
	assert.EqualError(t, err, `"+" @6: empty stack: need 2 values, have 1`)
	assert.Empty(t, st.Values(), "expected no rollback")
}

func TestExecutor_panic(t *testing.T) {
	reg := DefaultRegistry.Clone()
	reg.MustRegister(`!`, func(string, *Stack, *apd.Context) error {
		panic("boom")
	})
	prog, err := reg.Parse("1 ! 2")
	require.NoError(t, err)

	st := NewStack()
	ex := st.Executor(prog)
	err = ex.Run()
	assert.Equal(t, HaltedError, ex.State())
	assert.True(t, panicerr.IsPanic(err), "expected panic error, got %v", err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, []string{"1"}, valueStrings(st.Values()))
}

func TestExecutor_contextScope(t *testing.T) {
	for _, tc := range []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ok", "5 k 1 3 /", false},
		{"error", "5 k 1 0 /", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			st := NewStack()
			ex := st.Executor(MustParse(tc.input))
			for i := 0; i < 3; i++ {
				ex.Step()
			}
			assert.Equal(t, uint32(5), st.Context().Precision, "expected precision within the run")

			err := ex.Run()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, uint32(DefaultPrecision), st.Context().Precision, "expected precision restored")
		})
	}
}

func TestExecutor_trace(t *testing.T) {
	var trace []string
	st := NewStack(WithLogf(func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	}))
	require.NoError(t, st.Exec("1 2+"))
	assert.Equal(t, []string{
		`> @0 "1"`,
		`< [1]`,
		`> @1 " "`,
		`< [1]`,
		`> @2 "2"`,
		`< [1 2]`,
		`> @3 "+"`,
		`< [3]`,
		`# halt depth:1`,
	}, trace)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "halted", HaltedOK.String())
	assert.Equal(t, "halted on error", HaltedError.String())
	assert.Equal(t, "State(7)", State(7).String())
}
