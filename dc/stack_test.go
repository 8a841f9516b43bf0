package dc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_lifo(t *testing.T) {
	st := NewStack()
	st.Push(Int(1), Text("two"))
	st.Push(Int(3))
	assert.Equal(t, 3, st.Len())

	for _, want := range []Value{Int(3), Text("two"), Int(1)} {
		val, err := st.Pop()
		require.NoError(t, err)
		assert.Equal(t, want.String(), val.String())
		assert.IsType(t, want, val, "expected no coercion")
	}

	_, err := st.Pop()
	assert.Equal(t, EmptyStackError{Need: 1, Have: 0}, err)
	assert.EqualError(t, err, "empty stack")
}

func TestStack_PopMany(t *testing.T) {
	st := NewStack(WithValues(Int(1), Int(2), Int(3)))

	vals, err := st.PopMany(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2"}, valueStrings(vals), "expected pop order")
	assert.Equal(t, []string{"1"}, valueStrings(st.Values()))

	vals, err = st.PopMany(3)
	assert.Equal(t, EmptyStackError{Need: 3, Have: 1}, err)
	assert.Equal(t, []string{"1"}, valueStrings(vals), "expected partial values")
	assert.Equal(t, 0, st.Len(), "expected partial pops to stick")

	vals, err = st.PopMany(0)
	assert.NoError(t, err)
	assert.Empty(t, vals)
}

func TestStack_views(t *testing.T) {
	st := NewStack(WithValues(Int(1), Text("b"), Int(3)))
	assert.Equal(t, []string{"1", "b", "3"}, valueStrings(st.Values()))
	assert.Equal(t, []string{"3", "b", "1"}, valueStrings(st.Reversed()))

	vals := st.Values()
	vals[0] = Text("changed")
	assert.Equal(t, "1", st.Values()[0].String(), "expected Values to copy")

	st.Clear()
	assert.Equal(t, 0, st.Len())
	assert.Empty(t, st.Values())
	assert.Empty(t, st.Reversed())
}

func TestStack_Print(t *testing.T) {
	var out strings.Builder
	st := NewStack(WithValues(Int(1), Text("two\u009b"), Int(3)))
	require.NoError(t, st.Print(&out))
	assert.Equal(t, "3\ntwo\x1b[\n1\n", out.String())
	assert.Equal(t, 3, st.Len(), "expected print to be non-destructive")

	out.Reset()
	require.NoError(t, NewStack().Print(&out))
	assert.Equal(t, "", out.String())
}

func TestStack_Context(t *testing.T) {
	ctx := NewStack().Context()
	assert.Equal(t, uint32(DefaultPrecision), ctx.Precision)
	assert.Equal(t, int32(DefaultMaxExponent), ctx.MaxExponent)
	assert.Equal(t, int32(DefaultMinExponent), ctx.MinExponent)

	ctx = NewStack(WithPrecision(9), WithExponentLimits(-10, 10)).Context()
	assert.Equal(t, uint32(9), ctx.Precision)
	assert.Equal(t, int32(-10), ctx.MinExponent)
	assert.Equal(t, int32(10), ctx.MaxExponent)

	base := DefaultContext()
	base.Precision = 4
	ctx = NewStack(WithContext(base)).Context()
	assert.Equal(t, uint32(4), ctx.Precision)
}

func TestStack_independentContexts(t *testing.T) {
	a, b := NewStack(), NewStack()
	ex := a.Executor(MustParse("3 k 1 3 /"))
	for ex.Step() {
		assert.Equal(t, uint32(DefaultPrecision), b.Context().Precision)
	}
	require.NoError(t, ex.Err())
	require.NoError(t, b.Exec("1 3 /"))
	assert.Equal(t, []string{"0.333"}, valueStrings(a.Values()))
	assert.Equal(t, []string{"0.3333333333333333333333333333"}, valueStrings(b.Values()))
}
