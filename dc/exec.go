package dc

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/jcorbin/godc/internal/panicerr"
)

// State is the state of an Executor.
type State int

// Executor states; HaltedOK and HaltedError are terminal.
const (
	Running State = iota
	HaltedOK
	HaltedError
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case HaltedOK:
		return "halted"
	case HaltedError:
		return "halted on error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Executor runs a Program against a Stack, one Token at a time.
//
// Creating an Executor enters an arithmetic context scope: the stack's context
// is saved, and then restored once the Executor reaches a terminal state, so
// precision changes made by a program never outlive its run.
type Executor struct {
	stack *Stack
	prog  Program
	next  int
	state State
	err   error
	prior apd.Context
}

// Run runs prog against st to completion.
func (st *Stack) Run(prog Program) error {
	return st.Executor(prog).Run()
}

// Executor returns a new Executor that will run prog against st.
func (st *Stack) Executor(prog Program) *Executor {
	ex := &Executor{
		stack: st,
		prog:  prog,
		prior: st.ctx,
	}
	if prog.Len() == 0 {
		ex.halt(nil)
	}
	return ex
}

// State returns the current state.
func (ex *Executor) State() State { return ex.state }

// Err returns the error that halted execution, if any.
func (ex *Executor) Err() error { return ex.err }

// Next returns the token that the next Step will run, and false once halted.
func (ex *Executor) Next() (Token, bool) {
	if ex.state != Running {
		return Token{}, false
	}
	return ex.prog.tokens[ex.next], true
}

// Run steps until halted, returning any error.
func (ex *Executor) Run() error {
	for ex.Step() {
	}
	return ex.err
}

// Step runs the next token, returning true if the executor is still running
// afterwards. Any error returned (or panic raised) by the token's handler
// halts execution; the stack is left as the handler left it.
func (ex *Executor) Step() bool {
	tok, ok := ex.Next()
	if !ok {
		return false
	}
	ex.next++

	st := ex.stack
	st.logf(">", "@%v %q", tok.Offset, tok.Text)
	if err := panicerr.Recover(tok.Text, func() error {
		return tok.handler(tok.Text, st, &st.ctx)
	}); err != nil {
		ex.halt(CommandError{tok, err})
		return false
	}
	st.logf("<", "%v", st.Values())

	if ex.next >= ex.prog.Len() {
		ex.halt(nil)
		return false
	}
	return true
}

func (ex *Executor) halt(err error) {
	st := ex.stack

	// flush any output buffered by a prior 'f'
	if ferr := st.out.Flush(); err == nil && ferr != nil {
		err = ferr
	}

	st.ctx = ex.prior
	ex.err = err
	if err != nil {
		ex.state = HaltedError
		st.logf("#", "halt error: %v", err)
	} else {
		ex.state = HaltedOK
		st.logf("#", "halt depth:%v", st.Len())
	}
}
