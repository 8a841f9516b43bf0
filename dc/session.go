package dc

// Session supports live editing: each edit re-parses the whole program text
// and, if it parses, re-runs it from scratch on a cleared stack.
type Session struct {
	// Registry used to parse edits; nil means DefaultRegistry.
	Registry *Registry

	stack *Stack
	prog  Program
}

// NewSession creates a session whose stack is configured by opts.
func NewSession(opts ...Option) *Session {
	return &Session{stack: NewStack(opts...)}
}

// Edit replaces the session's program with text and runs it.
//
// If text does not parse, the UnknownCommandError is returned, the previous
// program is discarded, and the stack keeps the contents of the last run.
// Otherwise the stack is cleared and the new program runs, returning any
// execution error; the stack then shows whatever the program did before it
// halted.
func (sess *Session) Edit(text string) error {
	reg := sess.Registry
	if reg == nil {
		reg = DefaultRegistry
	}
	prog, err := reg.Parse(text)
	if err != nil {
		sess.prog = Program{}
		return err
	}
	sess.prog = prog
	sess.stack.Clear()
	return sess.stack.Run(prog)
}

// Stack returns the session's stack.
func (sess *Session) Stack() *Stack { return sess.stack }

// Program returns the last successfully parsed program.
func (sess *Session) Program() Program { return sess.prog }
