package dc

import "strings"

// Token is a piece of program text bound to the handler that matched it.
type Token struct {
	Text   string
	Offset int

	handler Handler
}

// Program is the immutable result of parsing a text: every byte of the text
// is covered by exactly one Token.
type Program struct {
	text   string
	tokens []Token
}

// Parse parses text using the DefaultRegistry.
func Parse(text string) (Program, error) { return DefaultRegistry.Parse(text) }

// MustParse is like Parse, but panics on error.
func MustParse(text string) Program {
	prog, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return prog
}

// Parse tokenizes all of text, returning an UnknownCommandError at the first
// offset that no command matches. Either all of the text parses, or no
// Program is returned.
func (reg *Registry) Parse(text string) (Program, error) {
	var tokens []Token
	for offset := 0; offset < len(text); {
		n, handler := reg.match(text[offset:])
		if handler == nil {
			return Program{}, UnknownCommandError{
				Offset:    offset,
				Remaining: len(text) - offset,
			}
		}
		tokens = append(tokens, Token{
			Text:    text[offset : offset+n],
			Offset:  offset,
			handler: handler,
		})
		offset += n
	}
	return Program{text, tokens}, nil
}

// Text returns the text that the program was parsed from.
func (prog Program) Text() string { return prog.text }

// Len returns the number of tokens.
func (prog Program) Len() int { return len(prog.tokens) }

// Tokens returns a copy of the program's tokens.
func (prog Program) Tokens() []Token {
	return append([]Token(nil), prog.tokens...)
}

// String joins the text of every token with a space.
func (prog Program) String() string {
	parts := make([]string, len(prog.tokens))
	for i, tok := range prog.tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}
