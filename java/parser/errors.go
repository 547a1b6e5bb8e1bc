package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/javasyntax/java/token"
)

// LexError reports source text that cannot be tokenized.
type LexError struct {
	File    string
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return location(e.File, e.Pos) + ": " + e.Message
}

// SyntaxError reports the first token the parser could not accept.
type SyntaxError struct {
	File     string
	Pos      token.Position
	Message  string
	Expected []token.Kind
	Got      token.Token
}

func (e *SyntaxError) Error() string {
	msg := location(e.File, e.Pos) + ": " + e.Message
	if len(e.Expected) > 0 {
		names := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			names[i] = fmt.Sprintf("%q", k.String())
		}
		msg += ", expected " + strings.Join(names, " or ")
	}
	return msg + fmt.Sprintf(", got %q", e.Got.String())
}

// AtEOF reports whether the parser ran out of input. Interactive callers use
// it to ask for another line instead of reporting the error.
func (e *SyntaxError) AtEOF() bool {
	return e.Got.Kind == token.EOF
}

func location(file string, pos token.Position) string {
	if file == "" {
		return pos.String()
	}
	return file + ":" + pos.String()
}

// ErrorPosition returns the source position carried by a *LexError or
// *SyntaxError anywhere in err's chain.
func ErrorPosition(err error) (token.Position, bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Pos, true
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Pos, true
	}
	return token.Position{}, false
}

// IsIncomplete reports whether err is a syntax error caused by input that
// ended too early.
func IsIncomplete(err error) bool {
	var synErr *SyntaxError
	return errors.As(err, &synErr) && synErr.AtEOF()
}
