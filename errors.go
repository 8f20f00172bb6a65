// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package lexnfa

import (
	"errors"
	"fmt"
)

// A malformed pattern: unbalanced parens, a trailing or leading
// alternation, anything that would underflow the builder's stacks.
// Pos is a byte offset into the pattern given to Compile.
type SyntaxError struct {
	Pos    int
	Reason string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at pos %d: %s", s.Pos, s.Reason)
}

// The pattern uses syntax this compiler does not implement: character
// classes, quantifiers, escapes, or anchors. These fail instead of
// being read as literal runes.
type UnsupportedConstructError struct {
	Pos  int
	Char rune
}

func (s *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct '%c' at pos %d", s.Char, s.Pos)
}

// The state-id counter has no more values to hand out. Fatal, not
// recoverable.
var ErrAllocatorExhausted = errors.New("state id allocator exhausted")

// Wraps a compile failure with the token kind it came from, for
// CompileTokens.
type TokenError struct {
	Kind string
	Err  error
}

func (s *TokenError) Error() string {
	return fmt.Sprintf("token %q: %s", s.Kind, s.Err)
}

func (s *TokenError) Unwrap() error {
	return s.Err
}
