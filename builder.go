// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package lexnfa

// The two-stack scan that turns a token pattern into an NFA.
//
// The pattern is wrapped as "(pattern)" so the whole expression is one
// top-level group and a final ')' is guaranteed. '(' and '|' push a
// marker and a fresh operand scope; ')' reduces pending alternations
// and closes the group; any other rune is a literal that extends the
// scope on top of the operand stack. Concatenation is implicit: each
// literal chains from the most recently added state of its scope.

type symT int

const (
	symLParen symT = iota
	symOr
)

type symbolT struct {
	sym symT
	// position in the caller's pattern, for error reporting
	pos int
}

type builderT struct {
	compiler *Compiler
	buf      runeBufferT

	symbols  stackT[symbolT]
	operands stackT[*NFA]

	// set after ')' until the next '|' or ')'; a literal here would
	// chain off a group's accepting tail, which this scan cannot
	// compose correctly, so it is rejected instead.
	closedGroup bool

	runeErr *SyntaxError
}

func newBuilder(compiler *Compiler, pattern string) *builderT {
	b := &builderT{
		compiler: compiler,
		symbols:  NewStack[symbolT](),
		operands: NewStack[*NFA](),
	}
	b.buf.Initialize("(" + pattern + ")")
	b.buf.runeErrorCb = func() {
		b.runeErr = &SyntaxError{
			Pos:    b.userPos(b.buf.pos),
			Reason: "bytes aren't valid UTF-8",
		}
	}
	return b
}

// Positions are reported in the caller's pattern, not the wrapped one.
func (b *builderT) userPos(bufPos int) int {
	if bufPos > 0 {
		return bufPos - 1
	}
	return 0
}

func (b *builderT) popOperand(pos int) (*NFA, error) {
	if b.operands.Empty() {
		return nil, &SyntaxError{Pos: pos, Reason: "operand stack underflow"}
	}
	nfa := b.operands.Top()
	b.operands.Pop()
	return nfa, nil
}

func (b *builderT) build() (*NFA, error) {
	for {
		pos := b.userPos(b.buf.pos)
		ok, r, eof := b.buf.getNextRune()
		if !ok {
			return nil, b.runeErr
		}
		if eof {
			break
		}
		dlog.Printf("scan '%c' pos %d: %d symbols, %d operands",
			r, pos, b.symbols.Size(), b.operands.Size())

		var err error
		switch r {
		case '(':
			err = b.openGroup(pos)
		case ')':
			err = b.closeGroup(pos)
		case '|':
			err = b.alternate(pos)
		case '*', '+', '?', '[', ']', '{', '}', '\\', '^', '$':
			err = &UnsupportedConstructError{Pos: pos, Char: r}
		default:
			err = b.literal(pos, r)
		}
		if err != nil {
			return nil, err
		}
	}

	if !b.symbols.Empty() {
		return nil, &SyntaxError{
			Pos:    b.symbols.Top().pos,
			Reason: "missing ')'",
		}
	}
	if b.operands.Size() != 1 {
		return nil, &SyntaxError{
			Pos:    b.userPos(b.buf.pos),
			Reason: "unbalanced pattern",
		}
	}
	return b.popOperand(b.userPos(b.buf.pos))
}

// '(' begins a fresh concatenation scope.
func (b *builderT) openGroup(pos int) error {
	if !b.operands.Empty() && !b.operands.Top().isEmpty() {
		return &SyntaxError{
			Pos:    pos,
			Reason: "a group may only span a whole alternative",
		}
	}
	nfa, err := newNFA(b.compiler)
	if err != nil {
		return err
	}
	b.symbols.Push(symbolT{sym: symLParen, pos: pos})
	b.operands.Push(nfa)
	b.closedGroup = false
	return nil
}

// '|' leaves the current operand as a finished alternative and opens
// a new scope for the next one.
func (b *builderT) alternate(pos int) error {
	if b.operands.Empty() {
		return &SyntaxError{Pos: pos, Reason: "'|' with no preceding item"}
	}
	nfa, err := newNFA(b.compiler)
	if err != nil {
		return err
	}
	b.symbols.Push(symbolT{sym: symOr, pos: pos})
	b.operands.Push(nfa)
	b.closedGroup = false
	return nil
}

// ')' reduces every pending alternation in the group, then pops the
// open-group marker. If the enclosing scope is still empty, the group
// is the whole scope and replaces it.
func (b *builderT) closeGroup(pos int) error {
	for {
		if b.symbols.Empty() {
			return &SyntaxError{Pos: pos, Reason: "unmatched ')'"}
		}
		top := b.symbols.Top()
		if top.sym == symLParen {
			b.symbols.Pop()
			break
		}
		b.symbols.Pop()

		nfa1, err := b.popOperand(pos)
		if err != nil {
			return err
		}
		nfa2, err := b.popOperand(pos)
		if err != nil {
			return err
		}
		if nfa1.isEmpty() || nfa2.isEmpty() {
			return &SyntaxError{
				Pos:    top.pos,
				Reason: "alternation with an empty alternative",
			}
		}
		if err := nfa1.mergeOther(nfa2); err != nil {
			return err
		}
		b.operands.Push(nfa1)
	}

	group, err := b.popOperand(pos)
	if err != nil {
		return err
	}
	if group.isEmpty() {
		return &SyntaxError{Pos: pos, Reason: "empty group"}
	}
	if !b.operands.Empty() {
		if !b.operands.Top().isEmpty() {
			return &SyntaxError{
				Pos:    pos,
				Reason: "a group may only span a whole alternative",
			}
		}
		// the enclosing scope never got a literal; its placeholder
		// state would be unreachable in the result, so drop it
		b.operands.Pop()
	}
	b.operands.Push(group)
	b.closedGroup = true
	return nil
}

// A literal rune extends the scope on top of the operand stack:
// last -epsilon-> state1 -r-> state2. state2 accepts iff the literal
// ends its alternative, i.e. the next rune is '|' or ')'.
func (b *builderT) literal(pos int, r rune) error {
	if b.closedGroup {
		return &SyntaxError{
			Pos:    pos,
			Reason: "a group may only span a whole alternative",
		}
	}
	if b.operands.Empty() {
		return &SyntaxError{Pos: pos, Reason: "operand stack underflow"}
	}
	nfa := b.operands.Top()
	last := len(nfa.states) - 1

	ok, next, eof := b.buf.peekNextRune()
	if !ok {
		return &SyntaxError{
			Pos:    b.userPos(b.buf.pos),
			Reason: "bytes aren't valid UTF-8",
		}
	}
	if eof {
		return &SyntaxError{Pos: pos, Reason: "unexpected end of pattern"}
	}

	state1, err := nfa.addState(false)
	if err != nil {
		return err
	}
	state2, err := nfa.addState(next == '|' || next == ')')
	if err != nil {
		return err
	}
	nfa.states[last].addEdge(epsilonT(), state1)
	nfa.states[state1].addEdge(charT(r), state2)
	return nil
}
