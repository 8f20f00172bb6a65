package lexnfa

// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

import (
	"errors"

	. "gopkg.in/check.v1"
)

func compileOK(c *C, pattern string) *NFA {
	nfa, err := NewCompiler().Compile(pattern)
	c.Assert(err, IsNil)
	return nfa
}

// Exactly the given strings are accepted, and some near misses are not.
func checkLanguage(c *C, nfa *NFA, accepted []string, rejected []string) {
	for _, in := range accepted {
		c.Check(accepts(nfa, in), Equals, true,
			Commentf("should accept %q", in))
	}
	for _, in := range rejected {
		c.Check(accepts(nfa, in), Equals, false,
			Commentf("should reject %q", in))
	}
}

func (s *MySuite) TestLiteralChain(c *C) {
	nfa := compileOK(c, "abc")
	checkLanguage(c, nfa,
		[]string{"abc"},
		[]string{"", "a", "ab", "abcd", "abd", "cba"})
	c.Check(nfa.AcceptingIDs(), HasLen, 1)
}

func (s *MySuite) TestSingleLiteral(c *C) {
	nfa := compileOK(c, "=")
	checkLanguage(c, nfa, []string{"="}, []string{"", "==", "a"})
}

func (s *MySuite) TestAlternation(c *C) {
	nfa := compileOK(c, "a|b|c")
	checkLanguage(c, nfa,
		[]string{"a", "b", "c"},
		[]string{"", "d", "ab", "bc", "aa"})
}

func (s *MySuite) TestTwoWayAlternation(c *C) {
	nfa := compileOK(c, "a|b")
	checkLanguage(c, nfa, []string{"a", "b"}, []string{"", "c", "ab", "ba"})

	// two accepting paths, each one Char transition long
	c.Check(nfa.AcceptingIDs(), HasLen, 2)
}

func (s *MySuite) TestGroupedAlternation(c *C) {
	nfa := compileOK(c, "(ab|cd)")
	checkLanguage(c, nfa,
		[]string{"ab", "cd"},
		[]string{"", "a", "c", "ad", "cb", "abcd"})
}

func (s *MySuite) TestWholeGroup(c *C) {
	nfa := compileOK(c, "(ab)")
	checkLanguage(c, nfa, []string{"ab"}, []string{"", "a", "b", "abb"})
	c.Check(nfa.AcceptingIDs(), HasLen, 1)
}

func (s *MySuite) TestNestedGroup(c *C) {
	nfa := compileOK(c, "((ab|cd))")
	checkLanguage(c, nfa, []string{"ab", "cd"}, []string{"", "a", "abcd"})
}

func (s *MySuite) TestGroupAsAlternative(c *C) {
	nfa := compileOK(c, "a|(bc)|d")
	checkLanguage(c, nfa,
		[]string{"a", "bc", "d"},
		[]string{"", "b", "c", "ad", "abc"})
}

func (s *MySuite) TestTokenPatterns(c *C) {
	nfa := compileOK(c, "aaaa|bbbd|cc")
	checkLanguage(c, nfa,
		[]string{"aaaa", "bbbd", "cc"},
		[]string{"", "a", "aaa", "aaaaa", "bbbb", "bbbd ", "c", "ccc"})

	// three disjoint literal chains behind epsilon transitions
	c.Check(nfa.AcceptingIDs(), HasLen, 3)
	for _, e := range nfa.states[nfa.initial].edges {
		c.Check(e.trans.ttype, Equals, ttEpsilon)
	}

	nfa = compileOK(c, "true|false")
	checkLanguage(c, nfa,
		[]string{"true", "false"},
		[]string{"", "t", "truefalse", "fals"})
}

func (s *MySuite) TestUnicodeLiterals(c *C) {
	nfa := compileOK(c, "día|noche")
	checkLanguage(c, nfa,
		[]string{"día", "noche"},
		[]string{"", "dia", "d", "díanoche"})
}

func (s *MySuite) TestAcceptingStatesReachable(c *C) {
	for _, pattern := range []string{
		"abc", "a|b|c", "(ab|cd)", "aaaa|bbbd|cc", "a|(bc)|d",
	} {
		nfa := compileOK(c, pattern)
		seen := reachable(nfa)
		for idx := range nfa.states {
			if nfa.states[idx].accepting {
				c.Check(seen[idx], Equals, true,
					Commentf("pattern %q: accepting state %d unreachable",
						pattern, nfa.states[idx].id))
			}
		}
	}
}

func (s *MySuite) TestNoOrphanStates(c *C) {
	for _, pattern := range []string{"abc", "(ab|cd)", "a|(bc)|d"} {
		nfa := compileOK(c, pattern)
		seen := reachable(nfa)
		c.Check(len(seen), Equals, nfa.NumStates(),
			Commentf("pattern %q", pattern))
	}
}

func (s *MySuite) TestIDsMonotonicAcrossBuilds(c *C) {
	compiler := NewCompiler()
	first, err := compiler.Compile("ab")
	c.Assert(err, IsNil)
	second, err := compiler.Compile("cd")
	c.Assert(err, IsNil)

	maxFirst := -1
	for _, id := range stateIDs(first) {
		if id > maxFirst {
			maxFirst = id
		}
	}
	for _, id := range stateIDs(second) {
		c.Check(id > maxFirst, Equals, true)
	}
}

func (s *MySuite) TestUnbalancedOpen(c *C) {
	_, err := NewCompiler().Compile("(a")
	c.Assert(err, NotNil)
	var serr *SyntaxError
	c.Assert(errors.As(err, &serr), Equals, true)
	c.Check(serr.Pos, Equals, 0)
}

func (s *MySuite) TestUnbalancedClose(c *C) {
	_, err := NewCompiler().Compile("a)")
	c.Assert(err, NotNil)
	var serr *SyntaxError
	c.Assert(errors.As(err, &serr), Equals, true)
}

func (s *MySuite) TestTrailingAlternation(c *C) {
	_, err := NewCompiler().Compile("a|")
	c.Assert(err, NotNil)
	var serr *SyntaxError
	c.Assert(errors.As(err, &serr), Equals, true)
	c.Check(serr.Pos, Equals, 1)
}

func (s *MySuite) TestLeadingAlternation(c *C) {
	_, err := NewCompiler().Compile("|a")
	c.Assert(err, NotNil)
	var serr *SyntaxError
	c.Assert(errors.As(err, &serr), Equals, true)
	c.Check(serr.Pos, Equals, 0)
}

func (s *MySuite) TestEmptyAlternative(c *C) {
	_, err := NewCompiler().Compile("a||b")
	c.Assert(err, NotNil)
	var serr *SyntaxError
	c.Assert(errors.As(err, &serr), Equals, true)
}

func (s *MySuite) TestEmptyPattern(c *C) {
	_, err := NewCompiler().Compile("")
	c.Assert(err, NotNil)
	var serr *SyntaxError
	c.Assert(errors.As(err, &serr), Equals, true)
}

func (s *MySuite) TestEmptyGroup(c *C) {
	_, err := NewCompiler().Compile("a|()")
	c.Assert(err, NotNil)
	var serr *SyntaxError
	c.Assert(errors.As(err, &serr), Equals, true)
}

func (s *MySuite) TestGroupBesideLiteral(c *C) {
	for _, pattern := range []string{"a(bc)", "(ab)c", "(ab)(cd)"} {
		_, err := NewCompiler().Compile(pattern)
		c.Assert(err, NotNil, Commentf("pattern %q", pattern))
		var serr *SyntaxError
		c.Assert(errors.As(err, &serr), Equals, true,
			Commentf("pattern %q", pattern))
	}
}

func (s *MySuite) TestUnsupportedClass(c *C) {
	_, err := NewCompiler().Compile("[0-9]+")
	c.Assert(err, NotNil)
	var uerr *UnsupportedConstructError
	c.Assert(errors.As(err, &uerr), Equals, true)
	c.Check(uerr.Char, Equals, '[')
	c.Check(uerr.Pos, Equals, 0)
}

func (s *MySuite) TestUnsupportedConstructs(c *C) {
	for _, tc := range []struct {
		pattern string
		char    rune
		pos     int
	}{
		{"a*", '*', 1},
		{"ab+", '+', 2},
		{"x?", '?', 1},
		{`a\d`, '\\', 1},
		{"^a", '^', 0},
		{"a$", '$', 1},
		{"a{2}", '{', 1},
		{"0-9]", ']', 3},
	} {
		_, err := NewCompiler().Compile(tc.pattern)
		c.Assert(err, NotNil, Commentf("pattern %q", tc.pattern))
		var uerr *UnsupportedConstructError
		c.Assert(errors.As(err, &uerr), Equals, true,
			Commentf("pattern %q", tc.pattern))
		c.Check(uerr.Char, Equals, tc.char)
		c.Check(uerr.Pos, Equals, tc.pos)
	}
}

func (s *MySuite) TestErrorMessages(c *C) {
	_, err := NewCompiler().Compile("[0-9]+")
	c.Assert(err, NotNil)
	c.Check(err.Error(), Equals, "unsupported construct '[' at pos 0")

	_, err = NewCompiler().Compile("(a")
	c.Assert(err, NotNil)
	c.Check(err.Error(), Equals, "syntax error at pos 0: missing ')'")
}

func (s *MySuite) TestBadUTF8(c *C) {
	_, err := NewCompiler().Compile("a\xffb")
	c.Assert(err, NotNil)
	var serr *SyntaxError
	c.Assert(errors.As(err, &serr), Equals, true)
}
