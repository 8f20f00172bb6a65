// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package lexnfa

// The transition label on an NFA edge.
type transTypeT int

const (
	// Consumes no input
	ttEpsilon transTypeT = iota
	// Consumes exactly one input rune
	ttChar
)

type transitionT struct {
	ttype transTypeT
	// set if ttype is ttChar
	ch rune
}

func epsilonT() transitionT {
	return transitionT{ttype: ttEpsilon}
}

func charT(r rune) transitionT {
	return transitionT{ttype: ttChar, ch: r}
}

// One outgoing edge of a state. The target is an index into the
// owning NFA's state slice, not a pointer; absorbing another NFA's
// states is a slice append plus retargeting by a fixed offset.
type edgeT struct {
	trans transitionT
	to    int
}

type stateT struct {
	// Unique per Compiler, monotonically increasing, never reused.
	id        int
	edges     []edgeT
	accepting bool
}

func (s *stateT) addEdge(trans transitionT, to int) {
	s.edges = append(s.edges, edgeT{trans: trans, to: to})
}

// A nondeterministic finite automaton. While a build is running, only
// that build touches it. Once returned from Compile it is complete
// and read-only, and safe to share between goroutines.
type NFA struct {
	compiler *Compiler

	// The arena. Edge targets index into this slice.
	states []stateT

	// Index of the initial state.
	initial int
}

// A new NFA holds exactly one non-accepting state, which is its
// initial state.
func newNFA(compiler *Compiler) (*NFA, error) {
	n := &NFA{compiler: compiler}
	_, err := n.addState(false)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Create a new state owned by this NFA and return its index.
func (n *NFA) addState(accepting bool) (int, error) {
	id, err := n.compiler.nextStateID()
	if err != nil {
		return 0, err
	}
	n.states = append(n.states, stateT{id: id, accepting: accepting})
	return len(n.states) - 1, nil
}

// Append other's states to this NFA, retargeting their edges past the
// states already here. Returns the new index of other's initial
// state. other must not be used afterwards; its states now belong to
// this NFA.
func (n *NFA) absorb(other *NFA) int {
	offset := len(n.states)
	for _, st := range other.states {
		for i := range st.edges {
			st.edges[i].to += offset
		}
		n.states = append(n.states, st)
	}
	return other.initial + offset
}

// Sequencing: run this NFA, then other. Every accepting state here
// stops accepting and gains an epsilon edge to other's initial state.
// The initial state stays this NFA's own.
func (n *NFA) connectOther(other *NFA) {
	dlog.Printf("connectOther: %d states <- %d states",
		len(n.states), len(other.states))
	own := len(n.states)
	otherInitial := n.absorb(other)
	for i := 0; i < own; i++ {
		if n.states[i].accepting {
			n.states[i].accepting = false
			n.states[i].addEdge(epsilonT(), otherInitial)
		}
	}
}

// Alternation: run this NFA or other. A fresh state becomes the new
// initial, with epsilon edges to both old initial states.
func (n *NFA) mergeOther(other *NFA) error {
	dlog.Printf("mergeOther: %d states | %d states",
		len(n.states), len(other.states))
	otherInitial := n.absorb(other)
	newInitial, err := n.addState(false)
	if err != nil {
		return err
	}
	n.states[newInitial].addEdge(epsilonT(), n.initial)
	n.states[newInitial].addEdge(epsilonT(), otherInitial)
	n.initial = newInitial
	return nil
}

// An NFA fresh from newNFA that no literal has extended yet.
func (n *NFA) isEmpty() bool {
	return len(n.states) == 1 && len(n.states[0].edges) == 0 &&
		!n.states[0].accepting
}

// NumStates returns how many states the NFA owns.
func (n *NFA) NumStates() int {
	return len(n.states)
}

// InitialID returns the id of the initial state.
func (n *NFA) InitialID() int {
	return n.states[n.initial].id
}

// AcceptingIDs returns the ids of all accepting states. Accepting
// states are not tracked separately; they are found by scanning the
// flag.
func (n *NFA) AcceptingIDs() []int {
	ids := make([]int, 0)
	for i := range n.states {
		if n.states[i].accepting {
			ids = append(ids, n.states[i].id)
		}
	}
	return ids
}
