// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package lexnfa

import (
	"fmt"
	"io"
	"strings"
)

// A debug aid only; the format does not round-trip.

func (t transitionT) Repr() string {
	switch t.ttype {
	case ttEpsilon:
		return "Epsilon"
	case ttChar:
		return fmt.Sprintf("Char('%c')", t.ch)
	default:
		return "?"
	}
}

// Repr lists the initial state's id, then every state with its id,
// accepting flag, and outgoing [label -> target-id] edges.
func (n *NFA) Repr() string {
	var sb strings.Builder
	sb.WriteString("-------------------------------------\n")
	fmt.Fprintf(&sb, "Initial: %d\n", n.InitialID())
	for i := range n.states {
		st := &n.states[i]
		fmt.Fprintf(&sb, "%d accepting: %t ", st.id, st.accepting)
		for _, e := range st.edges {
			fmt.Fprintf(&sb, "[%s -> %d ] ", e.trans.Repr(), n.states[e.to].id)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("-------------------------------------\n")
	return sb.String()
}

// Write the NFA to a dot file, for visualization with graphviz
func (n *NFA) WriteDot(fh io.Writer) error {
	_, err := fmt.Fprintln(fh, "digraph nfa {")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(fh, "\tstart [shape=point]\n\tstart -> N%d\n",
		n.InitialID())
	if err != nil {
		return err
	}
	for i := range n.states {
		st := &n.states[i]
		shape := "circle"
		if st.accepting {
			shape = "doublecircle"
		}
		_, err = fmt.Fprintf(fh, "\tN%d [shape=%s label=\"%d\"]\n",
			st.id, shape, st.id)
		if err != nil {
			return err
		}
		for _, e := range st.edges {
			label := "ε"
			if e.trans.ttype == ttChar {
				label = string(e.trans.ch)
			}
			_, err = fmt.Fprintf(fh, "\tN%d -> N%d [label=\"%s\"]\n",
				st.id, n.states[e.to].id, label)
			if err != nil {
				return err
			}
		}
	}
	_, err = fmt.Fprintln(fh, "}")
	return err
}
