package ast

import "strings"

// parenthesize renders a node as "(name child child...)" for debug
// output. It exists purely for diagnostics (the CLI's --ast dump flag and
// test failure messages); nothing in evaluation depends on it.
func parenthesize(name string, parts ...string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, p := range parts {
		sb.WriteByte(' ')
		sb.WriteString(p)
	}
	sb.WriteByte(')')
	return sb.String()
}

func stringifyAll(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = stringOf(n)
	}
	return out
}

// stringOf renders any Node, falling back to "?" for the rare
// node with no Stringer of its own (none currently, but new node types
// added without one shouldn't panic the dumper).
func stringOf(n Node) string {
	if s, ok := n.(interface{ String() string }); ok {
		return s.String()
	}
	return "?"
}
