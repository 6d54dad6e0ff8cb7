// Package sexp implements a streaming s-expression reader for KiCad design
// files. KiCad boards can run to tens of megabytes, so the reader tokenizes
// from an io.Reader instead of slurping the file into memory first.
package sexp

import (
	"io"
	"strings"
)

// Node is a single s-expression: either an Atom or a List.
type Node interface {
	// IsAtom reports whether the node is an atom (symbol, number, string).
	IsAtom() bool

	// String renders the node back to s-expression syntax.
	String() string
}

// Atom is a leaf token. Quoted records whether the token was written as a
// quoted string in the source; KiCad uses quoting inconsistently between
// format versions, so lookups generally ignore it.
type Atom struct {
	Value  string
	Quoted bool
}

func (a Atom) IsAtom() bool { return true }

func (a Atom) String() string {
	if a.Quoted {
		return `"` + strings.ReplaceAll(a.Value, `"`, `\"`) + `"`
	}
	return a.Value
}

// List is a parenthesized sequence of nodes.
type List struct {
	Items []Node
}

func (l *List) IsAtom() bool { return false }

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range l.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Len returns the number of items in the list.
func (l *List) Len() int { return len(l.Items) }

// Name returns the head atom of the list, or "" if the list is empty or
// starts with a sublist. For KiCad nodes this is the node type, e.g.
// "footprint" for (footprint ...).
func (l *List) Name() string {
	if len(l.Items) == 0 {
		return ""
	}
	if a, ok := l.Items[0].(Atom); ok {
		return a.Value
	}
	return ""
}

// Parse reads all top-level s-expressions from r.
func Parse(r io.Reader) ([]Node, error) {
	return newParser(r).parseAll()
}

// ParseString parses s-expressions from a string.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}
