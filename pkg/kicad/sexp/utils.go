package sexp

import (
	"fmt"
	"strconv"
)

// Navigation and typed-extraction helpers shared by the KiCad parsers.

// Find returns the first sublist whose head atom equals key.
// Find((pad "1" smd (at 1 2)), "at") returns (at 1 2).
func Find(n Node, key string) (*List, bool) {
	l, ok := n.(*List)
	if !ok {
		return nil, false
	}
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Name() == key {
			return sub, true
		}
	}
	return nil, false
}

// FindAll returns every sublist whose head atom equals key, in order.
func FindAll(n Node, key string) []*List {
	l, ok := n.(*List)
	if !ok {
		return nil
	}
	var out []*List
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Name() == key {
			out = append(out, sub)
		}
	}
	return out
}

// HasFlag reports whether the list contains the bare atom flag.
// KiCad writes booleans as bare flags, e.g. (fp_text ... hide).
func HasFlag(n Node, flag string) bool {
	l, ok := n.(*List)
	if !ok {
		return false
	}
	for _, item := range l.Items {
		if a, ok := item.(Atom); ok && a.Value == flag {
			return true
		}
	}
	return false
}

// Str extracts the atom value at index. Index 0 is the list head.
func Str(n Node, index int) (string, error) {
	l, ok := n.(*List)
	if !ok {
		return "", fmt.Errorf("expected list, got atom")
	}
	if index < 0 || index >= len(l.Items) {
		return "", fmt.Errorf("index %d out of range (list has %d items)", index, len(l.Items))
	}
	a, ok := l.Items[index].(Atom)
	if !ok {
		return "", fmt.Errorf("expected atom at index %d, got list", index)
	}
	return a.Value, nil
}

// Float extracts a float64 at index.
func Float(n Node, index int) (float64, error) {
	s, err := Str(n, index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing float %q: %w", s, err)
	}
	return v, nil
}

// Int extracts an int at index.
func Int(n Node, index int) (int, error) {
	s, err := Str(n, index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing int %q: %w", s, err)
	}
	return v, nil
}

// Atoms returns the atom values after the list head, skipping sublists.
// Atoms((layers "F.Cu" "B.Cu")) returns ["F.Cu", "B.Cu"].
func Atoms(n Node) []string {
	l, ok := n.(*List)
	if !ok {
		return nil
	}
	var out []string
	for i, item := range l.Items {
		if i == 0 {
			continue
		}
		if a, ok := item.(Atom); ok {
			out = append(out, a.Value)
		}
	}
	return out
}
