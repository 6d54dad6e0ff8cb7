package sexp

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokOpen
	tokClose
	tokSymbol
	tokString
)

type token struct {
	kind  tokenKind
	value string
}

type lexer struct {
	r      *bufio.Reader
	peeked *rune
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r)}
}

// next returns the next token, skipping whitespace and #-comments.
func (l *lexer) next() (token, error) {
	for {
		ch, err := l.peek()
		if err != nil {
			if err == io.EOF {
				return token{kind: tokEOF}, nil
			}
			return token{}, err
		}

		if unicode.IsSpace(ch) {
			l.read()
			continue
		}

		if ch == '#' {
			for {
				c, err := l.read()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}

		break
	}

	ch, err := l.peek()
	if err != nil {
		if err == io.EOF {
			return token{kind: tokEOF}, nil
		}
		return token{}, err
	}

	switch ch {
	case '(':
		l.read()
		return token{kind: tokOpen, value: "("}, nil
	case ')':
		l.read()
		return token{kind: tokClose, value: ")"}, nil
	case '"':
		return l.lexString()
	default:
		return l.lexSymbol()
	}
}

func (l *lexer) peek() (rune, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}
	l.peeked = &ch
	return ch, nil
}

func (l *lexer) read() (rune, error) {
	if l.peeked != nil {
		ch := *l.peeked
		l.peeked = nil
		return ch, nil
	}
	ch, _, err := l.r.ReadRune()
	return ch, err
}

func (l *lexer) lexString() (token, error) {
	l.read() // opening quote

	var out []rune
	for {
		ch, err := l.read()
		if err != nil {
			if err == io.EOF {
				return token{}, fmt.Errorf("unterminated string")
			}
			return token{}, err
		}

		if ch == '"' {
			// Doubled quote is an escaped quote in some writers.
			next, err := l.peek()
			if err == nil && next == '"' {
				l.read()
				out = append(out, '"')
				continue
			}
			break
		}

		if ch == '\\' {
			next, err := l.read()
			if err != nil {
				return token{}, fmt.Errorf("unterminated escape in string")
			}
			switch next {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			default:
				out = append(out, next)
			}
			continue
		}

		out = append(out, ch)
	}

	return token{kind: tokString, value: string(out)}, nil
}

func (l *lexer) lexSymbol() (token, error) {
	var out []rune
	for {
		ch, err := l.peek()
		if err != nil {
			if err == io.EOF {
				break
			}
			return token{}, err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			break
		}
		l.read()
		out = append(out, ch)
	}
	if len(out) == 0 {
		return token{}, fmt.Errorf("empty symbol")
	}
	return token{kind: tokSymbol, value: string(out)}, nil
}
