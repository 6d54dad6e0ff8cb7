package sexp

import (
	"fmt"
	"io"
)

type parser struct {
	lex *lexer
}

func newParser(r io.Reader) *parser {
	return &parser{lex: newLexer(r)}
}

func (p *parser) parseAll() ([]Node, error) {
	var nodes []Node
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			return nodes, nil
		}
		node, err := p.parseNode(tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func (p *parser) parseNode(tok token) (Node, error) {
	switch tok.kind {
	case tokOpen:
		return p.parseList()
	case tokSymbol:
		return Atom{Value: tok.value}, nil
	case tokString:
		return Atom{Value: tok.value, Quoted: true}, nil
	case tokClose:
		return nil, fmt.Errorf("unexpected ')'")
	default:
		return nil, fmt.Errorf("unexpected token %q", tok.value)
	}
}

func (p *parser) parseList() (Node, error) {
	list := &List{}
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokClose:
			return list, nil
		case tokEOF:
			return nil, fmt.Errorf("unexpected EOF inside list")
		default:
			item, err := p.parseNode(tok)
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, item)
		}
	}
}
