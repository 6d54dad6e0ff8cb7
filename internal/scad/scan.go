// Package scad is the bridge to the OpenSCAD geometry model: it formats
// the derived parameter set as -D definitions, invokes the tool, and can
// scan a .scad source for its tunable parameters so the contract between
// generator and model is checked before a long render.
package scad

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Parameter is a top-level assignment in a .scad file, i.e. a value the
// model can be overridden with via -D.
type Parameter struct {
	Name    string
	Default string // raw source text of the default value
}

// scadLexer tokenizes OpenSCAD source. Only enough structure to find
// top-level assignments; the language itself is not parsed.
var scadLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|(?s:/\*.*?\*/)`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[-\[\]{}()=;,+*/%<>!?:&|^#.]`},
})

// ScanFile scans a .scad file for its top-level parameters.
func ScanFile(path string) ([]Parameter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scad source: %w", err)
	}
	defer f.Close()

	params, err := Scan(f)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return params, nil
}

// Scan extracts top-level `name = value;` assignments from OpenSCAD
// source. Assignments inside module or function bodies are skipped by
// tracking bracket depth.
func Scan(r io.Reader) ([]Parameter, error) {
	lx, err := scadLexer.Lex("", r)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lx)
	if err != nil {
		return nil, err
	}

	symbols := scadLexer.Symbols()
	identType := symbols["Ident"]
	commentType := symbols["Comment"]
	wsType := symbols["Whitespace"]

	// Strip trivia so assignment shapes are adjacent in the stream.
	code := tokens[:0]
	for _, tok := range tokens {
		if tok.Type == commentType || tok.Type == wsType || tok.EOF() {
			continue
		}
		code = append(code, tok)
	}

	var params []Parameter
	depth := 0
	for i := 0; i < len(code); i++ {
		tok := code[i]
		switch tok.Value {
		case "{", "(", "[":
			depth++
			continue
		case "}", ")", "]":
			if depth > 0 {
				depth--
			}
			continue
		}

		if depth != 0 || tok.Type != identType {
			continue
		}
		if i+1 >= len(code) || code[i+1].Value != "=" {
			continue
		}

		// Collect the default up to the statement-terminating
		// semicolon at this depth.
		var value []string
		j := i + 2
		local := 0
		for ; j < len(code); j++ {
			v := code[j].Value
			switch v {
			case "{", "(", "[":
				local++
			case "}", ")", "]":
				local--
			}
			if v == ";" && local == 0 {
				break
			}
			value = append(value, v)
		}

		params = append(params, Parameter{
			Name:    tok.Value,
			Default: strings.Join(value, ""),
		})
		i = j
	}

	return params, nil
}

// Names returns the parameter names of a scan result as a lookup set.
func Names(params []Parameter) map[string]bool {
	set := make(map[string]bool, len(params))
	for _, p := range params {
		set[p.Name] = true
	}
	return set
}
