package main

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"
)

// sexp-dump prints the top-level structure of a KiCad s-expression file.
// Handy when a board fails to parse and the question is whether the file
// is malformed or just uses a node the parser does not know.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sexp-dump <file>")
		os.Exit(1)
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer file.Close()

	info, _ := file.Stat()
	fmt.Printf("File size: %d bytes\n", info.Size())

	sexps, err := sexp.Parse(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d top-level s-expressions\n", len(sexps))
	for i, s := range sexps {
		if s.IsLeaf() {
			fmt.Printf("  #%d: leaf %v\n", i, s)
			continue
		}
		fmt.Printf("  #%d: %d leaves\n", i, s.LeafCount())
	}
}
