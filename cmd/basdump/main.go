// basdump parses a Tiny BASIC program file and dumps the per-line syntax
// trees, for debugging the parser.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goforj/godump"

	"github.com/gosuda/tinybasic/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: basdump <file.bas>")
		os.Exit(2)
	}
	b, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "basdump: %v\n", err)
		os.Exit(1)
	}

	for i, line := range strings.Split(string(b), "\n") {
		if parser.IsBlank(line) {
			continue
		}
		ln, err := parser.ParseLineAt(line, i+1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "basdump: %v\n", err)
			os.Exit(1)
		}
		if ln.HasNumber {
			fmt.Printf("line %d:\n", ln.Number)
		} else {
			fmt.Println("immediate:")
		}
		godump.Dump(ln.Stmt)
	}
}
