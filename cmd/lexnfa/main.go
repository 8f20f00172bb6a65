package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gilramir/lexnfa"
)

func main() {
	tokensFile := flag.String("tokens", "tokens.toml", "token table file")
	pattern := flag.String("re", "", "compile a single pattern instead of a table")
	dotFile := flag.String("dot", "", "also write a graphviz dot file (single pattern only)")
	flag.Parse()

	compiler := lexnfa.NewCompiler()

	if *pattern != "" {
		nfa, err := compiler.Compile(*pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lexnfa: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(nfa.Repr())
		if *dotFile != "" {
			f, err := os.Create(*dotFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "lexnfa: cannot create %s: %v\n", *dotFile, err)
				os.Exit(1)
			}
			defer f.Close()
			if err := nfa.WriteDot(f); err != nil {
				fmt.Fprintf(os.Stderr, "lexnfa: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	table, err := lexnfa.LoadTokenTable(*tokensFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexnfa: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, def := range table.Tokens {
		nfa, err := compiler.Compile(def.Value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lexnfa: token %q: %v\n", def.Kind, err)
			failed = true
			continue
		}
		fmt.Printf("%s: %s\n", def.Kind, def.Value)
		fmt.Print(nfa.Repr())
	}
	if failed {
		os.Exit(1)
	}
}
