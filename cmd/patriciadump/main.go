// Command patriciadump builds a patricia set from newline-separated keys
// and renders it as an indented text dump or a Graphviz DOT graph.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/flier/patricia/pkg/patriciadump"
	"github.com/flier/patricia/pkg/patriciaset"
)

func main() {
	dot := flag.Bool("dot", false, "emit a Graphviz DOT graph instead of a text dump")
	flag.Parse()

	if err := run(*dot, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "patriciadump:", err)
		os.Exit(1)
	}
}

func run(dot bool, in *os.File, out *os.File) error {
	set := patriciaset.New()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		key := make([]byte, len(line))
		copy(key, line)

		set.Add(key, len(key)*8)
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if dot {
		return patriciadump.DOT[struct{}](out, set.Tree(), nil)
	}

	return patriciadump.Dump[struct{}](out, set.Tree(), nil)
}
