// Command dcat converts between portal dataset records and DCAT RDF
// documents from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dcat:", err)
		os.Exit(1)
	}
}
