// Command shiikac is a thin demonstration and debugging harness around the
// semantic-analysis core (package sem). It is not part of the core's
// public contract — that remains sem.Analyze — and it builds its inputs
// directly via internal/ast constructors, since the real parser is out of
// scope for this repository.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
