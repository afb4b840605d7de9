// Package fail provides the single "print and exit" path the CLI uses for
// flag errors and for the errors its loaders return, matching the teacher's
// puzzle.fatalError convention but generalized to a (context, error) pair
// since it now serves more than one call site.
package fail

import (
	"fmt"
	"os"
)

// Fatal prints context and err to stderr and terminates the process with a
// non-zero exit code. It never returns.
func Fatal(context string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %s\n", context, err)
	os.Exit(1)
}
