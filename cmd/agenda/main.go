package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/agenda/pkg/core"
)

func main() {
	Execute()
}

// fatal reports err on stderr and exits with status 1.
func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	if errors.Is(err, core.ErrReadOnly) {
		fmt.Fprintln(os.Stderr, "the store was opened with --read-only; the change was not saved")
	}
	os.Exit(1)
}
