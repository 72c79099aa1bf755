// Command writ calls the records exports from the command line.
//
//	writ [flags] FUNCNAME [ARGS...]
//	writ list
//	writ conform
//	writ interactive
//
// Each ARG is a JSON document. With -e the result is compared against an
// expected JSON value; a mismatch exits with status 2.
package main

import (
	stderrors "errors"
	"fmt"
	"os"
)

// Exit statuses.
const (
	exitOK       = 0
	exitError    = 1
	exitMismatch = 2
)

// exitCodeError carries a non-default exit status out of a command.
type exitCodeError struct {
	err  error
	code int
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var ec *exitCodeError
	if stderrors.As(err, &ec) {
		return ec.code
	}
	return exitError
}
