package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/dirsum/dirsum/internal/cli"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(dirsum.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(dirsum.ExitCodeForError(err))
	}
}
