package main

import (
	"os"
	"strings"

	"github.com/cinemahdplus/cinemahdplus/cmd/cinemahdplus/root"
)

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// Print a short, single-line error to stderr. Errors without a message
		// (help already written) only set the exit status.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg != "" {
			_, _ = os.Stderr.WriteString(msg + "\n")
		}
		os.Exit(root.ExitCode(err))
	}
}
