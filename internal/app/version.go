package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/ZoeyR/rcrypt/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "rcrypt %s\n", Version)
}
