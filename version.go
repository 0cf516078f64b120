package main

import (
	"fmt"
	"io"
)

// version is overridden at build time with
// -ldflags "-X main.version=...".
var version = "dev"

type versionCommand struct{}

func (versionCommand) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "aacomp %s\n", version)
	return 0
}
