package main

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// A handler implements one subcommand. prog is the name to use in
// usage messages ("aacomp compose", etc).
type handler interface {
	RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int
}

var commands = map[string]handler{
	"version":   versionCommand{},
	"-version":  versionCommand{},
	"--version": versionCommand{},

	"compose":      &composer{},
	"validate":     &validator{},
	"filter":       &filterer{},
	"export-numpy": &exportNumpy{},
	"diff":         &diffTables{},
	"annotate":     &annotator{},
}

func main() {
	os.Exit(runMulti(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runMulti(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(prog, stderr)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "%s: unrecognized command %q\n", prog, args[0])
		usage(prog, stderr)
		return 2
	}
	return cmd.RunCommand(prog+" "+args[0], args[1:], stdin, stdout, stderr)
}

func usage(prog string, stderr io.Writer) {
	var names []string
	for name := range commands {
		if name[0] != '-' {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	fmt.Fprintf(stderr, "usage: %s command [options]\n\ncommands:\n", prog)
	for _, name := range names {
		fmt.Fprintf(stderr, "  %s\n", name)
	}
}
