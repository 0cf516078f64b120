package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"aacomp/tablediff"
)

// diffTables compares two feature tables and reports differing cells.
// Exit status 0 means the tables match within the tolerance.
type diffTables struct{}

func (cmd *diffTables) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	tolerance := flags.Float64("tolerance", 1e-9, "numeric cells differing by at most `T` are equal")
	maxReport := flags.Int("max-report", 20, "print at most `N` differing cells (0: all)")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	}
	if flags.NArg() != 2 {
		err = fmt.Errorf("usage: %s [options] a.csv b.csv", prog)
		return 2
	}

	tables := make([]*tablediff.Table, 2)
	for i, filename := range flags.Args() {
		var f *os.File
		f, err = os.Open(filename)
		if err != nil {
			return 1
		}
		tables[i], err = tablediff.Read(f)
		f.Close()
		if err != nil {
			err = fmt.Errorf("%s: %s", filename, err)
			return 1
		}
	}

	diffs := tablediff.Compare(tables[0], tables[1], *tolerance)
	if len(diffs) == 0 {
		return 0
	}
	for i, d := range diffs {
		if *maxReport > 0 && i == *maxReport {
			fmt.Fprintf(stdout, "... and %d more\n", len(diffs)-i)
			break
		}
		fmt.Fprintln(stdout, d.String())
	}
	fmt.Fprintf(stdout, "%d differing cells\n", len(diffs))
	return 1
}
