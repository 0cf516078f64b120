package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
)

// validator implements the strict single-sequence workflow: unlike the
// batch commands, it rejects empty input and the first out-of-alphabet
// character instead of skipping noisy windows.
type validator struct{}

func (cmd *validator) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	digits := flags.Int("digits", defaultDigits, "fraction `digits` for -row output")
	row := flags.Bool("row", false, "print the full feature row as CSV instead of a summary")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	}

	var raw string
	switch flags.NArg() {
	case 0:
		var buf []byte
		buf, err = ioutil.ReadAll(stdin)
		if err != nil {
			return 1
		}
		raw = string(buf)
	case 1:
		raw = flags.Arg(0)
	default:
		err = fmt.Errorf("usage: %s [options] [sequence]", prog)
		return 2
	}

	seq := normalizeSeq(raw)
	err = validateSeq(seq)
	if err != nil {
		return 1
	}
	comp := composeSeq(seq)

	if *row {
		cols := defaultColumns()
		cols.meta = []string{"length", "seq_blake2b"}
		w := csv.NewWriter(stdout)
		w.Write(cols.header())
		w.Write(cols.row(fastaRecord{Seq: seq}, comp, *digits))
		w.Flush()
		err = w.Error()
		if err != nil {
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "length\t%d\n", comp.Length)
	for k := 1; k <= maxOrder; k++ {
		distinct := 0
		top := 0
		for i, c := range comp.Counts[k-1] {
			if c > 0 {
				distinct++
			}
			if c > comp.Counts[k-1][top] {
				top = i
			}
		}
		line := fmt.Sprintf("k=%d\twindows %d\tdistinct %d", k, totalWindows(comp.Length, k), distinct)
		if comp.Counts[k-1][top] > 0 {
			line += fmt.Sprintf("\ttop %s x%d", kmerLabel(top, k), comp.Counts[k-1][top])
		}
		fmt.Fprintln(stdout, line)
	}
	return 0
}
