package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/kshedden/gonpy"
	log "github.com/sirupsen/logrus"
)

// exportNumpy writes the frequency matrix of a record file as a numpy
// array: one row per record, columns in canonical k-mer index order.
type exportNumpy struct {
	output io.Writer
}

func (cmd *exportNumpy) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
	inputFilename := flags.String("i", "-", "input `file`")
	outputFilename := flags.String("o", "", "output `file`")
	labelsFilename := flags.String("labels", "", "also write row ids as CSV to `file`")
	ordersFlag := flags.String("orders", "1,2,3", "comma-separated k-mer `orders` to export")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	}
	cmd.output = stdout

	if *pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprof, nil))
		}()
	}

	orders, err := parseOrders(*ordersFlag)
	if err != nil {
		return 2
	}

	records, err := readRecordFile(*inputFilename, stdin)
	if err != nil {
		return 1
	}
	log.Printf("%s: %d records", *inputFilename, len(records))

	cols := 0
	for _, k := range orders {
		cols += kmerSpace(k)
	}
	rows := len(records)
	out := make([]float64, rows*cols)
	for row, rec := range records {
		comp := composeSeq(rec.Seq)
		i := row * cols
		for _, k := range orders {
			i += copy(out[i:], comp.Freqs[k-1])
		}
	}

	var output io.WriteCloser
	if *outputFilename == "" {
		output = nopCloser{cmd.output}
	} else {
		output, err = os.OpenFile(*outputFilename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0777)
		if err != nil {
			return 1
		}
		defer output.Close()
	}
	bufw := bufio.NewWriter(output)
	npw, err := gonpy.NewWriter(nopCloser{bufw})
	if err != nil {
		return 1
	}
	npw.Shape = []int{rows, cols}
	err = npw.WriteFloat64(out)
	if err != nil {
		return 1
	}
	err = bufw.Flush()
	if err != nil {
		return 1
	}
	err = output.Close()
	if err != nil {
		return 1
	}

	if *labelsFilename != "" {
		err = writeLabels(*labelsFilename, records)
		if err != nil {
			return 1
		}
	}
	return 0
}

func writeLabels(filename string, records []fastaRecord) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0777)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	for _, rec := range records {
		w.Write([]string{rec.ID})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
