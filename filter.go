package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
)

// filterer copies records that survive strict validation, dropping the
// noise that the batch commands would otherwise count around. Output
// is the same record format as the input.
type filterer struct {
	output io.Writer
}

func (cmd *filterer) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
	outputFilename := flags.String("o", "-", "output `file`")
	minLength := flags.Int("min-length", 1, "drop sequences shorter than `N` residues")
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

	log.Print("reading")
	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	var records []fastaRecord
	for _, input := range inputs {
		var recs []fastaRecord
		recs, err = readRecordFile(input, stdin)
		if err != nil {
			return 1
		}
		records = append(records, recs...)
	}
	log.Printf("reading done, %d records", len(records))

	log.Print("filtering")
	kept := records[:0]
	for _, rec := range records {
		if len(rec.Seq) < *minLength {
			continue
		}
		if validateSeq(rec.Seq) != nil {
			continue
		}
		kept = append(kept, rec)
	}
	log.Printf("filtering done, kept %d of %d", len(kept), len(records))

	var output io.WriteCloser
	if *outputFilename == "-" {
		output = nopCloser{cmd.output}
	} else {
		output, err = os.OpenFile(*outputFilename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0777)
		if err != nil {
			return 1
		}
		defer output.Close()
	}
	w := bufio.NewWriter(output)
	log.Print("writing")
	err = writeRecords(w, kept)
	if err != nil {
		return 1
	}
	log.Print("writing done")
	err = w.Flush()
	if err != nil {
		return 1
	}
	err = output.Close()
	if err != nil {
		return 1
	}
	return 0
}

// writeRecords renders records back out, sequence wrapped at 60
// columns.
func writeRecords(w io.Writer, recs []fastaRecord) error {
	for _, rec := range recs {
		if _, err := fmt.Fprintf(w, ">%s\n", rec.Header); err != nil {
			return err
		}
		for start := 0; start < len(rec.Seq); start += 60 {
			end := start + 60
			if end > len(rec.Seq) {
				end = len(rec.Seq)
			}
			if _, err := fmt.Fprintf(w, "%s\n", rec.Seq[start:end]); err != nil {
				return err
			}
		}
	}
	return nil
}
