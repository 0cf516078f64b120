package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
)

type composer struct {
	output io.Writer
}

func (cmd *composer) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	outputFilename := flags.String("o", "-", "output `file`")
	digits := flags.Int("digits", defaultDigits, "fraction `digits` for frequencies (-1: full precision)")
	ordersFlag := flags.String("orders", "1,2,3", "comma-separated k-mer `orders` to emit")
	columnsFlag := flags.String("columns", "id,description,length", "comma-separated metadata `columns`")
	checksum := flags.Bool("checksum", false, "append a seq_blake2b metadata column")
	chunkSize := flags.Int("chunk-size", defaultChunkSize, "records per scheduling chunk")
	progressEvery := flags.Int("progress-every", defaultProgressEvery, "records between progress reports")
	threads := flags.Int("threads", runtime.NumCPU(), "concurrent composition workers")
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
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

	opts := batchOpts{
		Digits:        *digits,
		ChunkSize:     *chunkSize,
		ProgressEvery: *progressEvery,
		Threads:       *threads,
	}
	opts.Columns.orders, err = parseOrders(*ordersFlag)
	if err != nil {
		return 2
	}
	opts.Columns.meta, err = parseMeta(*columnsFlag)
	if err != nil {
		return 2
	}
	if *checksum {
		opts.Columns.meta = append(opts.Columns.meta, "seq_blake2b")
	}

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
		log.Printf("%s: %d records", input, len(recs))
		records = append(records, recs...)
	}

	table, err := runBatch(context.Background(), records, opts, nil)
	if err != nil {
		return 1
	}

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
	bufw := bufio.NewWriter(output)
	_, err = bufw.WriteString(table)
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
	return 0
}

func readRecordFile(path string, stdin io.Reader) ([]fastaRecord, error) {
	input, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer input.Close()
	recs, err := readRecords(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return recs, nil
}
