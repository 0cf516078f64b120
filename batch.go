package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// ErrCanceled is wrapped into the error returned by runBatch when its
// context is canceled at a chunk boundary. The partial table built so
// far is still returned.
var ErrCanceled = errors.New("batch canceled")

type batchOpts struct {
	Columns       columnSet
	Digits        int // fraction digits for frequencies; <0 = full precision
	ChunkSize     int // records between yield/cancellation points
	ProgressEvery int // records between progress callbacks
	Threads       int // concurrent composition workers per chunk
}

const (
	defaultDigits        = 6
	defaultChunkSize     = 100
	defaultProgressEvery = 1000
)

func (opts *batchOpts) setDefaults() {
	if opts.Columns.orders == nil && opts.Columns.meta == nil {
		opts.Columns = defaultColumns()
	}
	if opts.ChunkSize < 1 {
		opts.ChunkSize = defaultChunkSize
	}
	if opts.ProgressEvery < 1 {
		opts.ProgressEvery = defaultProgressEvery
	}
	if opts.Threads < 1 {
		opts.Threads = 1
	}
}

// runBatch serializes one header row plus one data row per record, in
// input order, into a single CSV table. Records are processed in
// chunks of opts.ChunkSize: between chunks the driver checks ctx and
// yields the processor so a host loop stays responsive during long
// batches. Nothing is lost across a yield, and on cancellation the
// rows built so far are returned along with the error.
//
// Every record produces a row: a record whose sequence is empty (or
// all noise) gets zero vectors rather than aborting the batch, so row
// count always matches record count.
func runBatch(ctx context.Context, records []fastaRecord, opts batchOpts, onProgress func(done, total int)) (string, error) {
	opts.setDefaults()
	total := len(records)
	progress := func(done int) {
		log.Printf("progress %d/%d", done, total)
		if onProgress != nil {
			onProgress(done, total)
		}
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Write(opts.Columns.header())

	comps := make([]*Composition, opts.ChunkSize)
	done := 0
	for start := 0; start < total; start += opts.ChunkSize {
		end := start + opts.ChunkSize
		if end > total {
			end = total
		}
		composeChunk(records[start:end], comps[:end-start], opts.Threads)
		for i, rec := range records[start:end] {
			w.Write(opts.Columns.row(rec, comps[i], opts.Digits))
			done++
			if done%opts.ProgressEvery == 0 && done < total {
				progress(done)
			}
		}
		if done < total {
			if err := ctx.Err(); err != nil {
				w.Flush()
				return buf.String(), fmt.Errorf("%w at record %d/%d: %s", ErrCanceled, done, total, err)
			}
			runtime.Gosched()
		}
	}
	progress(done)
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// composeChunk fills comps[i] with the composition of recs[i], using
// up to threads workers. Results land at their input index, so output
// order never depends on worker scheduling.
func composeChunk(recs []fastaRecord, comps []*Composition, threads int) {
	if threads == 1 || len(recs) < 2 {
		for i, rec := range recs {
			comps[i] = composeSeq(rec.Seq)
		}
		return
	}
	todo := make(chan int, len(recs))
	for i := range recs {
		todo <- i
	}
	close(todo)
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range todo {
				comps[i] = composeSeq(recs[i].Seq)
			}
		}()
	}
	wg.Wait()
}
