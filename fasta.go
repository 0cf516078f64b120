package main

import (
	"bufio"
	"compress/gzip"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

// fastaRecord is one header/sequence pair from a multi-record input.
// Seq has already been through normalizeSeq.
type fastaRecord struct {
	Header      string // header line without the '>' marker
	ID          string // first whitespace-delimited token of Header
	Description string // remainder of Header
	Seq         string
}

// readRecords parses all records from rdr. Text before the first '>'
// is discarded; a header with no body lines yields a record with an
// empty sequence; input with no headers yields no records and no
// error.
func readRecords(rdr io.Reader) ([]fastaRecord, error) {
	var (
		recs    []fastaRecord
		seq     strings.Builder
		header  string
		started bool
	)
	flush := func() {
		id, desc := splitHeader(header)
		recs = append(recs, fastaRecord{
			Header:      header,
			ID:          id,
			Description: desc,
			Seq:         normalizeSeq(seq.String()),
		})
		seq.Reset()
	}
	scanner := bufio.NewScanner(rdr)
	scanner.Buffer(nil, 64*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '>' {
			if started {
				flush()
			}
			started = true
			header = strings.TrimSpace(line[1:])
		} else if started {
			seq.WriteString(strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if started {
		flush()
	}
	return recs, nil
}

func splitHeader(header string) (id, desc string) {
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		return header[:i], strings.TrimSpace(header[i+1:])
	}
	return header, ""
}

// openInput opens path for reading, with "-" meaning stdin and
// transparent gzip decompression for *.gz names.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return ioutil.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return gzReadCloser{gz, f}, nil
}

type gzReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g gzReadCloser) Close() error {
	err := g.Reader.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}
