// Package tablediff compares two CSV feature tables cell by cell.
// Numeric cells are compared within a tolerance; text cells that
// differ are summarized as compact edit scripts.
package tablediff

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Table struct {
	Header []string
	Rows   [][]string
}

func Read(rdr io.Reader) (*Table, error) {
	r := csv.NewReader(rdr)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: all[0], Rows: all[1:]}, nil
}

// A CellDiff describes one differing cell. Row is the 1-based data row
// number; 0 means the header row. Missing rows or columns are reported
// with A or B empty and Detail explaining which side is short.
type CellDiff struct {
	Row    int
	Column string
	A, B   string
	Detail string
}

func (d CellDiff) String() string {
	where := fmt.Sprintf("row %d column %s", d.Row, d.Column)
	if d.Row == 0 {
		where = fmt.Sprintf("header column %s", d.Column)
	}
	if d.Detail != "" {
		return fmt.Sprintf("%s: %s", where, d.Detail)
	}
	return fmt.Sprintf("%s: %q != %q", where, d.A, d.B)
}

// Compare returns every cell where a and b disagree. Cells that parse
// as floats on both sides are equal when they differ by at most tol.
func Compare(a, b *Table, tol float64) []CellDiff {
	var diffs []CellDiff
	diffs = append(diffs, compareRow(0, a.Header, b.Header, a.Header, tol)...)
	n := len(a.Rows)
	if len(b.Rows) > n {
		n = len(b.Rows)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a.Rows):
			diffs = append(diffs, CellDiff{Row: i + 1, Column: "-", Detail: "row missing from first table"})
		case i >= len(b.Rows):
			diffs = append(diffs, CellDiff{Row: i + 1, Column: "-", Detail: "row missing from second table"})
		default:
			diffs = append(diffs, compareRow(i+1, a.Rows[i], b.Rows[i], a.Header, tol)...)
		}
	}
	return diffs
}

func compareRow(row int, a, b, header []string, tol float64) []CellDiff {
	var diffs []CellDiff
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for col := 0; col < n; col++ {
		name := strconv.Itoa(col + 1)
		if row > 0 && col < len(header) {
			name = header[col]
		}
		switch {
		case col >= len(a):
			diffs = append(diffs, CellDiff{Row: row, Column: name, Detail: "cell missing from first table"})
		case col >= len(b):
			diffs = append(diffs, CellDiff{Row: row, Column: name, Detail: "cell missing from second table"})
		case a[col] == b[col]:
		case numEqual(a[col], b[col], tol):
		default:
			diffs = append(diffs, CellDiff{Row: row, Column: name, A: a[col], B: b[col], Detail: editScript(a[col], b[col])})
		}
	}
	return diffs
}

func numEqual(a, b string, tol float64) bool {
	x, errx := strconv.ParseFloat(a, 64)
	y, erry := strconv.ParseFloat(b, 64)
	if errx != nil || erry != nil {
		return false
	}
	d := x - y
	return d <= tol && d >= -tol
}

// editScript renders a compact description of how a becomes b, e.g.
// `"hydro"+"philic"-"phobic"`.
func editScript(a, b string) string {
	dmp := diffmatchpatch.New()
	var out string
	for _, d := range cleanup(dmp.DiffMain(a, b, false)) {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			out += fmt.Sprintf("%q", d.Text)
		case diffmatchpatch.DiffInsert:
			out += fmt.Sprintf("+%q", d.Text)
		case diffmatchpatch.DiffDelete:
			out += fmt.Sprintf("-%q", d.Text)
		}
	}
	return out
}

// cleanup merges adjacent diff segments of the same type.
func cleanup(in []diffmatchpatch.Diff) (out []diffmatchpatch.Diff) {
	for i := 0; i < len(in); i++ {
		d := in[i]
		for i < len(in)-1 && in[i].Type == in[i+1].Type {
			d.Text += in[i+1].Text
			i++
		}
		out = append(out, d)
	}
	return
}
