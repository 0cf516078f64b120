package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Metadata column names accepted by -columns, in their canonical
// output order.
var metaColumns = []string{"id", "description", "length", "seq_blake2b"}

// A columnSet fixes the layout of one output table: which metadata
// columns appear, followed by the frequency columns of each enabled
// k-mer order. Header and data rows are both derived from the same
// columnSet, so they cannot drift apart.
type columnSet struct {
	meta   []string
	orders []int
}

func defaultColumns() columnSet {
	return columnSet{
		meta:   []string{"id", "description", "length"},
		orders: []int{1, 2, 3},
	}
}

// parseOrders parses a flag value like "1,2,3".
func parseOrders(s string) ([]int, error) {
	var orders []int
	seen := [maxOrder + 1]bool{}
	for _, field := range strings.Split(s, ",") {
		k, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || k < 1 || k > maxOrder {
			return nil, fmt.Errorf("invalid k-mer order %q (want 1..%d)", field, maxOrder)
		}
		if seen[k] {
			return nil, fmt.Errorf("duplicate k-mer order %d", k)
		}
		seen[k] = true
		orders = append(orders, k)
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("no k-mer orders enabled")
	}
	return orders, nil
}

// parseMeta parses a flag value like "id,description,length".
func parseMeta(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var meta []string
	for _, field := range strings.Split(s, ",") {
		name := strings.TrimSpace(field)
		ok := false
		for _, known := range metaColumns {
			if name == known {
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("unknown metadata column %q (want one of %s)", name, strings.Join(metaColumns, ","))
		}
		meta = append(meta, name)
	}
	return meta, nil
}

// header returns the column names: metadata first, then the k-mer
// labels of each enabled order in dense index order.
func (cs columnSet) header() []string {
	row := append([]string(nil), cs.meta...)
	for _, k := range cs.orders {
		row = append(row, kmerLabels(k)...)
	}
	return row
}

// row returns the values for one record, in exactly the layout of
// header(). digits < 0 renders frequencies at full precision.
func (cs columnSet) row(rec fastaRecord, comp *Composition, digits int) []string {
	row := make([]string, 0, len(cs.meta)+cs.featureCount())
	for _, name := range cs.meta {
		row = append(row, metaValue(name, rec, comp))
	}
	for _, k := range cs.orders {
		for _, v := range comp.Freqs[k-1] {
			row = append(row, formatFreq(v, digits))
		}
	}
	return row
}

func (cs columnSet) featureCount() int {
	n := 0
	for _, k := range cs.orders {
		n += kmerSpace(k)
	}
	return n
}

func metaValue(name string, rec fastaRecord, comp *Composition) string {
	switch name {
	case "id":
		return rec.ID
	case "description":
		return rec.Description
	case "length":
		return strconv.Itoa(comp.Length)
	case "seq_blake2b":
		return seqDigest(rec.Seq)
	default:
		return ""
	}
}

func formatFreq(v float64, digits int) string {
	if digits < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}
