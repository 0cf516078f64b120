package main

import (
	"gopkg.in/check.v1"
)

type tableSuite struct{}

var _ = check.Suite(&tableSuite{})

func (s *tableSuite) TestHeaderRowAlignment(c *check.C) {
	rec := fastaRecord{ID: "P1", Description: "test protein", Seq: "MKLV"}
	comp := composeSeq(rec.Seq)
	for _, cs := range []columnSet{
		defaultColumns(),
		{meta: []string{"id"}, orders: []int{1}},
		{meta: []string{"id", "description"}, orders: []int{1, 2}},
		{meta: nil, orders: []int{3}},
		{meta: []string{"id", "description", "length", "seq_blake2b"}, orders: []int{1, 2, 3}},
	} {
		header := cs.header()
		row := cs.row(rec, comp, 6)
		c.Assert(row, check.HasLen, len(header), check.Commentf("columns %v", cs))
		c.Check(len(header), check.Equals, len(cs.meta)+cs.featureCount())
	}
}

func (s *tableSuite) TestColumnLayout(c *check.C) {
	cs := defaultColumns()
	header := cs.header()
	c.Check(header[0], check.Equals, "id")
	c.Check(header[1], check.Equals, "description")
	c.Check(header[2], check.Equals, "length")
	c.Check(header[3], check.Equals, "A")
	c.Check(header[22], check.Equals, "Y")
	c.Check(header[23], check.Equals, "AA")
	c.Check(header[3+20+399], check.Equals, "YY")
	c.Check(header[3+20+400], check.Equals, "AAA")
	c.Check(header[len(header)-1], check.Equals, "YYY")
	c.Check(header, check.HasLen, 3+20+400+8000)
}

func (s *tableSuite) TestRowValues(c *check.C) {
	rec := fastaRecord{ID: "P1", Description: "poly-A", Seq: "AAAA"}
	comp := composeSeq(rec.Seq)
	cs := columnSet{meta: []string{"id", "description", "length"}, orders: []int{1, 2}}
	row := cs.row(rec, comp, 3)
	c.Check(row[0], check.Equals, "P1")
	c.Check(row[1], check.Equals, "poly-A")
	c.Check(row[2], check.Equals, "4")
	c.Check(row[3], check.Equals, "1.000")  // A
	c.Check(row[4], check.Equals, "0.000")  // C
	c.Check(row[23], check.Equals, "1.000") // AA
}

func (s *tableSuite) TestChecksumColumn(c *check.C) {
	rec := fastaRecord{ID: "P1", Seq: "MKLV"}
	comp := composeSeq(rec.Seq)
	cs := columnSet{meta: []string{"id", "seq_blake2b"}, orders: []int{1}}
	row := cs.row(rec, comp, 6)
	c.Check(row[1], check.Equals, seqDigest("MKLV"))
}

func (s *tableSuite) TestFloatFormatting(c *check.C) {
	c.Check(formatFreq(0.5, 2), check.Equals, "0.50")
	c.Check(formatFreq(0, 2), check.Equals, "0.00")
	c.Check(formatFreq(1, 0), check.Equals, "1")
	c.Check(formatFreq(1.0/3, -1), check.Equals, "0.3333333333333333")
}

func (s *tableSuite) TestParseOrders(c *check.C) {
	orders, err := parseOrders("1,2,3")
	c.Assert(err, check.IsNil)
	c.Check(orders, check.DeepEquals, []int{1, 2, 3})

	orders, err = parseOrders("2")
	c.Assert(err, check.IsNil)
	c.Check(orders, check.DeepEquals, []int{2})

	for _, bad := range []string{"", "0", "4", "1,1", "x"} {
		_, err = parseOrders(bad)
		c.Check(err, check.NotNil, check.Commentf("orders=%q", bad))
	}
}

func (s *tableSuite) TestParseMeta(c *check.C) {
	meta, err := parseMeta("id, description")
	c.Assert(err, check.IsNil)
	c.Check(meta, check.DeepEquals, []string{"id", "description"})

	meta, err = parseMeta("")
	c.Assert(err, check.IsNil)
	c.Check(meta, check.IsNil)

	_, err = parseMeta("id,organism")
	c.Check(err, check.NotNil)
}
