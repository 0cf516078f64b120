package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"

	"gopkg.in/check.v1"
)

type diffSuite struct{}

var _ = check.Suite(&diffSuite{})

func (s *diffSuite) TestDiffTables(c *check.C) {
	tempdir, err := ioutil.TempDir("", "")
	c.Assert(err, check.IsNil)
	defer os.RemoveAll(tempdir)

	err = ioutil.WriteFile(tempdir+"/a.csv", []byte("id,A,C\nP1,0.5,0.5\nP2,1,0\n"), 0700)
	c.Assert(err, check.IsNil)
	err = ioutil.WriteFile(tempdir+"/b.csv", []byte("id,A,C\nP1,0.5,0.5\nP2,0,1\n"), 0700)
	c.Assert(err, check.IsNil)

	var stdout bytes.Buffer
	exited := (&diffTables{}).RunCommand("diff", []string{tempdir + "/a.csv", tempdir + "/b.csv"}, nil, &stdout, os.Stderr)
	c.Check(exited, check.Equals, 1)
	c.Check(strings.Contains(stdout.String(), "row 2 column A"), check.Equals, true)
	c.Check(strings.Contains(stdout.String(), "2 differing cells"), check.Equals, true)
}

func (s *diffSuite) TestIdenticalTables(c *check.C) {
	tempdir, err := ioutil.TempDir("", "")
	c.Assert(err, check.IsNil)
	defer os.RemoveAll(tempdir)

	table := []byte("id,A\nP1,0.25\n")
	err = ioutil.WriteFile(tempdir+"/a.csv", table, 0700)
	c.Assert(err, check.IsNil)
	err = ioutil.WriteFile(tempdir+"/b.csv", []byte("id,A\nP1,0.250000\n"), 0700)
	c.Assert(err, check.IsNil)

	var stdout bytes.Buffer
	exited := (&diffTables{}).RunCommand("diff", []string{tempdir + "/a.csv", tempdir + "/b.csv"}, nil, &stdout, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check(stdout.String(), check.Equals, "")
}
