package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"gopkg.in/check.v1"
)

type annotateSuite struct{}

var _ = check.Suite(&annotateSuite{})

const uniprotFixture = `{
  "results": [
    {
      "primaryAccession": "P01133",
      "uniProtkbId": "EGF_HUMAN",
      "proteinDescription": {
        "recommendedName": {"fullName": {"value": "Pro-epidermal growth factor"}}
      },
      "organism": {"scientificName": "Homo sapiens"},
      "sequence": {"length": 1207, "molWeight": 133994},
      "comments": [
        {"commentType": "FUNCTION", "texts": [{"value": "EGF stimulates the growth of various tissues."}]},
        {"commentType": "SUBCELLULAR LOCATION", "subcellularLocations": [{"location": {"value": "Membrane"}}, {"location": {"value": "Secreted"}}]},
        {"commentType": "DISEASE", "disease": {"diseaseId": "Hypomagnesemia 4"}}
      ]
    }
  ]
}`

func (s *annotateSuite) TestLookup(c *check.C) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, check.Equals, "/uniprotkb/search")
		c.Check(r.URL.Query().Get("query"), check.Equals, "EGF_HUMAN")
		c.Check(r.URL.Query().Get("size"), check.Equals, "1")
		w.Write([]byte(uniprotFixture))
	}))
	defer srv.Close()

	cmd := &annotator{baseURL: srv.URL, client: srv.Client()}
	ann, err := cmd.lookup(context.Background(), "EGF_HUMAN")
	c.Assert(err, check.IsNil)
	c.Check(ann.Accession, check.Equals, "P01133")
	c.Check(ann.EntryID, check.Equals, "EGF_HUMAN")
	c.Check(ann.ProteinName, check.Equals, "Pro-epidermal growth factor")
	c.Check(ann.Organism, check.Equals, "Homo sapiens")
	c.Check(ann.Length, check.Equals, 1207)
	c.Check(ann.Mass, check.Equals, 133994)
	c.Check(ann.Function, check.Equals, "EGF stimulates the growth of various tissues.")
	c.Check(ann.Location, check.Equals, "Membrane; Secreted")
	c.Check(ann.Disease, check.Equals, "Hypomagnesemia 4")
}

func (s *annotateSuite) TestLookupNotFound(c *check.C) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	cmd := &annotator{baseURL: srv.URL, client: srv.Client()}
	_, err := cmd.lookup(context.Background(), "NOSUCH")
	c.Check(err, check.ErrorMatches, `no annotation found for "NOSUCH"`)
}

func (s *annotateSuite) TestLookupServerError(c *check.C) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	cmd := &annotator{baseURL: srv.URL, client: srv.Client()}
	_, err := cmd.lookup(context.Background(), "EGF_HUMAN")
	c.Check(err, check.ErrorMatches, `annotation service: .*502.*`)
}

func (s *annotateSuite) TestRunCommand(c *check.C) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(uniprotFixture))
	}))
	defer srv.Close()

	var stdout bytes.Buffer
	cmd := &annotator{baseURL: srv.URL, client: srv.Client()}
	exited := cmd.RunCommand("annotate", []string{"EGF_HUMAN"}, &bytes.Buffer{}, &stdout, os.Stderr)
	c.Assert(exited, check.Equals, 0)
	c.Check(strings.Contains(stdout.String(), "accession\tP01133\n"), check.Equals, true)
	c.Check(strings.Contains(stdout.String(), "organism\tHomo sapiens\n"), check.Equals, true)
}
