package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const defaultAnnotationURL = "https://rest.uniprot.org"

// annotation is the best-effort metadata for one protein. Every field
// is optional; none of them ever feeds back into composition vectors.
type annotation struct {
	Accession   string `json:"accession,omitempty"`
	EntryID     string `json:"entry_id,omitempty"`
	ProteinName string `json:"protein_name,omitempty"`
	Organism    string `json:"organism,omitempty"`
	Length      int    `json:"length,omitempty"`
	Mass        int    `json:"mass,omitempty"`
	Function    string `json:"function,omitempty"`
	Location    string `json:"subcellular_location,omitempty"`
	Disease     string `json:"disease,omitempty"`
}

// annotator looks up protein metadata by accession or name. The
// endpoint comes from AACOMP_UNIPROT_URL (optionally via a .env file),
// defaulting to the public UniProt REST service.
type annotator struct {
	baseURL string
	client  *http.Client
}

func (cmd *annotator) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	timeout := flags.Duration("timeout", 10*time.Second, "lookup `timeout`")
	asJSON := flags.Bool("json", false, "print the annotation as JSON")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		err = fmt.Errorf("usage: %s [options] query", prog)
		return 2
	}

	if err := godotenv.Load(); err != nil {
		log.Print("no .env found, using local environment")
	}
	if cmd.baseURL == "" {
		cmd.baseURL = os.Getenv("AACOMP_UNIPROT_URL")
	}
	if cmd.baseURL == "" {
		cmd.baseURL = defaultAnnotationURL
	}
	if cmd.client == nil {
		cmd.client = &http.Client{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ann, err := cmd.lookup(ctx, flags.Arg(0))
	if err != nil {
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(ann)
		if err != nil {
			return 1
		}
		return 0
	}
	printField(stdout, "accession", ann.Accession)
	printField(stdout, "entry id", ann.EntryID)
	printField(stdout, "protein name", ann.ProteinName)
	printField(stdout, "organism", ann.Organism)
	if ann.Length > 0 {
		fmt.Fprintf(stdout, "length\t%d\n", ann.Length)
	}
	if ann.Mass > 0 {
		fmt.Fprintf(stdout, "mass\t%d\n", ann.Mass)
	}
	printField(stdout, "function", ann.Function)
	printField(stdout, "location", ann.Location)
	printField(stdout, "disease", ann.Disease)
	return 0
}

func printField(w io.Writer, name, value string) {
	if value != "" {
		fmt.Fprintf(w, "%s\t%s\n", name, value)
	}
}

// Wire format subset of the UniProt REST search response. Unknown
// fields are ignored; absent fields stay zero.
type uniprotResponse struct {
	Results []struct {
		PrimaryAccession   string `json:"primaryAccession"`
		UniProtkbID        string `json:"uniProtkbId"`
		ProteinDescription struct {
			RecommendedName struct {
				FullName struct {
					Value string `json:"value"`
				} `json:"fullName"`
			} `json:"recommendedName"`
		} `json:"proteinDescription"`
		Organism struct {
			ScientificName string `json:"scientificName"`
		} `json:"organism"`
		Sequence struct {
			Length    int `json:"length"`
			MolWeight int `json:"molWeight"`
		} `json:"sequence"`
		Comments []struct {
			CommentType string `json:"commentType"`
			Texts       []struct {
				Value string `json:"value"`
			} `json:"texts"`
			SubcellularLocations []struct {
				Location struct {
					Value string `json:"value"`
				} `json:"location"`
			} `json:"subcellularLocations"`
			Disease struct {
				DiseaseID string `json:"diseaseId"`
			} `json:"disease"`
		} `json:"comments"`
	} `json:"results"`
}

func (cmd *annotator) lookup(ctx context.Context, query string) (*annotation, error) {
	u := strings.TrimRight(cmd.baseURL, "/") + "/uniprotkb/search?" + url.Values{
		"query":  {query},
		"size":   {"1"},
		"format": {"json"},
	}.Encode()
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	log.Printf("annotation lookup %s", u)
	resp, err := cmd.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotation service: %s", resp.Status)
	}
	var body uniprotResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("annotation service: %s", err)
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("no annotation found for %q", query)
	}
	r := body.Results[0]
	ann := &annotation{
		Accession:   r.PrimaryAccession,
		EntryID:     r.UniProtkbID,
		ProteinName: r.ProteinDescription.RecommendedName.FullName.Value,
		Organism:    r.Organism.ScientificName,
		Length:      r.Sequence.Length,
		Mass:        r.Sequence.MolWeight,
	}
	for _, c := range r.Comments {
		switch c.CommentType {
		case "FUNCTION":
			if len(c.Texts) > 0 && ann.Function == "" {
				ann.Function = c.Texts[0].Value
			}
		case "SUBCELLULAR LOCATION":
			var locs []string
			for _, l := range c.SubcellularLocations {
				if l.Location.Value != "" {
					locs = append(locs, l.Location.Value)
				}
			}
			if ann.Location == "" {
				ann.Location = strings.Join(locs, "; ")
			}
		case "DISEASE":
			if c.Disease.DiseaseID != "" && ann.Disease == "" {
				ann.Disease = c.Disease.DiseaseID
			}
		}
	}
	return ann, nil
}
