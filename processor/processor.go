package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/profiles"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// DefaultProfiles is the profile chain used when none is configured.
var DefaultProfiles = []string{"euro_dcat_ap"}

// Options configures a Parser or Serializer.
type Options struct {
	// Profiles are applied in order; empty means DefaultProfiles.
	Profiles []string

	// Profile collaborators, passed through to every profile.
	Profile profiles.Options

	// Logger receives per-dataset progress at debug level; nil disables
	// logging.
	Logger *slog.Logger

	// Metrics counts activity; nil disables counting.
	Metrics *Metrics
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (o Options) profileNames() []string {
	if len(o.Profiles) > 0 {
		return o.Profiles
	}
	return DefaultProfiles
}

// newProfile builds the named profile bound to g.
func newProfile(name string, g *graph.Graph, opts profiles.Options) (profiles.Profile, error) {
	switch name {
	case "euro_dcat_ap":
		return profiles.NewDCATAP(g, opts), nil
	case "euro_dcat_ap_2":
		return profiles.NewDCATAP2(g, opts), nil
	case "schemaorg":
		return profiles.NewSchemaOrg(g, opts), nil
	}
	return nil, fmt.Errorf("unknown profile %q", name)
}

func buildChain(names []string, g *graph.Graph, opts profiles.Options) ([]profiles.Profile, error) {
	chain := make([]profiles.Profile, 0, len(names))
	for _, name := range names {
		p, err := newProfile(name, g, opts)
		if err != nil {
			return nil, err
		}
		chain = append(chain, p)
	}
	return chain, nil
}

// Parser reads RDF documents and extracts dataset records.
type Parser struct {
	g       *graph.Graph
	chain   []profiles.Profile
	log     *slog.Logger
	metrics *Metrics
}

// NewParser builds a parser with an empty graph.
func NewParser(opts Options) (*Parser, error) {
	g := graph.New()
	chain, err := buildChain(opts.profileNames(), g, opts.Profile)
	if err != nil {
		return nil, err
	}
	return &Parser{
		g:       g,
		chain:   chain,
		log:     opts.logger(),
		metrics: opts.Metrics,
	}, nil
}

// Graph exposes the underlying graph, mainly for tests and callers that
// want to inspect what was loaded.
func (p *Parser) Graph() *graph.Graph { return p.g }

// Parse loads one document in the given concrete syntax into the graph.
// It may be called several times; statements accumulate.
func (p *Parser) Parse(ctx context.Context, r io.Reader, format string) error {
	if err := p.g.Load(ctx, r, format); err != nil {
		return err
	}
	p.log.Debug("document loaded", "format", format, "statements", p.g.Len())
	return nil
}

// Datasets runs the profile chain over every dcat:Dataset node and
// returns the extracted records in statement order.
func (p *Parser) Datasets() ([]*dataset.Dataset, error) {
	if len(p.chain) == 0 {
		return nil, nil
	}
	refs := datasetRefs(p.chain[0])
	records := make([]*dataset.Dataset, 0, len(refs))
	for _, ref := range refs {
		d := &dataset.Dataset{}
		for _, profile := range p.chain {
			if err := profile.ParseDataset(d, ref); err != nil {
				if p.metrics != nil {
					p.metrics.ParseFailures.Inc()
				}
				return nil, fmt.Errorf("profile %s: %w", profile.Name(), err)
			}
		}
		if p.metrics != nil {
			p.metrics.DatasetsParsed.Inc()
		}
		p.log.Debug("dataset parsed", "uri", graph.RefValue(ref), "resources", len(d.Resources))
		records = append(records, d)
	}
	return records, nil
}

// datasetRefs pulls the dataset enumeration out of the profile's shared
// base; every profile enumerates the same graph.
func datasetRefs(p profiles.Profile) []rdf.Term {
	type enumerator interface{ Datasets() []rdf.Term }
	if e, ok := p.(enumerator); ok {
		return e.Datasets()
	}
	return nil
}

// Serializer renders dataset records as an RDF document.
type Serializer struct {
	opts    Options
	log     *slog.Logger
	metrics *Metrics
}

// NewSerializer builds a serializer. Profile construction is deferred to
// Serialize so each call writes into a fresh graph.
func NewSerializer(opts Options) (*Serializer, error) {
	// Validate the chain up front so a bad profile name fails fast.
	if _, err := buildChain(opts.profileNames(), graph.New(), opts.Profile); err != nil {
		return nil, err
	}
	return &Serializer{
		opts:    opts,
		log:     opts.logger(),
		metrics: opts.Metrics,
	}, nil
}

// SerializeDatasets writes the catalog node (when catalogRef is set) and
// every record to w in the given concrete syntax.
func (s *Serializer) SerializeDatasets(ctx context.Context, w io.Writer, format string, c *dataset.Catalog, catalogRef string, records []*dataset.Dataset) error {
	g := graph.New()
	chain, err := buildChain(s.opts.profileNames(), g, s.opts.Profile)
	if err != nil {
		return err
	}

	if catalogRef != "" {
		catalogNode := graph.CleanedRef(catalogRef)
		for _, profile := range chain {
			if err := profile.GraphFromCatalog(c, catalogNode); err != nil {
				return fmt.Errorf("profile %s: %w", profile.Name(), err)
			}
		}
		for _, d := range records {
			g.Add(catalogNode, vocabulary.DCATDatasetProp, s.datasetNode(d))
		}
	}

	for _, d := range records {
		node := s.datasetNode(d)
		for _, profile := range chain {
			if err := profile.GraphFromDataset(d, node); err != nil {
				return fmt.Errorf("profile %s: %w", profile.Name(), err)
			}
		}
		if s.metrics != nil {
			s.metrics.DatasetsSerialized.Inc()
		}
		s.log.Debug("dataset serialized", "uri", graph.RefValue(node))
	}

	return g.Write(ctx, w, format)
}

// datasetNode picks the node a record serializes under: its stored uri,
// else a portal URI minted from the record identity.
func (s *Serializer) datasetNode(d *dataset.Dataset) rdf.IRI {
	if uri := d.StringValue("uri"); uri != "" && uri != "None" {
		return graph.CleanedRef(uri)
	}
	base := ""
	if s.opts.Profile.Config != nil {
		base = strings.TrimRight(s.opts.Profile.Config.SiteURL, "/")
	}
	id := d.ID
	if id == "" {
		id = d.Name
	}
	return graph.CleanedRef(base + "/dataset/" + id)
}
