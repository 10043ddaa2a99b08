package profiles

import (
	"errors"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/config"
	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/licenses"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// ErrAmbiguousCatalog is returned when more than one non-root catalog
// claims the same dataset through dcat:dataset. The graph shape violates
// the sub-catalog invariant and no catalog can be picked safely.
var ErrAmbiguousCatalog = errors.New("dataset claimed by more than one non-root catalog")

// Profile is one vocabulary mapping. Implementations may leave any
// operation as a no-op.
type Profile interface {
	// Name identifies the profile ("euro_dcat_ap", "euro_dcat_ap_2",
	// "schemaorg").
	Name() string

	// ParseDataset reads the dataset at ref from the graph into d. The
	// record accumulates across profiles; later profiles may override
	// earlier fields.
	ParseDataset(d *dataset.Dataset, ref rdf.Term) error

	// GraphFromDataset writes d's triples for the dataset at ref.
	GraphFromDataset(d *dataset.Dataset, ref rdf.Term) error

	// GraphFromCatalog writes the site-level catalog triples at ref.
	GraphFromCatalog(c *dataset.Catalog, ref rdf.Term) error
}

// SearchClient reports catalog-wide aggregates owned by the portal's
// search index. LastMetadataModified returns the most recent
// metadata_modified across all datasets, or "" if unknown.
type SearchClient interface {
	LastMetadataModified() string
}

// Options carries the collaborators a profile binds at construction.
type Options struct {
	// Config is the site configuration; nil means defaults.
	Config *config.Config

	// Compatibility reshapes some parsed fields to the legacy record
	// shape (dcat_-prefixed extras keys, comma-joined language list).
	Compatibility bool

	// Licenses is the license registry; nil disables license resolution.
	Licenses licenses.Register

	// Search resolves the catalog-wide last-modified date; nil leaves
	// the catalog modified date unset.
	Search SearchClient
}

// Base carries the graph binding and the shared accessor and writer
// helpers every concrete profile uses. Its Profile methods are no-ops.
type Base struct {
	g      *graph.Graph
	cfg    *config.Config
	compat bool
	reg    licenses.Register
	search SearchClient

	// dateDatatype types emitted date literals; the schema.org profile
	// clears it to produce plain literals.
	dateDatatype string

	// licenseMemo is built on first use and kept for the instance
	// lifetime.
	licenseMemo *licenseLookup
}

// NewBase binds a graph and collaborators.
func NewBase(g *graph.Graph, opts Options) *Base {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return &Base{
		g:            g,
		cfg:          cfg,
		compat:       opts.Compatibility,
		reg:          opts.Licenses,
		search:       opts.Search,
		dateDatatype: vocabulary.XSDDateTime,
	}
}

// Graph returns the bound graph.
func (b *Base) Graph() *graph.Graph { return b.g }

// Name implements Profile.
func (b *Base) Name() string { return "base" }

// ParseDataset implements Profile as a no-op.
func (b *Base) ParseDataset(d *dataset.Dataset, ref rdf.Term) error { return nil }

// GraphFromDataset implements Profile as a no-op.
func (b *Base) GraphFromDataset(d *dataset.Dataset, ref rdf.Term) error { return nil }

// GraphFromCatalog implements Profile as a no-op.
func (b *Base) GraphFromCatalog(c *dataset.Catalog, ref rdf.Term) error { return nil }

// Datasets returns every dcat:Dataset subject in the graph, in statement
// order.
func (b *Base) Datasets() []rdf.Term {
	return b.g.Subjects(vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCATDataset})
}

// distributions returns the dcat:distribution objects of a dataset in
// declaration order.
func (b *Base) distributions(datasetRef rdf.Term) []rdf.Term {
	return b.g.Objects(datasetRef, vocabulary.DCATDistributionProp)
}

// keywords returns the dcat:keyword values. Keywords containing a comma
// are split after collection; the split parts are appended at the end.
func (b *Base) keywords(datasetRef rdf.Term) []string {
	keywords := b.objectValueList(datasetRef, vocabulary.DCATKeyword)
	var kept, split []string
	for _, k := range keywords {
		if !strings.Contains(k, ",") {
			kept = append(kept, k)
			continue
		}
		for _, part := range strings.Split(k, ",") {
			split = append(split, strings.TrimSpace(part))
		}
	}
	return append(kept, split...)
}

// bindNamespaces binds the full prefix table on the graph.
func (b *Base) bindNamespaces() {
	for prefix, ns := range vocabulary.Prefixes {
		b.g.Bind(prefix, ns)
	}
}
