package profiles

import (
	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// SchemaOrg serializes the dataset record as a schema.org/Dataset. It is
// output only: parsing and the catalog node are left to the DCAT
// profiles. Dates are written as plain literals.
type SchemaOrg struct {
	*Base
}

// NewSchemaOrg binds a schema.org profile to the graph.
func NewSchemaOrg(g *graph.Graph, opts Options) *SchemaOrg {
	b := NewBase(g, opts)
	b.dateDatatype = ""
	return &SchemaOrg{Base: b}
}

// Name implements Profile.
func (p *SchemaOrg) Name() string { return "schemaorg" }

// GraphFromDataset writes d as a schema.org/Dataset rooted at ref.
func (p *SchemaOrg) GraphFromDataset(d *dataset.Dataset, ref rdf.Term) error {
	p.g.Bind("schema", vocabulary.SchemaBase)
	p.g.Add(ref, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SchemaDataset})

	p.basicFields(d, ref)
	p.dataCatalog(ref)
	p.groups(d, ref)

	for _, tag := range d.Tags {
		p.g.Add(ref, vocabulary.SchemaKeywords, graph.Literal(tag.Name))
	}

	p.addListTriples(d, ref, []tripleSpec{
		{key: "language", predicate: vocabulary.SchemaInLanguage},
	})

	p.publisherNode(d, ref)
	p.temporalCoverage(d, ref)
	p.spatialCoverage(d, ref)

	for _, r := range d.Resources {
		p.dataDownload(d, r, ref)
	}
	return nil
}

func (p *SchemaOrg) basicFields(d *dataset.Dataset, ref rdf.Term) {
	p.addTriples(d, ref, []tripleSpec{
		{key: "identifier", predicate: vocabulary.SchemaIdentifier},
		{key: "title", predicate: vocabulary.SchemaName},
		{key: "notes", predicate: vocabulary.SchemaDescription},
		{key: "version", predicate: vocabulary.SchemaVersion, fallbacks: []string{"dcat_version"}},
		{key: "issued", predicate: vocabulary.SchemaDatePublished, fallbacks: []string{"metadata_created"}},
		{key: "modified", predicate: vocabulary.SchemaDateModified, fallbacks: []string{"metadata_modified"}},
		{key: "license", predicate: vocabulary.SchemaLicense, fallbacks: []string{"license_url", "license_title"}},
	})

	p.addDateTriples(d, ref, []tripleSpec{
		{key: "issued", predicate: vocabulary.SchemaDatePublished, fallbacks: []string{"metadata_created"}},
		{key: "modified", predicate: vocabulary.SchemaDateModified, fallbacks: []string{"metadata_modified"}},
	})

	datasetURL := p.catalogURI() + "/dataset/" + d.Name
	p.g.Add(ref, vocabulary.SchemaURL, graph.Literal(datasetURL))
}

func (p *SchemaOrg) dataCatalog(ref rdf.Term) {
	catalog := graph.NewBlankNode()
	p.g.Add(ref, vocabulary.SchemaIncludedInDataCatalog, catalog)
	p.g.Add(catalog, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SchemaDataCatalog})
	p.g.Add(catalog, vocabulary.SchemaName, graph.Literal(p.cfg.SiteTitle))
	p.g.Add(catalog, vocabulary.SchemaDescription, graph.Literal(p.cfg.SiteDescription))
	p.g.Add(catalog, vocabulary.SchemaURL, graph.Literal(p.cfg.SiteURL))
}

func (p *SchemaOrg) groups(d *dataset.Dataset, ref rdf.Term) {
	for _, group := range d.Groups {
		about := graph.NewBlankNode()
		p.g.Add(about, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SchemaThing})
		p.g.Add(about, vocabulary.SchemaName, graph.Literal(group.Name))
		p.g.Add(about, vocabulary.SchemaURL, graph.Literal(p.catalogURI()+"/group/"+group.ID))
		p.g.Add(ref, vocabulary.SchemaAbout, about)
	}
}

func (p *SchemaOrg) publisherNode(d *dataset.Dataset, ref rdf.Term) {
	uri := d.StringValue("publisher_uri")
	name := d.StringValue("publisher_name")
	if uri == "" && name == "" && d.Organization == nil {
		return
	}

	var publisher rdf.Term
	switch {
	case uri != "":
		publisher = graph.CleanedRef(uri)
	case name == "" && p.publisherURIOrgFallback(d) != "":
		publisher = graph.CleanedRef(p.publisherURIOrgFallback(d))
	default:
		publisher = graph.NewBlankNode()
	}

	p.g.Add(publisher, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SchemaOrganization})
	p.g.Add(ref, vocabulary.SchemaPublisher, publisher)

	if name == "" && uri == "" && d.Organization != nil {
		name = d.Organization.Title
	}
	p.g.Add(publisher, vocabulary.SchemaName, graph.Literal(name))

	contact := graph.NewBlankNode()
	p.g.Add(contact, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SchemaContactPointType})
	p.g.Add(publisher, vocabulary.SchemaContactPoint, contact)
	p.g.Add(contact, vocabulary.SchemaContactType, graph.Literal("customer service"))

	contactURL := d.StringValue("publisher_url")
	if contactURL == "" && d.Organization != nil {
		contactURL = d.Organization.URL
		if contactURL == "" {
			contactURL = p.cfg.SiteURL
		}
	}
	p.g.Add(contact, vocabulary.SchemaURL, graph.Literal(contactURL))

	p.addTriples(d, contact, []tripleSpec{
		{key: "publisher_email", predicate: vocabulary.SchemaEmail, fallbacks: []string{"contact_email", "maintainer_email", "author_email"}},
		{key: "publisher_name", predicate: vocabulary.SchemaName, fallbacks: []string{"contact_name", "maintainer", "author"}},
	})
}

// temporalCoverage collapses a closed interval to the "start/end" slash
// form; an open interval falls back to a single date value.
func (p *SchemaOrg) temporalCoverage(d *dataset.Dataset, ref rdf.Term) {
	start := d.StringValue("temporal_start")
	end := d.StringValue("temporal_end")
	switch {
	case start != "" && end != "":
		p.g.Add(ref, vocabulary.SchemaTemporalCoverage, graph.Literal(start+"/"+end))
	case start != "":
		p.addDateTriple(ref, vocabulary.SchemaTemporalCoverage, start)
	case end != "":
		p.addDateTriple(ref, vocabulary.SchemaTemporalCoverage, end)
	}
}

func (p *SchemaOrg) spatialCoverage(d *dataset.Dataset, ref rdf.Term) {
	uri := d.StringValue("spatial_uri")
	text := d.StringValue("spatial_text")
	geom := d.StringValue("spatial")
	if uri == "" && text == "" && geom == "" {
		return
	}

	var place rdf.Term
	if uri != "" {
		place = graph.CleanedRef(uri)
	} else {
		place = graph.NewBlankNode()
	}
	p.g.Add(place, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SchemaPlace})
	p.g.Add(ref, vocabulary.SchemaSpatialCoverage, place)

	if text != "" {
		p.g.Add(place, vocabulary.SchemaDescription, graph.Literal(text))
	}
	if geom != "" {
		shape := graph.NewBlankNode()
		p.g.Add(shape, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SchemaGeoShape})
		p.g.Add(place, vocabulary.SchemaGeo, shape)
		// Stored geometries are GeoJSON; schema.org consumers read the
		// polygon value as an opaque shape string.
		p.g.Add(shape, vocabulary.SchemaPolygon, graph.Literal(geom))
	}
}

func (p *SchemaOrg) dataDownload(d *dataset.Dataset, r *dataset.Resource, ref rdf.Term) {
	distribution := graph.CleanedRef(p.resourceURI(d, r))
	p.g.Add(ref, vocabulary.SchemaDistribution, distribution)
	p.g.Add(distribution, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SchemaDataDownload})

	p.addTriples(r, distribution, []tripleSpec{
		{key: "name", predicate: vocabulary.SchemaName},
		{key: "description", predicate: vocabulary.SchemaDescription},
		{key: "license", predicate: vocabulary.SchemaLicense, fallbacks: []string{"rights"}},
	})

	p.addDateTriples(r, distribution, []tripleSpec{
		{key: "issued", predicate: vocabulary.SchemaDatePublished},
		{key: "modified", predicate: vocabulary.SchemaDateModified},
	})

	p.addListTriples(r, distribution, []tripleSpec{
		{key: "language", predicate: vocabulary.SchemaInLanguage},
	})

	if r.Format != "" {
		p.g.Add(distribution, vocabulary.SchemaEncodingFormat, graph.Literal(r.Format))
	} else if r.Mimetype != "" {
		p.g.Add(distribution, vocabulary.SchemaEncodingFormat, graph.Literal(r.Mimetype))
	}

	if r.DownloadURL != "" {
		p.g.Add(distribution, vocabulary.SchemaContentURL, graph.Literal(r.DownloadURL))
	}
	if r.URL != "" && (r.DownloadURL == "" || r.URL != r.DownloadURL) {
		p.g.Add(distribution, vocabulary.SchemaURL, graph.Literal(r.URL))
	}

	if raw, ok := r.Value("size"); ok {
		if text := stringifyValue(raw); text != "" {
			p.g.Add(distribution, vocabulary.SchemaContentSize, graph.Literal(text))
		}
	}
}
