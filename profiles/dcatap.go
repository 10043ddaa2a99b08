package profiles

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/munge"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// DCATAP maps between the dataset record and the DCAT-AP v1 vocabulary.
type DCATAP struct {
	*Base
}

// NewDCATAP binds a DCAT-AP v1 profile to the graph.
func NewDCATAP(g *graph.Graph, opts Options) *DCATAP {
	return &DCATAP{Base: NewBase(g, opts)}
}

// Name implements Profile.
func (p *DCATAP) Name() string { return "euro_dcat_ap" }

// ParseDataset reads the dataset at ref into d, resetting the extras and
// resource lists first. Extraction is best effort; the only error is an
// ambiguous source catalog.
func (p *DCATAP) ParseDataset(d *dataset.Dataset, ref rdf.Term) error {
	d.Extras = dataset.Extras{}
	d.Resources = nil

	for _, field := range []struct {
		set       func(string)
		predicate string
	}{
		{func(v string) { d.Title = v }, vocabulary.DCTTitle},
		{func(v string) { d.Notes = v }, vocabulary.DCTDescription},
		{func(v string) { d.URL = v }, vocabulary.DCATLandingPage},
		{func(v string) { d.Private = v }, vocabulary.DCTPrivate},
		{func(v string) { d.Version = v }, vocabulary.OWLVersionInfo},
	} {
		if value := p.objectValue(ref, field.predicate); value != "" {
			field.set(value)
		}
	}
	if d.Version == "" {
		// adms:version was the property on the first DCAT-AP revision.
		d.Version = p.objectValue(ref, vocabulary.ADMSVersion)
	}

	d.Tags = nil
	for _, keyword := range p.keywords(ref) {
		if p.cfg.CleanTags {
			keyword = munge.Tag(keyword)
		}
		d.Tags = append(d.Tags, dataset.Tag{Name: keyword})
	}

	for _, item := range []struct {
		key       string
		predicate string
	}{
		{"issued", vocabulary.DCTIssued},
		{"modified", vocabulary.DCTModified},
		{"identifier", vocabulary.DCTIdentifier},
		{"version_notes", vocabulary.ADMSVersionNotes},
		{"frequency", vocabulary.DCTAccrualPeriodicity},
		{"provenance", vocabulary.DCTProvenance},
		{"dcat_type", vocabulary.DCTType},
	} {
		if value := p.objectValue(ref, item.predicate); value != "" {
			d.Extras.Append(item.key, value)
		}
	}

	for _, item := range []struct {
		key       string
		predicate string
	}{
		{"language", vocabulary.DCTLanguage},
		{"theme", vocabulary.DCATTheme},
		{"alternate_identifier", vocabulary.ADMSIdentifier},
		{"kategori", vocabulary.DCATKategori},
		{"prioritas_tahun", vocabulary.DCATPrioritasTahun},
		{"accessRights", vocabulary.DCATAccessRights},
		{"conforms_to", vocabulary.DCTConformsTo},
		{"documentation", vocabulary.FOAFPage},
		{"related_resource", vocabulary.DCTRelation},
		{"has_version", vocabulary.DCTHasVersion},
		{"is_version_of", vocabulary.DCTIsVersionOf},
		{"source", vocabulary.DCTSource},
		{"sample", vocabulary.ADMSSample},
	} {
		values := p.objectValueList(ref, item.predicate)
		if len(values) == 0 {
			continue
		}
		if encoded, err := json.Marshal(values); err == nil {
			d.Extras.Append(item.key, string(encoded))
		}
	}

	contact := p.contactDetails(ref, vocabulary.DCATContactPoint)
	if contact == (agentDetails{}) {
		// adms:contactPoint was the property on the first DCAT-AP revision.
		contact = p.contactDetails(ref, vocabulary.ADMSContactPoint)
	}
	for _, pair := range []struct{ key, value string }{
		{"contact_uri", contact.URI},
		{"contact_name", contact.Name},
		{"contact_email", contact.Email},
	} {
		if pair.value != "" {
			d.Extras.Append(pair.key, pair.value)
		}
	}

	publisher := p.publisher(ref, vocabulary.DCTPublisher)
	for _, pair := range []struct{ key, value string }{
		{"publisher_uri", publisher.URI},
		{"publisher_name", publisher.Name},
		{"publisher_email", publisher.Email},
		{"publisher_url", publisher.URL},
		{"publisher_type", publisher.Type},
	} {
		if pair.value != "" {
			d.Extras.Append(pair.key, pair.value)
		}
	}

	start, end := p.timeInterval(ref, vocabulary.DCTTemporal, 1)
	if start != "" {
		d.Extras.Append("temporal_start", start)
	}
	if end != "" {
		d.Extras.Append("temporal_end", end)
	}

	spatial := p.spatial(ref, vocabulary.DCTSpatial)
	if spatial.URI != "" {
		d.Extras.Append("spatial_uri", spatial.URI)
	}
	if spatial.Text != "" {
		d.Extras.Append("spatial_text", spatial.Text)
	}
	if spatial.Geom != "" {
		d.Extras.Append("spatial", spatial.Geom)
	}

	// The uri extra is always present so missing identities are visible.
	d.Extras.Append("uri", graph.RefValue(ref))

	if rights := p.accessRights(ref, vocabulary.DCTAccessRights); rights != "" {
		d.Extras.Append("accessRights", rights)
	}

	if !d.HasLicenseID() {
		d.SetLicenseID(p.license(ref))
	}

	if p.cfg.ExposeSubcatalogs {
		source, err := p.sourceCatalog(ref)
		if err != nil {
			return err
		}
		if source != nil {
			p.extractCatalogExtras(d, source)
		}
	}

	for _, distribution := range p.distributions(ref) {
		d.Resources = append(d.Resources, p.parseDistribution(distribution))
	}

	if p.compat {
		p.applyCompatibility(d)
	}
	return nil
}

func (p *DCATAP) parseDistribution(distribution rdf.Term) *dataset.Resource {
	r := &dataset.Resource{}

	for _, field := range []struct {
		set       func(string)
		predicate string
	}{
		{func(v string) { r.Name = v }, vocabulary.DCTTitle},
		{func(v string) { r.Description = v }, vocabulary.DCTDescription},
		{func(v string) { r.AccessURL = v }, vocabulary.DCATAccessURL},
		{func(v string) { r.DownloadURL = v }, vocabulary.DCATDownloadURL},
		{func(v string) { r.Issued = v }, vocabulary.DCTIssued},
		{func(v string) { r.Modified = v }, vocabulary.DCTModified},
		{func(v string) { r.Status = v }, vocabulary.ADMSStatus},
		{func(v string) { r.License = v }, vocabulary.DCTLicense},
	} {
		if value := p.objectValue(distribution, field.predicate); value != "" {
			field.set(value)
		}
	}

	r.URL = r.DownloadURL
	if r.URL == "" {
		r.URL = r.AccessURL
	}

	for _, field := range []struct {
		set       func(string)
		predicate string
	}{
		{func(v string) { r.Language = v }, vocabulary.DCTLanguage},
		{func(v string) { r.Documentation = v }, vocabulary.FOAFPage},
		{func(v string) { r.ConformsTo = v }, vocabulary.DCTConformsTo},
	} {
		values := p.objectValueList(distribution, field.predicate)
		if len(values) == 0 {
			continue
		}
		if encoded, err := json.Marshal(values); err == nil {
			field.set(string(encoded))
		}
	}

	if rights := p.accessRights(distribution, vocabulary.DCTRights); rights != "" {
		r.Rights = rights
	}

	imt, label := p.distributionFormat(distribution, p.cfg.NormalizeFormats)
	r.Mimetype = imt
	if label != "" {
		r.Format = label
	} else if imt != "" {
		r.Format = imt
	}

	if size, ok := p.objectValueInt(distribution, vocabulary.DCATByteSize); ok {
		r.Size = size
	}

	for _, checksum := range p.g.Objects(distribution, vocabulary.SPDXChecksum) {
		if algorithm := p.objectValue(checksum, vocabulary.SPDXAlgorithm); algorithm != "" {
			r.HashAlgorithm = algorithm
		}
		if value := p.objectValue(checksum, vocabulary.SPDXChecksumValue); value != "" {
			r.Hash = value
		}
	}

	r.URI = graph.RefValue(distribution)
	// The internal reference lets later profiles find this distribution
	// again, blank node or not.
	r.DistributionRef = distribution.String()
	return r
}

// applyCompatibility reshapes the parsed record to the legacy layout:
// some extras move under a dcat_ prefix and the language list collapses
// to a sorted comma-joined string.
func (p *DCATAP) applyCompatibility(d *dataset.Dataset) {
	for i := range d.Extras {
		switch d.Extras[i].Key {
		case "issued", "modified", "publisher_name", "publisher_email":
			d.Extras[i].Key = "dcat_" + d.Extras[i].Key
		case "language":
			var languages []string
			if err := json.Unmarshal([]byte(d.Extras[i].Value), &languages); err == nil {
				sort.Strings(languages)
				d.Extras[i].Value = strings.Join(languages, ",")
			}
		}
	}
}

// GraphFromDataset writes d's DCAT-AP v1 triples rooted at ref.
func (p *DCATAP) GraphFromDataset(d *dataset.Dataset, ref rdf.Term) error {
	p.bindNamespaces()
	g := p.g

	g.Add(ref, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCATDataset})

	p.addTriples(d, ref, []tripleSpec{
		{key: "title", predicate: vocabulary.DCTTitle},
		{key: "notes", predicate: vocabulary.DCTDescription},
		{key: "url", predicate: vocabulary.DCATLandingPage, kind: refTerm},
		{key: "private", predicate: vocabulary.DCTPrivate, kind: refTerm},
		{key: "identifier", predicate: vocabulary.DCTIdentifier, fallbacks: []string{"guid", "id"}, kind: refOrLiteralTerm},
		{key: "version", predicate: vocabulary.OWLVersionInfo, fallbacks: []string{"dcat_version"}},
		{key: "version_notes", predicate: vocabulary.ADMSVersionNotes},
		{key: "frequency", predicate: vocabulary.DCTAccrualPeriodicity, kind: refOrLiteralTerm},
		{key: "accessRights", predicate: vocabulary.DCTAccessRights, kind: refOrLiteralTerm},
		{key: "dcat_type", predicate: vocabulary.DCTType},
		{key: "provenance", predicate: vocabulary.DCTProvenance},
	})

	for _, tag := range d.Tags {
		g.Add(ref, vocabulary.DCATKeyword, graph.Literal(tag.Name))
	}

	p.addDateTriples(d, ref, []tripleSpec{
		{key: "issued", predicate: vocabulary.DCTIssued, fallbacks: []string{"metadata_created"}},
		{key: "modified", predicate: vocabulary.DCTModified, fallbacks: []string{"metadata_modified"}},
	})

	p.addListTriples(d, ref, []tripleSpec{
		{key: "language", predicate: vocabulary.DCTLanguage, kind: refOrLiteralTerm},
		{key: "theme", predicate: vocabulary.DCATTheme, kind: refTerm},
		{key: "kategori", predicate: vocabulary.DCATKategori, kind: refTerm},
		{key: "prioritas_tahun", predicate: vocabulary.DCATPrioritasTahun, kind: refTerm},
		{key: "accessRights", predicate: vocabulary.DCATAccessRights, kind: refTerm},
		{key: "conforms_to", predicate: vocabulary.DCTConformsTo},
		{key: "alternate_identifier", predicate: vocabulary.ADMSIdentifier, kind: refOrLiteralTerm},
		{key: "documentation", predicate: vocabulary.FOAFPage, kind: refOrLiteralTerm},
		{key: "related_resource", predicate: vocabulary.DCTRelation, kind: refOrLiteralTerm},
		{key: "has_version", predicate: vocabulary.DCTHasVersion, kind: refOrLiteralTerm},
		{key: "is_version_of", predicate: vocabulary.DCTIsVersionOf, kind: refOrLiteralTerm},
		{key: "source", predicate: vocabulary.DCTSource, kind: refOrLiteralTerm},
		{key: "sample", predicate: vocabulary.ADMSSample, kind: refOrLiteralTerm},
	})

	p.addContactPoint(d, ref)
	p.addPublisher(d, ref)

	start := d.StringValue("temporal_start")
	end := d.StringValue("temporal_end")
	if start != "" || end != "" {
		extent := graph.NewBlankNode()
		g.Add(extent, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCTPeriodOfTime})
		if start != "" {
			p.addDateTriple(extent, vocabulary.SchemaStartDate, start)
		}
		if end != "" {
			p.addDateTriple(extent, vocabulary.SchemaEndDate, end)
		}
		g.Add(ref, vocabulary.DCTTemporal, extent)
	}

	spatialText := d.StringValue("spatial_text")
	spatialGeom := d.StringValue("spatial")
	if spatialText != "" || spatialGeom != "" {
		spatialRef := p.getOrCreateSpatialRef(d, ref)
		if spatialText != "" {
			g.Add(spatialRef, vocabulary.SKOSPrefLabel, graph.Literal(spatialText))
		}
		if spatialGeom != "" {
			p.addSpatialValueToGraph(spatialRef, vocabulary.LOCNGeometry, spatialGeom)
		}
	}

	licenseFallback := p.resourceLicenseFallback(d)
	for _, r := range d.Resources {
		p.addDistribution(d, r, ref, licenseFallback)
	}
	return nil
}

// resourceLicenseFallback returns the dataset-level license to stamp onto
// license-less distributions, or "" when the option is off or the license
// is not reference-shaped.
func (p *DCATAP) resourceLicenseFallback(d *dataset.Dataset) string {
	if !p.cfg.DistributionLicenseFallback {
		return ""
	}
	if id := d.LicenseID; id != "" && graph.IsRef(graph.TermOrLiteral(id)) {
		return id
	}
	if url := d.LicenseURL; url != "" && graph.IsRef(graph.TermOrLiteral(url)) {
		return url
	}
	return ""
}

func (p *DCATAP) addContactPoint(d *dataset.Dataset, ref rdf.Term) {
	if d.StringValue("contact_uri") == "" &&
		d.StringValue("contact_name") == "" &&
		d.StringValue("contact_email") == "" &&
		d.StringValue("maintainer") == "" &&
		d.StringValue("maintainer_email") == "" &&
		d.StringValue("author") == "" &&
		d.StringValue("author_email") == "" {
		return
	}

	var contact rdf.Term
	if uri := d.StringValue("contact_uri"); uri != "" {
		contact = graph.CleanedRef(uri)
	} else {
		contact = graph.NewBlankNode()
	}
	p.g.Add(contact, vocabulary.RDFType, rdf.IRI{Value: vocabulary.VCardOrganization})
	p.g.Add(ref, vocabulary.DCATContactPoint, contact)

	p.addTriple(d, contact, tripleSpec{
		key:       "contact_name",
		predicate: vocabulary.VCardFn,
		fallbacks: []string{"maintainer", "author"},
	})
	p.addTriple(d, contact, tripleSpec{
		key:       "contact_email",
		predicate: vocabulary.VCardHasEmail,
		fallbacks: []string{"maintainer_email", "author_email"},
		kind:      refTerm,
		modifier:  withMailto,
	})
}

func (p *DCATAP) addPublisher(d *dataset.Dataset, ref rdf.Term) {
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
		// Neither URI nor name available: the organization stands in.
		publisher = graph.CleanedRef(p.publisherURIOrgFallback(d))
	default:
		publisher = graph.NewBlankNode()
	}

	p.g.Add(publisher, vocabulary.RDFType, rdf.IRI{Value: vocabulary.FOAFOrganization})
	p.g.Add(ref, vocabulary.DCTPublisher, publisher)

	// With a URI but no name the name stays empty rather than mixing in
	// organization values.
	if name == "" && uri == "" && d.Organization != nil {
		name = d.Organization.Title
	}
	p.g.Add(publisher, vocabulary.FOAFName, graph.Literal(name))

	p.addTriples(d, publisher, []tripleSpec{
		{key: "publisher_email", predicate: vocabulary.FOAFMbox},
		{key: "publisher_url", predicate: vocabulary.FOAFHomepage, kind: refTerm},
		{key: "publisher_type", predicate: vocabulary.DCTType, kind: refOrLiteralTerm},
	})
}

func (p *DCATAP) addDistribution(d *dataset.Dataset, r *dataset.Resource, ref rdf.Term, licenseFallback string) {
	g := p.g
	distribution := graph.CleanedRef(p.resourceURI(d, r))

	g.Add(ref, vocabulary.DCATDistributionProp, distribution)
	g.Add(distribution, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCATDistribution})

	p.addTriples(r, distribution, []tripleSpec{
		{key: "name", predicate: vocabulary.DCTTitle},
		{key: "description", predicate: vocabulary.DCTDescription},
		{key: "status", predicate: vocabulary.ADMSStatus, kind: refOrLiteralTerm},
		{key: "rights", predicate: vocabulary.DCTRights, kind: refOrLiteralTerm},
		{key: "license", predicate: vocabulary.DCTLicense, kind: refOrLiteralTerm},
		{key: "access_url", predicate: vocabulary.DCATAccessURL, kind: refTerm},
		{key: "download_url", predicate: vocabulary.DCATDownloadURL, kind: refTerm},
	})

	p.addListTriples(r, distribution, []tripleSpec{
		{key: "documentation", predicate: vocabulary.FOAFPage, kind: refOrLiteralTerm},
		{key: "language", predicate: vocabulary.DCTLanguage, kind: refOrLiteralTerm},
		{key: "conforms_to", predicate: vocabulary.DCTConformsTo},
	})

	if licenseFallback != "" && g.FirstObject(distribution, vocabulary.DCTLicense) == nil {
		g.Add(distribution, vocabulary.DCTLicense, graph.TermOrLiteral(licenseFallback))
	}

	p.addDistributionFormat(r, distribution)

	// url stands in for a missing accessURL unless it duplicates the
	// download URL.
	if r.URL != "" && r.AccessURL == "" {
		if r.DownloadURL == "" || r.URL != r.DownloadURL {
			g.Add(distribution, vocabulary.DCATAccessURL, graph.CleanedRef(r.URL))
		}
	}

	p.addDateTriples(r, distribution, []tripleSpec{
		{key: "issued", predicate: vocabulary.DCTIssued, fallbacks: []string{"created"}},
		{key: "modified", predicate: vocabulary.DCTModified, fallbacks: []string{"metadata_modified"}},
	})

	p.addByteSize(r, distribution)
	p.addChecksum(r, distribution)
}

// addDistributionFormat decides whether the record's format and mimetype
// end up as dcat:mediaType or dct:format. A format that looks like a
// media type (an IANA registry URI, or a slash-bearing non-URL) moves to
// mediaType when mimetype is absent or identical.
func (p *DCATAP) addDistributionFormat(r *dataset.Resource, distribution rdf.Term) {
	mimetype := r.Mimetype
	format := r.Format

	if format != "" && (mimetype == "" || mimetype == format) {
		if strings.Contains(format, "iana.org/assignments/media-types") ||
			(!strings.HasPrefix(format, "http") && strings.Contains(format, "/")) {
			mimetype = format
			format = ""
		} else {
			mimetype = ""
		}
	}

	if mimetype != "" {
		p.g.Add(distribution, vocabulary.DCATMediaType, graph.TermOrLiteral(mimetype))
	}
	if format != "" {
		p.g.Add(distribution, vocabulary.DCTFormat, graph.TermOrLiteral(format))
	}
}

func (p *DCATAP) addByteSize(r *dataset.Resource, distribution rdf.Term) {
	raw, ok := r.Value("size")
	if !ok {
		return
	}
	text := stringifyValue(raw)
	if text == "" {
		return
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		p.g.Add(distribution, vocabulary.DCATByteSize,
			graph.TypedLiteral(strconv.FormatFloat(f, 'f', -1, 64), vocabulary.XSDDecimal))
		return
	}
	p.g.Add(distribution, vocabulary.DCATByteSize, graph.Literal(text))
}

func (p *DCATAP) addChecksum(r *dataset.Resource, distribution rdf.Term) {
	if r.Hash == "" {
		return
	}
	checksum := graph.NewBlankNode()
	p.g.Add(checksum, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SPDXChecksumClass})
	p.g.Add(checksum, vocabulary.SPDXChecksumValue, graph.TypedLiteral(r.Hash, vocabulary.XSDHexBinary))
	if r.HashAlgorithm != "" {
		p.g.Add(checksum, vocabulary.SPDXAlgorithm, graph.TermOrLiteral(r.HashAlgorithm))
	}
	p.g.Add(distribution, vocabulary.SPDXChecksum, checksum)
}

func stringifyValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

// GraphFromCatalog writes the site-level catalog triples at ref, filling
// missing fields from the site configuration.
func (p *DCATAP) GraphFromCatalog(c *dataset.Catalog, ref rdf.Term) error {
	p.bindNamespaces()
	g := p.g

	g.Add(ref, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCATCatalog})

	defaultLocale := p.cfg.DefaultLocale
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	for _, item := range []struct {
		key       string
		predicate string
		fallback  string
		kind      termKind
	}{
		{"title", vocabulary.DCTTitle, p.cfg.SiteTitle, literalTerm},
		{"description", vocabulary.DCTDescription, p.cfg.SiteDescription, literalTerm},
		{"homepage", vocabulary.FOAFHomepage, p.cfg.SiteURL, refTerm},
		{"language", vocabulary.DCTLanguage, defaultLocale, refOrLiteralTerm},
	} {
		value := item.fallback
		if c != nil {
			if v, ok := c.Value(item.key); ok {
				value = v
			}
		}
		if value == "" {
			continue
		}
		switch item.kind {
		case refTerm:
			g.Add(ref, item.predicate, graph.CleanedRef(value))
		case refOrLiteralTerm:
			g.Add(ref, item.predicate, graph.TermOrLiteral(value))
		default:
			g.Add(ref, item.predicate, graph.Literal(value))
		}
	}

	if modified := p.lastCatalogModification(); modified != "" {
		p.addDateTriple(ref, vocabulary.DCTModified, modified)
	}
	return nil
}
