package profiles

import (
	"testing"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kangmoesss/ckanext-dcat/config"
	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/licenses"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

var datasetRef = rdf.IRI{Value: "http://example.org/dataset/1"}

func extra(t *testing.T, d *dataset.Dataset, key string) string {
	t.Helper()
	v, ok := d.Extras.Get(key)
	require.True(t, ok, "extra %q missing", key)
	return v
}

func TestDCATAPParseDataset(t *testing.T) {
	g := graph.New()
	g.Add(datasetRef, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCATDataset})
	g.Add(datasetRef, vocabulary.DCTTitle, graph.Literal("Budget 2024"))
	g.Add(datasetRef, vocabulary.DCTDescription, graph.Literal("Yearly budget"))
	g.Add(datasetRef, vocabulary.DCATLandingPage, rdf.IRI{Value: "http://example.org/budget"})
	g.Add(datasetRef, vocabulary.DCTIssued, graph.Literal("2024-01-01"))
	g.Add(datasetRef, vocabulary.DCTAccrualPeriodicity, rdf.IRI{Value: "http://purl.org/cld/freq/annual"})
	g.Add(datasetRef, vocabulary.DCATKeyword, graph.Literal("economy"))
	g.Add(datasetRef, vocabulary.DCATKeyword, graph.Literal("budget"))
	g.Add(datasetRef, vocabulary.DCTLanguage, graph.Literal("en"))
	g.Add(datasetRef, vocabulary.DCTLanguage, graph.Literal("ca"))
	g.Add(datasetRef, vocabulary.DCATTheme, rdf.IRI{Value: "http://example.org/theme/finance"})

	p := NewDCATAP(g, Options{})
	var d dataset.Dataset
	require.NoError(t, p.ParseDataset(&d, datasetRef))

	assert.Equal(t, "Budget 2024", d.Title)
	assert.Equal(t, "Yearly budget", d.Notes)
	assert.Equal(t, "http://example.org/budget", d.URL)
	assert.Equal(t, []dataset.Tag{{Name: "economy"}, {Name: "budget"}}, d.Tags)

	assert.Equal(t, "2024-01-01", extra(t, &d, "issued"))
	assert.Equal(t, "http://purl.org/cld/freq/annual", extra(t, &d, "frequency"))
	assert.Equal(t, `["en","ca"]`, extra(t, &d, "language"))
	assert.Equal(t, `["http://example.org/theme/finance"]`, extra(t, &d, "theme"))
}

func TestDCATAPParseDatasetURIExtra(t *testing.T) {
	t.Run("named dataset", func(t *testing.T) {
		g := graph.New()
		g.Add(datasetRef, vocabulary.DCTTitle, graph.Literal("Budget"))
		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))
		assert.Equal(t, "http://example.org/dataset/1", extra(t, &d, "uri"))
	})

	t.Run("blank dataset records an empty uri", func(t *testing.T) {
		ref := rdf.BlankNode{ID: "d"}
		g := graph.New()
		g.Add(ref, vocabulary.DCTTitle, graph.Literal("Budget"))
		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, ref))
		assert.Empty(t, extra(t, &d, "uri"))
	})
}

func TestDCATAPParseVersionFallback(t *testing.T) {
	t.Run("owl:versionInfo preferred", func(t *testing.T) {
		g := graph.New()
		g.Add(datasetRef, vocabulary.OWLVersionInfo, graph.Literal("2.0"))
		g.Add(datasetRef, vocabulary.ADMSVersion, graph.Literal("1.0"))
		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))
		assert.Equal(t, "2.0", d.Version)
	})

	t.Run("adms:version fallback", func(t *testing.T) {
		g := graph.New()
		g.Add(datasetRef, vocabulary.ADMSVersion, graph.Literal("1.0"))
		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))
		assert.Equal(t, "1.0", d.Version)
	})
}

func TestDCATAPParseCleanTags(t *testing.T) {
	g := graph.New()
	g.Add(datasetRef, vocabulary.DCATKeyword, graph.Literal("Monthly Stats!"))

	cfg := config.Default()
	cfg.CleanTags = true
	var d dataset.Dataset
	require.NoError(t, NewDCATAP(g, Options{Config: cfg}).ParseDataset(&d, datasetRef))

	assert.Equal(t, []dataset.Tag{{Name: "monthly-stats"}}, d.Tags)
}

func TestDCATAPParseContactPoint(t *testing.T) {
	t.Run("dcat contact point", func(t *testing.T) {
		g := graph.New()
		contact := rdf.IRI{Value: "http://example.org/contact"}
		g.Add(datasetRef, vocabulary.DCATContactPoint, contact)
		g.Add(contact, vocabulary.VCardFn, graph.Literal("Data Office"))
		g.Add(contact, vocabulary.VCardHasEmail, rdf.IRI{Value: "mailto:data@example.org"})

		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))

		assert.Equal(t, "http://example.org/contact", extra(t, &d, "contact_uri"))
		assert.Equal(t, "Data Office", extra(t, &d, "contact_name"))
		// The mailto: prefix never reaches the record.
		assert.Equal(t, "data@example.org", extra(t, &d, "contact_email"))
	})

	t.Run("adms contact point fallback", func(t *testing.T) {
		g := graph.New()
		contact := rdf.BlankNode{ID: "c"}
		g.Add(datasetRef, vocabulary.ADMSContactPoint, contact)
		g.Add(contact, vocabulary.VCardFn, graph.Literal("Legacy Office"))

		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))

		assert.Equal(t, "Legacy Office", extra(t, &d, "contact_name"))
		_, ok := d.Extras.Get("contact_uri")
		assert.False(t, ok)
	})
}

func TestDCATAPParsePublisher(t *testing.T) {
	g := graph.New()
	publisher := rdf.IRI{Value: "http://example.org/org/finance"}
	g.Add(datasetRef, vocabulary.DCTPublisher, publisher)
	g.Add(publisher, vocabulary.FOAFName, graph.Literal("Finance Dept"))
	g.Add(publisher, vocabulary.FOAFMbox, graph.Literal("finance@example.org"))
	g.Add(publisher, vocabulary.FOAFHomepage, rdf.IRI{Value: "http://example.org/finance"})
	g.Add(publisher, vocabulary.DCTType, rdf.IRI{Value: "http://purl.org/adms/publishertype/LocalAuthority"})

	var d dataset.Dataset
	require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))

	assert.Equal(t, "http://example.org/org/finance", extra(t, &d, "publisher_uri"))
	assert.Equal(t, "Finance Dept", extra(t, &d, "publisher_name"))
	assert.Equal(t, "finance@example.org", extra(t, &d, "publisher_email"))
	assert.Equal(t, "http://example.org/finance", extra(t, &d, "publisher_url"))
	assert.Equal(t, "http://purl.org/adms/publishertype/LocalAuthority", extra(t, &d, "publisher_type"))
}

func TestDCATAPParseTemporal(t *testing.T) {
	g := graph.New()
	interval := rdf.BlankNode{ID: "t"}
	g.Add(datasetRef, vocabulary.DCTTemporal, interval)
	g.Add(interval, vocabulary.SchemaStartDate, graph.Literal("2024-01-01"))
	g.Add(interval, vocabulary.SchemaEndDate, graph.Literal("2024-12-31"))

	var d dataset.Dataset
	require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))

	assert.Equal(t, "2024-01-01", extra(t, &d, "temporal_start"))
	assert.Equal(t, "2024-12-31", extra(t, &d, "temporal_end"))
}

func TestDCATAPParseSpatial(t *testing.T) {
	g := graph.New()
	location := rdf.IRI{Value: "http://sws.geonames.org/6361390/"}
	g.Add(datasetRef, vocabulary.DCTSpatial, location)
	g.Add(location, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCTLocation})
	g.Add(location, vocabulary.SKOSPrefLabel, graph.Literal("Tarragona"))
	g.Add(location, vocabulary.LOCNGeometry,
		graph.TypedLiteral(`{"type":"Point","coordinates":[1.25,41.12]}`, vocabulary.GeoJSONIMT))

	var d dataset.Dataset
	require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))

	assert.Equal(t, "http://sws.geonames.org/6361390/", extra(t, &d, "spatial_uri"))
	assert.Equal(t, "Tarragona", extra(t, &d, "spatial_text"))
	assert.Equal(t, `{"type":"Point","coordinates":[1.25,41.12]}`, extra(t, &d, "spatial"))
}

func TestDCATAPParseAccessRights(t *testing.T) {
	g := graph.New()
	rights := rdf.BlankNode{ID: "rights"}
	g.Add(datasetRef, vocabulary.DCTAccessRights, rights)
	g.Add(rights, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCTRightsStatement})
	g.Add(rights, vocabulary.RDFSLabel, graph.Literal("public"))

	var d dataset.Dataset
	require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))

	assert.Equal(t, "public", extra(t, &d, "accessRights"))
}

func TestDCATAPParseLicense(t *testing.T) {
	registry := licenses.NewStatic([]licenses.License{
		{ID: "cc-by", URL: "http://creativecommons.org/licenses/by/4.0/", Title: "Creative Commons Attribution"},
		{ID: "odc-pddl", URL: "http://opendatacommons.org/licenses/pddl/", Title: "Open Data Commons PDDL"},
	})

	t.Run("first matching distribution wins", func(t *testing.T) {
		g := graph.New()
		first := rdf.IRI{Value: "http://example.org/dist/1"}
		second := rdf.IRI{Value: "http://example.org/dist/2"}
		g.Add(datasetRef, vocabulary.DCATDistributionProp, first)
		g.Add(datasetRef, vocabulary.DCATDistributionProp, second)
		g.Add(first, vocabulary.DCTLicense, rdf.IRI{Value: "http://example.org/made-up-license"})
		g.Add(second, vocabulary.DCTLicense, rdf.IRI{Value: "http://opendatacommons.org/licenses/pddl/"})

		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{Licenses: registry}).ParseDataset(&d, datasetRef))
		assert.Equal(t, "odc-pddl", d.LicenseID)
	})

	t.Run("title match when the uri is unknown", func(t *testing.T) {
		g := graph.New()
		distribution := rdf.IRI{Value: "http://example.org/dist/1"}
		license := rdf.IRI{Value: "http://example.org/cc-by-mirror"}
		g.Add(datasetRef, vocabulary.DCATDistributionProp, distribution)
		g.Add(distribution, vocabulary.DCTLicense, license)
		g.Add(license, vocabulary.DCTTitle, graph.Literal("Creative Commons Attribution"))

		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{Licenses: registry}).ParseDataset(&d, datasetRef))
		assert.Equal(t, "cc-by", d.LicenseID)
	})

	t.Run("explicitly set license survives", func(t *testing.T) {
		g := graph.New()
		distribution := rdf.IRI{Value: "http://example.org/dist/1"}
		g.Add(datasetRef, vocabulary.DCATDistributionProp, distribution)
		g.Add(distribution, vocabulary.DCTLicense, rdf.IRI{Value: "http://creativecommons.org/licenses/by/4.0/"})

		var d dataset.Dataset
		d.SetLicenseID("")
		require.NoError(t, NewDCATAP(g, Options{Licenses: registry}).ParseDataset(&d, datasetRef))
		assert.Empty(t, d.LicenseID)
	})
}

func TestDCATAPParseDistribution(t *testing.T) {
	g := graph.New()
	distribution := rdf.IRI{Value: "http://example.org/dist/1"}
	g.Add(datasetRef, vocabulary.DCATDistributionProp, distribution)
	g.Add(distribution, vocabulary.DCTTitle, graph.Literal("CSV export"))
	g.Add(distribution, vocabulary.DCATAccessURL, rdf.IRI{Value: "http://example.org/data"})
	g.Add(distribution, vocabulary.DCATDownloadURL, rdf.IRI{Value: "http://example.org/data.csv"})
	g.Add(distribution, vocabulary.DCATMediaType, graph.Literal("text/csv"))
	g.Add(distribution, vocabulary.DCATByteSize, graph.TypedLiteral("1024", vocabulary.XSDDecimal))
	checksum := rdf.BlankNode{ID: "sum"}
	g.Add(distribution, vocabulary.SPDXChecksum, checksum)
	g.Add(checksum, vocabulary.SPDXChecksumValue, graph.Literal("4d4b86d8c"))
	g.Add(checksum, vocabulary.SPDXAlgorithm, rdf.IRI{Value: "http://spdx.org/rdf/terms#checksumAlgorithm_sha1"})

	var d dataset.Dataset
	require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))
	require.Len(t, d.Resources, 1)
	r := d.Resources[0]

	assert.Equal(t, "CSV export", r.Name)
	// The download URL doubles as the plain url field.
	assert.Equal(t, "http://example.org/data.csv", r.URL)
	assert.Equal(t, "http://example.org/data", r.AccessURL)
	assert.Equal(t, "text/csv", r.Mimetype)
	assert.Equal(t, "CSV", r.Format)
	assert.Equal(t, int64(1024), r.Size)
	assert.Equal(t, "4d4b86d8c", r.Hash)
	assert.Equal(t, "http://spdx.org/rdf/terms#checksumAlgorithm_sha1", r.HashAlgorithm)
	assert.Equal(t, "http://example.org/dist/1", r.URI)
	assert.NotEmpty(t, r.DistributionRef)
}

func TestDCATAPParseCompatibility(t *testing.T) {
	g := graph.New()
	g.Add(datasetRef, vocabulary.DCTIssued, graph.Literal("2024-01-01"))
	g.Add(datasetRef, vocabulary.DCTLanguage, graph.Literal("en"))
	g.Add(datasetRef, vocabulary.DCTLanguage, graph.Literal("ca"))
	g.Add(datasetRef, vocabulary.DCTLanguage, graph.Literal("es"))
	publisher := rdf.BlankNode{ID: "p"}
	g.Add(datasetRef, vocabulary.DCTPublisher, publisher)
	g.Add(publisher, vocabulary.FOAFName, graph.Literal("Finance Dept"))

	var d dataset.Dataset
	require.NoError(t, NewDCATAP(g, Options{Compatibility: true}).ParseDataset(&d, datasetRef))

	assert.Equal(t, "2024-01-01", extra(t, &d, "dcat_issued"))
	assert.Equal(t, "Finance Dept", extra(t, &d, "dcat_publisher_name"))
	// The language list collapses to a sorted comma join.
	assert.Equal(t, "ca,en,es", extra(t, &d, "language"))

	_, ok := d.Extras.Get("issued")
	assert.False(t, ok)
}

func TestDCATAPParseSourceCatalog(t *testing.T) {
	root := rdf.IRI{Value: "http://example.org/catalog"}
	sub1 := rdf.IRI{Value: "http://example.org/catalog/a"}
	sub2 := rdf.IRI{Value: "http://example.org/catalog/b"}

	cfg := config.Default()
	cfg.ExposeSubcatalogs = true

	t.Run("single sub-catalog extracted", func(t *testing.T) {
		g := graph.New()
		g.Add(root, vocabulary.DCTHasPart, sub1)
		g.Add(root, vocabulary.DCATDatasetProp, datasetRef)
		g.Add(sub1, vocabulary.DCATDatasetProp, datasetRef)
		g.Add(sub1, vocabulary.DCTTitle, graph.Literal("Harvested portal"))
		g.Add(sub1, vocabulary.FOAFHomepage, rdf.IRI{Value: "http://harvested.example.org"})
		publisher := rdf.IRI{Value: "http://harvested.example.org/org"}
		g.Add(sub1, vocabulary.DCTPublisher, publisher)
		g.Add(publisher, vocabulary.FOAFName, graph.Literal("Harvested Org"))

		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).ParseDataset(&d, datasetRef))

		assert.Equal(t, "Harvested portal", extra(t, &d, "source_catalog_title"))
		assert.Equal(t, "http://harvested.example.org", extra(t, &d, "source_catalog_homepage"))
		assert.JSONEq(t,
			`{"uri":"http://harvested.example.org/org","name":"Harvested Org","email":"","url":"","type":""}`,
			extra(t, &d, "source_catalog_publisher"))
	})

	t.Run("two sub-catalogs are fatal", func(t *testing.T) {
		g := graph.New()
		g.Add(root, vocabulary.DCTHasPart, sub1)
		g.Add(root, vocabulary.DCTHasPart, sub2)
		g.Add(sub1, vocabulary.DCATDatasetProp, datasetRef)
		g.Add(sub2, vocabulary.DCATDatasetProp, datasetRef)

		var d dataset.Dataset
		err := NewDCATAP(g, Options{Config: cfg}).ParseDataset(&d, datasetRef)
		assert.ErrorIs(t, err, ErrAmbiguousCatalog)
	})

	t.Run("disabled option skips extraction", func(t *testing.T) {
		g := graph.New()
		g.Add(root, vocabulary.DCATDatasetProp, datasetRef)
		g.Add(root, vocabulary.DCTTitle, graph.Literal("Root"))

		var d dataset.Dataset
		require.NoError(t, NewDCATAP(g, Options{}).ParseDataset(&d, datasetRef))
		_, ok := d.Extras.Get("source_catalog_title")
		assert.False(t, ok)
	})
}

func TestDCATAPGraphFromDatasetBasic(t *testing.T) {
	g := graph.New()
	p := NewDCATAP(g, Options{})
	d := &dataset.Dataset{
		ID:    "abc-123",
		Title: "Budget 2024",
		Notes: "Yearly budget",
		URL:   "http://example.org/budget",
		Tags:  []dataset.Tag{{Name: "economy"}, {Name: "budget"}},
	}
	require.NoError(t, p.GraphFromDataset(d, datasetRef))

	assert.True(t, g.Has(datasetRef, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCATDataset}))
	assert.Equal(t, graph.Literal("Budget 2024"), g.FirstObject(datasetRef, vocabulary.DCTTitle))
	assert.Equal(t, rdf.IRI{Value: "http://example.org/budget"}, g.FirstObject(datasetRef, vocabulary.DCATLandingPage))
	assert.Len(t, g.Objects(datasetRef, vocabulary.DCATKeyword), 2)
	// The id backs a missing identifier extra.
	assert.Equal(t, graph.Literal("abc-123"), g.FirstObject(datasetRef, vocabulary.DCTIdentifier))
}

func TestDCATAPGraphFromDatasetIdentifierFallback(t *testing.T) {
	g := graph.New()
	d := &dataset.Dataset{ID: "abc-123"}
	d.Extras.Append("guid", "urn:guid:42")
	require.NoError(t, NewDCATAP(g, Options{}).GraphFromDataset(d, datasetRef))

	assert.Equal(t, graph.Literal("urn:guid:42"), g.FirstObject(datasetRef, vocabulary.DCTIdentifier))
}

func TestDCATAPGraphFromDatasetDates(t *testing.T) {
	g := graph.New()
	d := &dataset.Dataset{MetadataCreated: "2024-01-01", MetadataModified: "2024-06-01T10:00:00"}
	require.NoError(t, NewDCATAP(g, Options{}).GraphFromDataset(d, datasetRef))

	issued, ok := g.FirstObject(datasetRef, vocabulary.DCTIssued).(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, "2024-01-01T00:00:00", issued.Lexical)
	assert.Equal(t, vocabulary.XSDDateTime, issued.Datatype.Value)
}

func TestDCATAPGraphFromDatasetContactPoint(t *testing.T) {
	t.Run("maintainer fallback with mailto", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{Maintainer: "Joe Admin", MaintainerEmail: "joe@example.org"}
		require.NoError(t, NewDCATAP(g, Options{}).GraphFromDataset(d, datasetRef))

		contact := g.FirstObject(datasetRef, vocabulary.DCATContactPoint)
		require.NotNil(t, contact)
		assert.True(t, graph.IsBlank(contact))
		assert.True(t, g.Has(contact, vocabulary.RDFType, rdf.IRI{Value: vocabulary.VCardOrganization}))
		assert.Equal(t, graph.Literal("Joe Admin"), g.FirstObject(contact, vocabulary.VCardFn))
		assert.Equal(t, rdf.IRI{Value: "mailto:joe@example.org"}, g.FirstObject(contact, vocabulary.VCardHasEmail))
	})

	t.Run("contact_uri names the node", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{}
		d.Extras.Append("contact_uri", "http://example.org/contact")
		d.Extras.Append("contact_name", "Data Office")
		require.NoError(t, NewDCATAP(g, Options{}).GraphFromDataset(d, datasetRef))

		contact := g.FirstObject(datasetRef, vocabulary.DCATContactPoint)
		assert.Equal(t, rdf.IRI{Value: "http://example.org/contact"}, contact)
	})

	t.Run("no contact data writes nothing", func(t *testing.T) {
		g := graph.New()
		require.NoError(t, NewDCATAP(g, Options{}).GraphFromDataset(&dataset.Dataset{}, datasetRef))
		assert.Nil(t, g.FirstObject(datasetRef, vocabulary.DCATContactPoint))
	})
}

func TestDCATAPGraphFromDatasetPublisher(t *testing.T) {
	cfg := config.Default()
	cfg.SiteURL = "http://portal.example.org"

	t.Run("publisher_uri names the node, name stays empty", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{Organization: &dataset.Organization{ID: "org-1", Title: "Finance Dept"}}
		d.Extras.Append("publisher_uri", "http://example.org/org/finance")
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		publisher := g.FirstObject(datasetRef, vocabulary.DCTPublisher)
		assert.Equal(t, rdf.IRI{Value: "http://example.org/org/finance"}, publisher)
		assert.True(t, g.Has(publisher, vocabulary.RDFType, rdf.IRI{Value: vocabulary.FOAFOrganization}))
		// Organization values do not mix in when the node has its own URI.
		assert.Equal(t, graph.Literal(""), g.FirstObject(publisher, vocabulary.FOAFName))
	})

	t.Run("organization stands in without uri or name", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{Organization: &dataset.Organization{ID: "org-1", Title: "Finance Dept"}}
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		publisher := g.FirstObject(datasetRef, vocabulary.DCTPublisher)
		assert.Equal(t, rdf.IRI{Value: "http://portal.example.org/organization/org-1"}, publisher)
		assert.Equal(t, graph.Literal("Finance Dept"), g.FirstObject(publisher, vocabulary.FOAFName))
	})

	t.Run("name alone yields a blank node", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{}
		d.Extras.Append("publisher_name", "Finance Dept")
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		publisher := g.FirstObject(datasetRef, vocabulary.DCTPublisher)
		assert.True(t, graph.IsBlank(publisher))
		assert.Equal(t, graph.Literal("Finance Dept"), g.FirstObject(publisher, vocabulary.FOAFName))
	})

	t.Run("nothing to publish", func(t *testing.T) {
		g := graph.New()
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(&dataset.Dataset{}, datasetRef))
		assert.Nil(t, g.FirstObject(datasetRef, vocabulary.DCTPublisher))
	})
}

func TestDCATAPGraphFromDatasetTemporal(t *testing.T) {
	g := graph.New()
	d := &dataset.Dataset{}
	d.Extras.Append("temporal_start", "2024-01-01")
	require.NoError(t, NewDCATAP(g, Options{}).GraphFromDataset(d, datasetRef))

	extent := g.FirstObject(datasetRef, vocabulary.DCTTemporal)
	require.NotNil(t, extent)
	assert.True(t, g.Has(extent, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCTPeriodOfTime}))
	start, ok := g.FirstObject(extent, vocabulary.SchemaStartDate).(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, "2024-01-01T00:00:00", start.Lexical)
	assert.Nil(t, g.FirstObject(extent, vocabulary.SchemaEndDate))
}

func TestDCATAPGraphFromDatasetSpatial(t *testing.T) {
	g := graph.New()
	d := &dataset.Dataset{}
	d.Extras.Append("spatial_uri", "http://sws.geonames.org/6361390/")
	d.Extras.Append("spatial_text", "Tarragona")
	d.Extras.Append("spatial", `{"type":"Point","coordinates":[1.25,41.12]}`)
	require.NoError(t, NewDCATAP(g, Options{}).GraphFromDataset(d, datasetRef))

	spatial := g.FirstObject(datasetRef, vocabulary.DCTSpatial)
	assert.Equal(t, rdf.IRI{Value: "http://sws.geonames.org/6361390/"}, spatial)
	assert.True(t, g.Has(spatial, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCTLocation}))
	assert.Equal(t, graph.Literal("Tarragona"), g.FirstObject(spatial, vocabulary.SKOSPrefLabel))

	// The geometry is written as GeoJSON and as its WKT rendering.
	geometries := g.Objects(spatial, vocabulary.LOCNGeometry)
	require.Len(t, geometries, 2)
	geo, ok := geometries[0].(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, vocabulary.GeoJSONIMT, geo.Datatype.Value)
	wktLit, ok := geometries[1].(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, vocabulary.GSPWktLiteral, wktLit.Datatype.Value)
	assert.Contains(t, wktLit.Lexical, "POINT")
}

func TestDCATAPGraphFromDatasetLicenseFallback(t *testing.T) {
	cfg := config.Default()
	cfg.DistributionLicenseFallback = true
	cfg.SiteURL = "http://portal.example.org"

	t.Run("license-less distribution gets the dataset license", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{
			ID:         "abc",
			LicenseURL: "http://creativecommons.org/licenses/by/4.0/",
			Resources:  []*dataset.Resource{{ID: "r1", Name: "export"}},
		}
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		distribution := g.FirstObject(datasetRef, vocabulary.DCATDistributionProp)
		require.NotNil(t, distribution)
		assert.Equal(t, rdf.IRI{Value: "http://creativecommons.org/licenses/by/4.0/"},
			g.FirstObject(distribution, vocabulary.DCTLicense))
	})

	t.Run("own license wins over the fallback", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{
			ID:         "abc",
			LicenseURL: "http://creativecommons.org/licenses/by/4.0/",
			Resources:  []*dataset.Resource{{ID: "r1", License: "http://example.org/custom"}},
		}
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		distribution := g.FirstObject(datasetRef, vocabulary.DCATDistributionProp)
		assert.Equal(t, rdf.IRI{Value: "http://example.org/custom"},
			g.FirstObject(distribution, vocabulary.DCTLicense))
	})

	t.Run("non-reference license is not stamped", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{
			ID:        "abc",
			LicenseID: "cc-by",
			Resources: []*dataset.Resource{{ID: "r1"}},
		}
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		distribution := g.FirstObject(datasetRef, vocabulary.DCATDistributionProp)
		assert.Nil(t, g.FirstObject(distribution, vocabulary.DCTLicense))
	})
}

func TestDCATAPGraphFromDatasetFormat(t *testing.T) {
	cfg := config.Default()
	cfg.SiteURL = "http://portal.example.org"

	run := func(t *testing.T, r *dataset.Resource) (rdf.Term, *graph.Graph) {
		t.Helper()
		g := graph.New()
		d := &dataset.Dataset{ID: "abc", Resources: []*dataset.Resource{r}}
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))
		distribution := g.FirstObject(datasetRef, vocabulary.DCATDistributionProp)
		require.NotNil(t, distribution)
		return distribution, g
	}

	t.Run("format and mimetype both present", func(t *testing.T) {
		distribution, g := run(t, &dataset.Resource{ID: "r1", Format: "CSV", Mimetype: "text/csv"})
		assert.Equal(t, graph.Literal("text/csv"), g.FirstObject(distribution, vocabulary.DCATMediaType))
		assert.Equal(t, graph.Literal("CSV"), g.FirstObject(distribution, vocabulary.DCTFormat))
	})

	t.Run("slash-bearing format moves to media type", func(t *testing.T) {
		distribution, g := run(t, &dataset.Resource{ID: "r1", Format: "text/csv"})
		assert.Equal(t, graph.Literal("text/csv"), g.FirstObject(distribution, vocabulary.DCATMediaType))
		assert.Nil(t, g.FirstObject(distribution, vocabulary.DCTFormat))
	})

	t.Run("plain label stays a format", func(t *testing.T) {
		distribution, g := run(t, &dataset.Resource{ID: "r1", Format: "CSV"})
		assert.Nil(t, g.FirstObject(distribution, vocabulary.DCATMediaType))
		assert.Equal(t, graph.Literal("CSV"), g.FirstObject(distribution, vocabulary.DCTFormat))
	})

	t.Run("iana registry uri moves to media type", func(t *testing.T) {
		uri := "https://www.iana.org/assignments/media-types/text/csv"
		distribution, g := run(t, &dataset.Resource{ID: "r1", Format: uri})
		assert.Equal(t, rdf.IRI{Value: uri}, g.FirstObject(distribution, vocabulary.DCATMediaType))
		assert.Nil(t, g.FirstObject(distribution, vocabulary.DCTFormat))
	})
}

func TestDCATAPGraphFromDatasetAccessURLFallback(t *testing.T) {
	cfg := config.Default()
	cfg.SiteURL = "http://portal.example.org"

	t.Run("url stands in for a missing access url", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{ID: "abc", Resources: []*dataset.Resource{{ID: "r1", URL: "http://example.org/data"}}}
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		distribution := g.FirstObject(datasetRef, vocabulary.DCATDistributionProp)
		assert.Equal(t, rdf.IRI{Value: "http://example.org/data"},
			g.FirstObject(distribution, vocabulary.DCATAccessURL))
	})

	t.Run("url matching the download url is not repeated", func(t *testing.T) {
		g := graph.New()
		r := &dataset.Resource{ID: "r1", URL: "http://example.org/data.csv", DownloadURL: "http://example.org/data.csv"}
		d := &dataset.Dataset{ID: "abc", Resources: []*dataset.Resource{r}}
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		distribution := g.FirstObject(datasetRef, vocabulary.DCATDistributionProp)
		assert.Nil(t, g.FirstObject(distribution, vocabulary.DCATAccessURL))
		assert.Equal(t, rdf.IRI{Value: "http://example.org/data.csv"},
			g.FirstObject(distribution, vocabulary.DCATDownloadURL))
	})
}

func TestDCATAPGraphFromDatasetByteSize(t *testing.T) {
	cfg := config.Default()
	cfg.SiteURL = "http://portal.example.org"

	t.Run("numeric size is typed", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{ID: "abc", Resources: []*dataset.Resource{{ID: "r1", SizeRaw: "1024"}}}
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		distribution := g.FirstObject(datasetRef, vocabulary.DCATDistributionProp)
		assert.Equal(t, graph.TypedLiteral("1024", vocabulary.XSDDecimal),
			g.FirstObject(distribution, vocabulary.DCATByteSize))
	})

	t.Run("unparseable size kept raw", func(t *testing.T) {
		g := graph.New()
		d := &dataset.Dataset{ID: "abc", Resources: []*dataset.Resource{{ID: "r1", SizeRaw: "huge"}}}
		require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

		distribution := g.FirstObject(datasetRef, vocabulary.DCATDistributionProp)
		assert.Equal(t, graph.Literal("huge"), g.FirstObject(distribution, vocabulary.DCATByteSize))
	})
}

func TestDCATAPGraphFromDatasetChecksum(t *testing.T) {
	cfg := config.Default()
	cfg.SiteURL = "http://portal.example.org"
	g := graph.New()
	r := &dataset.Resource{ID: "r1", Hash: "4d4b86d8c", HashAlgorithm: "http://spdx.org/rdf/terms#checksumAlgorithm_sha1"}
	d := &dataset.Dataset{ID: "abc", Resources: []*dataset.Resource{r}}
	require.NoError(t, NewDCATAP(g, Options{Config: cfg}).GraphFromDataset(d, datasetRef))

	distribution := g.FirstObject(datasetRef, vocabulary.DCATDistributionProp)
	checksum := g.FirstObject(distribution, vocabulary.SPDXChecksum)
	require.NotNil(t, checksum)
	assert.True(t, g.Has(checksum, vocabulary.RDFType, rdf.IRI{Value: vocabulary.SPDXChecksumClass}))
	assert.Equal(t, graph.TypedLiteral("4d4b86d8c", vocabulary.XSDHexBinary),
		g.FirstObject(checksum, vocabulary.SPDXChecksumValue))
	assert.Equal(t, rdf.IRI{Value: "http://spdx.org/rdf/terms#checksumAlgorithm_sha1"},
		g.FirstObject(checksum, vocabulary.SPDXAlgorithm))
}

func TestDCATAPResourceURIStability(t *testing.T) {
	cfg := config.Default()
	cfg.SiteURL = "http://portal.example.org"
	g := graph.New()
	p := NewDCATAP(g, Options{Config: cfg})
	d := &dataset.Dataset{ID: "abc", Resources: []*dataset.Resource{{ID: "r1"}}}

	require.NoError(t, p.GraphFromDataset(d, datasetRef))
	assert.Equal(t, rdf.IRI{Value: "http://portal.example.org/dataset/abc/resource/r1"},
		g.FirstObject(datasetRef, vocabulary.DCATDistributionProp))
}

type staticSearch struct{ modified string }

func (s staticSearch) LastMetadataModified() string { return s.modified }

func TestDCATAPGraphFromCatalog(t *testing.T) {
	cfg := config.Default()
	cfg.SiteTitle = "Open Data Portal"
	cfg.SiteDescription = "Datasets of the portal"
	cfg.SiteURL = "http://portal.example.org"
	ref := rdf.IRI{Value: "http://portal.example.org"}

	t.Run("configuration fills a nil catalog", func(t *testing.T) {
		g := graph.New()
		p := NewDCATAP(g, Options{Config: cfg, Search: staticSearch{modified: "2024-06-01"}})
		require.NoError(t, p.GraphFromCatalog(nil, ref))

		assert.True(t, g.Has(ref, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCATCatalog}))
		assert.Equal(t, graph.Literal("Open Data Portal"), g.FirstObject(ref, vocabulary.DCTTitle))
		assert.Equal(t, rdf.IRI{Value: "http://portal.example.org"}, g.FirstObject(ref, vocabulary.FOAFHomepage))
		assert.Equal(t, graph.Literal("en"), g.FirstObject(ref, vocabulary.DCTLanguage))

		modified, ok := g.FirstObject(ref, vocabulary.DCTModified).(rdf.Literal)
		require.True(t, ok)
		assert.Equal(t, "2024-06-01T00:00:00", modified.Lexical)
	})

	t.Run("explicit catalog fields win", func(t *testing.T) {
		g := graph.New()
		p := NewDCATAP(g, Options{Config: cfg})
		c := &dataset.Catalog{Title: "Harvest target", Language: "ca"}
		require.NoError(t, p.GraphFromCatalog(c, ref))

		assert.Equal(t, graph.Literal("Harvest target"), g.FirstObject(ref, vocabulary.DCTTitle))
		assert.Equal(t, graph.Literal("ca"), g.FirstObject(ref, vocabulary.DCTLanguage))
		assert.Nil(t, g.FirstObject(ref, vocabulary.DCTModified))
	})
}
