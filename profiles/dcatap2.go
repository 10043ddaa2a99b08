package profiles

import (
	"encoding/json"
	"strconv"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// DCATAP2 maps between the dataset record and the DCAT-AP v2 vocabulary.
// It wraps a v1 profile and applies the v2 additions on top of its
// output, so every v1 mapping holds unless listed here.
type DCATAP2 struct {
	*Base
	v1 *DCATAP
}

// NewDCATAP2 binds a DCAT-AP v2 profile to the graph.
func NewDCATAP2(g *graph.Graph, opts Options) *DCATAP2 {
	v1 := NewDCATAP(g, opts)
	return &DCATAP2{Base: v1.Base, v1: v1}
}

// Name implements Profile.
func (p *DCATAP2) Name() string { return "euro_dcat_ap_2" }

// ParseDataset runs the v1 extraction, then layers the v2 fields:
// temporal resolution, references, the DCAT temporal encoding, bounding
// box and centroid geometries, spatial resolution and per-distribution
// access services.
func (p *DCATAP2) ParseDataset(d *dataset.Dataset, ref rdf.Term) error {
	if err := p.v1.ParseDataset(d, ref); err != nil {
		return err
	}

	for _, item := range []struct {
		key       string
		predicate string
	}{
		{"temporal_resolution", vocabulary.DCATTemporalResolution},
		{"is_referenced_by", vocabulary.DCTIsReferencedBy},
	} {
		values := p.objectValueList(ref, item.predicate)
		if len(values) == 0 {
			continue
		}
		if encoded, err := json.Marshal(values); err == nil {
			d.Extras.Append(item.key, string(encoded))
		}
	}

	// The v2 temporal encoding replaces whatever the v1 pass stored.
	start, end := p.timeInterval(ref, vocabulary.DCTTemporal, 2)
	if start != "" {
		d.Extras.Upsert("temporal_start", start)
	}
	if end != "" {
		d.Extras.Upsert("temporal_end", end)
	}

	spatial := p.spatial(ref, vocabulary.DCTSpatial)
	if spatial.BBox != "" {
		d.Extras.Append("spatial_bbox", spatial.BBox)
	}
	if spatial.Centroid != "" {
		d.Extras.Append("spatial_centroid", spatial.Centroid)
	}

	if meters := p.objectValueIntList(ref, vocabulary.DCATSpatialResolutionMeters); len(meters) > 0 {
		if encoded, err := json.Marshal(meters); err == nil {
			d.Extras.Append("spatial_resolution_in_meters", string(encoded))
		}
	}

	for _, distribution := range p.distributions(ref) {
		distributionRef := distribution.String()
		for _, r := range d.Resources {
			if r.DistributionRef != distributionRef {
				continue
			}
			p.parseDistributionV2(distribution, r)
		}
	}
	return nil
}

func (p *DCATAP2) parseDistributionV2(distribution rdf.Term, r *dataset.Resource) {
	lastValue := ""
	for _, field := range []struct {
		set       func(string)
		predicate string
	}{
		{func(v string) { r.Availability = v }, vocabulary.DCATAPAvailability},
		{func(v string) { r.CompressFormat = v }, vocabulary.DCATCompressFormat},
		{func(v string) { r.PackageFormat = v }, vocabulary.DCATPackageFormat},
	} {
		value := p.objectValue(distribution, field.predicate)
		if value != "" {
			field.set(value)
		}
		lastValue = value
	}

	var services []*dataset.AccessService
	for _, node := range p.g.Objects(distribution, vocabulary.DCATAccessService) {
		service := &dataset.AccessService{}

		for _, field := range []struct {
			set       func(string)
			predicate string
		}{
			{func(v string) { service.Availability = v }, vocabulary.DCATAPAvailability},
			{func(v string) { service.Title = v }, vocabulary.DCTTitle},
			{func(v string) { service.EndpointDesc = v }, vocabulary.DCATEndpointDescription},
			{func(v string) { service.License = v }, vocabulary.DCTLicense},
			{func(v string) { service.AccessRights = v }, vocabulary.DCTAccessRights},
			{func(v string) { service.Description = v }, vocabulary.DCTDescription},
		} {
			value := p.objectValue(node, field.predicate)
			if value != "" {
				field.set(value)
			}
			lastValue = value
		}

		// Historical quirk kept for output parity: the list fields are
		// only stored when the last simple value above was non-empty.
		if lastValue != "" {
			service.EndpointURL = p.objectValueList(node, vocabulary.DCATEndpointURL)
			service.ServesDataset = p.objectValueList(node, vocabulary.DCATServesDataset)
		}

		service.URI = graph.RefValue(node)
		service.AccessServiceRef = node.String()
		services = append(services, service)
	}

	if encoded, err := dataset.EncodeAccessServices(services); err == nil && encoded != "" {
		r.AccessServices = encoded
	}
}

// GraphFromDataset runs the v1 serialization, then writes the v2 deltas.
func (p *DCATAP2) GraphFromDataset(d *dataset.Dataset, ref rdf.Term) error {
	if err := p.v1.GraphFromDataset(d, ref); err != nil {
		return err
	}

	p.addListTriples(d, ref, []tripleSpec{
		{key: "temporal_resolution", predicate: vocabulary.DCATTemporalResolution, datatype: vocabulary.XSDDuration},
		{key: "is_referenced_by", predicate: vocabulary.DCTIsReferencedBy, kind: refOrLiteralTerm},
	})

	start := d.StringValue("temporal_start")
	end := d.StringValue("temporal_end")
	if start != "" || end != "" {
		extent := graph.NewBlankNode()
		p.g.Add(extent, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCTPeriodOfTime})
		if start != "" {
			p.addDateTriple(extent, vocabulary.DCATStartDate, start)
		}
		if end != "" {
			p.addDateTriple(extent, vocabulary.DCATEndDate, end)
		}
		p.g.Add(ref, vocabulary.DCTTemporal, extent)
	}

	bbox := d.StringValue("spatial_bbox")
	centroid := d.StringValue("spatial_centroid")
	if bbox != "" || centroid != "" {
		spatialRef := p.getOrCreateSpatialRef(d, ref)
		if bbox != "" {
			p.addSpatialValueToGraph(spatialRef, vocabulary.DCATBBox, bbox)
		}
		if centroid != "" {
			p.addSpatialValueToGraph(spatialRef, vocabulary.DCATCentroid, centroid)
		}
	}

	if raw, ok := d.Value("spatial_resolution_in_meters"); ok {
		for _, value := range dataset.ReadListValue(raw) {
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				p.g.Add(ref, vocabulary.DCATSpatialResolutionMeters,
					graph.TypedLiteral(strconv.FormatFloat(f, 'f', -1, 64), vocabulary.XSDDecimal))
			} else {
				p.g.Add(ref, vocabulary.DCATSpatialResolutionMeters, graph.Literal(value))
			}
		}
	}

	for _, r := range d.Resources {
		p.addDistributionV2(d, r)
	}
	return nil
}

func (p *DCATAP2) addDistributionV2(d *dataset.Dataset, r *dataset.Resource) {
	distribution := graph.CleanedRef(p.resourceURI(d, r))

	p.addTriples(r, distribution, []tripleSpec{
		{key: "availability", predicate: vocabulary.DCATAPAvailability, kind: refOrLiteralTerm},
		{key: "compress_format", predicate: vocabulary.DCATCompressFormat, kind: refOrLiteralTerm},
		{key: "package_format", predicate: vocabulary.DCATPackageFormat, kind: refOrLiteralTerm},
	})

	services, err := dataset.DecodeAccessServices(r.AccessServices)
	if err != nil || len(services) == 0 {
		return
	}

	for _, service := range services {
		var node rdf.Term
		if service.URI != "" {
			node = graph.CleanedRef(service.URI)
		} else {
			blank := graph.NewBlankNode()
			node = blank
			// Keep the minted reference so later profiles can attach
			// more properties to the same node.
			service.AccessServiceRef = blank.String()
		}

		p.g.Add(distribution, vocabulary.DCATAccessService, node)
		p.g.Add(node, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCATDataService})

		p.addTriples(service, node, []tripleSpec{
			{key: "availability", predicate: vocabulary.DCATAPAvailability, kind: refOrLiteralTerm},
			{key: "license", predicate: vocabulary.DCTLicense, kind: refOrLiteralTerm},
			{key: "accessRights", predicate: vocabulary.DCTAccessRights, kind: refOrLiteralTerm},
			{key: "title", predicate: vocabulary.DCTTitle},
			{key: "endpoint_description", predicate: vocabulary.DCATEndpointDescription},
			{key: "description", predicate: vocabulary.DCTDescription},
		})

		p.addListTriples(service, node, []tripleSpec{
			{key: "endpoint_url", predicate: vocabulary.DCATEndpointURL, kind: refOrLiteralTerm},
			{key: "serves_dataset", predicate: vocabulary.DCATServesDataset, kind: refOrLiteralTerm},
		})
	}

	if encoded, err := dataset.EncodeAccessServices(services); err == nil {
		r.AccessServices = encoded
	}
}

// GraphFromCatalog writes the catalog node exactly as the v1 profile
// does; v2 adds nothing at the catalog level.
func (p *DCATAP2) GraphFromCatalog(c *dataset.Catalog, ref rdf.Term) error {
	return p.v1.GraphFromCatalog(c, ref)
}
