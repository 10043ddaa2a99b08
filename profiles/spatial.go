package profiles

import (
	"encoding/json"

	"github.com/geoknoesis/rdf-go/rdf"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// spatialDetails is the flattened view of a dct:spatial entity.
// Geometries are always GeoJSON; WKT input is converted.
type spatialDetails struct {
	URI      string
	Text     string
	Geom     string
	BBox     string
	Centroid string
}

// spatial flattens the spatial coverage reached through the predicate. A
// reference object sets URI, a literal sets Text, and a typed
// dct:Location node contributes geometries and labels. prefLabel and
// label both override a literal Text, label last.
func (b *Base) spatial(subject rdf.Term, predicate string) spatialDetails {
	var out spatialDetails
	for _, sp := range b.g.Objects(subject, predicate) {
		if graph.IsRef(sp) {
			out.URI = graph.RefValue(sp)
		}
		if graph.IsLiteral(sp) {
			out.Text = graph.TermText(sp)
		}
		if b.g.Has(sp, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCTLocation}) {
			out.Geom = b.parseGeodata(sp, vocabulary.LOCNGeometry, out.Geom)
			out.BBox = b.parseGeodata(sp, vocabulary.DCATBBox, out.BBox)
			out.Centroid = b.parseGeodata(sp, vocabulary.DCATCentroid, out.Centroid)
			for _, label := range b.g.Objects(sp, vocabulary.SKOSPrefLabel) {
				out.Text = graph.TermText(label)
			}
			for _, label := range b.g.Objects(sp, vocabulary.RDFSLabel) {
				out.Text = graph.TermText(label)
			}
		}
	}
	return out
}

// parseGeodata extracts a GeoJSON geometry from the literals under the
// predicate. GeoJSON-typed (or untyped but JSON-parsable) literals win;
// a wktLiteral is converted only when nothing better was found.
func (b *Base) parseGeodata(spatial rdf.Term, predicate, current string) string {
	for _, geometry := range b.g.Objects(spatial, predicate) {
		lit, ok := geometry.(rdf.Literal)
		if !ok {
			continue
		}
		if lit.Datatype.Value == vocabulary.GeoJSONIMT || lit.Datatype.Value == "" {
			if json.Valid([]byte(lit.Lexical)) {
				current = lit.Lexical
			}
		}
		if current == "" && lit.Datatype.Value == vocabulary.GSPWktLiteral {
			if converted, err := wktToGeoJSON(lit.Lexical); err == nil {
				current = converted
			}
		}
	}
	return current
}

func wktToGeoJSON(value string) (string, error) {
	g, err := wkt.Unmarshal(value)
	if err != nil {
		return "", err
	}
	out, err := geojson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func geoJSONToWKT(value string) (string, error) {
	var g geom.T
	if err := geojson.Unmarshal([]byte(value), &g); err != nil {
		return "", err
	}
	return wkt.Marshal(g, wkt.EncodeOptionWithMaxDecimalDigits(4))
}

// addSpatialValueToGraph writes a GeoJSON geometry under the predicate,
// plus a WKT rendering of the same geometry when it converts cleanly.
func (b *Base) addSpatialValueToGraph(spatialRef rdf.Term, predicate, value string) {
	b.g.Add(spatialRef, predicate, graph.TypedLiteral(value, vocabulary.GeoJSONIMT))
	if converted, err := geoJSONToWKT(value); err == nil {
		b.g.Add(spatialRef, predicate, graph.TypedLiteral(converted, vocabulary.GSPWktLiteral))
	}
}

// getOrCreateSpatialRef returns the dataset's existing dct:spatial node,
// or creates one (a reference when spatial_uri is set, a blank node
// otherwise), types it as dct:Location and links it.
func (b *Base) getOrCreateSpatialRef(d *dataset.Dataset, datasetRef rdf.Term) rdf.Term {
	if existing := b.object(datasetRef, vocabulary.DCTSpatial); existing != nil {
		return existing
	}
	var spatialRef rdf.Term
	if uri := d.StringValue("spatial_uri"); uri != "" {
		spatialRef = graph.CleanedRef(uri)
	} else {
		spatialRef = graph.NewBlankNode()
	}
	b.g.Add(spatialRef, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCTLocation})
	b.g.Add(datasetRef, vocabulary.DCTSpatial, spatialRef)
	return spatialRef
}
