package profiles

import (
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/formats"
	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// distributionFormat extracts the media type and format label of a
// distribution.
//
// The media type is taken from, in order: dcat:mediaType; a dct:format
// literal containing a slash; the rdf:value of a dct:IMT-typed format
// node; a dct:format reference that points into the IANA media-type
// registry. Whatever dct:format expresses that is not claimed as media
// type becomes the label.
//
// With normalize set, a label or media type found in the canonical
// format table is replaced by the table's short label.
func (b *Base) distributionFormat(distribution rdf.Term, normalize bool) (string, string) {
	imt := b.objectValue(distribution, vocabulary.DCATMediaType)
	label := ""

	format := b.object(distribution, vocabulary.DCTFormat)
	switch {
	case graph.IsLiteral(format):
		text := graph.TermText(format)
		if imt == "" && strings.Contains(text, "/") {
			imt = text
		} else {
			label = text
		}
	case format != nil:
		if t := b.object(format, vocabulary.RDFType); t != nil && graph.RefValue(t) == vocabulary.DCTIMT {
			if imt == "" {
				imt = b.objectValue(format, vocabulary.RDFValue)
			}
			label = b.objectValue(format, vocabulary.RDFSLabel)
		} else if graph.IsRef(format) {
			formatURI := graph.RefValue(format)
			if strings.Contains(formatURI, "iana.org/assignments/media-types") && imt == "" {
				imt = formatURI
			} else {
				label = formatURI
			}
		}
	}

	if (imt != "" || label != "") && normalize {
		if f, ok := formats.Lookup(imt); ok {
			label = f.Name
		} else if f, ok := formats.Lookup(label); ok {
			label = f.Name
		}
	}

	return imt, label
}
