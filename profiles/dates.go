package profiles

import (
	"time"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// dateLayouts are tried in order. Partial dates expand to the earliest
// instant they cover ("1904" becomes 1904-01-01T00:00:00).
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// parseDate normalizes a free-form date string to ISO 8601. The second
// return is false when no layout matches.
func parseDate(value string) (string, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if layout == time.RFC3339 {
			return t.Format("2006-01-02T15:04:05-07:00"), true
		}
		return t.Format("2006-01-02T15:04:05"), true
	}
	return "", false
}

// addDateTriple writes value as an xsd:dateTime literal after
// normalization, falling back to the raw string when it does not parse.
// A cleared date datatype (the schema.org profile) produces plain
// literals either way.
func (b *Base) addDateTriple(subject rdf.Term, predicate, value string) {
	if value == "" {
		return
	}
	iso, ok := parseDate(value)
	if !ok {
		b.g.Add(subject, predicate, graph.Literal(value))
		return
	}
	if b.dateDatatype == "" {
		b.g.Add(subject, predicate, graph.Literal(iso))
		return
	}
	b.g.Add(subject, predicate, graph.TypedLiteral(iso, b.dateDatatype))
}

// timeInterval extracts the start and end date of a temporal extent.
//
// Version 1 checks schema.org startDate/endDate first, then the W3C Time
// encoding. Version 2 checks dcat:startDate/endDate, then W3C Time, then
// schema.org. Either value may be empty.
func (b *Base) timeInterval(subject rdf.Term, predicate string, dcatAPVersion int) (string, string) {
	if dcatAPVersion == 2 {
		if start, end := b.readIntervalPair(subject, predicate, vocabulary.DCATStartDate, vocabulary.DCATEndDate); start != "" || end != "" {
			return start, end
		}
		if start, end := b.readIntervalTime(subject, predicate); start != "" || end != "" {
			return start, end
		}
		return b.readIntervalPair(subject, predicate, vocabulary.SchemaStartDate, vocabulary.SchemaEndDate)
	}
	if start, end := b.readIntervalPair(subject, predicate, vocabulary.SchemaStartDate, vocabulary.SchemaEndDate); start != "" || end != "" {
		return start, end
	}
	return b.readIntervalTime(subject, predicate)
}

func (b *Base) readIntervalPair(subject rdf.Term, predicate, startPred, endPred string) (string, string) {
	for _, interval := range b.g.Objects(subject, predicate) {
		start := b.objectValue(interval, startPred)
		end := b.objectValue(interval, endPred)
		if start != "" || end != "" {
			return start, end
		}
	}
	return "", ""
}

// readIntervalTime reads the W3C Time shape: the interval node points at
// instant nodes through hasBeginning/hasEnd, each carrying one of the
// inXSD* properties.
func (b *Base) readIntervalTime(subject rdf.Term, predicate string) (string, string) {
	instantPredicates := []string{
		vocabulary.TimeInXSDDateTimeStamp,
		vocabulary.TimeInXSDDateTime,
		vocabulary.TimeInXSDDate,
	}
	for _, interval := range b.g.Objects(subject, predicate) {
		start, end := "", ""
		if node := b.object(interval, vocabulary.TimeHasBeginning); node != nil {
			start = b.objectValueMulti(node, instantPredicates)
		}
		if node := b.object(interval, vocabulary.TimeHasEnd); node != nil {
			end = b.objectValueMulti(node, instantPredicates)
		}
		if start != "" || end != "" {
			return start, end
		}
	}
	return "", ""
}
