package profiles

import (
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// agentDetails is the flattened view of a publisher or contact entity.
type agentDetails struct {
	URI   string
	Name  string
	Email string
	URL   string
	Type  string
}

// publisher flattens a foaf:Agent reached through the predicate. With
// several agents present every field is overwritten in turn, so the last
// agent in statement order wins field by field.
func (b *Base) publisher(subject rdf.Term, predicate string) agentDetails {
	var out agentDetails
	for _, agent := range b.g.Objects(subject, predicate) {
		out.URI = graph.RefValue(agent)
		out.Name = b.objectValue(agent, vocabulary.FOAFName)
		out.Email = b.objectValue(agent, vocabulary.FOAFMbox)
		out.URL = b.objectValue(agent, vocabulary.FOAFHomepage)
		out.Type = b.objectValue(agent, vocabulary.DCTType)
	}
	return out
}

// contactDetails flattens a vCard entity reached through the predicate.
// Same overwrite behavior as publisher when several entities are present.
func (b *Base) contactDetails(subject rdf.Term, predicate string) agentDetails {
	var out agentDetails
	for _, agent := range b.g.Objects(subject, predicate) {
		out.URI = graph.RefValue(agent)
		out.Name = b.vcardPropertyValue(agent, vocabulary.VCardHasFN, vocabulary.VCardFn)
		out.Email = withoutMailto(b.vcardPropertyValue(agent, vocabulary.VCardHasEmail, ""))
	}
	return out
}

// withMailto prefixes a bare address with mailto:, leaving already
// prefixed addresses untouched.
func withMailto(addr string) string {
	if addr == "" {
		return addr
	}
	return vocabulary.MailtoPrefix + withoutMailto(addr)
}

// withoutMailto strips any mailto: prefix.
func withoutMailto(addr string) string {
	if addr == "" {
		return addr
	}
	return strings.ReplaceAll(addr, vocabulary.MailtoPrefix, "")
}
