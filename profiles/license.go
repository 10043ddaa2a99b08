package profiles

import (
	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// licenseLookup indexes the license registry by URL and by title.
type licenseLookup struct {
	uriToID   map[string]string
	titleToID map[string]string
}

func (b *Base) licenseIndex() *licenseLookup {
	if b.licenseMemo != nil {
		return b.licenseMemo
	}
	lookup := &licenseLookup{
		uriToID:   make(map[string]string),
		titleToID: make(map[string]string),
	}
	if b.reg != nil {
		for _, l := range b.reg.Licenses() {
			if l.URL != "" {
				lookup.uriToID[l.URL] = l.ID
			}
			if l.Title != "" {
				lookup.titleToID[l.Title] = l.ID
			}
		}
	}
	b.licenseMemo = lookup
	return lookup
}

// license resolves the dataset's license identifier from its
// distributions. The first distribution whose dct:license matches the
// registry wins; the license node is matched by URI first, then by its
// dct:title. Returns "" when nothing matches.
func (b *Base) license(datasetRef rdf.Term) string {
	lookup := b.licenseIndex()
	for _, distribution := range b.distributions(datasetRef) {
		licenseNode := b.object(distribution, vocabulary.DCTLicense)
		if licenseNode == nil {
			continue
		}
		if id := lookup.uriToID[graph.TermText(licenseNode)]; id != "" {
			return id
		}
		if id := lookup.titleToID[b.objectValue(licenseNode, vocabulary.DCTTitle)]; id != "" {
			return id
		}
	}
	return ""
}
