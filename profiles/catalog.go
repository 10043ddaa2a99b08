package profiles

import (
	"encoding/json"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// sourceCatalog resolves the catalog a dataset was harvested from: the
// non-root catalog linking it through dcat:dataset, else the root
// catalog. Returns nil when sub-catalog exposure is disabled, and
// ErrAmbiguousCatalog when more than one non-root catalog claims the
// dataset.
func (b *Base) sourceCatalog(datasetRef rdf.Term) (rdf.Term, error) {
	if !b.cfg.ExposeSubcatalogs {
		return nil, nil
	}
	root := b.rootCatalogRef()
	var nonRoot []rdf.Term
	for _, catalog := range b.g.Subjects(vocabulary.DCATDatasetProp, datasetRef) {
		if root != nil && catalog == root {
			continue
		}
		nonRoot = append(nonRoot, catalog)
	}
	if len(nonRoot) > 1 {
		return nil, ErrAmbiguousCatalog
	}
	if len(nonRoot) == 1 {
		return nonRoot[0], nil
	}
	return root, nil
}

// rootCatalogRef returns the root catalog node: the first subject of a
// dct:hasPart statement, else the first dcat:Catalog-typed subject, else
// nil.
func (b *Base) rootCatalogRef() rdf.Term {
	roots := b.g.Subjects(vocabulary.DCTHasPart, nil)
	if len(roots) == 0 {
		roots = b.g.Subjects(vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCATCatalog})
	}
	if len(roots) == 0 {
		return nil
	}
	return roots[0]
}

// extractCatalogExtras flattens the source catalog's descriptive fields
// into source_catalog_* extras. The publisher is stored as a JSON blob.
func (b *Base) extractCatalogExtras(d *dataset.Dataset, catalogRef rdf.Term) {
	sources := []struct {
		key       string
		predicate string
	}{
		{"source_catalog_title", vocabulary.DCTTitle},
		{"source_catalog_description", vocabulary.DCTDescription},
		{"source_catalog_homepage", vocabulary.FOAFHomepage},
		{"source_catalog_language", vocabulary.DCTLanguage},
		{"source_catalog_modified", vocabulary.DCTModified},
	}
	for _, source := range sources {
		if value := b.objectValue(catalogRef, source.predicate); value != "" {
			d.Extras.Append(source.key, value)
		}
	}

	publisher := b.publisher(catalogRef, vocabulary.DCTPublisher)
	encoded, err := json.Marshal(struct {
		URI   string `json:"uri"`
		Name  string `json:"name"`
		Email string `json:"email"`
		URL   string `json:"url"`
		Type  string `json:"type"`
	}{publisher.URI, publisher.Name, publisher.Email, publisher.URL, publisher.Type})
	if err == nil {
		d.Extras.Append("source_catalog_publisher", string(encoded))
	}
}

// lastCatalogModification returns the most recent metadata_modified value
// across the portal, or "" when no search client is bound.
func (b *Base) lastCatalogModification() string {
	if b.search == nil {
		return ""
	}
	return b.search.LastMetadataModified()
}
