package profiles

import (
	"strings"

	"github.com/kangmoesss/ckanext-dcat/dataset"
)

// catalogURI is the base the portal mints entity URIs under.
func (b *Base) catalogURI() string {
	return strings.TrimRight(b.cfg.SiteURL, "/")
}

// datasetURI returns the dataset's own URI: the stored uri value, else a
// portal URI minted from the dataset id.
func (b *Base) datasetURI(d *dataset.Dataset) string {
	if uri := d.StringValue("uri"); uri != "" && uri != "None" {
		return uri
	}
	id := d.ID
	if id == "" {
		id = d.Name
	}
	return b.catalogURI() + "/dataset/" + id
}

// resourceURI returns the distribution's URI: the stored uri value, else
// a portal URI minted from the dataset and resource ids. Both serializing
// profiles derive the distribution node from this, so it must be stable
// across passes.
func (b *Base) resourceURI(d *dataset.Dataset, r *dataset.Resource) string {
	if r.URI != "" && r.URI != "None" {
		return r.URI
	}
	id := d.ID
	if id == "" {
		id = d.Name
	}
	return b.catalogURI() + "/dataset/" + id + "/resource/" + r.ID
}

// publisherURIOrgFallback mints a publisher URI from the owning
// organization, or "" when the dataset has none.
func (b *Base) publisherURIOrgFallback(d *dataset.Dataset) string {
	if d.Organization == nil {
		return ""
	}
	id := d.Organization.ID
	if id == "" {
		id = d.Organization.Name
	}
	if id == "" {
		return ""
	}
	return b.catalogURI() + "/organization/" + id
}
