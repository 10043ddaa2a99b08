package dataset

// Extra is one entry of the record's overflow area.
type Extra struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Extras is an ordered association list. Keys are unique per logical field;
// insertion order is preserved across a parse so serializations stay
// stable.
type Extras []Extra

// Get returns the value for key and whether it was present.
func (e Extras) Get(key string) (string, bool) {
	for _, extra := range e {
		if extra.Key == key {
			return extra.Value, true
		}
	}
	return "", false
}

// Append adds a new entry without checking for duplicates. Use Upsert when
// a later pass may have written the key already.
func (e *Extras) Append(key, value string) {
	*e = append(*e, Extra{Key: key, Value: value})
}

// Upsert updates the entry for key in place, or appends it.
func (e *Extras) Upsert(key, value string) {
	for i := range *e {
		if (*e)[i].Key == key {
			(*e)[i].Value = value
			return
		}
	}
	e.Append(key, value)
}

// Tag is a dataset keyword.
type Tag struct {
	Name string `json:"name"`
}

// Organization is the owning organization of a dataset.
type Organization struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Group is a CKAN group the dataset belongs to.
type Group struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

// Dataset is the internal dataset record.
type Dataset struct {
	ID               string        `json:"id,omitempty"`
	Name             string        `json:"name,omitempty"`
	Title            string        `json:"title,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	URL              string        `json:"url,omitempty"`
	Private          string        `json:"private,omitempty"`
	Version          string        `json:"version,omitempty"`
	LicenseID        string        `json:"license_id,omitempty"`
	LicenseURL       string        `json:"license_url,omitempty"`
	LicenseTitle     string        `json:"license_title,omitempty"`
	Maintainer       string        `json:"maintainer,omitempty"`
	MaintainerEmail  string        `json:"maintainer_email,omitempty"`
	Author           string        `json:"author,omitempty"`
	AuthorEmail      string        `json:"author_email,omitempty"`
	MetadataCreated  string        `json:"metadata_created,omitempty"`
	MetadataModified string        `json:"metadata_modified,omitempty"`
	Tags             []Tag         `json:"tags,omitempty"`
	Groups           []Group       `json:"groups,omitempty"`
	Organization     *Organization `json:"organization,omitempty"`
	Resources        []*Resource   `json:"resources"`
	Extras           Extras        `json:"extras"`

	// licenseSet distinguishes "license_id set to empty by a caller" from
	// "never set", mirroring the dict membership check upstream.
	licenseSet bool
}

// SetLicenseID records a license identifier, marking the field as
// explicitly set so a later parse pass will not overwrite it.
func (d *Dataset) SetLicenseID(id string) {
	d.LicenseID = id
	d.licenseSet = true
}

// HasLicenseID reports whether license_id has been explicitly set.
func (d *Dataset) HasLicenseID() bool {
	return d.licenseSet || d.LicenseID != ""
}

// Value returns the record value for key: the top-level slot if the key is
// a known field with a non-empty value, else the extras entry under key or
// "dcat_"+key. The second return reports whether anything was found.
func (d *Dataset) Value(key string) (any, bool) {
	switch key {
	case "id":
		if d.ID != "" {
			return d.ID, true
		}
	case "name":
		if d.Name != "" {
			return d.Name, true
		}
	case "title":
		if d.Title != "" {
			return d.Title, true
		}
	case "notes":
		if d.Notes != "" {
			return d.Notes, true
		}
	case "url":
		if d.URL != "" {
			return d.URL, true
		}
	case "private":
		if d.Private != "" {
			return d.Private, true
		}
	case "version":
		if d.Version != "" {
			return d.Version, true
		}
	case "license_id":
		if d.LicenseID != "" {
			return d.LicenseID, true
		}
	case "license_url":
		if d.LicenseURL != "" {
			return d.LicenseURL, true
		}
	case "license_title":
		if d.LicenseTitle != "" {
			return d.LicenseTitle, true
		}
	case "maintainer":
		if d.Maintainer != "" {
			return d.Maintainer, true
		}
	case "maintainer_email":
		if d.MaintainerEmail != "" {
			return d.MaintainerEmail, true
		}
	case "author":
		if d.Author != "" {
			return d.Author, true
		}
	case "author_email":
		if d.AuthorEmail != "" {
			return d.AuthorEmail, true
		}
	case "metadata_created":
		if d.MetadataCreated != "" {
			return d.MetadataCreated, true
		}
	case "metadata_modified":
		if d.MetadataModified != "" {
			return d.MetadataModified, true
		}
	}
	if v, ok := d.Extras.Get(key); ok {
		return v, true
	}
	if v, ok := d.Extras.Get("dcat_" + key); ok {
		return v, true
	}
	return nil, false
}

// StringValue is Value narrowed to string results; non-string values and
// missing keys return "".
func (d *Dataset) StringValue(key string) string {
	v, ok := d.Value(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Resource is one distribution record. Everything is top level; there is
// no nested extras area.
type Resource struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	Description    string `json:"description,omitempty"`
	URL            string `json:"url,omitempty"`
	AccessURL      string `json:"access_url,omitempty"`
	DownloadURL    string `json:"download_url,omitempty"`
	Issued         string `json:"issued,omitempty"`
	Modified       string `json:"modified,omitempty"`
	Created        string `json:"created,omitempty"`
	Status         string `json:"status,omitempty"`
	License        string `json:"license,omitempty"`
	Rights         string `json:"rights,omitempty"`
	Language       string `json:"language,omitempty"`
	Documentation  string `json:"documentation,omitempty"`
	ConformsTo     string `json:"conforms_to,omitempty"`
	Mimetype       string `json:"mimetype,omitempty"`
	Format         string `json:"format,omitempty"`
	Size           int64  `json:"size,omitempty"`
	SizeRaw        string `json:"-"`
	Hash           string `json:"hash,omitempty"`
	HashAlgorithm  string `json:"hash_algorithm,omitempty"`
	URI            string `json:"uri"`
	DistributionRef string `json:"distribution_ref,omitempty"`

	// DCAT-AP v2 additions.
	Availability   string `json:"availability,omitempty"`
	CompressFormat string `json:"compress_format,omitempty"`
	PackageFormat  string `json:"package_format,omitempty"`
	AccessServices string `json:"access_services,omitempty"`
}

// Value looks up a resource field by its record key.
func (r *Resource) Value(key string) (any, bool) {
	var s string
	switch key {
	case "id":
		s = r.ID
	case "name":
		s = r.Name
	case "description":
		s = r.Description
	case "url":
		s = r.URL
	case "access_url":
		s = r.AccessURL
	case "download_url":
		s = r.DownloadURL
	case "issued":
		s = r.Issued
	case "modified":
		s = r.Modified
	case "created":
		s = r.Created
	case "metadata_modified":
		s = ""
	case "status":
		s = r.Status
	case "license":
		s = r.License
	case "rights":
		s = r.Rights
	case "language":
		s = r.Language
	case "documentation":
		s = r.Documentation
	case "conforms_to":
		s = r.ConformsTo
	case "mimetype":
		s = r.Mimetype
	case "format":
		s = r.Format
	case "hash":
		s = r.Hash
	case "hash_algorithm":
		s = r.HashAlgorithm
	case "uri":
		s = r.URI
	case "distribution_ref":
		s = r.DistributionRef
	case "availability":
		s = r.Availability
	case "compress_format":
		s = r.CompressFormat
	case "package_format":
		s = r.PackageFormat
	case "access_services":
		s = r.AccessServices
	case "size":
		if r.SizeRaw != "" {
			return r.SizeRaw, true
		}
		if r.Size != 0 {
			return r.Size, true
		}
		return nil, false
	default:
		return nil, false
	}
	if s == "" {
		return nil, false
	}
	return s, true
}

// StringValue is Value narrowed to string results.
func (r *Resource) StringValue(key string) string {
	v, ok := r.Value(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Catalog is the site-level record used when serializing the catalog node.
// Empty fields fall back to the site configuration.
type Catalog struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	Language    string `json:"language,omitempty"`
}

// Value looks up a catalog field by key.
func (c *Catalog) Value(key string) (string, bool) {
	var s string
	switch key {
	case "title":
		s = c.Title
	case "description":
		s = c.Description
	case "homepage":
		s = c.Homepage
	case "language":
		s = c.Language
	default:
		return "", false
	}
	return s, s != ""
}
