// Package vocabulary defines the RDF vocabulary terms used by the DCAT
// mapping profiles.
//
// Terms are plain IRI string constants grouped per namespace (DCT, DCAT,
// DCAT-AP, ADMS, VCARD, FOAF, schema.org, W3C Time, LOCN, GeoSPARQL, OWL,
// SPDX, plus the RDF/RDFS/SKOS/XSD basics). The Prefixes table maps the
// short prefix names used when serializing to Turtle or similar syntaxes.
//
// Profiles never build IRIs at runtime from fragments; every predicate and
// class they touch is declared here so the full vocabulary surface of the
// mapping is visible in one place.
package vocabulary
