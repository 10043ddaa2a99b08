// Package dataset defines the portal-side record types the profiles map
// RDF graphs to and from: the dataset record, its resources
// (distributions), and the extras overflow list.
//
// Records follow the CKAN package shape. Fields without a dedicated
// top-level slot live in Extras as ordered {key, value} pairs; resources
// keep everything at the top level. Lookups go through Value, which checks
// the top-level slot first and then the extras under both the bare key and
// the legacy "dcat_"-prefixed key, so records produced by older parser
// generations keep reading correctly.
package dataset
