// Package profiles implements the vocabulary profiles that map between an
// RDF graph and the portal dataset record.
//
// A Profile exposes three operations: ParseDataset (graph → record),
// GraphFromDataset (record → graph) and GraphFromCatalog (site record →
// graph). Profiles are applied in sequence by an orchestrator (see the
// processor package): each ParseDataset call receives the record
// accumulated so far and may add or override fields; each GraphFrom* call
// mutates the shared graph.
//
// Three concrete profiles exist:
//
//   - DCATAP: the DCAT-AP v1 mapping
//   - DCATAP2: DCAT-AP v2, delegating to a DCATAP instance first and then
//     applying the v2 deltas (explicit composition, not inheritance)
//   - SchemaOrg: an independent schema.org/Dataset serialization
//
// Extraction is best effort throughout: unparsable dates, integers, JSON
// list values and geometries degrade silently to raw text or are skipped.
// The only fatal condition is ErrAmbiguousCatalog, raised when two
// distinct non-root catalogs claim the same dataset.
//
// A profile instance binds one graph plus the site configuration and the
// license registry. The license lookup maps and the root-catalog
// resolution are memoized per instance and never invalidated; a
// long-lived instance will not observe registry updates. Instances are
// not safe for concurrent use — give each operation its own.
package profiles
