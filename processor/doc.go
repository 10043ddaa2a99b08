// Package processor orchestrates the mapping profiles over whole
// documents.
//
// A Parser loads one RDF document in any supported concrete syntax,
// enumerates its dcat:Dataset nodes and runs the configured profile
// chain over each, producing dataset records. A Serializer walks the
// other way: it writes the catalog node and every dataset record into a
// fresh graph and emits it in the requested syntax.
//
// Profiles are selected by name ("euro_dcat_ap", "euro_dcat_ap_2",
// "schemaorg") and applied in the order given; each profile sees the
// record or graph as left by the previous one.
package processor
