package graph

import (
	"testing"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iri(v string) rdf.IRI { return rdf.IRI{Value: v} }

func TestGraphAddDeduplicates(t *testing.T) {
	g := New()
	s := iri("http://example.org/d")
	g.Add(s, "http://purl.org/dc/terms/title", Literal("Budget"))
	g.Add(s, "http://purl.org/dc/terms/title", Literal("Budget"))
	assert.Equal(t, 1, g.Len())

	// Same lexical value but different term kind is a distinct statement.
	g.Add(s, "http://purl.org/dc/terms/title", iri("Budget"))
	assert.Equal(t, 2, g.Len())
}

func TestGraphObjectsInsertionOrder(t *testing.T) {
	g := New()
	s := iri("http://example.org/d")
	p := "http://www.w3.org/ns/dcat#keyword"
	g.Add(s, p, Literal("first"))
	g.Add(s, p, Literal("second"))
	g.Add(s, p, Literal("third"))

	objects := g.Objects(s, p)
	require.Len(t, objects, 3)
	assert.Equal(t, "first", TermText(objects[0]))
	assert.Equal(t, "second", TermText(objects[1]))
	assert.Equal(t, "third", TermText(objects[2]))

	first := g.FirstObject(s, p)
	assert.Equal(t, "first", TermText(first))
}

func TestGraphFirstObjectMissing(t *testing.T) {
	g := New()
	assert.Nil(t, g.FirstObject(iri("http://example.org/d"), "http://purl.org/dc/terms/title"))
}

func TestGraphSubjects(t *testing.T) {
	g := New()
	typePred := "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	datasetClass := iri("http://www.w3.org/ns/dcat#Dataset")

	g.Add(iri("http://example.org/a"), typePred, datasetClass)
	g.Add(iri("http://example.org/b"), typePred, datasetClass)
	g.Add(iri("http://example.org/a"), typePred, datasetClass)
	g.Add(iri("http://example.org/c"), typePred, iri("http://www.w3.org/ns/dcat#Catalog"))

	subjects := g.Subjects(typePred, datasetClass)
	require.Len(t, subjects, 2)
	assert.Equal(t, "http://example.org/a", RefValue(subjects[0]))
	assert.Equal(t, "http://example.org/b", RefValue(subjects[1]))

	// nil object matches any
	assert.Len(t, g.Subjects(typePred, nil), 3)
}

func TestGraphHas(t *testing.T) {
	g := New()
	s := iri("http://example.org/d")
	p := "http://purl.org/dc/terms/title"
	g.Add(s, p, Literal("Budget"))

	assert.True(t, g.Has(s, p, Literal("Budget")))
	assert.True(t, g.Has(s, p, nil))
	assert.True(t, g.Has(nil, p, nil))
	assert.False(t, g.Has(s, p, Literal("Other")))
	assert.False(t, g.Has(iri("http://example.org/other"), p, nil))
}

func TestGraphAddSkipsNilTerms(t *testing.T) {
	g := New()
	g.Add(nil, "http://purl.org/dc/terms/title", Literal("x"))
	g.Add(iri("http://example.org/d"), "http://purl.org/dc/terms/title", nil)
	g.Add(iri("http://example.org/d"), "", Literal("x"))
	assert.Zero(t, g.Len())
}
