package profiles

import (
	"testing"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/stretchr/testify/assert"

	"github.com/kangmoesss/ckanext-dcat/config"
	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

func TestObjectValueLanguagePreference(t *testing.T) {
	subject := rdf.IRI{Value: "http://example.org/d"}

	t.Run("default locale wins over earlier literals", func(t *testing.T) {
		g := graph.New()
		g.Add(subject, vocabulary.DCTTitle, graph.LangLiteral("Pressupost", "ca"))
		g.Add(subject, vocabulary.DCTTitle, graph.LangLiteral("Budget", "en"))
		b := NewBase(g, Options{Config: &config.Config{DefaultLocale: "en"}})

		assert.Equal(t, "Budget", b.objectValue(subject, vocabulary.DCTTitle))
	})

	t.Run("first literal is the fallback", func(t *testing.T) {
		g := graph.New()
		g.Add(subject, vocabulary.DCTTitle, graph.LangLiteral("Pressupost", "ca"))
		g.Add(subject, vocabulary.DCTTitle, graph.LangLiteral("Haushalt", "de"))
		b := NewBase(g, Options{Config: &config.Config{DefaultLocale: "en"}})

		assert.Equal(t, "Pressupost", b.objectValue(subject, vocabulary.DCTTitle))
	})

	t.Run("untagged literal serves as fallback", func(t *testing.T) {
		g := graph.New()
		g.Add(subject, vocabulary.DCTTitle, graph.Literal("Budget"))
		b := NewBase(g, Options{})

		assert.Equal(t, "Budget", b.objectValue(subject, vocabulary.DCTTitle))
	})

	t.Run("reference object returned directly", func(t *testing.T) {
		g := graph.New()
		g.Add(subject, vocabulary.DCTLicense, rdf.IRI{Value: "http://example.org/license"})
		b := NewBase(g, Options{})

		assert.Equal(t, "http://example.org/license", b.objectValue(subject, vocabulary.DCTLicense))
	})

	t.Run("absent predicate yields empty", func(t *testing.T) {
		b := NewBase(graph.New(), Options{})
		assert.Empty(t, b.objectValue(subject, vocabulary.DCTTitle))
	})
}

func TestObjectValueInt(t *testing.T) {
	subject := rdf.IRI{Value: "http://example.org/dist"}

	tests := []struct {
		name  string
		value string
		want  int64
		ok    bool
	}{
		{"integer", "1024", 1024, true},
		{"float truncates", "1024.9", 1024, true},
		{"text fails", "big", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.New()
			g.Add(subject, vocabulary.DCATByteSize, graph.Literal(tt.value))
			b := NewBase(g, Options{})

			got, ok := b.objectValueInt(subject, vocabulary.DCATByteSize)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectValueIntList(t *testing.T) {
	subject := rdf.IRI{Value: "http://example.org/d"}
	g := graph.New()
	g.Add(subject, vocabulary.DCATSpatialResolutionMeters, graph.Literal("30"))
	g.Add(subject, vocabulary.DCATSpatialResolutionMeters, graph.Literal("not-a-number"))
	g.Add(subject, vocabulary.DCATSpatialResolutionMeters, graph.Literal("60.0"))
	b := NewBase(g, Options{})

	assert.Equal(t, []int64{30, 60}, b.objectValueIntList(subject, vocabulary.DCATSpatialResolutionMeters))
}

func TestVcardPropertyValue(t *testing.T) {
	agent := rdf.BlankNode{ID: "contact"}

	t.Run("string property preferred", func(t *testing.T) {
		g := graph.New()
		g.Add(agent, vocabulary.VCardFn, graph.Literal("Data Office"))
		g.Add(agent, vocabulary.VCardHasFN, graph.Literal("Ignored"))
		b := NewBase(g, Options{})

		assert.Equal(t, "Data Office", b.vcardPropertyValue(agent, vocabulary.VCardHasFN, vocabulary.VCardFn))
	})

	t.Run("blank node resolved through hasValue", func(t *testing.T) {
		g := graph.New()
		email := rdf.BlankNode{ID: "email"}
		g.Add(agent, vocabulary.VCardHasEmail, email)
		g.Add(email, vocabulary.VCardHasValue, graph.Literal("mailto:data@example.org"))
		b := NewBase(g, Options{})

		assert.Equal(t, "mailto:data@example.org", b.vcardPropertyValue(agent, vocabulary.VCardHasEmail, ""))
	})

	t.Run("direct value", func(t *testing.T) {
		g := graph.New()
		g.Add(agent, vocabulary.VCardHasEmail, rdf.IRI{Value: "mailto:data@example.org"})
		b := NewBase(g, Options{})

		assert.Equal(t, "mailto:data@example.org", b.vcardPropertyValue(agent, vocabulary.VCardHasEmail, ""))
	})
}

func TestKeywordsCommaSplitting(t *testing.T) {
	subject := rdf.IRI{Value: "http://example.org/d"}
	g := graph.New()
	g.Add(subject, vocabulary.DCATKeyword, graph.Literal("economy"))
	g.Add(subject, vocabulary.DCATKeyword, graph.Literal("budget, finance"))
	g.Add(subject, vocabulary.DCATKeyword, graph.Literal("health"))
	b := NewBase(g, Options{})

	// Intact keywords keep their order; split parts append at the end.
	assert.Equal(t, []string{"economy", "health", "budget", "finance"}, b.keywords(subject))
}

func TestAgentLastWriteWins(t *testing.T) {
	subject := rdf.IRI{Value: "http://example.org/d"}
	g := graph.New()

	first := rdf.IRI{Value: "http://example.org/org/1"}
	g.Add(subject, vocabulary.DCTPublisher, first)
	g.Add(first, vocabulary.FOAFName, graph.Literal("First Org"))
	g.Add(first, vocabulary.FOAFMbox, graph.Literal("first@example.org"))

	second := rdf.BlankNode{ID: "org2"}
	g.Add(subject, vocabulary.DCTPublisher, second)
	g.Add(second, vocabulary.FOAFName, graph.Literal("Second Org"))

	b := NewBase(g, Options{})
	publisher := b.publisher(subject, vocabulary.DCTPublisher)

	// Every field reflects the last agent, including its empty ones.
	assert.Empty(t, publisher.URI)
	assert.Equal(t, "Second Org", publisher.Name)
	assert.Empty(t, publisher.Email)
}

func TestAccessRights(t *testing.T) {
	subject := rdf.IRI{Value: "http://example.org/d"}

	t.Run("typed statement node yields its label", func(t *testing.T) {
		g := graph.New()
		node := rdf.BlankNode{ID: "rights"}
		g.Add(subject, vocabulary.DCTAccessRights, node)
		g.Add(node, vocabulary.RDFType, rdf.IRI{Value: vocabulary.DCTRightsStatement})
		g.Add(node, vocabulary.RDFSLabel, graph.Literal("public"))
		b := NewBase(g, Options{})

		assert.Equal(t, "public", b.accessRights(subject, vocabulary.DCTAccessRights))
	})

	t.Run("untyped blank node yields nothing", func(t *testing.T) {
		g := graph.New()
		node := rdf.BlankNode{ID: "rights"}
		g.Add(subject, vocabulary.DCTAccessRights, node)
		g.Add(node, vocabulary.RDFSLabel, graph.Literal("public"))
		b := NewBase(g, Options{})

		assert.Empty(t, b.accessRights(subject, vocabulary.DCTAccessRights))
	})

	t.Run("reference returned verbatim", func(t *testing.T) {
		g := graph.New()
		g.Add(subject, vocabulary.DCTAccessRights, rdf.IRI{Value: "http://example.org/public"})
		b := NewBase(g, Options{})

		assert.Equal(t, "http://example.org/public", b.accessRights(subject, vocabulary.DCTAccessRights))
	})
}
