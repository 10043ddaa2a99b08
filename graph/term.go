package graph

import (
	"fmt"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/google/uuid"
)

// escapeChars is the limited character set percent-encoded before a string
// is used as a reference node. Keeping the set small avoids full URL
// parsing (a valid '?' in a query string vs. '?' as a value). Encoding is
// idempotent because only single characters are replaced and '%' is never
// one of them.
const escapeChars = " !\"$'()*,;<>[]{|}\\^`"

// CleanedRef trims and percent-encodes value and returns it as a reference
// node. It never fails; validity is the caller's concern (see TermOrLiteral).
func CleanedRef(value string) rdf.IRI {
	return rdf.IRI{Value: escapeRef(strings.TrimSpace(value))}
}

func escapeRef(value string) string {
	for _, c := range escapeChars {
		value = strings.ReplaceAll(value, string(c), fmt.Sprintf("%%%02X", c))
	}
	return value
}

// TermOrLiteral builds a reference node if value looks like an http(s) URL
// and survives cleaning and validation, and a plain literal otherwise.
func TermOrLiteral(value string) rdf.Term {
	stripped := strings.TrimSpace(value)
	if strings.HasPrefix(stripped, "http://") || strings.HasPrefix(stripped, "https://") {
		ref := CleanedRef(value)
		if rdf.ValidateIRI(ref.Value) == nil && isSerializableRef(ref.Value) {
			return ref
		}
	}
	return rdf.Literal{Lexical: value}
}

// isSerializableRef rejects reference text that would not survive
// re-serialization: control characters and the raw characters the escape
// table should have removed.
func isSerializableRef(value string) bool {
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			return false
		}
		if strings.ContainsRune(escapeChars, r) {
			return false
		}
	}
	return true
}

// IsRef reports whether the term is a named reference node.
func IsRef(t rdf.Term) bool {
	_, ok := t.(rdf.IRI)
	return ok
}

// IsBlank reports whether the term is a blank node.
func IsBlank(t rdf.Term) bool {
	_, ok := t.(rdf.BlankNode)
	return ok
}

// IsLiteral reports whether the term is a literal.
func IsLiteral(t rdf.Term) bool {
	_, ok := t.(rdf.Literal)
	return ok
}

// RefValue returns the reference string of a named node, or "" for blank
// nodes and literals. Callers use the empty string to surface "this entity
// has no external identity" on parsed records.
func RefValue(t rdf.Term) string {
	if iri, ok := t.(rdf.IRI); ok {
		return iri.Value
	}
	return ""
}

// TermText returns the lexical text of any term: the IRI value, the blank
// node identifier, or the literal's lexical form.
func TermText(t rdf.Term) string {
	switch v := t.(type) {
	case rdf.IRI:
		return v.Value
	case rdf.BlankNode:
		return v.String()
	case rdf.Literal:
		return v.Lexical
	default:
		return ""
	}
}

// NewBlankNode returns a fresh blank node with a unique local identifier.
func NewBlankNode() rdf.BlankNode {
	return rdf.BlankNode{ID: "N" + strings.ReplaceAll(uuid.NewString(), "-", "")}
}

// Literal returns a plain literal term.
func Literal(value string) rdf.Literal {
	return rdf.Literal{Lexical: value}
}

// LangLiteral returns a language-tagged literal term.
func LangLiteral(value, lang string) rdf.Literal {
	return rdf.Literal{Lexical: value, Lang: lang}
}

// TypedLiteral returns a datatype-tagged literal term.
func TypedLiteral(value, datatype string) rdf.Literal {
	return rdf.Literal{Lexical: value, Datatype: rdf.IRI{Value: datatype}}
}
