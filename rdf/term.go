// Package rdf provides the triple model, Turtle decoding, and RDF
// serialization used by the Actions Vocabulary tooling.
//
// The model is deliberately small: IRIs, literals, and blank nodes, combined
// into triples held by an insertion-ordered set. It covers the Turtle subset
// the vocabulary files use and nothing more.
package rdf

import (
	"fmt"
	"strings"
)

// Term is a node in an RDF triple: an IRI, a Literal, or a BlankNode.
// The three concrete types are all comparable, so triples can be used as
// map keys for set semantics.
type Term interface {
	isTerm()
	String() string
}

// IRI is an internationalized resource identifier.
type IRI string

func (IRI) isTerm() {}

func (i IRI) String() string { return string(i) }

// LocalName returns the fragment after '#', or after the last '/' when the
// IRI has no fragment.
func (i IRI) LocalName() string {
	s := string(i)
	if idx := strings.LastIndex(s, "#"); idx >= 0 {
		return s[idx+1:]
	}
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// BlankNode is a graph-local node identified by a label without global
// meaning.
type BlankNode string

func (BlankNode) isTerm() {}

func (b BlankNode) String() string { return "_:" + string(b) }

// Literal is a data value with an optional datatype IRI or language tag.
// A zero Datatype with no Lang means a plain (xsd:string) literal.
type Literal struct {
	Value    string
	Datatype IRI
	Lang     string
}

func (Literal) isTerm() {}

func (l Literal) String() string {
	switch {
	case l.Lang != "":
		return fmt.Sprintf("%q@%s", l.Value, l.Lang)
	case l.Datatype != "" && l.Datatype != XSDString:
		return fmt.Sprintf("%q^^<%s>", l.Value, l.Datatype)
	default:
		return fmt.Sprintf("%q", l.Value)
	}
}

// NewLiteral returns a plain string literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// TypedLiteral returns a literal with an explicit datatype.
func TypedLiteral(value string, datatype IRI) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// LangLiteral returns a language-tagged literal.
func LangLiteral(value, lang string) Literal {
	return Literal{Value: value, Lang: lang}
}

// Triple is one (subject, predicate, object) statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}
