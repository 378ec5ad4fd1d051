package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTurtleBasics(t *testing.T) {
	g, err := DecodeTurtle(`
@prefix v3: <https://clearhead.us/vocab/actions/v3#> .
@prefix schema: <http://schema.org/> .

# A simple root plan.
v3:plan-1 a v3:RootActionPlan ;
    v3:hasPriority 2 ;
    v3:hasProject "Home Renovation" ;
    schema:name "Renovate" .
`)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())

	plan := IRI("https://clearhead.us/vocab/actions/v3#plan-1")
	assert.True(t, g.Has(Triple{
		Subject:   plan,
		Predicate: RDFType,
		Object:    IRI("https://clearhead.us/vocab/actions/v3#RootActionPlan"),
	}))
	assert.True(t, g.Has(Triple{
		Subject:   plan,
		Predicate: IRI("https://clearhead.us/vocab/actions/v3#hasPriority"),
		Object:    TypedLiteral("2", XSDInteger),
	}))
	assert.True(t, g.Has(Triple{
		Subject:   plan,
		Predicate: IRI("http://schema.org/name"),
		Object:    NewLiteral("Renovate"),
	}))

	ns, ok := g.Namespace("v3")
	require.True(t, ok)
	assert.Equal(t, "https://clearhead.us/vocab/actions/v3#", ns)
}

func TestDecodeTurtleObjectList(t *testing.T) {
	g, err := DecodeTurtle(`
@prefix ex: <https://example.org/> .
ex:s ex:p ex:a, ex:b, ex:c .
`)
	require.NoError(t, err)
	assert.Len(t, g.Objects(IRI("https://example.org/s"), IRI("https://example.org/p")), 3)
}

func TestDecodeTurtleLiterals(t *testing.T) {
	g, err := DecodeTurtle(`
@prefix ex: <https://example.org/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

ex:s ex:typed "2024-01-15T10:00:00Z"^^xsd:dateTime ;
    ex:tagged "bonjour"@fr ;
    ex:bool true ;
    ex:decimal 1.5 ;
    ex:escaped "line one\nline \"two\"" ;
    ex:long """a
multi-line
string""" .
`)
	require.NoError(t, err)

	s := IRI("https://example.org/s")
	assert.Equal(t, Term(TypedLiteral("2024-01-15T10:00:00Z", XSDDateTime)), g.Object(s, IRI("https://example.org/typed")))
	assert.Equal(t, Term(LangLiteral("bonjour", "fr")), g.Object(s, IRI("https://example.org/tagged")))
	assert.Equal(t, Term(TypedLiteral("true", XSDBoolean)), g.Object(s, IRI("https://example.org/bool")))
	assert.Equal(t, Term(TypedLiteral("1.5", XSDDecimal)), g.Object(s, IRI("https://example.org/decimal")))
	assert.Equal(t, Term(NewLiteral("line one\nline \"two\"")), g.Object(s, IRI("https://example.org/escaped")))
	assert.Equal(t, Term(NewLiteral("a\nmulti-line\nstring")), g.Object(s, IRI("https://example.org/long")))
}

func TestDecodeTurtleBlankNodes(t *testing.T) {
	g, err := DecodeTurtle(`
@prefix ex: <https://example.org/> .
ex:s ex:p [ ex:q "nested" ] .
ex:t ex:p _:label .
`)
	require.NoError(t, err)

	obj := g.Object(IRI("https://example.org/s"), IRI("https://example.org/p"))
	b, ok := obj.(BlankNode)
	require.True(t, ok, "property list should produce a blank node")
	assert.Equal(t, Term(NewLiteral("nested")), g.Object(b, IRI("https://example.org/q")))

	assert.Equal(t, Term(BlankNode("label")), g.Object(IRI("https://example.org/t"), IRI("https://example.org/p")))
}

func TestDecodeTurtleCollection(t *testing.T) {
	g, err := DecodeTurtle(`
@prefix ex: <https://example.org/> .
ex:s ex:allowed ( "low" "medium" "high" ) .
`)
	require.NoError(t, err)

	head := g.Object(IRI("https://example.org/s"), IRI("https://example.org/allowed"))
	require.NotNil(t, head)
	items := g.List(head)
	assert.Equal(t, []Term{NewLiteral("low"), NewLiteral("medium"), NewLiteral("high")}, items)
}

func TestDecodeTurtleSparqlPrefix(t *testing.T) {
	g, err := DecodeTurtle(`
PREFIX ex: <https://example.org/>
ex:s ex:p ex:o .
`)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
}

func TestDecodeTurtleErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"undefined prefix", `ex:s ex:p ex:o .`},
		{"unterminated string", `<https://e.org/s> <https://e.org/p> "open .`},
		{"missing dot", "@prefix ex: <https://example.org/> .\nex:s ex:p ex:o"},
		{"unterminated iri", `<https://e.org/s`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTurtle(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestDecodeTurtleFileMissing(t *testing.T) {
	_, err := DecodeTurtleFile("testdata/does-not-exist.ttl")
	assert.Error(t, err)
}
