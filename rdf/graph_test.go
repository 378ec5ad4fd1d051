package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphSetSemantics(t *testing.T) {
	g := NewGraph()
	tr := Triple{Subject: IRI("s"), Predicate: IRI("p"), Object: NewLiteral("o")}

	assert.True(t, g.Add(tr))
	assert.False(t, g.Add(tr), "duplicate triples collapse")
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Has(tr))
}

func TestGraphAddGraphUnion(t *testing.T) {
	a := NewGraph()
	a.Bind("ex", "https://example.org/")
	a.Add(Triple{Subject: IRI("s"), Predicate: IRI("p"), Object: IRI("o1")})

	b := NewGraph()
	b.Bind("ex", "https://other.example.org/")
	b.Bind("v4", "https://clearhead.us/vocab/actions/v4#")
	b.Add(Triple{Subject: IRI("s"), Predicate: IRI("p"), Object: IRI("o1")})
	b.Add(Triple{Subject: IRI("s"), Predicate: IRI("p"), Object: IRI("o2")})

	a.AddGraph(b)
	assert.Equal(t, 2, a.Len())

	// The first binding of a prefix wins.
	ns, ok := a.Namespace("ex")
	require.True(t, ok)
	assert.Equal(t, "https://example.org/", ns)
	_, ok = a.Namespace("v4")
	assert.True(t, ok)
}

func TestGraphQueries(t *testing.T) {
	g := NewGraph()
	g.Add(Triple{Subject: IRI("s1"), Predicate: RDFType, Object: IRI("Plan")})
	g.Add(Triple{Subject: IRI("s2"), Predicate: RDFType, Object: IRI("Plan")})
	g.Add(Triple{Subject: IRI("s1"), Predicate: IRI("p"), Object: NewLiteral("a")})
	g.Add(Triple{Subject: IRI("s1"), Predicate: IRI("p"), Object: NewLiteral("b")})

	assert.Equal(t, []Term{IRI("s1"), IRI("s2")}, g.SubjectsOfType(IRI("Plan")))
	assert.Equal(t, []Term{NewLiteral("a"), NewLiteral("b")}, g.Objects(IRI("s1"), IRI("p")))
	assert.Equal(t, Term(NewLiteral("a")), g.Object(IRI("s1"), IRI("p")))
	assert.Nil(t, g.Object(IRI("s2"), IRI("p")))
	assert.Len(t, g.PredicateObjects(IRI("s1")), 3)
}

func TestGraphList(t *testing.T) {
	g := NewGraph()
	g.Add(Triple{Subject: BlankNode("l1"), Predicate: RDFFirst, Object: NewLiteral("a")})
	g.Add(Triple{Subject: BlankNode("l1"), Predicate: RDFRest, Object: BlankNode("l2")})
	g.Add(Triple{Subject: BlankNode("l2"), Predicate: RDFFirst, Object: NewLiteral("b")})
	g.Add(Triple{Subject: BlankNode("l2"), Predicate: RDFRest, Object: RDFNil})

	assert.Equal(t, []Term{NewLiteral("a"), NewLiteral("b")}, g.List(BlankNode("l1")))
	assert.Empty(t, g.List(RDFNil))
}

func TestGraphEqual(t *testing.T) {
	a := NewGraph()
	b := NewGraph()
	t1 := Triple{Subject: IRI("s"), Predicate: IRI("p"), Object: IRI("o1")}
	t2 := Triple{Subject: IRI("s"), Predicate: IRI("p"), Object: IRI("o2")}

	a.Add(t1)
	a.Add(t2)
	b.Add(t2)
	b.Add(t1)
	assert.True(t, a.Equal(b), "equality ignores insertion order")

	b.Add(Triple{Subject: IRI("s"), Predicate: IRI("p"), Object: IRI("o3")})
	assert.False(t, a.Equal(b))
}

func TestIRILocalName(t *testing.T) {
	assert.Equal(t, "ActionPlan", IRI("https://clearhead.us/vocab/actions/v3#ActionPlan").LocalName())
	assert.Equal(t, "ont00000974", IRI("https://www.commoncoreontologies.org/ont00000974").LocalName())
	assert.Equal(t, "name", IRI("name").LocalName())
}
