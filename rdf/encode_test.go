package rdf

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleGraph() *Graph {
	g := NewGraph()
	g.Bind("v4", "https://clearhead.us/vocab/actions/v4#")
	g.Bind("cco", "https://www.commoncoreontologies.org/")

	plan := IRI("https://clearhead.us/vocab/actions/v4#plan-1")
	g.Add(Triple{Subject: plan, Predicate: RDFType, Object: IRI("https://www.commoncoreontologies.org/ont00000974")})
	g.Add(Triple{Subject: plan, Predicate: IRI("https://clearhead.us/vocab/actions/v4#hasPriority"), Object: TypedLiteral("2", XSDInteger)})
	g.Add(Triple{Subject: plan, Predicate: IRI("https://clearhead.us/vocab/actions/v4#hasName"), Object: NewLiteral("Renovate")})
	return g
}

func TestSerializeTurtle(t *testing.T) {
	out, err := exampleGraph().Serialize(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix v4: <https://clearhead.us/vocab/actions/v4#> .")
	assert.Contains(t, out, "v4:plan-1 a cco:ont00000974")
	assert.Contains(t, out, "v4:hasPriority 2")
	assert.Contains(t, out, `v4:hasName "Renovate"`)
}

func TestTurtleRoundtrip(t *testing.T) {
	g := exampleGraph()
	out, err := g.Serialize(FormatTurtle)
	require.NoError(t, err)

	back, err := DecodeTurtle(out)
	require.NoError(t, err)
	assert.True(t, g.Equal(back), "turtle roundtrip preserves the triple set")
}

func TestSerializeDeterministic(t *testing.T) {
	g := exampleGraph()
	first, err := g.Serialize(FormatTurtle)
	require.NoError(t, err)
	second, err := g.Serialize(FormatTurtle)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSerializeNTriples(t *testing.T) {
	out, err := exampleGraph().Serialize(FormatNTriples)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " ."), "N-Triples line should end with ' .': %s", line)
		assert.True(t, strings.HasPrefix(line, "<https://clearhead.us/vocab/actions/v4#plan-1>"))
	}
	assert.Contains(t, out, `"2"^^<http://www.w3.org/2001/XMLSchema#integer>`)
}

func TestSerializeJSONLD(t *testing.T) {
	out, err := exampleGraph().Serialize(FormatJSONLD)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "@context")
	assert.Contains(t, doc, "@graph")

	graph, ok := doc["@graph"].([]any)
	require.True(t, ok)
	require.Len(t, graph, 1)
	node := graph[0].(map[string]any)
	assert.Equal(t, "https://clearhead.us/vocab/actions/v4#plan-1", node["@id"])
	assert.Contains(t, node, "@type")
}

func TestSerializeUnsupportedFormat(t *testing.T) {
	_, err := exampleGraph().Serialize(Format("rdfxml"))
	assert.Error(t, err)
}

func TestLiteralEscaping(t *testing.T) {
	g := NewGraph()
	g.Add(Triple{
		Subject:   IRI("https://example.org/s"),
		Predicate: IRI("https://example.org/p"),
		Object:    NewLiteral("say \"hi\"\nback\\slash"),
	})

	out, err := g.Serialize(FormatTurtle)
	require.NoError(t, err)

	back, err := DecodeTurtle(out)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}
