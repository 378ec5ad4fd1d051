package shapes

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearhead-us/actions-vocabulary/rdf"
)

func TestCheckUUIDs(t *testing.T) {
	hasUUID := rdf.IRI("https://clearhead.us/vocab/actions/v4#hasUUID")
	v7, err := uuid.NewV7()
	require.NoError(t, err)

	g := rdf.NewGraph()
	g.Add(rdf.Triple{Subject: rdf.IRI("https://example.org/good"), Predicate: hasUUID, Object: rdf.NewLiteral(v7.String())})
	g.Add(rdf.Triple{Subject: rdf.IRI("https://example.org/v4uuid"), Predicate: hasUUID, Object: rdf.NewLiteral(uuid.NewString())})
	g.Add(rdf.Triple{Subject: rdf.IRI("https://example.org/garbage"), Predicate: hasUUID, Object: rdf.NewLiteral("not-a-uuid")})
	g.Add(rdf.Triple{Subject: rdf.IRI("https://example.org/iri"), Predicate: hasUUID, Object: rdf.IRI("https://example.org/x")})
	g.Add(rdf.Triple{Subject: rdf.IRI("https://example.org/other"), Predicate: rdf.RDFSLabel, Object: rdf.NewLiteral("ignored")})

	report := CheckUUIDs(g, hasUUID)
	require.Len(t, report.Results, 3)
	for _, r := range report.Results {
		assert.Equal(t, "uuid", r.Constraint)
		assert.Equal(t, hasUUID, r.Path)
	}
	assert.False(t, report.Conforms())
}

func TestCheckUUIDsEmpty(t *testing.T) {
	report := CheckUUIDs(rdf.NewGraph(), rdf.IRI("https://example.org/p"))
	assert.True(t, report.Conforms())
}
