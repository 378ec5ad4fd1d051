package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/cco"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v4"
)

const migrationFixture = `
@prefix v3: <https://clearhead.us/vocab/actions/v3#> .

v3:plan-root a v3:RootActionPlan ;
    v3:hasPriority 1 ;
    v3:hasProject "Home Renovation" .

v3:plan-child a v3:ChildActionPlan ;
    v3:parentAction v3:plan-root ;
    v3:hasProject "Home Renovation " .

v3:proc-1 a v3:ActionProcess ;
    v3:hasState v3:NotStarted ;
    v3:prescribedBy v3:plan-child .

v3:ms-1 a v3:Milestone ;
    v3:hasProject "Home Renovation" .

v3:ctx-morning a v3:EnergyContext ;
    v3:hasDescription "High energy mornings" .

v3:plan-root v3:requiresContext v3:ctx-morning .
`

func TestRunCounts(t *testing.T) {
	m := testMigrator()
	src := mustParse(t, migrationFixture)

	out, stats, err := m.Run(src)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Plans)
	assert.Equal(t, 1, stats.Processes)
	assert.Equal(t, 1, stats.Milestones)
	assert.Equal(t, 1, stats.Contexts)
	assert.Equal(t, out.Len(), stats.Triples)
}

// Two plans whose project labels differ only by trailing whitespace must
// share exactly one objective.
func TestRunSharedObjective(t *testing.T) {
	m := testMigrator()
	src := mustParse(t, migrationFixture)

	out, _, err := m.Run(src)
	require.NoError(t, err)

	objective := rdf.IRI("urn:objective:home_renovation")
	assert.True(t, out.Has(rdf.Triple{Subject: objective, Predicate: rdf.RDFType, Object: cco.Objective}))
	labels := out.Objects(objective, rdf.RDFSLabel)
	require.Len(t, labels, 1,
		"slug-equal project texts must yield a single label, not one per variant")
	assert.Equal(t, rdf.Term(rdf.NewLiteral("Home Renovation")), labels[0],
		"the first-seen project text becomes the objective label")

	assert.True(t, out.Has(rdf.Triple{
		Subject:   rdf.IRI("https://clearhead.us/vocab/actions/v4#plan-root"),
		Predicate: v4.HasObjective,
		Object:    objective,
	}))
	assert.True(t, out.Has(rdf.Triple{
		Subject:   rdf.IRI("https://clearhead.us/vocab/actions/v4#plan-child"),
		Predicate: v4.HasObjective,
		Object:    objective,
	}))
}

func TestRunProcessInversion(t *testing.T) {
	m := testMigrator()
	src := mustParse(t, migrationFixture)

	out, _, err := m.Run(src)
	require.NoError(t, err)

	assert.True(t, out.Has(rdf.Triple{
		Subject:   rdf.IRI("https://clearhead.us/vocab/actions/v4#plan-child"),
		Predicate: v4.Prescribes,
		Object:    rdf.IRI("https://clearhead.us/vocab/actions/v4#proc-1"),
	}))
	for _, tr := range out.Triples() {
		assert.NotContains(t, tr.Predicate.String(), "prescribedBy")
	}
}

func TestRunContextEntityMigrated(t *testing.T) {
	m := testMigrator()
	src := mustParse(t, migrationFixture)

	out, _, err := m.Run(src)
	require.NoError(t, err)

	ctxV4 := rdf.IRI("https://clearhead.us/vocab/actions/v4#ctx-morning")
	assert.True(t, out.Has(rdf.Triple{Subject: ctxV4, Predicate: rdf.RDFType, Object: v4.ClassEnergyContext}))
	assert.True(t, out.Has(rdf.Triple{
		Subject:   ctxV4,
		Predicate: v4.HasDescription,
		Object:    rdf.NewLiteral("High energy mornings"),
	}))
	assert.True(t, out.Has(rdf.Triple{
		Subject:   rdf.IRI("https://clearhead.us/vocab/actions/v4#plan-root"),
		Predicate: v4.RequiresEnergyContext,
		Object:    ctxV4,
	}))
}

// Migration is a pure batch transform: repeated runs on the same source
// produce equal triple sets and identical counts.
func TestRunDeterministic(t *testing.T) {
	m := testMigrator()
	src := mustParse(t, migrationFixture)

	first, firstStats, err := m.Run(src)
	require.NoError(t, err)
	second, secondStats, err := m.Run(src)
	require.NoError(t, err)

	assert.Equal(t, firstStats, secondStats)
	assert.True(t, first.Equal(second))
}

func TestTransformContextUnrecognizedKind(t *testing.T) {
	m := testMigrator()
	src := mustParse(t, `
@prefix v3: <https://clearhead.us/vocab/actions/v3#> .

v3:ctx-odd a v3:WeatherContext .
`)

	out := m.TransformContext(src, "https://clearhead.us/vocab/actions/v3#ctx-odd")
	assert.Nil(t, out, "unrecognized context kinds produce no output")
}

func TestMigrateFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.ttl")
	output := filepath.Join(dir, "output.ttl")
	require.NoError(t, os.WriteFile(input, []byte(migrationFixture), 0o644))

	m := testMigrator()
	stats, err := m.MigrateFile(input, output)
	require.NoError(t, err)
	assert.Positive(t, stats.Triples)

	// The written file must parse back to the same triple count.
	roundtrip, err := rdf.DecodeTurtleFile(output)
	require.NoError(t, err)
	assert.Equal(t, stats.Triples, roundtrip.Len())
}

func TestMigrateFileMissingInput(t *testing.T) {
	m := testMigrator()
	_, err := m.MigrateFile(filepath.Join(t.TempDir(), "absent.ttl"), "out.ttl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
