package migrate

import (
	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/cco"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v3"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v4"
)

// contextTypeMap resolves the migrated type from the v3 context kind.
// Energy contexts keep a v4 type; the other kinds become the CCO resource
// class the context used to wrap.
var contextTypeMap = []struct {
	v3Class rdf.IRI
	v4Type  rdf.IRI
}{
	{v3.ClassEnergyContext, v4.ClassEnergyContext},
	{v3.ClassLocationContext, cco.Facility},
	{v3.ClassToolContext, cco.Artifact},
	{v3.ClassSocialContext, cco.Agent},
}

// TransformContext migrates one context entity. It returns nil when the
// entity carries none of the four recognized kind tags; the orchestrator
// reports that case as a diagnostic.
func (m *Migrator) TransformContext(src *rdf.Graph, ctx rdf.IRI) *rdf.Graph {
	types := src.Objects(ctx, rdf.RDFType)

	var newType rdf.IRI
	for _, entry := range contextTypeMap {
		if containsTerm(types, entry.v3Class) {
			newType = entry.v4Type
			break
		}
	}
	if newType == "" {
		return nil
	}

	out := rdf.NewGraph()
	bindOutputPrefixes(out)

	ctxV4 := m.rewriter.IRI(ctx)
	out.Add(rdf.Triple{Subject: ctxV4, Predicate: rdf.RDFType, Object: newType})

	// The wrapped-resource predicates are redundant on the migrated
	// entity: the context itself became the resource.
	m.copyProperties(out, ctxV4, src, ctx, skip(
		v3.RequiresFacility,
		v3.RequiresArtifact,
		v3.RequiresAgent,
		rdf.RDFType,
	))

	return out
}
