package migrate

import (
	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/cco"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v3"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v4"
)

// bindOutputPrefixes applies the standard v4 output prefix set to a
// fragment graph.
func bindOutputPrefixes(g *rdf.Graph) {
	g.Bind(v4.Prefix, v4.Namespace)
	g.Bind(cco.Prefix, cco.Namespace)
	g.Bind("bfo", cco.BFONamespace)
	g.Bind("schema", rdf.SchemaNS)
	g.Bind("rdfs", rdf.RDFSNS)
}

// TransformPlan migrates one v3 ActionPlan (or subclass instance) to a v4
// cco Plan, returning the fragment for that one entity plus any synthesized
// objectives. The source graph is not modified.
func (m *Migrator) TransformPlan(src *rdf.Graph, plan rdf.IRI) *rdf.Graph {
	out := rdf.NewGraph()
	bindOutputPrefixes(out)

	planV4 := m.rewriter.IRI(plan)
	out.Add(rdf.Triple{Subject: planV4, Predicate: rdf.RDFType, Object: cco.Plan})

	// parentAction, hasProject, and the context predicates restructure
	// relationships and are handled below.
	m.copyProperties(out, planV4, src, plan, skip(
		v3.ParentAction,
		v3.HasProject,
		v3.RequiresContext,
		v3.HasContext,
		rdf.RDFType,
	))

	// Hierarchy: containment-specific parentAction becomes the generic
	// part-whole relation, child pointing at parent.
	for _, parent := range src.Objects(plan, v3.ParentAction) {
		out.Add(rdf.Triple{Subject: planV4, Predicate: v4.PartOf, Object: m.rewriter.Term(parent)})
	}

	// Project label becomes a first-class objective. Slug-equal labels
	// collapse onto one objective IRI; the first-seen label text wins, so
	// whitespace variants of the same project produce a single rdfs:label.
	for _, project := range src.Objects(plan, v3.HasProject) {
		label := literalText(project)
		objective := ObjectiveIRI(label)
		out.Add(rdf.Triple{Subject: objective, Predicate: rdf.RDFType, Object: cco.Objective})
		if !m.labeled[objective] {
			m.labeled[objective] = true
			out.Add(rdf.Triple{Subject: objective, Predicate: rdf.RDFSLabel, Object: rdf.NewLiteral(label)})
		}
		out.Add(rdf.Triple{Subject: planV4, Predicate: v4.HasObjective, Object: objective})
	}

	m.migratePlanContexts(out, planV4, src, plan)
	return out
}

// migratePlanContexts gathers context references from both the requirement
// predicate and its legacy alias and links the plan directly to the
// underlying resources. A wrapped resource always wins over using the
// context entity as its own stand-in.
func (m *Migrator) migratePlanContexts(out *rdf.Graph, planV4 rdf.IRI, src *rdf.Graph, plan rdf.IRI) {
	contexts := src.Objects(plan, v3.RequiresContext)
	contexts = append(contexts, src.Objects(plan, v3.HasContext)...)

	for _, ctx := range contexts {
		types := src.Objects(ctx, rdf.RDFType)
		switch {
		case containsTerm(types, v3.ClassLocationContext):
			m.linkContextResource(out, planV4, src, ctx, v3.RequiresFacility, v4.RequiresFacility)
		case containsTerm(types, v3.ClassToolContext):
			m.linkContextResource(out, planV4, src, ctx, v3.RequiresArtifact, v4.RequiresArtifact)
		case containsTerm(types, v3.ClassSocialContext):
			m.linkContextResource(out, planV4, src, ctx, v3.RequiresAgent, v4.RequiresAgent)
		case containsTerm(types, v3.ClassEnergyContext):
			// Energy contexts have no wrapped-resource form.
			out.Add(rdf.Triple{Subject: planV4, Predicate: v4.RequiresEnergyContext, Object: m.rewriter.Term(ctx)})
		default:
			m.logger.Warn("unrecognized context kind on plan",
				"plan", plan.String(), "context", ctx.String(), "types", termStrings(types))
		}
	}
}

// linkContextResource links the plan to each resource wrapped by the
// context, or to the rewritten context itself when it wraps none (the
// context has become the resource).
func (m *Migrator) linkContextResource(out *rdf.Graph, planV4 rdf.IRI, src *rdf.Graph, ctx rdf.Term, wrapped rdf.IRI, link rdf.IRI) {
	resources := src.Objects(ctx, wrapped)
	if len(resources) == 0 {
		out.Add(rdf.Triple{Subject: planV4, Predicate: link, Object: m.rewriter.Term(ctx)})
		return
	}
	for _, resource := range resources {
		out.Add(rdf.Triple{Subject: planV4, Predicate: link, Object: resource})
	}
}

func containsTerm(terms []rdf.Term, want rdf.Term) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}

func termStrings(terms []rdf.Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.String()
	}
	return out
}
