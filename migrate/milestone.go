package migrate

import (
	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v3"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v4"
)

// TransformMilestone migrates one v3 Milestone. This is a genuine
// reclassification, not a rename: the v3 class sits under RootActionPlan
// while the v4 class sits under the Directive hierarchy, so milestones do
// not go through the plan transformer.
func (m *Migrator) TransformMilestone(src *rdf.Graph, milestone rdf.IRI) *rdf.Graph {
	out := rdf.NewGraph()
	bindOutputPrefixes(out)

	milestoneV4 := m.rewriter.IRI(milestone)
	out.Add(rdf.Triple{Subject: milestoneV4, Predicate: rdf.RDFType, Object: v4.ClassMilestone})

	m.copyProperties(out, milestoneV4, src, milestone, skip(
		v3.ParentAction,
		v3.HasProject,
		rdf.RDFType,
	))

	// A milestone tracks progress toward the objective rather than
	// pursuing it, so it links via marksProgressToward instead of
	// hasObjective. The identifier scheme is shared with the plan
	// transformer, so a plan and a milestone with the same project label
	// reference the same objective.
	for _, project := range src.Objects(milestone, v3.HasProject) {
		objective := ObjectiveIRI(literalText(project))
		out.Add(rdf.Triple{Subject: milestoneV4, Predicate: v4.MarksProgressToward, Object: objective})
	}

	return out
}
