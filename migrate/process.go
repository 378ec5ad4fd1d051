package migrate

import (
	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/cco"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v3"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v4"
)

// TransformProcess migrates one v3 ActionProcess to a v4 cco PlannedAct.
func (m *Migrator) TransformProcess(src *rdf.Graph, process rdf.IRI) *rdf.Graph {
	out := rdf.NewGraph()
	bindOutputPrefixes(out)

	processV4 := m.rewriter.IRI(process)
	out.Add(rdf.Triple{Subject: processV4, Predicate: rdf.RDFType, Object: cco.PlannedAct})

	m.copyProperties(out, processV4, src, process, skip(
		v3.HasState,
		v3.PrescribedBy,
		rdf.RDFType,
	))

	for _, po := range src.PredicateObjects(process) {
		switch po.Predicate {
		case rdf.Term(v3.HasState):
			// State individuals become phase individuals by reusing the
			// local name inside the v4 namespace. The 1:1 name
			// correspondence is assumed, not validated: a state whose
			// name has no v4 phase counterpart yields a dangling IRI.
			iri, ok := po.Object.(rdf.IRI)
			if !ok {
				m.logger.Warn("non-IRI state on process, no phase emitted",
					"process", process.String(), "state", po.Object.String())
				continue
			}
			phase := rdf.IRI(v4.Namespace + iri.LocalName())
			m.logger.Debug("state mapped to phase",
				"process", process.String(), "phase", string(phase))
			out.Add(rdf.Triple{Subject: processV4, Predicate: v4.HasPhase, Object: phase})
		case rdf.Term(v3.PrescribedBy):
			// v4 models the relation from the prescriber's perspective:
			// the plan prescribes the act, so the direction inverts.
			planV4 := m.rewriter.Term(po.Object)
			out.Add(rdf.Triple{Subject: planV4, Predicate: v4.Prescribes, Object: processV4})
		}
	}

	return out
}
