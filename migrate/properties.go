package migrate

import (
	"strings"

	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v3"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v4"
)

// dropped is the rename-table sentinel for predicates removed in v4.
const dropped = rdf.IRI("")

// propertyRenames is the static v3-to-v4 predicate rename table. Predicates
// absent from the table but inside the v3 namespace are auto-mapped by
// namespace substitution (see predicateClass).
var propertyRenames = map[rdf.IRI]rdf.IRI{
	v3.HasPriority:            v4.HasPriority,
	v3.HasUUID:                v4.HasUUID,
	v3.HasDoDateTime:          v4.HasDoDateTime,
	v3.HasDueDateTime:         v4.HasDueDateTime,
	v3.HasDurationMinutes:     v4.HasDurationMinutes,
	v3.HasRecurrenceFrequency: v4.HasRecurrenceFrequency,
	v3.HasRecurrenceInterval:  v4.HasRecurrenceInterval,
	v3.HasRecurrenceUntil:     v4.HasRecurrenceUntil,
	v3.HasRecurrenceCount:     v4.HasRecurrenceCount,
	v3.ByDay:                  v4.ByDay,
	v3.ByMonth:                v4.ByMonth,
	v3.ByMonthDay:             v4.ByMonthDay,
	v3.AssignedToAgent:        v4.AssignedToAgent,
	v3.PerformedBy:            v4.PerformedBy,
	v3.HasCompletedDateTime:   v4.HasCompletedDateTime,
	v3.HasDepth:               v4.HasDepth,
}

// predicateClass is the explicit classification of a source predicate,
// replacing scattered namespace substring checks with a single branch.
type predicateClass int

const (
	// predicateRenamed has an entry in the rename table.
	predicateRenamed predicateClass = iota
	// predicateDropped maps to the drop sentinel.
	predicateDropped
	// predicateType is the rdf:type assertion; the caller assigns the new
	// type explicitly.
	predicateType
	// predicateSourceNamespace is a v3 predicate with no table entry; it
	// is migrated forward by namespace substitution.
	predicateSourceNamespace
	// predicateForeign belongs to a shared vocabulary (schema.org, RDFS,
	// CCO) and is copied unchanged.
	predicateForeign
)

func classifyPredicate(p rdf.IRI) predicateClass {
	if mapped, ok := propertyRenames[p]; ok {
		if mapped == dropped {
			return predicateDropped
		}
		return predicateRenamed
	}
	if p == rdf.RDFType {
		return predicateType
	}
	if strings.HasPrefix(string(p), v3.Namespace) {
		return predicateSourceNamespace
	}
	return predicateForeign
}

// skipSet is a caller-supplied set of predicates to suppress entirely,
// used when a predicate needs bespoke structural handling elsewhere.
type skipSet map[rdf.IRI]struct{}

func skip(predicates ...rdf.IRI) skipSet {
	s := make(skipSet, len(predicates))
	for _, p := range predicates {
		s[p] = struct{}{}
	}
	return s
}

// copyProperties maps every (predicate, object) pair of the source subject
// onto the target subject and accumulates the result into out. Renamed
// predicates follow the table, unmapped v3 predicates are rewritten into
// the v4 namespace (forward-migration policy), and foreign predicates are
// copied unchanged. Objects are never rewritten here.
func (m *Migrator) copyProperties(out *rdf.Graph, target rdf.IRI, src *rdf.Graph, subject rdf.Term, skips skipSet) {
	for _, po := range src.PredicateObjects(subject) {
		pred, ok := po.Predicate.(rdf.IRI)
		if !ok {
			continue
		}
		if _, skipped := skips[pred]; skipped {
			continue
		}
		switch classifyPredicate(pred) {
		case predicateRenamed:
			out.Add(rdf.Triple{Subject: target, Predicate: propertyRenames[pred], Object: po.Object})
		case predicateDropped, predicateType:
			// Dropped predicates vanish; the caller assigns the type.
		case predicateSourceNamespace:
			mapped := m.rewriter.IRI(pred)
			m.logger.Warn("auto-mapping unmapped v3 predicate",
				"predicate", string(pred), "mapped", string(mapped))
			out.Add(rdf.Triple{Subject: target, Predicate: mapped, Object: po.Object})
		case predicateForeign:
			out.Add(rdf.Triple{Subject: target, Predicate: pred, Object: po.Object})
		}
	}
}
