package shapes

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/clearhead-us/actions-vocabulary/rdf"
)

// CheckUUIDs verifies every value of the given predicate in the data graph
// parses as a UUID of version 7. Regex shapes can only check the surface
// form, so this runs as a separate semantic pass.
func CheckUUIDs(data *rdf.Graph, predicate rdf.IRI) *Report {
	report := &Report{}
	for _, tr := range data.Triples() {
		if tr.Predicate != predicate {
			continue
		}
		lit, ok := tr.Object.(rdf.Literal)
		if !ok {
			report.add(tr.Subject, predicate, "uuid", fmt.Sprintf("value %s is not a literal", tr.Object))
			continue
		}
		id, err := uuid.Parse(lit.Value)
		if err != nil {
			report.add(tr.Subject, predicate, "uuid", fmt.Sprintf("value %q is not a valid UUID", lit.Value))
			continue
		}
		if id.Version() != 7 {
			report.add(tr.Subject, predicate, "uuid",
				fmt.Sprintf("value %q is a version %d UUID, expected version 7", lit.Value, id.Version()))
		}
	}
	return report
}
