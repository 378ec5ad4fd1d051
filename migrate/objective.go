package migrate

import (
	"strings"

	"github.com/clearhead-us/actions-vocabulary/rdf"
)

// objectiveScheme is the IRI scheme for objectives synthesized from project
// labels.
const objectiveScheme = "urn:objective:"

// ObjectiveSlug normalizes a free-text project label into a deduplication
// key: lowercased, trimmed, with spaces and slashes replaced by
// underscores. Labels differing only in case, surrounding whitespace, or
// separator choice produce the same slug.
func ObjectiveSlug(label string) string {
	s := strings.TrimSpace(strings.ToLower(label))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, `\`, "_")
	return s
}

// ObjectiveIRI derives the objective identifier for a project label.
// Repeated labels collapse onto one objective because the derivation is
// deterministic.
func ObjectiveIRI(label string) rdf.IRI {
	return rdf.IRI(objectiveScheme + ObjectiveSlug(label))
}

// literalText returns the lexical text of a term: the value for literals,
// the identifier for everything else.
func literalText(t rdf.Term) string {
	if lit, ok := t.(rdf.Literal); ok {
		return lit.Value
	}
	return t.String()
}
