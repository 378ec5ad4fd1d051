// Package migrate implements the one-shot batch conversion of Actions
// Vocabulary data from v3 to v4.
//
// The engine never mutates the source graph: each entity transformer reads
// the source and returns a fragment graph, and the orchestrator unions the
// fragments into one output accumulator. Re-running a migration on the same
// input yields an equal triple set.
package migrate

import (
	"strings"

	"github.com/clearhead-us/actions-vocabulary/rdf"
)

// Rewriter rewrites identifiers between versioned vocabulary namespaces by
// substituting the version marker segment, preserving the local name.
type Rewriter struct {
	from string
	to   string
}

// NewRewriter returns a rewriter substituting the from marker with to,
// for example "/v3#" to "/v4#".
func NewRewriter(from, to string) Rewriter {
	return Rewriter{from: from, to: to}
}

// V3ToV4 returns the rewriter for the v3 to v4 namespace markers.
func V3ToV4() Rewriter {
	return NewRewriter("/v3#", "/v4#")
}

// IRI rewrites a single identifier. An IRI that does not contain the source
// marker is returned unchanged, so foreign-namespace identifiers pass
// through untouched and rewriting is idempotent (the marker disappears
// after the first substitution).
func (r Rewriter) IRI(iri rdf.IRI) rdf.IRI {
	return rdf.IRI(strings.ReplaceAll(string(iri), r.from, r.to))
}

// Term rewrites IRI terms and passes every other term through unchanged.
func (r Rewriter) Term(t rdf.Term) rdf.Term {
	if iri, ok := t.(rdf.IRI); ok {
		return r.IRI(iri)
	}
	return t
}
