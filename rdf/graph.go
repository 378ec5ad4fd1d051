package rdf

// Graph is a set of triples with preserved insertion order and namespace
// prefix bindings. Duplicate triples collapse; order only matters for
// deterministic serialization.
type Graph struct {
	triples []Triple
	seen    map[Triple]struct{}

	prefixOrder []string
	prefixes    map[string]string
}

// NewGraph returns an empty graph with no prefix bindings.
func NewGraph() *Graph {
	return &Graph{
		seen:     make(map[Triple]struct{}),
		prefixes: make(map[string]string),
	}
}

// Bind associates a prefix with a namespace for serialization. Rebinding an
// existing prefix replaces its namespace.
func (g *Graph) Bind(prefix, namespace string) {
	if _, ok := g.prefixes[prefix]; !ok {
		g.prefixOrder = append(g.prefixOrder, prefix)
	}
	g.prefixes[prefix] = namespace
}

// Namespace returns the namespace bound to prefix, if any.
func (g *Graph) Namespace(prefix string) (string, bool) {
	ns, ok := g.prefixes[prefix]
	return ns, ok
}

// Prefixes returns prefix/namespace pairs in binding order.
func (g *Graph) Prefixes() [][2]string {
	pairs := make([][2]string, 0, len(g.prefixOrder))
	for _, p := range g.prefixOrder {
		pairs = append(pairs, [2]string{p, g.prefixes[p]})
	}
	return pairs
}

// Add inserts a triple, reporting whether it was not already present.
func (g *Graph) Add(t Triple) bool {
	if _, ok := g.seen[t]; ok {
		return false
	}
	g.seen[t] = struct{}{}
	g.triples = append(g.triples, t)
	return true
}

// AddGraph unions every triple and prefix binding of other into g.
func (g *Graph) AddGraph(other *Graph) {
	if other == nil {
		return
	}
	for _, pair := range other.Prefixes() {
		if _, ok := g.prefixes[pair[0]]; !ok {
			g.Bind(pair[0], pair[1])
		}
	}
	for _, t := range other.triples {
		g.Add(t)
	}
}

// Has reports whether the triple is present.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.seen[t]
	return ok
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns the triples in insertion order. The slice is shared; do
// not mutate it.
func (g *Graph) Triples() []Triple { return g.triples }

// Objects returns every object of triples matching (subject, predicate), in
// insertion order.
func (g *Graph) Objects(subject, predicate Term) []Term {
	var out []Term
	for _, t := range g.triples {
		if t.Subject == subject && t.Predicate == predicate {
			out = append(out, t.Object)
		}
	}
	return out
}

// Object returns the first object matching (subject, predicate), or nil.
func (g *Graph) Object(subject, predicate Term) Term {
	for _, t := range g.triples {
		if t.Subject == subject && t.Predicate == predicate {
			return t.Object
		}
	}
	return nil
}

// Subjects returns every distinct subject of triples matching
// (predicate, object), in insertion order.
func (g *Graph) Subjects(predicate, object Term) []Term {
	var out []Term
	seen := make(map[Term]struct{})
	for _, t := range g.triples {
		if t.Predicate == predicate && t.Object == object {
			if _, ok := seen[t.Subject]; ok {
				continue
			}
			seen[t.Subject] = struct{}{}
			out = append(out, t.Subject)
		}
	}
	return out
}

// PredObj is one (predicate, object) pair attached to a subject.
type PredObj struct {
	Predicate Term
	Object    Term
}

// PredicateObjects returns every (predicate, object) pair for the subject,
// in insertion order.
func (g *Graph) PredicateObjects(subject Term) []PredObj {
	var out []PredObj
	for _, t := range g.triples {
		if t.Subject == subject {
			out = append(out, PredObj{Predicate: t.Predicate, Object: t.Object})
		}
	}
	return out
}

// SubjectsOfType returns every distinct subject carrying an rdf:type
// assertion for class.
func (g *Graph) SubjectsOfType(class Term) []Term {
	return g.Subjects(RDFType, class)
}

// List resolves an RDF collection (rdf:first/rdf:rest chain) starting at
// head into its member terms. A head of rdf:nil yields an empty list.
func (g *Graph) List(head Term) []Term {
	var out []Term
	for head != nil && head != Term(RDFNil) {
		first := g.Object(head, RDFFirst)
		if first == nil {
			break
		}
		out = append(out, first)
		head = g.Object(head, RDFRest)
	}
	return out
}

// Equal reports whether both graphs contain exactly the same triple set,
// ignoring insertion order and prefix bindings.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || len(g.triples) != len(other.triples) {
		return false
	}
	for t := range g.seen {
		if _, ok := other.seen[t]; !ok {
			return false
		}
	}
	return true
}
