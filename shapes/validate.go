package shapes

import (
	"fmt"
	"strconv"

	"github.com/clearhead-us/actions-vocabulary/rdf"
)

// Result is one constraint violation against a focus node.
type Result struct {
	FocusNode  rdf.Term
	Path       rdf.IRI
	Constraint string
	Message    string
}

// Report collects every violation found during validation.
type Report struct {
	Results []Result
}

// Conforms reports whether the data graph passed without violations.
func (r *Report) Conforms() bool { return len(r.Results) == 0 }

func (r *Report) add(focus rdf.Term, path rdf.IRI, constraint, message string) {
	r.Results = append(r.Results, Result{
		FocusNode:  focus,
		Path:       path,
		Constraint: constraint,
		Message:    message,
	})
}

// Validate checks every focus node targeted by the shapes against the data
// graph. Targeting follows rdf:type plus rdfs:subClassOf closure over the
// data graph, so instances typed with a subclass of the target class are
// validated too.
func Validate(data *rdf.Graph, shapes []NodeShape) *Report {
	report := &Report{}
	sub := subclassClosure(data)
	for _, shape := range shapes {
		for _, focus := range targetNodes(data, shape.TargetClass, sub) {
			for _, prop := range shape.Properties {
				validateProperty(data, focus, prop, sub, report)
			}
		}
	}
	return report
}

// subclassClosure maps each class in the data graph to the set of its
// transitive superclasses, itself included.
func subclassClosure(g *rdf.Graph) map[rdf.IRI]map[rdf.IRI]bool {
	direct := make(map[rdf.IRI][]rdf.IRI)
	for _, tr := range g.Triples() {
		if tr.Predicate != rdf.RDFSSubClassOf {
			continue
		}
		child, ok := tr.Subject.(rdf.IRI)
		if !ok {
			continue
		}
		parent, ok := tr.Object.(rdf.IRI)
		if !ok {
			continue
		}
		direct[child] = append(direct[child], parent)
	}

	closure := make(map[rdf.IRI]map[rdf.IRI]bool)
	var walk func(class rdf.IRI) map[rdf.IRI]bool
	walk = func(class rdf.IRI) map[rdf.IRI]bool {
		if set, ok := closure[class]; ok {
			return set
		}
		set := map[rdf.IRI]bool{class: true}
		closure[class] = set
		for _, parent := range direct[class] {
			for ancestor := range walk(parent) {
				set[ancestor] = true
			}
		}
		return set
	}
	for class := range direct {
		walk(class)
	}
	return closure
}

func targetNodes(g *rdf.Graph, target rdf.IRI, sub map[rdf.IRI]map[rdf.IRI]bool) []rdf.Term {
	var nodes []rdf.Term
	seen := make(map[rdf.Term]bool)
	for _, tr := range g.Triples() {
		if tr.Predicate != rdf.RDFType || seen[tr.Subject] {
			continue
		}
		class, ok := tr.Object.(rdf.IRI)
		if !ok {
			continue
		}
		if class == target || sub[class][target] {
			seen[tr.Subject] = true
			nodes = append(nodes, tr.Subject)
		}
	}
	return nodes
}

func validateProperty(g *rdf.Graph, focus rdf.Term, prop PropertyShape, sub map[rdf.IRI]map[rdf.IRI]bool, report *Report) {
	values := g.Objects(focus, prop.Path)

	if prop.MinCount != nil && len(values) < *prop.MinCount {
		report.add(focus, prop.Path, "minCount",
			message(prop, fmt.Sprintf("expected at least %d value(s), found %d", *prop.MinCount, len(values))))
	}
	if prop.MaxCount != nil && len(values) > *prop.MaxCount {
		report.add(focus, prop.Path, "maxCount",
			message(prop, fmt.Sprintf("expected at most %d value(s), found %d", *prop.MaxCount, len(values))))
	}

	for _, value := range values {
		checkValue(g, focus, prop, value, sub, report)
	}
}

func checkValue(g *rdf.Graph, focus rdf.Term, prop PropertyShape, value rdf.Term, sub map[rdf.IRI]map[rdf.IRI]bool, report *Report) {
	if prop.NodeKind != "" && !matchesNodeKind(value, prop.NodeKind) {
		report.add(focus, prop.Path, "nodeKind",
			message(prop, fmt.Sprintf("value %s is not of node kind %s", value, prop.NodeKind.LocalName())))
	}

	if prop.Datatype != "" {
		lit, ok := value.(rdf.Literal)
		if !ok || literalDatatype(lit) != prop.Datatype {
			report.add(focus, prop.Path, "datatype",
				message(prop, fmt.Sprintf("value %s does not have datatype %s", value, prop.Datatype.LocalName())))
		}
	}

	if prop.Class != "" {
		if !hasClass(g, value, prop.Class, sub) {
			report.add(focus, prop.Path, "class",
				message(prop, fmt.Sprintf("value %s is not an instance of %s", value, prop.Class.LocalName())))
		}
	}

	if prop.Pattern != nil {
		lit, ok := value.(rdf.Literal)
		if !ok || !prop.Pattern.MatchString(lit.Value) {
			report.add(focus, prop.Path, "pattern",
				message(prop, fmt.Sprintf("value %s does not match pattern %q", value, prop.Pattern.String())))
		}
	}

	if len(prop.In) > 0 && !containsTerm(prop.In, value) {
		report.add(focus, prop.Path, "in",
			message(prop, fmt.Sprintf("value %s is not in the allowed set", value)))
	}

	if prop.MinInclusive != nil || prop.MaxInclusive != nil {
		checkRange(focus, prop, value, report)
	}
}

func checkRange(focus rdf.Term, prop PropertyShape, value rdf.Term, report *Report) {
	lit, ok := value.(rdf.Literal)
	if !ok {
		report.add(focus, prop.Path, "minInclusive",
			message(prop, fmt.Sprintf("value %s is not a numeric literal", value)))
		return
	}
	n, err := strconv.ParseFloat(lit.Value, 64)
	if err != nil {
		report.add(focus, prop.Path, "minInclusive",
			message(prop, fmt.Sprintf("value %q is not numeric", lit.Value)))
		return
	}
	if prop.MinInclusive != nil && n < *prop.MinInclusive {
		report.add(focus, prop.Path, "minInclusive",
			message(prop, fmt.Sprintf("value %v is below the minimum %v", n, *prop.MinInclusive)))
	}
	if prop.MaxInclusive != nil && n > *prop.MaxInclusive {
		report.add(focus, prop.Path, "maxInclusive",
			message(prop, fmt.Sprintf("value %v is above the maximum %v", n, *prop.MaxInclusive)))
	}
}

func matchesNodeKind(value rdf.Term, kind rdf.IRI) bool {
	switch kind {
	case rdf.SHNodeKindIRI:
		_, ok := value.(rdf.IRI)
		return ok
	case rdf.SHNodeKindLiteral:
		_, ok := value.(rdf.Literal)
		return ok
	case rdf.SHNodeKindBlankNode:
		_, ok := value.(rdf.BlankNode)
		return ok
	}
	return false
}

func hasClass(g *rdf.Graph, value rdf.Term, class rdf.IRI, sub map[rdf.IRI]map[rdf.IRI]bool) bool {
	for _, obj := range g.Objects(value, rdf.RDFType) {
		typ, ok := obj.(rdf.IRI)
		if !ok {
			continue
		}
		if typ == class || sub[typ][class] {
			return true
		}
	}
	return false
}

// literalDatatype resolves the effective datatype of a literal: plain
// strings are xsd:string, language-tagged strings keep rdf:langString
// semantics but are treated as xsd:string for validation purposes.
func literalDatatype(lit rdf.Literal) rdf.IRI {
	if lit.Datatype != "" {
		return lit.Datatype
	}
	return rdf.XSDString
}

func containsTerm(terms []rdf.Term, value rdf.Term) bool {
	for _, t := range terms {
		if t == value {
			return true
		}
	}
	return false
}

func message(prop PropertyShape, fallback string) string {
	if prop.Message != "" {
		return prop.Message
	}
	return fallback
}
