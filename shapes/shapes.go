// Package shapes implements the SHACL subset used for Actions Vocabulary
// data-quality validation: node shapes targeting a class, with property
// constraints on cardinality, datatype, value class, node kind, pattern,
// enumerated values, and inclusive ranges. SPARQL-based constraints are out
// of scope.
package shapes

import (
	"fmt"
	"regexp"

	"github.com/clearhead-us/actions-vocabulary/rdf"
)

// PropertyShape is one sh:property constraint block.
type PropertyShape struct {
	Path         rdf.IRI
	MinCount     *int
	MaxCount     *int
	Datatype     rdf.IRI
	Class        rdf.IRI
	NodeKind     rdf.IRI
	Pattern      *regexp.Regexp
	In           []rdf.Term
	MinInclusive *float64
	MaxInclusive *float64
	Message      string
}

// NodeShape is a sh:NodeShape with its target class and property
// constraints.
type NodeShape struct {
	ID          rdf.Term
	TargetClass rdf.IRI
	Properties  []PropertyShape
}

// ParseShapes extracts every node shape with a target class from a shapes
// graph. Shapes without sh:targetClass are ignored; malformed constraint
// values are reported as errors rather than silently skipped.
func ParseShapes(g *rdf.Graph) ([]NodeShape, error) {
	var shapes []NodeShape
	for _, subject := range g.SubjectsOfType(rdf.SHNodeShape) {
		target, ok := g.Object(subject, rdf.SHTargetClass).(rdf.IRI)
		if !ok {
			continue
		}
		shape := NodeShape{ID: subject, TargetClass: target}
		for _, prop := range g.Objects(subject, rdf.SHProperty) {
			ps, err := parsePropertyShape(g, prop)
			if err != nil {
				return nil, fmt.Errorf("shape %s: %w", subject, err)
			}
			shape.Properties = append(shape.Properties, ps)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

func parsePropertyShape(g *rdf.Graph, node rdf.Term) (PropertyShape, error) {
	var ps PropertyShape

	path, ok := g.Object(node, rdf.SHPath).(rdf.IRI)
	if !ok {
		return ps, fmt.Errorf("property shape %s has no sh:path", node)
	}
	ps.Path = path

	var err error
	if ps.MinCount, err = intConstraint(g, node, rdf.SHMinCount); err != nil {
		return ps, err
	}
	if ps.MaxCount, err = intConstraint(g, node, rdf.SHMaxCount); err != nil {
		return ps, err
	}
	if ps.MinInclusive, err = floatConstraint(g, node, rdf.SHMinInclusive); err != nil {
		return ps, err
	}
	if ps.MaxInclusive, err = floatConstraint(g, node, rdf.SHMaxInclusive); err != nil {
		return ps, err
	}

	if dt, ok := g.Object(node, rdf.SHDatatype).(rdf.IRI); ok {
		ps.Datatype = dt
	}
	if class, ok := g.Object(node, rdf.SHClass).(rdf.IRI); ok {
		ps.Class = class
	}
	if kind, ok := g.Object(node, rdf.SHNodeKind).(rdf.IRI); ok {
		ps.NodeKind = kind
	}
	if msg, ok := g.Object(node, rdf.SHMessage).(rdf.Literal); ok {
		ps.Message = msg.Value
	}
	if pattern, ok := g.Object(node, rdf.SHPattern).(rdf.Literal); ok {
		re, err := regexp.Compile(pattern.Value)
		if err != nil {
			return ps, fmt.Errorf("path %s: invalid sh:pattern %q: %w", path, pattern.Value, err)
		}
		ps.Pattern = re
	}
	if head := g.Object(node, rdf.SHIn); head != nil {
		ps.In = g.List(head)
	}
	return ps, nil
}

func intConstraint(g *rdf.Graph, node rdf.Term, predicate rdf.IRI) (*int, error) {
	lit, ok := g.Object(node, predicate).(rdf.Literal)
	if !ok {
		return nil, nil
	}
	var n int
	if _, err := fmt.Sscanf(lit.Value, "%d", &n); err != nil {
		return nil, fmt.Errorf("%s: non-integer value %q", predicate.LocalName(), lit.Value)
	}
	return &n, nil
}

func floatConstraint(g *rdf.Graph, node rdf.Term, predicate rdf.IRI) (*float64, error) {
	lit, ok := g.Object(node, predicate).(rdf.Literal)
	if !ok {
		return nil, nil
	}
	var f float64
	if _, err := fmt.Sscanf(lit.Value, "%g", &f); err != nil {
		return nil, fmt.Errorf("%s: non-numeric value %q", predicate.LocalName(), lit.Value)
	}
	return &f, nil
}
