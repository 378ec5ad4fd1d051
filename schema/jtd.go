package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/shapes"
)

// GenerateJTD produces one JTD (RFC 8927) definition per vocabulary class.
// JTD targets code generation rather than validation, so the mapping favors
// precise machine types: bounded integers become uint8/uint16, dateTime
// becomes timestamp, sh:in value sets become enums. Classes imported from
// upper ontologies are skipped, they have no JSON-facing fields of their
// own.
func (g *Generator) GenerateJTD() []ClassSchema {
	var out []ClassSchema
	ancestors := g.ancestorClosure()
	for _, class := range g.vocabularyClasses() {
		out = append(out, ClassSchema{
			Name:   g.className(class),
			Schema: g.jtdClassSchema(class, ancestors),
		})
	}
	return out
}

// GenerateJTDCombined nests every class definition under "definitions".
func (g *Generator) GenerateJTDCombined(version string) map[string]any {
	defs := make(map[string]any)
	for _, cs := range g.GenerateJTD() {
		defs[cs.Name] = cs.Schema
	}
	return map[string]any{
		"metadata": map[string]any{
			"description": "Actions Vocabulary JTD type definitions",
			"version":     version,
		},
		"definitions": defs,
	}
}

// WriteJTD writes one <name>.jtd.json per class plus the combined document
// into dir.
func (g *Generator) WriteJTD(dir, version string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating jtd directory: %w", err)
	}
	for _, cs := range g.GenerateJTD() {
		path := filepath.Join(dir, strings.ToLower(cs.Name)+".jtd.json")
		if err := writeJSON(path, cs.Schema); err != nil {
			return err
		}
	}
	return writeJSON(filepath.Join(dir, "actions-combined.jtd.json"), g.GenerateJTDCombined(""))
}

// vocabularyClasses lists the OWL classes declared in the vocabulary's own
// namespace, excluding imports from BFO, CCO, and schema.org.
func (g *Generator) vocabularyClasses() []rdf.IRI {
	var out []rdf.IRI
	for _, subject := range g.ontology.SubjectsOfType(rdf.OWLClass) {
		class, ok := subject.(rdf.IRI)
		if !ok || importedClass(class) {
			continue
		}
		out = append(out, class)
	}
	return out
}

func importedClass(class rdf.IRI) bool {
	s := string(class)
	return strings.Contains(s, "commoncoreontologies.org") ||
		strings.Contains(s, "basic-formal-ontology") ||
		strings.Contains(s, "purl.obolibrary.org") ||
		strings.HasPrefix(s, rdf.SchemaNS)
}

func (g *Generator) jtdClassSchema(class rdf.IRI, ancestors map[rdf.IRI]map[rdf.IRI]bool) map[string]any {
	required := make(map[string]any)
	optional := make(map[string]any)

	constraints := g.shapeConstraints(class, ancestors)
	for _, prop := range g.classProperties(class, ancestors) {
		name := prop.LocalName()
		ps := constraints[prop]
		typ := g.jtdType(prop, ps)
		if ps != nil && ps.MinCount != nil && *ps.MinCount > 0 {
			required[name] = typ
		} else {
			optional[name] = typ
		}
	}

	doc := map[string]any{
		"metadata": map[string]any{
			"description": g.jtdDescription(class),
		},
	}
	if len(required) > 0 {
		doc["properties"] = required
	}
	if len(optional) > 0 {
		doc["optionalProperties"] = optional
	}
	return doc
}

// shapeConstraints indexes the property shapes that apply to a class by
// property path. Shapes targeting an ancestor class apply to the subclass
// as well, matching SHACL targeting semantics.
func (g *Generator) shapeConstraints(class rdf.IRI, ancestors map[rdf.IRI]map[rdf.IRI]bool) map[rdf.IRI]*shapes.PropertyShape {
	out := make(map[rdf.IRI]*shapes.PropertyShape)
	for i := range g.shapes {
		target := g.shapes[i].TargetClass
		if target != class && !ancestors[class][target] {
			continue
		}
		for j := range g.shapes[i].Properties {
			ps := &g.shapes[i].Properties[j]
			out[ps.Path] = ps
		}
	}
	return out
}

func (g *Generator) jtdType(prop rdf.IRI, ps *shapes.PropertyShape) map[string]any {
	if ps != nil {
		if enum := literalValues(ps.In); len(enum) > 0 {
			return map[string]any{"enum": enum}
		}
	}

	rangeIRI, _ := g.ontology.Object(prop, rdf.RDFSRange).(rdf.IRI)
	base := jtdScalar(rangeIRI, ps)

	// Non-functional properties without an explicit single-value cap map
	// to arrays.
	single := g.ontology.Has(rdf.Triple{Subject: prop, Predicate: rdf.RDFType, Object: rdf.OWLFunctionalProperty}) ||
		(ps != nil && ps.MaxCount != nil && *ps.MaxCount == 1)
	if single {
		return base
	}
	return map[string]any{"elements": base}
}

// jtdScalar picks the narrowest JTD type that fits the declared range. A
// shape with inclusive bounds inside 0..255 narrows xsd:integer to uint8;
// inside 0..65535 to uint16.
func jtdScalar(rangeIRI rdf.IRI, ps *shapes.PropertyShape) map[string]any {
	switch rangeIRI {
	case rdf.XSDDateTime:
		return map[string]any{"type": "timestamp"}
	case rdf.XSDBoolean:
		return map[string]any{"type": "boolean"}
	case rdf.XSDDecimal:
		return map[string]any{"type": "float32"}
	case rdf.XSDDouble:
		return map[string]any{"type": "float64"}
	case rdf.XSDInteger:
		if ps != nil && ps.MinInclusive != nil && ps.MaxInclusive != nil && *ps.MinInclusive >= 0 {
			if *ps.MaxInclusive <= 255 {
				return map[string]any{"type": "uint8"}
			}
			if *ps.MaxInclusive <= 65535 {
				return map[string]any{"type": "uint16"}
			}
		}
		return map[string]any{"type": "int32"}
	}
	return map[string]any{"type": "string"}
}

func (g *Generator) jtdDescription(class rdf.IRI) string {
	if c := g.comment(class); c != "" {
		return c
	}
	return g.className(class) + " from the Actions Vocabulary"
}
