// Package schema derives downstream type definitions from the ontology and
// its shapes: JSON Schema (draft 2020-12) for runtime validation and JTD
// (RFC 8927) for code generation. The ontology contributes the property
// inventory per class through rdfs:domain and the subclass hierarchy; the
// shapes contribute required fields, cardinality, and value constraints.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/shapes"
)

// Generator holds the parsed ontology and shapes the schemas derive from.
type Generator struct {
	ontology *rdf.Graph
	shapes   []shapes.NodeShape
	baseID   string
}

// NewGenerator builds a generator. baseID is the IRI prefix used for $id
// values on the emitted schemas.
func NewGenerator(ontology *rdf.Graph, nodeShapes []shapes.NodeShape, baseID string) *Generator {
	return &Generator{
		ontology: ontology,
		shapes:   nodeShapes,
		baseID:   strings.TrimSuffix(baseID, "/"),
	}
}

// ClassSchema is a generated schema keyed by the short class name used in
// filenames and $defs.
type ClassSchema struct {
	Name   string
	Schema map[string]any
}

// GenerateJSONSchemas produces one JSON Schema per shape target class.
// Every schema is compiled before it is returned, so an error here means a
// generator bug rather than bad input data.
func (g *Generator) GenerateJSONSchemas() ([]ClassSchema, error) {
	var out []ClassSchema
	ancestors := g.ancestorClosure()
	for _, shape := range g.shapes {
		name := g.className(shape.TargetClass)
		doc := g.classSchema(shape, ancestors)
		if err := compileCheck(name, doc); err != nil {
			return nil, fmt.Errorf("schema for %s: %w", name, err)
		}
		out = append(out, ClassSchema{Name: name, Schema: doc})
	}
	return out, nil
}

// GenerateCombined wraps all per-class schemas into one document under
// $defs, mirroring the per-class output.
func (g *Generator) GenerateCombined() (map[string]any, error) {
	classSchemas, err := g.GenerateJSONSchemas()
	if err != nil {
		return nil, err
	}
	return g.combine(classSchemas)
}

// combine builds the $defs document from already-generated class schemas.
func (g *Generator) combine(classSchemas []ClassSchema) (map[string]any, error) {
	defs := make(map[string]any, len(classSchemas))
	for _, cs := range classSchemas {
		def := make(map[string]any, len(cs.Schema))
		for k, v := range cs.Schema {
			if k == "$schema" || k == "$id" {
				continue
			}
			def[k] = v
		}
		defs[cs.Name] = def
	}
	doc := map[string]any{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"$id":         g.baseID + "/actions-combined.schema.json",
		"title":       "Actions Vocabulary JSON Schemas",
		"description": "JSON Schema definitions generated from the Actions OWL ontology and SHACL shapes",
		"$defs":       defs,
	}
	if err := compileCheck("actions-combined", doc); err != nil {
		return nil, fmt.Errorf("combined schema: %w", err)
	}
	return doc, nil
}

// WriteJSONSchemas writes one <name>.schema.json per class plus the
// combined document into dir, returning the per-class schemas it wrote so
// callers can report on them without regenerating.
func (g *Generator) WriteJSONSchemas(dir string) ([]ClassSchema, error) {
	classSchemas, err := g.GenerateJSONSchemas()
	if err != nil {
		return nil, err
	}
	combined, err := g.combine(classSchemas)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating schema directory: %w", err)
	}
	for _, cs := range classSchemas {
		path := filepath.Join(dir, strings.ToLower(cs.Name)+".schema.json")
		if err := writeJSON(path, cs.Schema); err != nil {
			return nil, err
		}
	}
	if err := writeJSON(filepath.Join(dir, "actions-combined.schema.json"), combined); err != nil {
		return nil, err
	}
	return classSchemas, nil
}

func (g *Generator) classSchema(shape shapes.NodeShape, ancestors map[rdf.IRI]map[rdf.IRI]bool) map[string]any {
	name := g.className(shape.TargetClass)
	properties := make(map[string]any)
	var required []string

	for _, prop := range g.classProperties(shape.TargetClass, ancestors) {
		properties[prop.LocalName()] = g.propertySchema(prop)
	}

	for _, ps := range shape.Properties {
		propName := ps.Path.LocalName()
		base, ok := properties[propName].(map[string]any)
		if !ok {
			base = map[string]any{}
			properties[propName] = base
		}
		applyConstraints(base, ps)
		if ps.MinCount != nil && *ps.MinCount > 0 {
			required = append(required, propName)
		}
	}

	doc := map[string]any{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"$id":         fmt.Sprintf("%s/%s.schema.json", g.baseID, strings.ToLower(name)),
		"type":        "object",
		"title":       name,
		"description": g.comment(shape.TargetClass),
		"properties":  properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

// classProperties returns every ontology property whose domain is the class
// or one of its ancestors, in graph insertion order.
func (g *Generator) classProperties(class rdf.IRI, ancestors map[rdf.IRI]map[rdf.IRI]bool) []rdf.IRI {
	classes := map[rdf.IRI]bool{class: true}
	for ancestor := range ancestors[class] {
		classes[ancestor] = true
	}

	var props []rdf.IRI
	seen := make(map[rdf.IRI]bool)
	for _, tr := range g.ontology.Triples() {
		if tr.Predicate != rdf.RDFSDomain {
			continue
		}
		prop, ok := tr.Subject.(rdf.IRI)
		if !ok || seen[prop] {
			continue
		}
		domain, ok := tr.Object.(rdf.IRI)
		if !ok || !classes[domain] {
			continue
		}
		if !g.isProperty(prop) {
			continue
		}
		seen[prop] = true
		props = append(props, prop)
	}
	return props
}

func (g *Generator) isProperty(subject rdf.IRI) bool {
	return g.ontology.Has(rdf.Triple{Subject: subject, Predicate: rdf.RDFType, Object: rdf.OWLDatatypeProperty}) ||
		g.ontology.Has(rdf.Triple{Subject: subject, Predicate: rdf.RDFType, Object: rdf.OWLObjectProperty})
}

func (g *Generator) propertySchema(prop rdf.IRI) map[string]any {
	doc := map[string]any{
		"title": prop.LocalName(),
	}
	if comment := g.comment(prop); comment != "" {
		doc["description"] = comment
	}
	rangeIRI, _ := g.ontology.Object(prop, rdf.RDFSRange).(rdf.IRI)
	for k, v := range jsonType(rangeIRI) {
		doc[k] = v
	}
	return doc
}

// jsonType maps an rdfs:range to a JSON Schema type. Object-property ranges
// become plain IRI strings so each per-class schema stays self-contained.
func jsonType(rangeIRI rdf.IRI) map[string]any {
	switch rangeIRI {
	case rdf.XSDString, "":
		return map[string]any{"type": "string"}
	case rdf.XSDDateTime:
		return map[string]any{"type": "string", "format": "date-time"}
	case rdf.XSDDate:
		return map[string]any{"type": "string", "format": "date"}
	case rdf.XSDInteger:
		return map[string]any{"type": "integer"}
	case rdf.XSDBoolean:
		return map[string]any{"type": "boolean"}
	case rdf.XSDDecimal, rdf.XSDDouble:
		return map[string]any{"type": "number"}
	}
	if strings.HasPrefix(string(rangeIRI), rdf.XSDNS) {
		return map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":        "string",
		"format":      "iri",
		"description": "Reference to " + rangeIRI.LocalName(),
	}
}

func applyConstraints(doc map[string]any, ps shapes.PropertyShape) {
	if ps.Datatype != "" {
		for k, v := range jsonType(ps.Datatype) {
			doc[k] = v
		}
	}
	if ps.Pattern != nil {
		doc["pattern"] = ps.Pattern.String()
	}
	if ps.MinInclusive != nil {
		doc["minimum"] = *ps.MinInclusive
	}
	if ps.MaxInclusive != nil {
		doc["maximum"] = *ps.MaxInclusive
	}
	if enum := literalValues(ps.In); len(enum) > 0 {
		doc["enum"] = enum
	}

	// Multi-valued properties become arrays of the base item schema.
	if ps.MaxCount != nil && *ps.MaxCount > 1 {
		item := make(map[string]any)
		for k, v := range doc {
			if k == "title" || k == "description" {
				continue
			}
			item[k] = v
			delete(doc, k)
		}
		doc["type"] = "array"
		doc["items"] = item
		doc["maxItems"] = *ps.MaxCount
		if ps.MinCount != nil {
			doc["minItems"] = *ps.MinCount
		}
	}
}

func literalValues(terms []rdf.Term) []any {
	var out []any
	for _, t := range terms {
		if lit, ok := t.(rdf.Literal); ok {
			out = append(out, lit.Value)
		}
	}
	return out
}

// className resolves the short name for a class: its rdfs:label when the
// ontology carries one, otherwise the IRI local name. CCO classes use
// opaque ont-number local names, so labels matter there.
func (g *Generator) className(class rdf.IRI) string {
	if label, ok := g.ontology.Object(class, rdf.RDFSLabel).(rdf.Literal); ok {
		return strings.ReplaceAll(label.Value, " ", "")
	}
	return class.LocalName()
}

func (g *Generator) comment(subject rdf.IRI) string {
	if c, ok := g.ontology.Object(subject, rdf.RDFSComment).(rdf.Literal); ok {
		return c.Value
	}
	return ""
}

// ancestorClosure maps each class to its transitive rdfs:subClassOf
// superclasses.
func (g *Generator) ancestorClosure() map[rdf.IRI]map[rdf.IRI]bool {
	direct := make(map[rdf.IRI][]rdf.IRI)
	for _, tr := range g.ontology.Triples() {
		if tr.Predicate != rdf.RDFSSubClassOf {
			continue
		}
		child, okC := tr.Subject.(rdf.IRI)
		parent, okP := tr.Object.(rdf.IRI)
		if okC && okP {
			direct[child] = append(direct[child], parent)
		}
	}

	closure := make(map[rdf.IRI]map[rdf.IRI]bool)
	var walk func(class rdf.IRI) map[rdf.IRI]bool
	walk = func(class rdf.IRI) map[rdf.IRI]bool {
		if set, ok := closure[class]; ok {
			return set
		}
		set := map[rdf.IRI]bool{}
		closure[class] = set
		for _, parent := range direct[class] {
			set[parent] = true
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

func compileCheck(name string, doc map[string]any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = jsonschema.CompileString(name+".schema.json", string(raw))
	return err
}

func writeJSON(path string, doc any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
