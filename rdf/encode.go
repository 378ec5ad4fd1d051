package rdf

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// FormatInfo provides metadata about an output format.
type FormatInfo struct {
	Name      Format
	MIMEType  string
	Extension string
}

// Formats lists the supported serialization formats.
var Formats = map[Format]FormatInfo{
	FormatTurtle:   {Name: FormatTurtle, MIMEType: "text/turtle", Extension: ".ttl"},
	FormatNTriples: {Name: FormatNTriples, MIMEType: "application/n-triples", Extension: ".nt"},
	FormatJSONLD:   {Name: FormatJSONLD, MIMEType: "application/ld+json", Extension: ".jsonld"},
}

// Serialize renders the graph in the requested format. Output is
// deterministic: subjects appear in first-seen order, predicates and objects
// in insertion order.
func (g *Graph) Serialize(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return g.toTurtle(), nil
	case FormatNTriples:
		return g.toNTriples(), nil
	case FormatJSONLD:
		return g.toJSONLD()
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile serializes the graph to path in the given format.
func (g *Graph) WriteFile(path string, format Format) error {
	out, err := g.Serialize(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// subjectGroups returns subjects in first-seen order with their predicates
// grouped, predicates in first-seen order per subject.
func (g *Graph) subjectGroups() ([]Term, map[Term][]Term, map[Term]map[Term][]Term) {
	var subjects []Term
	predOrder := make(map[Term][]Term)
	objects := make(map[Term]map[Term][]Term)
	for _, t := range g.triples {
		if _, ok := objects[t.Subject]; !ok {
			subjects = append(subjects, t.Subject)
			objects[t.Subject] = make(map[Term][]Term)
		}
		if _, ok := objects[t.Subject][t.Predicate]; !ok {
			predOrder[t.Subject] = append(predOrder[t.Subject], t.Predicate)
		}
		objects[t.Subject][t.Predicate] = append(objects[t.Subject][t.Predicate], t.Object)
	}
	return subjects, predOrder, objects
}

// qname compacts an IRI against the graph's prefix bindings, preferring the
// longest matching namespace.
func (g *Graph) qname(iri IRI) (string, bool) {
	s := string(iri)
	best, bestNS := "", ""
	for _, prefix := range g.prefixOrder {
		ns := g.prefixes[prefix]
		if strings.HasPrefix(s, ns) && len(ns) > len(bestNS) {
			best, bestNS = prefix, ns
		}
	}
	if bestNS == "" {
		return "", false
	}
	local := s[len(bestNS):]
	if local == "" || !isPlainLocalName(local) {
		return "", false
	}
	return best + ":" + local, true
}

func isPlainLocalName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

func (g *Graph) turtleTerm(t Term) string {
	switch v := t.(type) {
	case IRI:
		if v == RDFType {
			return "a"
		}
		if q, ok := g.qname(v); ok {
			return q
		}
		return "<" + string(v) + ">"
	case BlankNode:
		return "_:" + string(v)
	case Literal:
		return g.turtleLiteral(v)
	default:
		return ""
	}
}

func (g *Graph) turtleLiteral(l Literal) string {
	switch l.Datatype {
	case XSDInteger, XSDDecimal, XSDDouble, XSDBoolean:
		return l.Value
	}
	quoted := escapeLiteral(l.Value)
	switch {
	case l.Lang != "":
		return quoted + "@" + l.Lang
	case l.Datatype != "" && l.Datatype != XSDString:
		if q, ok := g.qname(l.Datatype); ok {
			return quoted + "^^" + q
		}
		return quoted + "^^<" + string(l.Datatype) + ">"
	default:
		return quoted
	}
}

func escapeLiteral(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func (g *Graph) toTurtle() string {
	var sb strings.Builder
	for _, pair := range g.Prefixes() {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", pair[0], pair[1])
	}
	if len(g.prefixOrder) > 0 {
		sb.WriteString("\n")
	}

	subjects, predOrder, objects := g.subjectGroups()
	for i, subj := range subjects {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(g.turtleTerm(subj))
		preds := predOrder[subj]
		for pi, pred := range preds {
			objs := objects[subj][pred]
			rendered := make([]string, len(objs))
			for oi, o := range objs {
				rendered[oi] = g.turtleTerm(o)
			}
			if pi == 0 {
				sb.WriteString(" ")
			} else {
				sb.WriteString("    ")
			}
			sb.WriteString(g.turtleTerm(pred))
			sb.WriteString(" ")
			sb.WriteString(strings.Join(rendered, ", "))
			if pi < len(preds)-1 {
				sb.WriteString(" ;\n")
			} else {
				sb.WriteString(" .\n")
			}
		}
	}
	return sb.String()
}

func ntriplesTerm(t Term) string {
	switch v := t.(type) {
	case IRI:
		return "<" + string(v) + ">"
	case BlankNode:
		return "_:" + string(v)
	case Literal:
		quoted := escapeLiteral(v.Value)
		switch {
		case v.Lang != "":
			return quoted + "@" + v.Lang
		case v.Datatype != "" && v.Datatype != XSDString:
			return quoted + "^^<" + string(v.Datatype) + ">"
		default:
			return quoted
		}
	default:
		return ""
	}
}

func (g *Graph) toNTriples() string {
	var sb strings.Builder
	for _, t := range g.triples {
		sb.WriteString(ntriplesTerm(t.Subject))
		sb.WriteString(" ")
		sb.WriteString(ntriplesTerm(t.Predicate))
		sb.WriteString(" ")
		sb.WriteString(ntriplesTerm(t.Object))
		sb.WriteString(" .\n")
	}
	return sb.String()
}

func jsonldValue(t Term) any {
	switch v := t.(type) {
	case IRI:
		return map[string]any{"@id": string(v)}
	case BlankNode:
		return map[string]any{"@id": "_:" + string(v)}
	case Literal:
		switch {
		case v.Lang != "":
			return map[string]any{"@value": v.Value, "@language": v.Lang}
		case v.Datatype != "" && v.Datatype != XSDString:
			return map[string]any{"@value": v.Value, "@type": string(v.Datatype)}
		default:
			return v.Value
		}
	default:
		return nil
	}
}

func (g *Graph) toJSONLD() (string, error) {
	context := make(map[string]any)
	for _, pair := range g.Prefixes() {
		context[pair[0]] = pair[1]
	}

	subjects, predOrder, objects := g.subjectGroups()
	graphNodes := make([]any, 0, len(subjects))
	for _, subj := range subjects {
		node := make(map[string]any)
		switch v := subj.(type) {
		case IRI:
			node["@id"] = string(v)
		case BlankNode:
			node["@id"] = "_:" + string(v)
		}
		for _, pred := range predOrder[subj] {
			objs := objects[subj][pred]
			if pred == Term(RDFType) {
				types := make([]any, 0, len(objs))
				for _, o := range objs {
					if iri, ok := o.(IRI); ok {
						types = append(types, string(iri))
					}
				}
				node["@type"] = types
				continue
			}
			key := ""
			if iri, ok := pred.(IRI); ok {
				key = string(iri)
			}
			values := make([]any, 0, len(objs))
			for _, o := range objs {
				values = append(values, jsonldValue(o))
			}
			node[key] = values
		}
		graphNodes = append(graphNodes, node)
	}

	doc := map[string]any{
		"@context": context,
		"@graph":   graphNodes,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON-LD: %w", err)
	}
	return string(out) + "\n", nil
}
