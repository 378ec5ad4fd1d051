package rdf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// DecodeTurtle parses Turtle text into a graph. It supports the subset the
// vocabulary files use: @prefix/@base and SPARQL-style PREFIX/BASE
// directives, IRIs, prefixed names, the 'a' keyword, predicate and object
// lists, string literals (short and long form) with datatype and language
// tags, numeric and boolean shorthand, blank node labels and property
// lists, and RDF collections.
func DecodeTurtle(input string) (*Graph, error) {
	p := &turtleParser{runes: []rune(input), line: 1, graph: NewGraph()}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.graph, nil
}

// DecodeTurtleFile reads and parses a Turtle file.
func DecodeTurtleFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	g, err := DecodeTurtle(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

type turtleParser struct {
	runes []rune
	pos   int
	line  int
	graph *Graph
	base  string
	bnode int
}

func (p *turtleParser) errf(format string, args ...any) error {
	return fmt.Errorf("turtle: line %d: %s", p.line, fmt.Sprintf(format, args...))
}

func (p *turtleParser) eof() bool { return p.pos >= len(p.runes) }

func (p *turtleParser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.runes[p.pos]
}

func (p *turtleParser) next() rune {
	r := p.runes[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
	}
	return r
}

// skipWS consumes whitespace and comments.
func (p *turtleParser) skipWS() {
	for !p.eof() {
		r := p.peek()
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			p.next()
		case r == '#':
			for !p.eof() && p.peek() != '\n' {
				p.next()
			}
		default:
			return
		}
	}
}

// matchKeyword consumes kw if it appears case-insensitively at the cursor
// followed by a non-name character.
func (p *turtleParser) matchKeyword(kw string) bool {
	end := p.pos + len(kw)
	if end > len(p.runes) {
		return false
	}
	for i, r := range kw {
		if unicode.ToUpper(p.runes[p.pos+i]) != unicode.ToUpper(r) {
			return false
		}
	}
	if end < len(p.runes) {
		r := p.runes[end]
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ':' {
			return false
		}
	}
	p.pos = end
	return true
}

func (p *turtleParser) expect(r rune) error {
	p.skipWS()
	if p.eof() || p.peek() != r {
		return p.errf("expected %q", string(r))
	}
	p.next()
	return nil
}

func (p *turtleParser) parse() error {
	for {
		p.skipWS()
		if p.eof() {
			return nil
		}
		switch {
		case p.peek() == '@':
			if err := p.parseDirective(); err != nil {
				return err
			}
		case p.matchKeyword("PREFIX"):
			if err := p.parsePrefix(false); err != nil {
				return err
			}
		case p.matchKeyword("BASE"):
			if err := p.parseBase(false); err != nil {
				return err
			}
		default:
			if err := p.parseTriples(); err != nil {
				return err
			}
		}
	}
}

func (p *turtleParser) parseDirective() error {
	p.next() // '@'
	switch {
	case p.matchKeyword("prefix"):
		return p.parsePrefix(true)
	case p.matchKeyword("base"):
		return p.parseBase(true)
	default:
		return p.errf("unknown directive")
	}
}

func (p *turtleParser) parsePrefix(dotted bool) error {
	p.skipWS()
	var name strings.Builder
	for !p.eof() && p.peek() != ':' {
		r := p.peek()
		if r == ' ' || r == '\t' || r == '\n' {
			return p.errf("malformed prefix declaration")
		}
		name.WriteRune(p.next())
	}
	if err := p.expect(':'); err != nil {
		return err
	}
	p.skipWS()
	iri, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	p.graph.Bind(name.String(), string(iri))
	if dotted {
		return p.expect('.')
	}
	return nil
}

func (p *turtleParser) parseBase(dotted bool) error {
	p.skipWS()
	iri, err := p.parseIRIRef()
	if err != nil {
		return err
	}
	p.base = string(iri)
	if dotted {
		return p.expect('.')
	}
	return nil
}

func (p *turtleParser) parseTriples() error {
	var subject Term
	p.skipWS()
	if p.peek() == '[' {
		b, err := p.parseBlankNodePropertyList()
		if err != nil {
			return err
		}
		subject = b
		p.skipWS()
		// A bare property list followed by '.' is a complete statement.
		if p.peek() == '.' {
			p.next()
			return nil
		}
	} else {
		s, err := p.parseSubject()
		if err != nil {
			return err
		}
		subject = s
	}
	if err := p.parsePredicateObjectList(subject); err != nil {
		return err
	}
	return p.expect('.')
}

func (p *turtleParser) parseSubject() (Term, error) {
	p.skipWS()
	switch {
	case p.peek() == '<':
		return p.parseIRIRef()
	case p.peek() == '_':
		return p.parseBlankNodeLabel()
	default:
		return p.parsePrefixedName()
	}
}

func (p *turtleParser) parsePredicateObjectList(subject Term) error {
	for {
		p.skipWS()
		verb, err := p.parseVerb()
		if err != nil {
			return err
		}
		if err := p.parseObjectList(subject, verb); err != nil {
			return err
		}
		p.skipWS()
		if p.peek() != ';' {
			return nil
		}
		for p.peek() == ';' {
			p.next()
			p.skipWS()
		}
		// Trailing semicolon before the statement terminator.
		if p.peek() == '.' || p.peek() == ']' {
			return nil
		}
	}
}

func (p *turtleParser) parseVerb() (Term, error) {
	p.skipWS()
	if p.matchKeyword("a") {
		return RDFType, nil
	}
	if p.peek() == '<' {
		return p.parseIRIRef()
	}
	return p.parsePrefixedName()
}

func (p *turtleParser) parseObjectList(subject, verb Term) error {
	for {
		obj, err := p.parseObject()
		if err != nil {
			return err
		}
		p.graph.Add(Triple{Subject: subject, Predicate: verb, Object: obj})
		p.skipWS()
		if p.peek() != ',' {
			return nil
		}
		p.next()
	}
}

func (p *turtleParser) parseObject() (Term, error) {
	p.skipWS()
	if p.eof() {
		return nil, p.errf("unexpected end of input")
	}
	r := p.peek()
	switch {
	case r == '<':
		return p.parseIRIRef()
	case r == '"' || r == '\'':
		return p.parseLiteral()
	case r == '[':
		return p.parseBlankNodePropertyList()
	case r == '(':
		return p.parseCollection()
	case r == '_':
		return p.parseBlankNodeLabel()
	case r == '+' || r == '-' || unicode.IsDigit(r):
		return p.parseNumber()
	case p.matchKeyword("true"):
		return TypedLiteral("true", XSDBoolean), nil
	case p.matchKeyword("false"):
		return TypedLiteral("false", XSDBoolean), nil
	default:
		return p.parsePrefixedName()
	}
}

func (p *turtleParser) parseIRIRef() (IRI, error) {
	if p.peek() != '<' {
		return "", p.errf("expected IRI")
	}
	p.next()
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errf("unterminated IRI")
		}
		r := p.next()
		if r == '>' {
			break
		}
		if r == '\\' {
			esc, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(esc)
			continue
		}
		sb.WriteRune(r)
	}
	iri := sb.String()
	if p.base != "" && !strings.Contains(iri, ":") {
		iri = p.base + iri
	}
	return IRI(iri), nil
}

func isLocalNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '_' || r == '-' || r == '.' || r == '%' || r == ':'
}

func (p *turtleParser) parsePrefixedName() (Term, error) {
	start := p.pos
	for !p.eof() && isLocalNameRune(p.peek()) {
		p.pos++
	}
	// A trailing dot terminates the statement, not the name.
	for p.pos > start && p.runes[p.pos-1] == '.' {
		p.pos--
	}
	if p.pos == start {
		return nil, p.errf("expected prefixed name, found %q", string(p.peek()))
	}
	token := string(p.runes[start:p.pos])
	idx := strings.Index(token, ":")
	if idx < 0 {
		return nil, p.errf("expected prefixed name, found %q", token)
	}
	ns, ok := p.graph.Namespace(token[:idx])
	if !ok {
		return nil, p.errf("undefined prefix %q", token[:idx])
	}
	return IRI(ns + token[idx+1:]), nil
}

func (p *turtleParser) parseBlankNodeLabel() (Term, error) {
	if p.peek() != '_' {
		return nil, p.errf("expected blank node label")
	}
	p.next()
	if p.eof() || p.peek() != ':' {
		return nil, p.errf("expected ':' in blank node label")
	}
	p.next()
	start := p.pos
	for !p.eof() {
		r := p.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return nil, p.errf("empty blank node label")
	}
	return BlankNode(p.runes[start:p.pos]), nil
}

func (p *turtleParser) freshBlankNode() BlankNode {
	p.bnode++
	return BlankNode(fmt.Sprintf("b%d", p.bnode))
}

func (p *turtleParser) parseBlankNodePropertyList() (Term, error) {
	p.next() // '['
	node := p.freshBlankNode()
	p.skipWS()
	if p.peek() == ']' {
		p.next()
		return node, nil
	}
	if err := p.parsePredicateObjectList(node); err != nil {
		return nil, err
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *turtleParser) parseCollection() (Term, error) {
	p.next() // '('
	var items []Term
	for {
		p.skipWS()
		if p.eof() {
			return nil, p.errf("unterminated collection")
		}
		if p.peek() == ')' {
			p.next()
			break
		}
		item, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return RDFNil, nil
	}
	head := Term(p.freshBlankNode())
	node := head
	for i, item := range items {
		p.graph.Add(Triple{Subject: node, Predicate: RDFFirst, Object: item})
		if i == len(items)-1 {
			p.graph.Add(Triple{Subject: node, Predicate: RDFRest, Object: RDFNil})
			break
		}
		next := Term(p.freshBlankNode())
		p.graph.Add(Triple{Subject: node, Predicate: RDFRest, Object: next})
		node = next
	}
	return head, nil
}

func (p *turtleParser) parseLiteral() (Term, error) {
	value, err := p.parseString()
	if err != nil {
		return nil, err
	}
	if !p.eof() && p.peek() == '@' {
		p.next()
		start := p.pos
		for !p.eof() {
			r := p.peek()
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
				break
			}
			p.pos++
		}
		if p.pos == start {
			return nil, p.errf("empty language tag")
		}
		return LangLiteral(value, string(p.runes[start:p.pos])), nil
	}
	if p.pos+1 < len(p.runes) && p.peek() == '^' && p.runes[p.pos+1] == '^' {
		p.pos += 2
		var dt Term
		if p.peek() == '<' {
			dt, err = p.parseIRIRef()
		} else {
			dt, err = p.parsePrefixedName()
		}
		if err != nil {
			return nil, err
		}
		iri, ok := dt.(IRI)
		if !ok {
			return nil, p.errf("datatype must be an IRI")
		}
		if iri == XSDString {
			return NewLiteral(value), nil
		}
		return TypedLiteral(value, iri), nil
	}
	return NewLiteral(value), nil
}

func (p *turtleParser) parseString() (string, error) {
	quote := p.next()
	long := false
	if p.pos+1 < len(p.runes) && p.peek() == quote && p.runes[p.pos+1] == quote {
		p.pos += 2
		long = true
	} else if !p.eof() && p.peek() == quote {
		// Empty short string.
		p.next()
		return "", nil
	}
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errf("unterminated string literal")
		}
		r := p.next()
		if r == quote {
			if !long {
				return sb.String(), nil
			}
			if p.pos+1 < len(p.runes) && p.peek() == quote && p.runes[p.pos+1] == quote {
				p.pos += 2
				return sb.String(), nil
			}
			// Lone quote inside a long string.
			sb.WriteRune(r)
			continue
		}
		if r == '\\' {
			esc, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(esc)
			continue
		}
		if !long && (r == '\n' || r == '\r') {
			return "", p.errf("newline in string literal")
		}
		sb.WriteRune(r)
	}
}

func (p *turtleParser) parseEscape() (rune, error) {
	if p.eof() {
		return 0, p.errf("truncated escape sequence")
	}
	r := p.next()
	switch r {
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 'f':
		return '\f', nil
	case '"', '\'', '\\':
		return r, nil
	case 'u':
		return p.parseUnicodeEscape(4)
	case 'U':
		return p.parseUnicodeEscape(8)
	default:
		return 0, p.errf("invalid escape sequence \\%s", string(r))
	}
}

func (p *turtleParser) parseUnicodeEscape(width int) (rune, error) {
	if p.pos+width > len(p.runes) {
		return 0, p.errf("truncated unicode escape")
	}
	code := string(p.runes[p.pos : p.pos+width])
	n, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return 0, p.errf("invalid unicode escape %q", code)
	}
	p.pos += width
	return rune(n), nil
}

func (p *turtleParser) parseNumber() (Term, error) {
	start := p.pos
	if p.peek() == '+' || p.peek() == '-' {
		p.pos++
	}
	decimal, exponent := false, false
	for !p.eof() {
		r := p.peek()
		switch {
		case unicode.IsDigit(r):
			p.pos++
		case r == '.' && !decimal && !exponent:
			// A dot not followed by a digit terminates the statement.
			if p.pos+1 >= len(p.runes) || !unicode.IsDigit(p.runes[p.pos+1]) {
				goto done
			}
			decimal = true
			p.pos++
		case (r == 'e' || r == 'E') && !exponent:
			exponent = true
			p.pos++
			if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
				p.pos++
			}
		default:
			goto done
		}
	}
done:
	token := string(p.runes[start:p.pos])
	if token == "" || token == "+" || token == "-" {
		return nil, p.errf("malformed numeric literal")
	}
	switch {
	case exponent:
		return TypedLiteral(token, XSDDouble), nil
	case decimal:
		return TypedLiteral(token, XSDDecimal), nil
	default:
		return TypedLiteral(token, XSDInteger), nil
	}
}
