package rdf

// Well-known namespaces shared by both vocabulary versions.
const (
	RDFNS    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNS   = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNS    = "http://www.w3.org/2001/XMLSchema#"
	OWLNS    = "http://www.w3.org/2002/07/owl#"
	SHNS     = "http://www.w3.org/ns/shacl#"
	SchemaNS = "http://schema.org/"
)

// RDF and RDFS terms.
const (
	RDFType  = IRI(RDFNS + "type")
	RDFFirst = IRI(RDFNS + "first")
	RDFRest  = IRI(RDFNS + "rest")
	RDFNil   = IRI(RDFNS + "nil")

	RDFSLabel         = IRI(RDFSNS + "label")
	RDFSComment       = IRI(RDFSNS + "comment")
	RDFSSubClassOf    = IRI(RDFSNS + "subClassOf")
	RDFSSubPropertyOf = IRI(RDFSNS + "subPropertyOf")
	RDFSDomain        = IRI(RDFSNS + "domain")
	RDFSRange         = IRI(RDFSNS + "range")
)

// XSD datatypes used by the vocabulary.
const (
	XSDString   = IRI(XSDNS + "string")
	XSDInteger  = IRI(XSDNS + "integer")
	XSDDecimal  = IRI(XSDNS + "decimal")
	XSDDouble   = IRI(XSDNS + "double")
	XSDBoolean  = IRI(XSDNS + "boolean")
	XSDDateTime = IRI(XSDNS + "dateTime")
	XSDDate     = IRI(XSDNS + "date")
)

// OWL terms.
const (
	OWLOntology           = IRI(OWLNS + "Ontology")
	OWLClass              = IRI(OWLNS + "Class")
	OWLDatatypeProperty   = IRI(OWLNS + "DatatypeProperty")
	OWLObjectProperty     = IRI(OWLNS + "ObjectProperty")
	OWLFunctionalProperty = IRI(OWLNS + "FunctionalProperty")
)

// SHACL terms recognized by the shapes package.
const (
	SHNodeShape    = IRI(SHNS + "NodeShape")
	SHTargetClass  = IRI(SHNS + "targetClass")
	SHProperty     = IRI(SHNS + "property")
	SHPath         = IRI(SHNS + "path")
	SHMinCount     = IRI(SHNS + "minCount")
	SHMaxCount     = IRI(SHNS + "maxCount")
	SHDatatype     = IRI(SHNS + "datatype")
	SHClass        = IRI(SHNS + "class")
	SHNodeKind     = IRI(SHNS + "nodeKind")
	SHPattern      = IRI(SHNS + "pattern")
	SHIn           = IRI(SHNS + "in")
	SHMinInclusive = IRI(SHNS + "minInclusive")
	SHMaxInclusive = IRI(SHNS + "maxInclusive")
	SHMessage      = IRI(SHNS + "message")

	SHNodeKindIRI       = IRI(SHNS + "IRI")
	SHNodeKindLiteral   = IRI(SHNS + "Literal")
	SHNodeKindBlankNode = IRI(SHNS + "BlankNode")
)
