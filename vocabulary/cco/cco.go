// Package cco defines the Common Core Ontologies terms the Actions
// Vocabulary aligns to. CCO term IRIs are opaque ont-numbered identifiers;
// the constant names carry the human-readable label.
package cco

import "github.com/clearhead-us/actions-vocabulary/rdf"

// Namespace is the CCO base IRI.
const Namespace = "https://www.commoncoreontologies.org/"

// Prefix is the conventional prefix used in serializations.
const Prefix = "cco"

const (
	// Plan (cco:Plan): a directive information content entity describing
	// intended actions. v4 type for migrated action plans.
	Plan = rdf.IRI(Namespace + "ont00000974")

	// Objective (cco:Objective): the outcome a plan pursues. Synthesized
	// for each distinct project label during migration.
	Objective = rdf.IRI(Namespace + "ont00000476")

	// PlannedAct (cco:PlannedAct): an act prescribed by a plan. v4 type
	// for migrated action processes.
	PlannedAct = rdf.IRI(Namespace + "ont00000228")

	// Facility (cco:Facility): v4 type for migrated location contexts.
	Facility = rdf.IRI(Namespace + "ont00000192")

	// Artifact (cco:Artifact): v4 type for migrated tool contexts.
	Artifact = rdf.IRI(Namespace + "ont00000001")

	// Agent (cco:Agent): v4 type for migrated social contexts.
	Agent = rdf.IRI(Namespace + "ont00000374")
)

// BFONamespace is the Basic Formal Ontology base IRI, bound as a prefix in
// serialized output for upper-ontology alignment triples.
const BFONamespace = "http://purl.obolibrary.org/obo/BFO_"
