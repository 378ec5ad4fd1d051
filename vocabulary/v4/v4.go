// Package v4 defines the class and property IRIs of Actions Vocabulary v4.
//
// v4 realigns the vocabulary with CCO: plans become cco Plans, processes
// become cco PlannedActs, milestones move under the Directive hierarchy, and
// context wrapper entities collapse into direct resource requirements.
package v4

import "github.com/clearhead-us/actions-vocabulary/rdf"

// Namespace is the base IRI prefix for all v4 terms.
const Namespace = "https://clearhead.us/vocab/actions/v4#"

// Prefix is the conventional prefix used in serializations.
const Prefix = "v4"

// Class IRIs. Plan and process instances are typed with CCO classes
// directly; only terms without a CCO equivalent live in the v4 namespace.
const (
	// ClassMilestone sits under the Directive hierarchy in v4, a
	// reclassification from the v3 plan subtype.
	ClassMilestone = rdf.IRI(Namespace + "Milestone")

	// ClassEnergyContext survives from v3; the other context kinds
	// migrate to CCO resource classes.
	ClassEnergyContext = rdf.IRI(Namespace + "EnergyContext")
)

// Datatype property IRIs carried over from v3.
const (
	HasName                = rdf.IRI(Namespace + "hasName")
	HasDescription         = rdf.IRI(Namespace + "hasDescription")
	HasPriority            = rdf.IRI(Namespace + "hasPriority")
	HasUUID                = rdf.IRI(Namespace + "hasUUID")
	HasDoDateTime          = rdf.IRI(Namespace + "hasDoDateTime")
	HasDueDateTime         = rdf.IRI(Namespace + "hasDueDateTime")
	HasCompletedDateTime   = rdf.IRI(Namespace + "hasCompletedDateTime")
	HasDurationMinutes     = rdf.IRI(Namespace + "hasDurationMinutes")
	HasRecurrenceFrequency = rdf.IRI(Namespace + "hasRecurrenceFrequency")
	HasRecurrenceInterval  = rdf.IRI(Namespace + "hasRecurrenceInterval")
	HasRecurrenceUntil     = rdf.IRI(Namespace + "hasRecurrenceUntil")
	HasRecurrenceCount     = rdf.IRI(Namespace + "hasRecurrenceCount")
	ByDay                  = rdf.IRI(Namespace + "byDay")
	ByMonth                = rdf.IRI(Namespace + "byMonth")
	ByMonthDay             = rdf.IRI(Namespace + "byMonthDay")
	HasDepth               = rdf.IRI(Namespace + "hasDepth")
)

// Object property IRIs.
const (
	// PartOf is the generic part-whole hierarchy relation replacing the
	// containment-specific parentAction.
	PartOf = rdf.IRI(Namespace + "partOf")

	// HasObjective links a plan to the objective it pursues.
	HasObjective = rdf.IRI(Namespace + "hasObjective")

	// MarksProgressToward links a milestone to the objective it tracks.
	MarksProgressToward = rdf.IRI(Namespace + "marksProgressToward")

	// Direct resource requirements replacing context wrappers.
	RequiresFacility      = rdf.IRI(Namespace + "requiresFacility")
	RequiresArtifact      = rdf.IRI(Namespace + "requiresArtifact")
	RequiresAgent         = rdf.IRI(Namespace + "requiresAgent")
	RequiresEnergyContext = rdf.IRI(Namespace + "requiresEnergyContext")

	AssignedToAgent = rdf.IRI(Namespace + "assignedToAgent")
	PerformedBy     = rdf.IRI(Namespace + "performedBy")

	// HasPhase links a planned act to its phase individual.
	HasPhase = rdf.IRI(Namespace + "hasPhase")

	// Prescribes is modeled from the plan's perspective: the plan
	// prescribes the act, inverting the v3 prescribedBy direction.
	Prescribes = rdf.IRI(Namespace + "prescribes")
)
