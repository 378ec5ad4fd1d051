// Package v3 defines the class and property IRIs of Actions Vocabulary v3.
//
// v3 models tasks as ActionPlan subclasses with context qualifier entities
// (location, tool, social, energy) attached via requiresContext/hasContext.
// It is the source vocabulary of the v3→v4 migration.
package v3

import "github.com/clearhead-us/actions-vocabulary/rdf"

// Namespace is the base IRI prefix for all v3 terms.
const Namespace = "https://clearhead.us/vocab/actions/v3#"

// Prefix is the conventional prefix used in serializations.
const Prefix = "v3"

// Class IRIs.
const (
	// ClassActionPlan is the reusable task definition class.
	ClassActionPlan = rdf.IRI(Namespace + "ActionPlan")

	// ClassRootActionPlan is a top-level plan with no parent.
	ClassRootActionPlan = rdf.IRI(Namespace + "RootActionPlan")

	// ClassChildActionPlan is an intermediate plan with exactly one parent.
	ClassChildActionPlan = rdf.IRI(Namespace + "ChildActionPlan")

	// ClassLeafActionPlan is a bottom-level plan with exactly one parent.
	ClassLeafActionPlan = rdf.IRI(Namespace + "LeafActionPlan")

	// ClassActionProcess is an execution of a plan.
	ClassActionProcess = rdf.IRI(Namespace + "ActionProcess")

	// ClassMilestone marks progress toward a project.
	ClassMilestone = rdf.IRI(Namespace + "Milestone")

	// Context qualifier classes.
	ClassLocationContext = rdf.IRI(Namespace + "LocationContext")
	ClassToolContext     = rdf.IRI(Namespace + "ToolContext")
	ClassSocialContext   = rdf.IRI(Namespace + "SocialContext")
	ClassEnergyContext   = rdf.IRI(Namespace + "EnergyContext")
)

// Datatype property IRIs.
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

	// HasProject carries the free-text project label a plan belongs to.
	HasProject = rdf.IRI(Namespace + "hasProject")
)

// Object property IRIs.
const (
	// ParentAction links a child or leaf plan to its parent plan.
	ParentAction = rdf.IRI(Namespace + "parentAction")

	// RequiresContext and HasContext both attach context qualifiers to a
	// plan; hasContext is a legacy alias still present in older data.
	RequiresContext = rdf.IRI(Namespace + "requiresContext")
	HasContext      = rdf.IRI(Namespace + "hasContext")

	// Wrapped-resource links on context entities.
	RequiresFacility = rdf.IRI(Namespace + "requiresFacility")
	RequiresArtifact = rdf.IRI(Namespace + "requiresArtifact")
	RequiresAgent    = rdf.IRI(Namespace + "requiresAgent")

	AssignedToAgent = rdf.IRI(Namespace + "assignedToAgent")
	PerformedBy     = rdf.IRI(Namespace + "performedBy")

	// HasState links a process to its workflow state individual.
	HasState = rdf.IRI(Namespace + "hasState")

	// PrescribedBy links a process back to the plan it executes.
	PrescribedBy = rdf.IRI(Namespace + "prescribedBy")
)

// PlanClasses returns the ActionPlan class and its subclasses, in discovery
// order.
func PlanClasses() []rdf.IRI {
	return []rdf.IRI{
		ClassActionPlan,
		ClassRootActionPlan,
		ClassChildActionPlan,
		ClassLeafActionPlan,
	}
}

// ContextClasses returns the four context qualifier classes, in discovery
// order.
func ContextClasses() []rdf.IRI {
	return []rdf.IRI{
		ClassEnergyContext,
		ClassLocationContext,
		ClassToolContext,
		ClassSocialContext,
	}
}
