package migrate

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v3"
)

// Migrator drives a full v3-to-v4 migration run. Every run reads one
// source graph and produces one fresh output graph; per-run bookkeeping is
// reset at the start of Run.
type Migrator struct {
	rewriter Rewriter
	logger   *slog.Logger

	// labeled tracks objectives that already carry an rdfs:label this
	// run, so slug-equal project texts yield exactly one label.
	labeled map[rdf.IRI]bool
}

// NewMigrator returns a migrator using the v3-to-v4 rewriter. A nil logger
// falls back to slog.Default.
func NewMigrator(logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{
		rewriter: V3ToV4(),
		logger:   logger,
		labeled:  make(map[rdf.IRI]bool),
	}
}

// Stats reports what a migration run discovered and produced.
type Stats struct {
	Plans      int
	Processes  int
	Milestones int
	Contexts   int
	Triples    int
}

// discovery holds the enumerated migratable subjects of a source graph.
type discovery struct {
	plans      []rdf.IRI
	processes  []rdf.IRI
	milestones []rdf.IRI
	contexts   map[rdf.IRI][]rdf.IRI // kind class -> subjects
}

// iriSubjects narrows typed subjects to IRIs, preserving order.
func iriSubjects(src *rdf.Graph, class rdf.IRI) []rdf.IRI {
	var out []rdf.IRI
	for _, s := range src.SubjectsOfType(class) {
		if iri, ok := s.(rdf.IRI); ok {
			out = append(out, iri)
		}
	}
	return out
}

func (m *Migrator) discover(src *rdf.Graph) discovery {
	var d discovery

	// A plan may carry several plan-class type assertions; deduplicate
	// while preserving first-seen order so output stays deterministic.
	seen := make(map[rdf.IRI]struct{})
	for _, class := range v3.PlanClasses() {
		for _, plan := range iriSubjects(src, class) {
			if _, ok := seen[plan]; ok {
				continue
			}
			seen[plan] = struct{}{}
			d.plans = append(d.plans, plan)
		}
	}

	d.processes = iriSubjects(src, v3.ClassActionProcess)
	d.milestones = iriSubjects(src, v3.ClassMilestone)

	d.contexts = make(map[rdf.IRI][]rdf.IRI)
	for _, class := range v3.ContextClasses() {
		d.contexts[class] = iriSubjects(src, class)
	}
	return d
}

// Run migrates the source graph, returning the accumulated v4 graph and
// run statistics. The source graph is never modified. Transformer output
// merges by set union, so phase ordering does not affect the result.
func (m *Migrator) Run(src *rdf.Graph) (*rdf.Graph, Stats, error) {
	if src == nil {
		return nil, Stats{}, fmt.Errorf("migrate: nil source graph")
	}

	m.labeled = make(map[rdf.IRI]bool)

	d := m.discover(src)
	m.logger.Info("discovered migratable entities",
		"plans", len(d.plans),
		"processes", len(d.processes),
		"milestones", len(d.milestones))

	out := rdf.NewGraph()
	bindOutputPrefixes(out)

	for _, plan := range d.plans {
		out.AddGraph(m.TransformPlan(src, plan))
	}
	for _, process := range d.processes {
		out.AddGraph(m.TransformProcess(src, process))
	}
	for _, milestone := range d.milestones {
		out.AddGraph(m.TransformMilestone(src, milestone))
	}

	contexts := 0
	for _, class := range v3.ContextClasses() {
		for _, ctx := range d.contexts[class] {
			fragment := m.TransformContext(src, ctx)
			if fragment == nil {
				// Cannot happen for subjects discovered by kind class;
				// kept as a diagnostic for direct callers.
				m.logger.Warn("context entity produced no migration output", "context", string(ctx))
				continue
			}
			out.AddGraph(fragment)
			contexts++
		}
	}

	stats := Stats{
		Plans:      len(d.plans),
		Processes:  len(d.processes),
		Milestones: len(d.milestones),
		Contexts:   contexts,
		Triples:    out.Len(),
	}
	return out, stats, nil
}

// MigrateFile runs a full migration from a v3 Turtle file to a v4 Turtle
// file. Any failure leaves the output file untrustworthy; the run is a pure
// batch transform, safe to retry in full.
func (m *Migrator) MigrateFile(inputPath, outputPath string) (Stats, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return Stats{}, fmt.Errorf("input file not found: %s", inputPath)
	}

	src, err := rdf.DecodeTurtleFile(inputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("load source graph: %w", err)
	}

	out, stats, err := m.Run(src)
	if err != nil {
		return Stats{}, err
	}

	if err := out.WriteFile(outputPath, rdf.FormatTurtle); err != nil {
		return Stats{}, fmt.Errorf("write migrated graph: %w", err)
	}
	return stats, nil
}
