// Package site builds the published vocabulary site: every configured
// module is parsed from its Turtle sources and emitted as Turtle,
// N-Triples, and JSON-LD under a versioned directory layout, with HTML
// index pages for browsing.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/clearhead-us/actions-vocabulary/config"
	"github.com/clearhead-us/actions-vocabulary/rdf"
)

// ModuleResult describes one built module.
type ModuleResult struct {
	Name    string
	Sources []string
	Triples int
	Files   []string
}

// BuildResult summarizes a completed site build.
type BuildResult struct {
	OutputDir string
	Modules   []ModuleResult
}

// Builder turns vocabulary sources into the published site tree.
type Builder struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewBuilder creates a site builder for the given configuration.
func NewBuilder(cfg *config.Config, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// Build writes every module and the index pages. The output layout is
// <output_dir>/actions/<version>/<module>/<module>.<ext>.
func (b *Builder) Build() (*BuildResult, error) {
	versionDir := filepath.Join(b.cfg.Site.OutputDir, "actions", b.cfg.Site.Version)
	result := &BuildResult{OutputDir: versionDir}

	for _, mod := range b.cfg.Modules {
		mr, err := b.buildModule(versionDir, mod)
		if err != nil {
			return nil, fmt.Errorf("building module %s: %w", mod.Name, err)
		}
		result.Modules = append(result.Modules, *mr)
	}

	if err := b.writeRootIndex(versionDir, result); err != nil {
		return nil, err
	}

	b.logger.Info("Site build complete",
		"output", versionDir,
		"modules", len(result.Modules))
	return result, nil
}

func (b *Builder) buildModule(versionDir string, mod config.ModuleConfig) (*ModuleResult, error) {
	sources, err := doublestar.FilepathGlob(mod.Source)
	if err != nil {
		return nil, fmt.Errorf("bad source glob %q: %w", mod.Source, err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources match %q", mod.Source)
	}
	sort.Strings(sources)

	merged := rdf.NewGraph()
	for _, src := range sources {
		g, err := rdf.DecodeTurtleFile(src)
		if err != nil {
			return nil, err
		}
		merged.AddGraph(g)
	}

	moduleDir := filepath.Join(versionDir, mod.Name)
	if err := os.MkdirAll(moduleDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", moduleDir, err)
	}
	mr := &ModuleResult{Name: mod.Name, Sources: sources, Triples: merged.Len()}
	for _, format := range []rdf.Format{rdf.FormatTurtle, rdf.FormatNTriples, rdf.FormatJSONLD} {
		path := filepath.Join(moduleDir, mod.Name+rdf.Formats[format].Extension)
		if err := merged.WriteFile(path, format); err != nil {
			return nil, err
		}
		mr.Files = append(mr.Files, path)
	}

	if err := b.writeModuleIndex(moduleDir, mr); err != nil {
		return nil, err
	}

	b.logger.Info("Built module",
		"module", mod.Name,
		"sources", len(sources),
		"triples", merged.Len())
	return mr, nil
}
