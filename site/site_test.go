package site

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/clearhead-us/actions-vocabulary/config"
	"github.com/clearhead-us/actions-vocabulary/rdf"
)

const coreSource = `
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix v4: <https://clearhead.us/vocab/actions/v4#> .

v4:Milestone a owl:Class ;
    rdfs:label "Milestone" .
`

const shapesSource = `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix v4: <https://clearhead.us/vocab/actions/v4#> .

v4:MilestoneShape a sh:NodeShape ;
    sh:targetClass v4:Milestone .
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func siteFixture(t *testing.T) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "ontology", "v4")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "core.ttl"), []byte(coreSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "shapes.ttl"), []byte(shapesSource), 0o644))

	cfg := config.DefaultConfig()
	cfg.Site.OutputDir = filepath.Join(dir, "out")
	cfg.Modules = []config.ModuleConfig{
		{Name: "core", Source: filepath.Join(dir, "ontology", "**", "*.ttl")},
	}
	require.NoError(t, cfg.Validate())
	return cfg, dir
}

func TestBuild(t *testing.T) {
	cfg, _ := siteFixture(t)
	b := NewBuilder(cfg, testLogger())

	result, err := b.Build()
	require.NoError(t, err)
	require.Len(t, result.Modules, 1)

	core := result.Modules[0]
	assert.Equal(t, "core", core.Name)
	assert.Len(t, core.Sources, 2, "doublestar glob matches nested sources")
	assert.Positive(t, core.Triples)

	moduleDir := filepath.Join(cfg.Site.OutputDir, "actions", "v4", "core")
	for _, name := range []string{"core.ttl", "core.nt", "core.jsonld", "index.html"} {
		assert.FileExists(t, filepath.Join(moduleDir, name))
	}
	assert.FileExists(t, filepath.Join(cfg.Site.OutputDir, "actions", "v4", "index.html"))
}

func TestBuildMergesSources(t *testing.T) {
	cfg, _ := siteFixture(t)
	b := NewBuilder(cfg, testLogger())
	_, err := b.Build()
	require.NoError(t, err)

	out, err := rdf.DecodeTurtleFile(filepath.Join(cfg.Site.OutputDir, "actions", "v4", "core", "core.ttl"))
	require.NoError(t, err)

	milestone := rdf.IRI("https://clearhead.us/vocab/actions/v4#Milestone")
	assert.True(t, out.Has(rdf.Triple{Subject: milestone, Predicate: rdf.RDFType, Object: rdf.OWLClass}))
	assert.True(t, out.Has(rdf.Triple{
		Subject:   rdf.IRI("https://clearhead.us/vocab/actions/v4#MilestoneShape"),
		Predicate: rdf.SHTargetClass,
		Object:    milestone,
	}), "both source files merge into one module graph")
}

func TestBuildNoSources(t *testing.T) {
	cfg, dir := siteFixture(t)
	cfg.Modules[0].Source = filepath.Join(dir, "missing", "*.ttl")

	_, err := NewBuilder(cfg, testLogger()).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sources match")
}

// collectLinks walks an HTML document and returns every href value.
func collectLinks(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	doc, err := html.Parse(f)
	require.NoError(t, err)

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}

func TestIndexPages(t *testing.T) {
	cfg, _ := siteFixture(t)
	_, err := NewBuilder(cfg, testLogger()).Build()
	require.NoError(t, err)

	versionDir := filepath.Join(cfg.Site.OutputDir, "actions", "v4")

	rootLinks := collectLinks(t, filepath.Join(versionDir, "index.html"))
	assert.Contains(t, rootLinks, "core/index.html")

	moduleLinks := collectLinks(t, filepath.Join(versionDir, "core", "index.html"))
	assert.Contains(t, moduleLinks, "core.ttl")
	assert.Contains(t, moduleLinks, "core.nt")
	assert.Contains(t, moduleLinks, "core.jsonld")
}

func TestGlobRoot(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"ontology/v4/*.ttl", "ontology/v4"},
		{"ontology/**/*.ttl", "ontology"},
		{"*.ttl", "."},
		{"ontology/core.ttl", "ontology/core.ttl"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, globRoot(tt.pattern), tt.pattern)
	}
}

func TestWatcherRebuilds(t *testing.T) {
	cfg, dir := siteFixture(t)
	cfg.Watch.Enabled = true
	cfg.Watch.DebounceMillis = 50

	b := NewBuilder(cfg, testLogger())
	_, err := b.Build()
	require.NoError(t, err)

	w, err := NewWatcher(b, testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register its directories.
	time.Sleep(200 * time.Millisecond)

	extra := filepath.Join(dir, "ontology", "v4", "extra.ttl")
	addition := strings.Replace(coreSource, "Milestone", "Objective", 2)
	require.NoError(t, os.WriteFile(extra, []byte(addition), 0o644))

	built := filepath.Join(cfg.Site.OutputDir, "actions", "v4", "core", "core.ttl")
	require.Eventually(t, func() bool {
		out, err := rdf.DecodeTurtleFile(built)
		if err != nil {
			return false
		}
		return out.Has(rdf.Triple{
			Subject:   rdf.IRI("https://clearhead.us/vocab/actions/v4#Objective"),
			Predicate: rdf.RDFType,
			Object:    rdf.OWLClass,
		})
	}, 10*time.Second, 100*time.Millisecond, "watcher should rebuild after a source change")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
