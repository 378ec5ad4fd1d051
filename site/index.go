package site

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/clearhead-us/actions-vocabulary/rdf"
)

var moduleIndexTmpl = template.Must(template.New("module").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}: {{.Module.Name}}</title>
</head>
<body>
<h1>{{.Title}}: {{.Module.Name}}</h1>
<p>{{.Module.Triples}} triples. Published at <a href="{{.BaseIRI}}">{{.BaseIRI}}</a>.</p>
<ul>
{{- range .Files}}
<li><a href="{{.Href}}">{{.Href}}</a> ({{.MIMEType}})</li>
{{- end}}
</ul>
</body>
</html>
`))

var rootIndexTmpl = template.Must(template.New("root").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} {{.Version}}</title>
</head>
<body>
<h1>{{.Title}} <small>{{.Version}}</small></h1>
<p>Published at <a href="{{.BaseIRI}}">{{.BaseIRI}}</a>.</p>
<ul>
{{- range .Modules}}
<li><a href="{{.Name}}/index.html">{{.Name}}</a> ({{.Triples}} triples)</li>
{{- end}}
</ul>
</body>
</html>
`))

type fileLink struct {
	Href     string
	MIMEType string
}

func (b *Builder) writeModuleIndex(moduleDir string, mr *ModuleResult) error {
	var files []fileLink
	for _, f := range mr.Files {
		files = append(files, fileLink{
			Href:     filepath.Base(f),
			MIMEType: mimeTypeFor(f),
		})
	}
	data := struct {
		Title   string
		BaseIRI string
		Module  *ModuleResult
		Files   []fileLink
	}{
		Title:   b.cfg.Site.Title,
		BaseIRI: b.cfg.Site.BaseIRI,
		Module:  mr,
		Files:   files,
	}
	return writeTemplate(filepath.Join(moduleDir, "index.html"), moduleIndexTmpl, data)
}

func (b *Builder) writeRootIndex(versionDir string, result *BuildResult) error {
	data := struct {
		Title   string
		BaseIRI string
		Version string
		Modules []ModuleResult
	}{
		Title:   b.cfg.Site.Title,
		BaseIRI: b.cfg.Site.BaseIRI,
		Version: b.cfg.Site.Version,
		Modules: result.Modules,
	}
	return writeTemplate(filepath.Join(versionDir, "index.html"), rootIndexTmpl, data)
}

func writeTemplate(path string, tmpl *template.Template, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}

func mimeTypeFor(path string) string {
	ext := filepath.Ext(path)
	for _, info := range rdf.Formats {
		if info.Extension == ext {
			return info.MIMEType
		}
	}
	return "application/octet-stream"
}
