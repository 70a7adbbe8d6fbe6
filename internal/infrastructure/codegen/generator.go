package codegen

import (
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/specsmith/specsync/internal/domain/spec"
)

// File is one generated source file. Path is relative to the output
// directory and uses slashes.
type File struct {
	Path    string
	Content string
}

// templateData is the single data shape every template executes against.
type templateData struct {
	Package      string
	SpecID       string
	Feature      string
	TypeName     string
	PathSegment  string
	Purpose      string
	Requirements []spec.Requirement
}

type fileSpec struct {
	name     string
	dir      string // relative to src/main/kotlin/<pkg>, or src/test/kotlin/<pkg> for tests
	fileName string // pattern with %s for the type name
	text     string
	test     bool
}

// layout lists every generated file in clean-architecture order.
var layout = []fileSpec{
	{name: "domain-model", dir: "domain/model", fileName: "%s.kt", text: domainModelTemplate},
	{name: "repository-interface", dir: "domain/repository", fileName: "%sRepository.kt", text: repositoryInterfaceTemplate},
	{name: "use-case", dir: "domain/usecase", fileName: "Get%sUseCase.kt", text: useCaseTemplate},
	{name: "api-interface", dir: "data/remote", fileName: "%sApi.kt", text: apiInterfaceTemplate},
	{name: "dto", dir: "data/remote", fileName: "%sDto.kt", text: dtoTemplate},
	{name: "repository-impl", dir: "data/repository", fileName: "%sRepositoryImpl.kt", text: repositoryImplTemplate},
	{name: "state", dir: "presentation/state", fileName: "%sState.kt", text: stateTemplate},
	{name: "viewmodel", dir: "presentation/viewmodel", fileName: "%sViewModel.kt", text: viewModelTemplate},
	{name: "screen", dir: "presentation/ui", fileName: "%sScreen.kt", text: screenTemplate},
	{name: "unit-test", dir: "domain", fileName: "Get%sUseCaseTest.kt", text: unitTestTemplate, test: true},
}

// Generator renders the Kotlin scaffolding for one spec document.
type Generator struct {
	doc  *spec.SpecDocument
	pkg  string
	tmpl map[string]*template.Template
}

// NewGenerator prepares the template set for the given document and Android
// package name.
func NewGenerator(doc *spec.SpecDocument, pkg string) (*Generator, error) {
	if pkg == "" {
		pkg = "com.example.app"
	}

	tmpl := make(map[string]*template.Template, len(layout))
	for _, f := range layout {
		t, err := template.New(f.name).Parse(f.text)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", f.name, err)
		}
		tmpl[f.name] = t
	}

	return &Generator{doc: doc, pkg: pkg, tmpl: tmpl}, nil
}

// TypeName is the feature name collapsed to a Kotlin type identifier.
func (g *Generator) TypeName() string {
	name := strings.ReplaceAll(g.doc.Feature, " ", "")
	return strings.ReplaceAll(name, "-", "")
}

// Files renders every scaffolding file. Paths follow the Android source-set
// convention: src/main/kotlin/<package>/... for production code and
// src/test/kotlin/<package>/... for tests.
func (g *Generator) Files() ([]File, error) {
	pkgPath := strings.ReplaceAll(g.pkg, ".", "/")
	data := templateData{
		Package:      g.pkg,
		SpecID:       g.doc.ID,
		Feature:      g.doc.Feature,
		TypeName:     g.TypeName(),
		PathSegment:  strings.ToLower(g.TypeName()),
		Purpose:      g.doc.Purpose,
		Requirements: g.doc.Requirements,
	}

	files := make([]File, 0, len(layout))
	for _, f := range layout {
		var b strings.Builder
		if err := g.tmpl[f.name].Execute(&b, data); err != nil {
			return nil, fmt.Errorf("render %s: %w", f.name, err)
		}

		sourceSet := "src/main/kotlin"
		if f.test {
			sourceSet = "src/test/kotlin"
		}
		rel := path.Join(sourceSet, pkgPath, f.dir, fmt.Sprintf(f.fileName, data.TypeName))
		files = append(files, File{Path: rel, Content: b.String()})
	}
	return files, nil
}
