package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"view-scaffold/internal/config"
	"view-scaffold/internal/logger"
	"view-scaffold/internal/model"
)

// Generator renders one view kind for a model class
type Generator interface {
	Kind() string
	Generate(mc *model.ModelClass, cfg *config.Config) error
}

// GetGenerators returns generators for the requested view kinds,
// ignoring duplicates and unknown names
func GetGenerators(kinds []string) []Generator {
	generators := []Generator{}
	seen := make(map[string]bool)

	for _, kind := range kinds {
		kind = strings.ToLower(strings.TrimSpace(kind))
		if seen[kind] {
			continue
		}
		seen[kind] = true

		switch kind {
		case "create":
			generators = append(generators, &viewGenerator{kind: "Create", source: createTemplate})
		case "edit":
			generators = append(generators, &viewGenerator{kind: "Edit", source: editTemplate})
		case "details":
			generators = append(generators, &viewGenerator{kind: "Details", source: detailsTemplate})
		case "delete":
			generators = append(generators, &viewGenerator{kind: "Delete", source: deleteTemplate})
		case "index":
			generators = append(generators, &viewGenerator{kind: "Index", source: indexTemplate})
		}
	}

	return generators
}

// viewGenerator renders a single Razor view from its template. The
// rendering itself is pure string substitution over the property list;
// all semantic work happened in the extraction pipeline.
type viewGenerator struct {
	kind   string
	source string
}

// viewData is the template payload for one view
type viewData struct {
	TypeName  string
	ClassName string
	ViewKind  string

	// Properties is every extracted property in source order;
	// FormProperties excludes the primary key (forms carry it hidden)
	Properties     []model.Property
	FormProperties []model.Property
	PrimaryKey     *model.Property
}

func (g *viewGenerator) Kind() string {
	return g.kind
}

func (g *viewGenerator) Generate(mc *model.ModelClass, cfg *config.Config) error {
	tmpl, err := template.New(g.kind).Funcs(template.FuncMap{
		"input": inputTag,
		"label": labelTag,
	}).Parse(g.source)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", g.kind, err)
	}

	data := viewData{
		TypeName:       mc.TypeName,
		ClassName:      mc.ClassName,
		ViewKind:       g.kind,
		Properties:     mc.Properties,
		FormProperties: formProperties(mc.Properties),
		PrimaryKey:     mc.PrimaryKey(),
	}

	outDir := filepath.Join(cfg.Output.ViewsDir, mc.ClassName)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create view directory: %w", err)
	}

	outputFile := filepath.Join(outDir, g.kind+".cshtml")
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create view file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render %s view: %w", g.kind, err)
	}

	logger.Debug("[SCAFFOLD] Wrote %s", outputFile)
	return nil
}

func formProperties(props []model.Property) []model.Property {
	out := make([]model.Property, 0, len(props))
	for _, p := range props {
		if p.IsPrimaryKey {
			continue
		}
		out = append(out, p)
	}
	return out
}

// inputTag builds the form input element for a property from its
// classification and metadata
func inputTag(p model.Property) string {
	var b strings.Builder

	if p.Kind == model.KindCheckbox {
		fmt.Fprintf(&b, `<input type="checkbox" id="%s" name="%s" class="form-check-input"`, p.Name, p.Name)
	} else {
		fmt.Fprintf(&b, `<input type="%s" id="%s" name="%s" class="form-control"`, p.Kind, p.Name, p.Name)
	}

	if p.MaxLength != nil {
		fmt.Fprintf(&b, ` maxlength="%d"`, *p.MaxLength)
	}
	if p.MinLength != nil {
		fmt.Fprintf(&b, ` minlength="%d"`, *p.MinLength)
	}
	if p.Description != "" {
		fmt.Fprintf(&b, ` placeholder="%s"`, p.Description)
	}
	if p.IsRequired {
		b.WriteString(" required")
	}

	b.WriteString(" />")
	return b.String()
}

// labelTag builds the label element, preferring the annotated display
// name over the raw property name
func labelTag(p model.Property) string {
	return fmt.Sprintf(`<label for="%s">%s</label>`, p.Name, p.Label())
}
