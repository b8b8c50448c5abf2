package word

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"view-scaffold/internal/config"
	"view-scaffold/internal/model"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

type WordReporter struct{}

func NewWordReporter() *WordReporter {
	return &WordReporter{}
}

func (r *WordReporter) Export(inv *model.Inventory, cfg *config.Config) error {
	// 1. Extract embedded template to temp file
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	// Create temp file
	tmpFile, err := os.CreateTemp("", "view-scaffold-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Open docx from temp path
	rd, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer rd.Close()

	doc := rd.Editable()

	// Sort classes for a stable document
	classes := append([]*model.ModelClass(nil), inv.Classes...)
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].TypeName < classes[j].TypeName
	})

	// 2. Replace Summary Placeholders
	doc.Replace("{{Date}}", inv.AnalysisDate, -1)
	doc.Replace("{{TotalClasses}}", fmt.Sprintf("%d", inv.TotalClasses), -1)
	doc.Replace("{{TotalProperties}}", fmt.Sprintf("%d", inv.TotalProperties), -1)

	// 3. Generate Model Documentation Content as Plain Text
	// The docx library will handle the XML encoding
	var contentBuilder strings.Builder

	contentBuilder.WriteString("MODEL INVENTORY\n\n")
	contentBuilder.WriteString("Summary Overview:\n")
	contentBuilder.WriteString(fmt.Sprintf("  • Total Classes: %d\n", inv.TotalClasses))
	contentBuilder.WriteString(fmt.Sprintf("  • Total Properties: %d\n", inv.TotalProperties))
	contentBuilder.WriteString(fmt.Sprintf("  • Required Properties: %d\n\n", inv.TotalRequired))
	contentBuilder.WriteString(strings.Repeat("=", 80) + "\n\n")

	for i, mc := range classes {
		buildClassText(&contentBuilder, mc)

		// Add separator between classes
		if i < len(classes)-1 {
			contentBuilder.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
		}
	}

	// Inject content (the library handles XML encoding)
	doc.Replace("{{Content}}", contentBuilder.String(), -1)

	if err := doc.WriteToFile(cfg.GetReportPath("docx")); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// buildClassText builds plain text documentation for a single model class
func buildClassText(sb *strings.Builder, mc *model.ModelClass) {
	sb.WriteString(fmt.Sprintf("[CLASS] %s\n", mc.TypeName))
	sb.WriteString(fmt.Sprintf("File: %s\n", mc.File))
	if pk := mc.PrimaryKey(); pk != nil {
		sb.WriteString(fmt.Sprintf("Primary Key: %s (%s)\n", pk.Name, pk.DeclaredType))
	}
	sb.WriteString("\n")

	if len(mc.Properties) == 0 {
		sb.WriteString("No scaffoldable properties.\n")
		return
	}

	sb.WriteString("PROPERTIES:\n")
	sb.WriteString(fmt.Sprintf("%-25s %-20s %-15s %-10s %s\n", "Name", "Type", "Input Kind", "Required", "Display Name"))
	sb.WriteString(strings.Repeat("-", 100) + "\n")

	for _, p := range mc.Properties {
		required := "No"
		if p.IsRequired {
			required = "Yes"
		}

		name := p.Name
		if p.IsPrimaryKey {
			name = name + " *"
		}

		sb.WriteString(fmt.Sprintf("%-25s %-20s %-15s %-10s %s\n",
			truncate(name, 25),
			truncate(p.DeclaredType, 20),
			truncate(string(p.Kind), 15),
			required,
			p.DisplayName))

		if p.Description != "" {
			sb.WriteString(fmt.Sprintf("%-25s %s\n", "", p.Description))
		}
	}
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
