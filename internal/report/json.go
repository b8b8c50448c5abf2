package report

import (
	"encoding/json"
	"os"

	"view-scaffold/internal/config"
	"view-scaffold/internal/model"
)

// JSON document shapes. The wire names are stable; the internal model
// can evolve without breaking downstream consumers.
type jsonInventory struct {
	AnalysisDate    string      `json:"analysisDate"`
	TotalClasses    int         `json:"totalClasses"`
	TotalProperties int         `json:"totalProperties"`
	TotalRequired   int         `json:"totalRequired"`
	Classes         []jsonClass `json:"classes"`
}

type jsonClass struct {
	TypeName   string         `json:"typeName"`
	ClassName  string         `json:"className"`
	File       string         `json:"file"`
	PrimaryKey string         `json:"primaryKey,omitempty"`
	Properties []jsonProperty `json:"properties"`
}

type jsonProperty struct {
	Name         string   `json:"name"`
	DeclaredType string   `json:"declaredType"`
	Kind         string   `json:"kind"`
	Nullable     bool     `json:"nullable,omitempty"`
	PrimaryKey   bool     `json:"primaryKey,omitempty"`
	Required     bool     `json:"required,omitempty"`
	DisplayName  string   `json:"displayName,omitempty"`
	Description  string   `json:"description,omitempty"`
	MaxLength    *int     `json:"maxLength,omitempty"`
	MinLength    *int     `json:"minLength,omitempty"`
	Attributes   []string `json:"attributes,omitempty"`
}

// JSONReporter writes the inventory as a machine-readable document
type JSONReporter struct {
	// Stateless
}

func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

func (r *JSONReporter) Export(inv *model.Inventory, cfg *config.Config) error {
	doc := jsonInventory{
		AnalysisDate:    inv.AnalysisDate,
		TotalClasses:    inv.TotalClasses,
		TotalProperties: inv.TotalProperties,
		TotalRequired:   inv.TotalRequired,
		Classes:         make([]jsonClass, 0, len(inv.Classes)),
	}

	for _, mc := range inv.Classes {
		jc := jsonClass{
			TypeName:   mc.TypeName,
			ClassName:  mc.ClassName,
			File:       mc.File,
			Properties: make([]jsonProperty, 0, len(mc.Properties)),
		}
		if pk := mc.PrimaryKey(); pk != nil {
			jc.PrimaryKey = pk.Name
		}

		for _, p := range mc.Properties {
			jc.Properties = append(jc.Properties, jsonProperty{
				Name:         p.Name,
				DeclaredType: p.DeclaredType,
				Kind:         string(p.Kind),
				Nullable:     p.IsNullable,
				PrimaryKey:   p.IsPrimaryKey,
				Required:     p.IsRequired,
				DisplayName:  p.DisplayName,
				Description:  p.Description,
				MaxLength:    p.MaxLength,
				MinLength:    p.MinLength,
				Attributes:   p.Attributes,
			})
		}
		doc.Classes = append(doc.Classes, jc)
	}

	file, err := os.Create(cfg.GetReportPath("json"))
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
