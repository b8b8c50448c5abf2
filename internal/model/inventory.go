package model

import "strings"

// ModelClass represents one scanned model class and its recovered properties
type ModelClass struct {
	TypeName   string // Fully qualified name, e.g., "MyShop.Models.Product"
	ClassName  string // Simple name, e.g., "Product"
	File       string // Source file path
	Properties []Property
}

// PrimaryKey returns the first primary-key property, or nil
func (m *ModelClass) PrimaryKey() *Property {
	for i := range m.Properties {
		if m.Properties[i].IsPrimaryKey {
			return &m.Properties[i]
		}
	}
	return nil
}

// Inventory represents the system-level statistics for the report overview
type Inventory struct {
	TotalClasses    int
	TotalProperties int
	TotalRequired   int
	AnalysisDate    string
	Classes         []*ModelClass
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		Classes: make([]*ModelClass, 0),
	}
}

// Add registers a model class and updates the counters
func (inv *Inventory) Add(mc *ModelClass) {
	if mc == nil || strings.TrimSpace(mc.ClassName) == "" {
		return
	}
	inv.Classes = append(inv.Classes, mc)
	inv.TotalClasses++
	inv.TotalProperties += len(mc.Properties)
	for _, p := range mc.Properties {
		if p.IsRequired {
			inv.TotalRequired++
		}
	}
}

// SplitTypeName splits a fully qualified type name into namespace and class.
// Example: "MyShop.Models.Product" -> ("MyShop.Models", "Product")
func SplitTypeName(fqtn string) (namespace, class string) {
	lastDot := strings.LastIndex(fqtn, ".")
	if lastDot == -1 {
		return "", fqtn
	}
	return fqtn[:lastDot], fqtn[lastDot+1:]
}
