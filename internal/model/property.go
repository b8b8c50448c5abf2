package model

import (
	"fmt"
	"strings"
)

// InputKind is the semantic form-input category assigned to a property
type InputKind string

const (
	KindText     InputKind = "text"
	KindNumber   InputKind = "number"
	KindCheckbox InputKind = "checkbox"
	KindDate     InputKind = "date"
	KindTime     InputKind = "time"
	KindDateTime InputKind = "datetime-local"
	KindEmail    InputKind = "email"
	KindPhone    InputKind = "tel"
	KindPassword InputKind = "password"
	KindURL      InputKind = "url"
	KindColor    InputKind = "color"
	KindRange    InputKind = "range"
	KindFile     InputKind = "file"
	KindHidden   InputKind = "hidden"
)

// Property represents one recovered field of a scanned model class.
// Instances are immutable once constructed; Name and DeclaredType are
// guaranteed non-empty for every property placed in an extraction result.
type Property struct {
	// Identity
	Name         string // e.g., "UserName"
	DeclaredType string // Cleaned type token, e.g., "int", "string", "DateTime?"

	// Classification
	IsNullable   bool // Raw type carries a trailing '?'
	IsPrimaryKey bool // By naming convention or [Key] annotation
	IsRequired   bool // Explicit [Required] or the non-nullable default

	// Raw annotation bodies in source order, e.g., `Required`, `StringLength(100)`
	Attributes []string

	// Form rendering
	Kind InputKind // Semantic input kind for view scaffolding

	// Display metadata mined from annotations. Empty string / nil pointer
	// means "not specified", which is distinct from an explicit zero.
	DisplayName string
	Description string
	MaxLength   *int
	MinLength   *int
}

// Label returns the text to render next to the property's input:
// the annotated display name if present, else the property name.
// Value receiver so templates can call it on ranged elements.
func (p Property) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// HasAttribute reports whether any collected annotation contains the
// given keyword (case-insensitive substring match).
func (p Property) HasAttribute(keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, attr := range p.Attributes {
		if strings.Contains(strings.ToLower(attr), keyword) {
			return true
		}
	}
	return false
}

// String returns a human-readable representation of the property
func (p Property) String() string {
	flags := []string{}
	if p.IsPrimaryKey {
		flags = append(flags, "PK")
	}
	if p.IsRequired {
		flags = append(flags, "REQUIRED")
	}
	if p.IsNullable {
		flags = append(flags, "NULLABLE")
	}
	return fmt.Sprintf("%s %s [%s] (%s)", p.DeclaredType, p.Name, strings.Join(flags, ","), p.Kind)
}

// Clone returns a deep copy of the property list. The cache stores its
// own copy so callers never alias cache-internal state.
func Clone(props []Property) []Property {
	if props == nil {
		return nil
	}
	out := make([]Property, len(props))
	copy(out, props)
	for i := range out {
		if props[i].Attributes != nil {
			out[i].Attributes = append([]string(nil), props[i].Attributes...)
		}
		if props[i].MaxLength != nil {
			v := *props[i].MaxLength
			out[i].MaxLength = &v
		}
		if props[i].MinLength != nil {
			v := *props[i].MinLength
			out[i].MinLength = &v
		}
	}
	return out
}
