package csparser

import (
	"testing"

	"view-scaffold/internal/model"
)

// TestExtractMetadataDisplayName tests both annotation spellings
func TestExtractMetadataDisplayName(t *testing.T) {
	p := model.Property{Attributes: []string{`Display(Name = "Product name")`}}
	ExtractMetadata(&p)
	if p.DisplayName != "Product name" {
		t.Errorf("Display(Name = ...): got %q", p.DisplayName)
	}

	p = model.Property{Attributes: []string{`DisplayName("Friendly")`}}
	ExtractMetadata(&p)
	if p.DisplayName != "Friendly" {
		t.Errorf("DisplayName(...): got %q", p.DisplayName)
	}
}

// TestExtractMetadataDescription tests the named-argument and
// standalone-annotation forms
func TestExtractMetadataDescription(t *testing.T) {
	p := model.Property{Attributes: []string{`Display(Name = "Price", Description = "Unit price")`}}
	ExtractMetadata(&p)
	if p.Description != "Unit price" {
		t.Errorf("Description named argument: got %q", p.Description)
	}

	p = model.Property{Attributes: []string{`Description("Standalone text")`}}
	ExtractMetadata(&p)
	if p.Description != "Standalone text" {
		t.Errorf("Description annotation: got %q", p.Description)
	}
}

// TestExtractMetadataLengths tests that StringLength supplies the max
// and only an explicit MinimumLength supplies the min
func TestExtractMetadataLengths(t *testing.T) {
	p := model.Property{Attributes: []string{"StringLength(100)"}}
	ExtractMetadata(&p)
	if p.MaxLength == nil || *p.MaxLength != 100 {
		t.Fatalf("MaxLength: got %v, want 100", p.MaxLength)
	}
	if p.MinLength != nil {
		t.Errorf("MinLength must stay unset without MinimumLength, got %d", *p.MinLength)
	}

	p = model.Property{Attributes: []string{"StringLength(100, MinimumLength = 2)"}}
	ExtractMetadata(&p)
	if p.MaxLength == nil || *p.MaxLength != 100 {
		t.Errorf("MaxLength: got %v, want 100", p.MaxLength)
	}
	if p.MinLength == nil || *p.MinLength != 2 {
		t.Errorf("MinLength: got %v, want 2", p.MinLength)
	}

	p = model.Property{Attributes: []string{"MaxLength(50)", "MinLength(5)"}}
	ExtractMetadata(&p)
	if p.MaxLength == nil || *p.MaxLength != 50 {
		t.Errorf("MaxLength annotation: got %v, want 50", p.MaxLength)
	}
	if p.MinLength == nil || *p.MinLength != 5 {
		t.Errorf("MinLength annotation: got %v, want 5", p.MinLength)
	}

	t.Logf("✅ Length metadata extraction works")
}

// TestExtractMetadataFirstMatchWins tests that later annotations cannot
// overwrite an already-populated field
func TestExtractMetadataFirstMatchWins(t *testing.T) {
	p := model.Property{Attributes: []string{`DisplayName("First")`, `DisplayName("Second")`}}
	ExtractMetadata(&p)
	if p.DisplayName != "First" {
		t.Errorf("First match must win, got %q", p.DisplayName)
	}
}

// TestExtractMetadataAbsent tests that unmatched probes leave the
// optional fields unset
func TestExtractMetadataAbsent(t *testing.T) {
	p := model.Property{Attributes: []string{"Required"}}
	ExtractMetadata(&p)
	if p.DisplayName != "" || p.Description != "" || p.MaxLength != nil || p.MinLength != nil {
		t.Errorf("Unmatched probes populated fields: %+v", p)
	}
}
