package csparser

import (
	"testing"
)

// TestExtractCandidatesBasic tests recognition of stacked annotations
// and declarations inside a located class body
func TestExtractCandidatesBasic(t *testing.T) {
	source := `using System;

namespace Demo
{
    public class Product
    {
        public int Id { get; set; }

        [Required]
        [StringLength(100, MinimumLength = 2)]
        public string Name { get; set; }

        public decimal Price { get; set; }
    }
}`

	candidates := ExtractCandidates(source, "Product")
	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d: %+v", len(candidates), candidates)
	}

	if candidates[0].Name != "Id" || candidates[0].RawType != "int" {
		t.Errorf("Candidate 0: got %+v", candidates[0])
	}
	if len(candidates[0].Attributes) != 0 {
		t.Errorf("Id should carry no annotations, got %v", candidates[0].Attributes)
	}

	if candidates[1].Name != "Name" || candidates[1].RawType != "string" {
		t.Errorf("Candidate 1: got %+v", candidates[1])
	}
	if len(candidates[1].Attributes) != 2 {
		t.Fatalf("Name should carry 2 annotations, got %v", candidates[1].Attributes)
	}
	if candidates[1].Attributes[0] != "Required" {
		t.Errorf("Expected first annotation 'Required', got %q", candidates[1].Attributes[0])
	}
	if candidates[1].Attributes[1] != "StringLength(100, MinimumLength = 2)" {
		t.Errorf("Expected raw annotation body, got %q", candidates[1].Attributes[1])
	}

	if len(candidates[2].Attributes) != 0 {
		t.Errorf("Annotations leaked onto Price: %v", candidates[2].Attributes)
	}

	t.Logf("✅ Recognized %d candidates in source order", len(candidates))
}

// TestExtractCandidatesQuotedArguments tests that annotation string
// arguments survive even though normalization blanks literal bodies
func TestExtractCandidatesQuotedArguments(t *testing.T) {
	source := `public class Item
{
    [Display(Name = "Item name", Description = "What buyers see")]
    public string Title { get; set; }
}`

	candidates := ExtractCandidates(source, "Item")
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Attributes[0] != `Display(Name = "Item name", Description = "What buyers see")` {
		t.Errorf("Quoted arguments were corrupted: %q", candidates[0].Attributes[0])
	}
}

// TestExtractCandidatesBufferCleared tests that an intervening statement
// drops buffered annotations so they never attach to a later member
func TestExtractCandidatesBufferCleared(t *testing.T) {
	source := `public class Account
{
    [Required]
    private readonly object gate = new object();

    public string Owner { get; set; }
}`

	candidates := ExtractCandidates(source, "Account")
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if len(candidates[0].Attributes) != 0 {
		t.Errorf("Annotation from unrelated member leaked onto Owner: %v", candidates[0].Attributes)
	}
}

// TestExtractCandidatesNeutralLines tests that blank lines between an
// annotation and its declaration do not break adjacency
func TestExtractCandidatesNeutralLines(t *testing.T) {
	source := `public class Note
{
    [Required]

    public string Body { get; set; }
}`

	candidates := ExtractCandidates(source, "Note")
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if len(candidates[0].Attributes) != 1 || candidates[0].Attributes[0] != "Required" {
		t.Errorf("Blank line broke annotation adjacency: %v", candidates[0].Attributes)
	}
}

// TestExtractCandidatesWholeFileFallback tests the scan path taken when
// the class header cannot be located, e.g. a file whose declared class
// name does not match the name being searched for
func TestExtractCandidatesWholeFileFallback(t *testing.T) {
	source := `namespace Demo
{
    public class OddballModel
    {
        public int Count { get; set; }
    }
}`

	candidates := ExtractCandidates(source, "Oddball")
	if len(candidates) != 1 {
		t.Fatalf("Fallback scan missed the property, got %d candidates", len(candidates))
	}
	if candidates[0].Name != "Count" {
		t.Errorf("Expected Count, got %q", candidates[0].Name)
	}
}

// TestExtractCandidatesIgnoresMethods tests that method declarations,
// expression statements and comments are not recognized as properties
func TestExtractCandidatesIgnoresMethods(t *testing.T) {
	source := `public class Service
{
    public string Format(int n) { return n.ToString(); }

    // public string Phantom { get; set; }

    public int Real { get; set; }
}`

	candidates := ExtractCandidates(source, "Service")
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d: %+v", len(candidates), candidates)
	}
	if candidates[0].Name != "Real" {
		t.Errorf("Expected Real, got %q", candidates[0].Name)
	}
}

// TestNormalizeWhitespace tests type token cleanup
func TestNormalizeWhitespace(t *testing.T) {
	got := NormalizeWhitespace("  Dictionary<string,   int> ")
	if got != "Dictionary<string, int>" {
		t.Errorf("Expected collapsed whitespace, got %q", got)
	}
}
