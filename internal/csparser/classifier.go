package csparser

import (
	"strings"

	"view-scaffold/internal/model"
)

// Classification precedence, evaluated top to bottom. This ordering is
// the most bug-prone part of the subsystem, so it lives in one place:
//
//  1. Skip rules drop the candidate entirely (audit/version field names,
//     computed / not-persisted / database-generated annotations).
//  2. Nullability comes from the trailing '?' on the raw type.
//  3. Primary key: name is "id", name ends in "id", or a [Key] annotation.
//  4. Required: an explicit [Required] annotation always wins; otherwise
//     a property is required when it is neither nullable nor the key.

// skipNameSuffixes is the closed set of conventional non-editable
// audit/version field name patterns
var skipNameSuffixes = []string{
	"createdat",
	"updatedat",
	"createddate",
	"updateddate",
	"modifieddate",
	"rowversion",
}

// skipAttributeKeywords mark members that are computed, not persisted,
// or database-generated. Matched as substrings so argument forms like
// DatabaseGenerated(DatabaseGeneratedOption.Computed) are caught too.
var skipAttributeKeywords = []string{
	"notmapped",
	"databasegenerated",
	"computed",
	"timestamp",
	"scaffoldcolumn(false",
}

// Classify turns a recognized candidate into a model.Property, or
// returns ok=false when the skip rules drop it. Skip decisions run
// before metadata extraction so dropped members cost nothing more.
func Classify(c Candidate) (model.Property, bool) {
	if SkipReason(c) != "" {
		return model.Property{}, false
	}

	p := model.Property{
		Name:         c.Name,
		DeclaredType: c.RawType,
		Attributes:   append([]string(nil), c.Attributes...),
	}

	p.IsNullable = strings.HasSuffix(c.RawType, "?")
	p.IsPrimaryKey = isPrimaryKey(c)

	if hasAttributeNamed(c.Attributes, "required") {
		// Explicit annotation overrides the nullable/primary-key defaults
		p.IsRequired = true
	} else {
		p.IsRequired = !p.IsNullable && !p.IsPrimaryKey
	}

	ExtractMetadata(&p)
	p.Kind = KindFor(p)

	return p, true
}

// SkipReason reports why a candidate should never become a property,
// or "" when it survives
func SkipReason(c Candidate) string {
	lower := strings.ToLower(c.Name)
	for _, suffix := range skipNameSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return "audit/version field name (" + suffix + ")"
		}
	}
	for _, attr := range c.Attributes {
		attrLower := strings.ToLower(attr)
		for _, keyword := range skipAttributeKeywords {
			if strings.Contains(attrLower, keyword) {
				return "annotation marks member as not scaffoldable (" + keyword + ")"
			}
		}
	}
	return ""
}

func isPrimaryKey(c Candidate) bool {
	lower := strings.ToLower(c.Name)
	if lower == "id" || strings.HasSuffix(lower, "id") {
		return true
	}
	return hasAttributeNamed(c.Attributes, "key")
}

// hasAttributeNamed checks the leading identifier of each annotation
// (and of each comma-separated segment within one bracket pair) against
// name. Identifier comparison rather than substring keeps ForeignKey
// from reading as a key designation.
func hasAttributeNamed(attrs []string, name string) bool {
	for _, attr := range attrs {
		for _, segment := range strings.Split(attr, ",") {
			if strings.EqualFold(leadingIdentifier(segment), name) {
				return true
			}
		}
	}
	return false
}

// leadingIdentifier returns the identifier an annotation segment starts
// with: "StringLength(100" -> "StringLength", " Required " -> "Required"
func leadingIdentifier(s string) string {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (end > 0 && c >= '0' && c <= '9') {
			end++
			continue
		}
		break
	}
	return s[:end]
}
