package csparser

import (
	"regexp"
	"strconv"

	"view-scaffold/internal/model"
)

// Four independent probes over the collected annotation bodies. Each
// pattern that fails to match leaves its field unset; an absent length
// is nil, never zero.
var (
	// [Display(Name = "Product name")] or [DisplayName("Product name")]
	displayNameRegex = regexp.MustCompile(`(?i)display(?:name)?\s*\(\s*(?:name\s*=\s*)?"([^"]*)"`)

	// [Display(..., Description = "...")] or [Description("...")]
	descriptionRegex = regexp.MustCompile(`(?i)description\s*(?:=\s*|\(\s*)"([^"]*)"`)

	// [MaxLength(100)] or [StringLength(100, ...)]
	maxLengthRegex = regexp.MustCompile(`(?i)(?:maxlength|stringlength)\s*\(\s*(\d+)`)

	// [MinLength(2)] or [StringLength(100, MinimumLength = 2)]
	minLengthRegex = regexp.MustCompile(`(?i)min(?:imum)?length\s*(?:\(\s*|=\s*)(\d+)`)
)

// ExtractMetadata mines the property's annotations for display name,
// description, and length bounds, populating the optional fields in
// place when a pattern matches.
func ExtractMetadata(p *model.Property) {
	for _, attr := range p.Attributes {
		if p.DisplayName == "" {
			if m := displayNameRegex.FindStringSubmatch(attr); m != nil {
				p.DisplayName = m[1]
			}
		}
		if p.Description == "" {
			if m := descriptionRegex.FindStringSubmatch(attr); m != nil {
				p.Description = m[1]
			}
		}
		if p.MaxLength == nil {
			if m := maxLengthRegex.FindStringSubmatch(attr); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					p.MaxLength = &n
				}
			}
		}
		if p.MinLength == nil {
			if m := minLengthRegex.FindStringSubmatch(attr); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					p.MinLength = &n
				}
			}
		}
	}
}
