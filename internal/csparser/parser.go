package csparser

import (
	"regexp"

	"view-scaffold/internal/logger"
	"view-scaffold/internal/model"
)

var namespaceRegex = regexp.MustCompile(`(?m)^\s*namespace\s+([\w.]+)`)

// ExtractNamespace returns the first namespace declaration in the
// source, or "" when none is present (file-scoped and block forms both
// match)
func ExtractNamespace(content string) string {
	if m := namespaceRegex.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}

// ExtractProperties runs the full extraction pipeline over raw C# source
// for the named class: normalization, class-body isolation, line-oriented
// recognition, classification, metadata derivation, input-kind mapping.
//
// The result preserves source order. Candidates that fail recognition or
// hit a skip rule are never emitted; every returned property has a
// non-empty name and declared type. An empty slice is a legitimate
// outcome (property-less class, missing class, unrecognized layout) and
// is not an error.
func ExtractProperties(raw, className string) []model.Property {
	candidates := ExtractCandidates(raw, className)
	if len(candidates) == 0 {
		return nil
	}

	props := make([]model.Property, 0, len(candidates))
	for _, c := range candidates {
		if reason := SkipReason(c); reason != "" {
			logger.LogSkippedMember(className, c.Name, reason)
			continue
		}
		if p, ok := Classify(c); ok {
			props = append(props, p)
		}
	}
	return props
}
