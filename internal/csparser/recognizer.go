package csparser

import (
	"regexp"
	"strings"
)

// Candidate is a raw (name, type, attributes) triple recognized by
// line-scanning, prior to classification. Attributes hold the annotation
// bodies collected immediately above the declaration, in source order.
type Candidate struct {
	Name       string
	RawType    string
	Attributes []string
}

var (
	// A bracketed annotation alone on its line, e.g. [Required] or
	// [StringLength(100, MinimumLength = 2)]
	annotationLineRegex = regexp.MustCompile(`^\s*\[(.+)\]\s*$`)

	// An auto-property declaration with its accessor block on the same
	// line: optional modifiers, a type token, an identifier, then
	// { get; ... }. Greedy type group backtracks to leave the last word
	// as the property name, the same trick the teacher regexes rely on.
	propertyLineRegex = regexp.MustCompile(`^\s*(?:(?:public|private|protected|internal|static|virtual|override|new|required)\s+)*([\w.<>,\[\]?\s]+?)\s+([A-Za-z_]\w*)\s*\{[^{}]*\bget\b[^{}]*\}`)

	classKeywordRegex = regexp.MustCompile(`\bclass\s+[A-Za-z_]`)
)

// ExtractCandidates recognizes property declarations for the named class
// in raw source text. Structure is matched against normalized text;
// annotation bodies are lifted from the raw line at the same index,
// which is why normalization must preserve line count.
//
// If the class header cannot be located, the whole file is scanned with
// an in-class flag driven by brace depth.
func ExtractCandidates(raw, className string) []Candidate {
	normalized := Normalize(raw)
	rawLines := strings.Split(raw, "\n")
	normLines := strings.Split(normalized, "\n")

	if span, found := LocateClassBody(normalized, className); found {
		end := span.End
		if end > len(normLines) {
			end = len(normLines)
		}
		return scanLines(normLines[span.Start:end], rawLines[span.Start:end], true)
	}
	return scanLines(normLines, rawLines, false)
}

// scanLines is the recognizer state machine. Two pieces of state: the
// ordered pending-annotations buffer and the in-class flag. Annotations
// accumulate across blank lines but are dropped as soon as an unrelated
// statement intervenes, so they never leak onto a later member.
func scanLines(normLines, rawLines []string, inClass bool) []Candidate {
	var candidates []Candidate
	var pending []string

	scopedToBody := inClass
	depth := 0
	classDepth := 0

	for i, line := range normLines {
		trimmed := strings.TrimSpace(line)

		if !scopedToBody {
			if !inClass && classKeywordRegex.MatchString(line) {
				inClass = true
				classDepth = depth
			}
			entered := inClass
			depth += strings.Count(line, "{") - strings.Count(line, "}")
			if entered && depth <= classDepth && strings.Contains(line, "}") {
				inClass = false
			}
		}

		// Neutral lines: skipped without touching buffered state
		if trimmed == "" || strings.HasPrefix(trimmed, "using ") || strings.HasPrefix(trimmed, "namespace ") || strings.HasPrefix(trimmed, "namespace;") {
			continue
		}

		if m := annotationLineRegex.FindStringSubmatch(line); m != nil {
			// Structure matched on the normalized line; the body comes
			// from the raw line so quoted arguments survive
			body := m[1]
			if rm := annotationLineRegex.FindStringSubmatch(rawLines[i]); rm != nil {
				body = rm[1]
			}
			pending = append(pending, strings.TrimSpace(body))
			continue
		}

		if inClass {
			if m := propertyLineRegex.FindStringSubmatch(line); m != nil {
				rawType := NormalizeWhitespace(m[1])
				name := m[2]
				if rawType != "" && name != "" {
					candidates = append(candidates, Candidate{
						Name:       name,
						RawType:    rawType,
						Attributes: append([]string(nil), pending...),
					})
				}
				pending = nil
				continue
			}
		}

		// Any other statement breaks annotation adjacency
		pending = nil
	}

	return candidates
}

// NormalizeWhitespace reduces runs of whitespace to single spaces and
// trims the ends, cleaning up type tokens like "Dictionary<string, int>"
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
