package csparser

import (
	"regexp"
	"strings"
)

// classHeaderPattern matches a class declaration header: optional
// modifiers, the class keyword, the target name, an optional
// base/interface clause. The opening brace may sit on the same or a
// following line, so it is located separately.
const classHeaderPattern = `(?m)^[ \t]*(?:(?:public|internal|private|protected|sealed|abstract|static|partial)\s+)*class\s+%s\b[^{\n]*`

// ClassSpan is the line region of one class body inside normalized text.
// Lines are zero-based indices into the line slice; Start is the first
// line after the opening brace, End is exclusive.
type ClassSpan struct {
	Start int
	End   int
}

// LocateClassBody finds the textual region belonging to the named class
// in normalized source, tracked by brace depth from the header's opening
// brace. Normalization preserves line count, so the returned span indexes
// the same lines in the raw source.
//
// When the header cannot be matched (e.g., the declaration is split
// across partial-class files, a known limitation), found is false and
// the recognizer falls back to scanning the entire text.
func LocateClassBody(normalized, className string) (span ClassSpan, found bool) {
	headerRegex := regexp.MustCompile(strings.Replace(classHeaderPattern, "%s", regexp.QuoteMeta(className), 1))
	loc := headerRegex.FindStringIndex(normalized)
	if loc == nil {
		return ClassSpan{}, false
	}

	open := strings.IndexByte(normalized[loc[1]:], '{')
	if open == -1 {
		return ClassSpan{}, false
	}
	bodyStart := loc[1] + open + 1

	bodyEnd := findClosingBrace(normalized, bodyStart)
	if bodyEnd <= bodyStart {
		return ClassSpan{}, false
	}

	span.Start = strings.Count(normalized[:bodyStart], "\n") + 1
	span.End = strings.Count(normalized[:bodyEnd], "\n") + 1
	return span, true
}

// findClosingBrace returns the index just past the brace matching the
// one that opened at start-1. Runs on normalized text, so string and
// comment bodies are already blanked and every brace is structural.
func findClosingBrace(content string, start int) int {
	depth := 1
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(content)
}
