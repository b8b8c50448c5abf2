package csparser

// Normalize strips comment and literal bodies from raw C# source so they
// cannot corrupt pattern matching downstream. Block comments, line
// comments, double-quoted strings, verbatim (@"...") strings, and char
// literals are blanked in place: delimiter characters and newlines are
// preserved, interior bytes become spaces. Line count never changes.
//
// Normalization cannot fail. Malformed or unterminated tokens degrade to
// best-effort blanking through end of input.
func Normalize(content string) string {
	const (
		stateCode = iota
		stateLineComment
		stateBlockComment
		stateString
		stateVerbatimString
		stateChar
	)

	src := []byte(content)
	out := make([]byte, len(src))
	state := stateCode
	escaped := false

	// blank writes a space for interior bytes, keeping newlines so the
	// line structure survives
	blank := func(i int) {
		if src[i] == '\n' || src[i] == '\r' {
			out[i] = src[i]
		} else {
			out[i] = ' '
		}
	}

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch state {
		case stateLineComment:
			if c == '\n' {
				out[i] = c
				state = stateCode
			} else {
				blank(i)
			}

		case stateBlockComment:
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				out[i] = '*'
				out[i+1] = '/'
				i++
				state = stateCode
			} else {
				blank(i)
			}

		case stateString:
			if escaped {
				blank(i)
				escaped = false
			} else if c == '\\' {
				blank(i)
				escaped = true
			} else if c == '"' {
				out[i] = c
				state = stateCode
			} else {
				blank(i)
			}

		case stateVerbatimString:
			// Verbatim strings escape the quote by doubling it
			if c == '"' {
				if i+1 < len(src) && src[i+1] == '"' {
					blank(i)
					blank(i + 1)
					i++
				} else {
					out[i] = c
					state = stateCode
				}
			} else {
				blank(i)
			}

		case stateChar:
			if escaped {
				blank(i)
				escaped = false
			} else if c == '\\' {
				blank(i)
				escaped = true
			} else if c == '\'' {
				out[i] = c
				state = stateCode
			} else {
				blank(i)
			}

		default: // stateCode
			if c == '/' && i+1 < len(src) && src[i+1] == '/' {
				out[i] = '/'
				out[i+1] = '/'
				i++
				state = stateLineComment
				continue
			}
			if c == '/' && i+1 < len(src) && src[i+1] == '*' {
				out[i] = '/'
				out[i+1] = '*'
				i++
				state = stateBlockComment
				continue
			}
			if c == '@' && i+1 < len(src) && src[i+1] == '"' {
				out[i] = '@'
				out[i+1] = '"'
				i++
				state = stateVerbatimString
				escaped = false
				continue
			}
			if c == '"' {
				out[i] = c
				state = stateString
				escaped = false
				continue
			}
			if c == '\'' {
				out[i] = c
				state = stateChar
				escaped = false
				continue
			}
			out[i] = c
		}
	}

	return string(out)
}
