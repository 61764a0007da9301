package calc

import "strings"

// headerMarker introduces a custom delimiter header.
const headerMarker = "//"

// defaultDelimiters split the payload when no header is present.
var defaultDelimiters = []string{",", "\n"}

// resolveDelimiters returns the delimiter set and the payload for input.
// Without a header the defaults apply and the payload is the whole input.
// With a header ("//<spec>\n") the spec replaces the defaults: either a
// single literal delimiter, or one or more bracketed literals like
// "[***][%%]" which may be any length and may contain characters that would
// be special in a pattern syntax. Delimiters are always literals here, so no
// escaping is ever needed downstream.
func resolveDelimiters(input string) (delims []string, payload string, err error) {
	if !strings.HasPrefix(input, headerMarker) {
		return defaultDelimiters, input, nil
	}

	body, payload, ok := strings.Cut(input[len(headerMarker):], "\n")
	if !ok {
		return nil, "", ErrUnterminatedHeader
	}

	if strings.HasPrefix(body, "[") {
		delims = scanBracketGroups(body)
	} else if body != "" {
		delims = []string{body}
	}

	if len(delims) == 0 {
		return nil, "", ErrEmptyHeader
	}

	return delims, payload, nil
}

// scanBracketGroups collects every "[...]" group in body, left to right.
// Characters outside a group are ignored; an unclosed trailing group yields
// nothing.
func scanBracketGroups(body string) []string {
	var (
		groups     []string
		current    strings.Builder
		collecting bool
	)

	for _, r := range body {
		switch {
		case !collecting && r == '[':
			collecting = true
			current.Reset()
		case collecting && r == ']':
			if current.Len() > 0 {
				groups = append(groups, current.String())
			}
			collecting = false
		case collecting:
			current.WriteRune(r)
		}
	}

	return groups
}

// splitTokens cuts payload at every occurrence of any delimiter in a single
// left-to-right pass. All delimiters are equally valid boundaries; when more
// than one matches at the same position the longest wins, so "**" is never
// consumed as two boundaries by a shorter "*" alternative. Delimiters are
// matched as literal substrings, never as patterns.
func splitTokens(payload string, delims []string) []string {
	var tokens []string

	start := 0
	for i := 0; i < len(payload); {
		d := longestMatchAt(payload, i, delims)
		if d == 0 {
			i++
			continue
		}

		tokens = append(tokens, payload[start:i])
		i += d
		start = i
	}

	return append(tokens, payload[start:])
}

// longestMatchAt returns the length of the longest delimiter matching at
// position i, or 0 if none matches.
func longestMatchAt(s string, i int, delims []string) int {
	best := 0
	for _, d := range delims {
		if len(d) > best && strings.HasPrefix(s[i:], d) {
			best = len(d)
		}
	}

	return best
}
