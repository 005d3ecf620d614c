package document

import "strings"

// NotFound is returned by FindMatchingClose when the element is never closed.
const NotFound = -1

// FindMatchingClose returns the offset of the closing tag that balances an opening
// tag of the given name ending right before contentStart. Nested elements with the
// same name are counted; every other tag is ignored.
func FindMatchingClose(doc string, contentStart int, tag string) int {
	if contentStart < 0 || contentStart > len(doc) || tag == "" {
		return NotFound
	}

	lower := asciiLower(doc)
	open := "<" + asciiLower(tag)
	closing := "</" + asciiLower(tag) + ">"

	depth := 1
	pos := contentStart
	for pos < len(lower) {
		nextClose := indexFrom(lower, closing, pos)
		if nextClose == NotFound {
			return NotFound
		}

		nextOpen := nextOpeningTag(lower, open, pos)
		if nextOpen != NotFound && nextOpen < nextClose {
			depth++
			pos = nextOpen + len(open)
			continue
		}

		depth--
		if depth == 0 {
			return nextClose
		}
		pos = nextClose + len(closing)
	}

	return NotFound
}

// nextOpeningTag finds "<tag" followed by a name boundary, so that "<li" never
// matches "<link".
func nextOpeningTag(lower, open string, pos int) int {
	for {
		idx := indexFrom(lower, open, pos)
		if idx == NotFound {
			return NotFound
		}
		end := idx + len(open)
		if end >= len(lower) || isNameBoundary(lower[end]) {
			return idx
		}
		pos = end
	}
}

func isNameBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '>', '/':
		return true
	}
	return false
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return NotFound
	}
	idx := strings.Index(s[from:], substr)
	if idx == -1 {
		return NotFound
	}
	return from + idx
}

// asciiLower lowercases only ASCII letters so byte offsets stay aligned with the
// original string.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
