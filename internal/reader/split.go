package reader

import (
	"regexp"
	"strings"
)

// Delimiter is the three-character boundary marker that opens and closes a
// frontmatter block.
const Delimiter = "---"

var boundary = regexp.MustCompile(`(?m)^---$`)

// Split separates raw text into a metadata block and a body. The text is
// trimmed first; when it does not open with the delimiter, or splitting on
// delimiter lines does not yield exactly three segments, the whole trimmed
// text is returned as the body with no metadata block. The fallback is
// silent and deterministic.
func Split(text string) (block string, body string, found bool) {
	trimmed := strings.TrimSpace(text)

	if !strings.HasPrefix(trimmed, Delimiter) {
		return "", trimmed, false
	}

	parts := boundary.Split(trimmed, 3)
	if len(parts) != 3 {
		return "", trimmed, false
	}

	return parts[1], parts[2], true
}
