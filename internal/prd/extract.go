package prd

import (
	"regexp"
	"strings"
)

var (
	// leadingComment matches a single HTML comment block at the very top
	// of the document, including trailing blank lines.
	leadingComment = regexp.MustCompile(`(?s)\A\s*<!--.*?-->\s*`)

	prdHeading = regexp.MustCompile(`(?m)^#\s+PRD:\s*(.+?)\s*$`)
	anyHeading = regexp.MustCompile(`(?m)^#\s+(.+?)\s*$`)
)

// ExtractProductName pulls a product name out of a PRD document.
// A leading comment block is stripped first. The "# PRD: <name>" form is
// preferred; the first top-level heading is the fallback. Returns false
// when the document has no heading at all.
func ExtractProductName(content string) (string, bool) {
	body := leadingComment.ReplaceAllString(content, "")

	if m := prdHeading.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := anyHeading.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
