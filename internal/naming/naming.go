// Package naming derives filesystem- and branch-safe slugs from product names.
package naming

import (
	"regexp"
	"strings"
)

// FallbackSlug is used when sanitization leaves nothing usable.
const FallbackSlug = "data-product-prd"

// maxSlugLen caps slug length for file names and branch names.
const maxSlugLen = 100

var (
	nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)
	doubleDash  = regexp.MustCompile(`-{2,}`)
)

// Sanitize converts a human-readable product name into a slug.
// The result is the single source of truth for both the destination file
// name and the branch name fragment, so it must be deterministic.
func Sanitize(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlnumRun.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	// Redundant after the run-collapse above, kept as a safety net.
	slug = doubleDash.ReplaceAllString(slug, "-")

	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
		slug = strings.TrimRight(slug, "-")
	}

	if slug == "" {
		return FallbackSlug
	}
	return slug
}
