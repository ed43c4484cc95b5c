// Package htmlsanitize cleans stored display strings before they reach a
// template. Course, group, and user names come from an external import and may
// carry markup; rosters always render them as plain text.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips all markup from s and returns the readable text content.
// Entities introduced by the sanitizer are decoded so the result is safe to
// pass through html/template's normal escaping exactly once.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
