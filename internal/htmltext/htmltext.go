// Package htmltext strips markup out of portal pages that are too irregular
// to parse as a document tree. Script and style blocks are removed before
// tags, so their payloads never leak into the text.
package htmltext

import (
	"regexp"
	"strings"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	entityRe = regexp.MustCompile(`&\w+;`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// Clean removes scripts, styles, tags and entities, keeping line structure:
// every tag becomes a newline so block boundaries survive.
func Clean(html string) string {
	s := scriptRe.ReplaceAllString(html, "")
	s = styleRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "\n")
	return entityRe.ReplaceAllString(s, " ")
}

// CleanCollapsed is Clean with all whitespace collapsed to single spaces.
func CleanCollapsed(html string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(Clean(html), " "))
}

// Lines cleans the markup and returns the non-empty trimmed lines.
func Lines(html string) []string {
	var lines []string
	for _, l := range strings.Split(Clean(html), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// StripTags removes markup from an HTML fragment without touching line
// structure beyond what the tags themselves separated.
func StripTags(fragment string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(fragment, ""))
}
