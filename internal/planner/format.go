// README: Markdown cleanup applied to LLM prose at the delivery layer.
package planner

import "regexp"

var (
	boldPattern    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern  = regexp.MustCompile(`\*(.*?)\*`)
	headingPattern = regexp.MustCompile(`#+\s*`)
)

// CleanMarkdown strips bold and italic markers and heading hashes so the
// itinerary reads as plain text. The engine itself returns the LLM prose
// untouched; callers opt in to this cleanup.
func CleanMarkdown(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = headingPattern.ReplaceAllString(text, "")
	return text
}
