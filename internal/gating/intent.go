package gating

import (
	"regexp"
	"strings"
)

// An image request is either a request verb eventually followed by an
// image noun, or an image noun followed by "of".
var imageIntentPattern = regexp.MustCompile(
	`(?i)\b(?:show|give|display|get|need|want)\b.*\b(?:image|photo|picture|pic)s?\b` +
		`|\b(?:image|photo|picture|pic)s?\s+of\b`)

// Words removed when extracting the search phrase: request verbs, image
// nouns and connective filler around them.
var queryStripPattern = regexp.MustCompile(
	`(?i)\b(?:show|give|display|get|need|want|image|photo|picture|pic|images|photos|pictures|pics|of|me|a|an|the|please|some|i|you|can|could|my|your|us)\b`)

var (
	punctPattern      = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// DetectImageIntent reports whether the text asks for an image rather
// than a textual answer
func DetectImageIntent(text string) bool {
	return imageIntentPattern.MatchString(text)
}

// ExtractImageQuery produces the cleaned image-search phrase: request
// verbs, image nouns and filler words are stripped, punctuation removed
// and whitespace collapsed. If cleaning empties the string the original
// text is returned verbatim.
func ExtractImageQuery(text string) string {
	cleaned := queryStripPattern.ReplaceAllString(text, " ")
	cleaned = punctPattern.ReplaceAllString(cleaned, "")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return text
	}
	return cleaned
}
