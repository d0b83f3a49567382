package entity

import "strings"

// Domain represents the subject-matter bucket a text query is routed to
type Domain string

const (
	DomainPlant     Domain = "plant"
	DomainFruit     Domain = "fruit"
	DomainLivestock Domain = "livestock"
	DomainFish      Domain = "fish"

	// DomainNone is the gate decision for out-of-scope text. It never
	// appears in a response; out-of-scope answers report DomainPlant,
	// the contractual default.
	DomainNone Domain = "none"
)

// AnswerType distinguishes textual answers from image requests
type AnswerType string

const (
	AnswerTypeText  AnswerType = "text"
	AnswerTypeImage AnswerType = "image"
)

// TextQuery represents a free-text question
type TextQuery struct {
	Text string `json:"text"`
}

// Normalized returns the query text with surrounding whitespace removed
func (q *TextQuery) Normalized() string {
	return strings.TrimSpace(q.Text)
}

// IsEmpty reports whether the query is blank after trimming
func (q *TextQuery) IsEmpty() bool {
	return q.Normalized() == ""
}

// TextAnswer represents the result of the text pipeline.
// ImageQuery is present iff Type is AnswerTypeImage.
type TextAnswer struct {
	Type       AnswerType `json:"type"`
	Domain     Domain     `json:"domain"`
	Answer     string     `json:"answer"`
	ImageQuery *string    `json:"imageQuery,omitempty"`
}

// NewTextualAnswer creates a plain text answer
func NewTextualAnswer(domain Domain, answer string) *TextAnswer {
	return &TextAnswer{
		Type:   AnswerTypeText,
		Domain: domain,
		Answer: answer,
	}
}

// NewImageAnswer creates an image-intent answer echoing the cleaned query
func NewImageAnswer(domain Domain, answer, imageQuery string) *TextAnswer {
	return &TextAnswer{
		Type:       AnswerTypeImage,
		Domain:     domain,
		Answer:     answer,
		ImageQuery: &imageQuery,
	}
}
