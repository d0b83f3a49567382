package gating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectImageIntent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "verb followed by image noun",
			text:     "show me a photo of rice",
			expected: true,
		},
		{
			name:     "want with plural noun",
			text:     "I want pictures of mango trees",
			expected: true,
		},
		{
			name:     "image noun followed by of",
			text:     "picture of a healthy goat",
			expected: true,
		},
		{
			name:     "pic shorthand",
			text:     "get a pic of carp",
			expected: true,
		},
		{
			name:     "plain question has no image intent",
			text:     "What causes yellow spots on tomato plant leaves?",
			expected: false,
		},
		{
			name:     "image noun without verb or of",
			text:     "the picture looked blurry",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectImageIntent(tt.text))
		})
	}
}

func TestExtractImageQuery(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "strips verb noun and filler",
			text:     "show me a photo of rice",
			expected: "rice",
		},
		{
			name:     "keeps multi word subject",
			text:     "give me pictures of tomato plant disease",
			expected: "tomato plant disease",
		},
		{
			name:     "strips punctuation",
			text:     "show me a photo of rice, please!",
			expected: "rice",
		},
		{
			name:     "falls back to original text when cleaning empties it",
			text:     "show me a photo",
			expected: "show me a photo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractImageQuery(tt.text))
		})
	}
}
