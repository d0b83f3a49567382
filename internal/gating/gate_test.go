package gating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"
)

func TestDetectDomain(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected entity.Domain
	}{
		{
			name:     "plant keyword",
			text:     "What causes yellow spots on tomato plant leaves?",
			expected: entity.DomainPlant,
		},
		{
			name:     "case insensitive match",
			text:     "My WHEAT field looks dry",
			expected: entity.DomainPlant,
		},
		{
			name:     "plural suffix matches",
			text:     "why are my apples rotting",
			expected: entity.DomainFruit,
		},
		{
			name:     "livestock keyword",
			text:     "my chicken stopped laying eggs",
			expected: entity.DomainLivestock,
		},
		{
			name:     "fish keyword",
			text:     "tilapia in the pond are dying",
			expected: entity.DomainFish,
		},
		{
			name:     "no configured keyword",
			text:     "How is the stock market today?",
			expected: entity.DomainNone,
		},
		{
			name:     "keyword must match as whole word",
			text:     "the cowboy rode into town",
			expected: entity.DomainNone,
		},
		{
			name:     "empty text",
			text:     "",
			expected: entity.DomainNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectDomain(tt.text))
		})
	}
}

func TestDetectDomain_FirstDomainWins(t *testing.T) {
	// Table order is the documented tie-break: plant precedes fruit,
	// livestock precedes fish.
	assert.Equal(t, entity.DomainPlant, DetectDomain("banana plant or banana fruit?"))
	assert.Equal(t, entity.DomainLivestock, DetectDomain("feeding chicken near the fish pond"))
}

// Every keyword in the canonical table must route to its own domain,
// proving the gate reads the same single-sourced table.
func TestDetectDomain_TableIsSingleSourced(t *testing.T) {
	seen := map[entity.Domain]bool{}
	for _, dk := range KeywordTable {
		assert.False(t, seen[dk.Domain], "domain %s appears twice in the table", dk.Domain)
		seen[dk.Domain] = true

		for _, kw := range dk.Keywords {
			got := DetectDomain("question about " + kw + " here")
			// earlier domains may legitimately claim a shared keyword,
			// but the match must never fall through to none
			assert.NotEqual(t, entity.DomainNone, got, "keyword %q not matched", kw)
		}
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, entity.DomainPlant, KeywordTable[0].Domain, "plant must stay first in table order")
}
