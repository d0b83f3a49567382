// Package gating implements the rule-based routing for free-text
// queries: a keyword-driven domain gate and an image-intent detector.
package gating

import "github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"

// KeywordTableVersion identifies the current revision of the keyword
// table. Bump it whenever the table below changes.
const KeywordTableVersion = 2

// DomainKeywords binds a domain to its keyword set
type DomainKeywords struct {
	Domain   entity.Domain
	Keywords []string
}

// KeywordTable is the single canonical keyword source for the domain
// gate. It is an ordered list, not a map: the gate returns the FIRST
// domain with any match, and that tie-break is part of the contract.
var KeywordTable = []DomainKeywords{
	{
		Domain: entity.DomainPlant,
		Keywords: []string{
			"plant", "leaf", "crop", "tree", "flower",
			"banana plant", "tomato plant", "rice", "wheat", "cotton",
		},
	},
	{
		Domain: entity.DomainFruit,
		Keywords: []string{
			"fruit", "banana", "apple", "mango", "orange", "grapes",
		},
	},
	{
		Domain: entity.DomainLivestock,
		Keywords: []string{
			"cow", "goat", "sheep", "horse", "hen", "chicken",
			"lion", "tiger", "animal",
		},
	},
	{
		Domain: entity.DomainFish,
		Keywords: []string{
			"fish", "tilapia", "carp", "shrimp", "pond", "aquaculture",
		},
	},
}
