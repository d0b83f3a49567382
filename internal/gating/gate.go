package gating

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"
)

type compiledDomain struct {
	domain   entity.Domain
	patterns []*regexp.Regexp
}

var compiledTable []compiledDomain

func init() {
	compiledTable = make([]compiledDomain, 0, len(KeywordTable))
	for _, dk := range KeywordTable {
		cd := compiledDomain{domain: dk.Domain}
		for _, kw := range dk.Keywords {
			// whole-word match, optional plural suffix
			p := regexp.MustCompile(fmt.Sprintf(`\b%ss?\b`, regexp.QuoteMeta(kw)))
			cd.patterns = append(cd.patterns, p)
		}
		compiledTable = append(compiledTable, cd)
	}
}

// DetectDomain returns the first domain in table order with any
// whole-word keyword match, or DomainNone. Matching is case-insensitive
// and tolerates a plural "s" suffix.
func DetectDomain(text string) entity.Domain {
	lowered := strings.ToLower(text)
	for _, cd := range compiledTable {
		for _, p := range cd.patterns {
			if p.MatchString(lowered) {
				return cd.domain
			}
		}
	}
	return entity.DomainNone
}
