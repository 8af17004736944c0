// Package domain provides pure domain logic for the stock feature:
// sector classification and market-cap string handling.
package domain

import "strings"

// sectorCategory pairs a display category with the keywords that map to it.
// Categories are checked in slice order; the first keyword hit wins.
type sectorCategory struct {
	display  string
	short    string
	keywords []string
}

// sectorCategories is the fixed priority order for sector classification.
// Each display name contains one of its own keywords so that repeated
// classification is a no-op.
var sectorCategories = []sectorCategory{
	{display: "반도체", short: "반", keywords: []string{"반도체", "파운드리", "메모리", "semiconductor"}},
	{display: "자동차", short: "차", keywords: []string{"자동차", "모빌리티", "전장", "automotive"}},
	{display: "산업재", short: "산업", keywords: []string{"산업", "자동화", "기계", "로봇", "industrial"}},
	{display: "바이오", short: "바이오", keywords: []string{"바이오", "제약", "헬스케어", "bio"}},
	{display: "서비스", short: "서비스", keywords: []string{"서비스", "플랫폼", "커머스", "엔터", "platform"}},
	{display: "IT", short: "IT", keywords: []string{"IT", "인터넷", "통신", "소프트웨어", "클라우드", "software"}},
}

// SimplifySector classifies a free-text sector string into one of the fixed
// display categories. Unmatched input passes through unchanged. The function
// is total and idempotent: classifying a category name yields itself.
func SimplifySector(sector string) string {
	if c, ok := matchSector(sector); ok {
		return c.display
	}
	return sector
}

// SimplifySectorShort returns the abbreviated tag for the sector's category,
// or the input unchanged when no category matches.
func SimplifySectorShort(sector string) string {
	if c, ok := matchSector(sector); ok {
		return c.short
	}
	return sector
}

// matchSector scans the categories in priority order. Matching is
// case-sensitive: lowercasing would make the "IT" keyword swallow unrelated
// English sectors such as "Utilities".
func matchSector(sector string) (sectorCategory, bool) {
	for _, c := range sectorCategories {
		for _, kw := range c.keywords {
			if strings.Contains(sector, kw) {
				return c, true
			}
		}
	}
	return sectorCategory{}, false
}
