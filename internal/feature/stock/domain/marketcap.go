package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// joUnit is the value of one 조 (10^12 won).
	joUnit = int64(1_000_000_000_000)
	// okUnit is the value of one 억 (10^8 won).
	okUnit = int64(100_000_000)
)

var (
	joPattern = regexp.MustCompile(`([\d,]+)\s*조`)
	okPattern = regexp.MustCompile(`([\d,]+)\s*억`)
)

// MarketCapParts holds the 조/억 segments of a market-cap string as bare
// digit strings, for callers that render the two units with separate styling.
type MarketCapParts struct {
	Jo string `json:"jo"`
	Ok string `json:"ok"`
}

// ParseMarketCapToValue parses a market-cap string of the form
// "<N>조 <M,MMM>억원" into an exact integer number of won. Either segment may
// be absent. Empty or unparseable input yields 0.
func ParseMarketCapToValue(s string) int64 {
	jo, ok := marketCapSegments(s)
	return jo*joUnit + ok*okUnit
}

// FormatMarketCapShort renders a market-cap string compactly as
// "<N>.<d>조" where d is the first digit of the 억 segment.
// Empty input yields the placeholder "-".
func FormatMarketCapShort(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	parts := ParseMarketCap(s)
	if parts == nil {
		return "-"
	}
	jo := parts.Jo
	if jo == "" {
		jo = "0"
	}
	frac := "0"
	if parts.Ok != "" {
		frac = parts.Ok[:1]
	}
	return jo + "." + frac + "조"
}

// ParseMarketCap splits a market-cap string into its 조 and 억 digit parts
// with thousands separators removed. Empty input yields nil.
func ParseMarketCap(s string) *MarketCapParts {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := &MarketCapParts{}
	if m := joPattern.FindStringSubmatch(s); m != nil {
		parts.Jo = strings.ReplaceAll(m[1], ",", "")
	}
	if m := okPattern.FindStringSubmatch(s); m != nil {
		parts.Ok = strings.ReplaceAll(m[1], ",", "")
	}
	return parts
}

// marketCapSegments extracts the numeric 조 and 억 components of a
// market-cap string, tolerating absent segments.
func marketCapSegments(s string) (jo, ok int64) {
	parts := ParseMarketCap(s)
	if parts == nil {
		return 0, 0
	}
	if parts.Jo != "" {
		jo, _ = strconv.ParseInt(parts.Jo, 10, 64)
	}
	if parts.Ok != "" {
		ok, _ = strconv.ParseInt(parts.Ok, 10, 64)
	}
	return jo, ok
}
