package plzmap

import (
	"fmt"

	"github.com/gogpu/gg"
)

// ParseColor parses a strict #RGB color string (one hex nibble per
// channel) into an opaque gg.RGBA. Each nibble is normalized to [0, 1]
// by dividing by 15, so "#f00" is pure red and "#000" black.
//
// Unlike gg.Hex, which silently falls back to black, ParseColor rejects
// anything that is not exactly 4 characters starting with '#': bad
// color syntax is a configuration error and must abort before any
// rendering work starts.
func ParseColor(s string) (gg.RGBA, error) {
	if len(s) != 4 || s[0] != '#' {
		return gg.RGBA{}, fmt.Errorf("color %q: want #RGB", s)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		n, err := nibble(s[i+1])
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		ch[i] = float64(n) / 15
	}
	return gg.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 1}, nil
}

func nibble(c byte) (uint8, error) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', nil
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, nil
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("bad hex digit %q", c)
}

// RuleTable maps postal-code prefixes (length 1-5) to display colors.
// A table is loaded once and never mutated during rendering.
type RuleTable map[string]gg.RGBA

// Resolve looks up the color for a postal code: first the exact code,
// then prefixes of length 4, 3, 2, 1, in strictly decreasing order.
// Broad one- or two-digit rules can so be overridden by finer
// exceptions without enumerating every code. The boolean is false when
// no prefix matches.
func (t RuleTable) Resolve(plz string) (gg.RGBA, bool) {
	if c, ok := t[plz]; ok {
		return c, true
	}
	for n := 4; n >= 1; n-- {
		if n >= len(plz) {
			continue
		}
		if c, ok := t[plz[:n]]; ok {
			return c, true
		}
	}
	return gg.RGBA{}, false
}

// highlight is the full-intensity endpoint of frequency-derived colors.
var highlight = gg.RGB(1, 0, 0)

// FrequencyRules aggregates raw postal codes into an area-color rule
// table. Non-digit characters are stripped from each code, the digits
// truncated to the given significant count, and occurrences counted per
// truncated code. Each rule's color runs from near-white to the
// highlight color with intensity count/maxCount.
//
// Codes that are empty after stripping are ignored. An empty input
// yields an empty table. A digits value below 1 disables truncation
// and aggregates full codes.
func FrequencyRules(codes []string, digits int) RuleTable {
	counts := make(map[string]int)
	maxCount := 0
	for _, raw := range codes {
		code := digitsOnly(raw)
		if code == "" {
			continue
		}
		if digits >= 1 && len(code) > digits {
			code = code[:digits]
		}
		counts[code]++
		if counts[code] > maxCount {
			maxCount = counts[code]
		}
	}

	rules := make(RuleTable, len(counts))
	for code, n := range counts {
		i := float64(n) / float64(maxCount)
		rules[code] = gg.White.Lerp(highlight, i)
	}
	return rules
}

func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
