package plzmap

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    gg.RGBA
		wantErr bool
	}{
		{in: "#f00", want: gg.RGBA{R: 1, G: 0, B: 0, A: 1}},
		{in: "#000", want: gg.RGBA{R: 0, G: 0, B: 0, A: 1}},
		{in: "#fff", want: gg.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{in: "#08F", want: gg.RGBA{R: 0, G: 8.0 / 15, B: 1, A: 1}},
		{in: "f00", wantErr: true},
		{in: "#ff0000", wantErr: true},
		{in: "#g00", wantErr: true},
		{in: "#f0", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRuleTable_ResolvePrecedence(t *testing.T) {
	broad := gg.RGB(0, 1, 0)
	finer := gg.RGB(0, 0, 1)
	exact := gg.RGB(1, 0, 0)
	rules := RuleTable{
		"4":     broad,
		"42":    finer,
		"42345": exact,
	}

	tests := []struct {
		plz     string
		want    gg.RGBA
		matched bool
	}{
		{"42345", exact, true}, // exact full code wins
		{"42999", finer, true}, // falls through to 2-digit prefix
		{"43000", broad, true}, // only the 1-digit prefix matches
		{"51000", gg.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.plz, func(t *testing.T) {
			got, ok := rules.Resolve(tt.plz)
			if ok != tt.matched {
				t.Fatalf("Resolve(%q) matched = %v, want %v", tt.plz, ok, tt.matched)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.plz, got, tt.want)
			}
		})
	}
}

func TestRuleTable_ResolveDoesNotMutate(t *testing.T) {
	rules := RuleTable{"1": gg.RGB(1, 1, 1)}
	rules.Resolve("19999")
	rules.Resolve("51000")
	if len(rules) != 1 {
		t.Errorf("rule table grew to %d entries during lookups", len(rules))
	}
}

func TestFrequencyRules(t *testing.T) {
	codes := []string{"42345", "42345", "42345", "42999"}
	rules := FrequencyRules(codes, 2)

	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1: %v", len(rules), rules)
	}
	got, ok := rules["42"]
	if !ok {
		t.Fatalf("no rule for prefix %q", "42")
	}
	// All four codes truncate to "42", so its count is the maximum and
	// the color sits at full intensity.
	if got != highlight {
		t.Errorf("rule for \"42\" = %v, want full-intensity %v", got, highlight)
	}
}

func TestFrequencyRules_Intensity(t *testing.T) {
	codes := []string{"10115", "10115", "80331"}
	rules := FrequencyRules(codes, 2)

	full, ok := rules["10"]
	if !ok {
		t.Fatal("no rule for prefix \"10\"")
	}
	half, ok := rules["80"]
	if !ok {
		t.Fatal("no rule for prefix \"80\"")
	}
	if full != highlight {
		t.Errorf("max-count rule = %v, want %v", full, highlight)
	}
	if want := gg.White.Lerp(highlight, 0.5); half != want {
		t.Errorf("half-count rule = %v, want %v", half, want)
	}
}

func TestFrequencyRules_NonPositiveDigits(t *testing.T) {
	// Below 1 there is no sensible truncation point; full codes are
	// aggregated as-is instead of panicking on code[:digits].
	for _, digits := range []int{0, -1} {
		rules := FrequencyRules([]string{"42345", "42345", "80331"}, digits)
		if len(rules) != 2 {
			t.Fatalf("digits=%d: got %d rules, want 2: %v", digits, len(rules), rules)
		}
		if _, ok := rules["42345"]; !ok {
			t.Errorf("digits=%d: full code 42345 not kept", digits)
		}
		if _, ok := rules["80331"]; !ok {
			t.Errorf("digits=%d: full code 80331 not kept", digits)
		}
	}
}

func TestFrequencyRules_InputCleanup(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  []string
	}{
		{"strips non-digits", []string{"D-42345"}, []string{"42"}},
		{"keeps short codes", []string{"4"}, []string{"4"}},
		{"skips empty after stripping", []string{"abc", "42111"}, []string{"42"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := FrequencyRules(tt.codes, 2)
			if len(rules) != len(tt.want) {
				t.Fatalf("got %d rules %v, want prefixes %v", len(rules), rules, tt.want)
			}
			for _, p := range tt.want {
				if _, ok := rules[p]; !ok {
					t.Errorf("missing rule for prefix %q", p)
				}
			}
		})
	}
}
