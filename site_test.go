package plzmap

import "testing"

func TestSite_Included(t *testing.T) {
	site := Site{Code: "42345"}
	tests := []struct {
		name     string
		prefixes []string
		want     bool
	}{
		{"empty filter includes all", nil, true},
		{"matching prefix", []string{"42"}, true},
		{"one of several matches", []string{"1", "9", "423"}, true},
		{"no match", []string{"5", "43"}, false},
		{"full code as prefix", []string{"42345"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := site.Included(tt.prefixes); got != tt.want {
				t.Errorf("Included(%v) = %v, want %v", tt.prefixes, got, tt.want)
			}
		})
	}
}

func TestFilterSites(t *testing.T) {
	sites := []Site{{Code: "10115"}, {Code: "80331"}, {Code: "10117"}}
	got := filterSites(sites, []string{"10"})
	if len(got) != 2 || got[0].Code != "10115" || got[1].Code != "10117" {
		t.Errorf("filterSites = %v, want the two 10xxx sites in order", got)
	}
	if all := filterSites(sites, nil); len(all) != 3 {
		t.Errorf("empty filter kept %d of 3 sites", len(all))
	}
}
