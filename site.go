package plzmap

import (
	"strings"

	"github.com/gogpu/gg"
)

// Site is one postal code with its geographic position.
// Sites are plain immutable values; the renderer never mutates them.
type Site struct {
	// Code is the postal code, a string of digits.
	Code string
	// Pos is the geographic position as (longitude, latitude).
	Pos gg.Point
	// Name is the display name of the place, e.g. a city name.
	Name string
}

// Included reports whether the site passes the prefix inclusion filter.
// An empty filter includes every site; otherwise the site is included if
// its code starts with any one of the prefixes.
func (s Site) Included(prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(s.Code, p) {
			return true
		}
	}
	return false
}

// filterSites returns the sites passing the prefix filter, preserving order.
func filterSites(sites []Site, prefixes []string) []Site {
	if len(prefixes) == 0 {
		return sites
	}
	out := make([]Site, 0, len(sites))
	for _, s := range sites {
		if s.Included(prefixes) {
			out = append(out, s)
		}
	}
	return out
}
