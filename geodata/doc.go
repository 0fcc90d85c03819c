// Package geodata loads the external inputs of a plzmap run: the
// postal-code site table and the country border tracks. Both loaders
// are deliberately small seams; any source producing []plzmap.Site and
// []plzmap.Track works in their place.
package geodata
