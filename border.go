package plzmap

import "github.com/gogpu/gg"

// Track is one closed outline component of a country border, e.g. the
// mainland or a single island, as geographic points.
type Track []gg.Point

// DefaultStride is the default border subsampling stride. Border tracks
// are far denser than a small-scale map needs; taking every Nth point
// cuts path complexity without visible loss.
const DefaultStride = 8

// tracePath builds the subsampled border path on the surface: each
// track moves to its first point, draws straight segments to every
// strideth subsequent point, and closes as its own subpath. The caller
// decides whether the path becomes a clip region or a stroked frontier.
func (r *renderer) tracePath(tracks []Track, stride int) {
	if stride < 1 {
		stride = 1
	}
	for _, track := range tracks {
		if len(track) == 0 {
			continue
		}
		r.moveTo(track[0])
		for i := stride; i < len(track); i += stride {
			r.lineTo(track[i])
		}
		r.surf.ClosePath()
	}
}

// installClip installs the union of all subsampled tracks as the active
// clip region. Everything drawn afterwards is limited to the country
// shape.
func (r *renderer) installClip(tracks []Track, stride int) {
	r.tracePath(tracks, stride)
	r.surf.Clip()
}

// strokeFrontier strokes the subsampled tracks as a visible frontier
// line. It draws only; the clip region is untouched.
func (r *renderer) strokeFrontier(tracks []Track, stride int, color gg.RGBA, width float64) {
	r.surf.SetColor(color)
	r.surf.SetLineWidth(width)
	r.tracePath(tracks, stride)
	r.surf.Stroke()
}
