package plzmap

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
)

// Surface is the drawing target of the renderer: path construction,
// fill/stroke/clip, point markers, and text. Coordinates are canvas
// pixels, origin top-left.
//
// Close finalizes the surface, serializing it to its output form.
// It must be called exactly once at the end of the pipeline on every
// path, including when nothing was drawn; further calls are no-ops.
type Surface interface {
	io.Closer

	SetColor(c gg.RGBA)
	SetLineWidth(w float64)

	// Path construction. MoveTo starts a new subpath, so one path may
	// hold several closed tracks before Fill, Stroke, or Clip consumes
	// it.
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	Fill()
	Stroke()
	// Clip installs the current path as the clipping region for all
	// subsequent drawing and clears the path.
	Clip()

	// Circle appends a full circle as its own subpath.
	Circle(x, y, r float64)
	// Text draws s with its baseline starting at (x, y).
	Text(s string, x, y float64)
}

// NewSurface creates a surface for the given output path, selected by
// filename extension: ".svg" produces a vector document, anything else
// a fixed-size PNG raster. The chosen format is opaque to the renderer.
func NewSurface(path string, width, height int) (Surface, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return newSVGSurface(path, width, height)
	}
	return newRasterSurface(path, width, height), nil
}
