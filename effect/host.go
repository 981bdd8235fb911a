package effect

import "image"

// Host is the container that owns the content being disintegrated.
type Host interface {
	// ContentSize reports the rendered size of the content.
	ContentSize() (w, h int)
	// ContentOffset reports the content's top-left corner on the drawing surface.
	ContentOffset() (x, y int)
	// RenderContentToSnapshot draws the content once into a raster. A nil
	// result means there is nothing to capture.
	RenderContentToSnapshot() image.Image
	SetContentVisible(visible bool)
	RequestRepaint()
}
