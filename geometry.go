package iconpad

import (
	"image"

	"github.com/esimov/iconpad/utils"
)

// Layout describes where the rasterized content ends up on the canvas.
type Layout struct {
	// Crop is the region of the raster kept as content. It equals the raster
	// bounds when the raster has no visible pixel.
	Crop    image.Rectangle
	Cropped bool
	// Scale is the uniform factor applied to the cropped content.
	Scale  float64
	Scaled image.Point
	Offset image.Point
	Canvas int
}

// Content returns the size of the cropped content before scaling.
func (l Layout) Content() image.Point {
	return l.Crop.Size()
}

// Placement returns the canvas region covered by the scaled content.
func (l Layout) Placement() image.Rectangle {
	return image.Rectangle{Min: l.Offset, Max: l.Offset.Add(l.Scaled)}
}

// BoundingBox returns the smallest rectangle enclosing every pixel with a
// non-zero alpha. The second return value is false if the image is fully transparent.
func BoundingBox(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y) + 3
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[i] != 0 {
				minX = utils.Min(minX, x)
				maxX = utils.Max(maxX, x)
				minY = utils.Min(minY, y)
				maxY = y
			}
			i += 4
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}

	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// FitScale returns the uniform factor which fits a w×h area inside an
// avail×avail square without distortion.
func FitScale(w, h, avail int) float64 {
	return utils.Min(float64(avail)/float64(w), float64(avail)/float64(h))
}

// ScaledSize returns the dimensions of a w×h area scaled to fit an avail×avail square.
// The constrained axis equals avail exactly, the other one is rounded down
// and never drops below one pixel.
func ScaledSize(w, h, avail int) image.Point {
	// Integer arithmetic avoids w*(avail/w) landing just below avail.
	if w >= h {
		return image.Pt(avail, utils.Max(1, h*avail/w))
	}
	return image.Pt(utils.Max(1, w*avail/h), avail)
}

// CenterOffset returns the top-left corner which centers size on a square canvas.
// Odd leftovers are truncated, placing the content one pixel closer to the top-left.
func CenterOffset(canvas int, size image.Point) image.Point {
	return image.Pt((canvas-size.X)/2, (canvas-size.Y)/2)
}

// ComputeLayout calculates the full geometry for content of the given crop
// rectangle placed on a canvas with the given padding.
func ComputeLayout(crop image.Rectangle, cropped bool, canvas, padding int) Layout {
	avail := canvas - 2*padding
	w, h := crop.Dx(), crop.Dy()
	scaled := ScaledSize(w, h, avail)

	return Layout{
		Crop:    crop,
		Cropped: cropped,
		Scale:   FitScale(w, h, avail),
		Scaled:  scaled,
		Offset:  CenterOffset(canvas, scaled),
		Canvas:  canvas,
	}
}
