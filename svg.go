package iconpad

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/esimov/iconpad/utils"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVGRasterizer renders the vector source in-process, without depending on
// an external tool. The drawing keeps its aspect ratio and is centered inside
// the requested area on a transparent background.
type SVGRasterizer struct {
	// Strict makes unsupported SVG elements an error instead of being skipped.
	Strict bool
}

// Render parses the SVG file and rasterizes it into a width×height bitmap.
func (r *SVGRasterizer) Render(ctx context.Context, vectorPath string, width, height int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(vectorPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}
	defer f.Close()

	mode := oksvg.IgnoreErrorMode
	if r.Strict {
		mode = oksvg.StrictErrorMode
	}
	icon, err := oksvg.ReadIconStream(f, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding SVG file: %v", ErrRasterize, err)
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		vw, vh = float64(width), float64(height)
	}
	// Fit the drawing inside the target size while preserving the aspect ratio.
	scale := utils.Min(float64(width)/vw, float64(height)/vh)
	w, h := vw*scale, vh*scale
	icon.SetTarget((float64(width)-w)/2, (float64(height)-h)/2, w, h)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
