// Package imop implements the Porter-Duff operators used to place the icon
// content onto its canvas.
package imop

import (
	"fmt"
	"image"

	"github.com/esimov/iconpad/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
)

// Ops lists the supported composite operations. Both of them leave the
// source pixels on an opaque destination.
var Ops = []string{Copy, SrcOver}

// Composite draws a source image over a destination using the active operator.
type Composite struct {
	current string
}

// InitOp returns a Composite with SrcOver as the active operator.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set changes the active operator.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(Ops, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active operator.
func (op *Composite) Get() string {
	return op.current
}

// Draw composites src onto dst with the top-left corner of src placed at pt.
// Pixels falling outside of dst are clipped.
func (op *Composite) Draw(dst, src *image.NRGBA, pt image.Point) {
	sb := src.Bounds()
	r := sb.Sub(sb.Min).Add(pt).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(sb.Min.X+r.Min.X-pt.X, sb.Min.Y+y-pt.Y)
		di := dst.PixOffset(r.Min.X, y)

		for x := r.Min.X; x < r.Max.X; x++ {
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]

			switch op.current {
			case Copy:
				copy(d, s)
			case SrcOver:
				over(d, s, d)
			}
			si += 4
			di += 4
		}
	}
}

// over writes top over bottom into out. All slices hold non-premultiplied
// RGBA values; out may alias either input.
func over(out, top, bottom []uint8) {
	at := float64(top[3]) / 255
	ab := float64(bottom[3]) / 255

	// applying the alpha composition formula
	ao := at + ab*(1-at)
	if ao == 0 {
		out[0], out[1], out[2], out[3] = 0, 0, 0, 0
		return
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		c := (float64(top[i])*at + float64(bottom[i])*ab*(1-at)) / ao
		rgb[i] = clamp(c)
	}
	out[0], out[1], out[2] = rgb[0], rgb[1], rgb[2]
	out[3] = clamp(ao * 255)
}

func clamp(v float64) uint8 {
	return uint8(utils.Clamp(v+0.5, 0, 255))
}
