package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	cyan        = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	transparent = color.NRGBA{}
)

func fill(rect image.Rectangle, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(rect)
	draw.Draw(img, rect, &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	assert.NoError(op.Set(Copy))
	assert.Equal(Copy, op.Get())

	assert.Error(op.Set("unsupported_composite_operation"))
	assert.Equal(Copy, op.Get())
}

func TestComp_SrcOverOpaque(t *testing.T) {
	assert := assert.New(t)

	dst := fill(image.Rect(0, 0, 10, 10), white)
	src := fill(image.Rect(0, 0, 4, 4), cyan)

	InitOp().Draw(dst, src, image.Pt(3, 3))

	assert.Equal(white, dst.NRGBAAt(2, 2))
	assert.Equal(cyan, dst.NRGBAAt(3, 3))
	assert.Equal(cyan, dst.NRGBAAt(6, 6))
	assert.Equal(white, dst.NRGBAAt(7, 7))
}

func TestComp_SrcOverBlendsPartialAlpha(t *testing.T) {
	assert := assert.New(t)

	dst := fill(image.Rect(0, 0, 2, 2), white)
	src := fill(image.Rect(0, 0, 2, 2), color.NRGBA{A: 128})

	InitOp().Draw(dst, src, image.Point{})

	// 255*(1-128/255) = 127
	assert.Equal(color.NRGBA{R: 127, G: 127, B: 127, A: 255}, dst.NRGBAAt(0, 0))

	src = fill(image.Rect(0, 0, 2, 2), transparent)
	dst = fill(image.Rect(0, 0, 2, 2), white)
	InitOp().Draw(dst, src, image.Point{})
	assert.Equal(white, dst.NRGBAAt(1, 1))
}

func TestComp_Ops(t *testing.T) {
	assert := assert.New(t)
	rect := image.Rect(0, 0, 4, 4)

	op := InitOp()
	assert.NoError(op.Set(Copy))
	dst := fill(rect, white)
	op.Draw(dst, fill(rect, transparent), image.Point{})
	assert.Equal(transparent, dst.NRGBAAt(0, 0))

	assert.Error(op.Set("dst_over"))
	assert.Equal(Copy, op.Get())
}

func TestComp_Clip(t *testing.T) {
	assert := assert.New(t)

	dst := fill(image.Rect(0, 0, 4, 4), white)
	src := fill(image.Rect(0, 0, 4, 4), cyan)

	assert.NotPanics(func() {
		InitOp().Draw(dst, src, image.Pt(2, -2))
	})
	assert.Equal(cyan, dst.NRGBAAt(3, 0))
	assert.Equal(cyan, dst.NRGBAAt(2, 1))
	assert.Equal(white, dst.NRGBAAt(1, 1))
	assert.Equal(white, dst.NRGBAAt(3, 2))

	// Completely outside of the destination.
	InitOp().Draw(dst, src, image.Pt(10, 10))
	assert.Equal(white, dst.NRGBAAt(0, 0))
}

func TestComp_EveryOpKeepsSource(t *testing.T) {
	for _, name := range Ops {
		t.Run(name, func(t *testing.T) {
			op := InitOp()
			assert.NoError(t, op.Set(name))

			dst := fill(image.Rect(0, 0, 6, 6), white)
			op.Draw(dst, fill(image.Rect(0, 0, 2, 2), cyan), image.Pt(2, 2))

			assert.Equal(t, cyan, dst.NRGBAAt(2, 2))
			assert.Equal(t, cyan, dst.NRGBAAt(3, 3))
			assert.Equal(t, white, dst.NRGBAAt(4, 4))
		})
	}
}
