package iconpad

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// decodeImg decodes a raster image and converts it to *image.NRGBA.
func decodeImg(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return imgToNRGBA(img), nil
}

// encodeImg encodes the image according to the destination file extension.
func encodeImg(w io.Writer, img image.Image, ext string) error {
	var err error

	switch strings.ToLower(ext) {
	case "", ".png":
		err = png.Encode(w, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".bmp":
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: unsupported image format %q", ErrEncode, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0),
// giving the pixel data an alpha channel.
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	return imaging.Clone(img)
}

// trim crops the image to the bounding box of its visible pixels.
// A fully transparent image is returned unchanged.
func trim(img *image.NRGBA) (*image.NRGBA, image.Rectangle, bool) {
	bbox, ok := BoundingBox(img)
	if !ok {
		return img, img.Bounds(), false
	}
	return imaging.Crop(img, bbox), bbox, true
}

// newCanvas creates a square canvas filled with the background color.
func newCanvas(size int, bg color.NRGBA) *image.NRGBA {
	return imaging.New(size, size, bg)
}

// flatten bakes the transparency of img into the background color and
// returns an image without alpha information, encoded by PNG as RGB.
func flatten(img *image.NRGBA, bg color.NRGBA) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b.Sub(b.Min))
	back := [3]uint32{uint32(bg.R), uint32(bg.G), uint32(bg.B)}

	for y := 0; y < b.Dy(); y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(0, y)

		for x := 0; x < b.Dx(); x++ {
			s := img.Pix[si : si+4 : si+4]
			a := uint32(s[3])
			for c := 0; c < 3; c++ {
				dst.Pix[di+c] = uint8((uint32(s[c])*a + back[c]*(255-a) + 127) / 255)
			}
			dst.Pix[di+3] = 0xff

			si += 4
			di += 4
		}
	}
	return dst
}
