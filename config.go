package iconpad

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/iconpad/imop"
	"github.com/esimov/iconpad/utils"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PipeName is the file name that indicates stdin/stdout is being used.
const PipeName = "-"

// Default values reproducing the launcher icon layout.
const (
	DefaultCanvasSize   = 1024
	DefaultPadding      = 140
	DefaultRasterWidth  = 800
	DefaultRasterHeight = 800
	DefaultInput        = "assets/logo.svg"
	DefaultOutput       = "assets/icon.png"
	DefaultTempDir      = "assets"
	DefaultFilter       = "lanczos"
)

// filters maps the accepted filter names to imaging resampling filters.
var filters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"mitchell":   imaging.MitchellNetravali,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

// outputExtensions lists the supported icon file types.
var outputExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// Config holds the icon generation options.
type Config struct {
	// CanvasSize is the edge of the square output icon.
	CanvasSize int
	// Padding is the minimum margin kept between the content and the canvas edges.
	Padding int
	// RasterWidth and RasterHeight define the size the vector is rendered at.
	RasterWidth  int
	RasterHeight int
	// Background is the opaque canvas color.
	Background color.NRGBA
	// Input is the vector source: a file path, an http(s) URL or PipeName.
	Input string
	// Output is the destination file or PipeName.
	Output string
	// TempDir holds the intermediate files. Empty means the system default.
	TempDir string
	// Filter names the resampling filter used to scale the content, see Filters.
	Filter string
	// Composite is the imop operator placing the content onto the canvas.
	Composite string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		CanvasSize:   DefaultCanvasSize,
		Padding:      DefaultPadding,
		RasterWidth:  DefaultRasterWidth,
		RasterHeight: DefaultRasterHeight,
		Background:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Input:        DefaultInput,
		Output:       DefaultOutput,
		TempDir:      DefaultTempDir,
		Filter:       DefaultFilter,
		Composite:    imop.SrcOver,
	}
}

// Available returns the room left for the content once the padding is applied.
func (c Config) Available() int {
	return c.CanvasSize - 2*c.Padding
}

// Validate checks the configuration for values the generator cannot work with.
func (c Config) Validate() error {
	switch {
	case c.CanvasSize <= 0:
		return fmt.Errorf("%w: canvas size must be positive, got %d", ErrInvalidConfig, c.CanvasSize)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding cannot be negative, got %d", ErrInvalidConfig, c.Padding)
	case c.Available() <= 0:
		return fmt.Errorf("%w: padding %d leaves no room on a %dpx canvas", ErrInvalidConfig, c.Padding, c.CanvasSize)
	case c.RasterWidth <= 0 || c.RasterHeight <= 0:
		return fmt.Errorf("%w: raster size must be positive, got %dx%d", ErrInvalidConfig, c.RasterWidth, c.RasterHeight)
	case c.Background.A != 0xff:
		return fmt.Errorf("%w: background color must be opaque", ErrInvalidConfig)
	case c.Input == "":
		return fmt.Errorf("%w: missing input", ErrInvalidConfig)
	case c.Output == "":
		return fmt.Errorf("%w: missing output", ErrInvalidConfig)
	}

	if _, ok := filters[c.Filter]; !ok {
		return fmt.Errorf("%w: unknown resampling filter %q", ErrInvalidConfig, c.Filter)
	}
	if !utils.Contains(imop.Ops, c.Composite) {
		return fmt.Errorf("%w: unknown composite operation %q", ErrInvalidConfig, c.Composite)
	}
	if c.Output != PipeName {
		ext := strings.ToLower(filepath.Ext(c.Output))
		if !utils.Contains(outputExtensions, ext) {
			return fmt.Errorf("%w: %q file type not supported", ErrInvalidConfig, ext)
		}
	}
	return nil
}

// Filters returns the accepted resampling filter names in alphabetical order.
func Filters() []string {
	names := maps.Keys(filters)
	slices.Sort(names)
	return names
}
