package iconpad

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/esimov/iconpad/imop"
	"github.com/esimov/iconpad/utils"
	"golang.org/x/term"
)

// Generator turns a vector logo into a padded, centered and opaque icon.
type Generator struct {
	Config Config
	// Rasterizer renders the vector source. Defaults to an ExecRasterizer
	// using Config.TempDir for its intermediate file.
	Rasterizer Rasterizer
	// Logger receives the progress lines. A nil Logger discards them.
	Logger *log.Logger
	// Stdin and Stdout are used when Input or Output is PipeName.
	// They default to os.Stdin and os.Stdout.
	Stdin  io.Reader
	Stdout io.Writer
}

// NewGenerator returns a Generator using the external rasterizer.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		Config:     cfg,
		Rasterizer: &ExecRasterizer{TempDir: cfg.TempDir},
	}
}

// Generate runs the whole pipeline: it rasterizes the vector input, composes
// the icon and writes it to the configured output, replacing any previous file.
// Every temporary file created along the way is removed before returning.
func (g *Generator) Generate(ctx context.Context) (Layout, error) {
	if err := g.Config.Validate(); err != nil {
		return Layout{}, err
	}
	if g.Config.TempDir != "" {
		if err := os.MkdirAll(g.Config.TempDir, 0755); err != nil {
			return Layout{}, fmt.Errorf("unable to create the temporary directory: %w", err)
		}
	}

	src, cleanup, err := g.source()
	if err != nil {
		return Layout{}, err
	}
	defer cleanup()

	ok, err := utils.IsSVG(src)
	if err != nil {
		return Layout{}, fmt.Errorf("unable to open the source file: %w", err)
	}
	if !ok {
		return Layout{}, fmt.Errorf("%w: %s", ErrNotVector, g.Config.Input)
	}

	raster, err := g.rasterizer().Render(ctx, src, g.Config.RasterWidth, g.Config.RasterHeight)
	if err != nil {
		return Layout{}, fmt.Errorf("rasterizing %s: %w", g.Config.Input, err)
	}

	icon, layout, err := g.Compose(raster)
	if err != nil {
		return Layout{}, err
	}

	if err := g.write(icon); err != nil {
		return Layout{}, err
	}
	b := icon.Bounds()
	g.logf("Generated %s: %dx%d", filepath.Base(g.Config.Output), b.Dx(), b.Dy())

	return layout, nil
}

// Compose crops the raster to its visible content, scales it to fit inside the
// padded canvas and composites it centered over the background. The returned
// image is fully opaque. The configuration is validated first since Compose
// can be called on its own, without going through Generate.
func (g *Generator) Compose(raster image.Image) (*image.RGBA, Layout, error) {
	cfg := g.Config
	if err := cfg.Validate(); err != nil {
		return nil, Layout{}, err
	}

	img := imgToNRGBA(raster)
	if img.Bounds().Empty() {
		return nil, Layout{}, fmt.Errorf("%w: the raster image is empty", ErrDecode)
	}

	content, crop, cropped := trim(img)
	if cropped {
		g.logf("Cropped content to: %dx%d", crop.Dx(), crop.Dy())
	} else {
		g.logf("Warning: the raster has no visible pixels, skipping the crop")
	}

	layout := ComputeLayout(crop, cropped, cfg.CanvasSize, cfg.Padding)

	content = imaging.Resize(content, layout.Scaled.X, layout.Scaled.Y, filters[cfg.Filter])
	g.logf("Scaled content to: %dx%d", layout.Scaled.X, layout.Scaled.Y)

	canvas := newCanvas(cfg.CanvasSize, cfg.Background)
	op := imop.InitOp()
	if err := op.Set(cfg.Composite); err != nil {
		return nil, Layout{}, err
	}
	op.Draw(canvas, content, layout.Offset)
	g.logf("Placed at offset: (%d, %d)", layout.Offset.X, layout.Offset.Y)

	return flatten(canvas, cfg.Background), layout, nil
}

// source resolves the input into a local file path. Downloaded and piped
// sources are saved into a temporary file removed by the returned cleanup function.
func (g *Generator) source() (string, func(), error) {
	in := g.Config.Input
	noop := func() {}

	switch {
	case utils.IsValidUrl(in):
		f, err := utils.DownloadFile(in, g.Config.TempDir)
		if err != nil {
			return "", noop, err
		}
		return g.tempSource(f)
	case in == PipeName:
		r := g.Stdin
		if r == nil {
			r = os.Stdin
		}
		if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "", noop, errors.New("`-` should be used with a pipe for stdin")
		}

		f, err := os.CreateTemp(g.Config.TempDir, "iconpad-src-*.svg")
		if err != nil {
			return "", noop, fmt.Errorf("unable to create temporary file: %w", err)
		}
		if _, err := io.Copy(f, r); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", noop, fmt.Errorf("unable to read the source from stdin: %w", err)
		}
		return g.tempSource(f)
	default:
		return in, noop, nil
	}
}

// tempSource closes f and returns its name together with a function removing it.
func (g *Generator) tempSource(f *os.File) (string, func(), error) {
	name := f.Name()
	cleanup := func() {
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			log.Printf("could not remove the temporary file: %v", err)
		}
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", func() {}, err
	}
	return name, cleanup, nil
}

// write encodes the icon into the output. Files are written next to the
// destination first and renamed into place, so a failed run does not leave a
// truncated icon behind.
func (g *Generator) write(icon image.Image) error {
	out := g.Config.Output
	if out == PipeName {
		w := g.Stdout
		if w == nil {
			w = os.Stdout
		}
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return encodeImg(w, icon, ".png")
	}

	dir := filepath.Dir(out)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}

	ext := filepath.Ext(out)
	tmp, err := os.CreateTemp(dir, ".iconpad-*"+ext)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encodeImg(tmp, icon, ext); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return fmt.Errorf("unable to save the icon: %w", err)
	}
	return nil
}

func (g *Generator) rasterizer() Rasterizer {
	if g.Rasterizer != nil {
		return g.Rasterizer
	}
	return &ExecRasterizer{TempDir: g.Config.TempDir}
}

func (g *Generator) logf(format string, v ...interface{}) {
	if g.Logger != nil {
		g.Logger.Printf(format, v...)
	}
}
