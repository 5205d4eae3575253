package iconpad

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// DefaultRasterCommand is the external tool used to render the vector source.
const DefaultRasterCommand = "rsvg-convert"

// Rasterizer renders a vector file into a bitmap of the requested size.
type Rasterizer interface {
	Render(ctx context.Context, vectorPath string, width, height int) (image.Image, error)
}

// RasterizerFunc adapts an ordinary function to the Rasterizer interface.
type RasterizerFunc func(ctx context.Context, vectorPath string, width, height int) (image.Image, error)

// Render calls f(ctx, vectorPath, width, height).
func (f RasterizerFunc) Render(ctx context.Context, vectorPath string, width, height int) (image.Image, error) {
	return f(ctx, vectorPath, width, height)
}

var (
	_ Rasterizer = (*ExecRasterizer)(nil)
	_ Rasterizer = (*SVGRasterizer)(nil)
	_ Rasterizer = RasterizerFunc(nil)
)

// ExecRasterizer shells out to rsvg-convert (or a compatible tool) which
// writes a transparent PNG into a temporary file. The file is removed once
// decoded, whatever the outcome of the conversion.
type ExecRasterizer struct {
	// Command is the executable name or path. Defaults to DefaultRasterCommand.
	Command string
	// TempDir is where the intermediate PNG is created. Empty means os.TempDir.
	TempDir string
}

// Render runs the external converter and waits for it to exit.
func (r *ExecRasterizer) Render(ctx context.Context, vectorPath string, width, height int) (image.Image, error) {
	command := r.Command
	if command == "" {
		command = DefaultRasterCommand
	}

	tmp, err := os.CreateTemp(r.TempDir, "iconpad-raster-*.png")
	if err != nil {
		return nil, fmt.Errorf("%w: unable to create temporary file: %v", ErrRasterize, err)
	}
	name := tmp.Name()
	defer func() {
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			log.Printf("could not remove the temporary file: %v", err)
		}
	}()
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, command, rasterArgs(vectorPath, name, width, height)...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, &RasterizerError{
			Command: command,
			Stderr:  stderr.String(),
			Err:     err,
		}
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}
	defer f.Close()

	return decodeImg(f)
}

// rasterArgs builds the rsvg-convert command line.
func rasterArgs(in, out string, width, height int) []string {
	return []string{
		"-w", strconv.Itoa(width),
		"-h", strconv.Itoa(height),
		"--keep-aspect-ratio",
		in,
		"-o", out,
	}
}
