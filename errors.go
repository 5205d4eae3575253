package iconpad

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is returned when the generator configuration cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrRasterize is returned when the vector source could not be rasterized.
	ErrRasterize = errors.New("rasterization failed")
	// ErrNotVector is returned when the source file is not an SVG document.
	ErrNotVector = errors.New("source is not an svg file")
	// ErrDecode is returned when the rasterized bitmap cannot be decoded.
	ErrDecode = errors.New("could not decode raster image")
	// ErrEncode is returned when the icon cannot be encoded or written.
	ErrEncode = errors.New("could not encode icon")
)

// RasterizerError describes a failed invocation of an external rasterizer.
type RasterizerError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *RasterizerError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\nSTDERR:\n" + s
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *RasterizerError) Unwrap() error {
	return e.Err
}

// Is makes every RasterizerError match ErrRasterize.
func (e *RasterizerError) Is(target error) bool {
	return target == ErrRasterize
}
