package iconpad

import (
	"errors"
	"image/color"
	"testing"

	"github.com/esimov/iconpad/imop"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Defaults(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.NoError(cfg.Validate())
	assert.Equal(1024, cfg.CanvasSize)
	assert.Equal(140, cfg.Padding)
	assert.Equal(744, cfg.Available())
	assert.Equal(800, cfg.RasterWidth)
	assert.Equal(800, cfg.RasterHeight)
	assert.Equal(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, cfg.Background)
	assert.Equal("assets/logo.svg", cfg.Input)
	assert.Equal("assets/icon.png", cfg.Output)
	assert.Equal(imop.SrcOver, cfg.Composite)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero canvas", func(c *Config) { c.CanvasSize = 0 }},
		{"negative padding", func(c *Config) { c.Padding = -1 }},
		{"padding too large", func(c *Config) { c.Padding = 512 }},
		{"zero raster width", func(c *Config) { c.RasterWidth = 0 }},
		{"negative raster height", func(c *Config) { c.RasterHeight = -5 }},
		{"transparent background", func(c *Config) { c.Background.A = 0 }},
		{"missing input", func(c *Config) { c.Input = "" }},
		{"missing output", func(c *Config) { c.Output = "" }},
		{"unknown filter", func(c *Config) { c.Filter = "bicubic" }},
		{"unknown composite", func(c *Config) { c.Composite = "xor" }},
		{"composite hiding the content", func(c *Config) { c.Composite = "dst_over" }},
		{"unsupported extension", func(c *Config) { c.Output = "icon.webp" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestConfig_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = PipeName
	cfg.CanvasSize = 512
	cfg.Padding = 0
	cfg.Filter = "nearest"
	cfg.Output = "icon.JPEG"

	assert.NoError(t, cfg.Validate())

	cfg.Output = PipeName
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Filters(t *testing.T) {
	assert.Equal(t, []string{"box", "catmullrom", "lanczos", "linear", "mitchell", "nearest"}, Filters())
}
