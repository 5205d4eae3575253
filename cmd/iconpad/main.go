package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/esimov/iconpad"
	"github.com/esimov/iconpad/imop"
	"github.com/esimov/iconpad/utils"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┬┐
││  │ ││││├─┘├─┤ ││
┴└─┘└─┘┘└┘┴  ┴ ┴─┴┘

Padded application icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source       = flag.String("in", iconpad.DefaultInput, "Source SVG file, URL or - for stdin")
	destination  = flag.String("out", iconpad.DefaultOutput, "Destination icon (.png, .jpg, .bmp) or - for stdout")
	canvasSize   = flag.Int("canvas", iconpad.DefaultCanvasSize, "Icon size in pixels")
	padding      = flag.Int("padding", iconpad.DefaultPadding, "Minimum margin around the content")
	rasterWidth  = flag.Int("rw", iconpad.DefaultRasterWidth, "Rasterization width")
	rasterHeight = flag.Int("rh", iconpad.DefaultRasterHeight, "Rasterization height")
	background   = flag.String("bg", "#ffffff", "Background color")
	filter       = flag.String("filter", iconpad.DefaultFilter, "Resampling filter: "+strings.Join(iconpad.Filters(), ", "))
	compOp       = flag.String("op", imop.SrcOver, "Composite operation: "+strings.Join(imop.Ops, ", "))
	rasterizer   = flag.String("rasterizer", "rsvg", "Rasterizer: rsvg (external tool) or native")
	command      = flag.String("cmd", iconpad.DefaultRasterCommand, "External rasterizer command")
	tempDir      = flag.String("tmp", iconpad.DefaultTempDir, "Directory for the intermediate files")
	quiet        = flag.Bool("quiet", false, "Hide the progress lines")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	bg, err := utils.HexToNRGBA(*background)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	cfg := iconpad.Config{
		CanvasSize:   *canvasSize,
		Padding:      *padding,
		RasterWidth:  *rasterWidth,
		RasterHeight: *rasterHeight,
		Background:   bg,
		Input:        *source,
		Output:       *destination,
		TempDir:      *tempDir,
		Filter:       *filter,
		Composite:    *compOp,
	}
	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatal(utils.DecorateText("\n"+err.Error(), utils.ErrorMessage))
	}

	gen := iconpad.NewGenerator(cfg)
	switch *rasterizer {
	case "rsvg":
		gen.Rasterizer = &iconpad.ExecRasterizer{Command: *command, TempDir: cfg.TempDir}
	case "native":
		gen.Rasterizer = &iconpad.SVGRasterizer{}
	default:
		log.Fatalf(utils.DecorateText("unknown rasterizer %q", utils.ErrorMessage), *rasterizer)
	}

	// Cancel the run on CTRL-C, killing the external rasterizer and restoring the cursor.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gen.Execute(ctx, &iconpad.Ops{Stderr: os.Stderr, Quiet: *quiet}); err != nil {
		stop()
		log.Fatalf("%s%s",
			utils.DecorateText("\nError generating the icon: ", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
	}
}
