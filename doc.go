/*
Package iconpad generates padded application icons from a vector logo.

The vector source is rasterized (by default through the rsvg-convert tool),
cropped to its visible content, scaled to fit inside the canvas minus the
padding and composited centered over an opaque background. The result carries
no alpha channel, which is what launcher icons expect.

The package provides a command line interface. To check the supported flags type:

	$ iconpad --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"context"
		"log"

		"github.com/esimov/iconpad"
	)

	func main() {
		cfg := iconpad.DefaultConfig()
		cfg.Input = "logo.svg"
		cfg.Output = "icon.png"

		gen := iconpad.NewGenerator(cfg)
		if _, err := gen.Generate(context.Background()); err != nil {
			log.Fatalf("Error generating the icon: %v", err)
		}
	}
*/
package iconpad
