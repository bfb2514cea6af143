/*
Package iconset generates application icon sets: one image file per configured
size, written into a target directory.

By default the generator is a plain placeholder writer: every file contains the
same fixed 1×1 transparent PNG payload regardless of the size encoded into its
name. Optional modes produce real per-size content, either by resampling a
source image or by rendering a glyph badge.

The package provides a command line interface, supporting various flags for the
different generation modes. To check the supported commands type:

	$ iconset --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/mkoval/iconset"
	)

	func main() {
		g := &iconset.Generator{
			OutputDir: "assets/icons",
		}

		if err := g.Generate(); err != nil {
			log.Fatalf("Error generating the icon set: %s", err.Error())
		}
	}
*/
package iconset
