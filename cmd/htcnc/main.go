// Command htcnc converts an image into a halftone preview and the G-code
// that carves it with a V-bit.
//
// Usage:
//
//	htcnc [flags] image
//
// Typical use: tune --step and --depth-pct while looking at the preview, then
// add -g to write image.ngc next to the source.
//
//	htcnc --step 6 --scale 2 --preview preview.png portrait.jpg
//	htcnc --step 6 -g --save-settings portrait.jpg
package main

import (
	"os"

	"github.com/gogpu/halftone/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
