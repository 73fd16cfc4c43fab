/*
Package pixelsays prints a message in a cowsay-style speech bubble with a
picture under it, drawn with terminal glyphs.

The message is stripped of repeated blanks, word-wrapped to a width measured
in terminal columns (wide CJK characters count as two) and framed in a bubble.
The picture is shrunk with nearest-neighbor sampling until its longer side is
at most 80 pixels, then every pixel becomes two terminal cells. It supports
all image formats that Go's image package and golang.org/x/image decode (PNG,
JPEG, GIF, BMP, TIFF, WebP).

Pixel modes:

  - TrueColor: each pixel is a "██" block colored with a 24-bit ANSI escape
  - Monochrome: bright pixels are blocks, dark pixels are blanks
  - Invert: dark pixels are blocks, bright pixels are blanks

Pixels with an alpha below 128 are blank in every mode.

Basic Usage:

	// Bubble with the built-in mascot
	pixelsays.Say(os.Stdout, "Hello, world!", 40)

	// Bubble with a picture
	err := pixelsays.SayImageFile(os.Stdout, "Hello from pixels!", 40, "ferris.png", pixelsays.TrueColor)
	if err != nil {
	    log.Fatal(err)
	}

Fluent API:

	img, err := pixelsays.Open("ferris.png")
	if err != nil {
	    log.Fatal(err)
	}
	err = img.Mode(pixelsays.Monochrome).MaxCells(40).Say(os.Stdout, "Hi", 24)

A file that cannot be read or decoded is reported as a *DecodeError before
anything is written. Errors from the writer are returned unchanged.
*/
package pixelsays
