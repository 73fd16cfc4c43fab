package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	pixelsays "github.com/Bli-AIk/pixel-says"
	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
)

func main() {
	log.SetHandler(clihander.Default)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if len(os.Args) > 1 {
		// If a file is provided, render it
		renderFile(out, os.Args[1])
	} else {
		// Otherwise, create a test pattern
		renderTestPattern(out)
	}
}

func renderFile(out *bufio.Writer, path string) {
	fmt.Fprintf(out, "Rendering image: %s\n\n", path)

	err := pixelsays.SayImageFile(out, "Hello with image!", 24, path, pixelsays.TrueColor)
	if err != nil {
		out.Flush()
		log.Fatalf("Error rendering file: %v", err)
	}
}

func renderTestPattern(out *bufio.Writer) {
	fmt.Fprintln(out, "Default mascot:")
	if err := pixelsays.Say(out, "Hello, world!", 24); err != nil {
		log.Fatalf("Error writing bubble: %v", err)
	}

	img := createTestPattern()

	modes := []pixelsays.PixelMode{
		pixelsays.TrueColor,
		pixelsays.Monochrome,
		pixelsays.Invert,
	}

	for _, mode := range modes {
		fmt.Fprintf(out, "\n=== %s ===\n", mode)
		err := pixelsays.New(img).
			Mode(mode).
			MaxCells(32).
			Say(out, fmt.Sprintf("Rendered in %s mode", mode), 24)
		if err != nil {
			fmt.Fprintf(out, "Error with %s: %v\n", mode, err)
		}
	}
}

func createTestPattern() image.Image {
	const size = 200
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Create a gradient pattern
	for y := range size {
		for x := range size {
			r := uint8((x * 255) / size)
			g := uint8((y * 255) / size)
			b := uint8(((x + y) * 255) / (2 * size))
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}

	// Red square
	draw.Draw(img, image.Rect(20, 20, 60, 60),
		&image.Uniform{color.RGBA{255, 0, 0, 255}},
		image.Point{}, draw.Src)

	// Green square
	draw.Draw(img, image.Rect(140, 20, 180, 60),
		&image.Uniform{color.RGBA{0, 255, 0, 255}},
		image.Point{}, draw.Src)

	// Transparent hole, drawn blank in every mode
	draw.Draw(img, image.Rect(20, 140, 60, 180),
		image.Transparent,
		image.Point{}, draw.Src)

	// White square
	draw.Draw(img, image.Rect(140, 140, 180, 180),
		&image.Uniform{color.RGBA{255, 255, 255, 255}},
		image.Point{}, draw.Src)

	return img
}
