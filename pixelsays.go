package pixelsays

import (
	"fmt"
	"image"
	"io"
)

// Image is a picture to draw under a speech bubble, configured with a
// fluent API. An Image caches its decoded raster after the first load and
// is not safe for concurrent use.
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	mode     PixelMode
	maxCells int
}

// New creates a new Image from an image.Image
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	return &Image{
		source:   img,
		mode:     TrueColor,
		maxCells: DefaultMaxCells,
	}
}

// Open creates a new Image from a file path. The file is read on first use.
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	return &Image{
		path:     path,
		mode:     TrueColor,
		maxCells: DefaultMaxCells,
	}, nil
}

// From creates a new Image from an io.Reader
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	return &Image{
		reader:   r,
		mode:     TrueColor,
		maxCells: DefaultMaxCells,
	}
}

// Mode sets the pixel mode
func (i *Image) Mode(m PixelMode) *Image {
	i.mode = m
	return i
}

// MaxCells sets the limit for the longer side of the rendered image.
// Values below 1 restore DefaultMaxCells.
func (i *Image) MaxCells(n int) *Image {
	if n < 1 {
		n = DefaultMaxCells
	}
	i.maxCells = n
	return i
}

// Render returns the image as rows of glyph pairs
func (i *Image) Render() (string, error) {
	img, err := i.loadImage()
	if err != nil {
		return "", err
	}
	return renderPixels(img, i.mode, i.maxCells)
}

// Print writes the rendered image to w
func (i *Image) Print(w io.Writer) error {
	out, err := i.Render()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Say writes message in a speech bubble to w with the image drawn under it.
// Nothing is written if the image cannot be loaded.
func (i *Image) Say(w io.Writer, message string, maxWidth int) error {
	art, err := i.Render()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, Bubble(message, maxWidth)+"\n"+connector); err != nil {
		return err
	}
	_, err = io.WriteString(w, art)
	return err
}

// loadImage loads the image from the configured source
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	var (
		img image.Image
		err error
	)
	switch {
	case i.path != "":
		img, err = decodeFile(i.path)
	case i.reader != nil:
		img, err = decodeReader(readerSource, i.reader)
	default:
		return nil, fmt.Errorf("no image source configured")
	}
	if err != nil {
		return nil, err
	}

	i.source = img
	return img, nil
}

// Convenience functions for one-shot rendering

// Say writes message in a speech bubble to w with the built-in mascot
// under it.
func Say(w io.Writer, message string, maxWidth int) error {
	_, err := io.WriteString(w, Bubble(message, maxWidth)+mascot)
	return err
}

// SayImage writes message in a speech bubble to w with img drawn under it.
func SayImage(w io.Writer, message string, maxWidth int, img image.Image, mode PixelMode) error {
	if img == nil {
		return fmt.Errorf("image cannot be nil")
	}
	return New(img).Mode(mode).Say(w, message, maxWidth)
}

// SayImageFile is SayImage for an image file. A file that cannot be opened
// or decoded yields a *DecodeError.
func SayImageFile(w io.Writer, message string, maxWidth int, path string, mode PixelMode) error {
	img, err := Open(path)
	if err != nil {
		return err
	}
	return img.Mode(mode).Say(w, message, maxWidth)
}

// SayImageReader is SayImage for encoded image bytes read from r.
func SayImageReader(w io.Writer, message string, maxWidth int, r io.Reader, mode PixelMode) error {
	if r == nil {
		return fmt.Errorf("reader cannot be nil")
	}
	return From(r).Mode(mode).Say(w, message, maxWidth)
}
