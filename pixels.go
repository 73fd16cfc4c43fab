package pixelsays

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
)

// PixelMode selects how a pixel is turned into terminal glyphs
type PixelMode int

const (
	// TrueColor draws each pixel as a block in its own 24-bit color
	TrueColor PixelMode = iota
	// Monochrome draws bright pixels as blocks and dark pixels as blanks
	Monochrome
	// Invert draws dark pixels as blocks and bright pixels as blanks
	Invert
)

const (
	block = "██"
	blank = "  "

	// Pixels with alpha below this are drawn blank in every mode.
	alphaThreshold = 128
	// Monochrome and Invert split pixels on luminance above this.
	lumaThreshold = 128
)

func (m PixelMode) String() string {
	switch m {
	case TrueColor:
		return "truecolor"
	case Monochrome:
		return "monochrome"
	case Invert:
		return "invert"
	default:
		return fmt.Sprintf("PixelMode(%d)", int(m))
	}
}

// ParsePixelMode returns the PixelMode for a name such as "truecolor",
// "mono" or "invert". Matching ignores case.
func ParsePixelMode(name string) (PixelMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "truecolor", "true-color", "color":
		return TrueColor, nil
	case "monochrome", "mono":
		return Monochrome, nil
	case "invert", "inverted":
		return Invert, nil
	default:
		return 0, fmt.Errorf("unsupported pixel mode: %q", name)
	}
}

func (m PixelMode) valid() bool {
	return m >= TrueColor && m <= Invert
}

// luminance uses the ITU-R BT.709 luma weights, truncated to an integer.
func luminance(c color.NRGBA) uint8 {
	l := 0.2126*float32(c.R) + 0.7152*float32(c.G) + 0.0722*float32(c.B)
	return uint8(min(l, 255))
}

// glyph returns the two terminal cells that draw c.
func (m PixelMode) glyph(c color.NRGBA) string {
	if c.A < alphaThreshold {
		return blank
	}
	switch m {
	case TrueColor:
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.R, c.G, c.B, block)
	case Monochrome:
		if luminance(c) > lumaThreshold {
			return block
		}
		return blank
	case Invert:
		if luminance(c) > lumaThreshold {
			return blank
		}
		return block
	default:
		return blank
	}
}

// Pixels renders img as rows of glyph pairs, one row per pixel row, after
// shrinking it to fit DefaultMaxCells.
func Pixels(img image.Image, mode PixelMode) (string, error) {
	return renderPixels(img, mode, DefaultMaxCells)
}

// RenderPixels writes the Pixels rendition of img to w.
func RenderPixels(w io.Writer, img image.Image, mode PixelMode) error {
	out, err := Pixels(img, mode)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func renderPixels(img image.Image, mode PixelMode, maxCells int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}
	if !mode.valid() {
		return "", fmt.Errorf("unsupported pixel mode: %s", mode)
	}

	src := fitCells(img, maxCells)
	bounds := src.Bounds()

	var b strings.Builder
	// Opaque TrueColor cells are the longest at about 24 bytes each.
	b.Grow(bounds.Dy() * (bounds.Dx()*24 + 1))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			b.WriteString(mode.glyph(c))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
