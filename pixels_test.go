package pixelsays

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTransparencyTestImage returns a 2x2 image: opaque white and black on
// top, fully transparent white and black below.
func createTransparencyTestImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{255, 255, 255, 0})
	img.SetNRGBA(1, 1, color.NRGBA{0, 0, 0, 0})
	return img
}

func createPixelTestImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x * 255) / width),
				G: uint8((y * 255) / height),
				B: uint8((x + y) % 255),
				A: 255,
			})
		}
	}
	return img
}

func TestPixelsTransparency(t *testing.T) {
	tests := []struct {
		name string
		mode PixelMode
		want string
	}{
		{name: "Monochrome", mode: Monochrome, want: "██  \n    \n"},
		{name: "Invert", mode: Invert, want: "  ██\n    \n"},
		{
			name: "TrueColor",
			mode: TrueColor,
			want: "\x1b[38;2;255;255;255m██\x1b[0m\x1b[38;2;0;0;0m██\x1b[0m\n    \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pixels(createTransparencyTestImage(), tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPixelsTrueColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 0})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 50})

	var buf bytes.Buffer
	require.NoError(t, RenderPixels(&buf, img, TrueColor))

	out := buf.String()
	assert.Contains(t, out, "\x1b[38;2;255;0;0m██\x1b[0m")
	assert.Contains(t, out, "\x1b[38;2;0;255;0m██\x1b[0m")
	assert.True(t, strings.HasSuffix(out, "\n    \n"), "second row should be blank: %q", out)
}

func TestGlyphTransparencyIsModeIndependent(t *testing.T) {
	for _, mode := range []PixelMode{TrueColor, Monochrome, Invert} {
		for _, alpha := range []uint8{0, 1, 64, 127} {
			for _, c := range []color.NRGBA{{0, 0, 0, alpha}, {255, 255, 255, alpha}, {255, 0, 0, alpha}} {
				assert.Equal(t, blank, mode.glyph(c), "mode %s color %v", mode, c)
			}
		}
		assert.NotEqual(t, "", mode.glyph(color.NRGBA{255, 255, 255, 128}))
	}
	assert.Equal(t, block, Monochrome.glyph(color.NRGBA{255, 255, 255, 128}))
}

func TestMonochromeInvertComplement(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := color.NRGBA{uint8(r), uint8(g), uint8(b), 255}
				mono, inv := Monochrome.glyph(c), Invert.glyph(c)
				assert.NotEqual(t, mono, inv, "color %v", c)
				assert.Contains(t, []string{block, blank}, mono)
				assert.Contains(t, []string{block, blank}, inv)
			}
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name      string
		color     color.NRGBA
		wantBlock bool
	}{
		{name: "white", color: color.NRGBA{255, 255, 255, 255}, wantBlock: true},
		{name: "black", color: color.NRGBA{0, 0, 0, 255}, wantBlock: false},
		{name: "mid gray", color: color.NRGBA{128, 128, 128, 255}, wantBlock: false},
		{name: "light gray", color: color.NRGBA{130, 130, 130, 255}, wantBlock: true},
		{name: "pure red", color: color.NRGBA{255, 0, 0, 255}, wantBlock: false},
		{name: "pure green", color: color.NRGBA{0, 255, 0, 255}, wantBlock: true},
		{name: "pure blue", color: color.NRGBA{0, 0, 255, 255}, wantBlock: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBlock, luminance(tt.color) > lumaThreshold)
			if tt.wantBlock {
				assert.Equal(t, block, Monochrome.glyph(tt.color))
			} else {
				assert.Equal(t, blank, Monochrome.glyph(tt.color))
			}
		})
	}
}

func TestPixelsShape(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		wantRows int
		wantCols int
	}{
		{name: "small image unscaled", width: 10, height: 5, wantRows: 5, wantCols: 10},
		{name: "wide image downsampled", width: 200, height: 100, wantRows: 40, wantCols: 80},
		{name: "tall image downsampled", width: 50, height: 160, wantRows: 80, wantCols: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Pixels(createPixelTestImage(tt.width, tt.height), Monochrome)
			require.NoError(t, err)

			rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			assert.Len(t, rows, tt.wantRows)
			for _, row := range rows {
				// two cells per pixel; block and blank are both two cells wide
				assert.Equal(t, tt.wantCols*2, len([]rune(row)))
			}
		})
	}
}

func TestPixelsErrors(t *testing.T) {
	_, err := Pixels(nil, TrueColor)
	assert.Error(t, err)

	_, err = Pixels(createPixelTestImage(2, 2), PixelMode(42))
	assert.Error(t, err)

	err = RenderPixels(failingWriter{}, createPixelTestImage(2, 2), Invert)
	assert.ErrorIs(t, err, errSinkClosed)
}

func TestParsePixelMode(t *testing.T) {
	tests := []struct {
		in      string
		want    PixelMode
		wantErr bool
	}{
		{in: "truecolor", want: TrueColor},
		{in: "Color", want: TrueColor},
		{in: "monochrome", want: Monochrome},
		{in: "MONO", want: Monochrome},
		{in: "invert", want: Invert},
		{in: " inverted ", want: Invert},
		{in: "sepia", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("ParsePixelMode_%q", tt.in), func(t *testing.T) {
			got, err := ParsePixelMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPixelModeString(t *testing.T) {
	for _, mode := range []PixelMode{TrueColor, Monochrome, Invert} {
		parsed, err := ParsePixelMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	assert.Equal(t, "PixelMode(7)", PixelMode(7).String())
}
