package pixelsays

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// DefaultMaxCells caps the longer side of a rendered image, in pixels
// (one pixel becomes one glyph pair).
const DefaultMaxCells = 80

// fitDimensions scales width and height so the longer side equals maxCells,
// keeping the aspect ratio. Images that already fit are left as they are.
func fitDimensions(width, height, maxCells int) (int, int) {
	if maxCells <= 0 || (width <= maxCells && height <= maxCells) {
		return width, height
	}

	longest := max(width, height)
	newW := max(width*maxCells/longest, 1)
	newH := max(height*maxCells/longest, 1)
	return newW, newH
}

// fitCells returns img shrunk to fit maxCells with nearest-neighbor sampling
// so pixel edges stay hard. The source is never modified; an image that
// already fits is returned unchanged.
func fitCells(img image.Image, maxCells int) image.Image {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	dstW, dstH := fitDimensions(srcW, srcH, maxCells)
	if dstW == srcW && dstH == srcH {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
