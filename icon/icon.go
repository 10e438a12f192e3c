// Package icon renders the tray template icons: a white diamond on a
// transparent square canvas, with an optional green status dot in the
// bottom-right corner for the active variant.
package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

// Render draws a size x size icon. Sizes below 4 are unsupported.
func Render(size int, active bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	drawDiamond(img, size)
	if active {
		drawDot(img, size)
	}
	return img
}

// drawDiamond fills the diamond with vertices inset margin=size/4 from
// each edge midpoint. For an axis-aligned diamond the fill is exactly
// the pixels with |x-cx| + |y-cy| <= size/2 - margin, edges included.
func drawDiamond(img *image.RGBA, size int) {
	margin := size / 4
	cx, cy := size/2, size/2
	half := size/2 - margin
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if abs(x-cx)+abs(y-cy) <= half {
				img.Set(x, y, white)
			}
		}
	}
}

// dotRect is the status dot's bounding box. Both corners sit inside
// the box, so Max is one past the bottom-right pixel.
func dotRect(size int) image.Rectangle {
	dotMargin := max(2, size/10)
	dotSize := max(3, size/6)
	lo := size - dotMargin - dotSize
	hi := size - dotMargin
	return image.Rect(lo, lo, hi+1, hi+1)
}

func drawDot(img *image.RGBA, size int) {
	box := dotRect(size)
	cx := float64(box.Min.X+box.Max.X) / 2
	cy := float64(box.Min.Y+box.Max.Y) / 2
	r := float64(box.Dx()) / 2
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r {
				img.Set(x, y, green)
			}
		}
	}
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
