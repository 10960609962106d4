// Package render draws rig poses as wireframes into an RGBA framebuffer
// and shows them as PNG images or half-block terminal cells.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Color is an 8-bit RGBA color.
type Color = color.RGBA

var (
	ColorBlack = Color{A: 255}
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 255}
	ColorRed   = Color{R: 230, G: 60, B: 60, A: 255}
	ColorGreen = Color{R: 60, G: 200, B: 90, A: 255}
	ColorBlue  = Color{R: 70, G: 110, B: 240, A: 255}
	ColorGray  = Color{R: 110, G: 110, B: 110, A: 255}
)

// Framebuffer is a row-major grid of pixels.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color
}

// NewFramebuffer returns a transparent width × height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Clear fills the framebuffer with c.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets (x, y) to c. Out of range coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// Pixel returns the color at (x, y), or transparent black out of range.
func (fb *Framebuffer) Pixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws from (x0, y0) to (x1, y1) inclusive with Bresenham's
// algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Image copies the framebuffer into an image.RGBA.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG writes the framebuffer to path as a PNG image.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	if err := png.Encode(f, fb.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
