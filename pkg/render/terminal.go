package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// halfBlock is the upper half block. Its foreground paints the top pixel of
// a cell and its background the bottom one.
const halfBlock = "▀"

// TerminalRows returns the number of terminal rows needed to show height
// pixel rows.
func TerminalRows(height int) int {
	return (height + 1) / 2
}

// Draw writes the framebuffer into area of scr as half-block cells. Each
// terminal row holds two pixel rows, so area needs TerminalRows(Height)
// rows to show the whole image. Cells past the framebuffer are left alone.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= fb.Height {
			break
		}
		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			x := col - area.Min.X
			scr.SetCell(col, row, &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.Pixel(x, topY)),
					Bg: rgbaToColor(fb.Pixel(x, topY+1)),
				},
			})
		}
	}
}

// ANSI renders the framebuffer as half-block text with color escapes, one
// line per terminal row.
func (fb *Framebuffer) ANSI() string {
	scr := uv.NewScreenBuffer(fb.Width, TerminalRows(fb.Height))
	fb.Draw(scr, scr.Bounds())
	return scr.Render()
}

// rgbaToColor maps transparent pixels to no color so the terminal default
// shows through.
func rgbaToColor(c Color) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
