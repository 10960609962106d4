package render

import (
	"image"
	"image/color"
	"strings"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestTerminalRows(t *testing.T) {
	tests := []struct {
		height, want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{48, 24},
	}

	for _, tc := range tests {
		if got := TerminalRows(tc.height); got != tc.want {
			t.Errorf("TerminalRows(%d) = %d, want %d", tc.height, got, tc.want)
		}
	}
}

func TestDrawCells(t *testing.T) {
	fb := NewFramebuffer(2, 3)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(0, 1, ColorBlue)
	fb.SetPixel(1, 1, ColorGreen)
	fb.SetPixel(1, 2, ColorWhite)

	scr := uv.NewScreenBuffer(2, TerminalRows(fb.Height))
	fb.Draw(scr, scr.Bounds())

	tests := []struct {
		name   string
		x, y   int
		fg, bg color.Color
	}{
		{"top left", 0, 0, ColorRed, ColorBlue},
		{"top right", 1, 0, nil, ColorGreen},
		{"bottom left", 0, 1, nil, nil},
		{"bottom right past last row", 1, 1, ColorWhite, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := scr.CellAt(tc.x, tc.y)
			if cell == nil {
				t.Fatal("no cell drawn")
			}
			if cell.Content != halfBlock {
				t.Errorf("content = %q, want %q", cell.Content, halfBlock)
			}
			if cell.Style.Fg != tc.fg {
				t.Errorf("fg = %v, want %v", cell.Style.Fg, tc.fg)
			}
			if cell.Style.Bg != tc.bg {
				t.Errorf("bg = %v, want %v", cell.Style.Bg, tc.bg)
			}
		})
	}
}

func TestDrawOffsetArea(t *testing.T) {
	fb := NewFramebuffer(1, 2)
	fb.Clear(ColorRed)

	scr := uv.NewScreenBuffer(4, 3)
	fb.Draw(scr, uv.Rectangle{Min: image.Pt(2, 1), Max: image.Pt(4, 3)})

	cell := scr.CellAt(2, 1)
	if cell == nil || cell.Content != halfBlock || cell.Style.Fg != ColorRed || cell.Style.Bg != ColorRed {
		t.Errorf("cell at area origin = %+v, want red half block", cell)
	}
	for _, p := range []image.Point{{0, 0}, {3, 1}, {2, 2}} {
		if c := scr.CellAt(p.X, p.Y); c != nil && c.Content == halfBlock {
			t.Errorf("cell %v drawn outside the framebuffer", p)
		}
	}
}

func TestANSI(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(ColorGray)

	got := fb.ANSI()
	if n := strings.Count(got, halfBlock); n != 8 {
		t.Errorf("got %d half blocks, want 8", n)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no color escapes in %q", got)
	}
}
