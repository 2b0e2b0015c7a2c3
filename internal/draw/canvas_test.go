package draw

import (
	"strings"
	"testing"
)

func TestCanvasFillRect(t *testing.T) {
	// 1:1 logical-to-terminal mapping (height*2 sub-pixels).
	c := NewCanvas(10, 5, 10, 10)
	c.FillRect(2, 2, 3, 3)

	if !c.pixels[2*10+2] || !c.pixels[4*10+4] {
		t.Error("rect interior pixels should be set")
	}
	if c.pixels[0] {
		t.Error("pixels outside the rect should stay clear")
	}
}

func TestCanvasFillRectMinimumOnePixel(t *testing.T) {
	// A rect far thinner than one pixel still draws.
	c := NewCanvas(10, 5, 1000, 1000)
	c.FillRect(500, 500, 1, 1)

	set := 0
	for _, p := range c.pixels {
		if p {
			set++
		}
	}
	if set == 0 {
		t.Error("sub-pixel rect should still produce at least one pixel")
	}
}

func TestCanvasRenderHalfBlocks(t *testing.T) {
	c := NewCanvas(2, 1, 2, 2)
	c.Set(0, 0) // top sub-pixel of cell (0,0)
	c.Set(1, 0)
	c.Set(1, 1) // both sub-pixels of cell (1,0)

	var sb strings.Builder
	c.Render(&sb)
	out := sb.String()

	if !strings.ContainsRune(out, BlockUpperHalf) {
		t.Error("expected an upper-half block for a top-only cell")
	}
	if !strings.ContainsRune(out, BlockFull) {
		t.Error("expected a full block for a fully set cell")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4, 4, 8)
	c.FillRect(0, 0, 4, 8)
	c.Clear()

	for i, p := range c.pixels {
		if p {
			t.Fatalf("pixel %d still set after Clear", i)
		}
	}
}

func TestCanvasResizeKeepsLogicalSpace(t *testing.T) {
	c := NewCanvas(80, 24, 800, 600)
	c.Resize(160, 48)

	if c.TerminalWidth() != 160 || c.TerminalHeight() != 48 {
		t.Errorf("terminal size not updated: %dx%d", c.TerminalWidth(), c.TerminalHeight())
	}
	// The same logical point lands proportionally further out.
	col, _ := c.LogicalToTerminal(400, 300)
	if col != 81 {
		t.Errorf("expected logical center at column 81 after resize, got %d", col)
	}
}

func TestChunkWriterMoveCursorOffsets(t *testing.T) {
	var sb strings.Builder
	cw := NewChunkWriter(&sb, 5, 3)
	cw.WriteAt(1, 1, "X")
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if got := sb.String(); got != "\033[4;6HX" {
		t.Errorf("unexpected output %q", got)
	}
}
