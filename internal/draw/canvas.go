// Package draw renders game state to a terminal using half-block
// characters, giving double vertical resolution over plain character cells.
package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Point is a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters used by the renderer.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a monochrome drawing buffer with 2x vertical resolution.
// Game objects draw in logical coordinates (the fixed playfield); the canvas
// scales them to whatever terminal it is rendered on.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y*termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// Offsets for centering when the terminal exceeds the render area,
	// 0-based terminal columns/rows to skip.
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	intersectionBuf []float64
}

// NewCanvas creates a canvas mapping the logical playfield onto the given
// terminal size.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions, keeping the logical
// size fixed.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset used for centering the render
// area. Offsets are 0-based; the canvas occupies (offsetCol+1, offsetRow+1)
// onward.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the centering column offset.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the centering row offset.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal sub-pixel coordinates.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Set sets a pixel at logical coordinates.
func (c *Canvas) Set(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x1 := int(math.Round(x * c.scaleX))
	y1 := int(math.Round(y * c.scaleY))
	x2 := int(math.Round((x + w) * c.scaleX))
	y2 := int(math.Round((y + h) * c.scaleY))
	// Guarantee at least one pixel so thin objects (projectiles) stay
	// visible on small terminals.
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}
	for py := y1; py < y2; py++ {
		for px := x1; px < x2; px++ {
			c.setPixel(px, py)
		}
	}
}

// DrawLine draws a line between two logical points using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	e := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon from logical points, optionally filled with a
// scanline pass.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	minY := points[0].Y * c.scaleY
	maxY := minY
	for _, p := range points[1:] {
		y := p.Y * c.scaleY
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		xs := c.intersectionBuf[:0]
		n := len(points)
		for i := 0; i < n; i++ {
			y1 := points[i].Y * c.scaleY
			y2 := points[(i+1)%n].Y * c.scaleY
			if (y1 <= scanY && y2 > scanY) || (y2 <= scanY && y1 > scanY) {
				t := (scanY - y1) / (y2 - y1)
				x1 := points[i].X * c.scaleX
				x2 := points[(i+1)%n].X * c.scaleX
				xs = append(xs, x1+t*(x2-x1))
			}
		}
		c.intersectionBuf = xs

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes written at once; sized near a typical
// MTU for smooth delivery over SSH.
const maxChunkSize = 1400

// Render writes the canvas to w using half-block characters, skipping empty
// cells.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := row*2+1 < c.subPixelHeight && c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box around the render area when the terminal is
// larger than it.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	if hasV {
		bar := strings.Repeat("─", c.termWidth)
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, bar)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, bar)
		}
	}
	if hasH {
		startRow := c.offsetRow + 1
		endRow := c.offsetRow + c.termHeight + 1
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}
	io.WriteString(w, buf.String())
}

// TerminalWidth returns the terminal column count the canvas renders to.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count the canvas renders to.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position, for placing text overlays next to canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
