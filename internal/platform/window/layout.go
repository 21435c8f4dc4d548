package window

import (
	"image/color"

	"github.com/vovakirdan/gridsnake/internal/core"
)

var (
	shadeLight = color.Gray{Y: 26} // 0.1
	shadeDark  = color.Gray{Y: 13} // 0.05
	snakeColor = color.RGBA{G: 255, A: 255}
	headColor  = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	foodColor  = color.RGBA{R: 255, A: 255}
)

// gridLayout maps grid cells to pixels. Grid row 0 is the bottom of the window.
type gridLayout struct {
	cols, rows int
	width      int
	height     int
}

// cellSize returns the size of one cell in pixels.
func (l gridLayout) cellSize() (w, h float64) {
	return float64(l.width) / float64(l.cols), float64(l.height) / float64(l.rows)
}

// origin returns the top-left pixel of cell p.
func (l gridLayout) origin(p core.Point) (x, y float64) {
	cw, ch := l.cellSize()
	return float64(p.X) * cw, float64(l.rows-1-p.Y) * ch
}

// shade returns the checkerboard color of cell p.
func shade(p core.Point) color.Color {
	if (p.X+p.Y)%2 == 0 {
		return shadeLight
	}
	return shadeDark
}
