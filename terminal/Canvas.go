package terminal

import (
	"image/color"

	"github.com/gdamore/tcell"

	"pong/platform"
)

// cell maps a logical point to a terminal cell.
func (s *Screen) cell(x, y int) (col, row int) {
	width, height := s.screen.Size()
	return x * width / platform.Width, y * height / platform.Height
}

// area maps a logical box to cells. It never returns fewer than one cell.
func (s *Screen) area(x, y, w, h int) (col, row, cols, rows int) {
	col, row = s.cell(x, y)
	endCol, endRow := s.cell(x+w, y+h)
	cols, rows = endCol-col, endRow-row
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return col, row, cols, rows
}

func (s *Screen) style(c color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(c)).Background(s.bg)
}

func (s *Screen) Fill(c color.Color) {
	s.bg = toColor(c)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
}

func (s *Screen) FillRect(x, y, w, h int, c color.Color) {
	col, row, cols, rows := s.area(x, y, w, h)
	s.print(row, col, cols, rows, PaddleSymbol, s.style(c))
}

func (s *Screen) FillEllipse(x, y, w, h int, c color.Color) {
	col, row, cols, rows := s.area(x, y, w, h)
	s.print(row, col, cols, rows, BallSymbol, s.style(c))
}

// Line steps cell by cell from one end to the other.
func (s *Screen) Line(x1, y1, x2, y2 int, c color.Color) {
	c1, r1 := s.cell(x1, y1)
	c2, r2 := s.cell(x2, y2)
	steps := max(abs(c2-c1), abs(r2-r1))
	style := s.style(c)
	if steps == 0 {
		s.screen.SetContent(c1, r1, LineSymbol, nil, style)
		return
	}
	for i := 0; i <= steps; i++ {
		col := c1 + (c2-c1)*i/steps
		row := r1 + (r2-r1)*i/steps
		s.screen.SetContent(col, row, LineSymbol, nil, style)
	}
}

func (s *Screen) Text(str string, x, y int, size platform.FontSize, c color.Color) {
	col, row := s.cell(x, y)
	style := s.style(c)
	if size == platform.FontTitle {
		style = style.Bold(true)
	}
	for i, r := range []rune(str) {
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (s *Screen) print(row, col, width, height int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			s.screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
