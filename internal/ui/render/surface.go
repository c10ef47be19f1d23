package render

import (
	"github.com/gdamore/tcell/v2"
)

// Surface is the drawing capability the renderer needs. Rows and columns
// are 0-based cell coordinates.
type Surface interface {
	// ClearRegion blanks rows top through bottom inclusive.
	ClearRegion(top, bottom int)
	PaintLine(col, row int, text string, fg, bg tcell.Color)
	SetCursor(col, row int)
	HideCursor()
	Refresh()
	Size() (w, h int)
	Bell()
}

// ScreenSurface adapts a tcell.Screen to Surface.
type ScreenSurface struct {
	screen tcell.Screen
	widths *widthCache
}

// NewScreenSurface wraps screen.
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen, widths: &widthCache{}}
}

func (s *ScreenSurface) ClearRegion(top, bottom int) {
	w, h := s.screen.Size()
	if top < 0 {
		top = 0
	}
	if bottom >= h {
		bottom = h - 1
	}
	for y := top; y <= bottom; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// PaintLine draws text starting at col, clipped at the right edge. Wide
// runes occupy two cells and combining runes attach to the previous cell.
func (s *ScreenSurface) PaintLine(col, row int, text string, fg, bg tcell.Color) {
	w, h := s.screen.Size()
	if row < 0 || row >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(bg)

	x := col
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && s.widths.runeWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		width := s.widths.runeWidth(mainc)
		if width <= 0 {
			width = 1
		}
		if x+width > w {
			break
		}
		if x >= 0 {
			s.screen.SetContent(x, row, mainc, combc, style)
		}
		x += width
	}
}

func (s *ScreenSurface) SetCursor(col, row int) {
	s.screen.ShowCursor(col, row)
}

func (s *ScreenSurface) HideCursor() {
	s.screen.HideCursor()
}

func (s *ScreenSurface) Refresh() {
	s.screen.Show()
}

func (s *ScreenSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *ScreenSurface) Bell() {
	_ = s.screen.Beep()
}
