// Package ui provides the terminal front end using tcell.
package ui

import (
	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
)

// Screen wraps tcell.Screen with field coordinates and a fixed background.
type Screen struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s, which may be a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	s.SetStyle(base)
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, base: base}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for the next terminal event. It returns nil once the
// screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Style returns the base style with foreground fg.
func (s *Screen) Style(fg tcell.Color) tcell.Style {
	return s.base.Foreground(fg)
}

// Put draws r at p.
func (s *Screen) Put(p gruid.Point, r rune, style tcell.Style) {
	s.screen.SetContent(p.X, p.Y, r, nil, style)
}

// Text draws text on row y from column x and returns the column after it.
func (s *Screen) Text(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Frame clears the buffer, runs draw, and flushes the result.
func (s *Screen) Frame(draw func()) {
	s.screen.Clear()
	draw()
	s.screen.Show()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}
