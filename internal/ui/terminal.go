package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arlq/internal/game"
	"github.com/samdwyer/arlq/internal/gamedata"
)

// ErrTerminalTooSmall is returned when the terminal cannot hold the field
// and its two status lines.
var ErrTerminalTooSmall = errors.New("terminal too small")

// Terminal is the tcell front end of a game session.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
}

var (
	_ game.UI            = (*Terminal)(nil)
	_ game.StageSelector = (*Terminal)(nil)
)

// NewTerminal creates a front end drawing on screen with theme.
func NewTerminal(screen *Screen, theme gamedata.Theme) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen, theme),
	}
}

// CheckSize returns ErrTerminalTooSmall unless a field of the given size
// plus the status and message lines fits on screen.
func (t *Terminal) CheckSize(fieldWidth, fieldHeight int) error {
	w, h := t.screen.Size()
	if w < fieldWidth || h < fieldHeight+2 {
		return fmt.Errorf("%w: need %dx%d, have %dx%d",
			ErrTerminalTooSmall, fieldWidth, fieldHeight+2, w, h)
	}
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Close()
}

// Render draws a view of the session.
func (t *Terminal) Render(v *game.View) {
	t.renderer.Render(v)
}

// InputDirection waits for a movement key. Arrow keys and WASD move; q,
// ESC and Ctrl-C quit.
func (t *Terminal) InputDirection() (game.Direction, bool) {
	for {
		ev, ok := t.nextKey()
		if !ok || isQuit(ev) {
			return game.Direction{}, false
		}
		if dir, ok := keyDirection(ev); ok {
			return dir, true
		}
	}
}

// InputLetter waits for a letter key on the game over screen.
func (t *Terminal) InputLetter() (rune, bool) {
	for {
		ev, ok := t.nextKey()
		if !ok || isQuit(ev) {
			return 0, false
		}
		if ev.Key() == tcell.KeyRune {
			return ev.Rune(), true
		}
	}
}

// SelectStage asks for one of stages by its number.
func (t *Terminal) SelectStage(stages []int) (int, bool) {
	ids := make([]string, len(stages))
	for i, id := range stages {
		ids[i] = fmt.Sprint(id)
	}
	t.screen.Frame(func() {
		t.screen.Text(0, 0, "Select stage ["+strings.Join(ids, "/")+"] or [q]uit", t.screen.Style(tcell.ColorWhite))
	})

	for {
		ev, ok := t.nextKey()
		if !ok || isQuit(ev) {
			return 0, false
		}
		if ev.Key() != tcell.KeyRune {
			continue
		}
		id := int(ev.Rune() - '0')
		if slices.Contains(stages, id) {
			return id, true
		}
	}
}

// nextKey blocks for the next key event, redrawing on resize. It reports
// false once the screen has been finalized.
func (t *Terminal) nextKey() (*tcell.EventKey, bool) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return nil, false
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func keyDirection(ev *tcell.EventKey) (game.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Up, true
	case tcell.KeyDown:
		return game.Down, true
	case tcell.KeyLeft:
		return game.Left, true
	case tcell.KeyRight:
		return game.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.Up, true
		case 's', 'S':
			return game.Down, true
		case 'a', 'A':
			return game.Left, true
		case 'd', 'D':
			return game.Right, true
		}
	}
	return game.Direction{}, false
}
