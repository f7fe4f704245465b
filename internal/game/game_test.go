package game

import (
	"context"
	"strings"
	"testing"
)

// scriptUI replays canned input. An exhausted script quits.
type scriptUI struct {
	dirs    []Direction
	letters []rune
	renders int
	last    *View
}

func (u *scriptUI) Render(v *View) {
	u.renders++
	u.last = v
}

func (u *scriptUI) InputDirection() (Direction, bool) {
	if len(u.dirs) == 0 {
		return Direction{}, false
	}
	d := u.dirs[0]
	u.dirs = u.dirs[1:]
	return d, true
}

func (u *scriptUI) InputLetter() (rune, bool) {
	if len(u.letters) == 0 {
		return 0, false
	}
	r := u.letters[0]
	u.letters = u.letters[1:]
	return r, true
}

type stageUI struct {
	scriptUI
	offered []int
	choice  int
}

func (u *stageUI) SelectStage(stages []int) (int, bool) {
	u.offered = stages
	return u.choice, u.choice != 0
}

func TestRunQuit(t *testing.T) {
	ui := &scriptUI{}
	g, err := New(DefaultConfig(), ui, testCatalog(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Quit || res.Victory {
		t.Errorf("Run() = %+v, want quit", res)
	}
	if ui.renders != 1 {
		t.Errorf("renders = %d, want 1", ui.renders)
	}
	if res.Turns != 0 {
		t.Errorf("Turns = %d, want 0", res.Turns)
	}
}

func TestRunStarvesStandingStill(t *testing.T) {
	ui := &scriptUI{
		dirs:    make([]Direction, 200),
		letters: []rune{'m', 'x', 's'},
	}
	cfg := DefaultConfig()
	cfg.Seed = 42
	g, err := New(cfg, ui, testCatalog(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Quit || res.Victory {
		t.Errorf("Run() = %+v, want plain defeat", res)
	}
	if res.Turns != 89 {
		t.Errorf("Turns = %d, want 89", res.Turns)
	}
	if !ui.last.GameOver || !ui.last.ShowAll {
		t.Errorf("last view GameOver/ShowAll = %v/%v, want true/true", ui.last.GameOver, ui.last.ShowAll)
	}
	if want := "SEED: " + res.SeedString; ui.last.Message != want {
		t.Errorf("last message = %q, want %q", ui.last.Message, want)
	}
}

func TestRunSelectsStage(t *testing.T) {
	ui := &stageUI{choice: 3}
	cfg := DefaultConfig()
	cfg.Stage = 0
	g, err := New(cfg, ui, testCatalog(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(ui.offered) != 3 {
		t.Errorf("offered stages = %v, want 3", ui.offered)
	}
	if g.Session().Stage().ID != 3 {
		t.Errorf("stage = %d, want 3", g.Session().Stage().ID)
	}
	if !strings.Contains(res.SeedString, "-3-") {
		t.Errorf("SeedString = %q, want stage 3", res.SeedString)
	}
}

func TestRunStageSelectionCancelled(t *testing.T) {
	ui := &stageUI{}
	cfg := DefaultConfig()
	cfg.Stage = 0
	g, _ := New(cfg, ui, testCatalog(t))

	res, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Quit || g.Session() != nil {
		t.Errorf("Run() = %+v, session = %v, want quit before start", res, g.Session())
	}
}

func TestNewRejectsConflictingFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LargeTorch = true
	cfg.SmallTorch = true
	if _, err := New(cfg, &scriptUI{}, testCatalog(t)); err == nil {
		t.Error("New() error = nil, want conflicting flags")
	}
}

func TestViewBeatable(t *testing.T) {
	s := newSession(t, 42, 1)
	v := s.View()
	if v.Beatable == nil || v.Beatable.Symbol != "a" {
		t.Errorf("Beatable = %v, want 'a'", v.Beatable)
	}
	if v.Stage != 1 || v.GameOver {
		t.Errorf("Stage/GameOver = %d/%v", v.Stage, v.GameOver)
	}
}
