package game

import (
	"context"
	"errors"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestParseSeedString(t *testing.T) {
	catalog := testCatalog(t)

	cfg, err := ParseSeedString("v1.0-T-2-42", catalog)
	if err != nil {
		t.Fatalf("ParseSeedString() error = %v", err)
	}
	if !cfg.LargeTorch || cfg.SmallTorch || cfg.LargeField || cfg.NarrowCorridors {
		t.Errorf("flags = %+v, want large torch only", cfg)
	}
	if cfg.Stage != 2 || cfg.Seed != 42 {
		t.Errorf("stage/seed = %d/%d, want 2/42", cfg.Stage, cfg.Seed)
	}
}

func TestParseSeedStringErrors(t *testing.T) {
	catalog := testCatalog(t)

	tests := []struct {
		input string
		want  error
	}{
		{"v1.0-2-42", ErrBadSeedString},
		{"v1.0-T-2-42-1", ErrBadSeedString},
		{"1.0-T-2-42", ErrBadSeedString},
		{"v0.9-T-2-42", ErrBadSeedString},
		{"v1.0-Tt-2-42", ErrConflictingFlags},
		{"v1.0-q-2-42", ErrBadSeedString},
		{"v1.0--two-42", ErrBadSeedString},
		{"v1.0--0-42", ErrBadSeedString},
		{"v1.0--2-forty", ErrBadSeedString},
		{"v1.0--9-42", ErrUnknownStage},
		{"", ErrBadSeedString},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseSeedString(tt.input, catalog)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseSeedString(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestSeedStringRoundTrip(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{Stage: 1, Seed: 42}, "v1.0--1-42"},
		{Config{Stage: 2, Seed: 7, LargeField: true, LargeTorch: true, NarrowCorridors: true}, "v1.0-FTn-2-7"},
		{Config{Stage: 3, Seed: 99999, SmallTorch: true}, "v1.0-t-3-99999"},
		{Config{Seed: 5}, "v1.0--1-5"},
		{Config{Stage: 1, Seed: 42, CornerClutter: true}, "v1.0-c-1-42"},
		{Config{Stage: 2, Seed: 3, NarrowCorridors: true, CornerClutter: true}, "v1.0-nc-2-3"},
	}
	for _, tt := range tests {
		got := tt.cfg.SeedString()
		if got != tt.want {
			t.Errorf("SeedString() = %q, want %q", got, tt.want)
			continue
		}
		back, err := ParseSeedString(got, nil)
		if err != nil {
			t.Fatalf("ParseSeedString(%q) error = %v", got, err)
		}
		if back.SeedString() != got {
			t.Errorf("round trip of %q = %q", got, back.SeedString())
		}
	}
}

func TestConfigParams(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantW      int
		wantH      int
		wantRadius int
		wantHW     int
		wantVW     int
	}{
		{"default", Config{}, 78, 21, 4, 2, 3},
		{"large field", Config{LargeField: true}, 78, 26, 4, 2, 3},
		{"large torch", Config{LargeTorch: true}, 78, 21, 5, 2, 3},
		{"small torch", Config{SmallTorch: true}, 78, 21, 3, 2, 3},
		{"narrow", Config{NarrowCorridors: true}, 78, 21, 4, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.cfg.Params()
			if p.Width != tt.wantW || p.Height != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", p.Width, p.Height, tt.wantW, tt.wantH)
			}
			if p.TorchRadius != tt.wantRadius {
				t.Errorf("TorchRadius = %d, want %d", p.TorchRadius, tt.wantRadius)
			}
			if p.Build.CorridorHWidth != tt.wantHW || p.Build.CorridorVWidth != tt.wantVW {
				t.Errorf("corridors = %d/%d, want %d/%d", p.Build.CorridorHWidth, p.Build.CorridorVWidth, tt.wantHW, tt.wantVW)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	catalog := testCatalog(t)

	if err := (Config{LargeTorch: true, SmallTorch: true}).Validate(nil); !errors.Is(err, ErrConflictingFlags) {
		t.Errorf("Validate(T+t) error = %v, want ErrConflictingFlags", err)
	}
	if err := (Config{Stage: 4}).Validate(catalog); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("Validate(stage 4) error = %v, want ErrUnknownStage", err)
	}
	if err := DefaultConfig().Validate(catalog); err != nil {
		t.Errorf("Validate(default) error = %v", err)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StatePlaying, "playing"},
		{StateGameOver, "game_over"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestSeedStringReplaysSession(t *testing.T) {
	catalog := testCatalog(t)
	tests := []struct {
		name string
		cfg  Config
	}{
		{"plain", Config{Stage: 1, Seed: 42}},
		{"clutter", Config{Stage: 1, Seed: 42, CornerClutter: true}},
		{"all layout flags", Config{Stage: 2, Seed: 77, LargeField: true, SmallTorch: true, NarrowCorridors: true, CornerClutter: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig, err := NewSession(context.Background(), tt.cfg, catalog)
			if err != nil {
				t.Fatalf("NewSession() error = %v", err)
			}
			cfg, err := ParseSeedString(orig.SeedString(), catalog)
			if err != nil {
				t.Fatalf("ParseSeedString(%q) error = %v", orig.SeedString(), err)
			}
			replay, err := NewSession(context.Background(), cfg, catalog)
			if err != nil {
				t.Fatalf("NewSession() replay error = %v", err)
			}

			a, b := orig.Field, replay.Field
			if a.Width != b.Width || a.Height != b.Height {
				t.Fatalf("field size = %dx%d, want %dx%d", b.Width, b.Height, a.Width, a.Height)
			}
			differ := 0
			for y := 0; y < a.Height; y++ {
				for x := 0; x < a.Width; x++ {
					p := gruid.Point{X: x, Y: y}
					if a.At(p) != b.At(p) {
						differ++
					}
				}
			}
			if differ != 0 {
				t.Errorf("%d cells differ after replay", differ)
			}
			if orig.Player.Pos != replay.Player.Pos {
				t.Errorf("player at %v, want %v", replay.Player.Pos, orig.Player.Pos)
			}
			if len(orig.Entities) != len(replay.Entities) {
				t.Fatalf("entities = %d, want %d", len(replay.Entities), len(orig.Entities))
			}
			for i := range orig.Entities {
				if orig.Entities[i].Pos != replay.Entities[i].Pos {
					t.Errorf("entity %d at %v, want %v", i, replay.Entities[i].Pos, orig.Entities[i].Pos)
				}
			}
		})
	}
}
