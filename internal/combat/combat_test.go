package combat

import (
	"testing"

	"github.com/samdwyer/arlq/internal/gamedata"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	level    int
	lp       int
	item     gamedata.Item
	itemFrom rune
}

func (m *mockCombatant) GetLevel() int          { return m.level }
func (m *mockCombatant) GetLP() int             { return m.lp }
func (m *mockCombatant) GetItem() gamedata.Item { return m.item }
func (m *mockCombatant) GainLevels(n int)       { m.level += n }
func (m *mockCombatant) SetLP(lp int)           { m.lp = lp }

func (m *mockCombatant) SetItem(item gamedata.Item, from rune) {
	m.item = item
	m.itemFrom = from
}

func TestAttack(t *testing.T) {
	tests := []struct {
		level int
		item  gamedata.Item
		want  int
	}{
		{1, gamedata.ItemNone, 1},
		{7, gamedata.ItemNone, 7},
		{7, gamedata.ItemSwordX2, 14},
		{7, gamedata.ItemSwordX3, 21},
		{7, gamedata.ItemCursedSword, 28},
		{7, gamedata.ItemPoisoned, 3},
		{1, gamedata.ItemPoisoned, 1},
		{0, gamedata.ItemPoisoned, 0},
		{7, gamedata.ItemTreasure, 7},
	}
	for _, tt := range tests {
		if got := Attack(tt.level, tt.item); got != tt.want {
			t.Errorf("Attack(%d, %q) = %d, want %d", tt.level, tt.item, got, tt.want)
		}
	}
}

func TestAttackMonotonic(t *testing.T) {
	items := []gamedata.Item{
		gamedata.ItemNone, gamedata.ItemSwordX2, gamedata.ItemSwordX3,
		gamedata.ItemCursedSword, gamedata.ItemPoisoned,
	}
	for _, item := range items {
		prev := Attack(0, item)
		for level := 1; level < 200; level++ {
			a := Attack(level, item)
			if a < prev {
				t.Fatalf("Attack(%d, %q) = %d < Attack(%d) = %d", level, item, a, level-1, prev)
			}
			prev = a
		}
	}
}

func TestResolveWin(t *testing.T) {
	tests := []struct {
		name      string
		c         mockCombatant
		tribe     gamedata.TribeDef
		wantLevel int
		wantLP    int
		wantItem  gamedata.Item
	}{
		{
			name:      "plain",
			c:         mockCombatant{level: 1, lp: 89},
			tribe:     gamedata.TribeDef{Symbol: "a", Level: 1, Feed: 12},
			wantLevel: 2, wantLP: 100,
		},
		{
			name:      "special exp",
			c:         mockCombatant{level: 3, lp: 50},
			tribe:     gamedata.TribeDef{Symbol: "A", Level: 1, Feed: 12, Effect: gamedata.EffectSpecialExp},
			wantLevel: 13, wantLP: 62,
		},
		{
			name:      "energy drain floors at one",
			c:         mockCombatant{level: 3, lp: 5},
			tribe:     gamedata.TribeDef{Symbol: "e", Level: 1, Feed: -12, Effect: gamedata.EffectEnergyDrain},
			wantLevel: 4, wantLP: 1,
		},
		{
			name:      "sword replaces poison",
			c:         mockCombatant{level: 30, lp: 40, item: gamedata.ItemPoisoned},
			tribe:     gamedata.TribeDef{Symbol: "c", Level: 10, Feed: 12, Item: gamedata.ItemSwordX2},
			wantLevel: 31, wantLP: 52, wantItem: gamedata.ItemSwordX2,
		},
		{
			name:      "itemless tribe clears item",
			c:         mockCombatant{level: 5, lp: 40, item: gamedata.ItemSwordX3},
			tribe:     gamedata.TribeDef{Symbol: "b", Level: 5, Feed: 20},
			wantLevel: 6, wantLP: 60,
		},
		{
			name:      "cursed sword halves",
			c:         mockCombatant{level: 15, lp: 61},
			tribe:     gamedata.TribeDef{Symbol: "s", Level: 15, Item: gamedata.ItemCursedSword},
			wantLevel: 16, wantLP: 30, wantItem: gamedata.ItemCursedSword,
		},
		{
			name:      "companion",
			c:         mockCombatant{level: 1, lp: 50},
			tribe:     gamedata.TribeDef{Symbol: "n", Companion: gamedata.CompanionNomicon},
			wantLevel: 2, wantLP: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			res := Resolve(&c, &tt.tribe)
			if res.Outcome != OutcomeWin {
				t.Fatalf("Resolve() outcome = %v, want win", res.Outcome)
			}
			if c.level != tt.wantLevel {
				t.Errorf("level = %d, want %d", c.level, tt.wantLevel)
			}
			if c.lp != tt.wantLP {
				t.Errorf("lp = %d, want %d", c.lp, tt.wantLP)
			}
			if c.item != tt.wantItem {
				t.Errorf("item = %q, want %q", c.item, tt.wantItem)
			}
			if c.itemFrom != tt.tribe.SymbolRune() {
				t.Errorf("itemFrom = %q, want %q", c.itemFrom, tt.tribe.SymbolRune())
			}
			if res.LPDelta != tt.wantLP-tt.c.lp {
				t.Errorf("LPDelta = %d, want %d", res.LPDelta, tt.wantLP-tt.c.lp)
			}
		})
	}
}

func TestResolveLose(t *testing.T) {
	tests := []struct {
		name   string
		lp     int
		wantLP int
	}{
		{"low lp raised", 5, 20},
		{"high lp capped", 100, 90},
		{"middle kept", 55, 55},
	}
	dragon := gamedata.TribeDef{Symbol: "D", Level: 40, Feed: 12}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mockCombatant{level: 10, lp: tt.lp, item: gamedata.ItemSwordX3}
			res := Resolve(&c, &dragon)
			if res.Outcome != OutcomeLose {
				t.Fatalf("Resolve() outcome = %v, want lose", res.Outcome)
			}
			if res.Attack != 30 {
				t.Errorf("Attack = %d, want 30", res.Attack)
			}
			if c.lp != tt.wantLP {
				t.Errorf("lp = %d, want %d", c.lp, tt.wantLP)
			}
			if c.item != gamedata.ItemNone {
				t.Errorf("item = %q, want none", c.item)
			}
			if c.level != 10 {
				t.Errorf("level = %d, want 10", c.level)
			}
		})
	}
}

func TestClampLP(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 1}, {0, 1}, {1, 1}, {50, 50}, {100, 100}, {150, 100},
	}
	for _, tt := range tests {
		if got := ClampLP(tt.in); got != tt.want {
			t.Errorf("ClampLP(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
