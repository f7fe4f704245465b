package ui

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arlq/internal/combat"
	"github.com/samdwyer/arlq/internal/entity"
	"github.com/samdwyer/arlq/internal/game"
	"github.com/samdwyer/arlq/internal/gamedata"
	"github.com/samdwyer/arlq/internal/world"
)

// Glyphs that are not taken from the field or the tribe catalog.
const (
	glyphUnknownMonster   = '?'
	glyphUnknownCompanion = '!'
	glyphDim              = '.'
)

// lowFood is the life point level under which FOOD is drawn as a warning.
const lowFood = 20

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the field, the entities and the status lines.
func (r *Renderer) Render(v *game.View) {
	r.screen.Frame(func() {
		r.drawField(v)
		r.drawEntities(v)
		r.drawPlayer(v.Player)
		r.drawStatus(v)
	})
}

func (r *Renderer) style(c tcell.Color) tcell.Style {
	return r.screen.Style(c)
}

// drawField draws explored walls and caltrops. Unlit floor gets a sparse
// dim dot pattern so the lit area stands out.
func (r *Renderer) drawField(v *game.View) {
	f := v.Field
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := gruid.Point{X: x, Y: y}
			tile := f.At(p)
			seen := v.ShowAll || v.Explored.Has(p)
			switch {
			case tile.IsWall():
				if seen {
					r.screen.Put(p, f.Rune(p), r.style(r.theme.Wall))
				}
			case tile == world.TileCaltrop:
				if seen {
					r.screen.Put(p, f.Rune(p), r.style(r.theme.Caltrop))
				}
			case !v.Current.Has(p) && (x+y)%2 == 1:
				r.screen.Put(p, glyphDim, r.style(r.theme.Floor))
			}
		}
	}
}

func (r *Renderer) drawEntities(v *game.View) {
	attack := v.Player.Attack()
	for _, e := range v.Entities {
		if e.Kind == entity.KindTreasure {
			if v.ShowAll || e.Revealed || v.Encountered(gamedata.TreasureChar) {
				r.screen.Put(e.Pos, e.Symbol, r.style(r.theme.Treasure).Bold(true))
			}
			continue
		}
		if !v.ShowAll && !e.Revealed {
			continue
		}
		glyph, color := r.tribeGlyph(v, e, attack)
		r.screen.Put(e.Pos, glyph, r.style(color))
	}
}

// tribeGlyph returns the symbol of an identified tribe member, coloured by
// whether the player can beat it, or a placeholder for unknown ones.
func (r *Renderer) tribeGlyph(v *game.View, e *entity.Entity, attack int) (rune, tcell.Color) {
	def := v.Tribe(e)
	if !v.Encountered(def.SymbolRune()) {
		if def.Level == 0 {
			return glyphUnknownCompanion, r.theme.Unknown
		}
		return glyphUnknownMonster, r.theme.Unknown
	}
	switch {
	case e.Kind == entity.KindCompanion:
		return def.SymbolRune(), r.theme.Companion
	case combat.Beats(attack, def):
		return def.SymbolRune(), r.theme.Beatable
	default:
		return def.SymbolRune(), r.theme.Threat
	}
}

func (r *Renderer) drawPlayer(p *entity.Player) {
	if p.Companion != gamedata.CompanionNone && p.CompanionPos != p.Pos {
		r.screen.Put(p.CompanionPos, p.Companion.Rune(), r.style(r.theme.Companion))
	}
	r.screen.Put(p.Pos, p.Symbol, r.style(r.theme.Player).Bold(true))
}

// drawStatus writes the status bar and the message line under the field.
func (r *Renderer) drawStatus(v *game.View) {
	p := v.Player
	y := v.Field.Height
	text := r.style(r.theme.Text)

	x := r.screen.Text(0, y, fmt.Sprintf("HRS %d LVL %d%s", v.Turn, p.Level, attackSuffix(p.Item)), text)
	if v.Beatable != nil {
		x = r.screen.Text(x, y, " > "+v.Beatable.Symbol, r.style(r.theme.Beatable))
	}
	food := text
	if p.LP < lowFood {
		food = r.style(r.theme.Warning).Bold(true)
	}
	x = r.screen.Text(x, y, fmt.Sprintf(" FOOD %d", p.LP), food)
	switch {
	case p.Item == gamedata.ItemNone:
	case p.ItemFrom == 0:
		x = r.screen.Text(x, y, " "+string(p.Item), text)
	default:
		x = r.screen.Text(x, y, fmt.Sprintf(" %s(%c)", p.Item, p.ItemFrom), text)
	}
	hints := " [q]uit"
	if v.GameOver {
		hints = " [q]uit/[m]ap/[s]eed"
	}
	r.screen.Text(x, y, hints, text)

	if v.Message != "" {
		r.screen.Text(0, y+1, v.Message, r.style(r.theme.Message))
	}
}

// attackSuffix shows the item's effect on the attack value next to the level.
func attackSuffix(item gamedata.Item) string {
	switch item {
	case gamedata.ItemSwordX2:
		return "x2"
	case gamedata.ItemSwordX3:
		return "x3"
	case gamedata.ItemCursedSword:
		return "x4"
	case gamedata.ItemPoisoned:
		return "/3"
	default:
		return ""
	}
}
