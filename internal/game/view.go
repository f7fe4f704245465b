package game

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/arlq/internal/entity"
	"github.com/samdwyer/arlq/internal/gamedata"
	"github.com/samdwyer/arlq/internal/world"
)

// View is a read-only snapshot of a session handed to the front end.
// Its pointers refer to live session state and must not be modified.
type View struct {
	Turn       int
	Stage      int
	Player     *entity.Player
	Entities   []*entity.Entity
	Field      *world.Field
	Current    *world.Mask
	Explored   *world.Mask
	Catalog    *gamedata.Catalog
	Encounters mapset.Set[rune]
	ShowAll    bool
	Message    string
	Beatable   *gamedata.TribeDef // strongest tribe the player can defeat, if any
	GameOver   bool
	SeedString string
}

// View returns the current state for rendering.
func (s *Session) View() *View {
	return &View{
		Turn:       s.Turn,
		Stage:      s.stage.ID,
		Player:     s.Player,
		Entities:   s.Entities,
		Field:      s.Field,
		Current:    s.Current,
		Explored:   s.Explored,
		Catalog:    s.catalog,
		Encounters: s.Encountered,
		ShowAll:    s.ShowAll,
		Message:    s.Message.Text,
		Beatable:   s.catalog.MaxBeatable(s.stage, s.Player.Attack()),
		GameOver:   s.State == StateGameOver,
		SeedString: s.SeedString(),
	}
}

// Encountered returns true if the player has met the given symbol.
func (v *View) Encountered(sym rune) bool {
	return v.Encounters.Has(sym)
}

// Tribe returns the tribe definition of a monster or companion entity.
func (v *View) Tribe(e *entity.Entity) *gamedata.TribeDef {
	if !e.IsTribe() {
		return nil
	}
	return v.Catalog.GetByID(e.Tribe)
}
