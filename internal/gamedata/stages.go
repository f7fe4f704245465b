package gamedata

// TreasureChar is the glyph of the stage treasure.
const TreasureChar = 'T'

// SpawnEntry describes how many members of a tribe a stage places.
// Count is an exact number; Chance, when set, spawns one member with that probability.
type SpawnEntry struct {
	Tribe  string  `json:"tribe"`
	Count  int     `json:"count,omitempty"`
	Chance float64 `json:"chance,omitempty"`

	ID TribeID `json:"-"`
}

// TreasureDef places a treasure that unlocks once a tribe has been encountered.
type TreasureDef struct {
	Symbol string `json:"symbol"`
	Unlock string `json:"unlock"`
}

// SymbolRune returns the treasure glyph.
func (t *TreasureDef) SymbolRune() rune {
	if len(t.Symbol) == 0 {
		return TreasureChar
	}
	return rune(t.Symbol[0])
}

// UnlockRune returns the symbol of the tribe that unlocks the treasure.
func (t *TreasureDef) UnlockRune() rune {
	if len(t.Unlock) == 0 {
		return 0
	}
	return rune(t.Unlock[0])
}

// StageDef defines a playable stage loaded from JSON.
type StageDef struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	RespawnInterval int           `json:"respawnInterval"` // turns between respawns, 0 disables
	Spawns          []SpawnEntry  `json:"spawns"`
	Treasures       []TreasureDef `json:"treasures"`
}

// HasTribe returns true if the stage spawns the given tribe.
func (s *StageDef) HasTribe(id TribeID) bool {
	for _, e := range s.Spawns {
		if e.ID == id {
			return true
		}
	}
	return false
}

// StagesFile represents the structure of stages.json.
type StagesFile struct {
	Stages []StageDef `json:"stages"`
}

// LoadStages loads stage definitions from the embedded stages.json file.
func LoadStages() ([]StageDef, error) {
	file, err := Load[StagesFile]("stages.json")
	if err != nil {
		return nil, err
	}
	return file.Stages, nil
}
