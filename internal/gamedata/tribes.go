package gamedata

// Item is something the player holds. The player holds at most one.
type Item string

const (
	ItemNone        Item = ""
	ItemSwordX2     Item = "Swordx2"
	ItemSwordX3     Item = "Swordx3"
	ItemPoisoned    Item = "Poisoned"
	ItemTreasure    Item = "Treasure"
	ItemCursedSword Item = "Cursed Sword"
)

// IsSword returns true for items that break walls.
func (i Item) IsSword() bool {
	return i == ItemSwordX2 || i == ItemSwordX3 || i == ItemCursedSword
}

// Effect is applied once when a tribe member is defeated.
type Effect string

const (
	EffectNone            Effect = ""
	EffectSpecialExp      Effect = "Special Exp."
	EffectFeedMuch        Effect = "Feed Much"
	EffectTreasurePointer Effect = "Treasure Ptr."
	EffectEnergyDrain     Effect = "Energy Drain"
	EffectCaltropSpread   Effect = "Caltrop"
	EffectRockSpread      Effect = "Rock Spread"
)

// Companion is a helper that follows the player.
type Companion string

const (
	CompanionNone    Companion = ""
	CompanionNomicon Companion = "Nomicon" // lore: reveals adjacent monster types
	CompanionOcular  Companion = "Ocular"  // far sight: larger torch
	CompanionPegasus Companion = "Pegasus" // mount: leaps over walls
)

// Rune returns the glyph drawn next to the player for this companion.
func (c Companion) Rune() rune {
	switch c {
	case CompanionNomicon:
		return 'n'
	case CompanionOcular:
		return 'o'
	case CompanionPegasus:
		return 'p'
	default:
		return ' '
	}
}

// TribeID indexes a tribe in the catalog.
type TribeID int

// TribeDef defines a monster or companion tribe loaded from JSON.
type TribeDef struct {
	Symbol    string    `json:"symbol"`              // Single character for rendering (e.g., "a")
	Name      string    `json:"name"`                // Display name (e.g., "Amoeba")
	Level     int       `json:"level"`               // 0 means never a combat threat
	Feed      int       `json:"feed"`                // Life point delta when defeated
	Item      Item      `json:"item,omitempty"`      // Item handed to the player when defeated
	Effect    Effect    `json:"effect,omitempty"`    // Mutually exclusive with Companion
	Companion Companion `json:"companion,omitempty"` // Mutually exclusive with Effect
	Message   string    `json:"message,omitempty"`   // Flashed when defeated
}

// SymbolRune returns the symbol as a rune for rendering.
func (t *TribeDef) SymbolRune() rune {
	if len(t.Symbol) == 0 {
		return '?'
	}
	return rune(t.Symbol[0])
}

// TribesFile represents the structure of tribes.json.
type TribesFile struct {
	Tribes []TribeDef `json:"tribes"`
	Gauge  []string   `json:"gauge"` // leveled tribes shown in the beatable hint, ascending
}

// LoadTribes loads tribe definitions from the embedded tribes.json file.
func LoadTribes() (TribesFile, error) {
	return Load[TribesFile]("tribes.json")
}
