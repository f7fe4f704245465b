package gamedata

import (
	"errors"
	"fmt"
	"slices"
)

// Catalog holds the loaded tribes and stages and provides lookup utilities.
type Catalog struct {
	tribes   []TribeDef
	bySymbol map[rune]TribeID
	gauge    []TribeID
	stages   []StageDef
}

// NewCatalog validates tribe and stage definitions and links them together.
func NewCatalog(tribes []TribeDef, gauge []string, stages []StageDef) (*Catalog, error) {
	c := &Catalog{
		tribes:   tribes,
		bySymbol: make(map[rune]TribeID, len(tribes)),
		stages:   stages,
	}

	for i := range tribes {
		t := &tribes[i]
		if len(t.Symbol) != 1 {
			return nil, fmt.Errorf("tribe %q: symbol must be a single character", t.Name)
		}
		if t.Effect != EffectNone && t.Companion != CompanionNone {
			return nil, fmt.Errorf("tribe %s: has both effect and companion", t.Symbol)
		}
		if _, dup := c.bySymbol[t.SymbolRune()]; dup {
			return nil, fmt.Errorf("tribe %s: duplicate symbol", t.Symbol)
		}
		c.bySymbol[t.SymbolRune()] = TribeID(i)
	}

	for _, sym := range gauge {
		id, ok := c.lookupString(sym)
		if !ok {
			return nil, fmt.Errorf("gauge: unknown tribe %q", sym)
		}
		c.gauge = append(c.gauge, id)
	}
	slices.SortStableFunc(c.gauge, func(a, b TribeID) int {
		return tribes[a].Level - tribes[b].Level
	})

	for si := range stages {
		s := &stages[si]
		if s.RespawnInterval < 0 {
			return nil, fmt.Errorf("stage %d: negative respawn interval", s.ID)
		}
		for ei := range s.Spawns {
			e := &s.Spawns[ei]
			id, ok := c.lookupString(e.Tribe)
			if !ok {
				return nil, fmt.Errorf("stage %d: unknown tribe %q", s.ID, e.Tribe)
			}
			e.ID = id
		}
		for _, tr := range s.Treasures {
			if _, ok := c.lookupString(tr.Unlock); !ok {
				return nil, fmt.Errorf("stage %d: treasure unlocked by unknown tribe %q", s.ID, tr.Unlock)
			}
		}
	}

	return c, nil
}

// LoadCatalog loads and creates a catalog from the embedded tribes.json and stages.json.
func LoadCatalog() (*Catalog, error) {
	tribes, err := LoadTribes()
	if err != nil {
		return nil, err
	}
	if len(tribes.Tribes) == 0 {
		return nil, errors.New("no tribes loaded from tribes.json")
	}
	stages, err := LoadStages()
	if err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		return nil, errors.New("no stages loaded from stages.json")
	}
	return NewCatalog(tribes.Tribes, tribes.Gauge, stages)
}


func (c *Catalog) lookupString(sym string) (TribeID, bool) {
	if len(sym) != 1 {
		return 0, false
	}
	return c.Lookup(rune(sym[0]))
}

// Lookup returns the tribe with the given symbol.
func (c *Catalog) Lookup(sym rune) (TribeID, bool) {
	id, ok := c.bySymbol[sym]
	return id, ok
}

// GetByID returns the tribe definition with the given ID, or nil if not found.
func (c *Catalog) GetByID(id TribeID) *TribeDef {
	if id < 0 || int(id) >= len(c.tribes) {
		return nil
	}
	return &c.tribes[id]
}

// Stage returns the stage with the given number.
func (c *Catalog) Stage(id int) (*StageDef, bool) {
	for i := range c.stages {
		if c.stages[i].ID == id {
			return &c.stages[i], true
		}
	}
	return nil, false
}

// StageIDs returns the numbers of all stages in file order.
func (c *Catalog) StageIDs() []int {
	ids := make([]int, len(c.stages))
	for i, s := range c.stages {
		ids[i] = s.ID
	}
	return ids
}

// MaxBeatable returns the highest-level gauge tribe of the stage that an
// attack value defeats, or nil if none. A nil stage considers the whole gauge.
func (c *Catalog) MaxBeatable(stage *StageDef, attack int) *TribeDef {
	var best *TribeDef
	for _, id := range c.gauge {
		t := &c.tribes[id]
		if t.Level > attack {
			break
		}
		if stage != nil && !stage.HasTribe(id) {
			continue
		}
		best = t
	}
	return best
}
