package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ThemeDef holds the UI colours as hex strings, loaded from theme.json.
type ThemeDef struct {
	Wall      string `json:"wall"`
	Floor     string `json:"floor"`
	Player    string `json:"player"`
	Beatable  string `json:"beatable"` // identified monster the player can defeat
	Threat    string `json:"threat"`   // identified monster stronger than the player
	Unknown   string `json:"unknown"`
	Treasure  string `json:"treasure"`
	Companion string `json:"companion"`
	Caltrop   string `json:"caltrop"`
	Text      string `json:"text"`
	Warning   string `json:"warning"` // low life points
	Message   string `json:"message"`
}

// Theme is a ThemeDef resolved to terminal colours.
type Theme struct {
	Wall      tcell.Color
	Floor     tcell.Color
	Player    tcell.Color
	Beatable  tcell.Color
	Threat    tcell.Color
	Unknown   tcell.Color
	Treasure  tcell.Color
	Companion tcell.Color
	Caltrop   tcell.Color
	Text      tcell.Color
	Warning   tcell.Color
	Message   tcell.Color
}

// Resolve parses every colour of the theme.
func (d ThemeDef) Resolve() (Theme, error) {
	var t Theme
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"wall", d.Wall, &t.Wall},
		{"floor", d.Floor, &t.Floor},
		{"player", d.Player, &t.Player},
		{"beatable", d.Beatable, &t.Beatable},
		{"threat", d.Threat, &t.Threat},
		{"unknown", d.Unknown, &t.Unknown},
		{"treasure", d.Treasure, &t.Treasure},
		{"companion", d.Companion, &t.Companion},
		{"caltrop", d.Caltrop, &t.Caltrop},
		{"text", d.Text, &t.Text},
		{"warning", d.Warning, &t.Warning},
		{"message", d.Message, &t.Message},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return t, nil
}

// LoadTheme loads and resolves the embedded theme.json.
func LoadTheme() (Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return Theme{}, err
	}
	return def.Resolve()
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(v)), nil
}
