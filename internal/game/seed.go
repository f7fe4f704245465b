package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/arlq/internal/gamedata"
)

// Version is embedded in every seed string.
const Version = "1.0"

var (
	// ErrBadSeedString is returned for seed strings that cannot be parsed.
	ErrBadSeedString = errors.New("invalid seed string")
	// ErrConflictingFlags is returned when mutually exclusive options are combined.
	ErrConflictingFlags = errors.New("conflicting flags")
	// ErrUnknownStage is returned for a stage the catalog does not define.
	ErrUnknownStage = errors.New("unknown stage")
)

// SeedString encodes the options that shape a session as
// v<version>-<flags>-<stage>-<seed>.
func (c Config) SeedString() string {
	var flags strings.Builder
	if c.LargeField {
		flags.WriteByte('F')
	}
	if c.LargeTorch {
		flags.WriteByte('T')
	} else if c.SmallTorch {
		flags.WriteByte('t')
	}
	if c.NarrowCorridors {
		flags.WriteByte('n')
	}
	if c.CornerClutter {
		flags.WriteByte('c')
	}
	stage := c.Stage
	if stage == 0 {
		stage = 1
	}
	return fmt.Sprintf("v%s-%s-%d-%d", Version, flags.String(), stage, c.Seed)
}

// ParseSeedString decodes a seed string into a Config. The stage is checked
// against catalog when it is not nil.
func ParseSeedString(s string, catalog *gamedata.Catalog) (Config, error) {
	cfg := DefaultConfig()

	parts := strings.Split(s, "-")
	if len(parts) != 4 {
		return cfg, fmt.Errorf("%q: expected v<version>-<flags>-<stage>-<seed>: %w", s, ErrBadSeedString)
	}
	versionPart, flagPart, stagePart, seedPart := parts[0], parts[1], parts[2], parts[3]

	version, ok := strings.CutPrefix(versionPart, "v")
	if !ok {
		return cfg, fmt.Errorf("%q: must start with 'v': %w", s, ErrBadSeedString)
	}
	if version != Version {
		return cfg, fmt.Errorf("%q: version %s does not match %s: %w", s, version, Version, ErrBadSeedString)
	}

	for _, f := range flagPart {
		switch f {
		case 'F':
			cfg.LargeField = true
		case 'T':
			cfg.LargeTorch = true
		case 't':
			cfg.SmallTorch = true
		case 'n':
			cfg.NarrowCorridors = true
		case 'c':
			cfg.CornerClutter = true
		default:
			return cfg, fmt.Errorf("%q: unknown flag %q: %w", s, f, ErrBadSeedString)
		}
	}
	if cfg.LargeTorch && cfg.SmallTorch {
		return cfg, fmt.Errorf("%q: both large and small torch: %w", s, ErrConflictingFlags)
	}

	stage, err := strconv.Atoi(stagePart)
	if err != nil || stage < 1 {
		return cfg, fmt.Errorf("%q: stage %q is not a valid number: %w", s, stagePart, ErrBadSeedString)
	}
	cfg.Stage = stage

	seed, err := strconv.ParseInt(seedPart, 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("%q: seed %q is not a valid integer: %w", s, seedPart, ErrBadSeedString)
	}
	cfg.Seed = seed

	if err := cfg.Validate(catalog); err != nil {
		return cfg, err
	}
	return cfg, nil
}
