package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/samdwyer/arlq/internal/game"
	"github.com/samdwyer/arlq/internal/gamedata"
)

// seedRange bounds the seeds picked when none is given.
const seedRange = 100000

// layoutFlags may not be combined with --seed, which carries them itself.
var layoutFlags = []string{"F", "T", "t", "n", "clutter", "stage"}

// parseFlags turns the command line into a game configuration. now is the
// unix time used to pick a seed when none is given.
func parseFlags(args []string, catalog *gamedata.Catalog, now int64, out io.Writer) (game.Config, error) {
	fs := flag.NewFlagSet("arlq", flag.ContinueOnError)
	fs.SetOutput(out)

	largeField := fs.Bool("F", false, "large field (one more row of tiles)")
	largeTorch := fs.Bool("T", false, "large torch")
	smallTorch := fs.Bool("t", false, "small torch")
	narrow := fs.Bool("n", false, "narrower corridors")
	stage := fs.Int("stage", 0, "stage to play (0 asks)")
	seedString := fs.String("seed", "", "replay a seed string such as v1.0-Tn-1-4242")
	showEntities := fs.Bool("debug-show-entities", false, "show every entity on the field")
	clutter := fs.Bool("clutter", false, "add wall clutter at tile corners")

	if err := fs.Parse(args); err != nil {
		return game.Config{}, err
	}
	if fs.NArg() > 0 {
		return game.Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	var cfg game.Config
	if *seedString != "" {
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		for _, name := range layoutFlags {
			if set[name] {
				return game.Config{}, fmt.Errorf("--seed with -%s: %w", name, game.ErrConflictingFlags)
			}
		}
		var err error
		if cfg, err = game.ParseSeedString(*seedString, catalog); err != nil {
			return game.Config{}, err
		}
	} else {
		cfg = game.DefaultConfig()
		cfg.Stage = *stage
		cfg.LargeField = *largeField
		cfg.LargeTorch = *largeTorch
		cfg.SmallTorch = *smallTorch
		cfg.NarrowCorridors = *narrow
		cfg.CornerClutter = *clutter
		cfg.Seed = now % seedRange
	}
	cfg.DebugShowEntities = *showEntities

	if err := cfg.Validate(catalog); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}
