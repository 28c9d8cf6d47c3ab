// Package main provides the arena binary: a command-line battle simulator
// that pits two roster classes against each other and prints the transcript.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/game/battle"
	"github.com/cory-johannsen/arena/internal/game/rng"
	"github.com/cory-johannsen/arena/internal/game/roster"
	"github.com/cory-johannsen/arena/internal/observability"
	"github.com/cory-johannsen/arena/internal/report"
	"github.com/cory-johannsen/arena/internal/scripting"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	rosterDir := flag.String("roster", "content/roster", "path to roster YAML templates directory")
	left := flag.String("left", "Ranger", "class name of the first combatant")
	right := flag.String("right", "Skeleton", "class name of the second combatant")
	maxRounds := flag.Int("rounds", 0, "round cap override; 0 uses battle.max_rounds from config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	src := newSource(cfg.Battle.Seed)

	templates, err := roster.LoadTemplates(*rosterDir)
	if err != nil {
		logger.Fatal("loading roster templates", zap.Error(err))
	}
	logger.Info("roster loaded",
		zap.Int("classes", len(templates)),
		zap.String("dir", *rosterDir),
	)

	a, modeA, closeA, err := buildCombatant(templates, *left, src, logger)
	if err != nil {
		logger.Fatal("building left combatant", zap.String("class", *left), zap.Error(err))
	}
	defer closeA()
	b, modeB, closeB, err := buildCombatant(templates, *right, src, logger)
	if err != nil {
		logger.Fatal("building right combatant", zap.String("class", *right), zap.Error(err))
	}
	defer closeB()

	bt, err := battle.New(a, b, modeA, modeB)
	if err != nil {
		logger.Fatal("creating battle", zap.Error(err))
	}

	roundCap := cfg.Battle.MaxRounds
	if *maxRounds > 0 {
		roundCap = *maxRounds
	}

	logger.Info("battle starting",
		zap.String("battle_id", bt.ID().String()),
		zap.String("left", a.Class),
		zap.String("right", b.Class),
		zap.Int("round_cap", roundCap),
	)

	// The engine itself runs unbounded; the cap here is the host-side guard
	// against stalemates where neither side can land damage.
	for i := 0; i < roundCap && bt.IsOngoing(); i++ {
		rec, err := bt.RunRound()
		if err != nil {
			logger.Fatal("running round", zap.Error(err))
		}
		logger.Debug("round executed",
			zap.Int("round", rec.Number),
			zap.String("left_strategy", rec.StrategyA),
			zap.String("right_strategy", rec.StrategyB),
			zap.Float64("damage_to_left", rec.DamageToA),
			zap.Float64("damage_to_right", rec.DamageToB),
			zap.Float64("left_health", rec.SnapshotA.Health),
			zap.Float64("right_health", rec.SnapshotB.Health),
		)
	}

	history := bt.History()
	fmt.Fprint(os.Stdout, report.RenderHistory(history))
	fmt.Fprint(os.Stdout, report.RenderOutcome(bt))

	logger.Info("battle finished",
		zap.String("battle_id", bt.ID().String()),
		zap.String("state", bt.State().String()),
		zap.Int("rounds", len(history)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// newSource selects the randomness source: seed 0 uses crypto/rand, any other
// value selects a deterministic seeded stream for replayable battles.
func newSource(seed int64) rng.Source {
	if seed == 0 {
		return rng.NewCryptoSource()
	}
	return rng.NewSeededSource(seed)
}

// buildCombatant instantiates the named class and its combat mode. The
// returned close function releases script-backed modes and is a no-op
// otherwise.
func buildCombatant(templates map[string]*roster.Template, class string, src rng.Source, logger *zap.Logger) (*battle.Combatant, battle.Mode, func(), error) {
	tmpl, ok := templates[class]
	if !ok {
		return nil, nil, nil, fmt.Errorf("class %q not found in roster", class)
	}

	c, err := tmpl.NewCombatant()
	if err != nil {
		return nil, nil, nil, err
	}

	if tmpl.Mode == roster.ModeScript {
		mode, err := scripting.NewMode(tmpl.Script, 0, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return c, mode, mode.Close, nil
	}

	mode, err := battle.NewMode(tmpl.Mode, c, src)
	if err != nil {
		return nil, nil, nil, err
	}
	return c, mode, func() {}, nil
}
