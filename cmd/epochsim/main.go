// Command epochsim runs the Epochs civilization simulation headless:
// it generates a region, seeds a starting settlement and advances the
// economy tick by tick, autosaving along the way.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/epochs/internal/config"
	"github.com/talgya/epochs/internal/econ"
	"github.com/talgya/epochs/internal/entropy"
	"github.com/talgya/epochs/internal/era"
	"github.com/talgya/epochs/internal/model"
	"github.com/talgya/epochs/internal/persistence"
	"github.com/talgya/epochs/internal/population"
	"github.com/talgya/epochs/internal/production"
	"github.com/talgya/epochs/internal/state"
	"github.com/talgya/epochs/internal/terrain"
)

func main() {
	configPath := flag.String("config", "epochs.yaml", "path to YAML config")
	ticks := flag.Int("ticks", 365, "number of ticks (days) to simulate")
	seed := flag.Int64("seed", 0, "world seed (overrides config when non-zero)")
	loadSlot := flag.String("load", "", "save slot to resume from")
	name := flag.String("name", "New Civilization", "game name for fresh worlds")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	slog.Info("Epochs — civilization simulation",
		"seed", cfg.World.Seed,
		"region", fmt.Sprintf("%dx%d", cfg.World.Width, cfg.World.Height),
		"ticks", *ticks,
	)

	if dir := filepath.Dir(cfg.Save.DBPath); dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	store, err := persistence.OpenStore(cfg.Save.DBPath, logger)
	if err != nil {
		slog.Error("failed to open save store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	provider := state.NewProvider(logger)

	if *loadSlot != "" {
		snapshot, err := store.Load(*loadSlot)
		if err != nil {
			slog.Error("failed to load save", "slot", *loadSlot, "error", err)
			os.Exit(1)
		}
		provider.RestorePersistedState(snapshot.ToState())
		if err := provider.Dispatch(state.AddNotification(model.Notification{
			ID:    uuid.NewString(),
			Kind:  model.NoteSuccess,
			Title: "Game loaded",
			Message: fmt.Sprintf("Resumed %q at tick %s",
				snapshot.Name, humanize.Comma(int64(snapshot.TickCount))),
		})); err != nil {
			slog.Warn("load notification failed", "error", err)
		}
		slog.Info("game restored", "slot", *loadSlot, "tick", snapshot.TickCount, "era", snapshot.Era)
	} else {
		provider.Initialize(bootstrapWorld(cfg, *name))
	}

	eraMgr := newEraManager(provider, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	stopped := false
	for tick := 1; tick <= *ticks && !stopped; tick++ {
		select {
		case sig := <-sigCh:
			slog.Info("received signal, stopping", "signal", sig)
			stopped = true
			continue
		default:
		}

		if err := provider.Dispatch(state.TickTime(1)); err != nil {
			slog.Error("tick failed", "error", err)
			break
		}

		// Era criteria only shift on the scale of months.
		if tick%30 == 0 {
			checkEra(provider, eraMgr)
		}

		if tick%cfg.Save.AutoSaveInterval == 0 {
			autosave(provider, store, cfg.Save.AutoSaveSlot)
		}
	}

	report(provider, eraMgr)

	autosave(provider, store, cfg.Save.AutoSaveSlot)
	if err := store.SetMeta("last_slot", cfg.Save.AutoSaveSlot); err != nil {
		slog.Warn("failed to record last slot", "error", err)
	}
	slog.Info("simulation finished")
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// bootstrapWorld generates the region and seeds one settled tile with
// population, a farm, a forestry camp and a local market.
func bootstrapWorld(cfg *config.Config, name string) *model.GameState {
	rng := entropy.NewSource(cfg.World.Seed)
	tileMgr := terrain.NewTileManager(rng)

	genCfg := terrain.GenConfig{
		Width:    cfg.World.Width,
		Height:   cfg.World.Height,
		Seed:     cfg.World.Seed,
		SeaLevel: cfg.World.SeaLevel,
	}
	tiles := terrain.GenerateRegion(genCfg, tileMgr)
	slog.Info("region generated", "tiles", len(tiles))

	s := model.NewInitialState(uuid.NewString(), name)
	s.Settings = cfg.Game
	for _, tile := range tiles {
		s.Tiles[tile.ID] = tile
	}

	home := pickHomeTile(tiles)
	home.IsExplored = true
	home.IsControlled = true
	slog.Info("settlement founded", "tile", home.ID, "name", home.Name,
		"terrain", terrain.DominantTerrain(home.TerrainComposition))

	popMgr := population.NewManager()
	pop := popMgr.Distribute(home.ID, 120)
	s.Populations[home.ID] = pop

	prodMgr := production.NewManager()
	for _, kind := range []string{"farm", "forestry"} {
		b, err := prodMgr.Create(kind, home.ID)
		if err != nil {
			slog.Error("failed to seed building", "type", kind, "error", err)
			continue
		}
		b.CurrentWorkers = b.BaseWorkers
		s.Buildings[b.ID] = b
		home.Buildings = append(home.Buildings, b.ID)
	}

	market := econ.NewMarket("market_1", "Settlement Market", []string{home.ID})
	mm := econ.NewMarketManager(market)
	mm.RegisterGoods("grain")
	mm.RegisterGoods("wood")
	mm.AddSupply("grain", 50)
	mm.AddSupply("wood", 20)
	s.Markets[market.ID] = market

	s.Resources.Money = 1000
	s.Technologies["fire"] = struct{}{}
	s.Technologies["stone_tool"] = struct{}{}

	return s
}

// pickHomeTile prefers the first controlled-friendly tile: buildable and
// not dominated by water.
func pickHomeTile(tiles []*model.Tile) *model.Tile {
	for _, tile := range tiles {
		if terrain.DominantTerrain(tile.TerrainComposition) == model.TerrainWater {
			continue
		}
		if tile.BuildableArea >= 50 {
			return tile
		}
	}
	return tiles[0]
}

func newEraManager(provider *state.Provider, logger *slog.Logger) *era.Manager {
	s, err := provider.State()
	start := model.EraStoneAge
	if err == nil {
		start = s.Era
	}

	mgr := era.NewManager(start, logger)
	mgr.OnChange(func(from, to model.Era) {
		_ = provider.Dispatch(state.AddNotification(model.Notification{
			ID:      uuid.NewString(),
			Kind:    model.NoteSuccess,
			Title:   "New era",
			Message: fmt.Sprintf("The civilization advanced from %s to %s", from, to),
		}))
	})
	return mgr
}

func checkEra(provider *state.Provider, eraMgr *era.Manager) {
	s, err := provider.State()
	if err != nil {
		return
	}

	buildings := make(map[model.BuildingType]int)
	for _, b := range s.Buildings {
		buildings[b.Type]++
	}
	snapshot := era.Snapshot{
		Population:   state.TotalPopulation(s),
		Technologies: s.Technologies,
		Buildings:    buildings,
	}

	if next, ok := eraMgr.CheckAdvancement(snapshot); ok {
		if err := eraMgr.AdvanceTo(next); err != nil {
			slog.Warn("era advancement failed", "target", next, "error", err)
		}
	}
}

func autosave(provider *state.Provider, store *persistence.Store, slot string) {
	s, err := provider.PersistedState()
	if err != nil {
		slog.Error("autosave skipped", "error", err)
		return
	}
	if err := store.Save(slot, persistence.FromState(s)); err != nil {
		slog.Error("autosave failed", "error", err)
	}
}

func report(provider *state.Provider, eraMgr *era.Manager) {
	s, err := provider.State()
	if err != nil {
		return
	}

	progress := state.GameProgress(s)
	stored := 0.0
	for _, amount := range s.GlobalStorage {
		stored += amount
	}

	fmt.Printf("\n── Year %d, Month %d, Day %d (%s) ──\n",
		s.Date.Year, s.Date.Month, s.Date.Day, eraMgr.Current())
	fmt.Printf("Ticks simulated:  %s\n", humanize.Comma(int64(s.TickCount)))
	fmt.Printf("Days elapsed:     %s\n", humanize.Comma(int64(progress.TotalDays)))
	fmt.Printf("Population:       %s\n", humanize.Comma(int64(state.TotalPopulation(s))))
	fmt.Printf("Buildings:        %d\n", state.TotalBuildings(s))
	fmt.Printf("Treasury:         %s\n", humanize.Commaf(state.TotalMoney(s)))
	fmt.Printf("Goods stockpiled: %s\n", humanize.CommafWithDigits(stored, 1))
	fmt.Printf("Technologies:     %d\n", len(s.Technologies))
}
