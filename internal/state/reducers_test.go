package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/epochs/internal/model"
)

func baseState() *model.GameState {
	s := model.NewInitialState("game_1", "test")
	s.Tiles["tile_1"] = &model.Tile{
		ID:      "tile_1",
		Storage: map[string]float64{"wood": 100},
	}
	return s
}

func stateWithFarm(workers int) *model.GameState {
	s := baseState()
	s = Reduce(s, CreateBuilding("b1", model.BuildingFarm, "tile_1"))
	s = Reduce(s, SetProductionMethod("b1", "slash_burn"))
	s = Reduce(s, SetWorkers("b1", workers))
	return s
}

func TestReduce_UnknownActionSamePointer(t *testing.T) {
	s := baseState()
	assert.Same(t, s, Reduce(s, GameAction{Type: "NOT_A_THING"}))
}

func TestTickTime_DateArithmetic(t *testing.T) {
	s := baseState()

	next := Reduce(s, TickTime(40))
	require.NotSame(t, s, next)
	assert.Equal(t, model.GameDate{Year: 1, Month: 2, Day: 11}, next.Date)
	assert.Equal(t, 1, next.TickCount)
	// input untouched
	assert.Equal(t, model.GameDate{Year: 1, Month: 1, Day: 1}, s.Date)

	far := Reduce(s, TickTime(400))
	assert.Equal(t, 2, far.Date.Year)
}

func TestTickTime_YearBoundaryWrapsToZero(t *testing.T) {
	s := baseState()

	// 366 + 364 = 730 total days: remainder 0 lands on month 0, day 0
	next := Reduce(s, TickTime(364))
	assert.Equal(t, model.GameDate{Year: 2, Month: 0, Day: 0}, next.Date)
}

func TestTickTime_ProductionAddsOutputs(t *testing.T) {
	s := stateWithFarm(10)

	next := Reduce(s, TickTime(1))
	// slash_burn at full staffing, stone age: 800 grain per tick
	assert.InDelta(t, 800.0, next.Tiles["tile_1"].Storage["grain"], 1e-9)
	// inputs are not deducted by the tick pass
	assert.Equal(t, 100.0, next.Tiles["tile_1"].Storage["wood"])
	// source tile untouched
	_, had := s.Tiles["tile_1"].Storage["grain"]
	assert.False(t, had)
}

func TestTickTime_ProductionAccumulates(t *testing.T) {
	s := stateWithFarm(10)

	for i := 0; i < 5; i++ {
		s = Reduce(s, TickTime(1))
	}
	assert.Greater(t, s.Tiles["tile_1"].Storage["grain"], 15.0)
	assert.Equal(t, 5, s.TickCount)
}

func TestTickTime_UnstaffedBuildingProducesNothing(t *testing.T) {
	s := stateWithFarm(0)

	next := Reduce(s, TickTime(1))
	_, ok := next.Tiles["tile_1"].Storage["grain"]
	assert.False(t, ok)
}

func TestTickTime_NoMethodProducesNothing(t *testing.T) {
	s := baseState()
	s = Reduce(s, CreateBuilding("b1", model.BuildingRanch, "tile_1")) // no methods
	s = Reduce(s, SetWorkers("b1", 5))

	next := Reduce(s, TickTime(1))
	assert.Len(t, next.Tiles["tile_1"].Storage, 1) // just the seeded wood
}

func TestPauseResume(t *testing.T) {
	s := baseState()

	paused := Reduce(s, SetPause())
	require.NotSame(t, s, paused)
	assert.True(t, paused.IsPaused)

	// already paused: no-op
	assert.Same(t, paused, Reduce(paused, SetPause()))

	resumed := Reduce(paused, SetResume())
	assert.False(t, resumed.IsPaused)
	assert.Same(t, s, Reduce(s, SetResume()))
}

func TestSetTimeMultiplier(t *testing.T) {
	s := baseState()

	fast := Reduce(s, SetTimeMultiplier(4))
	assert.Equal(t, 4.0, fast.TimeMultiplier)
	assert.Same(t, fast, Reduce(fast, SetTimeMultiplier(4)))
}

func TestSetTimeMultiplier_ZeroDefaultsToOne(t *testing.T) {
	s := baseState()

	fast := Reduce(s, SetTimeMultiplier(4))
	reset := Reduce(fast, SetTimeMultiplier(0))
	assert.Equal(t, 1.0, reset.TimeMultiplier)

	// already at 1: zero payload is a no-op
	assert.Same(t, s, Reduce(s, SetTimeMultiplier(0)))
}

func TestCreateBuilding(t *testing.T) {
	s := baseState()

	next := Reduce(s, CreateBuilding("b1", model.BuildingFarm, "tile_1"))
	require.NotSame(t, s, next)
	b := next.Buildings["b1"]
	require.NotNil(t, b)
	assert.Equal(t, 1, b.Level)
	assert.Equal(t, 0, b.CurrentWorkers)
	assert.Equal(t, "tile_1", b.TileID)
	assert.Equal(t, []string{"slash_burn", "plowing", "mechanized", "modern"}, b.ProductionMethods)
	assert.Empty(t, s.Buildings)

	// unknown type: no-op
	assert.Same(t, next, Reduce(next, CreateBuilding("b2", "castle", "tile_1")))
}

func TestUpgradeBuilding(t *testing.T) {
	s := stateWithFarm(0)

	plusOne := Reduce(s, UpgradeBuilding("b1", 0))
	assert.Equal(t, 2, plusOne.Buildings["b1"].Level)
	assert.Equal(t, 1, s.Buildings["b1"].Level)

	explicit := Reduce(s, UpgradeBuilding("b1", 5))
	assert.Equal(t, 5, explicit.Buildings["b1"].Level)

	assert.Same(t, s, Reduce(s, UpgradeBuilding("b404", 0)))
}

func TestRemoveBuilding(t *testing.T) {
	s := stateWithFarm(0)

	next := Reduce(s, RemoveBuilding("b1"))
	assert.Empty(t, next.Buildings)
	assert.NotNil(t, s.Buildings["b1"])

	assert.Same(t, next, Reduce(next, RemoveBuilding("b1")))
}

func TestSetProductionMethod(t *testing.T) {
	s := baseState()
	s = Reduce(s, CreateBuilding("b1", model.BuildingFarm, "tile_1"))

	next := Reduce(s, SetProductionMethod("b1", "plowing"))
	assert.Equal(t, []string{"plowing"}, next.Buildings["b1"].ProductionMethods)
	// original keeps its full list
	assert.Len(t, s.Buildings["b1"].ProductionMethods, 4)

	// method not on the building: no-op
	assert.Same(t, next, Reduce(next, SetProductionMethod("b1", "smart")))
	assert.Same(t, s, Reduce(s, SetProductionMethod("b404", "plowing")))
}

func TestSetWorkers_Clamped(t *testing.T) {
	s := stateWithFarm(0)

	over := Reduce(s, SetWorkers("b1", 99))
	assert.Equal(t, 20, over.Buildings["b1"].CurrentWorkers)

	under := Reduce(s, SetWorkers("b1", -5))
	assert.Same(t, s, under) // clamps to 0, already 0

	assert.Same(t, s, Reduce(s, SetWorkers("b404", 5)))
}

func TestWorkerAssignment(t *testing.T) {
	s := baseState()
	s.Populations["tile_1"] = &model.Population{
		ID:     "pop_1",
		TileID: "tile_1",
		Groups: []model.PopulationGroup{
			{ID: "g1", Size: 10, AgeGroup: model.AgeAdult, Employment: model.Unemployed},
		},
	}

	assigned := Reduce(s, AssignWorker("tile_1", "g1", "b1"))
	require.NotSame(t, s, assigned)
	assert.Equal(t, "b1", assigned.Populations["tile_1"].Groups[0].Workplace)
	assert.Equal(t, model.Employed, assigned.Populations["tile_1"].Groups[0].Employment)
	assert.Empty(t, s.Populations["tile_1"].Groups[0].Workplace)

	// removing against the wrong building: no-op
	assert.Same(t, assigned, Reduce(assigned, RemoveWorker("tile_1", "g1", "b2")))

	removed := Reduce(assigned, RemoveWorker("tile_1", "g1", "b1"))
	assert.Empty(t, removed.Populations["tile_1"].Groups[0].Workplace)
	assert.Equal(t, model.Unemployed, removed.Populations["tile_1"].Groups[0].Employment)

	assert.Same(t, s, Reduce(s, AssignWorker("tile_9", "g1", "b1")))
	assert.Same(t, s, Reduce(s, AssignWorker("tile_1", "g404", "b1")))
}

func TestUpdatePopulation_ShallowMerge(t *testing.T) {
	s := baseState()
	s.Populations["tile_1"] = &model.Population{
		ID:              "pop_1",
		TileID:          "tile_1",
		TotalPopulation: 100,
		BirthRate:       0.03,
		DeathRate:       0.02,
	}

	birth := 0.05
	next := Reduce(s, UpdatePopulation("tile_1", PopulationFields{BirthRate: &birth}))
	assert.Equal(t, 0.05, next.Populations["tile_1"].BirthRate)
	// untouched fields survive
	assert.Equal(t, 100, next.Populations["tile_1"].TotalPopulation)
	assert.Equal(t, 0.02, next.Populations["tile_1"].DeathRate)
	assert.Equal(t, 0.03, s.Populations["tile_1"].BirthRate)

	assert.Same(t, s, Reduce(s, UpdatePopulation("tile_9", PopulationFields{BirthRate: &birth})))
}

func TestAddPopulation(t *testing.T) {
	s := baseState()
	pop := &model.Population{ID: "pop_1", TileID: "tile_1", TotalPopulation: 500}

	next := Reduce(s, AddPopulation("tile_1", pop))
	assert.Same(t, pop, next.Populations["tile_1"])
	assert.Empty(t, s.Populations)
}

func marketState() *model.GameState {
	s := baseState()
	s.Markets["m1"] = &model.Market{
		ID:     "m1",
		Supply: map[string]float64{"grain": 100},
		Demand: map[string]float64{"grain": 50},
		Prices: map[string]*model.Price{
			"grain": {BasePrice: 10, CurrentPrice: 12, PreviousPrice: 11},
		},
	}
	return s
}

func TestMarketSupplyDemand(t *testing.T) {
	s := marketState()

	next := Reduce(s, AddSupply("m1", "grain", 25))
	assert.Equal(t, 125.0, next.Markets["m1"].Supply["grain"])
	assert.Equal(t, 100.0, s.Markets["m1"].Supply["grain"])

	next = Reduce(next, AddDemand("m1", "grain", 10))
	assert.Equal(t, 60.0, next.Markets["m1"].Demand["grain"])

	assert.Same(t, s, Reduce(s, AddSupply("m404", "grain", 1)))
}

func TestExecuteTransaction(t *testing.T) {
	s := marketState()

	next := Reduce(s, ExecuteTransaction("m1", "grain", 80, 14))
	m := next.Markets["m1"]
	assert.Equal(t, 20.0, m.Supply["grain"])
	assert.Equal(t, 0.0, m.Demand["grain"]) // floored
	assert.Equal(t, 12.0, m.Prices["grain"].PreviousPrice)
	assert.Equal(t, 14.0, m.Prices["grain"].CurrentPrice)

	// original untouched
	assert.Equal(t, 12.0, s.Markets["m1"].Prices["grain"].CurrentPrice)
}

func TestExecuteTransaction_NoPriceEntry(t *testing.T) {
	s := marketState()

	next := Reduce(s, ExecuteTransaction("m1", "wood", 10, 99))
	assert.Equal(t, 0.0, next.Markets["m1"].Supply["wood"])
	_, ok := next.Markets["m1"].Prices["wood"]
	assert.False(t, ok)
}

func TestTechQueueActions(t *testing.T) {
	s := baseState()

	queued := Reduce(s, AddTechToQueue("stone_tool"))
	assert.Equal(t, []string{"stone_tool"}, queued.ResearchQueue.Queue)

	// duplicates are no-ops
	assert.Same(t, queued, Reduce(queued, AddTechToQueue("stone_tool")))

	removed := Reduce(queued, RemoveTechFromQueue("stone_tool"))
	assert.Empty(t, removed.ResearchQueue.Queue)
	assert.Same(t, removed, Reduce(removed, RemoveTechFromQueue("stone_tool")))
}

func TestUnlockTech(t *testing.T) {
	s := baseState()
	s = Reduce(s, AddTechToQueue("stone_tool"))
	s.ResearchQueue.Current = &model.CurrentResearch{Tech: "domestication", Progress: 40}

	unlocked := Reduce(s, UnlockTech("stone_tool"))
	assert.Contains(t, unlocked.Technologies, "stone_tool")
	assert.Empty(t, unlocked.ResearchQueue.Queue)

	// unlocking the active research clears the slot
	cleared := Reduce(unlocked, UnlockTech("domestication"))
	assert.Nil(t, cleared.ResearchQueue.Current)
	assert.Contains(t, cleared.Technologies, "domestication")

	// already owned, not queued, not current: no-op
	assert.Same(t, cleared, Reduce(cleared, UnlockTech("domestication")))
}

func TestNotifications(t *testing.T) {
	s := baseState()

	added := Reduce(s, AddNotification(model.Notification{ID: "n1", Kind: model.NoteInfo}))
	require.Len(t, added.Notifications, 1)
	assert.Empty(t, s.Notifications)

	removed := Reduce(added, RemoveNotification("n1"))
	assert.Empty(t, removed.Notifications)
	assert.Same(t, removed, Reduce(removed, RemoveNotification("n1")))
}

func TestResources(t *testing.T) {
	s := baseState()

	rich := Reduce(s, SetResourceMoney(5000))
	assert.Equal(t, 5000.0, rich.Resources.Money)
	assert.Same(t, rich, Reduce(rich, SetResourceMoney(5000)))

	goods := Reduce(s, SetGoodsQuantity("wood", 42))
	assert.Equal(t, 42.0, goods.Resources.Goods["wood"])
	assert.Empty(t, s.Resources.Goods)
}

func TestTileStorageActions(t *testing.T) {
	s := baseState()

	added := Reduce(s, AddTileStorage("tile_1", "grain", 30))
	assert.Equal(t, 30.0, added.Tiles["tile_1"].Storage["grain"])
	assert.Equal(t, 100.0, added.Tiles["tile_1"].Storage["wood"])
	_, ok := s.Tiles["tile_1"].Storage["grain"]
	assert.False(t, ok)

	// removal floors at zero
	drained := Reduce(added, RemoveTileStorage("tile_1", "grain", 500))
	assert.Equal(t, 0.0, drained.Tiles["tile_1"].Storage["grain"])

	assert.Same(t, s, Reduce(s, AddTileStorage("tile_9", "grain", 1)))
}

func TestGlobalStorageActions(t *testing.T) {
	s := baseState()

	added := Reduce(s, AddGlobalStorage("iron", 20))
	assert.Equal(t, 20.0, added.GlobalStorage["iron"])
	assert.Empty(t, s.GlobalStorage)

	drained := Reduce(added, RemoveGlobalStorage("iron", 100))
	assert.Equal(t, 0.0, drained.GlobalStorage["iron"])
}

func TestReduceBatch_FoldsInOrder(t *testing.T) {
	s := baseState()

	next := ReduceBatch(s, []GameAction{
		CreateBuilding("b1", model.BuildingFarm, "tile_1"),
		SetProductionMethod("b1", "slash_burn"),
		SetWorkers("b1", 10),
		TickTime(1),
	})

	assert.Equal(t, 10, next.Buildings["b1"].CurrentWorkers)
	assert.Positive(t, next.Tiles["tile_1"].Storage["grain"])
	assert.Equal(t, 1, next.TickCount)
}
