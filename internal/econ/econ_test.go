package econ

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/epochs/internal/model"
)

func TestPriceCalculator_NoSupplyScarcityPremium(t *testing.T) {
	c := NewPriceCalculator()

	// supplyImpact 1.0, demandImpact log-scaled, stockpile absent
	p := c.Price(10, 0, 99, 0)
	expected := 10 * (1 + 1.0 + 0.25*math.Log10(100))
	assert.InDelta(t, expected, p, 1e-9)
}

func TestPriceCalculator_NoDemandDiscount(t *testing.T) {
	c := NewPriceCalculator()

	p := c.Price(10, 99, 0, 0)
	expected := 10 * (1 - 0.25*math.Log10(100) - 1.0)
	expected = math.Max(expected, 1.0) // floor at 0.1*base
	assert.InDelta(t, expected, p, 1e-9)
}

func TestPriceCalculator_ClampBounds(t *testing.T) {
	c := NewPriceCalculator()

	assert.InDelta(t, 1.0, c.Price(10, 1e12, 0, 1e12), 1e-9)
	assert.LessOrEqual(t, c.Price(10, 0, 1e12, 0), 100.0)
}

func TestPriceCalculator_StockpileDampens(t *testing.T) {
	c := NewPriceCalculator()

	without := c.Price(10, 50, 50, 0)
	with := c.Price(10, 50, 50, 500)
	assert.Less(t, with, without)
}

func TestPriceAdjustment(t *testing.T) {
	c := NewPriceCalculator()

	// demand/supply ratio 2 caps expectedRatio; current at base → gap 1
	assert.InDelta(t, (2.0-1.0)*0.2, c.PriceAdjustment(10, 10, 10, 50), 1e-9)
	// no supply → expect 10x
	assert.InDelta(t, (10.0-1.0)*0.2, c.PriceAdjustment(10, 10, 0, 50), 1e-9)
	// no demand → expect 0.1x
	assert.InDelta(t, (0.1-1.0)*0.2, c.PriceAdjustment(10, 10, 50, 0), 1e-9)
	// ratio floors at 0.5
	assert.InDelta(t, (0.5-1.0)*0.2, c.PriceAdjustment(10, 10, 100, 1), 1e-9)
}

func TestInventoryMultiplier_CurveBoundaries(t *testing.T) {
	assert.InDelta(t, 5.0, InventoryMultiplier(0, 1000), 1e-9)
	assert.InDelta(t, 1.5, InventoryMultiplier(200, 1000), 1e-9)
	assert.InDelta(t, 1.0, InventoryMultiplier(500, 1000), 1e-9)
	assert.InDelta(t, 0.67, InventoryMultiplier(800, 1000), 1e-9)
	assert.InDelta(t, 0.2, InventoryMultiplier(1000, 1000), 1e-9)
}

func TestInventoryMultiplier_ZeroCapacityNeutral(t *testing.T) {
	assert.Equal(t, 1.0, InventoryMultiplier(500, 0))
	assert.Equal(t, 1.0, InventoryMultiplier(0, -5))
}

func TestInventoryMultiplier_Monotonic(t *testing.T) {
	prev := math.Inf(1)
	for inv := 0.0; inv <= 1000; inv += 25 {
		cur := InventoryMultiplier(inv, 1000)
		require.LessOrEqual(t, cur, prev, "multiplier must not rise with inventory at %v", inv)
		prev = cur
	}
}

func TestCapacityManager_Defaults(t *testing.T) {
	m := NewCapacityManager()

	assert.Equal(t, DefaultBaseCapacity, m.Capacity("tile_1", "grain"))
	assert.False(t, m.IsFull("tile_1", "grain", 999))
	assert.True(t, m.IsFull("tile_1", "grain", 1000))
}

func TestCapacityManager_WarehouseBonus(t *testing.T) {
	assert.Equal(t, 0.0, WarehouseBonus(0))
	assert.Equal(t, 0.0, WarehouseBonus(-3))
	assert.Equal(t, 3000.0, WarehouseBonus(3))
}

func TestCapacityManager_UpdateFromWarehouse(t *testing.T) {
	m := NewCapacityManager()
	tile := &model.Tile{
		ID:      "tile_1",
		Storage: map[string]float64{"grain": 100, "wood": 50},
	}

	m.UpdateFromWarehouse(tile, 2)
	assert.Equal(t, 3000.0, m.Capacity("tile_1", "grain"))
	assert.Equal(t, 3000.0, m.Capacity("tile_1", "wood"))
	// goods not in storage keep the default
	assert.Equal(t, DefaultBaseCapacity, m.Capacity("tile_1", "iron"))
}

func TestCapacityManager_CustomOverridePersists(t *testing.T) {
	m := NewCapacityManager()
	tile := &model.Tile{ID: "tile_1", Storage: map[string]float64{"grain": 100}}

	m.SetCapacity("tile_1", "grain", 500)
	m.UpdateFromWarehouse(tile, 5)
	assert.Equal(t, 500.0, m.Capacity("tile_1", "grain"))

	m.ClearCustom("tile_1", "grain")
	m.UpdateFromWarehouse(tile, 5)
	assert.Equal(t, 6000.0, m.Capacity("tile_1", "grain"))
}

func TestCapacityManager_NegativeClampsToZero(t *testing.T) {
	m := NewCapacityManager()
	m.SetCapacity("tile_1", "grain", -10)
	assert.Equal(t, 0.0, m.Capacity("tile_1", "grain"))
}

func newPriceFixture() (*model.GameState, *PriceManager) {
	state := model.NewInitialState("game_1", "test")
	state.Tiles["tile_1"] = &model.Tile{
		ID:      "tile_1",
		Storage: map[string]float64{"grain": 200},
	}
	caps := NewCapacityManager()
	return state, NewPriceManager(state, caps)
}

func TestPriceManager_UpdateAndHistory(t *testing.T) {
	_, pm := newPriceFixture()

	price := pm.UpdateGoodsPrice("tile_1", "grain")
	// ratio 200/1000 = 0.2 → multiplier 1.5, base 10
	assert.InDelta(t, 15.0, price, 1e-9)
	assert.InDelta(t, 15.0, pm.Price("tile_1", "grain"), 1e-9)

	hist := pm.History("tile_1", "grain")
	require.Len(t, hist, 1)
	assert.InDelta(t, 0.2, hist[0].Ratio, 1e-9)
	assert.Equal(t, 200.0, hist[0].Inventory)
}

func TestPriceManager_HistoryCapped(t *testing.T) {
	_, pm := newPriceFixture()

	for i := 0; i < maxPriceHistory+20; i++ {
		pm.UpdateGoodsPrice("tile_1", "grain")
	}
	assert.Len(t, pm.History("tile_1", "grain"), maxPriceHistory)
}

func TestPriceManager_FreshPriceWithoutRecord(t *testing.T) {
	_, pm := newPriceFixture()

	// no UpdateGoodsPrice call yet
	assert.InDelta(t, 15.0, pm.Price("tile_1", "grain"), 1e-9)
	// empty storage on an unknown tile → ratio 0 → 5x base
	assert.InDelta(t, 50.0, pm.Price("tile_9", "grain"), 1e-9)
}

func TestPriceManager_CustomBasePrice(t *testing.T) {
	_, pm := newPriceFixture()

	pm.SetBasePrice("grain", 20)
	assert.InDelta(t, 30.0, pm.UpdateGoodsPrice("tile_1", "grain"), 1e-9)

	// unknown goods fall back to the catalog default of 10
	assert.Equal(t, 10.0, pm.BasePrice("mystery"))
}

func TestPriceManager_UpdateStateSwapsView(t *testing.T) {
	_, pm := newPriceFixture()

	next := model.NewInitialState("game_1", "test")
	next.Tiles["tile_1"] = &model.Tile{
		ID:      "tile_1",
		Storage: map[string]float64{"grain": 500},
	}
	pm.UpdateState(next)

	assert.InDelta(t, 10.0, pm.UpdateGoodsPrice("tile_1", "grain"), 1e-9)
}

func TestMarketManager_SupplyAlsoStockpiles(t *testing.T) {
	mm := NewMarketManager(NewMarket("m1", "Central", nil))

	mm.AddSupply("grain", 40)
	assert.Equal(t, 40.0, mm.Market().Supply["grain"])
	assert.Equal(t, 40.0, mm.Market().Stockpile["grain"])
}

func TestMarketManager_UpdatePricesShiftsAndRecords(t *testing.T) {
	mm := NewMarketManager(NewMarket("m1", "Central", nil))
	mm.RegisterGoods("grain")
	mm.AddSupply("grain", 100)
	mm.AddDemand("grain", 400)

	date := model.NewGameDate(1, 2, 3)
	mm.UpdatePrices(date)

	p := mm.Market().Prices["grain"]
	assert.Equal(t, 10.0, p.PreviousPrice)
	assert.NotEqual(t, p.PreviousPrice, p.CurrentPrice)
	require.Len(t, p.History, 1)
	assert.Equal(t, date, p.History[0].Date)
	assert.Equal(t, 100.0, p.History[0].Supply)
	assert.Equal(t, 400.0, p.History[0].Demand)
}

func TestMarketManager_HistoryCapped(t *testing.T) {
	mm := NewMarketManager(NewMarket("m1", "Central", nil))
	mm.RegisterGoods("grain")

	for i := 0; i < maxMarketHistory+10; i++ {
		mm.UpdatePrices(model.NewGameDate(1, 1, 1))
	}
	assert.Len(t, mm.Market().Prices["grain"].History, maxMarketHistory)
}

func TestMarketManager_PurchaseDrawsDownStockpile(t *testing.T) {
	mm := NewMarketManager(NewMarket("m1", "Central", nil))
	mm.AddSupply("grain", 30)

	total, err := mm.ExecuteTransaction("grain", 20, true)
	require.NoError(t, err)
	assert.InDelta(t, 10.0*20, total, 1e-9)
	assert.Equal(t, 10.0, mm.Market().Stockpile["grain"])
	assert.Equal(t, 20.0, mm.Market().Demand["grain"])

	// draw-down floors at zero
	_, err = mm.ExecuteTransaction("grain", 50, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mm.Market().Stockpile["grain"])
}

func TestMarketManager_SaleAddsSupply(t *testing.T) {
	mm := NewMarketManager(NewMarket("m1", "Central", nil))

	_, err := mm.ExecuteTransaction("grain", 15, false)
	require.NoError(t, err)
	assert.Equal(t, 15.0, mm.Market().Supply["grain"])
	assert.Equal(t, 15.0, mm.Market().Stockpile["grain"])
}

func TestMarketManager_RejectsNonPositiveAmount(t *testing.T) {
	mm := NewMarketManager(NewMarket("m1", "Central", nil))
	_, err := mm.ExecuteTransaction("grain", 0, true)
	assert.Error(t, err)
}

func TestMarketManager_EventLifecycle(t *testing.T) {
	mm := NewMarketManager(NewMarket("m1", "Central", nil))
	mm.RegisterGoods("grain")
	mm.AddSupply("grain", 100)

	end := model.NewGameDate(1, 2, 1)
	mm.AddEvent(model.MarketEvent{
		ID:        "ev1",
		Type:      model.EventHarvest,
		StartDate: model.NewGameDate(1, 1, 10),
		EndDate:   &end,
		Effects: model.MarketEventEffects{
			SupplyModifier: map[string]float64{"grain": 0.5},
			PriceModifier:  map[string]float64{"grain": -0.2},
		},
	})

	// before start: nothing happens
	mm.ProcessEvents(model.NewGameDate(1, 1, 5))
	assert.Equal(t, 100.0, mm.Market().Supply["grain"])
	assert.False(t, mm.Market().Events[0].IsActive)

	// on start: effects apply once
	mm.ProcessEvents(model.NewGameDate(1, 1, 10))
	assert.InDelta(t, 150.0, mm.Market().Supply["grain"], 1e-9)
	assert.InDelta(t, 8.0, mm.Market().Prices["grain"].CurrentPrice, 1e-9)
	assert.True(t, mm.Market().Events[0].IsActive)

	// active events do not re-apply
	mm.ProcessEvents(model.NewGameDate(1, 1, 15))
	assert.InDelta(t, 150.0, mm.Market().Supply["grain"], 1e-9)

	// past end date: event expires
	mm.ProcessEvents(model.NewGameDate(1, 2, 2))
	assert.Empty(t, mm.Market().Events)
}

func TestTradeManager_RouteLifecycle(t *testing.T) {
	tm := NewTradeManager()
	route := tm.CreateRoute("m1", "m2", []string{"grain"})

	assert.Equal(t, "route_1", route.ID)
	assert.True(t, route.IsActive)
	assert.Equal(t, defaultRouteLoad, route.MaxLoad)

	got, ok := tm.Route(route.ID)
	require.True(t, ok)
	assert.Same(t, route, got)
	assert.Len(t, tm.Routes(), 1)
}

func TestTradeManager_ExecuteTrade(t *testing.T) {
	tm := NewTradeManager()
	route := tm.CreateRoute("m1", "m2", []string{"grain"})

	trade, err := tm.ExecuteTrade(route.ID, "grain", 40)
	require.NoError(t, err)
	assert.Equal(t, "trade_1", trade.ID)
	assert.Equal(t, model.TradeActive, trade.Status)
	assert.Equal(t, 5.0, trade.TransportCost)
	assert.Equal(t, 40.0, route.CurrentLoad)
	assert.Len(t, route.TradeHistory, 1)
}

func TestTradeManager_CapacityAndStateErrors(t *testing.T) {
	tm := NewTradeManager()
	route := tm.CreateRoute("m1", "m2", []string{"grain"})

	_, err := tm.ExecuteTrade("route_404", "grain", 1)
	assert.ErrorIs(t, err, ErrRouteNotFound)

	_, err = tm.ExecuteTrade(route.ID, "grain", 150)
	assert.ErrorIs(t, err, ErrRouteCapacity)

	require.NoError(t, tm.SetActive(route.ID, false))
	_, err = tm.ExecuteTrade(route.ID, "grain", 1)
	assert.ErrorIs(t, err, ErrRouteInactive)
}

func TestTradeManager_ResetLoads(t *testing.T) {
	tm := NewTradeManager()
	route := tm.CreateRoute("m1", "m2", []string{"grain"})
	_, err := tm.ExecuteTrade(route.ID, "grain", 60)
	require.NoError(t, err)

	tm.ResetLoads()
	assert.Zero(t, route.CurrentLoad)
}
