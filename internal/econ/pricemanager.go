package econ

import (
	"github.com/talgya/epochs/internal/model"
)

// maxPriceHistory bounds each good's retained price samples.
const maxPriceHistory = 50

// PriceHistoryEntry is one recorded local price sample.
type PriceHistoryEntry struct {
	Date      model.GameDate `json:"date"`
	Price     float64        `json:"price"`
	Inventory float64        `json:"inventory"`
	Capacity  float64        `json:"capacity"`
	Ratio     float64        `json:"ratio"`
}

// PriceManager maintains inventory-driven local prices per tile. It
// reads tile storage from the game state it was handed; UpdateState
// swaps in a newer state after reducer cycles.
type PriceManager struct {
	state      *model.GameState
	capacities *CapacityManager
	basePrices map[string]float64
	prices     map[string]map[string]float64
	history    map[string]map[string][]PriceHistoryEntry
}

// NewPriceManager builds a PriceManager over a state and capacity view.
func NewPriceManager(state *model.GameState, capacities *CapacityManager) *PriceManager {
	return &PriceManager{
		state:      state,
		capacities: capacities,
		basePrices: make(map[string]float64),
		prices:     make(map[string]map[string]float64),
		history:    make(map[string]map[string][]PriceHistoryEntry),
	}
}

// UpdateState points the manager at a newer game state.
func (m *PriceManager) UpdateState(state *model.GameState) {
	m.state = state
}

// SetBasePrice overrides the catalog base price for a good.
func (m *PriceManager) SetBasePrice(goodsID string, price float64) {
	m.basePrices[goodsID] = price
}

// BasePrice resolves a good's base price: custom override first, then
// the goods catalog, then the catalog default.
func (m *PriceManager) BasePrice(goodsID string) float64 {
	if p, ok := m.basePrices[goodsID]; ok {
		return p
	}
	return model.BasePriceOf(goodsID)
}

// UpdateGoodsPrice recomputes the local price of a good on a tile from
// its current inventory ratio and records a history sample.
func (m *PriceManager) UpdateGoodsPrice(tileID, goodsID string) float64 {
	inventory := m.tileInventory(tileID, goodsID)
	capacity := m.capacities.Capacity(tileID, goodsID)

	price := m.BasePrice(goodsID) * InventoryMultiplier(inventory, capacity)

	if _, ok := m.prices[tileID]; !ok {
		m.prices[tileID] = make(map[string]float64)
		m.history[tileID] = make(map[string][]PriceHistoryEntry)
	}
	m.prices[tileID][goodsID] = price

	entries := append(m.history[tileID][goodsID], PriceHistoryEntry{
		Date:      m.state.Date,
		Price:     price,
		Inventory: inventory,
		Capacity:  capacity,
		Ratio:     InventoryRatio(inventory, capacity),
	})
	if len(entries) > maxPriceHistory {
		entries = entries[len(entries)-maxPriceHistory:]
	}
	m.history[tileID][goodsID] = entries

	return price
}

// UpdateTilePrices refreshes every stored good's price on a tile.
func (m *PriceManager) UpdateTilePrices(tileID string) {
	tile, ok := m.state.Tiles[tileID]
	if !ok {
		return
	}
	for goodsID := range tile.Storage {
		m.UpdateGoodsPrice(tileID, goodsID)
	}
}

// Price returns the last computed local price, computing one fresh from
// the current inventory when no record exists yet.
func (m *PriceManager) Price(tileID, goodsID string) float64 {
	if goods, ok := m.prices[tileID]; ok {
		if p, ok := goods[goodsID]; ok {
			return p
		}
	}
	inventory := m.tileInventory(tileID, goodsID)
	capacity := m.capacities.Capacity(tileID, goodsID)
	return m.BasePrice(goodsID) * InventoryMultiplier(inventory, capacity)
}

// History returns the recorded samples for a good on a tile.
func (m *PriceManager) History(tileID, goodsID string) []PriceHistoryEntry {
	if goods, ok := m.history[tileID]; ok {
		return goods[goodsID]
	}
	return nil
}

func (m *PriceManager) tileInventory(tileID, goodsID string) float64 {
	tile, ok := m.state.Tiles[tileID]
	if !ok {
		return 0
	}
	return tile.Storage[goodsID]
}
