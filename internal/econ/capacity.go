package econ

import (
	"github.com/talgya/epochs/internal/model"
)

// DefaultBaseCapacity is the per-good storage capacity of a tile with
// no warehouse.
const DefaultBaseCapacity = 1000.0

// CapacityManager tracks per-tile per-good storage capacities. Custom
// overrides set through SetCapacity take precedence over warehouse
// derived values.
type CapacityManager struct {
	capacities map[string]map[string]float64
	custom     map[string]map[string]bool
}

// NewCapacityManager returns an empty CapacityManager.
func NewCapacityManager() *CapacityManager {
	return &CapacityManager{
		capacities: make(map[string]map[string]float64),
		custom:     make(map[string]map[string]bool),
	}
}

// WarehouseBonus is the extra capacity granted by a warehouse of the
// given level.
func WarehouseBonus(level int) float64 {
	if level <= 0 {
		return 0
	}
	return float64(level) * 1000
}

// Capacity returns the effective capacity for a good on a tile,
// defaulting to DefaultBaseCapacity when nothing was recorded.
func (m *CapacityManager) Capacity(tileID, goodsID string) float64 {
	if goods, ok := m.capacities[tileID]; ok {
		if cap, ok := goods[goodsID]; ok {
			return cap
		}
	}
	return DefaultBaseCapacity
}

// SetCapacity records a custom capacity override. Negative values clamp
// to zero.
func (m *CapacityManager) SetCapacity(tileID, goodsID string, capacity float64) {
	if capacity < 0 {
		capacity = 0
	}
	m.ensure(tileID)
	m.capacities[tileID][goodsID] = capacity
	m.custom[tileID][goodsID] = true
}

// UpdateFromWarehouse recomputes base+bonus capacity for every good
// currently stored on the tile. Goods with a custom override keep it.
func (m *CapacityManager) UpdateFromWarehouse(tile *model.Tile, warehouseLevel int) {
	m.ensure(tile.ID)
	total := DefaultBaseCapacity + WarehouseBonus(warehouseLevel)
	for goodsID := range tile.Storage {
		if m.custom[tile.ID][goodsID] {
			continue
		}
		m.capacities[tile.ID][goodsID] = total
	}
}

// IsFull reports whether the stored inventory meets or exceeds the
// effective capacity.
func (m *CapacityManager) IsFull(tileID, goodsID string, inventory float64) bool {
	return inventory >= m.Capacity(tileID, goodsID)
}

// ClearCustom removes a custom override so warehouse recomputation can
// reach the good again.
func (m *CapacityManager) ClearCustom(tileID, goodsID string) {
	if goods, ok := m.custom[tileID]; ok {
		delete(goods, goodsID)
	}
}

func (m *CapacityManager) ensure(tileID string) {
	if _, ok := m.capacities[tileID]; !ok {
		m.capacities[tileID] = make(map[string]float64)
	}
	if _, ok := m.custom[tileID]; !ok {
		m.custom[tileID] = make(map[string]bool)
	}
}
