// Package storage provides direct, in-place goods storage operations on
// tile and global inventories, bypassing the reducer cycle for bulk
// bookkeeping.
package storage

import (
	"fmt"
	"sort"

	"github.com/talgya/epochs/internal/model"
)

// OperationResult reports the outcome of a storage mutation. Removals
// that find less than requested still succeed and report what was
// actually moved.
type OperationResult struct {
	Success      bool    `json:"success"`
	ActualAmount float64 `json:"actual_amount"`
	Message      string  `json:"message,omitempty"`
}

// Manager mutates the storage branches of a game state in place. It is
// meant for batch flows (world generation, migrations, bulk transfers)
// where the copy-on-write reducer path would be wasteful.
type Manager struct {
	state *model.GameState
}

// NewManager wraps a game state.
func NewManager(state *model.GameState) *Manager {
	return &Manager{state: state}
}

// UpdateState points the manager at a newer game state.
func (m *Manager) UpdateState(state *model.GameState) {
	m.state = state
}

// TileAmount returns the stored amount of a good on a tile.
func (m *Manager) TileAmount(tileID, goodsID string) float64 {
	tile, ok := m.state.Tiles[tileID]
	if !ok {
		return 0
	}
	return tile.Storage[goodsID]
}

// TileHas reports whether a tile stores at least amount of a good.
func (m *Manager) TileHas(tileID, goodsID string, amount float64) bool {
	return m.TileAmount(tileID, goodsID) >= amount
}

// AddToTile credits a good to a tile's storage.
func (m *Manager) AddToTile(tileID, goodsID string, amount float64) OperationResult {
	tile, ok := m.state.Tiles[tileID]
	if !ok {
		return OperationResult{Message: fmt.Sprintf("tile not found: %s", tileID)}
	}
	if amount < 0 {
		return OperationResult{Message: "amount must not be negative"}
	}
	if tile.Storage == nil {
		tile.Storage = make(map[string]float64)
	}
	tile.Storage[goodsID] += amount
	return OperationResult{Success: true, ActualAmount: amount}
}

// RemoveFromTile debits a good from a tile's storage, flooring at zero.
// The result reports how much was actually removed.
func (m *Manager) RemoveFromTile(tileID, goodsID string, amount float64) OperationResult {
	tile, ok := m.state.Tiles[tileID]
	if !ok {
		return OperationResult{Message: fmt.Sprintf("tile not found: %s", tileID)}
	}
	if amount < 0 {
		return OperationResult{Message: "amount must not be negative"}
	}
	had := tile.Storage[goodsID]
	actual := amount
	if had < amount {
		actual = had
	}
	tile.Storage[goodsID] = had - actual
	return OperationResult{Success: true, ActualAmount: actual}
}

// SetTileAmount overwrites the stored amount of a good on a tile.
func (m *Manager) SetTileAmount(tileID, goodsID string, amount float64) OperationResult {
	tile, ok := m.state.Tiles[tileID]
	if !ok {
		return OperationResult{Message: fmt.Sprintf("tile not found: %s", tileID)}
	}
	if amount < 0 {
		amount = 0
	}
	if tile.Storage == nil {
		tile.Storage = make(map[string]float64)
	}
	tile.Storage[goodsID] = amount
	return OperationResult{Success: true, ActualAmount: amount}
}

// GlobalAmount returns the globally stored amount of a good.
func (m *Manager) GlobalAmount(goodsID string) float64 {
	return m.state.GlobalStorage[goodsID]
}

// GlobalHas reports whether global storage holds at least amount.
func (m *Manager) GlobalHas(goodsID string, amount float64) bool {
	return m.state.GlobalStorage[goodsID] >= amount
}

// AddToGlobal credits a good to global storage.
func (m *Manager) AddToGlobal(goodsID string, amount float64) OperationResult {
	if amount < 0 {
		return OperationResult{Message: "amount must not be negative"}
	}
	if m.state.GlobalStorage == nil {
		m.state.GlobalStorage = make(map[string]float64)
	}
	m.state.GlobalStorage[goodsID] += amount
	return OperationResult{Success: true, ActualAmount: amount}
}

// RemoveFromGlobal debits global storage, flooring at zero.
func (m *Manager) RemoveFromGlobal(goodsID string, amount float64) OperationResult {
	if amount < 0 {
		return OperationResult{Message: "amount must not be negative"}
	}
	had := m.state.GlobalStorage[goodsID]
	actual := amount
	if had < amount {
		actual = had
	}
	m.state.GlobalStorage[goodsID] = had - actual
	return OperationResult{Success: true, ActualAmount: actual}
}

// TransferToGlobal moves goods from a tile into global storage. The tile
// must hold the full amount.
func (m *Manager) TransferToGlobal(tileID, goodsID string, amount float64) OperationResult {
	if !m.TileHas(tileID, goodsID, amount) {
		return OperationResult{
			Message: fmt.Sprintf("insufficient %s on %s: have %v, need %v",
				goodsID, tileID, m.TileAmount(tileID, goodsID), amount),
		}
	}
	m.RemoveFromTile(tileID, goodsID, amount)
	m.AddToGlobal(goodsID, amount)
	return OperationResult{Success: true, ActualAmount: amount}
}

// ClearTile empties a tile's storage.
func (m *Manager) ClearTile(tileID string) {
	if tile, ok := m.state.Tiles[tileID]; ok {
		tile.Storage = make(map[string]float64)
	}
}

// ClearGlobal empties global storage.
func (m *Manager) ClearGlobal() {
	m.state.GlobalStorage = make(map[string]float64)
}

// TileTotal sums every stored good on a tile.
func (m *Manager) TileTotal(tileID string) float64 {
	tile, ok := m.state.Tiles[tileID]
	if !ok {
		return 0
	}
	var total float64
	for _, amount := range tile.Storage {
		total += amount
	}
	return total
}

// GlobalTotal sums every good in global storage.
func (m *Manager) GlobalTotal() float64 {
	var total float64
	for _, amount := range m.state.GlobalStorage {
		total += amount
	}
	return total
}

// TileGoods lists the goods ids stored on a tile, sorted.
func (m *Manager) TileGoods(tileID string) []string {
	tile, ok := m.state.Tiles[tileID]
	if !ok {
		return nil
	}
	return sortedKeys(tile.Storage)
}

// GlobalGoods lists the goods ids in global storage, sorted.
func (m *Manager) GlobalGoods() []string {
	return sortedKeys(m.state.GlobalStorage)
}

// SyncGlobalFromTiles rebuilds global storage as the sum of every
// tile's storage.
func (m *Manager) SyncGlobalFromTiles() {
	global := make(map[string]float64)
	for _, tile := range m.state.Tiles {
		for goodsID, amount := range tile.Storage {
			global[goodsID] += amount
		}
	}
	m.state.GlobalStorage = global
}

func sortedKeys(goods map[string]float64) []string {
	keys := make([]string, 0, len(goods))
	for k := range goods {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
