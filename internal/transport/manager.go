// Package transport manages per-tile transport infrastructure: mode
// capacities, efficiency, maintenance and goods movement costs.
package transport

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/talgya/epochs/internal/model"
)

// Transport errors.
var (
	ErrTileNotFound     = errors.New("tile has no transport record")
	ErrModeNotFound     = errors.New("transport mode not built on tile")
	ErrInsufficientRoom = errors.New("insufficient transport capacity")
)

var baseCapacity = map[model.TransportType]float64{
	model.TransportFoot:    10,
	model.TransportCart:    50,
	model.TransportRoad:    200,
	model.TransportRailway: 1000,
	model.TransportHighway: 2000,
	model.TransportAirport: 5000,
	model.TransportPort:    3000,
}

var baseEfficiency = map[model.TransportType]float64{
	model.TransportFoot:    0.5,
	model.TransportCart:    0.6,
	model.TransportRoad:    0.7,
	model.TransportRailway: 0.8,
	model.TransportHighway: 0.9,
	model.TransportAirport: 0.95,
	model.TransportPort:    0.85,
}

var baseMaintenance = map[model.TransportType]float64{
	model.TransportFoot:    0,
	model.TransportCart:    5,
	model.TransportRoad:    20,
	model.TransportRailway: 100,
	model.TransportHighway: 200,
	model.TransportAirport: 500,
	model.TransportPort:    150,
}

// CapacityAt returns a mode's max capacity at a level:
// floor(base * 1.5^(level-1)).
func CapacityAt(mode model.TransportType, level int) float64 {
	return math.Floor(baseCapacity[mode] * math.Pow(1.5, float64(level-1)))
}

// EfficiencyAt returns a mode's efficiency at a level, capped at 1.0.
func EfficiencyAt(mode model.TransportType, level int) float64 {
	eff := baseEfficiency[mode] + float64(level-1)*0.1
	if eff > 1.0 {
		eff = 1.0
	}
	return eff
}

// MaintenanceAt returns a mode's maintenance cost at a level:
// floor(base * 1.2^(level-1)).
func MaintenanceAt(mode model.TransportType, level int) float64 {
	return math.Floor(baseMaintenance[mode] * math.Pow(1.2, float64(level-1)))
}

// Manager owns the transport records of every tile.
type Manager struct {
	tiles map[string]*model.TileTransportCapacity
}

// NewManager returns an empty transport Manager.
func NewManager() *Manager {
	return &Manager{tiles: make(map[string]*model.TileTransportCapacity)}
}

// Build adds a transport mode at level 1 to a tile, creating the tile
// record on first use. Building an existing mode is a no-op.
func (m *Manager) Build(tileID string, mode model.TransportType) *model.TransportCapacity {
	record, ok := m.tiles[tileID]
	if !ok {
		record = &model.TileTransportCapacity{
			TileID:     tileID,
			Capacities: make(map[model.TransportType]*model.TransportCapacity),
		}
		m.tiles[tileID] = record
	}
	if existing, ok := record.Capacities[mode]; ok {
		return existing
	}

	tc := &model.TransportCapacity{
		ID:              uuid.NewString(),
		TileID:          tileID,
		Type:            mode,
		Level:           1,
		MaxCapacity:     CapacityAt(mode, 1),
		Efficiency:      EfficiencyAt(mode, 1),
		MaintenanceCost: MaintenanceAt(mode, 1),
	}
	record.Capacities[mode] = tc
	m.refreshStats(record)
	return tc
}

// Tile returns a tile's transport record.
func (m *Manager) Tile(tileID string) (*model.TileTransportCapacity, bool) {
	r, ok := m.tiles[tileID]
	return r, ok
}

// UseCapacity reserves used capacity on a mode, clamped to [0, max].
func (m *Manager) UseCapacity(tileID string, mode model.TransportType, amount float64) error {
	tc, err := m.capacity(tileID, mode)
	if err != nil {
		return err
	}
	used := tc.UsedCapacity + amount
	if used < 0 {
		used = 0
	}
	if used > tc.MaxCapacity {
		used = tc.MaxCapacity
	}
	tc.UsedCapacity = used
	m.refreshStats(m.tiles[tileID])
	return nil
}

// Upgrade raises a mode one level and recomputes its derived values.
func (m *Manager) Upgrade(tileID string, mode model.TransportType) error {
	tc, err := m.capacity(tileID, mode)
	if err != nil {
		return err
	}
	tc.Level++
	tc.MaxCapacity = CapacityAt(mode, tc.Level)
	tc.Efficiency = EfficiencyAt(mode, tc.Level)
	tc.MaintenanceCost = MaintenanceAt(mode, tc.Level)
	m.refreshStats(m.tiles[tileID])
	return nil
}

// TransportCost prices moving an amount of goods between two tiles:
// amount * 10 / min(fromEfficiency, toEfficiency). Both tiles must have
// the free capacity for the shipment on the given mode.
func (m *Manager) TransportCost(fromTileID, toTileID string, mode model.TransportType, amount float64) (float64, error) {
	from, err := m.capacity(fromTileID, mode)
	if err != nil {
		return 0, err
	}
	to, err := m.capacity(toTileID, mode)
	if err != nil {
		return 0, err
	}
	if from.MaxCapacity-from.UsedCapacity < amount {
		return 0, fmt.Errorf("%w: %s on %s", ErrInsufficientRoom, mode, fromTileID)
	}
	if to.MaxCapacity-to.UsedCapacity < amount {
		return 0, fmt.Errorf("%w: %s on %s", ErrInsufficientRoom, mode, toTileID)
	}

	eff := math.Min(from.Efficiency, to.Efficiency)
	return amount * 10 / eff, nil
}

// TotalMaintenance sums the maintenance cost of every mode on every
// tile.
func (m *Manager) TotalMaintenance() float64 {
	var total float64
	for _, record := range m.tiles {
		for _, tc := range record.Capacities {
			total += tc.MaintenanceCost
		}
	}
	return total
}

func (m *Manager) capacity(tileID string, mode model.TransportType) (*model.TransportCapacity, error) {
	record, ok := m.tiles[tileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTileNotFound, tileID)
	}
	tc, ok := record.Capacities[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrModeNotFound, mode, tileID)
	}
	return tc, nil
}

// refreshStats recomputes the tile-level aggregate. Efficiency is the
// available share of total capacity, 1.0 for an empty record.
func (m *Manager) refreshStats(record *model.TileTransportCapacity) {
	var total, used float64
	for _, tc := range record.Capacities {
		total += tc.MaxCapacity
		used += tc.UsedCapacity
	}
	record.TotalCapacity = total
	record.UsedCapacity = used
	record.AvailableCapacity = total - used
	if total == 0 {
		record.Efficiency = 1.0
	} else {
		record.Efficiency = record.AvailableCapacity / total
	}
}
