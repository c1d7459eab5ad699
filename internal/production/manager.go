package production

import (
	"fmt"

	"github.com/talgya/epochs/internal/model"
)

// Manager owns building lifecycle for standalone (non-reducer) use.
// Unlike the reducer path, its operations return errors on violations.
type Manager struct {
	buildings map[string]*model.Building
	nextID    int
}

// NewManager returns an empty building Manager.
func NewManager() *Manager {
	return &Manager{
		buildings: make(map[string]*model.Building),
		nextID:    1,
	}
}

// Create stamps out a building from the catalog entry named by configKey.
func (m *Manager) Create(configKey, tileID string) (*model.Building, error) {
	cfg, ok := model.BuildingConfigs[configKey]
	if !ok {
		return nil, fmt.Errorf("building config not found: %s", configKey)
	}

	cost := make(map[string]float64, len(cfg.ConstructionCost))
	for goodsID, amount := range cfg.ConstructionCost {
		cost[goodsID] = amount
	}

	b := &model.Building{
		ID:                fmt.Sprintf("building_%d", m.nextID),
		Name:              cfg.Name,
		Type:              cfg.Type,
		MinEra:            cfg.MinEra,
		ConstructionCost:  cost,
		ConstructionTime:  cfg.ConstructionTime,
		BaseWorkers:       cfg.BaseWorkers,
		MaxWorkers:        cfg.MaxWorkers,
		BaseThroughput:    cfg.BaseThroughput,
		ProductionMethods: append([]string(nil), cfg.ProductionMethods...),
		Level:             1,
		Experience:        0,
		TileID:            tileID,
	}
	m.nextID++
	m.buildings[b.ID] = b
	return b, nil
}

// Get returns a building by id.
func (m *Manager) Get(id string) (*model.Building, bool) {
	b, ok := m.buildings[id]
	return b, ok
}

// All returns every managed building.
func (m *Manager) All() []*model.Building {
	out := make([]*model.Building, 0, len(m.buildings))
	for _, b := range m.buildings {
		out = append(out, b)
	}
	return out
}

// ByTile returns the buildings placed on a tile.
func (m *Manager) ByTile(tileID string) []*model.Building {
	var out []*model.Building
	for _, b := range m.buildings {
		if b.TileID == tileID {
			out = append(out, b)
		}
	}
	return out
}

// Upgrade raises a building one level and resets its experience.
func (m *Manager) Upgrade(buildingID string) error {
	b, ok := m.buildings[buildingID]
	if !ok {
		return fmt.Errorf("building not found: %s", buildingID)
	}
	b.Level++
	b.Experience = 0
	return nil
}

// Remove deletes a building.
func (m *Manager) Remove(buildingID string) {
	delete(m.buildings, buildingID)
}

// SetMethod selects the active production method. The method must already
// be listed on the building; selection collapses the list to one entry.
func (m *Manager) SetMethod(buildingID, methodID string) error {
	b, ok := m.buildings[buildingID]
	if !ok {
		return fmt.Errorf("building not found: %s", buildingID)
	}

	available := false
	for _, id := range b.ProductionMethods {
		if id == methodID {
			available = true
			break
		}
	}
	if !available {
		return fmt.Errorf("production method not available: %s", methodID)
	}

	b.ProductionMethods = []string{methodID}
	return nil
}
