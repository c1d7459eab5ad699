// Package terrain manages abstract land tiles: terrain composition,
// buildable area accounting, resource discovery and tile development.
package terrain

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/talgya/epochs/internal/entropy"
	"github.com/talgya/epochs/internal/model"
)

const (
	tileTotalArea     = 100.0
	buildingFootprint = 5.0
	maxRoadLevel      = 3
)

// TileManager owns tiles and their area/resource bookkeeping.
type TileManager struct {
	tiles  map[string]*model.Tile
	rng    *entropy.Source
	nextID int
}

// NewTileManager returns a TileManager drawing randomness from rng.
func NewTileManager(rng *entropy.Source) *TileManager {
	return &TileManager{
		tiles:  make(map[string]*model.Tile),
		rng:    rng,
		nextID: 1,
	}
}

// Create builds a tile from a terrain composition. Ratios should sum to
// at most 1; buildable area and control cost derive from the terrain
// catalog.
func (m *TileManager) Create(name string, composition map[model.TerrainType]float64) *model.Tile {
	comp := make(map[model.TerrainType]float64, len(composition))
	for terrain, ratio := range composition {
		comp[terrain] = ratio
	}

	tile := &model.Tile{
		ID:                 fmt.Sprintf("tile_%d", m.nextID),
		Name:               name,
		TerrainComposition: comp,
		TotalArea:          tileTotalArea,
		BuildableArea:      BuildableArea(comp),
		ControlCost:        ControlCost(comp),
		Resources:          []model.ResourceDeposit{},
		Buildings:          []string{},
		Storage:            make(map[string]float64),
	}
	m.nextID++
	m.tiles[tile.ID] = tile
	return tile
}

// Adopt registers an externally built tile.
func (m *TileManager) Adopt(tile *model.Tile) {
	m.tiles[tile.ID] = tile
}

// Get returns a tile by id.
func (m *TileManager) Get(id string) (*model.Tile, bool) {
	t, ok := m.tiles[id]
	return t, ok
}

// All returns every managed tile.
func (m *TileManager) All() []*model.Tile {
	out := make([]*model.Tile, 0, len(m.tiles))
	for _, t := range m.tiles {
		out = append(out, t)
	}
	return out
}

// BuildableArea derives a tile's buildable area from its composition.
func BuildableArea(composition map[model.TerrainType]float64) float64 {
	var area float64
	for terrain, ratio := range composition {
		cfg, ok := model.TerrainConfigs[terrain]
		if !ok {
			continue
		}
		area += tileTotalArea * ratio * cfg.BuildableRatio
	}
	return area
}

// ControlCost derives the cost of taking control of a tile from its
// composition.
func ControlCost(composition map[model.TerrainType]float64) float64 {
	var cost float64
	for terrain, ratio := range composition {
		cfg, ok := model.TerrainConfigs[terrain]
		if !ok {
			continue
		}
		cost += cfg.ConstructionCostModifier * ratio * 10
	}
	return cost
}

// AddBuilding reserves a building's footprint on the tile.
func (m *TileManager) AddBuilding(tileID, buildingID string) error {
	tile, ok := m.tiles[tileID]
	if !ok {
		return fmt.Errorf("tile not found: %s", tileID)
	}
	if tile.UsedArea+buildingFootprint > tile.BuildableArea {
		return fmt.Errorf("no buildable area left on %s: used %v of %v",
			tileID, tile.UsedArea, tile.BuildableArea)
	}
	tile.UsedArea += buildingFootprint
	tile.Buildings = append(tile.Buildings, buildingID)
	return nil
}

// RemoveBuilding releases a building's footprint.
func (m *TileManager) RemoveBuilding(tileID, buildingID string) error {
	tile, ok := m.tiles[tileID]
	if !ok {
		return fmt.Errorf("tile not found: %s", tileID)
	}
	for i, id := range tile.Buildings {
		if id == buildingID {
			tile.Buildings = append(tile.Buildings[:i], tile.Buildings[i+1:]...)
			tile.UsedArea -= buildingFootprint
			if tile.UsedArea < 0 {
				tile.UsedArea = 0
			}
			return nil
		}
	}
	return fmt.Errorf("building %s not on tile %s", buildingID, tileID)
}

// DiscoverResource rolls a new deposit of resourceType on a tile. A
// tile holds at most one deposit per resource type; rediscovery returns
// the existing deposit.
func (m *TileManager) DiscoverResource(tileID, resourceType string) (*model.ResourceDeposit, error) {
	tile, ok := m.tiles[tileID]
	if !ok {
		return nil, fmt.Errorf("tile not found: %s", tileID)
	}

	for i := range tile.Resources {
		if tile.Resources[i].Type == resourceType {
			tile.Resources[i].IsDiscovered = true
			return &tile.Resources[i], nil
		}
	}

	amount := math.Floor(m.rng.Next()*9000) + 1000
	deposit := model.ResourceDeposit{
		ID:                   uuid.NewString(),
		Type:                 resourceType,
		TotalAmount:          amount,
		CurrentAmount:        amount,
		ExtractionDifficulty: 0.5 + m.rng.Next()*0.5,
		Richness:             rollRichness(m.rng),
		IsDiscovered:         true,
	}
	tile.Resources = append(tile.Resources, deposit)
	return &tile.Resources[len(tile.Resources)-1], nil
}

func rollRichness(rng *entropy.Source) model.DepositRichness {
	roll := rng.Next()
	switch {
	case roll < 0.05:
		return model.RichnessVeryRich
	case roll < 0.15:
		return model.RichnessRich
	case roll < 0.5:
		return model.RichnessNormal
	case roll < 0.8:
		return model.RichnessPoor
	default:
		return model.RichnessTrace
	}
}

// UpgradeRoad raises a tile's road level by one, up to the maximum.
func (m *TileManager) UpgradeRoad(tileID string) error {
	tile, ok := m.tiles[tileID]
	if !ok {
		return fmt.Errorf("tile not found: %s", tileID)
	}
	if tile.RoadLevel < 0 || tile.RoadLevel >= maxRoadLevel {
		return fmt.Errorf("road level %d on %s cannot be upgraded", tile.RoadLevel, tileID)
	}
	tile.RoadLevel++
	return nil
}

// GainDevelopment adds development experience. Crossing the threshold
// 100*(level+1) raises the development level, resets experience and
// widens the buildable area by 5% of total area per level.
func (m *TileManager) GainDevelopment(tileID string, exp float64) error {
	tile, ok := m.tiles[tileID]
	if !ok {
		return fmt.Errorf("tile not found: %s", tileID)
	}
	tile.DevelopmentExp += exp
	threshold := 100 * float64(tile.DevelopmentLevel+1)
	if tile.DevelopmentExp >= threshold {
		tile.DevelopmentLevel++
		tile.DevelopmentExp = 0
		tile.BuildableArea = tile.TotalArea * (1 + float64(tile.DevelopmentLevel)*0.05)
	}
	return nil
}
