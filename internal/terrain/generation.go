package terrain

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/epochs/internal/model"
)

// GenConfig holds region generation parameters.
type GenConfig struct {
	Width    int     // tiles per row
	Height   int     // tile rows
	Seed     int64   // noise seed
	SeaLevel float64 // elevation threshold for water-dominated tiles
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:    8,
		Height:   8,
		Seed:     1,
		SeaLevel: 0.3,
	}
}

// GenerateRegion samples layered simplex noise to build a grid of tiles
// with mixed terrain compositions. The same seed always yields the same
// region.
func GenerateRegion(cfg GenConfig, tm *TileManager) []*model.Tile {
	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	rainNoise := opensimplex.NewNormalized(cfg.Seed + 1)
	tempNoise := opensimplex.NewNormalized(cfg.Seed + 2)

	tiles := make([]*model.Tile, 0, cfg.Width*cfg.Height)
	for row := 0; row < cfg.Height; row++ {
		for col := 0; col < cfg.Width; col++ {
			x := float64(col)
			y := float64(row)

			elev := octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)
			rain := octaveNoise(rainNoise, x, y, 3, 0.06, 0.5)
			temp := octaveNoise(tempNoise, x, y, 3, 0.05, 0.5)

			// Temperature cools toward the top rows and with elevation.
			temp = temp*0.6 + (1.0-y/float64(cfg.Height))*0.3 + (1.0-elev)*0.1

			comp := deriveComposition(elev, rain, temp, cfg)
			tile := tm.Create(fmt.Sprintf("Region %d-%d", row, col), comp)
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// deriveComposition maps environmental parameters to a terrain ratio
// mix. The dominant terrain takes the bulk of the tile, with secondary
// terrains filling in; ratios always sum to at most 1.
func deriveComposition(elev, rain, temp float64, cfg GenConfig) map[model.TerrainType]float64 {
	comp := make(map[model.TerrainType]float64)

	switch {
	case elev < cfg.SeaLevel:
		comp[model.TerrainWater] = 0.7
		comp[model.TerrainSwamp] = 0.2
		comp[model.TerrainPlains] = 0.1
	case elev > 0.75:
		comp[model.TerrainMountain] = 0.6
		comp[model.TerrainHills] = 0.3
		comp[model.TerrainPlains] = 0.1
	case temp < 0.25:
		comp[model.TerrainSnow] = 0.6
		comp[model.TerrainHills] = 0.2
		comp[model.TerrainPlains] = 0.2
	case rain < 0.25 && temp > 0.5:
		comp[model.TerrainDesert] = 0.7
		comp[model.TerrainHills] = 0.2
		comp[model.TerrainPlains] = 0.1
	case rain > 0.7 && elev < 0.45:
		comp[model.TerrainSwamp] = 0.5
		comp[model.TerrainPlains] = 0.3
		comp[model.TerrainForest] = 0.2
	case rain > 0.45 && elev > 0.45:
		comp[model.TerrainForest] = 0.6
		comp[model.TerrainPlains] = 0.3
		comp[model.TerrainHills] = 0.1
	default:
		comp[model.TerrainPlains] = 0.6
		comp[model.TerrainForest] = 0.2
		comp[model.TerrainHills] = 0.2
	}

	return comp
}

// octaveNoise layers multiple noise frequencies into fractal noise.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// DominantTerrain returns the largest-share terrain of a composition.
func DominantTerrain(comp map[model.TerrainType]float64) model.TerrainType {
	var best model.TerrainType
	bestRatio := math.Inf(-1)
	for terrain, ratio := range comp {
		if ratio > bestRatio {
			best = terrain
			bestRatio = ratio
		}
	}
	return best
}
