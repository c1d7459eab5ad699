package model

// Building is a placed production (or storage) facility on a tile.
// ProductionMethods lists the method ids currently available to the
// building; only the first entry is consulted by the production
// calculator, and selecting a method collapses the list to one element.
type Building struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Type              BuildingType       `json:"type"`
	MinEra            Era                `json:"min_era"`
	ConstructionCost  map[string]float64 `json:"construction_cost"`
	ConstructionTime  int                `json:"construction_time"`
	BaseWorkers       int                `json:"base_workers"`
	MaxWorkers        int                `json:"max_workers"`
	CurrentWorkers    int                `json:"current_workers"`
	BaseThroughput    float64            `json:"base_throughput"`
	ProductionMethods []string           `json:"production_methods"`
	Level             int                `json:"level"`
	Experience        float64            `json:"experience"`
	TileID            string             `json:"tile_id"`
}

// ActiveMethod returns the building's active production method id.
func (b *Building) ActiveMethod() (string, bool) {
	if len(b.ProductionMethods) == 0 {
		return "", false
	}
	return b.ProductionMethods[0], true
}

// BuildingConfig is a static catalog entry used to stamp out buildings.
type BuildingConfig struct {
	ID                string
	Name              string
	Type              BuildingType
	MinEra            Era
	BaseWorkers       int
	MaxWorkers        int
	BaseThroughput    float64
	ConstructionCost  map[string]float64
	ConstructionTime  int
	ProductionMethods []string
}

// BuildingConfigs is the static building catalog.
var BuildingConfigs = map[string]BuildingConfig{
	"farm": {
		ID:                "farm",
		Name:              "Farm",
		Type:              BuildingFarm,
		MinEra:            EraStoneAge,
		BaseWorkers:       10,
		MaxWorkers:        20,
		BaseThroughput:    100,
		ConstructionCost:  map[string]float64{"wood": 10, "stone": 5},
		ConstructionTime:  30,
		ProductionMethods: []string{"slash_burn", "plowing", "mechanized", "modern"},
	},
	"ranch": {
		ID:                "ranch",
		Name:              "Ranch",
		Type:              BuildingRanch,
		MinEra:            EraStoneAge,
		BaseWorkers:       8,
		MaxWorkers:        15,
		BaseThroughput:    50,
		ConstructionCost:  map[string]float64{"wood": 15},
		ConstructionTime:  25,
		ProductionMethods: []string{},
	},
	"forestry": {
		ID:                "forestry",
		Name:              "Forestry",
		Type:              BuildingForestry,
		MinEra:            EraStoneAge,
		BaseWorkers:       10,
		MaxWorkers:        20,
		BaseThroughput:    80,
		ConstructionCost:  map[string]float64{"wood": 5},
		ConstructionTime:  20,
		ProductionMethods: []string{},
	},
	"fishery": {
		ID:                "fishery",
		Name:              "Fishery",
		Type:              BuildingFishery,
		MinEra:            EraStoneAge,
		BaseWorkers:       5,
		MaxWorkers:        10,
		BaseThroughput:    40,
		ConstructionCost:  map[string]float64{"wood": 8},
		ConstructionTime:  15,
		ProductionMethods: []string{},
	},
	"quarry": {
		ID:                "quarry",
		Name:              "Quarry",
		Type:              BuildingQuarry,
		MinEra:            EraStoneAge,
		BaseWorkers:       12,
		MaxWorkers:        20,
		BaseThroughput:    60,
		ConstructionCost:  map[string]float64{"wood": 10},
		ConstructionTime:  35,
		ProductionMethods: []string{},
	},
	"mine": {
		ID:                "mine",
		Name:              "Mine",
		Type:              BuildingMine,
		MinEra:            EraBronzeAge,
		BaseWorkers:       15,
		MaxWorkers:        25,
		BaseThroughput:    80,
		ConstructionCost:  map[string]float64{"wood": 20, "stone": 15},
		ConstructionTime:  50,
		ProductionMethods: []string{},
	},
	"workshop": {
		ID:                "workshop",
		Name:              "Workshop",
		Type:              BuildingWorkshop,
		MinEra:            EraBronzeAge,
		BaseWorkers:       8,
		MaxWorkers:        15,
		BaseThroughput:    50,
		ConstructionCost:  map[string]float64{"wood": 30, "stone": 20},
		ConstructionTime:  40,
		ProductionMethods: []string{"handcraft"},
	},
	"factory": {
		ID:                "factory",
		Name:              "Factory",
		Type:              BuildingFactory,
		MinEra:            EraIndustrial,
		BaseWorkers:       50,
		MaxWorkers:        100,
		BaseThroughput:    200,
		ConstructionCost:  map[string]float64{"steel": 100, "coal": 50},
		ConstructionTime:  100,
		ProductionMethods: []string{"steam_power", "assembly_line", "automation"},
	},
	"modern_factory": {
		ID:                "modern_factory",
		Name:              "Modern Factory",
		Type:              BuildingModernFactory,
		MinEra:            EraElectrical,
		BaseWorkers:       30,
		MaxWorkers:        60,
		BaseThroughput:    300,
		ConstructionCost:  map[string]float64{"steel": 150, "oil": 50},
		ConstructionTime:  120,
		ProductionMethods: []string{"smart"},
	},
	"warehouse": {
		ID:                "warehouse",
		Name:              "Warehouse",
		Type:              BuildingWarehouse,
		MinEra:            EraStoneAge,
		BaseWorkers:       2,
		MaxWorkers:        5,
		BaseThroughput:    0,
		ConstructionCost:  map[string]float64{"wood": 25, "stone": 10},
		ConstructionTime:  20,
		ProductionMethods: []string{},
	},
}

// BuildingConfigByType finds the catalog entry whose Type matches.
func BuildingConfigByType(t BuildingType) (BuildingConfig, bool) {
	for _, cfg := range BuildingConfigs {
		if cfg.Type == t {
			return cfg, true
		}
	}
	return BuildingConfig{}, false
}
