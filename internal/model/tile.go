package model

// Tile is an abstract land parcel: terrain mix, buildable area accounting,
// resource deposits, local goods storage and development progress.
type Tile struct {
	ID                 string                  `json:"id"`
	Name               string                  `json:"name"`
	TerrainComposition map[TerrainType]float64 `json:"terrain_composition"` // ratios sum to <= 1
	TotalArea          float64                 `json:"total_area"`
	BuildableArea      float64                 `json:"buildable_area"`
	UsedArea           float64                 `json:"used_area"`
	Resources          []ResourceDeposit       `json:"resources"`
	Buildings          []string                `json:"buildings"`
	Storage            map[string]float64      `json:"storage"`
	IsExplored         bool                    `json:"is_explored"`
	IsControlled       bool                    `json:"is_controlled"`
	ControlCost        float64                 `json:"control_cost"`
	RoadLevel          int                     `json:"road_level"` // 0-3
	TransportHub       string                  `json:"transport_hub,omitempty"`
	DevelopmentLevel   int                     `json:"development_level"`
	DevelopmentExp     float64                 `json:"development_exp"`
}

// ResourceDeposit is a discovered or latent extractable resource on a tile.
type ResourceDeposit struct {
	ID                   string          `json:"id"`
	Type                 string          `json:"type"`
	TotalAmount          float64         `json:"total_amount"`
	CurrentAmount        float64         `json:"current_amount"`
	ExtractionDifficulty float64         `json:"extraction_difficulty"`
	Richness             DepositRichness `json:"richness"`
	RequiredTech         []string        `json:"required_tech"`
	RequiredBuilding     string          `json:"required_building"`
	IsDiscovered         bool            `json:"is_discovered"`
	IsActive             bool            `json:"is_active"`
}

// TerrainConfig describes the static properties of one terrain class.
type TerrainConfig struct {
	Type                     TerrainType `json:"type"`
	Name                     string      `json:"name"`
	BuildableRatio           float64     `json:"buildable_ratio"`
	ConstructionCostModifier float64     `json:"construction_cost_modifier"`
	BaseAgricultureYield     float64     `json:"base_agriculture_yield"`
	BaseMiningYield          float64     `json:"base_mining_yield"`
	BaseForestryYield        float64     `json:"base_forestry_yield"`
	PopulationEfficiency     float64     `json:"population_efficiency"`
	PopulationGrowth         float64     `json:"population_growth"`
}

// TerrainConfigs is the static terrain catalog.
var TerrainConfigs = map[TerrainType]TerrainConfig{
	TerrainPlains: {
		Type:                     TerrainPlains,
		Name:                     "Plains",
		BuildableRatio:           1.0,
		ConstructionCostModifier: 1.0,
		BaseAgricultureYield:     1.0,
		BaseMiningYield:          0.3,
		BaseForestryYield:        0.5,
		PopulationEfficiency:     1.0,
		PopulationGrowth:         1.0,
	},
	TerrainForest: {
		Type:                     TerrainForest,
		Name:                     "Forest",
		BuildableRatio:           0.6,
		ConstructionCostModifier: 1.2,
		BaseAgricultureYield:     0.6,
		BaseMiningYield:          0.4,
		BaseForestryYield:        1.2,
		PopulationEfficiency:     0.9,
		PopulationGrowth:         0.95,
	},
	TerrainHills: {
		Type:                     TerrainHills,
		Name:                     "Hills",
		BuildableRatio:           0.7,
		ConstructionCostModifier: 1.3,
		BaseAgricultureYield:     0.7,
		BaseMiningYield:          1.0,
		BaseForestryYield:        0.8,
		PopulationEfficiency:     0.85,
		PopulationGrowth:         0.9,
	},
	TerrainWater: {
		Type:                     TerrainWater,
		Name:                     "Water",
		BuildableRatio:           0.2,
		ConstructionCostModifier: 2.0,
		BaseAgricultureYield:     0.5,
		BaseMiningYield:          0.0,
		BaseForestryYield:        0.0,
		PopulationEfficiency:     0.8,
		PopulationGrowth:         0.8,
	},
	TerrainDesert: {
		Type:                     TerrainDesert,
		Name:                     "Desert",
		BuildableRatio:           0.3,
		ConstructionCostModifier: 1.5,
		BaseAgricultureYield:     0.2,
		BaseMiningYield:          0.6,
		BaseForestryYield:        0.0,
		PopulationEfficiency:     0.7,
		PopulationGrowth:         0.7,
	},
	TerrainSnow: {
		Type:                     TerrainSnow,
		Name:                     "Snow",
		BuildableRatio:           0.25,
		ConstructionCostModifier: 1.8,
		BaseAgricultureYield:     0.1,
		BaseMiningYield:          0.8,
		BaseForestryYield:        0.0,
		PopulationEfficiency:     0.6,
		PopulationGrowth:         0.6,
	},
	TerrainSwamp: {
		Type:                     TerrainSwamp,
		Name:                     "Swamp",
		BuildableRatio:           0.4,
		ConstructionCostModifier: 1.6,
		BaseAgricultureYield:     0.4,
		BaseMiningYield:          0.3,
		BaseForestryYield:        0.6,
		PopulationEfficiency:     0.75,
		PopulationGrowth:         0.8,
	},
	TerrainMountain: {
		Type:                     TerrainMountain,
		Name:                     "Mountain",
		BuildableRatio:           0.4,
		ConstructionCostModifier: 1.7,
		BaseAgricultureYield:     0.3,
		BaseMiningYield:          1.2,
		BaseForestryYield:        0.4,
		PopulationEfficiency:     0.7,
		PopulationGrowth:         0.7,
	},
}
