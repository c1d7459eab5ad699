package model

// ProductionMethod describes one way a building can convert inputs to
// outputs. Input/output amounts are per unit of adjusted throughput.
type ProductionMethod struct {
	ID                 string
	Name               string
	BuildingType       BuildingType
	RequiredTech       []string
	RequiredEra        Era
	Inputs             map[string]float64
	Outputs            map[string]float64
	ThroughputModifier float64
	WorkerEfficiency   float64
	Pollution          float64
	AutomationLevel    float64
}

// ProductionMethods is the static production method catalog.
var ProductionMethods = map[string]ProductionMethod{
	"gathering": {
		ID:                 "gathering",
		Name:               "Gathering",
		BuildingType:       BuildingForestry,
		RequiredEra:        EraStoneAge,
		Inputs:             map[string]float64{},
		Outputs:            map[string]float64{"wood": 5},
		ThroughputModifier: 0.6,
		WorkerEfficiency:   0.7,
		Pollution:          0.05,
		AutomationLevel:    0,
	},
	"logging": {
		ID:                 "logging",
		Name:               "Logging",
		BuildingType:       BuildingForestry,
		RequiredTech:       []string{"tools"},
		RequiredEra:        EraBronzeAge,
		Inputs:             map[string]float64{"stone": 1},
		Outputs:            map[string]float64{"wood": 15},
		ThroughputModifier: 1.2,
		WorkerEfficiency:   1.0,
		Pollution:          0.1,
		AutomationLevel:    0.1,
	},
	"modern_forestry": {
		ID:                 "modern_forestry",
		Name:               "Modern Forestry",
		BuildingType:       BuildingForestry,
		RequiredTech:       []string{"chainsaw", "sustainability"},
		RequiredEra:        EraIndustrial,
		Inputs:             map[string]float64{"steel": 2, "oil": 1},
		Outputs:            map[string]float64{"wood": 50},
		ThroughputModifier: 2.0,
		WorkerEfficiency:   1.8,
		Pollution:          0.15,
		AutomationLevel:    0.6,
	},
	"fishing": {
		ID:                 "fishing",
		Name:               "Fishing",
		BuildingType:       BuildingFishery,
		RequiredEra:        EraStoneAge,
		Inputs:             map[string]float64{"wood": 1},
		Outputs:            map[string]float64{"food": 8},
		ThroughputModifier: 0.5,
		WorkerEfficiency:   0.8,
		Pollution:          0.05,
		AutomationLevel:    0,
	},
	"aquaculture": {
		ID:                 "aquaculture",
		Name:               "Aquaculture",
		BuildingType:       BuildingFishery,
		RequiredTech:       []string{"biology"},
		RequiredEra:        EraRenaissance,
		Inputs:             map[string]float64{"wood": 2},
		Outputs:            map[string]float64{"food": 25},
		ThroughputModifier: 1.5,
		WorkerEfficiency:   1.2,
		Pollution:          0.1,
		AutomationLevel:    0.3,
	},
	"modern_fishing": {
		ID:                 "modern_fishing",
		Name:               "Modern Fishing",
		BuildingType:       BuildingFishery,
		RequiredTech:       []string{"radar", "freezing"},
		RequiredEra:        EraIndustrial,
		Inputs:             map[string]float64{"steel": 3, "oil": 2},
		Outputs:            map[string]float64{"food": 60},
		ThroughputModifier: 2.5,
		WorkerEfficiency:   1.8,
		Pollution:          0.2,
		AutomationLevel:    0.7,
	},
	"manual_mining": {
		ID:                 "manual_mining",
		Name:               "Manual Quarrying",
		BuildingType:       BuildingQuarry,
		RequiredEra:        EraStoneAge,
		Inputs:             map[string]float64{"wood": 2},
		Outputs:            map[string]float64{"stone": 8},
		ThroughputModifier: 0.5,
		WorkerEfficiency:   0.7,
		Pollution:          0.1,
		AutomationLevel:    0,
	},
	"mechanized_quarry": {
		ID:                 "mechanized_quarry",
		Name:               "Mechanized Quarry",
		BuildingType:       BuildingQuarry,
		RequiredTech:       []string{"explosives", "mechanics"},
		RequiredEra:        EraIndustrial,
		Inputs:             map[string]float64{"steel": 3, "coal": 2},
		Outputs:            map[string]float64{"stone": 40},
		ThroughputModifier: 1.8,
		WorkerEfficiency:   1.5,
		Pollution:          0.3,
		AutomationLevel:    0.5,
	},
	"surface_mining": {
		ID:                 "surface_mining",
		Name:               "Surface Mining",
		BuildingType:       BuildingMine,
		RequiredEra:        EraBronzeAge,
		Inputs:             map[string]float64{"wood": 3, "stone": 2},
		Outputs:            map[string]float64{"iron": 5},
		ThroughputModifier: 0.8,
		WorkerEfficiency:   0.9,
		Pollution:          0.2,
		AutomationLevel:    0.1,
	},
	"underground_mining": {
		ID:                 "underground_mining",
		Name:               "Underground Mining",
		BuildingType:       BuildingMine,
		RequiredTech:       []string{"tools", "steam_engine"},
		RequiredEra:        EraIndustrial,
		Inputs:             map[string]float64{"wood": 5, "steel": 2, "coal": 3},
		Outputs:            map[string]float64{"iron": 20, "coal": 10},
		ThroughputModifier: 1.5,
		WorkerEfficiency:   1.2,
		Pollution:          0.4,
		AutomationLevel:    0.3,
	},
	"modern_mining": {
		ID:                 "modern_mining",
		Name:               "Modern Mining",
		BuildingType:       BuildingMine,
		RequiredTech:       []string{"electricity", "drilling"},
		RequiredEra:        EraElectrical,
		Inputs:             map[string]float64{"steel": 5, "oil": 4},
		Outputs:            map[string]float64{"iron": 40, "coal": 25},
		ThroughputModifier: 2.2,
		WorkerEfficiency:   1.6,
		Pollution:          0.35,
		AutomationLevel:    0.7,
	},
	"grazing": {
		ID:                 "grazing",
		Name:               "Grazing",
		BuildingType:       BuildingRanch,
		RequiredEra:        EraStoneAge,
		Inputs:             map[string]float64{},
		Outputs:            map[string]float64{"food": 5},
		ThroughputModifier: 0.4,
		WorkerEfficiency:   0.7,
		Pollution:          0.05,
		AutomationLevel:    0,
	},
	"livestock": {
		ID:                 "livestock",
		Name:               "Livestock",
		BuildingType:       BuildingRanch,
		RequiredTech:       []string{"domestication"},
		RequiredEra:        EraBronzeAge,
		Inputs:             map[string]float64{"grain": 5},
		Outputs:            map[string]float64{"food": 20},
		ThroughputModifier: 0.9,
		WorkerEfficiency:   1.0,
		Pollution:          0.1,
		AutomationLevel:    0.1,
	},
	"intensive_ranching": {
		ID:                 "intensive_ranching",
		Name:               "Intensive Ranching",
		BuildingType:       BuildingRanch,
		RequiredTech:       []string{"fertilizer", "biology"},
		RequiredEra:        EraIndustrial,
		Inputs:             map[string]float64{"grain": 15, "steel": 2},
		Outputs:            map[string]float64{"food": 50},
		ThroughputModifier: 1.8,
		WorkerEfficiency:   1.4,
		Pollution:          0.25,
		AutomationLevel:    0.5,
	},
	"slash_burn": {
		ID:                 "slash_burn",
		Name:               "Slash and Burn",
		BuildingType:       BuildingFarm,
		RequiredEra:        EraStoneAge,
		Inputs:             map[string]float64{"wood": 1},
		Outputs:            map[string]float64{"grain": 10},
		ThroughputModifier: 0.5,
		WorkerEfficiency:   0.8,
		Pollution:          0.1,
		AutomationLevel:    0,
	},
	"plowing": {
		ID:                 "plowing",
		Name:               "Animal Plowing",
		BuildingType:       BuildingFarm,
		RequiredTech:       []string{"domestication"},
		RequiredEra:        EraBronzeAge,
		Inputs:             map[string]float64{"wood": 2},
		Outputs:            map[string]float64{"grain": 20},
		ThroughputModifier: 0.8,
		WorkerEfficiency:   1.0,
		Pollution:          0.15,
		AutomationLevel:    0.1,
	},
	"mechanized": {
		ID:                 "mechanized",
		Name:               "Mechanized Farming",
		BuildingType:       BuildingFarm,
		RequiredTech:       []string{"steam_engine", "mechanics"},
		RequiredEra:        EraIndustrial,
		Inputs:             map[string]float64{"steel": 5, "coal": 2},
		Outputs:            map[string]float64{"grain": 50},
		ThroughputModifier: 1.5,
		WorkerEfficiency:   1.5,
		Pollution:          0.3,
		AutomationLevel:    0.5,
	},
	"modern": {
		ID:                 "modern",
		Name:               "Modern Agriculture",
		BuildingType:       BuildingFarm,
		RequiredTech:       []string{"electricity", "fertilizer"},
		RequiredEra:        EraInformation,
		Inputs:             map[string]float64{"steel": 3, "oil": 2},
		Outputs:            map[string]float64{"grain": 100},
		ThroughputModifier: 2.0,
		WorkerEfficiency:   2.0,
		Pollution:          0.2,
		AutomationLevel:    0.8,
	},
	"handcraft": {
		ID:                 "handcraft",
		Name:               "Handcraft",
		BuildingType:       BuildingWorkshop,
		RequiredEra:        EraStoneAge,
		Inputs:             map[string]float64{},
		Outputs:            map[string]float64{},
		ThroughputModifier: 0.5,
		WorkerEfficiency:   0.7,
		Pollution:          0.05,
		AutomationLevel:    0,
	},
	"steam_power": {
		ID:                 "steam_power",
		Name:               "Steam Power",
		BuildingType:       BuildingFactory,
		RequiredTech:       []string{"steam_engine"},
		RequiredEra:        EraIndustrial,
		Inputs:             map[string]float64{"coal": 10},
		Outputs:            map[string]float64{"steel": 5},
		ThroughputModifier: 1.0,
		WorkerEfficiency:   1.0,
		Pollution:          0.5,
		AutomationLevel:    0.2,
	},
	"assembly_line": {
		ID:                 "assembly_line",
		Name:               "Assembly Line",
		BuildingType:       BuildingFactory,
		RequiredTech:       []string{"electricity", "assembly_line_tech"},
		RequiredEra:        EraElectrical,
		Inputs:             map[string]float64{"coal": 15, "steel": 2},
		Outputs:            map[string]float64{"steel": 15},
		ThroughputModifier: 1.8,
		WorkerEfficiency:   1.3,
		Pollution:          0.4,
		AutomationLevel:    0.5,
	},
	"automation": {
		ID:                 "automation",
		Name:               "Automated Production",
		BuildingType:       BuildingFactory,
		RequiredTech:       []string{"computer", "robotics"},
		RequiredEra:        EraInformation,
		Inputs:             map[string]float64{"oil": 20, "steel": 3},
		Outputs:            map[string]float64{"steel": 25},
		ThroughputModifier: 2.2,
		WorkerEfficiency:   1.8,
		Pollution:          0.3,
		AutomationLevel:    0.8,
	},
	"smart": {
		ID:                 "smart",
		Name:               "Smart Manufacturing",
		BuildingType:       BuildingFactory,
		RequiredTech:       []string{"ai", "advanced_robotics"},
		RequiredEra:        EraAIAge,
		Inputs:             map[string]float64{"oil": 15, "steel": 2},
		Outputs:            map[string]float64{"steel": 40},
		ThroughputModifier: 3.0,
		WorkerEfficiency:   2.5,
		Pollution:          0.1,
		AutomationLevel:    0.95,
	},
}
