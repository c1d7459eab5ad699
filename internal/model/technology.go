package model

// Technology is a static research catalog entry.
type Technology struct {
	ID            string
	Name          string
	Description   string
	Era           Era
	Prerequisites []string
	ResearchCost  float64
	MoneyCost     float64
	GoodsCost     map[string]float64
	BaseTime      int
	Unlocks       TechUnlocks
	Effects       []TechEffect
}

// TechUnlocks lists content gated behind a technology.
type TechUnlocks struct {
	Buildings         []string
	ProductionMethods []string
	Goods             []string
	Policies          []string
}

// TechEffect is a passive modifier granted by a technology.
type TechEffect struct {
	Type     string // production_efficiency, military, population, economy, research
	Target   string
	Modifier float64
}

// CurrentResearch is the active slot of a research queue.
type CurrentResearch struct {
	Tech                string   `json:"tech"`
	Progress            float64  `json:"progress"`
	EstimatedCompletion GameDate `json:"estimated_completion"`
}

// ResearchQueue holds the active research slot and the pending FIFO queue.
type ResearchQueue struct {
	Current       *CurrentResearch `json:"current"`
	Queue         []string         `json:"queue"`
	ResearchSpeed float64          `json:"research_speed"`
}

// Technologies is the static technology catalog.
var Technologies = map[string]Technology{
	"stone_tool": {
		ID:            "stone_tool",
		Name:          "Stone Tools",
		Description:   "Shape stone into tools, improving hunting and gathering",
		Era:           EraStoneAge,
		Prerequisites: []string{},
		ResearchCost:  50,
		MoneyCost:     0,
		GoodsCost:     map[string]float64{},
		BaseTime:      30,
		Effects: []TechEffect{
			{Type: "production_efficiency", Target: "hunter_gatherer", Modifier: 0.1},
		},
	},
	"domestication": {
		ID:            "domestication",
		Name:          "Domestication",
		Description:   "Tame animals and begin husbandry",
		Era:           EraBronzeAge,
		Prerequisites: []string{"stone_tool"},
		ResearchCost:  100,
		MoneyCost:     0,
		GoodsCost:     map[string]float64{},
		BaseTime:      60,
		Unlocks:       TechUnlocks{ProductionMethods: []string{"plowing"}},
		Effects: []TechEffect{
			{Type: "production_efficiency", Target: "ranch", Modifier: 0.2},
		},
	},
	"metal_smelting": {
		ID:            "metal_smelting",
		Name:          "Metal Smelting",
		Description:   "Smelt copper and tin into bronze",
		Era:           EraBronzeAge,
		Prerequisites: []string{"domestication"},
		ResearchCost:  200,
		MoneyCost:     0,
		GoodsCost:     map[string]float64{},
		BaseTime:      90,
		Unlocks:       TechUnlocks{Buildings: []string{"mine", "workshop"}},
	},
	"iron_smelting": {
		ID:            "iron_smelting",
		Name:          "Iron Smelting",
		Description:   "Smelt iron for stronger tools and weapons",
		Era:           EraIronAge,
		Prerequisites: []string{"metal_smelting"},
		ResearchCost:  400,
		MoneyCost:     0,
		GoodsCost:     map[string]float64{},
		BaseTime:      120,
		Effects:       []TechEffect{{Type: "military", Modifier: 0.3}},
	},
	"mechanics": {
		ID:            "mechanics",
		Name:          "Mechanics",
		Description:   "Understand mechanical principles, laying the ground for industry",
		Era:           EraIndustrial,
		Prerequisites: []string{"iron_smelting"},
		ResearchCost:  1000,
		MoneyCost:     500,
		GoodsCost:     map[string]float64{"iron": 100},
		BaseTime:      200,
		Effects:       []TechEffect{{Type: "production_efficiency", Modifier: 0.2}},
	},
	"coal_mining": {
		ID:            "coal_mining",
		Name:          "Coal Mining",
		Description:   "Extract coal at scale to fuel steam engines",
		Era:           EraIndustrial,
		Prerequisites: []string{"iron_smelting"},
		ResearchCost:  800,
		MoneyCost:     300,
		GoodsCost:     map[string]float64{"iron": 50},
		BaseTime:      150,
	},
	"steam_engine": {
		ID:            "steam_engine",
		Name:          "Steam Engine",
		Description:   "Harness steam and start the industrial revolution",
		Era:           EraIndustrial,
		Prerequisites: []string{"mechanics", "coal_mining"},
		ResearchCost:  2000,
		MoneyCost:     1000,
		GoodsCost:     map[string]float64{"iron": 200, "coal": 100},
		BaseTime:      300,
		Unlocks: TechUnlocks{
			Buildings:         []string{"factory"},
			ProductionMethods: []string{"steam_power", "mechanized"},
		},
		Effects: []TechEffect{{Type: "production_efficiency", Modifier: 0.5}},
	},
	"physics": {
		ID:            "physics",
		Name:          "Physics",
		Description:   "Formalize the laws of electricity and magnetism",
		Era:           EraElectrical,
		Prerequisites: []string{"steam_engine"},
		ResearchCost:  2500,
		MoneyCost:     1500,
		GoodsCost:     map[string]float64{"steel": 100},
		BaseTime:      250,
		Effects:       []TechEffect{{Type: "research", Modifier: 0.3}},
	},
	"electricity": {
		ID:            "electricity",
		Name:          "Electricity",
		Description:   "Generate and distribute electrical power",
		Era:           EraElectrical,
		Prerequisites: []string{"steam_engine", "physics"},
		ResearchCost:  3000,
		MoneyCost:     2000,
		GoodsCost:     map[string]float64{"steel": 200, "coal": 150},
		BaseTime:      350,
		Unlocks: TechUnlocks{
			Buildings:         []string{"modern_factory"},
			ProductionMethods: []string{"assembly_line", "modern"},
		},
		Effects: []TechEffect{{Type: "economy", Modifier: 0.4}},
	},
	"assembly_line_tech": {
		ID:            "assembly_line_tech",
		Name:          "Assembly Line",
		Description:   "Organize production into continuous lines",
		Era:           EraElectrical,
		Prerequisites: []string{"electricity"},
		ResearchCost:  3500,
		MoneyCost:     2500,
		GoodsCost:     map[string]float64{"steel": 300, "oil": 100},
		BaseTime:      400,
		Unlocks:       TechUnlocks{ProductionMethods: []string{"assembly_line"}},
		Effects:       []TechEffect{{Type: "production_efficiency", Modifier: 0.3}},
	},
	"electronics": {
		ID:            "electronics",
		Name:          "Electronics",
		Description:   "Build electronic devices, the seed of the information age",
		Era:           EraInformation,
		Prerequisites: []string{"electricity"},
		ResearchCost:  4000,
		MoneyCost:     3000,
		GoodsCost:     map[string]float64{"steel": 200, "oil": 150},
		BaseTime:      450,
		Effects:       []TechEffect{{Type: "research", Modifier: 0.4}},
	},
	"computer": {
		ID:            "computer",
		Name:          "Computer",
		Description:   "Invent the programmable computer",
		Era:           EraInformation,
		Prerequisites: []string{"electricity", "electronics"},
		ResearchCost:  5000,
		MoneyCost:     4000,
		GoodsCost:     map[string]float64{"steel": 300, "oil": 200},
		BaseTime:      500,
		Unlocks:       TechUnlocks{ProductionMethods: []string{"automation"}},
		Effects:       []TechEffect{{Type: "research", Modifier: 0.5}},
	},
	"fertilizer": {
		ID:            "fertilizer",
		Name:          "Fertilizer",
		Description:   "Synthesize fertilizer, multiplying farm yields",
		Era:           EraInformation,
		Prerequisites: []string{"electricity", "chemistry"},
		ResearchCost:  3000,
		MoneyCost:     2000,
		GoodsCost:     map[string]float64{"steel": 100, "oil": 100},
		BaseTime:      400,
		Unlocks:       TechUnlocks{ProductionMethods: []string{"modern"}},
		Effects:       []TechEffect{{Type: "population", Modifier: 0.3}},
	},
	"machine_learning": {
		ID:            "machine_learning",
		Name:          "Machine Learning",
		Description:   "Develop statistical learning algorithms",
		Era:           EraAIAge,
		Prerequisites: []string{"computer"},
		ResearchCost:  8000,
		MoneyCost:     5000,
		GoodsCost:     map[string]float64{"steel": 500, "oil": 300},
		BaseTime:      700,
		Effects:       []TechEffect{{Type: "research", Modifier: 0.6}},
	},
	"advanced_robotics": {
		ID:            "advanced_robotics",
		Name:          "Advanced Robotics",
		Description:   "Deploy robots for high-automation production",
		Era:           EraAIAge,
		Prerequisites: []string{"machine_learning"},
		ResearchCost:  9000,
		MoneyCost:     6000,
		GoodsCost:     map[string]float64{"steel": 600, "oil": 400},
		BaseTime:      800,
		Unlocks:       TechUnlocks{ProductionMethods: []string{"smart"}},
		Effects:       []TechEffect{{Type: "production_efficiency", Modifier: 0.8}},
	},
	"ai": {
		ID:            "ai",
		Name:          "Artificial Intelligence",
		Description:   "Develop general-purpose artificial intelligence",
		Era:           EraAIAge,
		Prerequisites: []string{"computer", "machine_learning"},
		ResearchCost:  10000,
		MoneyCost:     8000,
		GoodsCost:     map[string]float64{"steel": 800, "oil": 500},
		BaseTime:      1000,
		Effects: []TechEffect{
			{Type: "research", Modifier: 1.0},
			{Type: "production_efficiency", Modifier: 1.0},
		},
	},
}
