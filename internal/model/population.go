package model

// GroupNeeds breaks down a population group's income requirements.
type GroupNeeds struct {
	Survival float64 `json:"survival"`
	Basic    float64 `json:"basic"`
	Improved float64 `json:"improved"`
	Luxury   float64 `json:"luxury"`
}

// Total returns the sum of all need tiers.
func (n GroupNeeds) Total() float64 {
	return n.Survival + n.Basic + n.Improved + n.Luxury
}

// PopulationGroup is a homogeneous cohort within a tile's population.
type PopulationGroup struct {
	ID             string           `json:"id"`
	Size           int              `json:"size"`
	AgeGroup       AgeGroup         `json:"age_group"`
	Education      EducationLevel   `json:"education"`
	SocialClass    SocialClass      `json:"social_class"`
	Employment     EmploymentStatus `json:"employment"`
	Workplace      string           `json:"workplace,omitempty"`
	Profession     string           `json:"profession,omitempty"`
	Wage           float64          `json:"wage"`
	Wealth         float64          `json:"wealth"`
	LivingStandard float64          `json:"living_standard"`
	Needs          GroupNeeds       `json:"needs"`
}

// AgeDistribution counts a population by age bracket.
type AgeDistribution struct {
	Children int `json:"children"`
	Adults   int `json:"adults"`
	Elders   int `json:"elders"`
}

// EmploymentStats aggregates the labor state of a population.
type EmploymentStats struct {
	Total      int `json:"total"`
	Employed   int `json:"employed"`
	Unemployed int `json:"unemployed"`
	Retired    int `json:"retired"`
}

// Population is the aggregate population of one tile.
type Population struct {
	ID                    string                 `json:"id"`
	TileID                string                 `json:"tile_id"`
	TotalPopulation       int                    `json:"total_population"`
	Groups                []PopulationGroup      `json:"groups"`
	AgeDistribution       AgeDistribution        `json:"age_distribution"`
	EducationDistribution map[EducationLevel]int `json:"education_distribution"`
	ClassDistribution     map[SocialClass]int    `json:"class_distribution"`
	Employment            EmploymentStats        `json:"employment"`
	AverageWage           float64                `json:"average_wage"`
	AverageLivingStandard float64                `json:"average_living_standard"`
	BirthRate             float64                `json:"birth_rate"`
	DeathRate             float64                `json:"death_rate"`
	NetMigration          float64                `json:"net_migration"`
}
