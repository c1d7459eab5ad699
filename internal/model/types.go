// Package model defines the simulation's domain types and static catalogs:
// eras, buildings, production methods, technologies, goods and terrain.
// Catalog tables are immutable; callers must copy values before mutating.
package model

// Era identifies a stage of civilizational progress.
type Era string

const (
	EraStoneAge    Era = "stone_age"
	EraBronzeAge   Era = "bronze_age"
	EraIronAge     Era = "iron_age"
	EraClassical   Era = "classical"
	EraMedieval    Era = "medieval"
	EraRenaissance Era = "renaissance"
	EraIndustrial  Era = "industrial"
	EraElectrical  Era = "electrical"
	EraInformation Era = "information"
	EraAIAge       Era = "ai_age"
)

// Eras lists all eras in progression order.
var Eras = []Era{
	EraStoneAge,
	EraBronzeAge,
	EraIronAge,
	EraClassical,
	EraMedieval,
	EraRenaissance,
	EraIndustrial,
	EraElectrical,
	EraInformation,
	EraAIAge,
}

// Index returns the era's position in the progression order, or -1.
func (e Era) Index() int {
	for i, era := range Eras {
		if era == e {
			return i
		}
	}
	return -1
}

// BuildingType identifies a building category.
type BuildingType string

const (
	BuildingFarm          BuildingType = "farm"
	BuildingRanch         BuildingType = "ranch"
	BuildingForestry      BuildingType = "forestry"
	BuildingFishery       BuildingType = "fishery"
	BuildingQuarry        BuildingType = "quarry"
	BuildingMine          BuildingType = "mine"
	BuildingWorkshop      BuildingType = "workshop"
	BuildingFactory       BuildingType = "factory"
	BuildingModernFactory BuildingType = "modern_factory"
	BuildingWarehouse     BuildingType = "warehouse"
	BuildingMarket        BuildingType = "market"
	BuildingPort          BuildingType = "port"
	BuildingTrainStation  BuildingType = "train_station"
	BuildingAcademy       BuildingType = "academy"
	BuildingUniversity    BuildingType = "university"
	BuildingLaboratory    BuildingType = "laboratory"
)

// GoodsClass categorizes goods by their role in production chains.
type GoodsClass string

const (
	GoodsRawMaterial  GoodsClass = "raw_material"
	GoodsIntermediate GoodsClass = "intermediate"
	GoodsFinal        GoodsClass = "final"
	GoodsLuxury       GoodsClass = "luxury"
	GoodsMilitary     GoodsClass = "military"
)

// AgeGroup partitions a population by age bracket.
type AgeGroup string

const (
	AgeChild AgeGroup = "child"
	AgeAdult AgeGroup = "adult"
	AgeElder AgeGroup = "elder"
)

// EducationLevel ranks a population group's schooling.
type EducationLevel string

const (
	EducationIlliterate   EducationLevel = "illiterate"
	EducationBasic        EducationLevel = "basic"
	EducationPrimary      EducationLevel = "primary"
	EducationSecondary    EducationLevel = "secondary"
	EducationUniversity   EducationLevel = "university"
	EducationPostgraduate EducationLevel = "postgraduate"
)

// SocialClass ranks a population group's economic standing.
type SocialClass string

const (
	ClassElite  SocialClass = "elite"
	ClassMiddle SocialClass = "middle"
	ClassWorker SocialClass = "worker"
	ClassPoor   SocialClass = "poor"
)

// EmploymentStatus tracks whether a population group works.
type EmploymentStatus string

const (
	Employed   EmploymentStatus = "employed"
	Unemployed EmploymentStatus = "unemployed"
	Retired    EmploymentStatus = "retired"
)

// TerrainType identifies a terrain class within a tile's composition.
type TerrainType string

const (
	TerrainPlains   TerrainType = "plains"
	TerrainForest   TerrainType = "forest"
	TerrainHills    TerrainType = "hills"
	TerrainWater    TerrainType = "water"
	TerrainDesert   TerrainType = "desert"
	TerrainSnow     TerrainType = "snow"
	TerrainSwamp    TerrainType = "swamp"
	TerrainMountain TerrainType = "mountain"
)

// TransportType identifies a mode of goods transport.
type TransportType string

const (
	TransportFoot    TransportType = "foot"
	TransportCart    TransportType = "cart"
	TransportRoad    TransportType = "road"
	TransportRailway TransportType = "railway"
	TransportHighway TransportType = "highway"
	TransportAirport TransportType = "airport"
	TransportPort    TransportType = "port"
)

// DepositRichness grades a resource deposit.
type DepositRichness string

const (
	RichnessTrace    DepositRichness = "trace"
	RichnessPoor     DepositRichness = "poor"
	RichnessNormal   DepositRichness = "normal"
	RichnessRich     DepositRichness = "rich"
	RichnessVeryRich DepositRichness = "very_rich"
)

// GameDate is the simulation calendar: 12 months of 30 days each.
// Elapsed-day arithmetic uses a 365-day year approximation; the tick
// reducer depends on that exact convention.
type GameDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewGameDate builds a GameDate.
func NewGameDate(year, month, day int) GameDate {
	return GameDate{Year: year, Month: month, Day: day}
}

// TotalDays returns elapsed days under the year*365 + (month-1)*30 + day
// convention.
func (d GameDate) TotalDays() int {
	return d.Year*365 + (d.Month-1)*30 + d.Day
}

// Before reports whether d is strictly earlier than o.
func (d GameDate) Before(o GameDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d is strictly later than o.
func (d GameDate) After(o GameDate) bool {
	return o.Before(d)
}
