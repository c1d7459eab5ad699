package state

import (
	"sort"

	"github.com/talgya/epochs/internal/model"
)

// Selectors are pure reads over a GameState snapshot. They never
// mutate the state and are safe on any snapshot the provider hands out.

// TotalPopulation sums every tile's population count.
func TotalPopulation(s *model.GameState) int {
	total := 0
	for _, pop := range s.Populations {
		total += pop.TotalPopulation
	}
	return total
}

// EmployedPopulation sums employed people across tiles.
func EmployedPopulation(s *model.GameState) int {
	total := 0
	for _, pop := range s.Populations {
		total += pop.Employment.Employed
	}
	return total
}

// UnemployedPopulation sums unemployed people across tiles.
func UnemployedPopulation(s *model.GameState) int {
	total := 0
	for _, pop := range s.Populations {
		total += pop.Employment.Unemployed
	}
	return total
}

// EmploymentRate returns employed people as a percentage of the total
// population, 0 for an empty world.
func EmploymentRate(s *model.GameState) float64 {
	total := TotalPopulation(s)
	if total == 0 {
		return 0
	}
	return float64(EmployedPopulation(s)) / float64(total) * 100
}

// TotalBuildings counts every building.
func TotalBuildings(s *model.GameState) int {
	return len(s.Buildings)
}

// BuildingsByType groups buildings by their catalog type.
func BuildingsByType(s *model.GameState) map[model.BuildingType][]*model.Building {
	out := make(map[model.BuildingType][]*model.Building)
	for _, b := range s.Buildings {
		out[b.Type] = append(out[b.Type], b)
	}
	return out
}

// BuildingWorkers sums the sizes of the population groups assigned to a
// building.
func BuildingWorkers(s *model.GameState, buildingID string) int {
	total := 0
	for _, pop := range s.Populations {
		for _, g := range pop.Groups {
			if g.Workplace == buildingID {
				total += g.Size
			}
		}
	}
	return total
}

// TotalWorkers sums CurrentWorkers across buildings.
func TotalWorkers(s *model.GameState) int {
	total := 0
	for _, b := range s.Buildings {
		total += b.CurrentWorkers
	}
	return total
}

// AverageWage returns the population-weighted mean wage.
func AverageWage(s *model.GameState) float64 {
	var wageSum float64
	var people int
	for _, pop := range s.Populations {
		for _, g := range pop.Groups {
			wageSum += g.Wage * float64(g.Size)
			people += g.Size
		}
	}
	if people == 0 {
		return 0
	}
	return wageSum / float64(people)
}

// AverageLivingStandard returns the mean of per-tile living standards.
func AverageLivingStandard(s *model.GameState) float64 {
	if len(s.Populations) == 0 {
		return 0
	}
	var sum float64
	for _, pop := range s.Populations {
		sum += pop.AverageLivingStandard
	}
	return sum / float64(len(s.Populations))
}

// TotalMoney returns the player's liquid money.
func TotalMoney(s *model.GameState) float64 {
	return s.Resources.Money
}

// GoodsCount returns the player's held amount of one good.
func GoodsCount(s *model.GameState, goodsID string) float64 {
	return s.Resources.Goods[goodsID]
}

// AllGoods returns the player's goods holdings as a sorted id list.
func AllGoods(s *model.GameState) []string {
	ids := make([]string, 0, len(s.Resources.Goods))
	for id := range s.Resources.Goods {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarketPrice returns the current price of a good on a market, 0 when
// the market or price entry is missing.
func MarketPrice(s *model.GameState, marketID, goodsID string) float64 {
	market, ok := s.Markets[marketID]
	if !ok {
		return 0
	}
	price, ok := market.Prices[goodsID]
	if !ok {
		return 0
	}
	return price.CurrentPrice
}

// MarketSupply returns a good's supply on a market.
func MarketSupply(s *model.GameState, marketID, goodsID string) float64 {
	if market, ok := s.Markets[marketID]; ok {
		return market.Supply[goodsID]
	}
	return 0
}

// MarketDemand returns a good's demand on a market.
func MarketDemand(s *model.GameState, marketID, goodsID string) float64 {
	if market, ok := s.Markets[marketID]; ok {
		return market.Demand[goodsID]
	}
	return 0
}

// ResearchedTechs returns the researched technology ids, sorted.
func ResearchedTechs(s *model.GameState) []string {
	ids := make([]string, 0, len(s.Technologies))
	for id := range s.Technologies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsTechResearched reports whether a technology is owned.
func IsTechResearched(s *model.GameState, techID string) bool {
	_, ok := s.Technologies[techID]
	return ok
}

// ResearchProgress returns the active research progress, 0 when idle.
func ResearchProgress(s *model.GameState) float64 {
	if s.ResearchQueue.Current == nil {
		return 0
	}
	return s.ResearchQueue.Current.Progress
}

// TotalPopulationByAge aggregates the age distribution across tiles.
func TotalPopulationByAge(s *model.GameState) model.AgeDistribution {
	var dist model.AgeDistribution
	for _, pop := range s.Populations {
		dist.Children += pop.AgeDistribution.Children
		dist.Adults += pop.AgeDistribution.Adults
		dist.Elders += pop.AgeDistribution.Elders
	}
	return dist
}

// PopulationBySocialClass aggregates class counts across tiles.
func PopulationBySocialClass(s *model.GameState) map[model.SocialClass]int {
	out := make(map[model.SocialClass]int)
	for _, pop := range s.Populations {
		for class, count := range pop.ClassDistribution {
			out[class] += count
		}
	}
	return out
}

// NotificationsByType filters notifications by kind, preserving order.
func NotificationsByType(s *model.GameState, kind model.NotificationKind) []model.Notification {
	var out []model.Notification
	for _, n := range s.Notifications {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// RecentNotifications returns up to limit notifications, newest first.
func RecentNotifications(s *model.GameState, limit int) []model.Notification {
	n := len(s.Notifications)
	if limit > n {
		limit = n
	}
	out := make([]model.Notification, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.Notifications[i])
	}
	return out
}

// BuildingEfficiency scores a building's staffing and level:
// min(1, workers/baseWorkers) * level, 0 for an unstaffed building.
func BuildingEfficiency(s *model.GameState, buildingID string) float64 {
	b, ok := s.Buildings[buildingID]
	if !ok || b.CurrentWorkers == 0 || b.BaseWorkers == 0 {
		return 0
	}
	staffing := float64(b.CurrentWorkers) / float64(b.BaseWorkers)
	if staffing > 1 {
		staffing = 1
	}
	return staffing * float64(b.Level)
}

// ProductionCapacity maps each building to baseThroughput scaled by its
// staffing efficiency.
func ProductionCapacity(s *model.GameState) map[string]float64 {
	out := make(map[string]float64, len(s.Buildings))
	for id, b := range s.Buildings {
		out[id] = b.BaseThroughput * BuildingEfficiency(s, id)
	}
	return out
}

// Progress summarizes the game's overall position.
type Progress struct {
	Era       model.Era
	Year      int
	TotalDays int
}

// GameProgress returns era, year and a coarse day count. The day count
// uses a whole-month approximation and is for display only.
func GameProgress(s *model.GameState) Progress {
	return Progress{
		Era:       s.Era,
		Year:      s.Date.Year,
		TotalDays: s.Date.Year*365 + s.Date.Month*30 + s.Date.Day,
	}
}
