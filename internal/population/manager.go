// Package population manages tile populations: cohort distribution,
// wages and needs, employment assignment and demographic growth.
package population

import (
	"math"

	"github.com/google/uuid"

	"github.com/talgya/epochs/internal/model"
)

const baseWage = 10.0

// ageRatios splits a population across age brackets.
var ageRatios = []struct {
	Age   model.AgeGroup
	Ratio float64
}{
	{model.AgeChild, 0.2},
	{model.AgeAdult, 0.6},
	{model.AgeElder, 0.2},
}

// educationRatios splits a population across schooling levels. The
// postgraduate tier is not seeded by distribution; it only appears
// through explicit cohort additions.
var educationRatios = []struct {
	Education model.EducationLevel
	Ratio     float64
}{
	{model.EducationIlliterate, 0.3},
	{model.EducationBasic, 0.4},
	{model.EducationPrimary, 0.2},
	{model.EducationSecondary, 0.08},
	{model.EducationUniversity, 0.02},
}

// classRatios splits a population across social classes.
var classRatios = []struct {
	Class model.SocialClass
	Ratio float64
}{
	{model.ClassElite, 0.1},
	{model.ClassMiddle, 0.3},
	{model.ClassWorker, 0.5},
	{model.ClassPoor, 0.1},
}

var educationWageBonus = map[model.EducationLevel]float64{
	model.EducationIlliterate:   1.0,
	model.EducationBasic:        1.2,
	model.EducationPrimary:      1.5,
	model.EducationSecondary:    1.8,
	model.EducationUniversity:   2.5,
	model.EducationPostgraduate: 3.0,
}

var classWageMultiplier = map[model.SocialClass]float64{
	model.ClassElite:  2.0,
	model.ClassMiddle: 1.5,
	model.ClassWorker: 1.0,
	model.ClassPoor:   0.8,
}

// Wage returns the income of one member of a cohort.
func Wage(education model.EducationLevel, class model.SocialClass) float64 {
	return baseWage * educationWageBonus[education] * classWageMultiplier[class]
}

// Manager owns per-tile populations.
type Manager struct {
	populations map[string]*model.Population
}

// NewManager returns an empty population Manager.
func NewManager() *Manager {
	return &Manager{populations: make(map[string]*model.Population)}
}

// Get returns the population of a tile.
func (m *Manager) Get(tileID string) (*model.Population, bool) {
	p, ok := m.populations[tileID]
	return p, ok
}

// All returns every managed population.
func (m *Manager) All() []*model.Population {
	out := make([]*model.Population, 0, len(m.populations))
	for _, p := range m.populations {
		out = append(out, p)
	}
	return out
}

// Distribute seeds a tile with amount people spread across the standard
// age/education/class ratio grid. Cohorts that round to zero are
// skipped, so the realized total can fall short of amount.
func (m *Manager) Distribute(tileID string, amount int) *model.Population {
	pop := &model.Population{
		ID:        uuid.NewString(),
		TileID:    tileID,
		Groups:    []model.PopulationGroup{},
		BirthRate: 0.03,
		DeathRate: 0.02,
	}

	for _, age := range ageRatios {
		for _, edu := range educationRatios {
			for _, class := range classRatios {
				size := int(math.Floor(float64(amount) * age.Ratio * edu.Ratio * class.Ratio))
				if size == 0 {
					continue
				}
				pop.Groups = append(pop.Groups, newGroup(size, age.Age, edu.Education, class.Class))
			}
		}
	}

	m.populations[tileID] = pop
	m.UpdateStatistics(tileID)
	return pop
}

// Add merges a cohort into a tile's population. An existing group with
// the same age, education and class absorbs the size; otherwise a new
// group is appended.
func (m *Manager) Add(tileID string, amount int, age model.AgeGroup, education model.EducationLevel, class model.SocialClass) {
	pop, ok := m.populations[tileID]
	if !ok {
		pop = &model.Population{
			ID:        uuid.NewString(),
			TileID:    tileID,
			Groups:    []model.PopulationGroup{},
			BirthRate: 0.03,
			DeathRate: 0.02,
		}
		m.populations[tileID] = pop
	}

	merged := false
	for i := range pop.Groups {
		g := &pop.Groups[i]
		if g.AgeGroup == age && g.Education == education && g.SocialClass == class {
			g.Size += amount
			merged = true
			break
		}
	}
	if !merged {
		pop.Groups = append(pop.Groups, newGroup(amount, age, education, class))
	}
	m.UpdateStatistics(tileID)
}

// Remove drains amount people from a tile's population, group by group
// in order. Removing at least the whole population deletes it.
func (m *Manager) Remove(tileID string, amount int) {
	pop, ok := m.populations[tileID]
	if !ok {
		return
	}
	if amount >= pop.TotalPopulation {
		delete(m.populations, tileID)
		return
	}

	remaining := amount
	kept := pop.Groups[:0]
	for _, g := range pop.Groups {
		if remaining >= g.Size {
			remaining -= g.Size
			continue
		}
		g.Size -= remaining
		remaining = 0
		kept = append(kept, g)
	}
	pop.Groups = kept
	m.UpdateStatistics(tileID)
}

// Employ assigns amount people to a workplace, draining unemployed adult
// groups in order. It returns how many were actually placed.
func (m *Manager) Employ(tileID, workplaceID string, amount int) int {
	pop, ok := m.populations[tileID]
	if !ok {
		return 0
	}

	placed := 0
	var employedGroups []model.PopulationGroup
	for i := range pop.Groups {
		g := &pop.Groups[i]
		if placed >= amount {
			break
		}
		if g.AgeGroup != model.AgeAdult || g.Employment == model.Employed {
			continue
		}

		take := amount - placed
		if take > g.Size {
			take = g.Size
		}

		hired := *g
		hired.ID = uuid.NewString()
		hired.Size = take
		hired.Employment = model.Employed
		hired.Workplace = workplaceID
		employedGroups = append(employedGroups, hired)

		g.Size -= take
		placed += take
	}

	kept := pop.Groups[:0]
	for _, g := range pop.Groups {
		if g.Size > 0 {
			kept = append(kept, g)
		}
	}
	pop.Groups = append(kept, employedGroups...)
	m.UpdateStatistics(tileID)
	return placed
}

// Unemploy releases amount people from a workplace back into the
// unemployed pool. It returns how many were released.
func (m *Manager) Unemploy(tileID, workplaceID string, amount int) int {
	pop, ok := m.populations[tileID]
	if !ok {
		return 0
	}

	released := 0
	for i := range pop.Groups {
		g := &pop.Groups[i]
		if released >= amount {
			break
		}
		if g.Workplace != workplaceID || g.Employment != model.Employed {
			continue
		}

		take := amount - released
		if take >= g.Size {
			take = g.Size
			g.Employment = model.Unemployed
			g.Workplace = ""
		} else {
			idle := *g
			idle.ID = uuid.NewString()
			idle.Size = take
			idle.Employment = model.Unemployed
			idle.Workplace = ""
			g.Size -= take
			pop.Groups = append(pop.Groups, idle)
		}
		released += take
	}

	m.UpdateStatistics(tileID)
	return released
}

// UpdateNeeds recomputes each group's tiered needs from its wage and
// derives the population's average living standard as the mean ratio of
// affordable needs to total needs.
func (m *Manager) UpdateNeeds(tileID string) {
	pop, ok := m.populations[tileID]
	if !ok {
		return
	}

	var standardSum float64
	var counted int
	for i := range pop.Groups {
		g := &pop.Groups[i]
		g.Needs = model.GroupNeeds{
			Survival: g.Wage * 0.4,
			Basic:    g.Wage * 0.3,
			Improved: g.Wage * 0.2,
			Luxury:   g.Wage * 0.1,
		}
		total := g.Needs.Total()
		if total <= 0 {
			continue
		}
		standard := math.Min(g.Wage, total) / total
		g.LivingStandard = standard
		standardSum += standard
		counted++
	}

	if counted > 0 {
		pop.AverageLivingStandard = standardSum / float64(counted)
	} else {
		pop.AverageLivingStandard = 0
	}
}

// Growth returns the net population change for one growth cycle:
// floor(total * (birthRate - deathRate) + netMigration).
func (m *Manager) Growth(tileID string) int {
	pop, ok := m.populations[tileID]
	if !ok {
		return 0
	}
	delta := float64(pop.TotalPopulation)*(pop.BirthRate-pop.DeathRate) + pop.NetMigration
	return int(math.Floor(delta))
}

// UpdateStatistics recomputes the population's aggregate fields from its
// groups.
func (m *Manager) UpdateStatistics(tileID string) {
	pop, ok := m.populations[tileID]
	if !ok {
		return
	}

	pop.AgeDistribution = model.AgeDistribution{}
	pop.EducationDistribution = make(map[model.EducationLevel]int)
	pop.ClassDistribution = make(map[model.SocialClass]int)
	pop.Employment = model.EmploymentStats{}

	total := 0
	var wageSum float64
	for _, g := range pop.Groups {
		total += g.Size
		wageSum += g.Wage * float64(g.Size)

		switch g.AgeGroup {
		case model.AgeChild:
			pop.AgeDistribution.Children += g.Size
		case model.AgeAdult:
			pop.AgeDistribution.Adults += g.Size
		case model.AgeElder:
			pop.AgeDistribution.Elders += g.Size
		}
		pop.EducationDistribution[g.Education] += g.Size
		pop.ClassDistribution[g.SocialClass] += g.Size

		pop.Employment.Total += g.Size
		switch g.Employment {
		case model.Employed:
			pop.Employment.Employed += g.Size
		case model.Retired:
			pop.Employment.Retired += g.Size
		default:
			pop.Employment.Unemployed += g.Size
		}
	}

	pop.TotalPopulation = total
	if total > 0 {
		pop.AverageWage = wageSum / float64(total)
	} else {
		pop.AverageWage = 0
	}
}

func newGroup(size int, age model.AgeGroup, education model.EducationLevel, class model.SocialClass) model.PopulationGroup {
	return model.PopulationGroup{
		ID:          uuid.NewString(),
		Size:        size,
		AgeGroup:    age,
		Education:   education,
		SocialClass: class,
		Employment:  model.Unemployed,
		Wage:        Wage(education, class),
	}
}
