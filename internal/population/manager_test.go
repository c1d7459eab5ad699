package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/epochs/internal/model"
)

func TestWage(t *testing.T) {
	assert.InDelta(t, 10.0, Wage(model.EducationIlliterate, model.ClassWorker), 1e-9)
	assert.InDelta(t, 10*2.5*2.0, Wage(model.EducationUniversity, model.ClassElite), 1e-9)
	assert.InDelta(t, 10*1.2*0.8, Wage(model.EducationBasic, model.ClassPoor), 1e-9)
	assert.InDelta(t, 10*3.0*1.5, Wage(model.EducationPostgraduate, model.ClassMiddle), 1e-9)
}

func TestDistribute_GridAndRounding(t *testing.T) {
	m := NewManager()
	pop := m.Distribute("tile_1", 10000)

	// largest cohort: adult(0.6) * basic(0.4) * worker(0.5) = 1200
	found := false
	for _, g := range pop.Groups {
		if g.AgeGroup == model.AgeAdult && g.Education == model.EducationBasic && g.SocialClass == model.ClassWorker {
			assert.Equal(t, 1200, g.Size)
			found = true
		}
		require.Positive(t, g.Size, "zero-size cohorts must be skipped")
		assert.NotEmpty(t, g.ID)
		assert.Equal(t, model.Unemployed, g.Employment)
	}
	require.True(t, found)

	// flooring loses some people; total never exceeds the request
	assert.LessOrEqual(t, pop.TotalPopulation, 10000)
	assert.Greater(t, pop.TotalPopulation, 9000)

	assert.InDelta(t, 0.03, pop.BirthRate, 1e-9)
	assert.InDelta(t, 0.02, pop.DeathRate, 1e-9)
}

func TestDistribute_SmallAmountSkipsTinyCohorts(t *testing.T) {
	m := NewManager()
	pop := m.Distribute("tile_1", 10)

	for _, g := range pop.Groups {
		assert.Positive(t, g.Size)
	}
	assert.Less(t, pop.TotalPopulation, 10)
}

func TestAdd_MergesMatchingCohort(t *testing.T) {
	m := NewManager()
	m.Add("tile_1", 50, model.AgeAdult, model.EducationBasic, model.ClassWorker)
	m.Add("tile_1", 30, model.AgeAdult, model.EducationBasic, model.ClassWorker)
	m.Add("tile_1", 20, model.AgeElder, model.EducationBasic, model.ClassWorker)

	pop, ok := m.Get("tile_1")
	require.True(t, ok)
	assert.Len(t, pop.Groups, 2)
	assert.Equal(t, 100, pop.TotalPopulation)
	assert.Equal(t, 80, pop.Groups[0].Size)
}

func TestRemove_DrainsInOrder(t *testing.T) {
	m := NewManager()
	m.Add("tile_1", 50, model.AgeAdult, model.EducationBasic, model.ClassWorker)
	m.Add("tile_1", 30, model.AgeElder, model.EducationBasic, model.ClassWorker)

	m.Remove("tile_1", 60)
	pop, ok := m.Get("tile_1")
	require.True(t, ok)
	assert.Equal(t, 20, pop.TotalPopulation)
	require.Len(t, pop.Groups, 1)
	assert.Equal(t, model.AgeElder, pop.Groups[0].AgeGroup)
}

func TestRemove_WholePopulationDeletes(t *testing.T) {
	m := NewManager()
	m.Add("tile_1", 50, model.AgeAdult, model.EducationBasic, model.ClassWorker)

	m.Remove("tile_1", 50)
	_, ok := m.Get("tile_1")
	assert.False(t, ok)
}

func TestEmploy_PlacesAdultsOnly(t *testing.T) {
	m := NewManager()
	m.Add("tile_1", 40, model.AgeChild, model.EducationBasic, model.ClassWorker)
	m.Add("tile_1", 30, model.AgeAdult, model.EducationBasic, model.ClassWorker)

	placed := m.Employ("tile_1", "building_1", 20)
	assert.Equal(t, 20, placed)

	pop, _ := m.Get("tile_1")
	assert.Equal(t, 20, pop.Employment.Employed)
	assert.Equal(t, 50, pop.Employment.Unemployed)
	assert.Equal(t, 70, pop.TotalPopulation)

	for _, g := range pop.Groups {
		if g.Employment == model.Employed {
			assert.Equal(t, "building_1", g.Workplace)
			assert.Equal(t, model.AgeAdult, g.AgeGroup)
		}
	}
}

func TestEmploy_CappedByAvailableAdults(t *testing.T) {
	m := NewManager()
	m.Add("tile_1", 10, model.AgeAdult, model.EducationBasic, model.ClassWorker)

	placed := m.Employ("tile_1", "building_1", 50)
	assert.Equal(t, 10, placed)
	assert.Zero(t, m.Employ("tile_9", "building_1", 5))
}

func TestUnemploy_ReleasesFromWorkplace(t *testing.T) {
	m := NewManager()
	m.Add("tile_1", 30, model.AgeAdult, model.EducationBasic, model.ClassWorker)
	require.Equal(t, 30, m.Employ("tile_1", "building_1", 30))

	released := m.Unemploy("tile_1", "building_1", 12)
	assert.Equal(t, 12, released)

	pop, _ := m.Get("tile_1")
	assert.Equal(t, 18, pop.Employment.Employed)
	assert.Equal(t, 12, pop.Employment.Unemployed)
	assert.Equal(t, 30, pop.TotalPopulation)
}

func TestUpdateNeeds_LivingStandard(t *testing.T) {
	m := NewManager()
	m.Add("tile_1", 10, model.AgeAdult, model.EducationIlliterate, model.ClassWorker)

	m.UpdateNeeds("tile_1")
	pop, _ := m.Get("tile_1")

	g := pop.Groups[0]
	// needs tiers sum to exactly the wage
	assert.InDelta(t, g.Wage, g.Needs.Total(), 1e-9)
	assert.InDelta(t, 4.0, g.Needs.Survival, 1e-9)
	assert.InDelta(t, 1.0, pop.AverageLivingStandard, 1e-9)
}

func TestGrowth(t *testing.T) {
	m := NewManager()
	m.Add("tile_1", 1000, model.AgeAdult, model.EducationBasic, model.ClassWorker)

	// 1000 * (0.03 - 0.02) floors to 9: the rate difference is not
	// exactly representable, so the product lands just under 10
	assert.Equal(t, 9, m.Growth("tile_1"))

	pop, _ := m.Get("tile_1")
	pop.NetMigration = 5.5
	assert.Equal(t, 15, m.Growth("tile_1"))

	assert.Zero(t, m.Growth("tile_9"))
}

func TestUpdateStatistics(t *testing.T) {
	m := NewManager()
	m.Add("tile_1", 60, model.AgeAdult, model.EducationBasic, model.ClassWorker)
	m.Add("tile_1", 40, model.AgeChild, model.EducationIlliterate, model.ClassPoor)

	pop, _ := m.Get("tile_1")
	assert.Equal(t, 100, pop.TotalPopulation)
	assert.Equal(t, 60, pop.AgeDistribution.Adults)
	assert.Equal(t, 40, pop.AgeDistribution.Children)
	assert.Equal(t, 60, pop.EducationDistribution[model.EducationBasic])
	assert.Equal(t, 40, pop.ClassDistribution[model.ClassPoor])

	// weighted average wage: (60*12 + 40*8) / 100
	assert.InDelta(t, (60*12.0+40*8.0)/100, pop.AverageWage, 1e-9)
}
