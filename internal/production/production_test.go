package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/epochs/internal/model"
)

func newFarm(t *testing.T) *model.Building {
	t.Helper()
	m := NewManager()
	b, err := m.Create("farm", "tile_1")
	require.NoError(t, err)
	return b
}

func TestCalculator_FarmSlashBurn(t *testing.T) {
	b := newFarm(t)
	b.ProductionMethods = []string{"slash_burn"}

	c := NewCalculator()
	r := c.Calculate(b, 10, model.EraStoneAge, 2, 1.0)

	// 1.0 era * 1.0 education * 1.0 tools * 0.8 method
	assert.InDelta(t, 0.8, r.Efficiency, 1e-9)
	// throughput 100 * 0.8 * 10/10 = 80, level 1 leaves it unscaled
	assert.InDelta(t, 800, r.Outputs["grain"], 1e-9)
	assert.InDelta(t, 80, r.Inputs["wood"], 1e-9)
}

func TestCalculator_EraAndLevelScaling(t *testing.T) {
	b := newFarm(t)
	b.ProductionMethods = []string{"slash_burn"}
	b.Level = 3

	c := NewCalculator()
	r := c.Calculate(b, 10, model.EraIronAge, 2, 1.0)

	// 1.2 era * 0.8 method = 0.96; throughput 96; level 3 → *1.2
	assert.InDelta(t, 0.96, r.Efficiency, 1e-9)
	assert.InDelta(t, 96*1.2*10, r.Outputs["grain"], 1e-9)
}

func TestCalculator_EducationClamped(t *testing.T) {
	b := newFarm(t)
	b.ProductionMethods = []string{"slash_burn"}

	c := NewCalculator()
	high := c.Calculate(b, 10, model.EraStoneAge, 99, 1.0)
	top := c.Calculate(b, 10, model.EraStoneAge, 6, 1.0)
	assert.Equal(t, top.Efficiency, high.Efficiency)

	low := c.Calculate(b, 10, model.EraStoneAge, -5, 1.0)
	bottom := c.Calculate(b, 10, model.EraStoneAge, 0, 1.0)
	assert.Equal(t, bottom.Efficiency, low.Efficiency)
}

func TestCalculator_NoMethodEmptyResult(t *testing.T) {
	b := newFarm(t)
	b.ProductionMethods = nil

	c := NewCalculator()
	r := c.Calculate(b, 10, model.EraStoneAge, 2, 1.0)

	assert.Zero(t, r.Efficiency)
	assert.Empty(t, r.Inputs)
	assert.Empty(t, r.Outputs)
}

func TestCalculator_UnknownMethodEmptyResult(t *testing.T) {
	b := newFarm(t)
	b.ProductionMethods = []string{"does_not_exist"}

	c := NewCalculator()
	r := c.Calculate(b, 10, model.EraStoneAge, 2, 1.0)
	assert.Empty(t, r.Outputs)
}

func TestCalculator_UpgradeCost(t *testing.T) {
	b := newFarm(t)
	c := NewCalculator()

	level1 := c.UpgradeCost(b)
	b.Level = 3
	level3 := c.UpgradeCost(b)

	for goodsID, amount := range level1 {
		assert.InDelta(t, amount*2.25, level3[goodsID], 1e-9)
	}
}

func TestScheduler_FarmOutput(t *testing.T) {
	b := newFarm(t)
	s := NewScheduler()

	r := s.Schedule(b)
	// floor(100 * 1.1 * 10 / 10) = 110
	assert.Equal(t, 110.0, r.Outputs["food"])
	assert.Empty(t, r.Inputs)
}

func TestScheduler_TypeRouting(t *testing.T) {
	m := NewManager()
	s := NewScheduler()

	forestry, err := m.Create("forestry", "tile_1")
	require.NoError(t, err)
	mine, err := m.Create("mine", "tile_1")
	require.NoError(t, err)
	warehouse, err := m.Create("warehouse", "tile_1")
	require.NoError(t, err)

	assert.Contains(t, s.Schedule(forestry).Outputs, "wood")
	assert.Contains(t, s.Schedule(mine).Outputs, "stone")
	assert.Empty(t, s.Schedule(warehouse).Outputs)
}

func TestManager_CreateAssignsSequentialIDs(t *testing.T) {
	m := NewManager()

	a, err := m.Create("farm", "tile_1")
	require.NoError(t, err)
	b, err := m.Create("mine", "tile_2")
	require.NoError(t, err)

	assert.Equal(t, "building_1", a.ID)
	assert.Equal(t, "building_2", b.ID)
	assert.Equal(t, 1, a.Level)
	assert.Equal(t, 0, a.CurrentWorkers)
}

func TestManager_CreateUnknownConfig(t *testing.T) {
	m := NewManager()
	_, err := m.Create("castle", "tile_1")
	assert.Error(t, err)
}

func TestManager_ByTile(t *testing.T) {
	m := NewManager()
	_, err := m.Create("farm", "tile_1")
	require.NoError(t, err)
	_, err = m.Create("mine", "tile_1")
	require.NoError(t, err)
	_, err = m.Create("quarry", "tile_2")
	require.NoError(t, err)

	assert.Len(t, m.ByTile("tile_1"), 2)
	assert.Len(t, m.ByTile("tile_2"), 1)
	assert.Empty(t, m.ByTile("tile_9"))
	assert.Len(t, m.All(), 3)
}

func TestManager_UpgradeResetsExperience(t *testing.T) {
	m := NewManager()
	b, err := m.Create("farm", "tile_1")
	require.NoError(t, err)
	b.Experience = 55

	require.NoError(t, m.Upgrade(b.ID))
	assert.Equal(t, 2, b.Level)
	assert.Zero(t, b.Experience)

	assert.Error(t, m.Upgrade("building_404"))
}

func TestManager_SetMethod(t *testing.T) {
	m := NewManager()
	b, err := m.Create("farm", "tile_1")
	require.NoError(t, err)

	require.NoError(t, m.SetMethod(b.ID, "plowing"))
	assert.Equal(t, []string{"plowing"}, b.ProductionMethods)

	assert.Error(t, m.SetMethod(b.ID, "smart"))
	assert.Error(t, m.SetMethod("building_404", "plowing"))
}

func TestManager_Remove(t *testing.T) {
	m := NewManager()
	b, err := m.Create("farm", "tile_1")
	require.NoError(t, err)

	m.Remove(b.ID)
	_, ok := m.Get(b.ID)
	assert.False(t, ok)
}
