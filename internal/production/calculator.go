// Package production computes building output: the authoritative
// era/education-aware calculator, the legacy worker-count scheduler, and
// the standalone building manager.
package production

import (
	"math"

	"github.com/talgya/epochs/internal/model"
)

// Result is the inputs consumed and outputs produced by one production
// pass, with the efficiency that scaled them.
type Result struct {
	Inputs     map[string]float64
	Outputs    map[string]float64
	Efficiency float64
}

// eraBonus grows monotonically with era index, 1.0 (stone) to 2.0 (AI).
var eraBonus = map[model.Era]float64{
	model.EraStoneAge:    1.0,
	model.EraBronzeAge:   1.1,
	model.EraIronAge:     1.2,
	model.EraClassical:   1.3,
	model.EraMedieval:    1.4,
	model.EraRenaissance: 1.5,
	model.EraIndustrial:  1.7,
	model.EraElectrical:  1.8,
	model.EraInformation: 1.9,
	model.EraAIAge:       2.0,
}

// educationBonus is keyed by education level 0-6.
var educationBonus = map[int]float64{
	0: 0.8,
	1: 0.9,
	2: 1.0,
	3: 1.1,
	4: 1.2,
	5: 1.3,
	6: 1.4,
}

// Calculator implements the authoritative production formula.
type Calculator struct{}

// NewCalculator returns a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate computes one production pass for a building. A building with
// no recognized active method yields a zero-efficiency empty result.
//
//	efficiency = eraBonus * educationBonus * toolAvailability * method.WorkerEfficiency
//	throughput = baseThroughput * efficiency * workers/baseWorkers
//	adjusted   = throughput * (1 + (level-1)*0.1)
func (c *Calculator) Calculate(b *model.Building, workers int, era model.Era, educationLevel int, toolAvailability float64) Result {
	methodID, ok := b.ActiveMethod()
	if !ok {
		return emptyResult()
	}
	method, ok := model.ProductionMethods[methodID]
	if !ok {
		return emptyResult()
	}

	if educationLevel > 6 {
		educationLevel = 6
	}
	if educationLevel < 0 {
		educationLevel = 0
	}

	efficiency := eraBonus[era] * educationBonus[educationLevel] * toolAvailability * method.WorkerEfficiency
	throughput := b.BaseThroughput * efficiency * (float64(workers) / float64(b.BaseWorkers))
	adjusted := throughput * (1 + float64(b.Level-1)*0.1)

	inputs := make(map[string]float64, len(method.Inputs))
	for goodsID, amount := range method.Inputs {
		inputs[goodsID] = amount * adjusted
	}
	outputs := make(map[string]float64, len(method.Outputs))
	for goodsID, amount := range method.Outputs {
		outputs[goodsID] = amount * adjusted
	}

	return Result{Inputs: inputs, Outputs: outputs, Efficiency: efficiency}
}

// UpgradeCost scales each construction-cost good by 1.5^(level-1).
func (c *Calculator) UpgradeCost(b *model.Building) map[string]float64 {
	multiplier := math.Pow(1.5, float64(b.Level-1))
	costs := make(map[string]float64, len(b.ConstructionCost))
	for goodsID, amount := range b.ConstructionCost {
		costs[goodsID] = amount * multiplier
	}
	return costs
}

func emptyResult() Result {
	return Result{
		Inputs:  make(map[string]float64),
		Outputs: make(map[string]float64),
	}
}
