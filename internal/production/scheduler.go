package production

import (
	"math"

	"github.com/talgya/epochs/internal/model"
)

// Scheduler is the legacy worker-count-only production path, kept for
// isolated building simulation. It ignores era, education and methods,
// and outputs a single good by building type. Its numbers are not meant
// to match the Calculator's.
type Scheduler struct{}

// NewScheduler returns a Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule computes the legacy production for one building:
// floor(throughput * (1 + level*0.1) * workers / 10).
func (s *Scheduler) Schedule(b *model.Building) Result {
	workers := float64(b.BaseWorkers)
	throughput := b.BaseThroughput
	totalEfficiency := 1 + float64(b.Level)*0.1

	inputs := make(map[string]float64)
	outputs := make(map[string]float64)

	amount := math.Floor(throughput * totalEfficiency * workers / 10)
	switch b.Type {
	case model.BuildingForestry:
		outputs["wood"] = amount
	case model.BuildingFarm:
		outputs["food"] = amount
	case model.BuildingMine, model.BuildingQuarry:
		outputs["stone"] = amount
	}

	return Result{Inputs: inputs, Outputs: outputs, Efficiency: totalEfficiency}
}

// ScheduleAll runs Schedule over every building in order.
func (s *Scheduler) ScheduleAll(buildings []*model.Building) []Result {
	results := make([]Result, 0, len(buildings))
	for _, b := range buildings {
		results = append(results, s.Schedule(b))
	}
	return results
}
