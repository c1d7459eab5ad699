// Package era evaluates civilizational era advancement criteria and
// drives era transitions.
package era

import (
	"fmt"
	"log/slog"

	"github.com/talgya/epochs/internal/model"
)

// Criteria are the thresholds a civilization must meet to enter an era.
type Criteria struct {
	MinPopulation        int
	MinTechnologies      int
	RequiredTechnologies []string
	MinBuildings         int
	RequiredBuildings    []string
}

// advancementCriteria keys each era (beyond the stone age) by what it
// takes to reach it.
var advancementCriteria = map[model.Era]Criteria{
	model.EraBronzeAge: {
		MinPopulation:        100,
		MinTechnologies:      1,
		RequiredTechnologies: []string{"stone_tool"},
		MinBuildings:         1,
		RequiredBuildings:    []string{"workshop"},
	},
	model.EraIronAge: {
		MinPopulation:        500,
		MinTechnologies:      2,
		RequiredTechnologies: []string{"metal_smelting"},
		MinBuildings:         2,
		RequiredBuildings:    []string{"mine", "workshop"},
	},
	model.EraClassical: {
		MinPopulation:        2000,
		MinTechnologies:      3,
		RequiredTechnologies: []string{"iron_smelting"},
		MinBuildings:         1,
		RequiredBuildings:    []string{"academy"},
	},
	model.EraMedieval: {
		MinPopulation:        5000,
		MinTechnologies:      4,
		RequiredTechnologies: []string{"writing"},
		MinBuildings:         1,
		RequiredBuildings:    []string{"university"},
	},
	model.EraRenaissance: {
		MinPopulation:        10000,
		MinTechnologies:      5,
		RequiredTechnologies: []string{"printing_press"},
		MinBuildings:         1,
		RequiredBuildings:    []string{"market"},
	},
	model.EraIndustrial: {
		MinPopulation:        50000,
		MinTechnologies:      6,
		RequiredTechnologies: []string{"steam_engine"},
		MinBuildings:         1,
		RequiredBuildings:    []string{"factory"},
	},
	model.EraElectrical: {
		MinPopulation:        100000,
		MinTechnologies:      7,
		RequiredTechnologies: []string{"electricity"},
		MinBuildings:         1,
		RequiredBuildings:    []string{"power_plant"},
	},
	model.EraInformation: {
		MinPopulation:        500000,
		MinTechnologies:      8,
		RequiredTechnologies: []string{"computer"},
		MinBuildings:         1,
		RequiredBuildings:    []string{"computer_center"},
	},
	model.EraAIAge: {
		MinPopulation:        1000000,
		MinTechnologies:      9,
		RequiredTechnologies: []string{"ai"},
		MinBuildings:         1,
		RequiredBuildings:    []string{"ai_research_center"},
	},
}

// CriteriaFor returns the advancement criteria for an era.
func CriteriaFor(era model.Era) (Criteria, bool) {
	c, ok := advancementCriteria[era]
	return c, ok
}

// Snapshot is the civilization view the criteria are checked against.
type Snapshot struct {
	Population   int
	Technologies map[string]struct{}
	Buildings    map[model.BuildingType]int
}

// Listener is notified after an era transition.
type Listener func(from, to model.Era)

// Manager tracks the current era and evaluates advancement.
type Manager struct {
	current   model.Era
	listeners []Listener
	logger    *slog.Logger
}

// NewManager starts a Manager at the given era.
func NewManager(start model.Era, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{current: start, logger: logger}
}

// Current returns the current era.
func (m *Manager) Current() model.Era {
	return m.current
}

// OnChange registers a transition listener.
func (m *Manager) OnChange(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Meets reports whether a snapshot satisfies an era's criteria.
func Meets(snapshot Snapshot, criteria Criteria) bool {
	if snapshot.Population < criteria.MinPopulation {
		return false
	}
	if len(snapshot.Technologies) < criteria.MinTechnologies {
		return false
	}
	for _, tech := range criteria.RequiredTechnologies {
		if _, ok := snapshot.Technologies[tech]; !ok {
			return false
		}
	}
	totalBuildings := 0
	for _, count := range snapshot.Buildings {
		totalBuildings += count
	}
	if totalBuildings < criteria.MinBuildings {
		return false
	}
	for _, required := range criteria.RequiredBuildings {
		if snapshot.Buildings[model.BuildingType(required)] == 0 {
			return false
		}
	}
	return true
}

// CheckAdvancement scans the eras after the current one and returns the
// first whose criteria the snapshot fully meets.
func (m *Manager) CheckAdvancement(snapshot Snapshot) (model.Era, bool) {
	idx := m.current.Index()
	if idx < 0 {
		return "", false
	}
	for _, era := range model.Eras[idx+1:] {
		criteria, ok := advancementCriteria[era]
		if !ok {
			continue
		}
		if Meets(snapshot, criteria) {
			return era, true
		}
	}
	return "", false
}

// AdvanceTo moves to a later era and notifies listeners. Moving
// backward or to the current era is refused.
func (m *Manager) AdvanceTo(target model.Era) error {
	targetIdx := target.Index()
	if targetIdx < 0 {
		return fmt.Errorf("unknown era: %s", target)
	}
	if targetIdx <= m.current.Index() {
		return fmt.Errorf("cannot advance from %s to %s", m.current, target)
	}

	from := m.current
	m.current = target
	m.logger.Info("era advanced", "from", from, "to", target)

	for _, l := range m.listeners {
		m.notify(l, from, target)
	}
	return nil
}

// notify runs one listener, containing panics so a faulty listener
// cannot abort the transition.
func (m *Manager) notify(l Listener, from, to model.Era) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("era listener panicked", "from", from, "to", to, "panic", r)
		}
	}()
	l(from, to)
}
