package tech

import (
	"errors"
	"fmt"

	"github.com/talgya/epochs/internal/model"
)

// Research queue errors.
var (
	ErrUnknownTech     = errors.New("unknown technology")
	ErrAlreadyOwned    = errors.New("technology already researched")
	ErrAlreadyQueued   = errors.New("technology already queued")
	ErrPrereqsNotMet   = errors.New("prerequisites not met")
	ErrNothingResearch = errors.New("no research in progress")
)

// ResearchStatus is a snapshot of the active research slot.
type ResearchStatus struct {
	Tech       model.Technology
	Progress   float64
	Completion float64 // percent
}

// Manager runs the research lifecycle: queueing, progress accumulation
// and completion over a Tree.
type Manager struct {
	tree     *Tree
	owned    map[string]struct{}
	progress map[string]float64
	current  string
	queue    []string
	speed    float64
}

// NewManager returns a Manager with nothing researched and a research
// speed of 1.
func NewManager(tree *Tree) *Manager {
	return &Manager{
		tree:     tree,
		owned:    make(map[string]struct{}),
		progress: make(map[string]float64),
		speed:    1,
	}
}

// SetResearchSpeed scales future progress accumulation.
func (m *Manager) SetResearchSpeed(speed float64) {
	m.speed = speed
}

// Owned returns the researched technology ids as a set.
func (m *Manager) Owned() map[string]struct{} {
	out := make(map[string]struct{}, len(m.owned))
	for id := range m.owned {
		out[id] = struct{}{}
	}
	return out
}

// Has reports whether a technology is researched.
func (m *Manager) Has(id string) bool {
	_, ok := m.owned[id]
	return ok
}

// AddTechnology grants a technology directly, bypassing research.
func (m *Manager) AddTechnology(id string) error {
	if _, ok := m.tree.Technology(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTech, id)
	}
	m.owned[id] = struct{}{}
	delete(m.progress, id)
	if m.current == id {
		m.current = ""
	}
	for i, queued := range m.queue {
		if queued == id {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			break
		}
	}
	return nil
}

// Enqueue appends a technology to the research queue.
func (m *Manager) Enqueue(id string) error {
	if _, ok := m.tree.Technology(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTech, id)
	}
	if m.Has(id) {
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, id)
	}
	if m.current == id {
		return fmt.Errorf("%w: %s", ErrAlreadyQueued, id)
	}
	for _, queued := range m.queue {
		if queued == id {
			return fmt.Errorf("%w: %s", ErrAlreadyQueued, id)
		}
	}
	if !m.tree.CanResearch(id, m.owned) {
		return fmt.Errorf("%w: %s", ErrPrereqsNotMet, id)
	}
	m.queue = append(m.queue, id)
	return nil
}

// Dequeue removes the head of the pending queue and returns it.
func (m *Manager) Dequeue() (string, bool) {
	if len(m.queue) == 0 {
		return "", false
	}
	id := m.queue[0]
	m.queue = m.queue[1:]
	return id, true
}

// Queue returns the pending queue in order.
func (m *Manager) Queue() []string {
	return append([]string(nil), m.queue...)
}

// Advance accumulates research progress. With no active slot it pulls
// the queue head first. Completed technologies are granted and the next
// queued technology starts immediately on a later call.
func (m *Manager) Advance(points float64) []string {
	var completed []string

	if m.current == "" {
		next, ok := m.Dequeue()
		if !ok {
			return nil
		}
		m.current = next
		m.progress[next] = 0
	}

	m.progress[m.current] += points * m.speed
	cost := m.tree.ResearchCost(m.current)
	if m.progress[m.current] >= cost {
		completed = append(completed, m.current)
		m.owned[m.current] = struct{}{}
		delete(m.progress, m.current)
		m.current = ""
		if next, ok := m.Dequeue(); ok {
			m.current = next
			m.progress[next] = 0
		}
	}

	return completed
}

// Current returns the active research slot.
func (m *Manager) Current() (ResearchStatus, error) {
	if m.current == "" {
		return ResearchStatus{}, ErrNothingResearch
	}
	tech, _ := m.tree.Technology(m.current)
	progress := m.progress[m.current]
	completion := 0.0
	if tech.ResearchCost > 0 {
		completion = progress / tech.ResearchCost * 100
	}
	return ResearchStatus{Tech: tech, Progress: progress, Completion: completion}, nil
}

// Snapshot exports the manager's state as a model.ResearchQueue for
// persistence and reducer interop.
func (m *Manager) Snapshot() model.ResearchQueue {
	rq := model.ResearchQueue{
		Queue:         append([]string(nil), m.queue...),
		ResearchSpeed: m.speed,
	}
	if m.current != "" {
		rq.Current = &model.CurrentResearch{
			Tech:     m.current,
			Progress: m.progress[m.current],
		}
	}
	return rq
}

// Restore loads the manager's queue state from a model.ResearchQueue and
// the owned set.
func (m *Manager) Restore(rq model.ResearchQueue, owned map[string]struct{}) {
	m.queue = append([]string(nil), rq.Queue...)
	m.speed = rq.ResearchSpeed
	if m.speed == 0 {
		m.speed = 1
	}
	m.owned = make(map[string]struct{}, len(owned))
	for id := range owned {
		m.owned[id] = struct{}{}
	}
	m.progress = make(map[string]float64)
	m.current = ""
	if rq.Current != nil {
		m.current = rq.Current.Tech
		m.progress[m.current] = rq.Current.Progress
	}
}
