// Package tech implements the research system: the static technology
// tree and the research queue lifecycle.
package tech

import (
	"sort"

	"github.com/talgya/epochs/internal/model"
)

// Tree is a read-only view over the technology catalog with dependency
// queries.
type Tree struct {
	techs map[string]model.Technology
}

// NewTree returns a Tree over the standard catalog.
func NewTree() *Tree {
	return &Tree{techs: model.Technologies}
}

// Technology looks up a catalog entry.
func (t *Tree) Technology(id string) (model.Technology, bool) {
	tech, ok := t.techs[id]
	return tech, ok
}

// All returns every technology, sorted by id for stable iteration.
func (t *Tree) All() []model.Technology {
	ids := make([]string, 0, len(t.techs))
	for id := range t.techs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]model.Technology, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.techs[id])
	}
	return out
}

// Prerequisites returns a technology's direct prerequisites.
func (t *Tree) Prerequisites(id string) []string {
	tech, ok := t.techs[id]
	if !ok {
		return nil
	}
	return tech.Prerequisites
}

// Dependents returns the technologies that list id as a direct
// prerequisite, sorted.
func (t *Tree) Dependents(id string) []string {
	var out []string
	for candidateID, tech := range t.techs {
		for _, prereq := range tech.Prerequisites {
			if prereq == id {
				out = append(out, candidateID)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// ResearchCost returns a technology's research point cost, 0 if unknown.
func (t *Tree) ResearchCost(id string) float64 {
	return t.techs[id].ResearchCost
}

// CanResearch reports whether every prerequisite of id is in owned.
// Unknown technologies can never be researched.
func (t *Tree) CanResearch(id string, owned map[string]struct{}) bool {
	tech, ok := t.techs[id]
	if !ok {
		return false
	}
	for _, prereq := range tech.Prerequisites {
		if _, ok := owned[prereq]; !ok {
			return false
		}
	}
	return true
}
