// Package persistence stores game snapshots: a stable JSON form with
// deterministic ordering, zstd-compressed snapshot files and a SQLite
// save-slot store.
package persistence

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/talgya/epochs/internal/model"
)

// Entry types keep map-backed state in sorted arrays so serialized
// snapshots are byte-stable across runs.

// TileEntry pairs a tile id with its tile.
type TileEntry struct {
	Key   string      `json:"key"`
	Value *model.Tile `json:"value"`
}

// BuildingEntry pairs a building id with its building.
type BuildingEntry struct {
	Key   string          `json:"key"`
	Value *model.Building `json:"value"`
}

// PopulationEntry pairs a tile id with its population.
type PopulationEntry struct {
	Key   string            `json:"key"`
	Value *model.Population `json:"value"`
}

// MarketEntry pairs a market id with its market.
type MarketEntry struct {
	Key   string        `json:"key"`
	Value *model.Market `json:"value"`
}

// AmountEntry pairs a goods id with an amount.
type AmountEntry struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// ResourcesSnapshot is the player's holdings in snapshot form.
type ResourcesSnapshot struct {
	Money float64       `json:"money"`
	Goods []AmountEntry `json:"goods"`
}

// PersistedState is the durable snapshot of a game. Session-only fields
// (pause flag, time multiplier, notifications, research queue) are
// deliberately absent.
type PersistedState struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Version       string             `json:"version"`
	SavedAt       time.Time          `json:"saved_at"`
	Date          model.GameDate     `json:"date"`
	Era           model.Era          `json:"era"`
	TickCount     int                `json:"tick_count"`
	Tiles         []TileEntry        `json:"tiles"`
	Buildings     []BuildingEntry    `json:"buildings"`
	Populations   []PopulationEntry  `json:"populations"`
	Markets       []MarketEntry      `json:"markets"`
	Technologies  []string           `json:"technologies"`
	Resources     ResourcesSnapshot  `json:"resources"`
	GlobalStorage []AmountEntry      `json:"global_storage"`
	Settings      model.GameSettings `json:"settings"`
}

// FromState converts a game state into its snapshot form.
func FromState(s *model.GameState) *PersistedState {
	p := &PersistedState{
		ID:        s.ID,
		Name:      s.Name,
		Version:   s.Version,
		SavedAt:   time.Now().UTC(),
		Date:      s.Date,
		Era:       s.Era,
		TickCount: s.TickCount,
		Resources: ResourcesSnapshot{
			Money: s.Resources.Money,
			Goods: amountEntries(s.Resources.Goods),
		},
		GlobalStorage: amountEntries(s.GlobalStorage),
		Settings:      s.Settings,
	}

	for _, key := range sortedKeys(s.Tiles) {
		p.Tiles = append(p.Tiles, TileEntry{Key: key, Value: s.Tiles[key]})
	}
	for _, key := range sortedKeys(s.Buildings) {
		p.Buildings = append(p.Buildings, BuildingEntry{Key: key, Value: s.Buildings[key]})
	}
	for _, key := range sortedKeys(s.Populations) {
		p.Populations = append(p.Populations, PopulationEntry{Key: key, Value: s.Populations[key]})
	}
	for _, key := range sortedKeys(s.Markets) {
		p.Markets = append(p.Markets, MarketEntry{Key: key, Value: s.Markets[key]})
	}

	for tech := range s.Technologies {
		p.Technologies = append(p.Technologies, tech)
	}
	sort.Strings(p.Technologies)

	return p
}

// ToState rebuilds a game state from the snapshot, re-seeding the
// session-only defaults.
func (p *PersistedState) ToState() *model.GameState {
	s := model.NewInitialState(p.ID, p.Name)
	s.Version = p.Version
	s.Date = p.Date
	s.Era = p.Era
	s.TickCount = p.TickCount
	s.Settings = p.Settings
	s.Resources.Money = p.Resources.Money

	for _, e := range p.Tiles {
		s.Tiles[e.Key] = e.Value
	}
	for _, e := range p.Buildings {
		s.Buildings[e.Key] = e.Value
	}
	for _, e := range p.Populations {
		s.Populations[e.Key] = e.Value
	}
	for _, e := range p.Markets {
		s.Markets[e.Key] = e.Value
	}
	for _, tech := range p.Technologies {
		s.Technologies[tech] = struct{}{}
	}
	for _, e := range p.Resources.Goods {
		s.Resources.Goods[e.Key] = e.Value
	}
	for _, e := range p.GlobalStorage {
		s.GlobalStorage[e.Key] = e.Value
	}
	return s
}

// Serialize encodes the snapshot as JSON.
func (p *PersistedState) Serialize() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Deserialize decodes a snapshot from JSON.
func Deserialize(data []byte) (*PersistedState, error) {
	var p PersistedState
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &p, nil
}

func amountEntries(in map[string]float64) []AmountEntry {
	out := make([]AmountEntry, 0, len(in))
	for _, key := range sortedFloatKeys(in) {
		out = append(out, AmountEntry{Key: key, Value: in[key]})
	}
	return out
}

func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFloatKeys(in map[string]float64) []string {
	return sortedKeys(in)
}
