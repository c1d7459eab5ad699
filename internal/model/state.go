package model

// NotificationKind classifies notifications for UI filtering.
type NotificationKind string

const (
	NoteInfo    NotificationKind = "info"
	NoteWarning NotificationKind = "warning"
	NoteError   NotificationKind = "error"
	NoteSuccess NotificationKind = "success"
)

// Notification is a transient user-facing message; never persisted.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp int64            `json:"timestamp"`
}

// Resources is the player's liquid holdings.
type Resources struct {
	Money float64            `json:"money"`
	Goods map[string]float64 `json:"goods"`
}

// FeatureFlags toggles optional simulation subsystems.
type FeatureFlags struct {
	Events    bool `json:"events" yaml:"events"`
	Disasters bool `json:"disasters" yaml:"disasters"`
	Wars      bool `json:"wars" yaml:"wars"`
	Trade     bool `json:"trade" yaml:"trade"`
}

// GameSettings are player-chosen simulation parameters.
type GameSettings struct {
	GameSpeed        float64      `json:"game_speed" yaml:"game_speed"`
	AutoSaveInterval int          `json:"auto_save_interval" yaml:"auto_save_interval"`
	Difficulty       string       `json:"difficulty" yaml:"difficulty"`
	EnabledFeatures  FeatureFlags `json:"enabled_features" yaml:"enabled_features"`
}

// DefaultSettings returns the settings used for a fresh game.
func DefaultSettings() GameSettings {
	return GameSettings{
		GameSpeed:        1,
		AutoSaveInterval: 300,
		Difficulty:       "normal",
		EnabledFeatures:  FeatureFlags{Events: true, Trade: true},
	}
}

// GameState is the root aggregate and single source of truth. Reducers
// never mutate a GameState in place: every write produces a fresh struct
// with fresh map instances for the branches that changed, so callers can
// detect change by pointer comparison.
type GameState struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`

	Date           GameDate `json:"date"`
	Era            Era      `json:"era"`
	TickCount      int      `json:"tick_count"`
	IsPaused       bool     `json:"is_paused"`
	TimeMultiplier float64  `json:"time_multiplier"`

	Tiles       map[string]*Tile       `json:"tiles"`
	Buildings   map[string]*Building   `json:"buildings"`
	Populations map[string]*Population `json:"populations"`
	Markets     map[string]*Market     `json:"markets"`

	Technologies  map[string]struct{} `json:"technologies"`
	ResearchQueue ResearchQueue       `json:"research_queue"`

	Resources     Resources          `json:"resources"`
	GlobalStorage map[string]float64 `json:"global_storage"`

	Settings      GameSettings   `json:"settings"`
	Notifications []Notification `json:"notifications"`
}

// NewInitialState builds a fresh GameState with empty world collections
// and default session fields.
func NewInitialState(id, name string) *GameState {
	return &GameState{
		ID:             id,
		Name:           name,
		Version:        "1.0.0",
		Date:           GameDate{Year: 1, Month: 1, Day: 1},
		Era:            EraStoneAge,
		TickCount:      0,
		IsPaused:       false,
		TimeMultiplier: 1,
		Tiles:          make(map[string]*Tile),
		Buildings:      make(map[string]*Building),
		Populations:    make(map[string]*Population),
		Markets:        make(map[string]*Market),
		Technologies:   make(map[string]struct{}),
		ResearchQueue:  ResearchQueue{Queue: []string{}, ResearchSpeed: 1},
		Resources:      Resources{Money: 0, Goods: make(map[string]float64)},
		GlobalStorage:  make(map[string]float64),
		Settings:       DefaultSettings(),
		Notifications:  []Notification{},
	}
}
