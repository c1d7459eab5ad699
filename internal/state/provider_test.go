package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/epochs/internal/model"
)

func TestProvider_RequiresInitialize(t *testing.T) {
	p := NewProvider(nil)

	_, err := p.State()
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = p.PersistedState()
	assert.ErrorIs(t, err, ErrNotInitialized)

	assert.ErrorIs(t, p.Dispatch(SetPause()), ErrNotInitialized)
}

func TestProvider_DispatchUpdatesState(t *testing.T) {
	p := NewProvider(nil)
	p.Initialize(baseState())

	require.NoError(t, p.Dispatch(SetPause()))
	s, err := p.State()
	require.NoError(t, err)
	assert.True(t, s.IsPaused)
	assert.False(t, p.HasPendingActions())
}

func TestProvider_NotifiesPerStateChange(t *testing.T) {
	p := NewProvider(nil)
	p.Initialize(baseState())

	count := 0
	p.Subscribe(func(*model.GameState) { count++ })

	require.NoError(t, p.DispatchBatch([]GameAction{
		SetPause(),  // change
		SetPause(),  // no-op
		SetResume(), // change
		SetResume(), // no-op
		TickTime(1), // change
	}))
	assert.Equal(t, 3, count)
}

func TestProvider_Unsubscribe(t *testing.T) {
	p := NewProvider(nil)
	p.Initialize(baseState())

	count := 0
	id := p.Subscribe(func(*model.GameState) { count++ })
	assert.Equal(t, 1, p.ListenerCount())

	p.Unsubscribe(id)
	assert.Zero(t, p.ListenerCount())

	require.NoError(t, p.Dispatch(SetPause()))
	assert.Zero(t, count)
}

func TestProvider_SubscriberPanicContained(t *testing.T) {
	p := NewProvider(nil)
	p.Initialize(baseState())

	p.Subscribe(func(*model.GameState) { panic("boom") })
	healthy := 0
	p.Subscribe(func(*model.GameState) { healthy++ })

	require.NoError(t, p.Dispatch(SetPause()))
	assert.Equal(t, 1, healthy)
}

func TestProvider_ReentrantDispatchQueued(t *testing.T) {
	p := NewProvider(nil)
	p.Initialize(baseState())

	dispatched := false
	p.Subscribe(func(s *model.GameState) {
		if !dispatched {
			dispatched = true
			// dispatch from inside a notification: must queue, not recurse
			require.NoError(t, p.Dispatch(SetTimeMultiplier(3)))
		}
	})

	require.NoError(t, p.Dispatch(SetPause()))
	s, err := p.State()
	require.NoError(t, err)
	assert.True(t, s.IsPaused)
	assert.Equal(t, 3.0, s.TimeMultiplier)
	assert.False(t, p.HasPendingActions())
}

func TestProvider_PersistedStateStripsSessionFields(t *testing.T) {
	p := NewProvider(nil)
	s := baseState()
	s.IsPaused = true
	s.TimeMultiplier = 4
	s.Notifications = []model.Notification{{ID: "n1"}}
	s.ResearchQueue = model.ResearchQueue{Queue: []string{"stone_tool"}, ResearchSpeed: 2}
	p.Initialize(s)

	persisted, err := p.PersistedState()
	require.NoError(t, err)
	assert.False(t, persisted.IsPaused)
	assert.Zero(t, persisted.TimeMultiplier)
	assert.Empty(t, persisted.Notifications)
	assert.Empty(t, persisted.ResearchQueue.Queue)
	assert.Nil(t, persisted.ResearchQueue.Current)

	// world data survives
	assert.Equal(t, s.Tiles, persisted.Tiles)
}

func TestProvider_RestoreReseedsDefaults(t *testing.T) {
	p := NewProvider(nil)
	p.Initialize(baseState())

	notified := 0
	p.Subscribe(func(s *model.GameState) {
		notified++
		assert.Empty(t, s.Notifications)
	})

	loaded := baseState()
	loaded.IsPaused = true
	loaded.TimeMultiplier = 9
	loaded.Notifications = []model.Notification{{ID: "stale"}}

	p.RestorePersistedState(loaded)

	s, err := p.State()
	require.NoError(t, err)
	assert.False(t, s.IsPaused)
	assert.Equal(t, 1.0, s.TimeMultiplier)
	assert.Equal(t, 1.0, s.ResearchQueue.ResearchSpeed)
	assert.Empty(t, s.Notifications)
	assert.Equal(t, 1, notified)
}
