package state

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/talgya/epochs/internal/model"
)

// ErrNotInitialized is returned by state accessors before Initialize.
var ErrNotInitialized = errors.New("game state not initialized")

// Subscriber receives the new state after each state-changing action.
type Subscriber func(*model.GameState)

// Provider owns the current game state and serializes all mutation
// through an action queue. Actions dispatched while a drain is running
// are queued and folded by the same drain, so subscribers never observe
// re-entrant dispatch.
type Provider struct {
	mu           sync.Mutex
	state        *model.GameState
	queue        []GameAction
	isProcessing bool
	subscribers  map[int]Subscriber
	nextSubID    int
	logger       *slog.Logger
}

// NewProvider returns an uninitialized Provider.
func NewProvider(logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		subscribers: make(map[int]Subscriber),
		logger:      logger,
	}
}

// Initialize installs the starting state.
func (p *Provider) Initialize(s *model.GameState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = s
}

// State returns the current state.
func (p *Provider) State() (*model.GameState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == nil {
		return nil, ErrNotInitialized
	}
	return p.state, nil
}

// Subscribe registers a subscriber and returns an unsubscribe token.
func (p *Provider) Subscribe(sub Subscriber) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = sub
	return id
}

// Unsubscribe removes a subscriber.
func (p *Provider) Unsubscribe(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.subscribers, id)
}

// ListenerCount returns the number of active subscribers.
func (p *Provider) ListenerCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subscribers)
}

// HasPendingActions reports whether queued actions await processing.
func (p *Provider) HasPendingActions() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue) > 0
}

// Dispatch queues one action and drains the queue unless a drain is
// already running on the stack.
func (p *Provider) Dispatch(action GameAction) error {
	return p.DispatchBatch([]GameAction{action})
}

// DispatchBatch queues actions and drains the queue. Subscribers are
// notified once per action that actually changed the state.
func (p *Provider) DispatchBatch(actions []GameAction) error {
	p.mu.Lock()
	if p.state == nil {
		p.mu.Unlock()
		return ErrNotInitialized
	}
	p.queue = append(p.queue, actions...)
	if p.isProcessing {
		p.mu.Unlock()
		return nil
	}
	p.isProcessing = true
	p.mu.Unlock()

	p.drain()
	return nil
}

func (p *Provider) drain() {
	for {
		p.mu.Lock()
		if len(p.queue) == 0 {
			p.isProcessing = false
			p.mu.Unlock()
			return
		}
		action := p.queue[0]
		p.queue = p.queue[1:]
		prev := p.state
		next := Reduce(prev, action)
		p.state = next
		var subs []Subscriber
		if next != prev {
			subs = make([]Subscriber, 0, len(p.subscribers))
			for _, sub := range p.subscribers {
				subs = append(subs, sub)
			}
		}
		p.mu.Unlock()

		for _, sub := range subs {
			p.notify(sub, next, action.Type)
		}
	}
}

// notify runs one subscriber, containing panics so a faulty subscriber
// cannot break the drain loop.
func (p *Provider) notify(sub Subscriber, s *model.GameState, action ActionType) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("state subscriber panicked", "action", action, "panic", r)
		}
	}()
	sub(s)
}

// PersistedState returns a deep-enough copy of the state with the
// session-only fields stripped: pause flag, time multiplier,
// notifications and the research queue do not survive a save.
func (p *Provider) PersistedState() (*model.GameState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == nil {
		return nil, ErrNotInitialized
	}

	persisted := *p.state
	persisted.IsPaused = false
	persisted.TimeMultiplier = 0
	persisted.Notifications = nil
	persisted.ResearchQueue = model.ResearchQueue{}
	return &persisted, nil
}

// RestorePersistedState installs a loaded state, re-seeding the
// session-only defaults, and notifies subscribers of the restored state.
func (p *Provider) RestorePersistedState(s *model.GameState) {
	restored := *s
	restored.IsPaused = false
	restored.TimeMultiplier = 1
	restored.Notifications = []model.Notification{}
	restored.ResearchQueue = model.ResearchQueue{Queue: []string{}, ResearchSpeed: 1}

	p.mu.Lock()
	p.state = &restored
	subs := make([]Subscriber, 0, len(p.subscribers))
	for _, sub := range p.subscribers {
		subs = append(subs, sub)
	}
	p.mu.Unlock()

	for _, sub := range subs {
		p.notify(sub, &restored, ActionType("RESTORE_PERSISTED_STATE"))
	}
}
