package econ

import (
	"errors"
	"fmt"

	"github.com/talgya/epochs/internal/model"
)

// Trade route errors.
var (
	ErrRouteNotFound = errors.New("trade route not found")
	ErrRouteInactive = errors.New("trade route is inactive")
	ErrRouteCapacity = errors.New("trade route capacity exceeded")
)

// defaultRouteLoad is the per-route shipment capacity.
const defaultRouteLoad = 100.0

// TradeRoute is a standing goods corridor between two markets.
type TradeRoute struct {
	ID           string        `json:"id"`
	FromMarket   string        `json:"from_market"`
	ToMarket     string        `json:"to_market"`
	GoodsIDs     []string      `json:"goods_ids"`
	IsActive     bool          `json:"is_active"`
	CurrentLoad  float64       `json:"current_load"`
	MaxLoad      float64       `json:"max_load"`
	TradeHistory []model.Trade `json:"trade_history"`
}

// TradeManager owns trade routes and the shipments flowing over them.
type TradeManager struct {
	routes    map[string]*TradeRoute
	nextTrade int
	nextRoute int
}

// NewTradeManager returns an empty TradeManager.
func NewTradeManager() *TradeManager {
	return &TradeManager{
		routes:    make(map[string]*TradeRoute),
		nextTrade: 1,
		nextRoute: 1,
	}
}

// CreateRoute opens an active route between two markets.
func (m *TradeManager) CreateRoute(fromMarket, toMarket string, goodsIDs []string) *TradeRoute {
	route := &TradeRoute{
		ID:           fmt.Sprintf("route_%d", m.nextRoute),
		FromMarket:   fromMarket,
		ToMarket:     toMarket,
		GoodsIDs:     append([]string(nil), goodsIDs...),
		IsActive:     true,
		MaxLoad:      defaultRouteLoad,
		TradeHistory: []model.Trade{},
	}
	m.nextRoute++
	m.routes[route.ID] = route
	return route
}

// Route returns a route by id.
func (m *TradeManager) Route(id string) (*TradeRoute, bool) {
	r, ok := m.routes[id]
	return r, ok
}

// Routes returns every route.
func (m *TradeManager) Routes() []*TradeRoute {
	out := make([]*TradeRoute, 0, len(m.routes))
	for _, r := range m.routes {
		out = append(out, r)
	}
	return out
}

// SetActive toggles a route.
func (m *TradeManager) SetActive(routeID string, active bool) error {
	r, ok := m.routes[routeID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRouteNotFound, routeID)
	}
	r.IsActive = active
	return nil
}

// ExecuteTrade ships goods over a route, consuming route load and
// appending the trade to the route's history.
func (m *TradeManager) ExecuteTrade(routeID, goodsID string, amount float64) (*model.Trade, error) {
	route, ok := m.routes[routeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, routeID)
	}
	if !route.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrRouteInactive, routeID)
	}
	if route.CurrentLoad+amount > route.MaxLoad {
		return nil, fmt.Errorf("%w: %s (%v + %v > %v)",
			ErrRouteCapacity, routeID, route.CurrentLoad, amount, route.MaxLoad)
	}

	trade := model.Trade{
		ID:         fmt.Sprintf("trade_%d", m.nextTrade),
		FromMarket: route.FromMarket,
		ToMarket:   route.ToMarket,
		Goods: []model.TradeGoods{
			{GoodsID: goodsID, Amount: amount, Price: 10},
		},
		TransportCost: 5,
		Tariff:        0,
		Status:        model.TradeActive,
	}
	m.nextTrade++

	route.CurrentLoad += amount
	route.TradeHistory = append(route.TradeHistory, trade)
	return &trade, nil
}

// ResetLoads clears the consumed load on every route, typically once per
// simulation day.
func (m *TradeManager) ResetLoads() {
	for _, r := range m.routes {
		r.CurrentLoad = 0
	}
}
