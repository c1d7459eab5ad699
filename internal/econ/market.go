package econ

import (
	"fmt"

	"github.com/talgya/epochs/internal/model"
)

// maxMarketHistory bounds each good's retained market price records.
const maxMarketHistory = 50

// MarketManager operates one regional market: supply/demand bookkeeping,
// price refresh cycles, transactions and dated market events.
type MarketManager struct {
	market *model.Market
	calc   *PriceCalculator
}

// NewMarketManager wraps an existing market.
func NewMarketManager(market *model.Market) *MarketManager {
	return &MarketManager{market: market, calc: NewPriceCalculator()}
}

// NewMarket builds an empty market.
func NewMarket(id, name string, regions []string) *model.Market {
	return &model.Market{
		ID:        id,
		Name:      name,
		Regions:   regions,
		Prices:    make(map[string]*model.Price),
		Supply:    make(map[string]float64),
		Demand:    make(map[string]float64),
		Stockpile: make(map[string]float64),
		Events:    []model.MarketEvent{},
	}
}

// Market exposes the underlying market.
func (m *MarketManager) Market() *model.Market { return m.market }

// RegisterGoods ensures a price entry exists for a good.
func (m *MarketManager) RegisterGoods(goodsID string) {
	if _, ok := m.market.Prices[goodsID]; ok {
		return
	}
	base := model.BasePriceOf(goodsID)
	m.market.Prices[goodsID] = &model.Price{
		BasePrice:     base,
		CurrentPrice:  base,
		PreviousPrice: base,
		History:       []model.MarketPriceRecord{},
	}
}

// AddSupply credits supply and the stockpile.
func (m *MarketManager) AddSupply(goodsID string, amount float64) {
	m.market.Supply[goodsID] += amount
	m.market.Stockpile[goodsID] += amount
}

// AddDemand credits demand.
func (m *MarketManager) AddDemand(goodsID string, amount float64) {
	m.market.Demand[goodsID] += amount
}

// Supply returns the current supply for a good.
func (m *MarketManager) Supply(goodsID string) float64 { return m.market.Supply[goodsID] }

// Demand returns the current demand for a good.
func (m *MarketManager) Demand(goodsID string) float64 { return m.market.Demand[goodsID] }

// Price returns the current market price, or the catalog base price for
// unregistered goods.
func (m *MarketManager) Price(goodsID string) float64 {
	if p, ok := m.market.Prices[goodsID]; ok {
		return p.CurrentPrice
	}
	return model.BasePriceOf(goodsID)
}

// UpdatePrices refreshes every registered good's price from current
// supply, demand and stockpile, recording a dated history sample.
func (m *MarketManager) UpdatePrices(date model.GameDate) {
	for goodsID, price := range m.market.Prices {
		price.PreviousPrice = price.CurrentPrice
		price.CurrentPrice = m.calc.Price(
			price.BasePrice,
			m.market.Supply[goodsID],
			m.market.Demand[goodsID],
			m.market.Stockpile[goodsID],
		)

		price.History = append(price.History, model.MarketPriceRecord{
			Date:   date,
			Price:  price.CurrentPrice,
			Supply: m.market.Supply[goodsID],
			Demand: m.market.Demand[goodsID],
		})
		if len(price.History) > maxMarketHistory {
			price.History = price.History[len(price.History)-maxMarketHistory:]
		}
	}
}

// ExecuteTransaction settles a purchase or sale at the current price and
// returns the money moved. Purchases register demand and draw down the
// stockpile; sales register supply.
func (m *MarketManager) ExecuteTransaction(goodsID string, amount float64, isPurchase bool) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("transaction amount must be positive: %v", amount)
	}
	m.RegisterGoods(goodsID)

	if isPurchase {
		m.AddDemand(goodsID, amount)
		remaining := m.market.Stockpile[goodsID] - amount
		if remaining < 0 {
			remaining = 0
		}
		m.market.Stockpile[goodsID] = remaining
	} else {
		m.AddSupply(goodsID, amount)
	}

	return m.Price(goodsID) * amount, nil
}

// AddEvent queues a market event for activation.
func (m *MarketManager) AddEvent(event model.MarketEvent) {
	m.market.Events = append(m.market.Events, event)
}

// ProcessEvents drops events past their end date and applies the effects
// of newly active ones. Effects apply once, on the tick the event
// activates.
func (m *MarketManager) ProcessEvents(date model.GameDate) {
	kept := m.market.Events[:0]
	for i := range m.market.Events {
		ev := m.market.Events[i]
		if ev.EndDate != nil && date.After(*ev.EndDate) {
			continue
		}
		if !ev.IsActive && !date.Before(ev.StartDate) {
			m.applyEventEffects(ev.Effects)
			ev.IsActive = true
		}
		kept = append(kept, ev)
	}
	m.market.Events = kept
}

func (m *MarketManager) applyEventEffects(effects model.MarketEventEffects) {
	for goodsID, modifier := range effects.SupplyModifier {
		m.market.Supply[goodsID] *= 1 + modifier
	}
	for goodsID, modifier := range effects.DemandModifier {
		m.market.Demand[goodsID] *= 1 + modifier
	}
	for goodsID, modifier := range effects.PriceModifier {
		if p, ok := m.market.Prices[goodsID]; ok {
			p.CurrentPrice *= 1 + modifier
		}
	}
}
