package model

// Market holds supply, demand, stockpile and price state for one region.
type Market struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Regions   []string           `json:"regions"`
	Prices    map[string]*Price  `json:"prices"`
	Supply    map[string]float64 `json:"supply"`
	Demand    map[string]float64 `json:"demand"`
	Stockpile map[string]float64 `json:"stockpile"`
	Events    []MarketEvent      `json:"events"`
}

// Price tracks one good's price with a bounded history ring.
type Price struct {
	BasePrice     float64             `json:"base_price"`
	CurrentPrice  float64             `json:"current_price"`
	PreviousPrice float64             `json:"previous_price"`
	History       []MarketPriceRecord `json:"history"`
}

// MarketPriceRecord is one historical market price sample.
type MarketPriceRecord struct {
	Date   GameDate `json:"date"`
	Price  float64  `json:"price"`
	Supply float64  `json:"supply"`
	Demand float64  `json:"demand"`
}

// MarketEventType classifies discrete market shocks.
type MarketEventType string

const (
	EventHarvest   MarketEventType = "harvest"
	EventFamine    MarketEventType = "famine"
	EventBoom      MarketEventType = "boom"
	EventRecession MarketEventType = "recession"
	EventDiscovery MarketEventType = "discovery"
)

// MarketEvent is a dated shock whose effects apply once on activation and
// lapse after EndDate.
type MarketEvent struct {
	ID          string             `json:"id"`
	Type        MarketEventType    `json:"type"`
	Description string             `json:"description"`
	StartDate   GameDate           `json:"start_date"`
	EndDate     *GameDate          `json:"end_date,omitempty"`
	Effects     MarketEventEffects `json:"effects"`
	IsActive    bool               `json:"is_active"`
}

// MarketEventEffects are multiplicative modifiers keyed by goods id.
type MarketEventEffects struct {
	SupplyModifier map[string]float64 `json:"supply_modifier,omitempty"`
	DemandModifier map[string]float64 `json:"demand_modifier,omitempty"`
	PriceModifier  map[string]float64 `json:"price_modifier,omitempty"`
}

// TradeStatus tracks a trade's lifecycle.
type TradeStatus string

const (
	TradeActive    TradeStatus = "active"
	TradePending   TradeStatus = "pending"
	TradeCancelled TradeStatus = "cancelled"
)

// TradeGoods is one line item of a trade.
type TradeGoods struct {
	GoodsID string  `json:"goods_id"`
	Amount  float64 `json:"amount"`
	Price   float64 `json:"price"`
}

// Trade is a completed or in-flight shipment between two markets.
type Trade struct {
	ID            string       `json:"id"`
	FromMarket    string       `json:"from_market"`
	ToMarket      string       `json:"to_market"`
	Goods         []TradeGoods `json:"goods"`
	TransportCost float64      `json:"transport_cost"`
	Tariff        float64      `json:"tariff"`
	Status        TradeStatus  `json:"status"`
}
