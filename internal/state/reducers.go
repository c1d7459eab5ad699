package state

import (
	"github.com/talgya/epochs/internal/model"
	"github.com/talgya/epochs/internal/production"
)

// tick production assumptions: an average education level and full tool
// availability until labor markets feed real values in.
const (
	tickEducationLevel   = 2
	tickToolAvailability = 1.0
)

// Reduce applies one action to a state. It never mutates its input: a
// state-changing action yields a fresh *GameState with fresh maps on
// every mutated branch, while a no-op returns the identical pointer so
// callers can detect change by comparison.
func Reduce(s *model.GameState, action GameAction) *model.GameState {
	switch action.Type {
	case ActionTickTime:
		p, ok := action.Payload.(TickTimePayload)
		if !ok {
			return s
		}
		return reduceTickTime(s, p)
	case ActionSetPause:
		if s.IsPaused {
			return s
		}
		next := *s
		next.IsPaused = true
		return &next
	case ActionSetResume:
		if !s.IsPaused {
			return s
		}
		next := *s
		next.IsPaused = false
		return &next
	case ActionSetTimeMultiplier:
		m, ok := action.Payload.(float64)
		if !ok {
			return s
		}
		if m == 0 {
			m = 1
		}
		if s.TimeMultiplier == m {
			return s
		}
		next := *s
		next.TimeMultiplier = m
		return &next
	case ActionCreateBuilding:
		p, ok := action.Payload.(CreateBuildingPayload)
		if !ok {
			return s
		}
		return reduceCreateBuilding(s, p)
	case ActionUpgradeBuilding:
		p, ok := action.Payload.(UpgradeBuildingPayload)
		if !ok {
			return s
		}
		return reduceUpgradeBuilding(s, p)
	case ActionRemoveBuilding:
		id, ok := action.Payload.(string)
		if !ok {
			return s
		}
		return reduceRemoveBuilding(s, id)
	case ActionSetProductionMethod:
		p, ok := action.Payload.(SetProductionMethodPayload)
		if !ok {
			return s
		}
		return reduceSetProductionMethod(s, p)
	case ActionSetWorkers:
		p, ok := action.Payload.(SetWorkersPayload)
		if !ok {
			return s
		}
		return reduceSetWorkers(s, p)
	case ActionAssignWorker:
		p, ok := action.Payload.(WorkerAssignmentPayload)
		if !ok {
			return s
		}
		return reduceWorkerAssignment(s, p, true)
	case ActionRemoveWorker:
		p, ok := action.Payload.(WorkerAssignmentPayload)
		if !ok {
			return s
		}
		return reduceWorkerAssignment(s, p, false)
	case ActionUpdatePopulation:
		p, ok := action.Payload.(UpdatePopulationPayload)
		if !ok {
			return s
		}
		return reduceUpdatePopulation(s, p)
	case ActionAddPopulation:
		p, ok := action.Payload.(AddPopulationPayload)
		if !ok || p.Population == nil {
			return s
		}
		return reduceAddPopulation(s, p)
	case ActionAddSupply:
		p, ok := action.Payload.(MarketGoodsPayload)
		if !ok {
			return s
		}
		return reduceMarketAdd(s, p, true)
	case ActionAddDemand:
		p, ok := action.Payload.(MarketGoodsPayload)
		if !ok {
			return s
		}
		return reduceMarketAdd(s, p, false)
	case ActionExecuteTransaction:
		p, ok := action.Payload.(ExecuteTransactionPayload)
		if !ok {
			return s
		}
		return reduceExecuteTransaction(s, p)
	case ActionAddTechToQueue:
		id, ok := action.Payload.(string)
		if !ok {
			return s
		}
		return reduceAddTechToQueue(s, id)
	case ActionRemoveTechFromQueue:
		id, ok := action.Payload.(string)
		if !ok {
			return s
		}
		return reduceRemoveTechFromQueue(s, id)
	case ActionUnlockTech:
		id, ok := action.Payload.(string)
		if !ok {
			return s
		}
		return reduceUnlockTech(s, id)
	case ActionAddNotification:
		p, ok := action.Payload.(NotificationPayload)
		if !ok {
			return s
		}
		next := *s
		next.Notifications = append(append([]model.Notification(nil), s.Notifications...), p.Notification)
		return &next
	case ActionRemoveNotification:
		p, ok := action.Payload.(NotificationPayload)
		if !ok {
			return s
		}
		return reduceRemoveNotification(s, p.ID)
	case ActionSetResourceMoney:
		amount, ok := action.Payload.(float64)
		if !ok || s.Resources.Money == amount {
			return s
		}
		next := *s
		next.Resources.Money = amount
		return &next
	case ActionSetGoodsQuantity:
		p, ok := action.Payload.(GoodsQuantityPayload)
		if !ok {
			return s
		}
		next := *s
		goods := copyFloatMap(s.Resources.Goods)
		goods[p.GoodsID] = p.Amount
		next.Resources.Goods = goods
		return &next
	case ActionAddTileStorage:
		p, ok := action.Payload.(TileStoragePayload)
		if !ok {
			return s
		}
		return reduceTileStorage(s, p, 1)
	case ActionRemoveTileStorage:
		p, ok := action.Payload.(TileStoragePayload)
		if !ok {
			return s
		}
		return reduceTileStorage(s, p, -1)
	case ActionAddGlobalStorage:
		p, ok := action.Payload.(GlobalStoragePayload)
		if !ok {
			return s
		}
		return reduceGlobalStorage(s, p, 1)
	case ActionRemoveGlobalStorage:
		p, ok := action.Payload.(GlobalStoragePayload)
		if !ok {
			return s
		}
		return reduceGlobalStorage(s, p, -1)
	default:
		return s
	}
}

// ReduceBatch folds a list of actions in order.
func ReduceBatch(s *model.GameState, actions []GameAction) *model.GameState {
	for _, action := range actions {
		s = Reduce(s, action)
	}
	return s
}

var tickCalculator = production.NewCalculator()

// reduceTickTime advances the calendar under the 365-day/30-day-month
// convention, then runs one production pass: every staffed building
// with a recognized method adds its outputs to its tile's storage.
func reduceTickTime(s *model.GameState, p TickTimePayload) *model.GameState {
	totalDays := s.Date.Year*365 + (s.Date.Month-1)*30 + s.Date.Day + p.Days
	rem := totalDays % 365

	month := (rem-1)/30 + 1
	if rem == 0 {
		// floored division: the 365th day of a year is month 0, day 0
		month = 0
	}

	next := *s
	next.Date = model.GameDate{
		Year:  totalDays / 365,
		Month: month,
		Day:   (rem-1)%30 + 1,
	}
	next.TickCount = s.TickCount + 1

	tiles := s.Tiles
	copied := make(map[string]bool)
	for _, b := range s.Buildings {
		if b.CurrentWorkers <= 0 {
			continue
		}
		methodID, ok := b.ActiveMethod()
		if !ok {
			continue
		}
		if _, ok := model.ProductionMethods[methodID]; !ok {
			continue
		}
		tile, ok := tiles[b.TileID]
		if !ok {
			continue
		}

		result := tickCalculator.Calculate(b, b.CurrentWorkers, s.Era, tickEducationLevel, tickToolAvailability)
		if len(result.Outputs) == 0 {
			continue
		}

		if !copied[b.TileID] {
			if len(copied) == 0 {
				tiles = copyTileMap(s.Tiles)
			}
			fresh := *tile
			fresh.Storage = copyFloatMap(tile.Storage)
			tiles[b.TileID] = &fresh
			copied[b.TileID] = true
			tile = &fresh
		}
		for goodsID, amount := range result.Outputs {
			tile.Storage[goodsID] += amount
		}
	}
	next.Tiles = tiles

	return &next
}

func reduceCreateBuilding(s *model.GameState, p CreateBuildingPayload) *model.GameState {
	cfg, ok := model.BuildingConfigByType(p.Type)
	if !ok {
		return s
	}

	next := *s
	buildings := copyBuildingMap(s.Buildings)
	buildings[p.BuildingID] = &model.Building{
		ID:                p.BuildingID,
		Name:              cfg.Name,
		Type:              cfg.Type,
		MinEra:            cfg.MinEra,
		ConstructionCost:  copyFloatMap(cfg.ConstructionCost),
		ConstructionTime:  cfg.ConstructionTime,
		BaseWorkers:       cfg.BaseWorkers,
		MaxWorkers:        cfg.MaxWorkers,
		BaseThroughput:    cfg.BaseThroughput,
		ProductionMethods: append([]string(nil), cfg.ProductionMethods...),
		Level:             1,
		TileID:            p.TileID,
	}
	next.Buildings = buildings
	return &next
}

func reduceUpgradeBuilding(s *model.GameState, p UpgradeBuildingPayload) *model.GameState {
	b, ok := s.Buildings[p.BuildingID]
	if !ok {
		return s
	}

	fresh := *b
	if p.Level > 0 {
		fresh.Level = p.Level
	} else {
		fresh.Level = b.Level + 1
	}

	next := *s
	buildings := copyBuildingMap(s.Buildings)
	buildings[p.BuildingID] = &fresh
	next.Buildings = buildings
	return &next
}

func reduceRemoveBuilding(s *model.GameState, id string) *model.GameState {
	if _, ok := s.Buildings[id]; !ok {
		return s
	}
	next := *s
	buildings := copyBuildingMap(s.Buildings)
	delete(buildings, id)
	next.Buildings = buildings
	return &next
}

func reduceSetProductionMethod(s *model.GameState, p SetProductionMethodPayload) *model.GameState {
	b, ok := s.Buildings[p.BuildingID]
	if !ok {
		return s
	}
	available := false
	for _, id := range b.ProductionMethods {
		if id == p.MethodID {
			available = true
			break
		}
	}
	if !available {
		return s
	}

	fresh := *b
	fresh.ProductionMethods = []string{p.MethodID}

	next := *s
	buildings := copyBuildingMap(s.Buildings)
	buildings[p.BuildingID] = &fresh
	next.Buildings = buildings
	return &next
}

func reduceSetWorkers(s *model.GameState, p SetWorkersPayload) *model.GameState {
	b, ok := s.Buildings[p.BuildingID]
	if !ok {
		return s
	}
	workers := p.Workers
	if workers < 0 {
		workers = 0
	}
	if workers > b.MaxWorkers {
		workers = b.MaxWorkers
	}
	if workers == b.CurrentWorkers {
		return s
	}

	fresh := *b
	fresh.CurrentWorkers = workers

	next := *s
	buildings := copyBuildingMap(s.Buildings)
	buildings[p.BuildingID] = &fresh
	next.Buildings = buildings
	return &next
}

func reduceWorkerAssignment(s *model.GameState, p WorkerAssignmentPayload, assign bool) *model.GameState {
	pop, ok := s.Populations[p.TileID]
	if !ok {
		return s
	}

	groupIdx := -1
	for i := range pop.Groups {
		if pop.Groups[i].ID == p.GroupID {
			groupIdx = i
			break
		}
	}
	if groupIdx < 0 {
		return s
	}
	if !assign && pop.Groups[groupIdx].Workplace != p.BuildingID {
		return s
	}

	fresh := *pop
	fresh.Groups = append([]model.PopulationGroup(nil), pop.Groups...)
	if assign {
		fresh.Groups[groupIdx].Workplace = p.BuildingID
		fresh.Groups[groupIdx].Employment = model.Employed
	} else {
		fresh.Groups[groupIdx].Workplace = ""
		fresh.Groups[groupIdx].Employment = model.Unemployed
	}

	next := *s
	populations := copyPopulationMap(s.Populations)
	populations[p.TileID] = &fresh
	next.Populations = populations
	return &next
}

func reduceUpdatePopulation(s *model.GameState, p UpdatePopulationPayload) *model.GameState {
	pop, ok := s.Populations[p.TileID]
	if !ok {
		return s
	}

	fresh := *pop
	if p.Fields.TotalPopulation != nil {
		fresh.TotalPopulation = *p.Fields.TotalPopulation
	}
	if p.Fields.BirthRate != nil {
		fresh.BirthRate = *p.Fields.BirthRate
	}
	if p.Fields.DeathRate != nil {
		fresh.DeathRate = *p.Fields.DeathRate
	}
	if p.Fields.NetMigration != nil {
		fresh.NetMigration = *p.Fields.NetMigration
	}
	if p.Fields.Groups != nil {
		fresh.Groups = append([]model.PopulationGroup(nil), p.Fields.Groups...)
	}

	next := *s
	populations := copyPopulationMap(s.Populations)
	populations[p.TileID] = &fresh
	next.Populations = populations
	return &next
}

func reduceAddPopulation(s *model.GameState, p AddPopulationPayload) *model.GameState {
	next := *s
	populations := copyPopulationMap(s.Populations)
	populations[p.TileID] = p.Population
	next.Populations = populations
	return &next
}

func reduceMarketAdd(s *model.GameState, p MarketGoodsPayload, supply bool) *model.GameState {
	market, ok := s.Markets[p.MarketID]
	if !ok {
		return s
	}

	fresh := *market
	if supply {
		fresh.Supply = copyFloatMap(market.Supply)
		fresh.Supply[p.GoodsID] += p.Amount
	} else {
		fresh.Demand = copyFloatMap(market.Demand)
		fresh.Demand[p.GoodsID] += p.Amount
	}

	next := *s
	markets := copyMarketMap(s.Markets)
	markets[p.MarketID] = &fresh
	next.Markets = markets
	return &next
}

func reduceExecuteTransaction(s *model.GameState, p ExecuteTransactionPayload) *model.GameState {
	market, ok := s.Markets[p.MarketID]
	if !ok {
		return s
	}

	fresh := *market
	fresh.Supply = copyFloatMap(market.Supply)
	fresh.Demand = copyFloatMap(market.Demand)
	fresh.Supply[p.GoodsID] -= p.Amount
	if fresh.Supply[p.GoodsID] < 0 {
		fresh.Supply[p.GoodsID] = 0
	}
	fresh.Demand[p.GoodsID] -= p.Amount
	if fresh.Demand[p.GoodsID] < 0 {
		fresh.Demand[p.GoodsID] = 0
	}

	if price, ok := market.Prices[p.GoodsID]; ok {
		fresh.Prices = copyPriceMap(market.Prices)
		updated := *price
		updated.PreviousPrice = price.CurrentPrice
		updated.CurrentPrice = p.Price
		fresh.Prices[p.GoodsID] = &updated
	}

	next := *s
	markets := copyMarketMap(s.Markets)
	markets[p.MarketID] = &fresh
	next.Markets = markets
	return &next
}

func reduceAddTechToQueue(s *model.GameState, id string) *model.GameState {
	if _, owned := s.Technologies[id]; owned {
		return s
	}
	if s.ResearchQueue.Current != nil && s.ResearchQueue.Current.Tech == id {
		return s
	}
	for _, queued := range s.ResearchQueue.Queue {
		if queued == id {
			return s
		}
	}

	next := *s
	next.ResearchQueue.Queue = append(append([]string(nil), s.ResearchQueue.Queue...), id)
	return &next
}

func reduceRemoveTechFromQueue(s *model.GameState, id string) *model.GameState {
	idx := -1
	for i, queued := range s.ResearchQueue.Queue {
		if queued == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	next := *s
	queue := append([]string(nil), s.ResearchQueue.Queue...)
	next.ResearchQueue.Queue = append(queue[:idx], queue[idx+1:]...)
	return &next
}

func reduceUnlockTech(s *model.GameState, id string) *model.GameState {
	_, owned := s.Technologies[id]
	inQueue := false
	for _, queued := range s.ResearchQueue.Queue {
		if queued == id {
			inQueue = true
			break
		}
	}
	isCurrent := s.ResearchQueue.Current != nil && s.ResearchQueue.Current.Tech == id
	if owned && !inQueue && !isCurrent {
		return s
	}

	next := *s
	techs := make(map[string]struct{}, len(s.Technologies)+1)
	for t := range s.Technologies {
		techs[t] = struct{}{}
	}
	techs[id] = struct{}{}
	next.Technologies = techs

	if inQueue {
		queue := make([]string, 0, len(s.ResearchQueue.Queue))
		for _, queued := range s.ResearchQueue.Queue {
			if queued != id {
				queue = append(queue, queued)
			}
		}
		next.ResearchQueue.Queue = queue
	}
	if isCurrent {
		next.ResearchQueue.Current = nil
	}
	return &next
}

func reduceRemoveNotification(s *model.GameState, id string) *model.GameState {
	idx := -1
	for i, n := range s.Notifications {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	next := *s
	notifications := make([]model.Notification, 0, len(s.Notifications)-1)
	notifications = append(notifications, s.Notifications[:idx]...)
	notifications = append(notifications, s.Notifications[idx+1:]...)
	next.Notifications = notifications
	return &next
}

func reduceTileStorage(s *model.GameState, p TileStoragePayload, sign float64) *model.GameState {
	tile, ok := s.Tiles[p.TileID]
	if !ok {
		return s
	}

	fresh := *tile
	fresh.Storage = copyFloatMap(tile.Storage)
	fresh.Storage[p.GoodsID] += sign * p.Amount
	if fresh.Storage[p.GoodsID] < 0 {
		fresh.Storage[p.GoodsID] = 0
	}

	next := *s
	tiles := copyTileMap(s.Tiles)
	tiles[p.TileID] = &fresh
	next.Tiles = tiles
	return &next
}

func reduceGlobalStorage(s *model.GameState, p GlobalStoragePayload, sign float64) *model.GameState {
	next := *s
	global := copyFloatMap(s.GlobalStorage)
	global[p.GoodsID] += sign * p.Amount
	if global[p.GoodsID] < 0 {
		global[p.GoodsID] = 0
	}
	next.GlobalStorage = global
	return &next
}

func copyFloatMap(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyTileMap(in map[string]*model.Tile) map[string]*model.Tile {
	out := make(map[string]*model.Tile, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyBuildingMap(in map[string]*model.Building) map[string]*model.Building {
	out := make(map[string]*model.Building, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyPopulationMap(in map[string]*model.Population) map[string]*model.Population {
	out := make(map[string]*model.Population, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyMarketMap(in map[string]*model.Market) map[string]*model.Market {
	out := make(map[string]*model.Market, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyPriceMap(in map[string]*model.Price) map[string]*model.Price {
	out := make(map[string]*model.Price, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
