// Package state implements the simulation's action/reducer core: typed
// actions, the pure root reducer over GameState, the dispatching
// provider and read-only selectors.
package state

import (
	"time"

	"github.com/talgya/epochs/internal/model"
)

// ActionType discriminates the payload carried by a GameAction.
type ActionType string

const (
	ActionTickTime            ActionType = "TICK_TIME"
	ActionSetPause            ActionType = "SET_PAUSE"
	ActionSetResume           ActionType = "SET_RESUME"
	ActionSetTimeMultiplier   ActionType = "SET_TIME_MULTIPLIER"
	ActionCreateBuilding      ActionType = "CREATE_BUILDING"
	ActionUpgradeBuilding     ActionType = "UPGRADE_BUILDING"
	ActionRemoveBuilding      ActionType = "REMOVE_BUILDING"
	ActionSetProductionMethod ActionType = "SET_PRODUCTION_METHOD"
	ActionSetWorkers          ActionType = "SET_WORKERS"
	ActionAssignWorker        ActionType = "ASSIGN_WORKER"
	ActionRemoveWorker        ActionType = "REMOVE_WORKER"
	ActionUpdatePopulation    ActionType = "UPDATE_POPULATION"
	ActionAddPopulation       ActionType = "ADD_POPULATION"
	ActionAddSupply           ActionType = "ADD_SUPPLY"
	ActionAddDemand           ActionType = "ADD_DEMAND"
	ActionExecuteTransaction  ActionType = "EXECUTE_TRANSACTION"
	ActionAddTechToQueue      ActionType = "ADD_TECH_TO_QUEUE"
	ActionRemoveTechFromQueue ActionType = "REMOVE_TECH_FROM_QUEUE"
	ActionUnlockTech          ActionType = "UNLOCK_TECH"
	ActionAddNotification     ActionType = "ADD_NOTIFICATION"
	ActionRemoveNotification  ActionType = "REMOVE_NOTIFICATION"
	ActionSetResourceMoney    ActionType = "SET_RESOURCE_MONEY"
	ActionSetGoodsQuantity    ActionType = "SET_GOODS_QUANTITY"
	ActionAddTileStorage      ActionType = "ADD_TILE_STORAGE"
	ActionRemoveTileStorage   ActionType = "REMOVE_TILE_STORAGE"
	ActionAddGlobalStorage    ActionType = "ADD_GLOBAL_STORAGE"
	ActionRemoveGlobalStorage ActionType = "REMOVE_GLOBAL_STORAGE"
)

// GameAction is one unit of state change.
type GameAction struct {
	Type      ActionType
	Payload   any
	Timestamp int64
}

func newAction(t ActionType, payload any) GameAction {
	return GameAction{Type: t, Payload: payload, Timestamp: time.Now().UnixMilli()}
}

// TickTimePayload advances the calendar and runs production.
type TickTimePayload struct {
	Days int
}

// CreateBuildingPayload places a new building on a tile.
type CreateBuildingPayload struct {
	BuildingID string
	Type       model.BuildingType
	TileID     string
}

// UpgradeBuildingPayload raises a building's level. A zero Level means
// "one level up".
type UpgradeBuildingPayload struct {
	BuildingID string
	Level      int
}

// SetProductionMethodPayload selects a building's active method.
type SetProductionMethodPayload struct {
	BuildingID string
	MethodID   string
}

// SetWorkersPayload sets a building's worker count.
type SetWorkersPayload struct {
	BuildingID string
	Workers    int
}

// WorkerAssignmentPayload binds or releases a population group and a
// building.
type WorkerAssignmentPayload struct {
	TileID     string
	GroupID    string
	BuildingID string
}

// UpdatePopulationPayload shallow-merges fields into a population.
type UpdatePopulationPayload struct {
	TileID string
	Fields PopulationFields
}

// PopulationFields are the optional fields an UPDATE_POPULATION action
// may overwrite. Nil pointers leave the current value untouched.
type PopulationFields struct {
	TotalPopulation *int
	BirthRate       *float64
	DeathRate       *float64
	NetMigration    *float64
	Groups          []model.PopulationGroup
}

// MarketGoodsPayload adds supply or demand for a good on a market.
type MarketGoodsPayload struct {
	MarketID string
	GoodsID  string
	Amount   float64
}

// ExecuteTransactionPayload settles a buy or sell against a market.
type ExecuteTransactionPayload struct {
	MarketID string
	GoodsID  string
	Amount   float64
	Price    float64
}

// NotificationPayload carries a notification to add or an id to remove.
type NotificationPayload struct {
	Notification model.Notification
	ID           string
}

// GoodsQuantityPayload sets an absolute goods amount in player
// resources.
type GoodsQuantityPayload struct {
	GoodsID string
	Amount  float64
}

// TileStoragePayload moves goods in or out of one tile's storage.
type TileStoragePayload struct {
	TileID  string
	GoodsID string
	Amount  float64
}

// GlobalStoragePayload moves goods in or out of global storage.
type GlobalStoragePayload struct {
	GoodsID string
	Amount  float64
}

// AddPopulationPayload inserts a full population aggregate.
type AddPopulationPayload struct {
	TileID     string
	Population *model.Population
}

// TickTime advances the calendar by days and runs one production pass.
func TickTime(days int) GameAction {
	return newAction(ActionTickTime, TickTimePayload{Days: days})
}

// SetPause pauses the simulation.
func SetPause() GameAction { return newAction(ActionSetPause, nil) }

// SetResume resumes the simulation.
func SetResume() GameAction { return newAction(ActionSetResume, nil) }

// SetTimeMultiplier sets the simulation speed factor.
func SetTimeMultiplier(multiplier float64) GameAction {
	return newAction(ActionSetTimeMultiplier, multiplier)
}

// CreateBuilding places a new building of a catalog type on a tile.
func CreateBuilding(buildingID string, buildingType model.BuildingType, tileID string) GameAction {
	return newAction(ActionCreateBuilding, CreateBuildingPayload{
		BuildingID: buildingID,
		Type:       buildingType,
		TileID:     tileID,
	})
}

// UpgradeBuilding raises a building to level, or one level up when
// level is 0.
func UpgradeBuilding(buildingID string, level int) GameAction {
	return newAction(ActionUpgradeBuilding, UpgradeBuildingPayload{BuildingID: buildingID, Level: level})
}

// RemoveBuilding deletes a building.
func RemoveBuilding(buildingID string) GameAction {
	return newAction(ActionRemoveBuilding, buildingID)
}

// SetProductionMethod selects a building's active production method.
func SetProductionMethod(buildingID, methodID string) GameAction {
	return newAction(ActionSetProductionMethod, SetProductionMethodPayload{
		BuildingID: buildingID,
		MethodID:   methodID,
	})
}

// SetWorkers sets a building's worker count, clamped by the reducer.
func SetWorkers(buildingID string, workers int) GameAction {
	return newAction(ActionSetWorkers, SetWorkersPayload{BuildingID: buildingID, Workers: workers})
}

// AssignWorker points a population group at a workplace.
func AssignWorker(tileID, groupID, buildingID string) GameAction {
	return newAction(ActionAssignWorker, WorkerAssignmentPayload{
		TileID:     tileID,
		GroupID:    groupID,
		BuildingID: buildingID,
	})
}

// RemoveWorker clears a population group's workplace.
func RemoveWorker(tileID, groupID, buildingID string) GameAction {
	return newAction(ActionRemoveWorker, WorkerAssignmentPayload{
		TileID:     tileID,
		GroupID:    groupID,
		BuildingID: buildingID,
	})
}

// UpdatePopulation shallow-merges fields into a tile's population.
func UpdatePopulation(tileID string, fields PopulationFields) GameAction {
	return newAction(ActionUpdatePopulation, UpdatePopulationPayload{TileID: tileID, Fields: fields})
}

// AddPopulation inserts a full population aggregate for a tile.
func AddPopulation(tileID string, population *model.Population) GameAction {
	return newAction(ActionAddPopulation, AddPopulationPayload{TileID: tileID, Population: population})
}

// AddSupply credits market supply.
func AddSupply(marketID, goodsID string, amount float64) GameAction {
	return newAction(ActionAddSupply, MarketGoodsPayload{MarketID: marketID, GoodsID: goodsID, Amount: amount})
}

// AddDemand credits market demand.
func AddDemand(marketID, goodsID string, amount float64) GameAction {
	return newAction(ActionAddDemand, MarketGoodsPayload{MarketID: marketID, GoodsID: goodsID, Amount: amount})
}

// ExecuteTransaction settles a transaction against a market.
func ExecuteTransaction(marketID, goodsID string, amount, price float64) GameAction {
	return newAction(ActionExecuteTransaction, ExecuteTransactionPayload{
		MarketID: marketID,
		GoodsID:  goodsID,
		Amount:   amount,
		Price:    price,
	})
}

// AddTechToQueue appends a technology to the research queue.
func AddTechToQueue(techID string) GameAction {
	return newAction(ActionAddTechToQueue, techID)
}

// RemoveTechFromQueue removes a technology from the research queue.
func RemoveTechFromQueue(techID string) GameAction {
	return newAction(ActionRemoveTechFromQueue, techID)
}

// UnlockTech grants a technology.
func UnlockTech(techID string) GameAction {
	return newAction(ActionUnlockTech, techID)
}

// AddNotification appends a notification.
func AddNotification(n model.Notification) GameAction {
	return newAction(ActionAddNotification, NotificationPayload{Notification: n})
}

// RemoveNotification deletes a notification by id.
func RemoveNotification(id string) GameAction {
	return newAction(ActionRemoveNotification, NotificationPayload{ID: id})
}

// SetResourceMoney sets the player's money to an absolute value.
func SetResourceMoney(amount float64) GameAction {
	return newAction(ActionSetResourceMoney, amount)
}

// SetGoodsQuantity sets an absolute goods amount in player resources.
func SetGoodsQuantity(goodsID string, amount float64) GameAction {
	return newAction(ActionSetGoodsQuantity, GoodsQuantityPayload{GoodsID: goodsID, Amount: amount})
}

// AddTileStorage credits goods to a tile's storage.
func AddTileStorage(tileID, goodsID string, amount float64) GameAction {
	return newAction(ActionAddTileStorage, TileStoragePayload{TileID: tileID, GoodsID: goodsID, Amount: amount})
}

// RemoveTileStorage debits goods from a tile's storage, floored at 0.
func RemoveTileStorage(tileID, goodsID string, amount float64) GameAction {
	return newAction(ActionRemoveTileStorage, TileStoragePayload{TileID: tileID, GoodsID: goodsID, Amount: amount})
}

// AddGlobalStorage credits goods to global storage.
func AddGlobalStorage(goodsID string, amount float64) GameAction {
	return newAction(ActionAddGlobalStorage, GlobalStoragePayload{GoodsID: goodsID, Amount: amount})
}

// RemoveGlobalStorage debits goods from global storage, floored at 0.
func RemoveGlobalStorage(goodsID string, amount float64) GameAction {
	return newAction(ActionRemoveGlobalStorage, GlobalStoragePayload{GoodsID: goodsID, Amount: amount})
}
