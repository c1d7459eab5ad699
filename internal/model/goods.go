package model

// Goods is a static catalog entry for one tradeable good.
type Goods struct {
	ID        string
	Name      string
	Class     GoodsClass
	Era       Era
	BasePrice float64
}

// GoodsCatalog maps goods ids to their static configuration.
var GoodsCatalog = map[string]Goods{
	"grain":  {ID: "grain", Name: "Grain", Class: GoodsRawMaterial, Era: EraStoneAge, BasePrice: 10},
	"meat":   {ID: "meat", Name: "Meat", Class: GoodsRawMaterial, Era: EraStoneAge, BasePrice: 30},
	"wood":   {ID: "wood", Name: "Wood", Class: GoodsRawMaterial, Era: EraStoneAge, BasePrice: 5},
	"stone":  {ID: "stone", Name: "Stone", Class: GoodsRawMaterial, Era: EraStoneAge, BasePrice: 8},
	"copper": {ID: "copper", Name: "Copper", Class: GoodsRawMaterial, Era: EraBronzeAge, BasePrice: 25},
	"tin":    {ID: "tin", Name: "Tin", Class: GoodsRawMaterial, Era: EraBronzeAge, BasePrice: 30},
	"iron":   {ID: "iron", Name: "Iron", Class: GoodsRawMaterial, Era: EraIronAge, BasePrice: 20},
	"coal":   {ID: "coal", Name: "Coal", Class: GoodsRawMaterial, Era: EraIndustrial, BasePrice: 15},
	"steel":  {ID: "steel", Name: "Steel", Class: GoodsIntermediate, Era: EraIndustrial, BasePrice: 100},
	"oil":    {ID: "oil", Name: "Oil", Class: GoodsRawMaterial, Era: EraElectrical, BasePrice: 80},
}

// BasePriceOf returns the catalog base price for a good, defaulting to 10
// for goods not in the catalog.
func BasePriceOf(goodsID string) float64 {
	if g, ok := GoodsCatalog[goodsID]; ok {
		return g.BasePrice
	}
	return 10
}
