package game

import "github.com/shopspring/decimal"

// Per-unit costs in euros.
var (
	CostLemon = decimal.NewFromFloat(0.50)
	CostSugar = decimal.NewFromFloat(0.10)
	CostCup   = decimal.NewFromFloat(0.08)

	// Cost of one unit of advertising effect. Spend below one unit buys nothing.
	AdCampaignBaseCost = decimal.NewFromFloat(5.00)
)

// Recipe: units of each ingredient consumed per cup of lemonade.
const (
	LemonsPerCup = 1
	SugarPerCup  = 1
	CupsPerCup   = 1
)

const (
	DefaultTotalDays = 7

	// Extra demand per accumulated quality level.
	demandPerQualityLevel = 8
)

var (
	DefaultInitialCapital = decimal.NewFromInt(100)
	DefaultSalePrice      = decimal.NewFromInt(1)
)

// UnitIngredientCost returns the ingredient cost of producing one cup.
func UnitIngredientCost() decimal.Decimal {
	lemons := CostLemon.Mul(decimal.NewFromInt(LemonsPerCup))
	sugar := CostSugar.Mul(decimal.NewFromInt(SugarPerCup))
	cups := CostCup.Mul(decimal.NewFromInt(CupsPerCup))
	return lemons.Add(sugar).Add(cups)
}
