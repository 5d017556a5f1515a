package game

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialState is the single source of truth for one running game.
// Only Service methods mutate it, always under the service mutex.
type FinancialState struct {
	GameID    string
	Day       int
	TotalDays int

	// Cash never goes negative: spends are rejected, not clamped.
	Cash decimal.Decimal

	LemonInventory int
	SugarInventory int
	CupInventory   int

	// Prepared lemonade and the historical cost attached to the unsold
	// units (weighted-average costing).
	PreparedInventory     int
	PreparedInventoryCost decimal.Decimal

	SalePrice     decimal.Decimal
	ProducedToday int

	CumulativeRevenue      decimal.Decimal
	CumulativeCOGS         decimal.Decimal
	CumulativeOpExpenses   decimal.Decimal
	CumulativeCashReceipts decimal.Decimal
	CumulativeCashPayments decimal.Decimal
	CumulativeProfit       decimal.Decimal

	InitialCapital decimal.Decimal
	Debt           decimal.Decimal

	QualityLevel int

	History        []DaySummary
	LastDayMessage string
}

// DaySummary is the immutable record of one completed day. Values are
// rounded to cents when the summary is created; the state accumulators
// keep full precision.
type DaySummary struct {
	Day         int             `json:"day"`
	Weather     string          `json:"weather"`
	Demand      int             `json:"demand"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cost_of_goods_sold"`
	Profit      decimal.Decimal `json:"profit"`
	ClosingCash decimal.Decimal `json:"closing_cash"`
}

// Config controls one game. Zero values fall back to the standard
// stand: 7 days, 100 euros capital, 1 euro per cup.
type Config struct {
	TotalDays      int
	InitialCapital decimal.Decimal
	DefaultPrice   decimal.Decimal

	// RandSeed fixes the weather and demand rolls for reproducible runs.
	// Zero seeds from the clock.
	RandSeed int64
}

func (c Config) withDefaults() Config {
	if c.TotalDays <= 0 {
		c.TotalDays = DefaultTotalDays
	}
	if c.InitialCapital.LessThanOrEqual(decimal.Zero) {
		c.InitialCapital = DefaultInitialCapital
	}
	if c.DefaultPrice.LessThanOrEqual(decimal.Zero) {
		c.DefaultPrice = DefaultSalePrice
	}
	return c
}

func newFinancialState(cfg Config) *FinancialState {
	return &FinancialState{
		GameID:         uuid.NewString(),
		Day:            1,
		TotalDays:      cfg.TotalDays,
		Cash:           cfg.InitialCapital,
		SalePrice:      cfg.DefaultPrice,
		InitialCapital: cfg.InitialCapital,
		History:        []DaySummary{},
	}
}

func (st *FinancialState) ended() bool {
	return st.Day > st.TotalDays
}

// recentHistory returns the last n day summaries, newest last.
func (st *FinancialState) recentHistory(n int) []DaySummary {
	if len(st.History) <= n {
		out := make([]DaySummary, len(st.History))
		copy(out, st.History)
		return out
	}
	out := make([]DaySummary, n)
	copy(out, st.History[len(st.History)-n:])
	return out
}
