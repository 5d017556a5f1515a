package game

import "github.com/shopspring/decimal"

// StateSnapshot is the full public view of a game, shared by the HTTP
// handlers and the CLI. Money values come out rounded to cents.
type StateSnapshot struct {
	GameID    string `json:"game_id"`
	Day       int    `json:"day"`
	TotalDays int    `json:"total_days"`
	Ended     bool   `json:"ended"`

	Cash decimal.Decimal `json:"cash"`

	LemonInventory    int `json:"lemon_inventory"`
	SugarInventory    int `json:"sugar_inventory"`
	CupInventory      int `json:"cup_inventory"`
	PreparedInventory int `json:"prepared_inventory"`
	ProducedToday     int `json:"produced_today"`

	SalePrice    decimal.Decimal `json:"sale_price"`
	QualityLevel int             `json:"quality_level"`

	Weather    string `json:"weather"`
	BaseDemand int    `json:"base_demand"`

	LastDayMessage string       `json:"last_day_message"`
	History        []DaySummary `json:"history"`

	BalanceSheet    BalanceSheet    `json:"balance_sheet"`
	IncomeStatement IncomeStatement `json:"income_statement"`
	CashFlow        CashFlowSummary `json:"cash_flow"`
}

// PurchaseResult reports one completed ingredient purchase.
type PurchaseResult struct {
	Message string          `json:"message"`
	Cost    decimal.Decimal `json:"cost"`
	Cash    decimal.Decimal `json:"cash"`
}

type PriceResult struct {
	Message   string          `json:"message"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

type ProduceResult struct {
	Message       string `json:"message"`
	Produced      int    `json:"produced"`
	ProducedToday int    `json:"produced_today"`
}

type AdResult struct {
	Message       string `json:"message"`
	QualityGained int    `json:"quality_gained"`
}

// DayResult is what AdvanceDay hands back: the narration line and, when
// a day actually ran, its summary. GameOver marks the no-op past the
// end of the season.
type DayResult struct {
	GameOver bool        `json:"game_over"`
	Message  string      `json:"message"`
	Summary  *DaySummary `json:"summary,omitempty"`

	gameID string
}

func (s *Service) snapshotLocked() StateSnapshot {
	st := s.state
	return StateSnapshot{
		GameID:    st.GameID,
		Day:       st.Day,
		TotalDays: st.TotalDays,
		Ended:     st.ended(),

		Cash: st.Cash.Round(2),

		LemonInventory:    st.LemonInventory,
		SugarInventory:    st.SugarInventory,
		CupInventory:      st.CupInventory,
		PreparedInventory: st.PreparedInventory,
		ProducedToday:     st.ProducedToday,

		SalePrice:    st.SalePrice,
		QualityLevel: st.QualityLevel,

		Weather:    s.weather.Label,
		BaseDemand: s.weather.BaseDemand,

		LastDayMessage: st.LastDayMessage,
		History:        st.recentHistory(10),

		BalanceSheet:    balanceSheet(st),
		IncomeStatement: incomeStatement(st),
		CashFlow:        cashFlow(st),
	}
}
