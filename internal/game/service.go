package game

import (
	"errors"
	"fmt"
	"log/slog"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"lemonade/internal/recorder"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
	ErrNoIngredients     = errors.New("not enough ingredients to produce")
)

const (
	welcomeMessage = "Welcome. Set your price, buy ingredients and produce; each day you simulate the sales."
	resetMessage   = "Game restarted. A good start: buy some ingredients first."
)

// Service owns the financial state of one game. Every public operation
// takes the mutex for its full duration; all work under the lock is
// in-memory arithmetic, the recorder is only called after release.
type Service struct {
	cfg Config
	log *slog.Logger
	rec recorder.Recorder

	mu      sync.Mutex
	rand    *mathrand.Rand
	state   *FinancialState
	weather Weather
}

func NewService(cfg Config, logger *slog.Logger, rec recorder.Recorder) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	cfg = cfg.withDefaults()
	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Service{
		cfg:  cfg,
		log:  logger,
		rec:  rec,
		rand: mathrand.New(mathrand.NewSource(seed)),
	}
	s.state = newFinancialState(cfg)
	s.state.LastDayMessage = welcomeMessage
	s.weather = drawWeather(s.rand)
	s.recordReset()
	return s
}

// Snapshot returns the public view of the game, accounting views included.
func (s *Service) Snapshot() StateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Reset discards the whole state and starts a fresh game under a new
// game ID, with freshly drawn weather.
func (s *Service) Reset() StateSnapshot {
	s.mu.Lock()
	s.state = newFinancialState(s.cfg)
	s.state.LastDayMessage = resetMessage
	s.weather = drawWeather(s.rand)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.recordReset()
	return snap
}

// PurchaseIngredients pays cash for raw ingredients. Negative quantities
// clamp to zero; a purchase beyond available cash is rejected whole.
func (s *Service) PurchaseIngredients(lemons, sugar, cups int) (PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lemons = max(0, lemons)
	sugar = max(0, sugar)
	cups = max(0, cups)

	cost := CostLemon.Mul(decimal.NewFromInt(int64(lemons))).
		Add(CostSugar.Mul(decimal.NewFromInt(int64(sugar)))).
		Add(CostCup.Mul(decimal.NewFromInt(int64(cups))))

	if cost.GreaterThan(s.state.Cash) {
		return PurchaseResult{}, fmt.Errorf("%w: the purchase costs %s with %s in cash",
			ErrInsufficientFunds, cost.StringFixed(2), s.state.Cash.StringFixed(2))
	}

	s.state.Cash = s.state.Cash.Sub(cost)
	s.state.CumulativeCashPayments = s.state.CumulativeCashPayments.Add(cost)
	s.state.LemonInventory += lemons
	s.state.SugarInventory += sugar
	s.state.CupInventory += cups

	msg := fmt.Sprintf("Bought %d lemons, %d sugar, %d cups. Spent %s.",
		lemons, sugar, cups, cost.StringFixed(2))
	s.state.LastDayMessage = msg

	return PurchaseResult{
		Message: msg,
		Cost:    cost.Round(2),
		Cash:    s.state.Cash.Round(2),
	}, nil
}

// SetSalePrice stores the per-cup price, rounded to cents.
func (s *Service) SetSalePrice(price decimal.Decimal) (PriceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if price.LessThanOrEqual(decimal.Zero) {
		return PriceResult{}, ErrInvalidPrice
	}
	s.state.SalePrice = price.Round(2)
	return PriceResult{
		Message:   fmt.Sprintf("Price set to %s per cup.", s.state.SalePrice.StringFixed(2)),
		SalePrice: s.state.SalePrice,
	}, nil
}

// Produce turns ingredients into prepared lemonade, clamped by whatever
// ingredient runs out first. Repeated calls accumulate within the day.
func (s *Service) Produce(qty int) (ProduceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty = max(0, qty)
	maxPossible := min(
		s.state.LemonInventory/LemonsPerCup,
		s.state.SugarInventory/SugarPerCup,
		s.state.CupInventory/CupsPerCup,
	)
	produced := min(qty, maxPossible)
	if produced <= 0 {
		return ProduceResult{}, ErrNoIngredients
	}

	s.state.LemonInventory -= produced * LemonsPerCup
	s.state.SugarInventory -= produced * SugarPerCup
	s.state.CupInventory -= produced * CupsPerCup

	addedCost := UnitIngredientCost().Mul(decimal.NewFromInt(int64(produced)))
	s.state.PreparedInventory += produced
	s.state.PreparedInventoryCost = s.state.PreparedInventoryCost.Add(addedCost)
	s.state.ProducedToday += produced

	return ProduceResult{
		Message:       fmt.Sprintf("Produced %d cups. Added %s of inventory cost.", produced, addedCost.StringFixed(2)),
		Produced:      produced,
		ProducedToday: s.state.ProducedToday,
	}, nil
}

// RunAdvertising spends cash on a campaign. Each full multiple of the
// campaign base cost raises the quality level by one; the effect persists
// across days.
func (s *Service) RunAdvertising(spend decimal.Decimal) (AdResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runAdvertising(spend)
}

func (s *Service) runAdvertising(spend decimal.Decimal) (AdResult, error) {
	if spend.IsNegative() {
		spend = decimal.Zero
	}
	if spend.GreaterThan(s.state.Cash) {
		return AdResult{}, fmt.Errorf("%w: the campaign costs %s with %s in cash",
			ErrInsufficientFunds, spend.StringFixed(2), s.state.Cash.StringFixed(2))
	}

	s.state.Cash = s.state.Cash.Sub(spend)
	s.state.CumulativeCashPayments = s.state.CumulativeCashPayments.Add(spend)
	s.state.CumulativeOpExpenses = s.state.CumulativeOpExpenses.Add(spend)
	// The expense hits accumulated profit immediately, keeping both the
	// profit identity and the balance-sheet identity intact.
	s.state.CumulativeProfit = s.state.CumulativeProfit.Sub(spend)

	gained := int(spend.Div(AdCampaignBaseCost).IntPart())
	s.state.QualityLevel += gained

	return AdResult{
		Message:       fmt.Sprintf("Campaign launched for %s. Visibility up +%d.", spend.StringFixed(2), gained),
		QualityGained: gained,
	}, nil
}

// AdvanceDay runs the sales simulation for the current day and moves the
// game to the next one. Once the horizon has passed it becomes a no-op
// that reports the terminal state.
func (s *Service) AdvanceDay(adSpend decimal.Decimal) DayResult {
	s.mu.Lock()
	res := s.advanceDay(adSpend)
	s.mu.Unlock()

	if res.Summary != nil {
		err := s.rec.RecordDay(&recorder.DayRecord{
			GameID:      res.gameID,
			Day:         res.Summary.Day,
			Weather:     res.Summary.Weather,
			Demand:      res.Summary.Demand,
			UnitsSold:   res.Summary.UnitsSold,
			Revenue:     res.Summary.Revenue.InexactFloat64(),
			COGS:        res.Summary.COGS.InexactFloat64(),
			Profit:      res.Summary.Profit.InexactFloat64(),
			ClosingCash: res.Summary.ClosingCash.InexactFloat64(),
		})
		if err != nil {
			s.log.Error("record day failed", "err", err, "day", res.Summary.Day)
		}
	}
	return res
}

func (s *Service) advanceDay(adSpend decimal.Decimal) DayResult {
	if s.state.ended() {
		return DayResult{
			GameOver: true,
			Message:  fmt.Sprintf("The season is over after %d days. Reset to play again.", s.state.TotalDays),
		}
	}

	adNote := ""
	if adSpend.GreaterThan(decimal.Zero) {
		if _, err := s.runAdvertising(adSpend); err != nil {
			// A failed campaign does not block the day.
			adNote = "Advertising campaign skipped: not enough cash. "
		}
	}

	demand := s.computeDemand()
	sold := min(s.state.PreparedInventory, demand)
	revenue := s.state.SalePrice.Mul(decimal.NewFromInt(int64(sold)))

	// Weighted-average cost of the units sold. Selling out carries the
	// whole remaining cost basis, so no division remainder is left behind.
	cogs := decimal.Zero
	if sold > 0 {
		if sold == s.state.PreparedInventory {
			cogs = s.state.PreparedInventoryCost
		} else {
			avg := s.state.PreparedInventoryCost.Div(decimal.NewFromInt(int64(s.state.PreparedInventory)))
			cogs = avg.Mul(decimal.NewFromInt(int64(sold)))
		}
	}
	s.state.PreparedInventory -= sold
	s.state.PreparedInventoryCost = s.state.PreparedInventoryCost.Sub(cogs)
	if s.state.PreparedInventoryCost.IsNegative() {
		s.state.PreparedInventoryCost = decimal.Zero
	}

	s.state.Cash = s.state.Cash.Add(revenue)
	s.state.CumulativeCashReceipts = s.state.CumulativeCashReceipts.Add(revenue)
	s.state.CumulativeRevenue = s.state.CumulativeRevenue.Add(revenue)
	s.state.CumulativeCOGS = s.state.CumulativeCOGS.Add(cogs)

	dayProfit := revenue.Sub(cogs)
	s.state.CumulativeProfit = s.state.CumulativeProfit.Add(dayProfit)

	summary := DaySummary{
		Day:         s.state.Day,
		Weather:     s.weather.Label,
		Demand:      demand,
		UnitsSold:   sold,
		Revenue:     revenue.Round(2),
		COGS:        cogs.Round(2),
		Profit:      dayProfit.Round(2),
		ClosingCash: s.state.Cash.Round(2),
	}
	s.state.History = append(s.state.History, summary)

	msg := fmt.Sprintf("%sDay %d: %s weather. Estimated demand %d. Sold %d cups. Revenue %s. Cost of sales %s. Closing cash %s.",
		adNote, summary.Day, summary.Weather, demand, sold,
		summary.Revenue.StringFixed(2), summary.COGS.StringFixed(2), summary.ClosingCash.StringFixed(2))
	s.state.LastDayMessage = msg

	s.state.ProducedToday = 0
	s.state.Day++
	if !s.state.ended() {
		s.weather = drawWeather(s.rand)
	}

	return DayResult{
		Message: msg,
		Summary: &summary,
		gameID:  s.state.GameID,
	}
}

var (
	demandCutHigh = decimal.NewFromFloat(3.0)
	demandCutMid  = decimal.NewFromFloat(2.0)
	demandCutLow  = decimal.NewFromFloat(1.5)
	demandBoost   = decimal.NewFromFloat(0.8)

	factorHigh  = decimal.NewFromFloat(0.3)
	factorMid   = decimal.NewFromFloat(0.6)
	factorLow   = decimal.NewFromFloat(0.8)
	factorCheap = decimal.NewFromFloat(1.15)
)

// computeDemand derives the day's customer demand from the weather base,
// the price-to-cost ratio, the accumulated quality level and noise. The
// multiplier result truncates to an integer before the additive terms.
func (s *Service) computeDemand() int {
	demand := int64(s.weather.BaseDemand)

	ratio := s.state.SalePrice.Div(UnitIngredientCost())
	switch {
	case ratio.GreaterThan(demandCutHigh):
		demand = decimal.NewFromInt(demand).Mul(factorHigh).IntPart()
	case ratio.GreaterThan(demandCutMid):
		demand = decimal.NewFromInt(demand).Mul(factorMid).IntPart()
	case ratio.GreaterThan(demandCutLow):
		demand = decimal.NewFromInt(demand).Mul(factorLow).IntPart()
	case ratio.LessThan(demandBoost):
		demand = decimal.NewFromInt(demand).Mul(factorCheap).IntPart()
	}

	demand += int64(s.state.QualityLevel * demandPerQualityLevel)
	demand += int64(s.rand.Intn(11) - 5)
	if demand < 0 {
		demand = 0
	}
	return int(demand)
}

func (s *Service) recordReset() {
	s.mu.Lock()
	rec := recorder.ResetRecord{
		GameID:         s.state.GameID,
		TotalDays:      s.state.TotalDays,
		InitialCapital: s.state.InitialCapital.InexactFloat64(),
	}
	s.mu.Unlock()

	if err := s.rec.RecordReset(&rec); err != nil {
		s.log.Error("record reset failed", "err", err)
	}
}
