package game

import (
	"testing"

	"github.com/shopspring/decimal"
)

// checkIdentities asserts the two bookkeeping identities that must hold
// at every observation point: assets equal liabilities plus equity, and
// retained earnings equal revenue minus cost of sales minus expenses.
func checkIdentities(t *testing.T, s *Service, step string) {
	t.Helper()
	snap := s.Snapshot()

	bs := snap.BalanceSheet
	if !bs.TotalAssets.Equal(bs.TotalLiabilitiesAndEquity) {
		t.Fatalf("%s: assets %s != liabilities+equity %s",
			step, bs.TotalAssets, bs.TotalLiabilitiesAndEquity)
	}

	is := snap.IncomeStatement
	wantProfit := is.Revenue.Sub(is.CostOfGoodsSold).Sub(is.OperatingExpenses)
	if !is.Profit.Equal(wantProfit) {
		t.Fatalf("%s: profit %s != revenue-cogs-expenses %s", step, is.Profit, wantProfit)
	}
	if !bs.RetainedEarnings.Equal(is.Profit) {
		t.Fatalf("%s: retained earnings %s != profit %s", step, bs.RetainedEarnings, is.Profit)
	}

	cf := snap.CashFlow
	wantCash := snap.BalanceSheet.InitialCapital.Add(cf.Receipts).Sub(cf.Payments)
	if !cf.CashOnHand.Equal(wantCash) {
		t.Fatalf("%s: cash on hand %s != capital+receipts-payments %s",
			step, cf.CashOnHand, wantCash)
	}
}

func TestAccountingIdentitiesHoldThroughGame(t *testing.T) {
	s := newTestService(t, Config{RandSeed: 19})
	checkIdentities(t, s, "fresh game")

	if _, err := s.PurchaseIngredients(25, 25, 25); err != nil {
		t.Fatalf("buy: %v", err)
	}
	checkIdentities(t, s, "after purchase")

	if _, err := s.Produce(15); err != nil {
		t.Fatalf("produce: %v", err)
	}
	checkIdentities(t, s, "after produce")

	if _, err := s.RunAdvertising(dec("10")); err != nil {
		t.Fatalf("ads: %v", err)
	}
	checkIdentities(t, s, "after advertising")

	for day := 1; day <= 7; day++ {
		s.PurchaseIngredients(5, 5, 5)
		s.Produce(5)
		s.AdvanceDay(dec("5"))
		checkIdentities(t, s, "after day advance")
	}

	// Past the horizon the terminal no-op must not disturb the books.
	s.AdvanceDay(decimal.Zero)
	checkIdentities(t, s, "after terminal advance")
}

func TestBalanceSheetComposition(t *testing.T) {
	s := newTestService(t, Config{})
	if _, err := s.PurchaseIngredients(10, 10, 10); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if _, err := s.Produce(4); err != nil {
		t.Fatalf("produce: %v", err)
	}

	bs := s.Snapshot().BalanceSheet
	if !bs.Cash.Equal(dec("93.20")) {
		t.Fatalf("cash = %s, want 93.20", bs.Cash)
	}
	// 6 lemons, 6 sugar, 6 cups left at purchase cost.
	if !bs.IngredientInventory.Equal(dec("4.08")) {
		t.Fatalf("ingredient inventory = %s, want 4.08", bs.IngredientInventory)
	}
	if !bs.PreparedInventory.Equal(dec("2.72")) {
		t.Fatalf("prepared inventory = %s, want 2.72", bs.PreparedInventory)
	}
	if !bs.TotalAssets.Equal(dec("100")) {
		t.Fatalf("total assets = %s, want 100", bs.TotalAssets)
	}
	if !bs.Debt.Equal(decimal.Zero) || !bs.InitialCapital.Equal(dec("100")) {
		t.Fatalf("financing side off: debt %s capital %s", bs.Debt, bs.InitialCapital)
	}
}

func TestIncomeStatementAfterSale(t *testing.T) {
	s := newTestService(t, Config{RandSeed: 23})
	if _, err := s.PurchaseIngredients(10, 10, 10); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if _, err := s.Produce(10); err != nil {
		t.Fatalf("produce: %v", err)
	}
	res := s.AdvanceDay(decimal.Zero)
	if res.Summary == nil {
		t.Fatalf("missing day summary")
	}
	sold := res.Summary.UnitsSold

	is := s.Snapshot().IncomeStatement
	wantRevenue := decimal.NewFromInt(int64(sold)).Round(2) // price is 1.00
	if !is.Revenue.Equal(wantRevenue) {
		t.Fatalf("revenue = %s, want %s", is.Revenue, wantRevenue)
	}
	wantCOGS := UnitIngredientCost().Mul(decimal.NewFromInt(int64(sold))).Round(2)
	if !is.CostOfGoodsSold.Equal(wantCOGS) {
		t.Fatalf("cogs = %s, want %s", is.CostOfGoodsSold, wantCOGS)
	}
}

func TestSnapshotIsIdempotent(t *testing.T) {
	s := newTestService(t, Config{RandSeed: 29})
	if _, err := s.PurchaseIngredients(10, 10, 10); err != nil {
		t.Fatalf("buy: %v", err)
	}
	a := s.Snapshot()
	b := s.Snapshot()
	if !a.Cash.Equal(b.Cash) || a.Day != b.Day || !a.BalanceSheet.TotalAssets.Equal(b.BalanceSheet.TotalAssets) {
		t.Fatalf("reading the state twice must not change it")
	}
	if len(a.History) != len(b.History) {
		t.Fatalf("history length changed between reads")
	}
}

func TestHistoryKeepsLastTenDays(t *testing.T) {
	s := newTestService(t, Config{TotalDays: 15, RandSeed: 31})
	for i := 0; i < 14; i++ {
		s.AdvanceDay(decimal.Zero)
	}
	snap := s.Snapshot()
	if len(snap.History) != 10 {
		t.Fatalf("snapshot history = %d days, want 10", len(snap.History))
	}
	if snap.History[0].Day != 5 || snap.History[9].Day != 14 {
		t.Fatalf("window = days %d..%d, want 5..14", snap.History[0].Day, snap.History[9].Day)
	}
	if len(s.state.History) != 14 {
		t.Fatalf("full history = %d days, want 14", len(s.state.History))
	}
}
