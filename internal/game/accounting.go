package game

import "github.com/shopspring/decimal"

// The three statements are pure views over FinancialState, recomputed on
// every query. Amounts are rounded to cents at this boundary only; the
// explanation strings are part of the teaching material.

type BalanceSheet struct {
	Cash                decimal.Decimal `json:"cash"`
	IngredientInventory decimal.Decimal `json:"ingredient_inventory"`
	PreparedInventory   decimal.Decimal `json:"prepared_inventory"`
	FixedAssets         decimal.Decimal `json:"fixed_assets"`
	TotalAssets         decimal.Decimal `json:"total_assets"`

	Debt                      decimal.Decimal `json:"debt"`
	InitialCapital            decimal.Decimal `json:"initial_capital"`
	RetainedEarnings          decimal.Decimal `json:"retained_earnings"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"total_liabilities_and_equity"`

	Explanation string `json:"explanation"`
}

type IncomeStatement struct {
	Revenue           decimal.Decimal `json:"revenue"`
	CostOfGoodsSold   decimal.Decimal `json:"cost_of_goods_sold"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	Profit            decimal.Decimal `json:"profit"`

	Explanation string `json:"explanation"`
}

type CashFlowSummary struct {
	Receipts   decimal.Decimal `json:"receipts"`
	Payments   decimal.Decimal `json:"payments"`
	CashOnHand decimal.Decimal `json:"cash_on_hand"`

	Explanation string `json:"explanation"`
}

func balanceSheet(st *FinancialState) BalanceSheet {
	ingredients := CostLemon.Mul(decimal.NewFromInt(int64(st.LemonInventory))).
		Add(CostSugar.Mul(decimal.NewFromInt(int64(st.SugarInventory)))).
		Add(CostCup.Mul(decimal.NewFromInt(int64(st.CupInventory))))

	bs := BalanceSheet{
		Cash:                st.Cash.Round(2),
		IngredientInventory: ingredients.Round(2),
		PreparedInventory:   st.PreparedInventoryCost.Round(2),
		FixedAssets:         decimal.Zero,

		Debt:             st.Debt.Round(2),
		InitialCapital:   st.InitialCapital.Round(2),
		RetainedEarnings: st.CumulativeProfit.Round(2),

		Explanation: "Assets show what the stand owns (cash and stock). Liabilities and equity show how it was financed (debt, capital and retained profit).",
	}
	bs.TotalAssets = bs.Cash.Add(bs.IngredientInventory).Add(bs.PreparedInventory).Add(bs.FixedAssets)
	bs.TotalLiabilitiesAndEquity = bs.Debt.Add(bs.InitialCapital).Add(bs.RetainedEarnings)
	return bs
}

func incomeStatement(st *FinancialState) IncomeStatement {
	revenue := st.CumulativeRevenue.Round(2)
	cogs := st.CumulativeCOGS.Round(2)
	expenses := st.CumulativeOpExpenses.Round(2)
	return IncomeStatement{
		Revenue:           revenue,
		CostOfGoodsSold:   cogs,
		OperatingExpenses: expenses,
		Profit:            revenue.Sub(cogs).Sub(expenses),
		Explanation:       "How much you sold (revenue) against what selling it cost you (cost of sales plus operating expenses).",
	}
}

func cashFlow(st *FinancialState) CashFlowSummary {
	return CashFlowSummary{
		Receipts:    st.CumulativeCashReceipts.Round(2),
		Payments:    st.CumulativeCashPayments.Round(2),
		CashOnHand:  st.Cash.Round(2),
		Explanation: "Cash shows the money you actually have right now: real collections minus real payments.",
	}
}
