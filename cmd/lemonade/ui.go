package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	cl "lemonade/internal/cli"
	"lemonade/internal/game"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func printInfo(msg string) {
	neutral.Println(msg)
}

func promptRequired(label string) (string, error) {
	for {
		fmt.Printf("%s: ", label)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text != "" {
			return text, nil
		}
		printWarn(label + " is required.")
	}
}

func promptInt(label string, min int) (int, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			printWarn("Enter a whole number.")
			continue
		}
		if v < min {
			printWarn(fmt.Sprintf("Value must be >= %d", min))
			continue
		}
		return v, nil
	}
}

func promptFloat(label string, min float64) (float64, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			printWarn("Enter a valid number.")
			continue
		}
		if v <= min {
			printWarn(fmt.Sprintf("Value must be > %.2f", min))
			continue
		}
		return v, nil
	}
}

func renderState(st game.StateSnapshot) {
	if st.Ended {
		accent.Printf("\n== LEMONADE STAND (season over, %d days played) ==\n", st.TotalDays)
	} else {
		accent.Printf("\n== LEMONADE STAND (day %d of %d) ==\n", st.Day, st.TotalDays)
	}
	fmt.Printf("Weather:   %s (base demand %d)\n", st.Weather, st.BaseDemand)
	fmt.Printf("Cash:      %s\n", money(st.Cash))
	fmt.Printf("Price:     %s per cup\n", money(st.SalePrice))
	fmt.Printf("Quality:   %d\n", st.QualityLevel)
	fmt.Printf("Stock:     %d lemons, %d sugar, %d cups, %d prepared\n",
		st.LemonInventory, st.SugarInventory, st.CupInventory, st.PreparedInventory)
	if st.LastDayMessage != "" {
		printInfo(st.LastDayMessage)
	}

	fmt.Println()
	accent.Println("Balance Sheet")
	bs := st.BalanceSheet
	fmt.Printf("  %-28s %10s\n", "Cash", money(bs.Cash))
	fmt.Printf("  %-28s %10s\n", "Ingredient inventory", money(bs.IngredientInventory))
	fmt.Printf("  %-28s %10s\n", "Prepared inventory", money(bs.PreparedInventory))
	fmt.Printf("  %-28s %10s\n", "Total assets", money(bs.TotalAssets))
	fmt.Printf("  %-28s %10s\n", "Debt", money(bs.Debt))
	fmt.Printf("  %-28s %10s\n", "Initial capital", money(bs.InitialCapital))
	fmt.Printf("  %-28s %10s\n", "Retained earnings", colorMoney(bs.RetainedEarnings))
	fmt.Printf("  %-28s %10s\n", "Liabilities + equity", money(bs.TotalLiabilitiesAndEquity))

	fmt.Println()
	accent.Println("Income Statement")
	is := st.IncomeStatement
	fmt.Printf("  %-28s %10s\n", "Revenue", money(is.Revenue))
	fmt.Printf("  %-28s %10s\n", "Cost of goods sold", money(is.CostOfGoodsSold))
	fmt.Printf("  %-28s %10s\n", "Operating expenses", money(is.OperatingExpenses))
	fmt.Printf("  %-28s %10s\n", "Profit", colorMoney(is.Profit))

	fmt.Println()
	accent.Println("Cash Flow")
	cf := st.CashFlow
	fmt.Printf("  %-28s %10s\n", "Receipts", money(cf.Receipts))
	fmt.Printf("  %-28s %10s\n", "Payments", money(cf.Payments))
	fmt.Printf("  %-28s %10s\n", "Cash on hand", money(cf.CashOnHand))

	if len(st.History) > 0 {
		fmt.Println()
		accent.Println("Recent Days")
		fmt.Printf("  %-4s %-6s %8s %6s %10s %10s %10s %10s\n",
			"DAY", "SKY", "DEMAND", "SOLD", "REVENUE", "COGS", "PROFIT", "CASH")
		for _, d := range st.History {
			fmt.Printf("  %-4d %-6s %8d %6d %10s %10s %10s %10s\n",
				d.Day, d.Weather, d.Demand, d.UnitsSold,
				money(d.Revenue), money(d.COGS), colorMoney(d.Profit), money(d.ClosingCash))
		}
	}
	fmt.Println()
}

func renderHoldings(st game.StateSnapshot) {
	fmt.Printf("Cash %s | %d lemons, %d sugar, %d cups, %d prepared\n",
		money(st.Cash), st.LemonInventory, st.SugarInventory, st.CupInventory, st.PreparedInventory)
}

func renderDayResult(out cl.SimulateResponse) {
	d := out.DaySummary
	if d == nil {
		printInfo(out.Message)
		return
	}
	accent.Printf("\n== DAY %d RESULT ==\n", d.Day)
	fmt.Printf("Weather:  %s\n", d.Weather)
	fmt.Printf("Demand:   %d\n", d.Demand)
	fmt.Printf("Sold:     %d cups\n", d.UnitsSold)
	fmt.Printf("Revenue:  %s\n", money(d.Revenue))
	fmt.Printf("COGS:     %s\n", money(d.COGS))
	fmt.Printf("Profit:   %s\n", colorMoney(d.Profit))
	fmt.Printf("Cash:     %s\n", money(d.ClosingCash))
	fmt.Println()
	printInfo(out.Message)
}

func money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func colorMoney(v decimal.Decimal) string {
	text := money(v)
	switch {
	case v.IsPositive():
		return success.Sprint("+" + text)
	case v.IsNegative():
		return danger.Sprint(text)
	default:
		return neutral.Sprint(text)
	}
}
