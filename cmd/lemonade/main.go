package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	cl "lemonade/internal/cli"
	"lemonade/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.LoadCLIFromEnv()
	apiBase := cfg.APIBaseURL

	root := &cobra.Command{
		Use:          "lemonade",
		Short:        "Lemonade stand CLI client",
		SilenceUsage: true,
	}

	root.AddCommand(
		newHealthCmd(&apiBase),
		newStateCmd(&apiBase),
		newResetCmd(&apiBase),
		newBuyCmd(&apiBase),
		newPriceCmd(&apiBase),
		newProduceCmd(&apiBase),
		newSimulateCmd(&apiBase),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(apiBase *string) *cl.Client {
	return cl.NewClient(strings.TrimRight(strings.TrimSpace(*apiBase), "/"))
}

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}

func newHealthCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the API is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			if err := newClient(apiBase).Health(ctx); err != nil {
				return err
			}
			printSuccess("API is up.")
			return nil
		},
	}
}

func newStateCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the stand: cash, inventory and the three statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			out, err := newClient(apiBase).State(ctx)
			if err != nil {
				return err
			}
			renderState(out.State)
			return nil
		},
	}
}

func newResetCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start a fresh game",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			out, err := newClient(apiBase).Reset(ctx)
			if err != nil {
				return err
			}
			printSuccess(out.Message)
			renderState(out.State)
			return nil
		},
	}
}

func newBuyCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "buy [lemons] [sugar] [cups]",
		Short: "Buy ingredients with cash",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lemons, sugar, cups, err := buyQuantities(args)
			if err != nil {
				return err
			}
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			out, err := newClient(apiBase).Buy(ctx, lemons, sugar, cups)
			if err != nil {
				return err
			}
			if !out.OK {
				printWarn(out.Message)
				return nil
			}
			printSuccess(out.Message)
			renderHoldings(out.State)
			return nil
		},
	}
}

func buyQuantities(args []string) (int, int, int, error) {
	if len(args) == 3 {
		vals := make([]int, 3)
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid quantity %q", a)
			}
			vals[i] = v
		}
		return vals[0], vals[1], vals[2], nil
	}
	lemons, err := promptInt("Lemons", 0)
	if err != nil {
		return 0, 0, 0, err
	}
	sugar, err := promptInt("Sugar", 0)
	if err != nil {
		return 0, 0, 0, err
	}
	cups, err := promptInt("Cups", 0)
	if err != nil {
		return 0, 0, 0, err
	}
	return lemons, sugar, cups, nil
}

func newPriceCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "price [amount]",
		Short: "Set the sale price per cup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var price float64
			var err error
			if len(args) == 1 {
				price, err = strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid price %q", args[0])
				}
			} else {
				price, err = promptFloat("Price per cup", 0)
				if err != nil {
					return err
				}
			}
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			out, err := newClient(apiBase).SetPrice(ctx, price)
			if err != nil {
				return err
			}
			if !out.OK {
				printWarn(out.Message)
				return nil
			}
			printSuccess(out.Message)
			return nil
		},
	}
}

func newProduceCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "produce [qty]",
		Short: "Turn ingredients into cups of lemonade",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var qty int
			var err error
			if len(args) == 1 {
				qty, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid quantity %q", args[0])
				}
			} else {
				qty, err = promptInt("Cups to produce", 1)
				if err != nil {
					return err
				}
			}
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			out, err := newClient(apiBase).Produce(ctx, qty)
			if err != nil {
				return err
			}
			if !out.OK {
				printWarn(out.Message)
				return nil
			}
			printSuccess(out.Message)
			renderHoldings(out.State)
			return nil
		},
	}
}

func newSimulateCmd(apiBase *string) *cobra.Command {
	var adSpend float64
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run today's sales and move to the next day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()
			out, err := newClient(apiBase).Simulate(ctx, adSpend)
			if err != nil {
				return err
			}
			if out.GameOver {
				printWarn(out.Message)
				renderState(out.State)
				return nil
			}
			renderDayResult(out)
			return nil
		},
	}
	cmd.Flags().Float64Var(&adSpend, "ads", 0, "advertising spend for today")
	return cmd
}
