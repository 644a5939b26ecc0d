package main

import (
	"fmt"
	"os"

	"fjacquet/card-payoff/cmd/compare"
	"fjacquet/card-payoff/cmd/growth"
	"fjacquet/card-payoff/cmd/minimum"
	"fjacquet/card-payoff/cmd/rank"
	"fjacquet/card-payoff/cmd/recommend"
	"fjacquet/card-payoff/cmd/root"
	"fjacquet/card-payoff/cmd/savings"
	"fjacquet/card-payoff/cmd/schedule"
	"fjacquet/card-payoff/cmd/solve"
	"fjacquet/card-payoff/internal/config"
	"fjacquet/card-payoff/internal/logging"
)

func init() {
	// 1. Load .env before anything reads the environment
	config.LoadEnv()

	// 2. Startup logger until the root command applies the full configuration
	root.Log = logging.NewLogrusAdapter(
		config.GetEnv("LOG_LEVEL", "info"),
		config.GetEnv("LOG_FORMAT", "text"),
	)

	// 3. Add all subcommands
	root.Cmd.AddCommand(schedule.Cmd)
	root.Cmd.AddCommand(minimum.Cmd)
	root.Cmd.AddCommand(solve.Cmd)
	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(recommend.Cmd)
	root.Cmd.AddCommand(growth.Cmd)
	root.Cmd.AddCommand(rank.Cmd)
	root.Cmd.AddCommand(savings.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
