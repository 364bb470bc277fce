package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"github.com/vorsorge/pension-calculator/internal/calculation"
	"github.com/vorsorge/pension-calculator/internal/config"
	"github.com/vorsorge/pension-calculator/internal/domain"
	"github.com/vorsorge/pension-calculator/internal/output"
	"github.com/vorsorge/pension-calculator/internal/server"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "vorsorge",
		Short: "Projects and compares German retirement-savings products",
		Long: "vorsorge projects ETF savings plans, Basisrente, Riester and private\n" +
			"annuities under tax, fee and subsidy rules, ranks them, and simulates\n" +
			"decumulation strategies for the retirement phase.",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newWithdrawCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if verbose {
		engine.SetLogger(calculation.StdLogger{})
	}
	return engine
}

func newCompareCmd() *cobra.Command {
	var inputFile string
	var format string
	var toFile bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run a plan file and compare the configured products",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			report, err := newEngine().RunPlan(plan)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q, available: %v", format, output.FormatterNames())
			}

			if toFile {
				filename, err := output.WriteFormatted(formatter, report, formatter.Name())
				if err != nil {
					return err
				}
				fmt.Printf("report written to %s\n", filename)
				return nil
			}

			data, err := formatter.Format(report)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "plan.yaml", "plan file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, csv)")
	cmd.Flags().BoolVar(&toFile, "to-file", false, "write the report to a timestamped file")
	return cmd
}

func newWithdrawCmd() *cobra.Command {
	var (
		strategy   string
		capital    float64
		years      int
		annual     float64
		inflation  float64
		pension    float64
		percentage float64
		reserve    float64
	)

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Simulate a decumulation strategy on a lump sum",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := &domain.WithdrawalPlan{
				Strategy:             strategy,
				InitialCapital:       decimal.NewFromFloat(capital),
				WithdrawalYears:      years,
				AnnualReturn:         decimal.NewFromFloat(annual),
				InflationRate:        decimal.NewFromFloat(inflation),
				MonthlyPension:       decimal.NewFromFloat(pension),
				WithdrawalPercentage: decimal.NewFromFloat(percentage),
				ReservePercentage:    decimal.NewFromFloat(reserve),
			}

			var result domain.WithdrawalResult
			switch plan.Strategy {
			case domain.StrategyFourPercent:
				result = calculation.FourPercentRule(plan.InitialCapital, plan.WithdrawalYears, plan.AnnualReturn, plan.InflationRate, true)
			case domain.StrategyDynamic:
				result = calculation.DynamicPercentageWithdrawal(plan.InitialCapital, plan.WithdrawalPercentage, plan.WithdrawalYears, plan.AnnualReturn)
			case domain.StrategyFixedPension:
				result = calculation.FixedMonthlyPension(plan.InitialCapital, plan.MonthlyPension, plan.WithdrawalYears, plan.AnnualReturn)
			case domain.StrategyHybrid:
				result = calculation.HybridWithdrawal(plan.InitialCapital, plan.MonthlyPension, plan.ReservePercentage, plan.WithdrawalYears, plan.AnnualReturn)
			default:
				return fmt.Errorf("unknown strategy %q", plan.Strategy)
			}

			report := &domain.Report{Withdrawals: []domain.WithdrawalResult{result}}
			formatter := output.JSONFormatter{}
			data, err := formatter.Format(report)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", domain.StrategyFourPercent, "withdrawal strategy")
	cmd.Flags().Float64Var(&capital, "capital", 500000, "initial capital")
	cmd.Flags().IntVar(&years, "years", 30, "withdrawal years")
	cmd.Flags().Float64Var(&annual, "return", 0.04, "annual return")
	cmd.Flags().Float64Var(&inflation, "inflation", 0.02, "inflation rate")
	cmd.Flags().Float64Var(&pension, "pension", 2000, "monthly pension (fixed/hybrid)")
	cmd.Flags().Float64Var(&percentage, "percentage", 0.04, "withdrawal percentage (dynamic)")
	cmd.Flags().Float64Var(&reserve, "reserve", 0.2, "reserve fraction (hybrid)")
	return cmd
}

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := server.NewHandler(newEngine())
			log.Printf("vorsorge engine listening on :%s", port)
			return fasthttp.ListenAndServe(":"+port, handler.Route)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8080", "listen port")
	return cmd
}
