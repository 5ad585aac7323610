package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
	"github.com/Ajnunezg/StockTraderSim/internal/config"
	"github.com/Ajnunezg/StockTraderSim/internal/platform"
	"github.com/Ajnunezg/StockTraderSim/internal/platform/csvfile"
	"github.com/Ajnunezg/StockTraderSim/internal/recorder"
	"github.com/Ajnunezg/StockTraderSim/internal/report"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = godotenv.Load()

	cfg, err := config.ReadFromFile(os.Getenv("CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	if err := cfg.Validate(time.Now()); err != nil {
		log.Fatal(err)
	}

	logger := slog.Default()

	day, err := cfg.Day()
	if err != nil {
		log.Fatal(err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	src, err := platform.Create(cfg.SourceRef)
	if err != nil {
		log.Fatal(err)
	}

	session, err := src.FetchSession(ctx, cfg.Symbol, day, loc)
	if err != nil {
		log.Fatal(err)
	}

	if session.Empty() {
		log.Fatalf("no intraday data available for %s on %s", cfg.Symbol, cfg.Date)
	}

	logger.Info("session retrieved",
		slog.String("symbol", cfg.Symbol),
		slog.String("date", cfg.Date),
		slog.Int("bars", session.Len()))

	if cfg.Dump != "" {
		if err := csvfile.WriteSessionFile(cfg.Dump, session); err != nil {
			log.Fatal(err)
		}
		logger.Info("session dumped", slog.String("path", cfg.Dump))
	}

	investment := decimal.NewFromFloat(cfg.Investment)
	freq := cfg.Freq()

	res := arbitrage.Simulate(session, investment, freq)
	buyHold := arbitrage.BuyAndHold(session, investment)
	comparison := arbitrage.CompareFrequencies(session, investment)

	builder := report.NewBuilder(logger, cfg.Symbol, day, investment)
	builder.SubmitResult(freq, investment, res)
	builder.SubmitBuyHold(investment, buyHold)
	builder.SubmitComparison(comparison)

	fmt.Printf("\nTrade log (%s):\n", freq)
	if err := report.WriteTradeLog(os.Stdout, res.Trades); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nOpportunities:")
	if err := report.WriteOpportunities(os.Stdout, arbitrage.Opportunities(session, freq)); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nStrategy comparison:")
	if err := report.WriteSummary(os.Stdout, investment, res.EndingValue, buyHold); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nFrequency comparison:")
	if err := report.WriteComparison(os.Stdout, comparison); err != nil {
		log.Fatal(err)
	}

	rec, err := recorder.Create(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer rec.Close()

	if err := rec.RecordTrades(cfg.Symbol, day, freq, res.Trades); err != nil {
		log.Fatal(err)
	}

	if cfg.Report != "" {
		if err := builder.WriteToFile(cfg.Report); err != nil {
			log.Fatal(err)
		}
		logger.Info("report written", slog.String("path", cfg.Report))
	}

	if cfg.Chart != "" {
		strategy := report.StrategyCurve(session, investment, res.Trades)
		baseline := report.BuyHoldCurve(session, investment)
		if err := report.RenderChart(cfg.Chart, session, res.Trades, strategy, baseline); err != nil {
			log.Fatal(err)
		}
		logger.Info("chart written", slog.String("path", cfg.Chart))
	}
}
