package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
	"github.com/shopspring/decimal"
)

type Builder struct {
	log    *slog.Logger
	report JsonReport
	mu     sync.Mutex
}

type JsonReport struct {
	Symbol          string        `json:"symbol"`
	Date            string        `json:"date"`
	Investment      string        `json:"investment"`
	Frequency       string        `json:"frequency,omitempty"`
	EndingValue     string        `json:"ending_value,omitempty"`
	ReturnPct       float64       `json:"return_pct,omitempty"`
	RemainingShares string        `json:"remaining_shares,omitempty"`
	BuyHoldValue    string        `json:"buy_hold_value,omitempty"`
	BuyHoldPct      float64       `json:"buy_hold_pct,omitempty"`
	Trades          []JsonTrade   `json:"trades,omitempty"`
	Frequencies     []JsonFreqRow `json:"frequencies,omitempty"`
}

type JsonTrade struct {
	Time     time.Time `json:"time"`
	Action   string    `json:"action,omitempty"`
	Price    string    `json:"price,omitempty"`
	Shares   string    `json:"shares,omitempty"`
	GainLoss string    `json:"gain_loss,omitempty"`
}

type JsonFreqRow struct {
	Frequency  string  `json:"frequency,omitempty"`
	FinalValue string  `json:"final_value,omitempty"`
	ReturnPct  float64 `json:"return_pct,omitempty"`
	TradeCount int     `json:"trade_count"`
}

func NewBuilder(log *slog.Logger, symbol string, day time.Time, investment decimal.Decimal) *Builder {
	return &Builder{
		log: log,
		report: JsonReport{
			Symbol:     symbol,
			Date:       day.Format("2006-01-02"),
			Investment: investment.String(),
		},
	}
}

func (b *Builder) SubmitResult(freq arbitrage.Frequency, investment decimal.Decimal, res arbitrage.Result) {
	b.mu.Lock()
	defer b.mu.Unlock()

	pct := arbitrage.ReturnPct(res.EndingValue, investment)

	b.report.Frequency = freq.String()
	b.report.EndingValue = res.EndingValue.String()
	b.report.ReturnPct = pct
	b.report.RemainingShares = res.RemainingShares.String()

	b.report.Trades = b.report.Trades[:0]
	for _, t := range res.Trades {
		b.report.Trades = append(b.report.Trades, JsonTrade{
			Time:     t.Time,
			Action:   string(t.Action),
			Price:    t.Price.String(),
			Shares:   t.Shares.String(),
			GainLoss: t.GainLoss.String(),
		})
	}

	b.log.Info("simulation complete",
		slog.String("symbol", b.report.Symbol),
		slog.String("frequency", freq.String()),
		slog.Int("trades", len(res.Trades)),
		slog.Float64("return_pct", pct))
}

func (b *Builder) SubmitBuyHold(investment, value decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.report.BuyHoldValue = value.String()
	b.report.BuyHoldPct = arbitrage.ReturnPct(value, investment)
}

func (b *Builder) SubmitComparison(results []arbitrage.FrequencyResult) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.report.Frequencies = b.report.Frequencies[:0]
	for _, r := range results {
		b.report.Frequencies = append(b.report.Frequencies, JsonFreqRow{
			Frequency:  r.Frequency.String(),
			FinalValue: r.FinalValue.String(),
			ReturnPct:  r.ReturnPct,
			TradeCount: r.TradeCount,
		})
	}
}

func (b *Builder) Write(w io.Writer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := json.NewEncoder(w)
	if err := e.Encode(b.report); err != nil {
		return fmt.Errorf("failed to write simulation report: %w", err)
	}

	return nil
}

func (b *Builder) WriteToFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return b.Write(f)
}
