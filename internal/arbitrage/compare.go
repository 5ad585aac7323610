package arbitrage

import (
	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type FrequencyResult struct {
	Frequency  Frequency
	FinalValue decimal.Decimal
	ReturnPct  float64
	TradeCount int
}

// CompareFrequencies runs the simulator once per supported frequency, each
// run starting fresh from the initial investment. Runs share no state, so
// they execute concurrently; the returned slice always follows the
// Frequencies order.
func CompareFrequencies(s market.Session, investment decimal.Decimal) []FrequencyResult {
	results := make([]FrequencyResult, len(Frequencies))

	var g errgroup.Group
	for i, f := range Frequencies {
		g.Go(func() error {
			r := Simulate(s, investment, f)
			results[i] = FrequencyResult{
				Frequency:  f,
				FinalValue: r.EndingValue,
				ReturnPct:  ReturnPct(r.EndingValue, investment),
				TradeCount: len(r.Trades),
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ReturnPct is the percentage gain of final over initial.
func ReturnPct(final, initial decimal.Decimal) float64 {
	if initial.IsZero() {
		return 0
	}

	pct, _ := final.Sub(initial).Div(initial).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
