package arbitrage

import (
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/shopspring/decimal"
)

// Opportunity describes the best possible spread inside one interval,
// regardless of whether the profit-ordering rule allows trading it.
type Opportunity struct {
	Start     time.Time
	MinLow    decimal.Decimal
	MaxHigh   decimal.Decimal
	ProfitPct float64
}

// Opportunities scans the session at the given frequency and reports the
// extrema pair of every interval that has bars.
func Opportunities(s market.Session, freq Frequency) []Opportunity {
	var out []Opportunity
	for _, iv := range partition(s.Bars(), freq.Duration()) {
		minIdx, maxIdx := extrema(iv.bars)
		low := iv.bars[minIdx].Low
		high := iv.bars[maxIdx].High

		pct := 0.0
		if !low.IsZero() {
			pct, _ = high.Sub(low).Div(low).Mul(decimal.NewFromInt(100)).Float64()
		}

		out = append(out, Opportunity{
			Start:     iv.start,
			MinLow:    low,
			MaxHigh:   high,
			ProfitPct: pct,
		})
	}

	return out
}
