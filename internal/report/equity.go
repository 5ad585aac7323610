package report

import (
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/shopspring/decimal"
)

type EquityPoint struct {
	Time  time.Time
	Value decimal.Decimal
}

// BuyHoldCurve values the baseline minute by minute: shares bought at the
// session open, marked at each bar's close.
func BuyHoldCurve(s market.Session, investment decimal.Decimal) []EquityPoint {
	first, err := s.First()
	if err != nil || first.Open.IsZero() {
		return nil
	}

	qty := investment.Div(first.Open)
	points := make([]EquityPoint, 0, s.Len())
	for _, b := range s.Bars() {
		points = append(points, EquityPoint{Time: b.Time, Value: qty.Mul(b.Close)})
	}

	return points
}

// StrategyCurve replays the trade log against the session bars, marking cash
// while flat and shares at each bar's close while invested.
func StrategyCurve(s market.Session, investment decimal.Decimal, trades []arbitrage.Trade) []EquityPoint {
	cash := investment
	shares := decimal.Zero

	next := 0
	points := make([]EquityPoint, 0, s.Len())
	for _, b := range s.Bars() {
		for next < len(trades) && !trades[next].Time.After(b.Time) {
			t := trades[next]
			if t.Action == arbitrage.ActionBuy {
				shares = shares.Add(t.Shares)
				cash = decimal.Zero
			} else {
				cash = t.Shares.Mul(t.Price)
				shares = decimal.Zero
			}
			next++
		}

		points = append(points, EquityPoint{Time: b.Time, Value: cash.Add(shares.Mul(b.Close))})
	}

	return points
}
