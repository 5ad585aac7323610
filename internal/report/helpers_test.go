package report

import (
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/shopspring/decimal"
)

var testDay = time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

func minuteBar(mm int, price float64) market.Bar {
	p := decimal.NewFromFloat(price)
	return market.Bar{
		Time:  time.Date(2024, 3, 12, 9, 30+mm, 0, 0, time.UTC),
		Open:  p,
		High:  p,
		Low:   p,
		Close: p,
	}
}

func testSession(prices ...float64) market.Session {
	bars := make([]market.Bar, 0, len(prices))
	for i, p := range prices {
		bars = append(bars, minuteBar(i, p))
	}

	return market.NewSession("AAPL", testDay, time.UTC, bars)
}
