package arbitrage

import (
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/shopspring/decimal"
)

type testBar struct {
	hh, mm     int
	o, h, l, c float64
}

var testDay = time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

func testSession(bars []testBar) market.Session {
	raw := make([]market.Bar, 0, len(bars))
	for _, b := range bars {
		raw = append(raw, market.Bar{
			Time:  time.Date(2024, 3, 12, b.hh, b.mm, 0, 0, time.UTC),
			Open:  decimal.NewFromFloat(b.o),
			High:  decimal.NewFromFloat(b.h),
			Low:   decimal.NewFromFloat(b.l),
			Close: decimal.NewFromFloat(b.c),
		})
	}

	return market.NewSession("TEST", testDay, time.UTC, raw)
}

// flatBar is a bar trading at a single price for the whole minute.
func flatBar(hh, mm int, price float64) testBar {
	return testBar{hh: hh, mm: mm, o: price, h: price, l: price, c: price}
}
