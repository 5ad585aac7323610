package arbitrage

import (
	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/shopspring/decimal"
)

// BuyAndHold values the unmanaged baseline: buy at the session's opening
// price and hold to the final close. An empty session leaves the investment
// untouched.
func BuyAndHold(s market.Session, investment decimal.Decimal) decimal.Decimal {
	first, err := s.First()
	if err != nil {
		return investment
	}

	last, _ := s.Last()
	return investment.Div(first.Open).Mul(last.Close)
}
