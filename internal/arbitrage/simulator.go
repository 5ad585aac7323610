package arbitrage

import (
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/shopspring/decimal"
)

type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

type Trade struct {
	Time   time.Time
	Action Action
	Price  decimal.Decimal
	Shares decimal.Decimal
	// GainLoss is zero for buys and the realized profit or loss for sells.
	GainLoss decimal.Decimal
}

type Result struct {
	Trades          []Trade
	EndingValue     decimal.Decimal
	RemainingShares decimal.Decimal
}

// interval is a clock-aligned sub-window of a session holding the bars whose
// timestamps fall inside it. Windows with no bars are never materialized.
type interval struct {
	start time.Time
	bars  []market.Bar
}

// partition groups session bars into clock-aligned windows of the given
// duration. Truncation is relative to UTC, which lands on exchange-clock
// boundaries for any zone with a whole-hour offset.
func partition(bars []market.Bar, d time.Duration) []interval {
	var ivs []interval
	for _, b := range bars {
		start := b.Time.Truncate(d)
		if len(ivs) == 0 || !ivs[len(ivs)-1].start.Equal(start) {
			ivs = append(ivs, interval{start: start})
		}

		ivs[len(ivs)-1].bars = append(ivs[len(ivs)-1].bars, b)
	}

	return ivs
}

// extrema returns the index of the lowest low and of the highest high,
// keeping the earliest occurrence on ties.
func extrema(bars []market.Bar) (minIdx, maxIdx int) {
	for i, b := range bars[1:] {
		if b.Low.LessThan(bars[minIdx].Low) {
			minIdx = i + 1
		}
		if b.High.GreaterThan(bars[maxIdx].High) {
			maxIdx = i + 1
		}
	}

	return minIdx, maxIdx
}

type portfolio struct {
	cash   decimal.Decimal
	shares decimal.Decimal
}

// step applies one interval to the portfolio. A trade happens only when the
// lowest low comes strictly before the highest high; the buy takes all cash,
// the sell liquidates all shares. Otherwise the portfolio passes through
// untouched and no trades are emitted.
func (p portfolio) step(iv interval) (portfolio, []Trade) {
	minIdx, maxIdx := extrema(iv.bars)
	if minIdx >= maxIdx {
		return p, nil
	}

	buyBar := iv.bars[minIdx]
	sellBar := iv.bars[maxIdx]

	cost := p.cash
	qty := p.cash.Div(buyBar.Low)
	buy := Trade{
		Time:   buyBar.Time,
		Action: ActionBuy,
		Price:  buyBar.Low,
		Shares: qty,
	}

	held := p.shares.Add(qty)
	proceeds := held.Mul(sellBar.High)
	sell := Trade{
		Time:     sellBar.Time,
		Action:   ActionSell,
		Price:    sellBar.High,
		Shares:   held,
		GainLoss: proceeds.Sub(cost),
	}

	return portfolio{cash: proceeds, shares: decimal.Zero}, []Trade{buy, sell}
}

// Simulate runs the interval arbitrage strategy over one session: the day is
// partitioned into windows of the frequency's duration and each window's
// buy-low/sell-high pair is taken whenever the low precedes the high. The
// strategy is always either fully invested or fully in cash.
func Simulate(s market.Session, investment decimal.Decimal, freq Frequency) Result {
	p := portfolio{cash: investment, shares: decimal.Zero}

	var trades []Trade
	for _, iv := range partition(s.Bars(), freq.Duration()) {
		next, executed := p.step(iv)
		trades = append(trades, executed...)
		p = next
	}

	ending := p.cash
	if p.shares.IsPositive() {
		if last, err := s.Last(); err == nil {
			ending = p.cash.Add(p.shares.Mul(last.Close))
		}
	}

	return Result{
		Trades:          trades,
		EndingValue:     ending,
		RemainingShares: p.shares,
	}
}
