package report

import (
	"strings"
	"testing"
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrades() []arbitrage.Trade {
	return []arbitrage.Trade{
		{
			Time:   time.Date(2024, 3, 12, 9, 32, 0, 0, time.UTC),
			Action: arbitrage.ActionBuy,
			Price:  decimal.NewFromInt(8),
			Shares: decimal.NewFromInt(125),
		},
		{
			Time:     time.Date(2024, 3, 12, 9, 33, 0, 0, time.UTC),
			Action:   arbitrage.ActionSell,
			Price:    decimal.NewFromInt(15),
			Shares:   decimal.NewFromInt(125),
			GainLoss: decimal.NewFromInt(875),
		},
	}
}

func TestWriteTradeLog(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteTradeLog(&sb, sampleTrades()))

	out := sb.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "ACTION")
	assert.Contains(t, lines[1], "09:32:00")
	assert.Contains(t, lines[1], "BUY")
	assert.Contains(t, lines[1], "$8.00")
	assert.Contains(t, lines[1], "125.0000")
	assert.Contains(t, lines[1], "N/A")
	assert.Contains(t, lines[2], "SELL")
	assert.Contains(t, lines[2], "$875.00")
}

func TestWriteSummary(t *testing.T) {
	var sb strings.Builder
	err := WriteSummary(&sb,
		decimal.NewFromInt(1000),
		decimal.NewFromInt(1875),
		decimal.NewFromInt(1100))
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "Arbitrage")
	assert.Contains(t, out, "$1875.00")
	assert.Contains(t, out, "87.50%")
	assert.Contains(t, out, "Buy & Hold")
	assert.Contains(t, out, "$1100.00")
	assert.Contains(t, out, "10.00%")
}

func TestWriteComparison(t *testing.T) {
	results := []arbitrage.FrequencyResult{
		{Frequency: arbitrage.Hourly, FinalValue: decimal.NewFromInt(1875), ReturnPct: 87.5, TradeCount: 2},
		{Frequency: arbitrage.Min30, FinalValue: decimal.NewFromInt(1000), ReturnPct: 0, TradeCount: 0},
	}

	var sb strings.Builder
	require.NoError(t, WriteComparison(&sb, results))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "hourly")
	assert.Contains(t, lines[1], "2")
	assert.Contains(t, lines[2], "30min")
}

func TestWriteTradeLog_empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteTradeLog(&sb, nil))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	assert.Len(t, lines, 1)
}
