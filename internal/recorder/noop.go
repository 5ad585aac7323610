package recorder

import (
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
)

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTrades(_ string, _ time.Time, _ arbitrage.Frequency, _ []arbitrage.Trade) error {
	return nil
}

func (n *NoopRecorder) Close() error { return nil }
