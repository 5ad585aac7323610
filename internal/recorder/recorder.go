package recorder

import (
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
)

// Recorder persists executed trades for later audit.
type Recorder interface {
	RecordTrades(symbol string, day time.Time, freq arbitrage.Frequency, trades []arbitrage.Trade) error
	Close() error
}

// Create returns a sqlite recorder when a database path is configured and a
// no-op recorder otherwise.
func Create(dbPath string) (Recorder, error) {
	if dbPath == "" {
		return NewNoopRecorder(), nil
	}

	return NewSQLiteRecorder(dbPath)
}
