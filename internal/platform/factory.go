package platform

import (
	"context"
	"errors"
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/config"
	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/Ajnunezg/StockTraderSim/internal/platform/alpaca"
	"github.com/Ajnunezg/StockTraderSim/internal/platform/csvfile"
	"github.com/Ajnunezg/StockTraderSim/internal/platform/polygon"
)

// SessionSource fetches one trading day of minute bars, already normalized
// into a Session.
type SessionSource interface {
	FetchSession(ctx context.Context, symbol string, day time.Time, loc *time.Location) (market.Session, error)
}

func Create(cfg config.SourceReference) (SessionSource, error) {
	polygonCfg, ok := cfg.Source.(config.Polygon)
	if ok {
		return polygon.NewClient(polygonCfg), nil
	}

	alpacaCfg, ok := cfg.Source.(config.Alpaca)
	if ok {
		return alpaca.NewClient(alpacaCfg), nil
	}

	csvCfg, ok := cfg.Source.(config.CsvFile)
	if ok {
		return csvfile.NewReader(csvCfg.Path), nil
	}

	return nil, errors.New("unknown session source")
}
