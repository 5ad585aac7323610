package alpaca

import (
	"context"
	"fmt"
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/config"
	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

type Client struct {
	cfg    config.Alpaca
	client *marketdata.Client
}

func NewClient(cfg config.Alpaca) *Client {
	return &Client{
		cfg: cfg,
		client: marketdata.NewClient(marketdata.ClientOpts{
			BaseURL:   cfg.BaseUrl,
			APIKey:    cfg.ApiKey,
			APISecret: cfg.Secret,
		}),
	}
}

// FetchSession pulls the day's historical 1-minute bars for the regular-hours
// window and normalizes them into a session.
func (c *Client) FetchSession(_ context.Context, symbol string, day time.Time, loc *time.Location) (market.Session, error) {
	open, close := market.SessionWindow(day, loc)

	raw, err := c.client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneMin,
		Start:     open,
		End:       close,
	})
	if err != nil {
		return market.Session{}, fmt.Errorf("failed to fetch %s bars: %w", symbol, err)
	}

	bars := make([]market.Bar, 0, len(raw))
	for _, b := range raw {
		bars = append(bars, market.Bar{
			Time:   b.Timestamp.In(loc),
			Open:   decimal.NewFromFloat(b.Open),
			High:   decimal.NewFromFloat(b.High),
			Low:    decimal.NewFromFloat(b.Low),
			Close:  decimal.NewFromFloat(b.Close),
			Volume: decimal.NewFromUint64(b.Volume),
		})
	}

	return market.NewSession(symbol, day, loc, bars), nil
}
