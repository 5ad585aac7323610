package polygon

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/config"
	"github.com/Ajnunezg/StockTraderSim/internal/market"
	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/shopspring/decimal"
)

const aggLimit = 50000

type Client struct {
	client *polygon.Client
}

func NewClient(cfg config.Polygon) *Client {
	apiKey := cfg.ApiKey
	if apiKey == "" {
		apiKey = os.Getenv("POLYGON_API_KEY")
	}

	return &Client{client: polygon.New(apiKey)}
}

// FetchSession pulls the day's 1-minute aggregates for the regular-hours
// window and normalizes them into a session.
func (c *Client) FetchSession(ctx context.Context, symbol string, day time.Time, loc *time.Location) (market.Session, error) {
	open, close := market.SessionWindow(day, loc)

	params := models.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   models.Minute,
		From:       models.Millis(open),
		To:         models.Millis(close),
	}.WithOrder(models.Asc).WithLimit(aggLimit).WithAdjusted(true)

	var bars []market.Bar
	iter := c.client.ListAggs(ctx, params)
	for iter.Next() {
		a := iter.Item()
		bars = append(bars, market.Bar{
			Time:   time.Time(a.Timestamp).In(loc),
			Open:   decimal.NewFromFloat(a.Open),
			High:   decimal.NewFromFloat(a.High),
			Low:    decimal.NewFromFloat(a.Low),
			Close:  decimal.NewFromFloat(a.Close),
			Volume: decimal.NewFromFloat(a.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return market.Session{}, fmt.Errorf("failed to fetch %s aggregates: %w", symbol, err)
	}

	return market.NewSession(symbol, day, loc, bars), nil
}
