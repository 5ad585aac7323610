package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

const defaultTimezone = "America/New_York"

// Validate rejects malformed inputs before any data is fetched: missing
// symbol, non-positive investment, unparseable or future or weekend dates,
// unknown frequency labels and missing source credentials.
func (c *Config) Validate(now time.Time) error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	day, err := time.Parse(dateLayout, c.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", c.Date, err)
	}

	if day.After(now) {
		return errors.New("date cannot be in the future")
	}

	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return errors.New("date falls on a weekend, markets are closed")
	}

	if c.Frequency != "" {
		if _, err := arbitrage.ParseFrequency(c.Frequency); err != nil {
			return err
		}
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	switch src := c.SourceRef.Source.(type) {
	case Polygon:
		if src.ApiKey == "" && os.Getenv("POLYGON_API_KEY") == "" {
			return errors.New("polygon source requires an api key")
		}
	case Alpaca:
		if src.ApiKey == "" || src.Secret == "" {
			return errors.New("alpaca source requires an api key and secret")
		}
	case CsvFile:
		if src.Path == "" {
			return errors.New("csv source requires a file path")
		}
	case nil:
		return errors.New("no session source configured")
	}

	return nil
}

func (c *Config) Day() (time.Time, error) {
	return time.Parse(dateLayout, c.Date)
}

func (c *Config) Location() (*time.Location, error) {
	tz := c.Timezone
	if tz == "" {
		tz = defaultTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	return loc, nil
}

func (c *Config) Freq() arbitrage.Frequency {
	if c.Frequency == "" {
		return arbitrage.DefaultFrequency
	}

	f, err := arbitrage.ParseFrequency(c.Frequency)
	if err != nil {
		return arbitrage.DefaultFrequency
	}

	return f
}
