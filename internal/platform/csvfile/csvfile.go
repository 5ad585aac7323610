package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/shopspring/decimal"
)

// Reader loads a session from a csv bar file with the columns
// timestamp,open,high,low,close,volume where timestamp is unix seconds.
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

func (r *Reader) FetchSession(_ context.Context, symbol string, day time.Time, loc *time.Location) (market.Session, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return market.Session{}, fmt.Errorf("unable to open bar file: %w", err)
	}
	defer f.Close()

	rdr := csv.NewReader(bufio.NewReader(f))
	if _, err := rdr.Read(); err != nil {
		return market.Session{}, fmt.Errorf("failed to read csv header: %w", err)
	}

	var bars []market.Bar
	for {
		data, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return market.Session{}, fmt.Errorf("failed to read bar data: %w", err)
		}

		bar, err := parseBar(data)
		if err != nil {
			return market.Session{}, err
		}

		bars = append(bars, bar)
	}

	return market.NewSession(symbol, day, loc, bars), nil
}

func parseBar(data []string) (market.Bar, error) {
	if len(data) < 6 {
		return market.Bar{}, fmt.Errorf("bar row has %d columns, expected 6", len(data))
	}

	timestamp, err := strconv.ParseFloat(data[0], 64)
	if err != nil {
		return market.Bar{}, fmt.Errorf("failed to parse bar time: %w", err)
	}

	open, err := decimal.NewFromString(data[1])
	if err != nil {
		return market.Bar{}, fmt.Errorf("failed to read open price: %w", err)
	}

	high, err := decimal.NewFromString(data[2])
	if err != nil {
		return market.Bar{}, fmt.Errorf("failed to read high price: %w", err)
	}

	low, err := decimal.NewFromString(data[3])
	if err != nil {
		return market.Bar{}, fmt.Errorf("failed to read low price: %w", err)
	}

	close, err := decimal.NewFromString(data[4])
	if err != nil {
		return market.Bar{}, fmt.Errorf("failed to read close price: %w", err)
	}

	volume, err := decimal.NewFromString(data[5])
	if err != nil {
		return market.Bar{}, fmt.Errorf("failed to read volume: %w", err)
	}

	return market.Bar{
		Time:   time.Unix(int64(timestamp), 0),
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: volume,
	}, nil
}
