package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Ajnunezg/StockTraderSim/internal/market"
)

// WriteSession dumps a session's bars in the same csv layout Reader accepts,
// so a fetched day can be replayed offline.
func WriteSession(w io.Writer, s market.Session) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"timestamp", "open", "high", "low", "close", "volume"}); err != nil {
		return fmt.Errorf("failed to write bars csv header: %w", err)
	}

	for _, b := range s.Bars() {
		err := cw.Write([]string{
			strconv.FormatInt(b.Time.Unix(), 10),
			b.Open.String(),
			b.High.String(),
			b.Low.String(),
			b.Close.String(),
			b.Volume.String()})

		if err != nil {
			return fmt.Errorf("failed to dump bar: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteSessionFile(path string, s market.Session) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create bars dump: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteSession(f, s)
}
