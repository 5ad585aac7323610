package market

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Bar struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

// Session is one trading day's regular-hours minute bars for a single symbol.
// Bars are ordered, deduplicated and gap-filled by NewSession; a Session is
// never mutated after construction.
type Session struct {
	symbol string
	bars   []Bar
}

func (s Session) Symbol() string {
	return s.symbol
}

func (s Session) Bars() []Bar {
	return s.bars
}

func (s Session) Len() int {
	return len(s.bars)
}

func (s Session) Empty() bool {
	return len(s.bars) == 0
}

func (s Session) First() (Bar, error) {
	if len(s.bars) == 0 {
		return Bar{}, errors.New("session has no bars")
	}

	return s.bars[0], nil
}

func (s Session) Last() (Bar, error) {
	if len(s.bars) == 0 {
		return Bar{}, errors.New("session has no bars")
	}

	return s.bars[len(s.bars)-1], nil
}
