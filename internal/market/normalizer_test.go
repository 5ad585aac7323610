package market

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

func bar(hh, mm int, price float64) Bar {
	p := decimal.NewFromFloat(price)
	return Bar{
		Time:   time.Date(2024, 3, 12, hh, mm, 0, 0, time.UTC),
		Open:   p,
		High:   p,
		Low:    p,
		Close:  p,
		Volume: decimal.NewFromInt(1),
	}
}

func TestSessionWindow(t *testing.T) {
	t.Parallel()

	open, close := SessionWindow(day, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC), open)
	assert.Equal(t, time.Date(2024, 3, 12, 16, 0, 0, 0, time.UTC), close)
}

func TestNewSession_keepsOrderedBars(t *testing.T) {
	t.Parallel()

	s := NewSession("AAPL", day, time.UTC, []Bar{
		bar(9, 30, 10),
		bar(9, 31, 11),
		bar(9, 32, 12),
	})

	assert.Equal(t, "AAPL", s.Symbol())
	assert.Equal(t, 3, s.Len())

	first, err := s.First()
	require.NoError(t, err)
	assert.Equal(t, bar(9, 30, 10), first)

	last, err := s.Last()
	require.NoError(t, err)
	assert.Equal(t, bar(9, 32, 12), last)
}

func TestNewSession_sortsUnorderedInput(t *testing.T) {
	t.Parallel()

	s := NewSession("AAPL", day, time.UTC, []Bar{
		bar(9, 32, 12),
		bar(9, 30, 10),
		bar(9, 31, 11),
	})

	times := make([]time.Time, 0, s.Len())
	for _, b := range s.Bars() {
		times = append(times, b.Time)
	}

	assert.Equal(t, []time.Time{
		time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 9, 31, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 9, 32, 0, 0, time.UTC),
	}, times)
}

func TestNewSession_fillsGapsForward(t *testing.T) {
	t.Parallel()

	s := NewSession("AAPL", day, time.UTC, []Bar{
		bar(9, 30, 10),
		bar(9, 33, 13),
	})

	require.Equal(t, 4, s.Len())

	bars := s.Bars()
	for i := 1; i < len(bars); i++ {
		assert.Equal(t, time.Minute, bars[i].Time.Sub(bars[i-1].Time))
	}

	// Filled minutes copy the prior bar wholesale.
	assert.Equal(t, bar(9, 30, 10).Close, bars[1].Close)
	assert.Equal(t, bar(9, 30, 10).Volume, bars[1].Volume)
	assert.Equal(t, time.Date(2024, 3, 12, 9, 31, 0, 0, time.UTC), bars[1].Time)
	assert.Equal(t, bar(9, 30, 10).Close, bars[2].Close)
	assert.Equal(t, bar(9, 33, 13), bars[3])
}

func TestNewSession_dropsBarsOutsideWindow(t *testing.T) {
	t.Parallel()

	s := NewSession("AAPL", day, time.UTC, []Bar{
		bar(9, 29, 9),
		bar(9, 30, 10),
		bar(15, 59, 11),
		bar(16, 0, 12),
		bar(17, 15, 13),
	})

	require.Equal(t, 390, s.Len())

	first, _ := s.First()
	last, _ := s.Last()
	assert.Equal(t, time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC), first.Time)
	assert.Equal(t, time.Date(2024, 3, 12, 15, 59, 0, 0, time.UTC), last.Time)
}

func TestNewSession_dropsDuplicateMinutes(t *testing.T) {
	t.Parallel()

	dup := bar(9, 31, 99)
	s := NewSession("AAPL", day, time.UTC, []Bar{
		bar(9, 30, 10),
		bar(9, 31, 11),
		dup,
		bar(9, 32, 12),
	})

	require.Equal(t, 3, s.Len())
	assert.Equal(t, bar(9, 31, 11), s.Bars()[1])
}

func TestNewSession_empty(t *testing.T) {
	t.Parallel()

	s := NewSession("AAPL", day, time.UTC, nil)

	assert.True(t, s.Empty())
	assert.Empty(t, s.Bars())

	_, err := s.First()
	assert.Error(t, err)

	_, err = s.Last()
	assert.Error(t, err)
}

func TestNewSession_truncatesSubMinuteTimestamps(t *testing.T) {
	t.Parallel()

	b := bar(9, 30, 10)
	b.Time = b.Time.Add(12 * time.Second)

	s := NewSession("AAPL", day, time.UTC, []Bar{b})

	first, err := s.First()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC), first.Time)
}
