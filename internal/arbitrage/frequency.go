package arbitrage

import (
	"fmt"
	"time"
)

// Frequency is the interval duration used as the unit of opportunity search.
// It is a closed enumeration: unknown labels fail in ParseFrequency, so the
// simulator itself never has to fall back to a default.
type Frequency int

const (
	Hourly Frequency = iota
	Min30
	Min15
	Min10
	Min5
	Min1
)

const DefaultFrequency = Min10

// Frequencies lists all supported frequencies in comparison-table order.
var Frequencies = []Frequency{Hourly, Min30, Min15, Min10, Min5, Min1}

var durations = map[Frequency]time.Duration{
	Hourly: time.Hour,
	Min30:  30 * time.Minute,
	Min15:  15 * time.Minute,
	Min10:  10 * time.Minute,
	Min5:   5 * time.Minute,
	Min1:   time.Minute,
}

var labels = map[Frequency]string{
	Hourly: "hourly",
	Min30:  "30min",
	Min15:  "15min",
	Min10:  "10min",
	Min5:   "5min",
	Min1:   "1min",
}

func (f Frequency) Duration() time.Duration {
	d, ok := durations[f]
	if !ok {
		return durations[DefaultFrequency]
	}

	return d
}

func (f Frequency) String() string {
	l, ok := labels[f]
	if !ok {
		return fmt.Sprintf("frequency(%d)", int(f))
	}

	return l
}

func ParseFrequency(label string) (Frequency, error) {
	for _, f := range Frequencies {
		if labels[f] == label {
			return f, nil
		}
	}

	return DefaultFrequency, fmt.Errorf("unknown frequency: %q", label)
}
