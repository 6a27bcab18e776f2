package feed

import "time"

// Ticker is the part of *time.Ticker the generator depends on.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds a ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type wallTicker struct {
	t *time.Ticker
}

func (w *wallTicker) C() <-chan time.Time { return w.t.C }
func (w *wallTicker) Stop()               { w.t.Stop() }

func NewWallTicker(d time.Duration) Ticker {
	return &wallTicker{t: time.NewTicker(d)}
}
