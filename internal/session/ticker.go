package session

import "time"

// Ticker is a discrete tick source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type wallTicker struct {
	t *time.Ticker
}

// NewWallTicker returns a Ticker backed by time.Ticker.
func NewWallTicker(d time.Duration) Ticker {
	return &wallTicker{t: time.NewTicker(d)}
}

func (w *wallTicker) C() <-chan time.Time { return w.t.C }
func (w *wallTicker) Stop()               { w.t.Stop() }

// ManualTicker is a Ticker driven by explicit Fire calls.
type ManualTicker struct {
	ch chan time.Time
}

// NewManualTicker returns a ticker whose channel buffers up to n ticks.
func NewManualTicker(n int) *ManualTicker {
	return &ManualTicker{ch: make(chan time.Time, n)}
}

// Fire queues one tick.
func (m *ManualTicker) Fire() { m.ch <- time.Time{} }

// Close ends the tick stream; Run returns once the buffer drains.
func (m *ManualTicker) Close() { close(m.ch) }

func (m *ManualTicker) C() <-chan time.Time { return m.ch }
func (m *ManualTicker) Stop()               {}
