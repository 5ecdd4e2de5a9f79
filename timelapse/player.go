package timelapse

import (
	"sync"
	"time"
)

// DefaultBaseInterval is the tick period at speed 1.
const DefaultBaseInterval = 2 * time.Second

// Player advances through a fixed list of years on a recurring timer,
// wrapping around at the end. The ticker is owned by the player and is
// stopped on every exit path: Stop, speed change and restart. At most one
// ticker goroutine exists at any time.
type Player struct {
	mu sync.Mutex

	years        []int
	idx          int
	baseInterval time.Duration
	speed        float64

	onTick func(year int)

	ticker *time.Ticker
	done   chan struct{}
}

// NewPlayer creates a stopped player over years. onTick is invoked with the
// newly selected year on every advance.
func NewPlayer(years []int, baseInterval time.Duration, onTick func(year int)) *Player {
	if baseInterval <= 0 {
		baseInterval = DefaultBaseInterval
	}
	return &Player{
		years:        years,
		baseInterval: baseInterval,
		speed:        1,
		onTick:       onTick,
	}
}

// Start begins playback. Starting a running player restarts its timer.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.years) == 0 {
		return
	}

	p.stopLocked()
	p.startLocked()
}

// Stop halts playback and releases the timer. Safe to call repeatedly.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// SetSpeed changes the playback speed factor. A running player swaps its
// timer for one at the new rate; a stopped player stays stopped.
func (p *Player) SetSpeed(speed float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if speed <= 0 {
		speed = 1
	}
	p.speed = speed

	if p.ticker != nil {
		p.stopLocked()
		p.startLocked()
	}
}

// Playing reports whether a timer is currently running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticker != nil
}

// Current returns the currently selected year.
func (p *Player) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.years) == 0 {
		return 0
	}
	return p.years[p.idx]
}

func (p *Player) startLocked() {
	interval := time.Duration(float64(p.baseInterval) / p.speed)
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	p.ticker = ticker
	p.done = done

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p.advance()
			}
		}
	}()
}

func (p *Player) stopLocked() {
	if p.ticker == nil {
		return
	}
	p.ticker.Stop()
	close(p.done)
	p.ticker = nil
	p.done = nil
}

func (p *Player) advance() {
	p.mu.Lock()
	if p.ticker == nil || len(p.years) == 0 {
		p.mu.Unlock()
		return
	}
	p.idx = (p.idx + 1) % len(p.years)
	year := p.years[p.idx]
	onTick := p.onTick
	p.mu.Unlock()

	if onTick != nil {
		onTick(year)
	}
}
