package timelapse

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlayerAdvancesAndWraps(t *testing.T) {
	var ticks int32
	var last int32

	p := NewPlayer([]int{2019, 2020, 2021}, 5*time.Millisecond, func(year int) {
		atomic.AddInt32(&ticks, 1)
		atomic.StoreInt32(&last, int32(year))
	})

	p.Start()
	time.Sleep(60 * time.Millisecond)
	p.Stop()

	assert.True(t, atomic.LoadInt32(&ticks) >= 3, "expected several ticks, got %d", ticks)
	seen := int(atomic.LoadInt32(&last))
	assert.Contains(t, []int{2019, 2020, 2021}, seen, "tick outside year list")
}

func TestStopHaltsTicks(t *testing.T) {
	var ticks int32
	p := NewPlayer([]int{2019, 2020}, 5*time.Millisecond, func(int) {
		atomic.AddInt32(&ticks, 1)
	})

	p.Start()
	time.Sleep(20 * time.Millisecond)
	p.Stop()
	assert.False(t, p.Playing())

	settled := atomic.LoadInt32(&ticks)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, atomic.LoadInt32(&ticks), "ticks after Stop")
}

// speed changes and restarts must never leave a second timer running
func TestNoDuplicateTimers(t *testing.T) {
	var ticks int32
	p := NewPlayer([]int{2019, 2020}, 20*time.Millisecond, func(int) {
		atomic.AddInt32(&ticks, 1)
	})

	p.Start()
	p.Start()
	p.SetSpeed(2)
	p.SetSpeed(4)
	p.Start()

	time.Sleep(60 * time.Millisecond)
	p.Stop()

	// at speed 4 the interval is 5ms; a leaked extra timer would roughly
	// double the observed rate
	got := atomic.LoadInt32(&ticks)
	assert.True(t, got <= 15, "tick rate suggests duplicate timers: %d", got)
}

func TestSetSpeedWhileStopped(t *testing.T) {
	p := NewPlayer([]int{2019}, time.Minute, nil)
	p.SetSpeed(3)
	assert.False(t, p.Playing(), "speed change must not start a stopped player")
}

func TestStopIdempotent(t *testing.T) {
	p := NewPlayer([]int{2019, 2020}, time.Minute, nil)
	p.Start()
	p.Stop()
	p.Stop()
	assert.False(t, p.Playing())
}

func TestEmptyYears(t *testing.T) {
	p := NewPlayer(nil, time.Millisecond, nil)
	p.Start()
	assert.False(t, p.Playing(), "nothing to play")
	assert.Equal(t, 0, p.Current())
}
