package timer

import (
	"sync"
	"time"
)

// Dispatcher hands a callback to the goroutine that owns the state the
// callback touches.
type Dispatcher func(fn func())

// Direct runs callbacks on the ticker goroutine itself.
func Direct(fn func()) { fn() }

// Ticker delivers one callback per interval while started. Start and Stop
// are expected to be called from the dispatcher's goroutine, which is also
// where callbacks run, so a Stop always wins over callbacks still queued.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	dispatch Dispatcher
	running  bool
	gen      uint64
	stopChan chan struct{}
}

func New(dispatch Dispatcher) *Ticker {
	return NewWithInterval(time.Second, dispatch)
}

func NewWithInterval(interval time.Duration, dispatch Dispatcher) *Ticker {
	if dispatch == nil {
		dispatch = Direct
	}
	return &Ticker{
		interval: interval,
		dispatch: dispatch,
	}
}

// Start replaces any active instance with a fresh one.
func (t *Ticker) Start(onTick func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	t.running = true
	t.gen++
	gen := t.gen
	stop := make(chan struct{})
	t.stopChan = stop

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.dispatch(func() {
					if t.current(gen) {
						onTick()
					}
				})
			}
		}
	}()
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Ticker) stopLocked() {
	if !t.running {
		return
	}
	t.running = false
	t.gen++
	close(t.stopChan)
	t.stopChan = nil
}

func (t *Ticker) current(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running && t.gen == gen
}
