package timer

// ManualTicker fires only when told to. Used to drive the countdown
// deterministically in tests.
type ManualTicker struct {
	onTick  func()
	running bool
	Starts  int
	Stops   int
}

func (t *ManualTicker) Start(onTick func()) {
	if t.running {
		t.Stop()
	}
	t.onTick = onTick
	t.running = true
	t.Starts++
}

func (t *ManualTicker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.onTick = nil
	t.Stops++
}

func (t *ManualTicker) Running() bool {
	return t.running
}

// Fire delivers n ticks, stopping early if the ticker is stopped by a
// callback.
func (t *ManualTicker) Fire(n int) {
	for i := 0; i < n && t.running; i++ {
		t.onTick()
	}
}
