package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerDeliversTicks(t *testing.T) {
	var n atomic.Int32
	tk := NewWithInterval(5*time.Millisecond, nil)

	tk.Start(func() { n.Add(1) })
	defer tk.Stop()

	require.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, time.Millisecond)
	assert.True(t, tk.Running())
}

func TestTickerStopIsImmediate(t *testing.T) {
	var n atomic.Int32
	tk := NewWithInterval(5*time.Millisecond, nil)
	tk.Start(func() { n.Add(1) })
	require.Eventually(t, func() bool { return n.Load() >= 1 }, time.Second, time.Millisecond)

	tk.Stop()
	stopped := n.Load()
	time.Sleep(30 * time.Millisecond)

	assert.False(t, tk.Running())
	assert.LessOrEqual(t, n.Load(), stopped+1)
}

func TestTickerDropsQueuedCallbacksAfterStop(t *testing.T) {
	queue := make(chan func(), 16)
	tk := NewWithInterval(2*time.Millisecond, func(fn func()) {
		select {
		case queue <- fn:
		default:
		}
	})

	var n int
	tk.Start(func() { n++ })

	var pending func()
	select {
	case pending = <-queue:
	case <-time.After(time.Second):
		t.Fatal("no tick dispatched")
	}

	tk.Stop()
	pending()

	assert.Equal(t, 0, n)
}

func TestTickerRestartReplacesInstance(t *testing.T) {
	queue := make(chan func(), 64)
	tk := NewWithInterval(2*time.Millisecond, func(fn func()) {
		select {
		case queue <- fn:
		default:
		}
	})
	defer tk.Stop()

	var first int
	tk.Start(func() { first++ })

	select {
	case fn := <-queue:
		tk.Start(func() {})
		fn()
	case <-time.After(time.Second):
		t.Fatal("no tick dispatched")
	}

	assert.Equal(t, 0, first)
	assert.True(t, tk.Running())
}

func TestManualTicker(t *testing.T) {
	var tk ManualTicker
	var n int

	tk.Fire(1)
	assert.Equal(t, 0, n)

	tk.Start(func() { n++ })
	tk.Fire(3)
	assert.Equal(t, 3, n)

	tk.Start(func() { n += 10 })
	assert.Equal(t, 2, tk.Starts)
	assert.Equal(t, 1, tk.Stops)

	tk.Stop()
	tk.Stop()
	tk.Fire(1)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, tk.Stops)
	assert.False(t, tk.Running())
}
