package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Stop()
	require.Equal(t, 5, count)
	require.NotPanics(t, p.Stop)
}

func TestPoolSurvivesPanic(t *testing.T) {
	p := NewPool(0)
	done := false
	p.Submit(func() { panic("boom") })
	p.Submit(nil)
	p.Submit(func() { done = true })
	p.Stop()
	require.True(t, done)
}

func TestPoolSubmitDoesNotBlock(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	started := make(chan struct{})
	var ran atomic.Int32
	p.Submit(func() {
		close(started)
		<-release
	})
	<-started

	done := make(chan struct{})
	go func() {
		// 佇列滿了之後多送的一個要被丟棄，而不是卡住呼叫端
		for i := 0; i < QueueSize+1; i++ {
			p.Submit(func() { ran.Add(1) })
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked while the worker was busy")
	}

	close(release)
	p.Stop()
	require.Equal(t, int32(QueueSize), ran.Load())

	require.NotPanics(t, func() { p.Submit(func() { ran.Add(1) }) })
	require.Equal(t, int32(QueueSize), ran.Load())
}

func TestInline(t *testing.T) {
	var p Pool = Inline{}
	ran := false
	p.Submit(func() { ran = true })
	require.True(t, ran)
	require.NotPanics(t, func() { p.Submit(func() { panic("x") }) })
	p.Stop()
}
