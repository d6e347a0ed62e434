package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithinLimit(t *testing.T) {
	limiter := NewLimiter()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1", 3, time.Minute), "request %d should be admitted", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1", 3, time.Minute), "4th request within the window must be denied")
}

func TestAllowRecoversAfterWindow(t *testing.T) {
	limiter := NewLimiter()
	window := 100 * time.Millisecond

	assert.True(t, limiter.Allow("10.0.0.1", 2, window))
	assert.True(t, limiter.Allow("10.0.0.1", 2, window))
	assert.False(t, limiter.Allow("10.0.0.1", 2, window))

	time.Sleep(window + 50*time.Millisecond)

	assert.True(t, limiter.Allow("10.0.0.1", 2, window), "request after the window must be admitted again")
}

func TestDeniedRequestsAreNotRecorded(t *testing.T) {
	limiter := NewLimiter()
	window := 150 * time.Millisecond

	assert.True(t, limiter.Allow("10.0.0.1", 1, window))
	for i := 0; i < 5; i++ {
		assert.False(t, limiter.Allow("10.0.0.1", 1, window))
	}

	// Denials must not extend the window.
	time.Sleep(window + 50*time.Millisecond)
	assert.True(t, limiter.Allow("10.0.0.1", 1, window))
}

func TestIdentifiersAreIndependent(t *testing.T) {
	limiter := NewLimiter()

	assert.True(t, limiter.Allow("10.0.0.1", 1, time.Minute))
	assert.False(t, limiter.Allow("10.0.0.1", 1, time.Minute))

	assert.True(t, limiter.Allow("10.0.0.2", 1, time.Minute), "a different identifier has its own window")
}

func TestConcurrentAllow(t *testing.T) {
	limiter := NewLimiter()

	const workers = 20
	var wg sync.WaitGroup
	admitted := make(chan bool, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			admitted <- limiter.Allow(fmt.Sprintf("client-%d", n%2), 5, time.Minute)
		}(i)
	}
	wg.Wait()
	close(admitted)

	count := 0
	for ok := range admitted {
		if ok {
			count++
		}
	}
	// Two identifiers, five slots each.
	assert.Equal(t, 10, count)
}
