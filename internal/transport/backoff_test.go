package transport

import (
	"math/rand"
	"testing"
	"time"
)

func TestNextBackoffDelayGrowsAndCaps(t *testing.T) {
	cfg := BackoffConfig{
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     500 * time.Millisecond,
	}
	if got := NextBackoffDelay(cfg, 1, nil); got != 100*time.Millisecond {
		t.Errorf("attempt 1: %v", got)
	}
	if got := NextBackoffDelay(cfg, 2, nil); got != 200*time.Millisecond {
		t.Errorf("attempt 2: %v", got)
	}
	if got := NextBackoffDelay(cfg, 10, nil); got != 500*time.Millisecond {
		t.Errorf("attempt 10 must cap at MaxDelay: %v", got)
	}
}

func TestNextBackoffDelayJitterBounds(t *testing.T) {
	cfg := BackoffConfig{
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     time.Second,
		Jitter:       true,
	}
	rng := rand.New(rand.NewSource(1))
	for attempt := 2; attempt <= 5; attempt++ {
		base := NextBackoffDelay(BackoffConfig{
			InitialDelay: cfg.InitialDelay,
			Multiplier:   cfg.Multiplier,
			MaxDelay:     cfg.MaxDelay,
		}, attempt, nil)
		got := NextBackoffDelay(cfg, attempt, rng)
		if got < base/2 || got > base+base/2 {
			t.Errorf("attempt %d: jittered delay %v outside [%v, %v]", attempt, got, base/2, base+base/2)
		}
	}
}
