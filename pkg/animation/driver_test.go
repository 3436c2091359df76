package animation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-motion/motion/pkg/animation"
	"github.com/go-motion/motion/pkg/motiontest"
)

func TestDriverStopsOnContextCancel(t *testing.T) {
	fc := animation.NewFrameClock()
	d := animation.NewDriver(fc, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("driver did not stop after context cancellation")
	}
}

func TestSetClock(t *testing.T) {
	fake := motiontest.NewFakeClock()
	prev := animation.SetClock(fake)
	defer animation.SetClock(prev)

	fake.Set(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	if !animation.Now().Equal(fake.Now()) {
		t.Errorf("expected package clock to follow fake clock, got %v", animation.Now())
	}
}
