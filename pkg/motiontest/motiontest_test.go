package motiontest

import (
	"testing"
	"time"

	"github.com/go-motion/motion/pkg/animation"
)

func TestFakeClockAdvance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClockSet(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestRecordingProperty(t *testing.T) {
	prop := NewRecordingProperty(10)
	if prop.Read() != 10 {
		t.Errorf("expected initial value 10, got %v", prop.Read())
	}
	if prop.LastWrite() != 10 {
		t.Errorf("expected LastWrite to fall back to the value, got %v", prop.LastWrite())
	}

	prop.Write(20)
	prop.Write(30)
	if prop.Read() != 30 {
		t.Errorf("expected 30 after writes, got %v", prop.Read())
	}
	if len(prop.Writes) != 2 || prop.Writes[0] != 20 || prop.Writes[1] != 30 {
		t.Errorf("unexpected write log %v", prop.Writes)
	}
	if prop.LastWrite() != 30 {
		t.Errorf("expected last write 30, got %v", prop.LastWrite())
	}
}

func TestPumpDeliversExactTotal(t *testing.T) {
	fc := animation.NewFrameClock()
	prop := NewRecordingProperty(0)

	if _, err := fc.Animate("w", prop, 100, time.Second, animation.Linear); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3 steps of 300ms plus a truncated 100ms step.
	Pump(fc, time.Second, 300*time.Millisecond)
	if len(prop.Writes) != 4 {
		t.Errorf("expected 4 writes, got %v", prop.Writes)
	}
	if prop.LastWrite() != 100 {
		t.Errorf("expected exact end value 100, got %v", prop.LastWrite())
	}
}

func TestPumpSingleTickForNonPositiveStep(t *testing.T) {
	fc := animation.NewFrameClock()
	prop := NewRecordingProperty(0)

	if _, err := fc.Animate("w", prop, 50, time.Second, animation.Linear); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Pump(fc, time.Second, 0)
	if len(prop.Writes) != 1 || prop.Writes[0] != 50 {
		t.Errorf("expected a single write of 50, got %v", prop.Writes)
	}
}
