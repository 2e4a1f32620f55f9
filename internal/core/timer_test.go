package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.ShouldStep() {
		t.Fatal("a fresh controller should allow one step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("second call within the same interval must not step")
	}
	fs.SetRate(1000)
	time.Sleep(5 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after the interval elapsed")
	}
}

func TestFixedStepDoesNotReplayPauses(t *testing.T) {
	fs := NewFixedStep(1000)
	fs.ShouldStep()
	time.Sleep(20 * time.Millisecond)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps > 3 {
		t.Fatalf("granted %d back-to-back steps after a stall, want at most a couple", steps)
	}

	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("Reset should grant an immediate step")
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := s.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}
