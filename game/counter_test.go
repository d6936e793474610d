package game

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/twentyfive/constant"
)

func TestCounterStartsFull(t *testing.T) {
	s := NewCounterState()
	if s.Count != constant.MaxWordCount {
		t.Errorf("Expected initial count %d, got %d", constant.MaxWordCount, s.Count)
	}
	if s.Max() != 25 {
		t.Errorf("Expected max 25, got %d", s.Max())
	}
}

func TestCounterIncrementSaturates(t *testing.T) {
	s := CounterState{}
	for i := 0; i < 25; i++ {
		var ok bool
		s, ok = s.Increment()
		if !ok {
			t.Fatalf("Increment %d unexpectedly ignored at count %d", i+1, s.Count)
		}
	}
	if s.Count != 25 {
		t.Fatalf("Expected count 25 after 25 increments, got %d", s.Count)
	}

	s, ok := s.Increment()
	if ok {
		t.Error("Expected 26th increment to be a no-op")
	}
	if s.Count != 25 {
		t.Errorf("Expected count to stay 25, got %d", s.Count)
	}
}

func TestCounterDecrementSaturates(t *testing.T) {
	s := CounterState{Count: 1}

	s, ok := s.Decrement()
	if !ok || s.Count != 0 {
		t.Fatalf("Expected decrement to reach 0, got count=%d ok=%v", s.Count, ok)
	}

	s, ok = s.Decrement()
	if ok {
		t.Error("Expected decrement at 0 to be a no-op")
	}
	if s.Count != 0 {
		t.Errorf("Expected count to stay 0, got %d", s.Count)
	}
}

func TestCounterStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewCounterState()

	for i := 0; i < 10000; i++ {
		if rng.Intn(2) == 0 {
			s, _ = s.Increment()
		} else {
			s, _ = s.Decrement()
		}
		if s.Count < 0 || s.Count > constant.MaxWordCount {
			t.Fatalf("Count left [0,%d] at step %d: %d", constant.MaxWordCount, i, s.Count)
		}
	}
}

func TestCounterFillFollowsCount(t *testing.T) {
	s := CounterState{Count: 5}
	if got := s.Fill(); got != ProjectFill(5) {
		t.Errorf("Expected fill %+v, got %+v", ProjectFill(5), got)
	}
}
