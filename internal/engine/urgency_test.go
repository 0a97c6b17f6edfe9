package engine_test

import (
	"testing"

	"github.com/wastenot/wastenot-cli/internal/engine"
)

func TestUrgencyThresholds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		daysLeft int
		want     int
	}{
		{-3, 100},
		{0, 100},
		{1, 100},
		{2, 80},
		{3, 60},
		{4, 40},
		{7, 40},
		{8, 20},
		{365, 20},
	}
	for _, c := range cases {
		if got := engine.Urgency(c.daysLeft); got != c.want {
			t.Fatalf("urgency(%d) = %d, want %d", c.daysLeft, got, c.want)
		}
	}
}

func TestUrgencyNonIncreasing(t *testing.T) {
	t.Parallel()
	prev := engine.Urgency(-10)
	for d := -9; d <= 30; d++ {
		cur := engine.Urgency(d)
		if cur > prev {
			t.Fatalf("urgency increased from %d to %d at daysLeft=%d", prev, cur, d)
		}
		prev = cur
	}
}
