package clock

import (
	"testing"
	"time"
)

func TestSecondsAdvancesAcrossSleep(t *testing.T) {
	const pause = 50 * time.Millisecond

	start := Seconds()
	// Readings truncate to whole milliseconds, so sleep a little past the bound.
	time.Sleep(pause + 2*time.Millisecond)
	end := Seconds()

	if got := end - start; got < pause.Seconds() {
		t.Fatalf("elapsed=%.4fs, want >= %v", got, pause)
	}
}

func TestSecondsTracksWallClock(t *testing.T) {
	now := float64(time.Now().UnixMilli()) / 1000
	got := Seconds()
	if d := got - now; d < -1 || d > 1 {
		t.Fatalf("Seconds()=%.3f wall=%.3f", got, now)
	}
}

func TestSinceNonNegative(t *testing.T) {
	start := Seconds()
	if d := Since(start); d < 0 {
		t.Fatalf("Since=%v", d)
	}
}

func TestSecondsConversion(t *testing.T) {
	cases := []struct {
		t    time.Time
		want float64
	}{
		{time.Unix(0, 0), 0},
		{time.Unix(1, 500*int64(time.Millisecond)), 1.5},
		{time.Unix(998640000, 123456789), 998640000.123},
		{time.Unix(-10, 0), 0},
	}
	for _, c := range cases {
		if got := seconds(c.t); got-c.want > 1e-6 || c.want-got > 1e-6 {
			t.Errorf("seconds(%v)=%v want %v", c.t, got, c.want)
		}
	}
}
