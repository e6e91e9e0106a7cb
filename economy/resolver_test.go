package economy

import "testing"

func TestRollPayout(t *testing.T) {
	if got := rollPayout(100, 6); got != 500 {
		t.Fatalf("expected 500, got %d", got)
	}
	if got := rollPayout(1, 2); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestRaidAmount(t *testing.T) {
	cases := []struct {
		balance int64
		pct     float64
		want    int64
	}{
		{100, 0.25, 25},
		{101, 0.25, 25}, // floor
		{3, 0.25, 0},    // negligible balance yields nothing
		{0, 0.25, 0},
		{10000, 0.25, 2500},
		{10, 1.0, 10}, // capped at the full balance
	}
	for _, tc := range cases {
		if got := raidAmount(tc.balance, tc.pct); got != tc.want {
			t.Fatalf("raidAmount(%d, %v) = %d, want %d", tc.balance, tc.pct, got, tc.want)
		}
	}
}
