package domain

import (
	"testing"
	"time"
)

func TestOnSlotGrid(t *testing.T) {
	cases := []struct {
		minute int
		want   bool
	}{
		{0, true},
		{20, true},
		{40, true},
		{5, false},
		{19, false},
		{25, false},
		{59, false},
	}

	for _, tc := range cases {
		at := time.Date(2026, 9, 1, 8, tc.minute, 0, 0, time.UTC)
		if got := OnSlotGrid(at); got != tc.want {
			t.Errorf("OnSlotGrid(:%02d) = %v, want %v", tc.minute, got, tc.want)
		}
	}
}
