package market

import (
	"testing"

	"github.com/theirongolddev/automarket/internal/model"
)

func TestStats(t *testing.T) {
	s := Stats(seedMarket())

	if s.Count != 12 {
		t.Errorf("Count = %d, want 12", s.Count)
	}
	if s.Lowest != 22_000 || s.Highest != 2_200_000 {
		t.Errorf("Lowest/Highest = %d/%d", s.Lowest, s.Highest)
	}
	if s.Median != 132_000 {
		t.Errorf("Median = %d, want 132000", s.Median)
	}
	if s.OldestYear != 1985 || s.NewestYear != 2020 {
		t.Errorf("years = %d-%d", s.OldestYear, s.NewestYear)
	}
	if s.ByDrive[model.AWD] != 4 || s.ByDrive[model.FWD] != 1 || s.ByDrive[model.RWD] != 7 {
		t.Errorf("ByDrive = %v", s.ByDrive)
	}
}

func TestStatsEmpty(t *testing.T) {
	s := Stats(model.NewCollection(model.KindGarage))
	if s.Count != 0 || s.ByDrive != nil {
		t.Errorf("Stats(empty) = %+v", s)
	}
}
