package environ

import (
	"math"
	"testing"
)

func TestWaterAvailability_DewWindow(t *testing.T) {
	base := Attributes(SoilDry).WaterRetention
	got := WaterAvailability(SoilDry, 7)
	want := base + 0.15
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("dew-window water = %v, want %v", got, want)
	}
}

// TestWaterAvailability_EvaporationPenalty pins the canonical midday penalty
// at 0.20 for every soil type.
func TestWaterAvailability_EvaporationPenalty(t *testing.T) {
	for _, s := range []SoilType{SoilWet, SoilDry, SoilGood, SoilBad} {
		base := Attributes(s).WaterRetention
		got := WaterAvailability(s, 13)
		want := clamp01(base - 0.20)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("soil %q midday water = %v, want %v", s, got, want)
		}
	}
}

func TestWaterAvailability_OutsideWindows(t *testing.T) {
	for _, s := range []SoilType{SoilWet, SoilDry, SoilGood, SoilBad} {
		base := Attributes(s).WaterRetention
		for _, hour := range []float64{0, 4, 10, 16, 20, 23.5} {
			got := WaterAvailability(s, hour)
			if math.Abs(got-base) > 1e-9 {
				t.Errorf("soil %q hour %v water = %v, want base %v", s, hour, got, base)
			}
		}
	}
}

func TestWaterAvailability_Clamped(t *testing.T) {
	// Wetland plus dew would exceed 1; dryland minus evaporation stays >= 0.
	if got := WaterAvailability(SoilWet, 7); got != 1 {
		t.Errorf("wetland dew water = %v, want clamp to 1", got)
	}
	if got := WaterAvailability(SoilDry, 13); got != 0 {
		t.Errorf("dryland midday water = %v, want clamp to 0", got)
	}
}
