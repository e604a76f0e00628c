package environ

import (
	"math"
	"testing"
)

func TestSunPosition_Curve(t *testing.T) {
	const eps = 1e-9

	if h := SunPosition(6).Y; math.Abs(h) > eps {
		t.Errorf("sunrise height = %v, want 0", h)
	}
	if h := SunPosition(18).Y; math.Abs(h) > eps {
		t.Errorf("sunset height = %v, want 0", h)
	}
	if h := SunPosition(12).Y; math.Abs(h-100) > eps {
		t.Errorf("zenith height = %v, want 100", h)
	}
}

func TestSunPosition_NightFloor(t *testing.T) {
	// Midnight is the bottom of the arc; the floor caps it at -20.
	if h := SunPosition(0).Y; h != -20 {
		t.Errorf("midnight height = %v, want -20", h)
	}
	if h := SunPosition(3).Y; h < -20 {
		t.Errorf("pre-dawn height = %v, below floor", h)
	}
}

func TestSunPosition_Horizontal(t *testing.T) {
	const eps = 1e-9
	if x := SunPosition(6).X; math.Abs(x-80) > eps {
		t.Errorf("sunrise horizontal = %v, want 80", x)
	}
	if x := SunPosition(18).X; math.Abs(x+80) > eps {
		t.Errorf("sunset horizontal = %v, want -80", x)
	}
}

func TestSunPosition_WrapsHours(t *testing.T) {
	a, b := SunPosition(30), SunPosition(6)
	if a != b {
		t.Errorf("hour 30 = %+v, want same as hour 6 %+v", a, b)
	}
}

func TestTimeOfDay_Buckets(t *testing.T) {
	tests := []struct {
		hour float64
		want TimeBucket
	}{
		{5, BucketDawn},
		{6.5, BucketDawn},
		{7, BucketMorning},
		{10.9, BucketMorning},
		{11, BucketNoon},
		{13, BucketNoon},
		{14, BucketAfternoon},
		{16.5, BucketAfternoon},
		{17, BucketDusk},
		{18.9, BucketDusk},
		{19, BucketNight},
		{0, BucketNight},
		{4.9, BucketNight},
	}
	for _, tt := range tests {
		if got := TimeOfDay(tt.hour); got != tt.want {
			t.Errorf("TimeOfDay(%v) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestSunlightExposure_Monotonic(t *testing.T) {
	// Non-decreasing in elevation for fixed sun height.
	for _, sunHeight := range []float64{0, 25, 50, 100} {
		prev := -1.0
		for e := 0.0; e <= 1.0; e += 0.05 {
			got := SunlightExposure(e, sunHeight)
			if got < prev {
				t.Fatalf("exposure decreased in elevation: e=%v sun=%v got=%v prev=%v", e, sunHeight, got, prev)
			}
			prev = got
		}
	}

	// Non-decreasing in sun height for fixed elevation.
	for _, e := range []float64{0, 0.5, 1} {
		prev := -1.0
		for sh := 0.0; sh <= 100; sh += 5 {
			got := SunlightExposure(e, sh)
			if got < prev {
				t.Fatalf("exposure decreased in sun height: e=%v sun=%v got=%v prev=%v", e, sh, got, prev)
			}
			prev = got
		}
	}
}

func TestSunlightExposure_Bounds(t *testing.T) {
	if got := SunlightExposure(0, -100); got != 0.5 {
		t.Errorf("night sea-level exposure = %v, want 0.5", got)
	}
	// Negative sun height contributes nothing beyond the 0.5 base factor.
	if got := SunlightExposure(0, -20); got != SunlightExposure(0, 0) {
		t.Error("negative sun height should clamp to the zero-height factor")
	}
	for e := -1.0; e <= 2.0; e += 0.25 {
		for sh := -50.0; sh <= 150; sh += 25 {
			got := SunlightExposure(e, sh)
			if got < 0.1 || got > 2 {
				t.Fatalf("exposure %v out of [0.1, 2] at e=%v sh=%v", got, e, sh)
			}
		}
	}
}
