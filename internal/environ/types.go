package environ

// #region soil-type
// SoilType enumerates the four terrain classes keyed by spatial quadrant.
type SoilType string

const (
	SoilWet  SoilType = "wet"
	SoilDry  SoilType = "dry"
	SoilGood SoilType = "good"
	SoilBad  SoilType = "bad"
)

// #endregion soil-type

// #region soil-attributes
// SoilAttributes holds the fixed descriptive properties of a soil type.
// Nutrients, WaterRetention and Drainage are all in [0, 1].
type SoilAttributes struct {
	Name           string
	Color          RGB
	SpeedFactor    float64 // robot movement speed multiplier
	Nutrients      float64
	WaterRetention float64
	Drainage       float64
}

// #endregion soil-attributes

// #region health-state
// HealthState is one of six ordered plant condition buckets.
type HealthState string

const (
	StateThriving HealthState = "thriving"
	StateHealthy  HealthState = "healthy"
	StateModerate HealthState = "moderate"
	StatePoor     HealthState = "poor"
	StateDying    HealthState = "dying"
	StateDead     HealthState = "dead"
)

// #endregion health-state

// #region time-bucket
// TimeBucket is a named daypart derived from the hour value.
type TimeBucket string

const (
	BucketDawn      TimeBucket = "dawn"
	BucketMorning   TimeBucket = "morning"
	BucketNoon      TimeBucket = "noon"
	BucketAfternoon TimeBucket = "afternoon"
	BucketDusk      TimeBucket = "dusk"
	BucketNight     TimeBucket = "night"
)

// #endregion time-bucket

// #region rgb
// RGB is an 8-bit-per-channel color.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// #endregion rgb

// #region vec3
// Vec3 is a 3D vector in world units.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// #endregion vec3

// #region helpers
// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampRange restricts v to [lo, hi].
func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize maps a device-scale coordinate (0-255) to [0, 1].
// Out-of-range input is clamped before scaling.
func Normalize(raw int) float64 {
	if raw < 0 {
		raw = 0
	}
	if raw > 255 {
		raw = 255
	}
	return float64(raw) / 255.0
}

// Denormalize maps a normalized coordinate back to the 0-255 device scale.
func Denormalize(norm float64) int {
	return int(clamp01(norm)*255 + 0.5)
}

// #endregion helpers
