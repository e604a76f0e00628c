package environ

import "math"

// #region constants

const (
	sunriseHour = 6.0
	sunsetHour  = 18.0

	sunHeightScale     = 100.0
	sunHorizontalScale = 80.0
	sunHeightFloor     = -20.0

	// exposureBase is the unit light level at sea level and zenith half-weight.
	exposureBase = 1.0

	exposureMin = 0.1
	exposureMax = 2.0
)

// #endregion constants

// #region sun-position

// SunPosition computes the sun's world position for an hour in [0, 24).
// The arc is a half-sine: angle = (hour-6)/12 * pi, so height crosses zero at
// 6 and 18 and peaks at 100 at hour 12. Below the horizon the height is
// floored at -20. Hours outside [0, 24) wrap.
func SunPosition(hour float64) Vec3 {
	hour = wrapHour(hour)
	angle := (hour - sunriseHour) / 12.0 * math.Pi
	height := math.Sin(angle) * sunHeightScale
	if height < sunHeightFloor {
		height = sunHeightFloor
	}
	return Vec3{
		X: math.Cos(angle) * sunHorizontalScale,
		Y: height,
		Z: 0,
	}
}

// wrapHour maps any hour value into [0, 24).
func wrapHour(hour float64) float64 {
	h := math.Mod(hour, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// #endregion sun-position

// #region time-bucket

// TimeOfDay names the daypart for an hour value.
// Buckets: dawn [5,7), morning [7,11), noon [11,14), afternoon [14,17),
// dusk [17,19), night otherwise.
func TimeOfDay(hour float64) TimeBucket {
	h := wrapHour(hour)
	switch {
	case h >= 5 && h < 7:
		return BucketDawn
	case h >= 7 && h < 11:
		return BucketMorning
	case h >= 11 && h < 14:
		return BucketNoon
	case h >= 14 && h < 17:
		return BucketAfternoon
	case h >= 17 && h < 19:
		return BucketDusk
	default:
		return BucketNight
	}
}

// #endregion time-bucket

// #region exposure

// SunlightExposure computes the relative light received at a normalized
// elevation for a given sun height. Monotonic non-decreasing in both inputs
// for sunHeight >= 0. Result is clamped to [0.1, 2].
func SunlightExposure(elevation, sunHeight float64) float64 {
	elevation = clamp01(elevation)
	sunFactor := 0.5 + math.Max(0, sunHeight/sunHeightScale)*0.5
	exposure := exposureBase * (1 + elevation*0.4) * sunFactor
	return clampRange(exposure, exposureMin, exposureMax)
}

// #endregion exposure
