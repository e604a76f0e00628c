package environ

import "math"

// #region weights

const (
	weightSun       = 0.25
	weightWater     = 0.25
	weightSoil      = 0.30
	weightElevation = 0.20
)

// #endregion weights

// #region plant-health

// PlantHealth computes the [0, 1] growth suitability score for a soil type,
// normalized elevation and hour. It is a weighted sum of four piecewise
// sub-scores: sunlight 25%, water 25%, soil 30%, elevation 20%.
func PlantHealth(soil SoilType, elevation, hour float64) float64 {
	return PlantHealthWithWater(soil, elevation, hour, WaterAvailability(soil, hour))
}

// PlantHealthWithWater is PlantHealth with the water level supplied by the
// caller instead of derived from the soil and hour.
func PlantHealthWithWater(soil SoilType, elevation, hour, water float64) float64 {
	elevation = clamp01(elevation)
	water = clamp01(water)

	sun := SunPosition(hour)
	exposure := SunlightExposure(elevation, sun.Y)

	health := weightSun*sunScore(exposure) +
		weightWater*waterScore(water) +
		weightSoil*soilScore(SoilQuality(soil)) +
		weightElevation*elevationScore(elevation)

	return clamp01(health)
}

// #endregion plant-health

// #region sub-scores

// sunScore plateaus at 1.0 for exposure in [0.5, 1.0]. Below the plateau the
// score falls linearly to 0; above it, scorch drops it by 2.5 per unit of
// excess exposure, floored at 0.2.
func sunScore(exposure float64) float64 {
	switch {
	case exposure < 0.5:
		return exposure / 0.5
	case exposure <= 1.0:
		return 1.0
	default:
		return math.Max(0.2, 1.0-(exposure-1.0)*2.5)
	}
}

// waterScore plateaus at 1.0 for water in [0.4, 0.7]. Drought falls linearly
// to 0; waterlogging costs up to half the score at full saturation.
func waterScore(water float64) float64 {
	switch {
	case water < 0.4:
		return water / 0.4
	case water <= 0.7:
		return 1.0
	default:
		return 1.0 - (water-0.7)/0.3*0.5
	}
}

// soilScore plateaus at 1.0 for quality >= 0.7. Mid-range quality maps
// linearly onto [0.4, 1.0); depleted soil below 0.3 maps onto [0, 0.4).
func soilScore(quality float64) float64 {
	switch {
	case quality >= 0.7:
		return 1.0
	case quality >= 0.3:
		return 0.4 + (quality-0.3)/0.4*0.6
	default:
		return quality / 0.3 * 0.4
	}
}

// elevationScore plateaus at 1.0 for elevation in [0.3, 0.6]. Lowlands keep
// at least 0.6; exposed highlands fall to a floor of 0.2 at the summit.
func elevationScore(elevation float64) float64 {
	switch {
	case elevation < 0.3:
		return 0.6 + elevation/0.3*0.4
	case elevation <= 0.6:
		return 1.0
	default:
		return math.Max(0.2, 1.0-(elevation-0.6)*2)
	}
}

// #endregion sub-scores

// #region health-state

// healthLadder maps the lower edge of each bucket to its state, highest
// first. Boundaries are closed on their lower edge.
var healthLadder = []struct {
	min   float64
	state HealthState
}{
	{0.85, StateThriving},
	{0.65, StateHealthy},
	{0.45, StateModerate},
	{0.25, StatePoor},
	{0.10, StateDying},
	{0.00, StateDead},
}

// HealthStateFor maps a health score to its condition bucket.
func HealthStateFor(health float64) HealthState {
	health = clamp01(health)
	for _, rung := range healthLadder {
		if health >= rung.min {
			return rung.state
		}
	}
	return StateDead
}

// #endregion health-state

// #region plant-color

// colorAnchor fixes the plant color at one health boundary. Adjacent
// interpolation segments share anchors, so PlantColor is continuous.
type colorAnchor struct {
	health float64
	color  RGB
}

var colorAnchors = []colorAnchor{
	{0.00, RGB{R: 61, G: 43, B: 31}},    // dead: gray-brown
	{0.10, RGB{R: 121, G: 85, B: 47}},   // dying: dry brown
	{0.25, RGB{R: 148, G: 124, B: 48}},  // poor: withered ochre
	{0.45, RGB{R: 154, G: 178, B: 54}},  // moderate: pale yellow-green
	{0.65, RGB{R: 88, G: 168, B: 58}},   // healthy: leaf green
	{1.00, RGB{R: 34, G: 139, B: 34}},   // thriving: deep forest green
}

// PlantColor maps a health score to an RGB color via piecewise linear
// interpolation between the six anchor colors.
func PlantColor(health float64) RGB {
	health = clamp01(health)
	for i := 1; i < len(colorAnchors); i++ {
		lo, hi := colorAnchors[i-1], colorAnchors[i]
		if health > hi.health {
			continue
		}
		t := (health - lo.health) / (hi.health - lo.health)
		return lerpRGB(lo.color, hi.color, t)
	}
	return colorAnchors[len(colorAnchors)-1].color
}

// NearestHealthState inverts PlantColor: the color is projected onto each
// anchor segment, the closest projection recovers the interpolation
// position, and the health that position maps back to selects the bucket.
// For any color PlantColor produced, the recovered health is within channel
// rounding of the input, so the bucket agrees with HealthStateFor except
// inside that rounding margin of a bucket edge. Used by the comparison step
// to name a guessed color.
func NearestHealthState(c RGB) HealthState {
	bestDist := math.MaxFloat64
	bestHealth := 0.0
	for i := 1; i < len(colorAnchors); i++ {
		lo, hi := colorAnchors[i-1], colorAnchors[i]
		t := segmentPosition(c, lo.color, hi.color)
		d := rgbDistSq(c, lerpRGB(lo.color, hi.color, t))
		if d < bestDist {
			bestDist = d
			bestHealth = lo.health + t*(hi.health-lo.health)
		}
	}
	return HealthStateFor(bestHealth)
}

// segmentPosition projects c onto the lo-to-hi color segment and returns
// the clamped position as a fraction of the segment.
func segmentPosition(c, lo, hi RGB) float64 {
	dr := float64(hi.R - lo.R)
	dg := float64(hi.G - lo.G)
	db := float64(hi.B - lo.B)
	lenSq := dr*dr + dg*dg + db*db
	if lenSq == 0 {
		return 0
	}
	t := (float64(c.R-lo.R)*dr + float64(c.G-lo.G)*dg + float64(c.B-lo.B)*db) / lenSq
	return clamp01(t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: int(math.Round(float64(a.R) + (float64(b.R)-float64(a.R))*t)),
		G: int(math.Round(float64(a.G) + (float64(b.G)-float64(a.G))*t)),
		B: int(math.Round(float64(a.B) + (float64(b.B)-float64(a.B))*t)),
	}
}

func rgbDistSq(a, b RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return dr*dr + dg*dg + db*db
}

// #endregion plant-color
