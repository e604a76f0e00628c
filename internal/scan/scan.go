// Package scan combines the environmental model readings at one position and
// hour into a single robot scan result with advisory recommendations.
package scan

import (
	"math"

	"github.com/luminfarm/chromabot/internal/environ"
)

// #region growth-weights

// Growth potential weighs soil and sun more heavily than plant health does.
// The two formulas are deliberately distinct: health measures balance, growth
// potential measures planting upside.
const (
	growthWeightSoil      = 0.30
	growthWeightSunlight  = 0.30
	growthWeightWater     = 0.25
	growthWeightElevation = 0.15
)

// #endregion growth-weights

// #region scan

// At computes a full scan for a normalized position and hour. The position's
// X/Z select the soil quadrant and Y is the elevation. Out-of-range
// coordinates are clamped, never rejected.
func At(pos environ.Vec3, hour float64) Result {
	soil := environ.ClassifySoil(pos.X, pos.Z)
	elevation := clamp01(pos.Y)

	sun := environ.SunPosition(hour)
	exposure := environ.SunlightExposure(elevation, sun.Y)
	water := environ.WaterAvailability(soil, hour)
	quality := environ.SoilQuality(soil)

	terrain := TerrainScan{
		Soil:        soil,
		SoilName:    environ.Attributes(soil).Name,
		SoilQuality: quality,
		Elevation:   elevation,
		Sunlight:    exposure / 2, // exposure is in [0.1, 2]
		Water:       water,
		Temperature: temperature(sun.Y, elevation),
	}

	health := environ.PlantHealthWithWater(soil, elevation, hour, water)
	plant := PlantReading{
		Health: health,
		State:  environ.HealthStateFor(health),
		Color:  environ.PlantColor(health),
	}

	growth := growthPotential(quality, exposure, water, elevation)

	return Result{
		Position:        environ.Vec3{X: clamp01(pos.X), Y: elevation, Z: clamp01(pos.Z)},
		Hour:            hour,
		TimeOfDay:       environ.TimeOfDay(hour),
		Terrain:         terrain,
		Plant:           plant,
		GrowthPotential: growth,
		Recommendations: recommendations(terrain, plant, growth),
	}
}

// #endregion scan

// #region growth-potential

// growthPotential scores planting upside: soil quality 30%, sunlight (clamped
// to one unit) 30%, water 25%, elevation-band bonus 15%.
func growthPotential(quality, exposure, water, elevation float64) float64 {
	elevBonus := 0.5
	if elevation >= 0.2 && elevation <= 0.7 {
		elevBonus = 1.0
	}
	gp := quality*growthWeightSoil +
		math.Min(exposure, 1)*growthWeightSunlight +
		water*growthWeightWater +
		elevBonus*growthWeightElevation
	return clamp01(gp)
}

// #endregion growth-potential

// #region temperature

// temperature derives a rough air temperature in degrees C from the sun
// height and elevation: warmer under a high sun, cooler with altitude.
func temperature(sunHeight, elevation float64) float64 {
	return 8 + 20*math.Max(0, sunHeight)/100 - 6*elevation
}

// #endregion temperature

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
