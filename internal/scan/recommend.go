package scan

import "github.com/luminfarm/chromabot/internal/environ"

// #region messages

const (
	adviceLowWater    = "Water level is low. Increase irrigation before planting."
	adviceLowSun      = "Sunlight is insufficient here. Relocate to a more exposed spot."
	adviceBarren      = "Barren soil with struggling plants. This location is unsuitable for planting."
	adviceExcellent   = "Conditions are excellent. This is a prime planting location."
	adviceAdequate    = "Conditions are adequate for planting."
)

// #endregion messages

// #region recommendations

// recommendations runs the advisory threshold checks in fixed order. The
// order is part of the contract: callers display the list as-is, never
// sorted by severity.
func recommendations(terrain TerrainScan, plant PlantReading, growth float64) []string {
	var out []string

	if terrain.Water < 0.3 {
		out = append(out, adviceLowWater)
	}
	if terrain.Sunlight < 0.4 {
		out = append(out, adviceLowSun)
	}
	if plant.Health < 0.5 && terrain.Soil == environ.SoilBad {
		out = append(out, adviceBarren)
	}
	if growth > 0.8 {
		out = append(out, adviceExcellent)
	}

	if len(out) == 0 {
		out = append(out, adviceAdequate)
	}
	return out
}

// #endregion recommendations
