package scan

import "github.com/luminfarm/chromabot/internal/environ"

// #region terrain-scan
// TerrainScan holds the derived terrain readings at one position and hour.
// Every field except Temperature is in [0, 1]; Temperature is in degrees C.
type TerrainScan struct {
	Soil        environ.SoilType `json:"soil"`
	SoilName    string           `json:"soilName"`
	SoilQuality float64          `json:"soilQuality"`
	Elevation   float64          `json:"elevation"`
	Sunlight    float64          `json:"sunlight"`
	Water       float64          `json:"water"`
	Temperature float64          `json:"temperature"`
}

// #endregion terrain-scan

// #region plant-reading
// PlantReading holds the derived plant state at one position and hour.
type PlantReading struct {
	Health float64             `json:"health"`
	State  environ.HealthState `json:"state"`
	Color  environ.RGB         `json:"color"`
}

// #endregion plant-reading

// #region result
// Result bundles one full robot scan: terrain, plant, growth potential and
// advisory recommendations. Ephemeral: computed fresh per query, never stored.
type Result struct {
	Position        environ.Vec3       `json:"position"`
	Hour            float64            `json:"hour"`
	TimeOfDay       environ.TimeBucket `json:"timeOfDay"`
	Terrain         TerrainScan        `json:"terrain"`
	Plant           PlantReading       `json:"plant"`
	GrowthPotential float64            `json:"growthPotential"`
	Recommendations []string           `json:"recommendations"`
}

// #endregion result
