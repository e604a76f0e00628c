package environ

// #region constants

const (
	dewStartHour = 6.0
	dewEndHour   = 9.0
	dewBonus     = 0.15

	evapStartHour = 11.0
	evapEndHour   = 15.0

	// evapPenalty is the canonical midday evaporation penalty. Two historical
	// call paths used 0.15 and 0.20; 0.20 is canonical for every caller and
	// pinned by TestWaterAvailability_EvaporationPenalty.
	evapPenalty = 0.20
)

// #endregion constants

// #region water

// WaterAvailability computes the [0, 1] water level for a soil type at a
// given hour. The soil's base retention gains a dew bonus in [6, 9] and loses
// the evaporation penalty in [11, 15]. Both window edges are inclusive.
func WaterAvailability(soil SoilType, hour float64) float64 {
	h := wrapHour(hour)
	w := Attributes(soil).WaterRetention
	if h >= dewStartHour && h <= dewEndHour {
		w += dewBonus
	}
	if h >= evapStartHour && h <= evapEndHour {
		w -= evapPenalty
	}
	return clamp01(w)
}

// #endregion water
