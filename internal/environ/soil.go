package environ

// #region attribute-table

var soilTable = map[SoilType]SoilAttributes{
	SoilWet: {
		Name:           "Wetland",
		Color:          RGB{R: 74, G: 104, B: 82},
		SpeedFactor:    0.6,
		Nutrients:      0.7,
		WaterRetention: 0.9,
		Drainage:       0.2,
	},
	SoilDry: {
		Name:           "Dryland",
		Color:          RGB{R: 194, G: 165, B: 108},
		SpeedFactor:    1.2,
		Nutrients:      0.4,
		WaterRetention: 0.2,
		Drainage:       0.9,
	},
	SoilGood: {
		Name:           "Fertile",
		Color:          RGB{R: 92, G: 64, B: 38},
		SpeedFactor:    1.0,
		Nutrients:      0.9,
		WaterRetention: 0.6,
		Drainage:       0.7,
	},
	SoilBad: {
		Name:           "Barren",
		Color:          RGB{R: 128, G: 118, B: 110},
		SpeedFactor:    0.8,
		Nutrients:      0.1,
		WaterRetention: 0.25,
		Drainage:       0.25,
	},
}

// #endregion attribute-table

// #region classify

// ClassifySoil maps a normalized X/Z position to its soil quadrant.
// The partition is about the center point (0.5, 0.5). Tie-break: a coordinate
// exactly at 0.5 falls on the >= branch, so x >= 0.5 selects the dry/bad
// column and z >= 0.5 selects the good/bad row. Inputs are clamped to [0, 1].
func ClassifySoil(x, z float64) SoilType {
	x = clamp01(x)
	z = clamp01(z)
	if z < 0.5 {
		if x < 0.5 {
			return SoilWet
		}
		return SoilDry
	}
	if x < 0.5 {
		return SoilGood
	}
	return SoilBad
}

// #endregion classify

// #region attributes

// Attributes returns the fixed descriptive properties of a soil type.
// Unknown types return the barren attributes.
func Attributes(s SoilType) SoilAttributes {
	attrs, ok := soilTable[s]
	if !ok {
		return soilTable[SoilBad]
	}
	return attrs
}

// SoilQuality derives a composite [0, 1] quality score from nutrients and
// drainage. Nutrients dominate: quality = nutrients*0.6 + drainage*0.4.
func SoilQuality(s SoilType) float64 {
	attrs := Attributes(s)
	return clamp01(attrs.Nutrients*0.6 + attrs.Drainage*0.4)
}

// #endregion attributes
