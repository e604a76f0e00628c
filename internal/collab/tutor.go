package collab

import (
	"fmt"
	"strings"
)

// #region keywords

var coordinateKeywords = []string{
	"coordinate", "coordinates", "axis", "axes", "x value", "y value", "z value",
	"position", "where is", "3d", "three dimensions", "spatial",
}

var colorKeywords = []string{
	"color", "colour", "rgb", "red", "green", "blue", "channel",
	"hex", "shade", "hue",
}

var soilKeywords = []string{
	"soil", "ground", "terrain", "dirt", "quadrant", "wetland", "dryland",
	"fertile", "barren", "nutrient",
}

var sunKeywords = []string{
	"sun", "sunlight", "light", "shade", "shadow", "noon", "sunrise", "sunset",
	"elevation", "exposure",
}

var waterKeywords = []string{
	"water", "rain", "moisture", "irrigation", "dew", "evaporat", "dry out",
}

var plantKeywords = []string{
	"plant", "health", "thriving", "dying", "dead", "grow", "growth", "wilting",
}

var helpKeywords = []string{
	"help", "stuck", "what do i do", "next step", "how do i", "lost", "confused",
}

// #endregion keywords

// #region replies

// tutorReply classifies a student question via keyword heuristics and
// returns the canned answer for its topic. No model call.
func tutorReply(text string, sessCtx ChatContext) string {
	lower := strings.ToLower(strings.TrimSpace(text))

	switch {
	case matchesAny(lower, helpKeywords):
		if sessCtx.CurrentStep != "" {
			return fmt.Sprintf("You're on the %q step. Finish it and the next one unlocks. "+
				"Remember: each step builds on the last, so take them in order.", sessCtx.CurrentStep)
		}
		return "Work through the steps in order. Each one unlocks the next once it's complete."

	case matchesAny(lower, colorKeywords) && matchesAny(lower, coordinateKeywords):
		return "Each axis maps straight to a color channel: X becomes red, Y becomes green, " +
			"Z becomes blue. A robot at (255, 0, 0) sits at pure red."

	case matchesAny(lower, colorKeywords):
		return fmt.Sprintf("RGB colors have three channels from 0 to 255. Your robot is at "+
			"(%d, %d, %d) — try reading those three numbers as a color.",
			sessCtx.RobotX, sessCtx.RobotY, sessCtx.RobotZ)

	case matchesAny(lower, coordinateKeywords):
		return "Coordinates describe a point in the cube: X runs left-right, Y runs up-down, " +
			"Z runs front-back. Every value here fits in 0 to 255, the same range as a color channel."

	case matchesAny(lower, soilKeywords):
		return "The terrain splits into four quadrants around the center: wetland, dryland, " +
			"fertile and barren. Which one the robot stands in depends only on its X and Z."

	case matchesAny(lower, sunKeywords):
		return "The sun follows a half-sine arc: it rises at 6, peaks at noon and sets at 18. " +
			"Higher ground catches more light, and more light usually means healthier plants."

	case matchesAny(lower, waterKeywords):
		return "Water depends on the soil and the hour: morning dew adds a little between 6 and 9, " +
			"and midday evaporation takes more away between 11 and 15."

	case matchesAny(lower, plantKeywords):
		return "Plant health blends four things: sunlight, water, soil quality and elevation. " +
			"The healthier the plant, the greener its color — that's the same 0-to-255 scale again."

	default:
		return "Good question! Think about how the robot's position turns into numbers, " +
			"and how those numbers could describe a color."
	}
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// #endregion replies
