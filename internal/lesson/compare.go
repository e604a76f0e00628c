package lesson

import (
	"math"

	"github.com/luminfarm/chromabot/internal/environ"
)

// #region metric-types

// Metric is one named comparison check with its score and pass flag.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Pass  bool    `json:"pass"`
}

// Comparison scores a learner's color prediction against the AI color. The
// state fields name the plant-health bucket each color is closest to, so
// the learner sees what their guess would have meant for the plant.
type Comparison struct {
	StudentRGB   environ.RGB         `json:"studentRgb"`
	AIRGB        environ.RGB         `json:"aiRgb"`
	StudentState environ.HealthState `json:"studentState"`
	AIState      environ.HealthState `json:"aiState"`
	Metrics      []Metric            `json:"metrics"`
	Overall      float64             `json:"overall"` // 0-100, mean of channel scores
	Matched      bool                `json:"matched"`
}

const (
	// channelPassScore is the per-channel accuracy needed to pass.
	channelPassScore = 90.0
	// overallMatchScore is the overall accuracy treated as a match.
	overallMatchScore = 80.0
)

// #endregion metric-types

// #region compare

// CompareColors scores each channel as 100*(1 - |delta|/255) and averages
// the three. Identical colors score 100, opposite corners score 0.
func CompareColors(student, ai environ.RGB) Comparison {
	channels := []struct {
		name     string
		got, ref int
	}{
		{"channel_r", student.R, ai.R},
		{"channel_g", student.G, ai.G},
		{"channel_b", student.B, ai.B},
	}

	cmp := Comparison{
		StudentRGB:   student,
		AIRGB:        ai,
		StudentState: environ.NearestHealthState(student),
		AIState:      environ.NearestHealthState(ai),
	}
	sum := 0.0
	for _, ch := range channels {
		score := channelScore(ch.got, ch.ref)
		sum += score
		cmp.Metrics = append(cmp.Metrics, Metric{
			Name:  ch.name,
			Value: score,
			Pass:  score >= channelPassScore,
		})
	}
	cmp.Overall = sum / float64(len(channels))
	cmp.Matched = cmp.Overall >= overallMatchScore
	return cmp
}

// channelScore maps an absolute channel delta onto 0-100.
func channelScore(got, ref int) float64 {
	delta := math.Abs(float64(got - ref))
	return 100 * (1 - delta/255)
}

// #endregion compare
