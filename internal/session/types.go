package session

import (
	"time"

	"github.com/luminfarm/chromabot/internal/environ"
	"github.com/luminfarm/chromabot/internal/workflow"
)

// #region coordinates
// Coordinates is a robot position on the 0-255 device scale. This is the
// canonical stored representation; normalization to [0, 1] happens only at
// the environ boundary via Normalized.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Clamped returns the coordinates restricted to [0, 255] per axis.
func (c Coordinates) Clamped() Coordinates {
	return Coordinates{X: clampByte(c.X), Y: clampByte(c.Y), Z: clampByte(c.Z)}
}

// Normalized converts to the [0, 1] cube used by the environmental model.
func (c Coordinates) Normalized() environ.Vec3 {
	return environ.Vec3{
		X: environ.Normalize(c.X),
		Y: environ.Normalize(c.Y),
		Z: environ.Normalize(c.Z),
	}
}

// RGB reads the coordinates as a color, the mapping the lesson teaches.
func (c Coordinates) RGB() environ.RGB {
	cl := c.Clamped()
	return environ.RGB{R: cl.X, G: cl.Y, B: cl.Z}
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// #endregion coordinates

// #region cv-result
// CVResult is the verification outcome reported by the vision collaborator.
type CVResult struct {
	Accuracy        float64       `json:"accuracy"` // 0-100
	DetectedObjects []string      `json:"detectedObjects"`
	BoundingBoxes   []BoundingBox `json:"boundingBoxes"`
	Confidence      float64       `json:"confidence"` // 0-100
}

// BoundingBox is a detected region in image pixel space.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// #endregion cv-result

// #region chat-message
// ChatMessage is one transcript entry. Timestamps serialize as ISO strings
// and are revived to time values on load.
type ChatMessage struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// #endregion chat-message

// #region state
// State is the full mutable aggregate for one learner's run. Mutated only
// through Apply with an Action; the persisted JSON layout is the fixed wire
// contract.
type State struct {
	StudentID          string              `json:"studentId"`
	RobotCoordinates   Coordinates         `json:"robotCoordinates"`
	UploadedImage      *string             `json:"uploadedImage"`
	CVResult           *CVResult           `json:"cvResult"`
	StudentCoordinates *Coordinates        `json:"studentCoordinates"`
	StudentRGB         environ.RGB         `json:"studentRgb"`
	AIRGB              *environ.RGB        `json:"aiRgb"`
	ChatHistory        []ChatMessage       `json:"chatHistory"`
	CompletedSteps     []workflow.StepID   `json:"completedSteps"`
	CurrentStep        workflow.StepID     `json:"currentStep"`
}

// Progress returns the workflow completion percentage for this state.
func (s State) Progress() float64 {
	return workflow.Progress(s.CompletedSteps)
}

// StepCompleted reports whether the given step is in the completed set.
func (s State) StepCompleted(id workflow.StepID) bool {
	for _, c := range s.CompletedSteps {
		if c == id {
			return true
		}
	}
	return false
}

// #endregion state
