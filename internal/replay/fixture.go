package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/luminfarm/chromabot/internal/environ"
	"github.com/luminfarm/chromabot/internal/session"
	"github.com/luminfarm/chromabot/internal/workflow"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded session replay.
type Fixture struct {
	Description string          `json:"description"`
	StartState  json.RawMessage `json:"start_state,omitempty"`
	Actions     []FixtureAction `json:"actions"`
	Expected    FixtureExpected `json:"expected"`
}

// FixtureAction mirrors one session action with JSON tags. Kind selects the
// action; the payload fields that apply to it are read, the rest ignored.
type FixtureAction struct {
	Kind      string         `json:"kind"`
	Coords    *FixtureCoords `json:"coords,omitempty"`
	Ref       string         `json:"ref,omitempty"`
	Color     *FixtureRGB    `json:"color,omitempty"`
	Accuracy  float64        `json:"accuracy,omitempty"`
	Objects   []string       `json:"objects,omitempty"`
	Role      string         `json:"role,omitempty"`
	Content   string         `json:"content,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
	Step      string         `json:"step,omitempty"`
}

// FixtureCoords mirrors session.Coordinates.
type FixtureCoords struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// FixtureRGB mirrors environ.RGB.
type FixtureRGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// FixtureExpected captures the terminal state checks for a fixture. Nil or
// empty fields are not checked.
type FixtureExpected struct {
	CurrentStep      string         `json:"current_step,omitempty"`
	CompletedSteps   []string       `json:"completed_steps,omitempty"`
	Progress         *float64       `json:"progress,omitempty"`
	RobotCoordinates *FixtureCoords `json:"robot_coordinates,omitempty"`
	StudentRGB       *FixtureRGB    `json:"student_rgb,omitempty"`
	ChatMessages     *int           `json:"chat_messages,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// Start returns the fixture's initial session state: the embedded snapshot
// when one is present, fresh defaults otherwise.
func (f *Fixture) Start() session.State {
	if len(f.StartState) == 0 {
		return session.NewState()
	}
	return session.Restore(f.StartState)
}

// ToAction converts a FixtureAction to a domain action.
func (fa *FixtureAction) ToAction() (session.Action, error) {
	switch session.Kind(fa.Kind) {
	case session.KindSetRobotCoordinates:
		if fa.Coords == nil {
			return nil, fmt.Errorf("action %s: missing coords", fa.Kind)
		}
		return session.SetRobotCoordinates{Coords: fa.Coords.toCoords()}, nil
	case session.KindSetUploadedImage:
		return session.SetUploadedImage{Ref: fa.Ref}, nil
	case session.KindSetCVResult:
		return session.SetCVResult{Result: session.CVResult{
			Accuracy:        fa.Accuracy,
			DetectedObjects: fa.Objects,
			Confidence:      fa.Accuracy,
		}}, nil
	case session.KindSetStudentCoordinates:
		if fa.Coords == nil {
			return nil, fmt.Errorf("action %s: missing coords", fa.Kind)
		}
		return session.SetStudentCoordinates{Coords: fa.Coords.toCoords()}, nil
	case session.KindSetStudentRGB:
		if fa.Color == nil {
			return nil, fmt.Errorf("action %s: missing color", fa.Kind)
		}
		return session.SetStudentRGB{Color: fa.Color.toRGB()}, nil
	case session.KindSetAIRGB:
		if fa.Color == nil {
			return nil, fmt.Errorf("action %s: missing color", fa.Kind)
		}
		return session.SetAIRGB{Color: fa.Color.toRGB()}, nil
	case session.KindAppendChatMessage:
		ts := time.Time{}
		if fa.Timestamp != "" {
			parsed, err := time.Parse(time.RFC3339Nano, fa.Timestamp)
			if err != nil {
				return nil, fmt.Errorf("action %s: bad timestamp %q: %w", fa.Kind, fa.Timestamp, err)
			}
			ts = parsed
		}
		return session.AppendChatMessage{Role: fa.Role, Content: fa.Content, Timestamp: ts}, nil
	case session.KindCompleteStep:
		return session.CompleteStep{Step: workflow.StepID(fa.Step)}, nil
	case session.KindSetCurrentStep:
		return session.SetCurrentStep{Step: workflow.StepID(fa.Step)}, nil
	case session.KindAdvanceStep:
		return session.AdvanceStep{}, nil
	case session.KindReset:
		return session.Reset{}, nil
	}
	return nil, fmt.Errorf("unknown action kind %q", fa.Kind)
}

func (c *FixtureCoords) toCoords() session.Coordinates {
	return session.Coordinates{X: c.X, Y: c.Y, Z: c.Z}
}

func (c *FixtureRGB) toRGB() environ.RGB {
	return environ.RGB{R: c.R, G: c.G, B: c.B}
}

// #endregion fixture-loader
