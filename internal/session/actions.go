package session

import (
	"time"

	"github.com/luminfarm/chromabot/internal/environ"
	"github.com/luminfarm/chromabot/internal/workflow"
)

// #region action-kinds

// Kind names one of the closed set of session mutations.
type Kind string

const (
	KindSetRobotCoordinates   Kind = "set_robot_coordinates"
	KindSetUploadedImage      Kind = "set_uploaded_image"
	KindSetCVResult           Kind = "set_cv_result"
	KindSetStudentCoordinates Kind = "set_student_coordinates"
	KindSetStudentRGB         Kind = "set_student_rgb"
	KindSetAIRGB              Kind = "set_ai_rgb"
	KindAppendChatMessage     Kind = "append_chat_message"
	KindCompleteStep          Kind = "complete_step"
	KindSetCurrentStep        Kind = "set_current_step"
	KindAdvanceStep           Kind = "advance_step"
	KindReset                 Kind = "reset"
)

// Action is one session mutation.
type Action interface {
	Kind() Kind
}

// #endregion action-kinds

// #region actions

// SetRobotCoordinates records the learner's chosen robot position.
// Coordinates are clamped to the 0-255 device scale.
type SetRobotCoordinates struct {
	Coords Coordinates
}

func (SetRobotCoordinates) Kind() Kind { return KindSetRobotCoordinates }

// SetUploadedImage records the uploaded drawing reference.
type SetUploadedImage struct {
	Ref string
}

func (SetUploadedImage) Kind() Kind { return KindSetUploadedImage }

// SetCVResult records the vision verification outcome.
type SetCVResult struct {
	Result CVResult
}

func (SetCVResult) Kind() Kind { return KindSetCVResult }

// SetStudentCoordinates records the coordinates the learner read back.
type SetStudentCoordinates struct {
	Coords Coordinates
}

func (SetStudentCoordinates) Kind() Kind { return KindSetStudentCoordinates }

// SetStudentRGB records the learner's color prediction.
type SetStudentRGB struct {
	Color environ.RGB
}

func (SetStudentRGB) Kind() Kind { return KindSetStudentRGB }

// SetAIRGB records the collaborator-derived color.
type SetAIRGB struct {
	Color environ.RGB
}

func (SetAIRGB) Kind() Kind { return KindSetAIRGB }

// AppendChatMessage appends one transcript entry. Always appends, preserving
// arrival order.
type AppendChatMessage struct {
	Role      string
	Content   string
	Timestamp time.Time
}

func (AppendChatMessage) Kind() Kind { return KindAppendChatMessage }

// CompleteStep marks a workflow step done with set semantics.
type CompleteStep struct {
	Step workflow.StepID
}

func (CompleteStep) Kind() Kind { return KindCompleteStep }

// SetCurrentStep moves the workflow cursor unconditionally.
type SetCurrentStep struct {
	Step workflow.StepID
}

func (SetCurrentStep) Kind() Kind { return KindSetCurrentStep }

// AdvanceStep moves the cursor to the next step in the fixed order, a no-op
// at the last step.
type AdvanceStep struct{}

func (AdvanceStep) Kind() Kind { return KindAdvanceStep }

// Reset restores all fields to defaults and regenerates the student
// identity. A reset run is a new session, not the old one blanked out.
type Reset struct{}

func (Reset) Kind() Kind { return KindReset }

// #endregion actions

// #region apply

// Apply is the pure reducer: given a state and an action it returns the next
// state without mutating the input. Slices are copied before extension so a
// held prior state never changes underneath the caller.
func Apply(s State, a Action) State {
	switch act := a.(type) {
	case SetRobotCoordinates:
		s.RobotCoordinates = act.Coords.Clamped()
	case SetUploadedImage:
		ref := act.Ref
		s.UploadedImage = &ref
	case SetCVResult:
		res := act.Result
		s.CVResult = &res
	case SetStudentCoordinates:
		coords := act.Coords.Clamped()
		s.StudentCoordinates = &coords
	case SetStudentRGB:
		s.StudentRGB = clampRGB(act.Color)
	case SetAIRGB:
		c := clampRGB(act.Color)
		s.AIRGB = &c
	case AppendChatMessage:
		msg := ChatMessage{Role: act.Role, Content: act.Content, Timestamp: act.Timestamp}
		if msg.Timestamp.IsZero() {
			msg.Timestamp = time.Now().UTC()
		}
		history := make([]ChatMessage, len(s.ChatHistory), len(s.ChatHistory)+1)
		copy(history, s.ChatHistory)
		s.ChatHistory = append(history, msg)
	case CompleteStep:
		if _, ok := workflow.Lookup(act.Step); !ok {
			return s
		}
		if s.StepCompleted(act.Step) {
			return s
		}
		completed := make([]workflow.StepID, len(s.CompletedSteps), len(s.CompletedSteps)+1)
		copy(completed, s.CompletedSteps)
		s.CompletedSteps = append(completed, act.Step)
	case SetCurrentStep:
		if _, ok := workflow.Lookup(act.Step); ok {
			s.CurrentStep = act.Step
		}
	case AdvanceStep:
		if next, ok := workflow.Next(s.CurrentStep); ok {
			s.CurrentStep = next
		}
	case Reset:
		return NewState()
	}
	return s
}

func clampRGB(c environ.RGB) environ.RGB {
	return environ.RGB{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B)}
}

// #endregion apply
