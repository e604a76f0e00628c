// Package workflow defines the fixed seven-step lesson sequence and the
// rules for moving through it. The step order is total and fixed at
// compile time; accessibility of a step requires every strictly prior step
// to be complete.
package workflow

// #region steps

// StepID identifies one lesson step.
type StepID string

const (
	StepPlacement StepID = "placement"
	StepUpload    StepID = "upload"
	StepVerify    StepID = "verify"
	StepCoords    StepID = "coords"
	StepPredict   StepID = "predict"
	StepCompare   StepID = "compare"
	StepChat      StepID = "chat"
)

// Step carries a step's identity and display metadata.
type Step struct {
	ID    StepID
	Title string
	Brief string
}

// Steps is the canonical ordered sequence. Never reordered at runtime.
var Steps = []Step{
	{StepPlacement, "Place the Robot", "Choose X, Y, Z coordinates for the robot in the scene."},
	{StepUpload, "Upload Your Drawing", "Draw the scene on paper and upload a photo of it."},
	{StepVerify, "Computer Vision Check", "Let the vision system verify your drawing."},
	{StepCoords, "Read the Coordinates", "Enter the coordinates you read from your drawing."},
	{StepPredict, "Predict the Color", "Guess the RGB color those coordinates map to."},
	{StepCompare, "Compare Results", "See how close your prediction came."},
	{StepChat, "Ask the Tutor", "Discuss what you learned with the tutor."},
}

// #endregion steps

// #region lookups

// indexOf returns the position of a step in the fixed order, or -1.
func indexOf(id StepID) int {
	for i, s := range Steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Lookup returns the step definition for an id.
func Lookup(id StepID) (Step, bool) {
	i := indexOf(id)
	if i < 0 {
		return Step{}, false
	}
	return Steps[i], true
}

// First returns the id of the first step in the sequence.
func First() StepID {
	return Steps[0].ID
}

// IDs returns the step ids in canonical order.
func IDs() []StepID {
	out := make([]StepID, len(Steps))
	for i, s := range Steps {
		out[i] = s.ID
	}
	return out
}

// #endregion lookups

// #region accessibility

// IsAccessible reports whether a step may be entered given the set of
// completed step ids. The first step is always accessible; any later step
// requires every strictly prior step to be complete. This check is advisory:
// SetCurrent does not enforce it, the calling layer decides whether to gate
// navigation.
func IsAccessible(id StepID, completed []StepID) bool {
	i := indexOf(id)
	if i < 0 {
		return false
	}
	done := make(map[StepID]bool, len(completed))
	for _, c := range completed {
		done[c] = true
	}
	for _, prior := range Steps[:i] {
		if !done[prior.ID] {
			return false
		}
	}
	return true
}

// Next returns the step after id in the fixed order. ok is false at the last
// step or for an unknown id.
func Next(id StepID) (StepID, bool) {
	i := indexOf(id)
	if i < 0 || i+1 >= len(Steps) {
		return "", false
	}
	return Steps[i+1].ID, true
}

// Prev returns the step before id in the fixed order. ok is false at the
// first step or for an unknown id.
func Prev(id StepID) (StepID, bool) {
	i := indexOf(id)
	if i <= 0 {
		return "", false
	}
	return Steps[i-1].ID, true
}

// Progress returns the percentage of steps present in completed. Duplicate
// and unknown ids in the input are ignored.
func Progress(completed []StepID) float64 {
	done := make(map[StepID]bool, len(completed))
	for _, c := range completed {
		if indexOf(c) >= 0 {
			done[c] = true
		}
	}
	return float64(len(done)) / float64(len(Steps)) * 100
}

// #endregion accessibility

// #region machine

// Machine tracks a cursor and completion set over the fixed step sequence.
type Machine struct {
	current   StepID
	completed []StepID
}

// NewMachine returns a machine at the first step with nothing complete.
func NewMachine() *Machine {
	return &Machine{current: First()}
}

// Current returns the cursor step id.
func (m *Machine) Current() StepID {
	return m.current
}

// Completed returns the completed ids in completion order.
func (m *Machine) Completed() []StepID {
	out := make([]StepID, len(m.completed))
	copy(out, m.completed)
	return out
}

// Complete marks a step done. Idempotent: a repeat call neither duplicates
// the entry nor disturbs the existing order.
func (m *Machine) Complete(id StepID) {
	if indexOf(id) < 0 {
		return
	}
	for _, c := range m.completed {
		if c == id {
			return
		}
	}
	m.completed = append(m.completed, id)
}

// SetCurrent moves the cursor unconditionally. Accessibility is advisory and
// checked by the caller, not here.
func (m *Machine) SetCurrent(id StepID) {
	if indexOf(id) >= 0 {
		m.current = id
	}
}

// Advance moves the cursor to the next step if one exists.
func (m *Machine) Advance() bool {
	next, ok := Next(m.current)
	if !ok {
		return false
	}
	m.current = next
	return true
}

// Accessible reports whether a step is reachable from the machine's
// completion set.
func (m *Machine) Accessible(id StepID) bool {
	return IsAccessible(id, m.completed)
}

// Progress returns the machine's completion percentage.
func (m *Machine) Progress() float64 {
	return Progress(m.completed)
}

// Reset returns the machine to the initial state: cursor at the first step,
// empty completion set.
func (m *Machine) Reset() {
	m.current = First()
	m.completed = nil
}

// #endregion machine
