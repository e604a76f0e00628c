// Package replay drives recorded action sequences through the session
// reducer and checks the terminal state against fixture expectations.
// Everything runs in-memory; nothing touches the store.
package replay

import (
	"fmt"

	"github.com/luminfarm/chromabot/internal/session"
	"github.com/luminfarm/chromabot/internal/workflow"
)

// #region types

// StepResult captures the session after one replayed action.
type StepResult struct {
	Index       int
	Kind        session.Kind
	CurrentStep workflow.StepID
	Completed   int
	Progress    float64
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalActions int
	Mutations    int // actions whose kind changes workflow progress
	ChatMessages int
	Resets       int
	FinalStep    workflow.StepID
	FinalState   session.State
}

// #endregion types

// #region replay

// Replay applies the actions in order through the pure reducer and records
// the session shape after each one.
func Replay(start session.State, actions []session.Action) ([]StepResult, session.State) {
	current := start
	results := make([]StepResult, 0, len(actions))

	for i, a := range actions {
		current = session.Apply(current, a)
		results = append(results, StepResult{
			Index:       i,
			Kind:        a.Kind(),
			CurrentStep: current.CurrentStep,
			Completed:   len(current.CompletedSteps),
			Progress:    current.Progress(),
		})
	}
	return results, current
}

// Summarize computes aggregate stats from a replay run.
func Summarize(results []StepResult, final session.State) Summary {
	s := Summary{
		TotalActions: len(results),
		ChatMessages: len(final.ChatHistory),
		FinalStep:    final.CurrentStep,
		FinalState:   final,
	}
	for _, r := range results {
		switch r.Kind {
		case session.KindCompleteStep, session.KindAdvanceStep:
			s.Mutations++
		case session.KindReset:
			s.Resets++
		}
	}
	return s
}

// #endregion replay

// #region verification

// Verify checks the terminal state against the fixture's expectations and
// returns one message per mismatch. An empty slice means the run matched.
func Verify(final session.State, want FixtureExpected) []string {
	var mismatches []string

	if want.CurrentStep != "" && string(final.CurrentStep) != want.CurrentStep {
		mismatches = append(mismatches,
			fmt.Sprintf("current step = %s, want %s", final.CurrentStep, want.CurrentStep))
	}
	if want.CompletedSteps != nil {
		if len(final.CompletedSteps) != len(want.CompletedSteps) {
			mismatches = append(mismatches,
				fmt.Sprintf("completed steps = %d, want %d", len(final.CompletedSteps), len(want.CompletedSteps)))
		} else {
			for i, id := range want.CompletedSteps {
				if string(final.CompletedSteps[i]) != id {
					mismatches = append(mismatches,
						fmt.Sprintf("completed[%d] = %s, want %s", i, final.CompletedSteps[i], id))
				}
			}
		}
	}
	if want.Progress != nil {
		got := final.Progress()
		if diff := got - *want.Progress; diff > 0.01 || diff < -0.01 {
			mismatches = append(mismatches,
				fmt.Sprintf("progress = %.2f, want %.2f", got, *want.Progress))
		}
	}
	if want.RobotCoordinates != nil {
		got := final.RobotCoordinates
		if got.X != want.RobotCoordinates.X || got.Y != want.RobotCoordinates.Y || got.Z != want.RobotCoordinates.Z {
			mismatches = append(mismatches,
				fmt.Sprintf("robot = (%d, %d, %d), want (%d, %d, %d)",
					got.X, got.Y, got.Z,
					want.RobotCoordinates.X, want.RobotCoordinates.Y, want.RobotCoordinates.Z))
		}
	}
	if want.StudentRGB != nil {
		got := final.StudentRGB
		if got.R != want.StudentRGB.R || got.G != want.StudentRGB.G || got.B != want.StudentRGB.B {
			mismatches = append(mismatches,
				fmt.Sprintf("student rgb = (%d, %d, %d), want (%d, %d, %d)",
					got.R, got.G, got.B,
					want.StudentRGB.R, want.StudentRGB.G, want.StudentRGB.B))
		}
	}
	if want.ChatMessages != nil && len(final.ChatHistory) != *want.ChatMessages {
		mismatches = append(mismatches,
			fmt.Sprintf("chat messages = %d, want %d", len(final.ChatHistory), *want.ChatMessages))
	}
	return mismatches
}

// RunFixture replays a loaded fixture end to end and verifies expectations.
func RunFixture(f *Fixture) (Summary, []string, error) {
	actions := make([]session.Action, 0, len(f.Actions))
	for i := range f.Actions {
		a, err := f.Actions[i].ToAction()
		if err != nil {
			return Summary{}, nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}

	results, final := Replay(f.Start(), actions)
	return Summarize(results, final), Verify(final, f.Expected), nil
}

// #endregion verification
