package session

import (
	"testing"
	"time"

	"github.com/luminfarm/chromabot/internal/environ"
	"github.com/luminfarm/chromabot/internal/workflow"
)

func TestApply_CompleteStepIdempotent(t *testing.T) {
	s := NewState()
	for i := 0; i < 3; i++ {
		s = Apply(s, CompleteStep{Step: workflow.StepPlacement})
	}
	if len(s.CompletedSteps) != 1 {
		t.Fatalf("completed set size = %d, want 1", len(s.CompletedSteps))
	}

	s = Apply(s, CompleteStep{Step: workflow.StepUpload})
	s = Apply(s, CompleteStep{Step: workflow.StepPlacement})
	want := []workflow.StepID{workflow.StepPlacement, workflow.StepUpload}
	for i, id := range want {
		if s.CompletedSteps[i] != id {
			t.Errorf("completed[%d] = %q, want %q (order must be preserved)", i, s.CompletedSteps[i], id)
		}
	}
}

func TestApply_CompleteStepRejectsUnknown(t *testing.T) {
	s := Apply(NewState(), CompleteStep{Step: workflow.StepID("bogus")})
	if len(s.CompletedSteps) != 0 {
		t.Errorf("unknown step entered completed set: %v", s.CompletedSteps)
	}
}

func TestApply_AppendChatPreservesOrder(t *testing.T) {
	s := NewState()
	s = Apply(s, AppendChatMessage{Role: "user", Content: "first"})
	s = Apply(s, AppendChatMessage{Role: "assistant", Content: "second"})
	s = Apply(s, AppendChatMessage{Role: "user", Content: "third"})

	if len(s.ChatHistory) != 3 {
		t.Fatalf("chat history length = %d, want 3", len(s.ChatHistory))
	}
	for i, want := range []string{"first", "second", "third"} {
		if s.ChatHistory[i].Content != want {
			t.Errorf("chat[%d] = %q, want %q", i, s.ChatHistory[i].Content, want)
		}
		if s.ChatHistory[i].Timestamp.IsZero() {
			t.Errorf("chat[%d] missing timestamp", i)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	base := NewState()
	base = Apply(base, AppendChatMessage{Role: "user", Content: "hello"})
	base = Apply(base, CompleteStep{Step: workflow.StepPlacement})

	// Extend from the same base twice; the branches must not interfere.
	a := Apply(base, AppendChatMessage{Role: "user", Content: "branch-a"})
	b := Apply(base, AppendChatMessage{Role: "user", Content: "branch-b"})

	if a.ChatHistory[1].Content != "branch-a" || b.ChatHistory[1].Content != "branch-b" {
		t.Error("reducer shared a backing array between branches")
	}
	if len(base.ChatHistory) != 1 {
		t.Errorf("base state mutated: %d messages", len(base.ChatHistory))
	}
}

func TestApply_SettersClamp(t *testing.T) {
	s := NewState()
	s = Apply(s, SetRobotCoordinates{Coords: Coordinates{X: -40, Y: 300, Z: 128}})
	if s.RobotCoordinates != (Coordinates{X: 0, Y: 255, Z: 128}) {
		t.Errorf("robot coords = %+v, want clamped", s.RobotCoordinates)
	}

	s = Apply(s, SetStudentRGB{Color: environ.RGB{R: 999, G: -5, B: 10}})
	if s.StudentRGB != (environ.RGB{R: 255, G: 0, B: 10}) {
		t.Errorf("student rgb = %+v, want clamped", s.StudentRGB)
	}
}

func TestApply_CursorMoves(t *testing.T) {
	s := NewState()
	s = Apply(s, AdvanceStep{})
	if s.CurrentStep != workflow.StepUpload {
		t.Errorf("cursor = %q, want %q", s.CurrentStep, workflow.StepUpload)
	}

	// SetCurrentStep is unconditional, no accessibility check here.
	s = Apply(s, SetCurrentStep{Step: workflow.StepChat})
	if s.CurrentStep != workflow.StepChat {
		t.Errorf("cursor = %q, want %q", s.CurrentStep, workflow.StepChat)
	}

	// Advance at the last step is a no-op.
	s = Apply(s, AdvanceStep{})
	if s.CurrentStep != workflow.StepChat {
		t.Errorf("cursor moved past the last step: %q", s.CurrentStep)
	}
}

func TestApply_Reset(t *testing.T) {
	s := NewState()
	oldID := s.StudentID
	s = Apply(s, SetRobotCoordinates{Coords: Coordinates{X: 10, Y: 20, Z: 30}})
	s = Apply(s, CompleteStep{Step: workflow.StepPlacement})
	s = Apply(s, CompleteStep{Step: workflow.StepUpload})
	s = Apply(s, AppendChatMessage{Role: "user", Content: "hi", Timestamp: time.Now()})
	s = Apply(s, SetCurrentStep{Step: workflow.StepVerify})

	s = Apply(s, Reset{})
	if len(s.CompletedSteps) != 0 {
		t.Errorf("completed after reset = %v, want empty", s.CompletedSteps)
	}
	if s.CurrentStep != workflow.First() {
		t.Errorf("cursor after reset = %q, want %q", s.CurrentStep, workflow.First())
	}
	if len(s.ChatHistory) != 0 {
		t.Errorf("chat after reset = %d messages, want 0", len(s.ChatHistory))
	}
	if s.StudentID == oldID {
		t.Error("reset must regenerate the student identity")
	}
	if s.StudentID == "" {
		t.Error("reset produced an empty student identity")
	}
}

func TestNewStudentID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewStudentID()
		if seen[id] {
			t.Fatalf("duplicate student id %q", id)
		}
		seen[id] = true
	}
}
