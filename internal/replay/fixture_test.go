package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luminfarm/chromabot/internal/session"
	"github.com/luminfarm/chromabot/internal/workflow"
)

// #region helpers

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// #endregion helpers

// #region loader

func TestLoadFixture_FullSession(t *testing.T) {
	path := writeFixture(t, `{
		"description": "happy path through placement and upload",
		"actions": [
			{"kind": "set_robot_coordinates", "coords": {"x": 40, "y": 200, "z": 90}},
			{"kind": "complete_step", "step": "placement"},
			{"kind": "advance_step"},
			{"kind": "set_uploaded_image", "ref": "drawing.jpg"},
			{"kind": "complete_step", "step": "upload"},
			{"kind": "advance_step"}
		],
		"expected": {
			"current_step": "verify",
			"completed_steps": ["placement", "upload"],
			"robot_coordinates": {"x": 40, "y": 200, "z": 90}
		}
	}`)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if len(f.Actions) != 6 {
		t.Fatalf("actions = %d, want 6", len(f.Actions))
	}
	if f.Expected.CurrentStep != "verify" {
		t.Errorf("expected.current_step = %s", f.Expected.CurrentStep)
	}
}

func TestLoadFixture_MissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing fixture file should error")
	}
}

func TestLoadFixture_MalformedJSON(t *testing.T) {
	path := writeFixture(t, `{"actions": [`)
	if _, err := LoadFixture(path); err == nil {
		t.Error("malformed fixture should error")
	}
}

// #endregion loader

// #region conversion

func TestToAction_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		fa      FixtureAction
		wantErr bool
	}{
		{"robot coords", FixtureAction{Kind: "set_robot_coordinates", Coords: &FixtureCoords{X: 1, Y: 2, Z: 3}}, false},
		{"robot coords without payload", FixtureAction{Kind: "set_robot_coordinates"}, true},
		{"upload", FixtureAction{Kind: "set_uploaded_image", Ref: "a.jpg"}, false},
		{"student rgb", FixtureAction{Kind: "set_student_rgb", Color: &FixtureRGB{R: 10, G: 20, B: 30}}, false},
		{"student rgb without payload", FixtureAction{Kind: "set_student_rgb"}, true},
		{"chat", FixtureAction{Kind: "append_chat_message", Role: "user", Content: "hi", Timestamp: "2026-03-14T10:00:00Z"}, false},
		{"chat with bad timestamp", FixtureAction{Kind: "append_chat_message", Role: "user", Content: "hi", Timestamp: "yesterday"}, true},
		{"advance", FixtureAction{Kind: "advance_step"}, false},
		{"reset", FixtureAction{Kind: "reset"}, false},
		{"unknown kind", FixtureAction{Kind: "launch_rocket"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.fa.ToAction()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToAction err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(a.Kind()) != tt.fa.Kind {
				t.Errorf("kind = %s, want %s", a.Kind(), tt.fa.Kind)
			}
		})
	}
}

func TestFixtureStart_DefaultsWithoutSnapshot(t *testing.T) {
	f := &Fixture{}
	st := f.Start()
	if st.CurrentStep != workflow.First() {
		t.Errorf("start cursor = %s, want %s", st.CurrentStep, workflow.First())
	}
	if st.RobotCoordinates != (session.Coordinates{X: 128, Y: 128, Z: 128}) {
		t.Errorf("start robot = %+v, want center", st.RobotCoordinates)
	}
}

func TestFixtureStart_EmbeddedSnapshot(t *testing.T) {
	f := &Fixture{StartState: []byte(`{"studentId":"s-fixed","currentStep":"predict","robotCoordinates":{"x":9,"y":8,"z":7}}`)}
	st := f.Start()
	if st.StudentID != "s-fixed" {
		t.Errorf("student = %s, want snapshot identity", st.StudentID)
	}
	if st.CurrentStep != workflow.StepPredict {
		t.Errorf("cursor = %s, want predict", st.CurrentStep)
	}
	if st.RobotCoordinates != (session.Coordinates{X: 9, Y: 8, Z: 7}) {
		t.Errorf("robot = %+v", st.RobotCoordinates)
	}
}

// #endregion conversion
