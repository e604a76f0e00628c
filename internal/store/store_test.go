package store

import (
	"path/filepath"
	"testing"
	"time"
)

// #region helpers

func tempStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// #endregion helpers

// #region slot

func TestSlot_EmptyUntilFirstSave(t *testing.T) {
	st := tempStore(t)

	_, ok, err := st.LoadSlot()
	if err != nil {
		t.Fatalf("LoadSlot: %v", err)
	}
	if ok {
		t.Error("fresh store reported a stored slot")
	}
}

func TestSlot_SaveOverwrites(t *testing.T) {
	st := tempStore(t)

	if err := st.SaveSlot([]byte(`{"v":1}`)); err != nil {
		t.Fatalf("SaveSlot: %v", err)
	}
	if err := st.SaveSlot([]byte(`{"v":2}`)); err != nil {
		t.Fatalf("SaveSlot overwrite: %v", err)
	}

	data, ok, err := st.LoadSlot()
	if err != nil || !ok {
		t.Fatalf("LoadSlot = %v, %v", ok, err)
	}
	if string(data) != `{"v":2}` {
		t.Errorf("slot = %s, want the latest save", data)
	}
}

func TestSlot_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")
	st, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := st.SaveSlot([]byte(`{"studentId":"s1"}`)); err != nil {
		t.Fatalf("SaveSlot: %v", err)
	}
	st.Close()

	st2, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()

	data, ok, err := st2.LoadSlot()
	if err != nil || !ok {
		t.Fatalf("LoadSlot after reopen = %v, %v", ok, err)
	}
	if string(data) != `{"studentId":"s1"}` {
		t.Errorf("slot after reopen = %s", data)
	}
}

// #endregion slot

// #region events

func TestEvents_InsertionOrder(t *testing.T) {
	st := tempStore(t)

	actions := []string{"set_robot_coordinates", "complete_step", "advance_step"}
	for _, a := range actions {
		if err := st.AppendEvent(Event{StudentID: "s1", Action: a}); err != nil {
			t.Fatalf("AppendEvent(%s): %v", a, err)
		}
	}

	events, err := st.ListEvents("s1", 10)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != len(actions) {
		t.Fatalf("events = %d, want %d", len(events), len(actions))
	}
	for i, ev := range events {
		if ev.Action != actions[i] {
			t.Errorf("event[%d].Action = %s, want %s", i, ev.Action, actions[i])
		}
	}
}

func TestEvents_FilterByStudent(t *testing.T) {
	st := tempStore(t)

	if err := st.AppendEvent(Event{StudentID: "s1", Action: "reset"}); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}
	if err := st.AppendEvent(Event{StudentID: "s2", Action: "complete_step"}); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}

	only, err := st.ListEvents("s2", 10)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(only) != 1 || only[0].StudentID != "s2" {
		t.Errorf("filtered events = %+v, want just s2", only)
	}

	all, err := st.ListEvents("", 10)
	if err != nil {
		t.Fatalf("ListEvents all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all events = %d, want 2", len(all))
	}
}

func TestEvents_DetailRoundTrip(t *testing.T) {
	st := tempStore(t)

	detail := `{"currentStep":"upload","progress":14.3}`
	if err := st.AppendEvent(Event{StudentID: "s1", Action: "complete_step", DetailJSON: detail}); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}
	if err := st.AppendEvent(Event{StudentID: "s1", Action: "advance_step"}); err != nil {
		t.Fatalf("AppendEvent no detail: %v", err)
	}

	events, err := st.ListEvents("s1", 10)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if events[0].DetailJSON != detail {
		t.Errorf("detail = %s, want %s", events[0].DetailJSON, detail)
	}
	if events[1].DetailJSON != "" {
		t.Errorf("missing detail = %q, want empty", events[1].DetailJSON)
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("created_at not filled on insert")
	}
}

// #endregion events

// #region results

func TestResults_RoundTrip(t *testing.T) {
	st := tempStore(t)

	rec := ResultRecord{
		ResultID:         "r-001",
		StudentID:        "s1",
		RobotCoordinates: CoordsRecord{X: 40, Y: 200, Z: 90},
		StudentRGB:       RGBRecord{R: 38, G: 195, B: 92},
		AIRGB:            &RGBRecord{R: 40, G: 200, B: 90},
		Accuracy:         97.5,
		PlantState:       "healthy",
		CreatedAt:        time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
	if err := st.SaveResult(rec); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	results, err := st.ListResults(10)
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	got := results[0]
	if got.RobotCoordinates != rec.RobotCoordinates {
		t.Errorf("coords = %+v, want %+v", got.RobotCoordinates, rec.RobotCoordinates)
	}
	if got.AIRGB == nil || *got.AIRGB != *rec.AIRGB {
		t.Errorf("ai rgb = %+v, want %+v", got.AIRGB, rec.AIRGB)
	}
	if got.Accuracy != rec.Accuracy || got.PlantState != rec.PlantState {
		t.Errorf("result = %+v, want %+v", got, rec)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("created = %v, want %v", got.CreatedAt, rec.CreatedAt)
	}
}

func TestResults_NilAIColor(t *testing.T) {
	st := tempStore(t)

	rec := ResultRecord{
		ResultID:   "r-002",
		StudentID:  "s1",
		StudentRGB: RGBRecord{R: 10, G: 20, B: 30},
		PlantState: "moderate",
	}
	if err := st.SaveResult(rec); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	results, err := st.ListResults(10)
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if results[0].AIRGB != nil {
		t.Errorf("ai rgb = %+v, want nil", results[0].AIRGB)
	}
}

func TestResults_NewestFirst(t *testing.T) {
	st := tempStore(t)

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"r-a", "r-b", "r-c"} {
		rec := ResultRecord{
			ResultID:  id,
			StudentID: "s1",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := st.SaveResult(rec); err != nil {
			t.Fatalf("SaveResult(%s): %v", id, err)
		}
	}

	results, err := st.ListResults(2)
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if len(results) != 2 || results[0].ResultID != "r-c" || results[1].ResultID != "r-b" {
		t.Errorf("results = %+v, want newest two first", results)
	}
}

// #endregion results
