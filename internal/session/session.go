// Package session holds the learner's run state, the closed action set that
// mutates it, and its persistence codec. All mutation flows through Apply;
// callers never assign fields directly.
package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/luminfarm/chromabot/internal/workflow"
)

// #region identity

// NewStudentID generates a session identity: a millisecond timestamp plus a
// short random suffix. Repeated resets in one process must never collide,
// which the suffix guarantees even within the same millisecond.
func NewStudentID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("student-%d-%s", time.Now().UnixMilli(), suffix)
}

// #endregion identity

// #region defaults

// NewState returns the default state for a fresh run: a newly stamped
// student identity, the robot at the cube center, cursor on the first step,
// nothing complete.
func NewState() State {
	return State{
		StudentID:        NewStudentID(),
		RobotCoordinates: Coordinates{X: 128, Y: 128, Z: 128},
		CurrentStep:      workflow.First(),
	}
}

// #endregion defaults

// #region codec

// Marshal serializes a state to its wire JSON.
func Marshal(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	return data, nil
}

// Restore rebuilds a state from stored JSON by merging it over fresh
// defaults: fields absent from old stored data keep their default value, so
// a schema change never clobbers new fields. A parse failure falls back
// silently to the defaults. Chat timestamps come back as genuine time values
// via the time.Time JSON codec.
func Restore(data []byte) State {
	s := NewState()
	if len(data) == 0 {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return NewState()
	}
	if _, ok := workflow.Lookup(s.CurrentStep); !ok {
		s.CurrentStep = workflow.First()
	}
	return s
}

// #endregion codec
