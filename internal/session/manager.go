package session

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/luminfarm/chromabot/internal/store"
)

// #region manager

// Manager owns the live session state and its persistence. Every applied
// action is written to the fixed slot and the event log before the next
// action is accepted, so a stored state never lags the in-memory one.
// Single-threaded by design: the caller serializes access.
type Manager struct {
	st    *store.Store
	state State
}

// NewManager loads the stored slot (falling back silently to defaults on
// missing or corrupt data) and returns a manager over it.
func NewManager(st *store.Store) (*Manager, error) {
	data, ok, err := st.LoadSlot()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var state State
	if ok {
		state = Restore(data)
	} else {
		state = NewState()
	}

	m := &Manager{st: st, state: state}
	if !ok {
		if err := m.persist(KindReset); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// State returns the current session state.
func (m *Manager) State() State {
	return m.state
}

// #endregion manager

// #region apply

// Apply runs an action through the reducer, commits the new state and
// persists it. Actions are applied strictly in call order.
func (m *Manager) Apply(a Action) (State, error) {
	m.state = Apply(m.state, a)
	if err := m.persist(a.Kind()); err != nil {
		return m.state, err
	}
	return m.state, nil
}

// persist writes the full state to the slot and appends an event row. The
// slot write is authoritative; an event-log failure is logged and dropped
// rather than failing the mutation.
func (m *Manager) persist(kind Kind) error {
	data, err := Marshal(m.state)
	if err != nil {
		return err
	}
	if err := m.st.SaveSlot(data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	detail, _ := json.Marshal(map[string]interface{}{
		"currentStep": m.state.CurrentStep,
		"progress":    m.state.Progress(),
	})
	ev := store.Event{
		StudentID:  m.state.StudentID,
		Action:     string(kind),
		DetailJSON: string(detail),
		CreatedAt:  time.Now().UTC(),
	}
	if err := m.st.AppendEvent(ev); err != nil {
		log.Printf("[SESSION] event log write failed: %v", err)
	}
	return nil
}

// #endregion apply
