// Package store persists lesson data in SQLite: the single session slot,
// the per-mutation event log, and saved lesson results read by dashboard
// tooling.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS session_slot (
	id          INTEGER PRIMARY KEY CHECK (id = 1),
	state_json  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS session_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	student_id  TEXT NOT NULL,
	action      TEXT NOT NULL,
	detail_json TEXT,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS lesson_results (
	result_id    TEXT PRIMARY KEY,
	student_id   TEXT NOT NULL,
	robot_json   TEXT NOT NULL,
	student_rgb  TEXT NOT NULL,
	ai_rgb       TEXT,
	accuracy     REAL NOT NULL,
	plant_state  TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_events_student
ON session_events(student_id, created_at);
`

// #endregion schema

// #region store-struct
// Store manages lesson persistence in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by inspection tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region slot

// SaveSlot writes the serialized session state into the single fixed slot.
func (s *Store) SaveSlot(stateJSON []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO session_slot (id, state_json, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET state_json = excluded.state_json, updated_at = excluded.updated_at`,
		string(stateJSON), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save slot: %w", err)
	}
	return nil
}

// LoadSlot reads the stored session state. ok is false when the slot has
// never been written.
func (s *Store) LoadSlot() (data []byte, ok bool, err error) {
	var stateJSON string
	err = s.db.QueryRow(`SELECT state_json FROM session_slot WHERE id = 1`).Scan(&stateJSON)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot: %w", err)
	}
	return []byte(stateJSON), true, nil
}

// #endregion slot

// #region events

// AppendEvent records one applied session mutation.
func (s *Store) AppendEvent(ev Event) error {
	var detailPtr interface{}
	if ev.DetailJSON != "" {
		detailPtr = ev.DetailJSON
	}
	created := ev.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO session_events (student_id, action, detail_json, created_at)
		 VALUES (?, ?, ?, ?)`,
		ev.StudentID, ev.Action, detailPtr, created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// ListEvents returns events for one student in insertion order. An empty
// studentID selects every student.
func (s *Store) ListEvents(studentID string, limit int) ([]Event, error) {
	query := `SELECT student_id, action, detail_json, created_at FROM session_events`
	args := []interface{}{}
	if studentID != "" {
		query += ` WHERE student_id = ?`
		args = append(args, studentID)
	}
	query += ` ORDER BY id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var detail sql.NullString
		var createdStr string
		if err := rows.Scan(&ev.StudentID, &ev.Action, &detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if detail.Valid {
			ev.DetailJSON = detail.String
		}
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// #endregion events

// #region results

// SaveResult persists one completed lesson run.
func (s *Store) SaveResult(rec ResultRecord) error {
	robotJSON, err := json.Marshal(rec.RobotCoordinates)
	if err != nil {
		return fmt.Errorf("marshal robot coords: %w", err)
	}
	studentJSON, err := json.Marshal(rec.StudentRGB)
	if err != nil {
		return fmt.Errorf("marshal student rgb: %w", err)
	}
	var aiPtr interface{}
	if rec.AIRGB != nil {
		aiJSON, err := json.Marshal(rec.AIRGB)
		if err != nil {
			return fmt.Errorf("marshal ai rgb: %w", err)
		}
		aiPtr = string(aiJSON)
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err = s.db.Exec(
		`INSERT INTO lesson_results
		 (result_id, student_id, robot_json, student_rgb, ai_rgb, accuracy, plant_state, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ResultID, rec.StudentID, string(robotJSON), string(studentJSON), aiPtr,
		rec.Accuracy, rec.PlantState, created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// ListResults returns the most recent saved lesson results.
func (s *Store) ListResults(limit int) ([]ResultRecord, error) {
	rows, err := s.db.Query(
		`SELECT result_id, student_id, robot_json, student_rgb, ai_rgb, accuracy, plant_state, created_at
		 FROM lesson_results ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var records []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		var robotJSON, studentJSON string
		var aiJSON sql.NullString
		var createdStr string
		if err := rows.Scan(&rec.ResultID, &rec.StudentID, &robotJSON, &studentJSON,
			&aiJSON, &rec.Accuracy, &rec.PlantState, &createdStr); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err := json.Unmarshal([]byte(robotJSON), &rec.RobotCoordinates); err != nil {
			return nil, fmt.Errorf("unmarshal robot coords: %w", err)
		}
		if err := json.Unmarshal([]byte(studentJSON), &rec.StudentRGB); err != nil {
			return nil, fmt.Errorf("unmarshal student rgb: %w", err)
		}
		if aiJSON.Valid {
			var ai RGBRecord
			if err := json.Unmarshal([]byte(aiJSON.String), &ai); err != nil {
				return nil, fmt.Errorf("unmarshal ai rgb: %w", err)
			}
			rec.AIRGB = &ai
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion results
