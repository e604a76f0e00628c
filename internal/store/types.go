package store

import "time"

// #region event
// Event is one applied session mutation, appended per state change.
type Event struct {
	StudentID  string
	Action     string
	DetailJSON string
	CreatedAt  time.Time
}

// #endregion event

// #region result-record

// RGBRecord mirrors a stored color without importing the model packages;
// the store stays a leaf below the domain.
type RGBRecord struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// CoordsRecord mirrors stored 0-255 coordinates.
type CoordsRecord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// ResultRecord is one completed lesson run as read by the dashboard.
type ResultRecord struct {
	ResultID         string
	StudentID        string
	RobotCoordinates CoordsRecord
	StudentRGB       RGBRecord
	AIRGB            *RGBRecord
	Accuracy         float64 // 0-100 overall comparison score
	PlantState       string
	CreatedAt        time.Time
}

// #endregion result-record
