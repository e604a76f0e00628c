package collab

import (
	"os"
	"strconv"
	"time"
)

// #region result-types

// CVResult holds the response from a vision verification call.
type CVResult struct {
	Accuracy        float64 // 0-100
	DetectedObjects []string
	BoundingBoxes   []BoundingBox
	Confidence      float64 // 0-100
}

// BoundingBox is a detected region in image pixel space.
type BoundingBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RGBColor is a color reply from the AI color service.
type RGBColor struct {
	R int
	G int
	B int
}

// ChatContext carries the session facts the tutor may reference.
type ChatContext struct {
	RobotX      int
	RobotY      int
	RobotZ      int
	CurrentStep string
}

// ResultUpload is a completed run submitted to the remote results sink.
type ResultUpload struct {
	StudentID string
	Accuracy  float64
	CreatedAt time.Time
}

// #endregion result-types

// #region config

// Config holds stub collaborator parameters.
type Config struct {
	Delay time.Duration // artificial latency per call
	Seed  int64         // CV randomness seed; 0 means time-derived
}

// DefaultConfig returns the stub defaults. Reads from env vars:
// CHROMABOT_STUB_DELAY_MS, CHROMABOT_STUB_SEED.
func DefaultConfig() Config {
	cfg := Config{
		Delay: 600 * time.Millisecond,
	}
	if v := os.Getenv("CHROMABOT_STUB_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.Delay = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("CHROMABOT_STUB_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg
}

// #endregion config
