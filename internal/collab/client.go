// Package collab provides the external collaborator contracts the lesson
// core consumes: AI color, computer-vision verification, tutor chat, and the
// remote results sink. The implementations here are stubs with artificial
// latency standing in for real services; the contracts are the part that
// matters to callers.
package collab

import (
	"context"
	"math/rand"
	"time"
)

// #region client-interface

// Client is the collaborator contract consumed by the lesson layer.
type Client interface {
	FetchAIColor(ctx context.Context, x, y, z int) (RGBColor, error)
	FetchCVResult(ctx context.Context, imageRef string) (CVResult, error)
	SendChatMessage(ctx context.Context, text string, sessCtx ChatContext) (string, error)
	SaveSessionResult(ctx context.Context, rec ResultUpload) (bool, error)
}

// #endregion client-interface

// #region stub-client

// StubClient simulates the collaborator services in-process. Single success
// path with artificial latency; the only failure mode is context
// cancellation during the simulated delay.
type StubClient struct {
	config Config
	rng    *rand.Rand
}

// NewStubClient creates a stub with the given configuration. A zero seed
// derives one from the clock.
func NewStubClient(config Config) *StubClient {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &StubClient{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// wait blocks for the artificial latency or until the context is canceled.
func (c *StubClient) wait(ctx context.Context) error {
	if c.config.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.config.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// #endregion stub-client

// #region ai-color

// FetchAIColor returns the color for a coordinate triple. The mapping is the
// one the lesson teaches: each axis value is its channel value, so the reply
// is deterministic and self-consistent with the comparison step.
func (c *StubClient) FetchAIColor(ctx context.Context, x, y, z int) (RGBColor, error) {
	if err := c.wait(ctx); err != nil {
		return RGBColor{}, err
	}
	return RGBColor{R: clampByte(x), G: clampByte(y), B: clampByte(z)}, nil
}

// #endregion ai-color

// #region cv-result

var detectableObjects = []string{"robot", "plant", "terrain block", "sun marker", "grid lines"}

// FetchCVResult returns a plausible verification outcome for an uploaded
// drawing. Numbers are random within friendly ranges; the stub never judges
// a drawing as failing.
func (c *StubClient) FetchCVResult(ctx context.Context, imageRef string) (CVResult, error) {
	if err := c.wait(ctx); err != nil {
		return CVResult{}, err
	}

	objectCount := 2 + c.rng.Intn(3)
	objects := make([]string, objectCount)
	boxes := make([]BoundingBox, objectCount)
	for i := 0; i < objectCount; i++ {
		objects[i] = detectableObjects[c.rng.Intn(len(detectableObjects))]
		boxes[i] = BoundingBox{
			X:      float64(c.rng.Intn(200)),
			Y:      float64(c.rng.Intn(200)),
			Width:  float64(40 + c.rng.Intn(120)),
			Height: float64(40 + c.rng.Intn(120)),
		}
	}

	return CVResult{
		Accuracy:        70 + c.rng.Float64()*28,
		DetectedObjects: objects,
		BoundingBoxes:   boxes,
		Confidence:      75 + c.rng.Float64()*24,
	}, nil
}

// #endregion cv-result

// #region chat

// SendChatMessage returns a canned tutor reply chosen by keyword
// classification of the student's question.
func (c *StubClient) SendChatMessage(ctx context.Context, text string, sessCtx ChatContext) (string, error) {
	if err := c.wait(ctx); err != nil {
		return "", err
	}
	return tutorReply(text, sessCtx), nil
}

// #endregion chat

// #region save-result

// SaveSessionResult submits a completed run to the results sink. The stub
// always reports success.
func (c *StubClient) SaveSessionResult(ctx context.Context, rec ResultUpload) (bool, error) {
	if err := c.wait(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// #endregion save-result

// #region helpers

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// #endregion helpers
