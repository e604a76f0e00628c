// Package lesson coordinates one learner's run: it drives the session
// reducer, gates step entry by workflow accessibility, and brokers the
// external collaborator calls. A collaborator failure surfaces as a
// recoverable error with the workflow state left untouched.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/luminfarm/chromabot/internal/collab"
	"github.com/luminfarm/chromabot/internal/environ"
	"github.com/luminfarm/chromabot/internal/scan"
	"github.com/luminfarm/chromabot/internal/session"
	"github.com/luminfarm/chromabot/internal/store"
	"github.com/luminfarm/chromabot/internal/workflow"
)

// #region errors

var (
	// ErrStepLocked means a prior step is still incomplete.
	ErrStepLocked = errors.New("step not yet accessible")
	// ErrNoUpload means verification was requested before an upload.
	ErrNoUpload = errors.New("no drawing uploaded")
	// ErrNotCompared means a summary was requested before the compare step.
	ErrNotCompared = errors.New("comparison not yet done")
)

// #endregion errors

// #region lesson-struct

// Lesson is the top-level coordinator for a guided run.
type Lesson struct {
	sessions *session.Manager
	client   collab.Client
	st       *store.Store
	hour     float64
}

// New wires a lesson over a session manager, collaborator client and store.
// The simulated clock starts at noon.
func New(sessions *session.Manager, client collab.Client, st *store.Store) *Lesson {
	return &Lesson{
		sessions: sessions,
		client:   client,
		st:       st,
		hour:     12,
	}
}

// State returns the current session state.
func (l *Lesson) State() session.State {
	return l.sessions.State()
}

// Hour returns the simulated time of day.
func (l *Lesson) Hour() float64 {
	return l.hour
}

// SetHour moves the simulated clock. Values wrap into [0, 24).
func (l *Lesson) SetHour(hour float64) {
	for hour < 0 {
		hour += 24
	}
	for hour >= 24 {
		hour -= 24
	}
	l.hour = hour
}

// Scan computes a fresh environmental scan at the robot's position for the
// current simulated hour. Derived, never stored.
func (l *Lesson) Scan() scan.Result {
	return scan.At(l.State().RobotCoordinates.Normalized(), l.hour)
}

// #endregion lesson-struct

// #region step-gate

// require returns ErrStepLocked unless every step before id is complete.
func (l *Lesson) require(id workflow.StepID) error {
	if !workflow.IsAccessible(id, l.State().CompletedSteps) {
		return fmt.Errorf("%w: %s", ErrStepLocked, id)
	}
	return nil
}

// finish marks a step complete and moves the cursor forward.
func (l *Lesson) finish(id workflow.StepID) error {
	if _, err := l.sessions.Apply(session.CompleteStep{Step: id}); err != nil {
		return err
	}
	if _, err := l.sessions.Apply(session.AdvanceStep{}); err != nil {
		return err
	}
	log.Printf("[LESSON] step %s complete, progress %.0f%%", id, l.State().Progress())
	return nil
}

// #endregion step-gate

// #region steps

// PlaceRobot records the chosen robot position and completes the placement
// step. Coordinates are clamped to the 0-255 device scale.
func (l *Lesson) PlaceRobot(coords session.Coordinates) error {
	if err := l.require(workflow.StepPlacement); err != nil {
		return err
	}
	if _, err := l.sessions.Apply(session.SetRobotCoordinates{Coords: coords}); err != nil {
		return err
	}
	return l.finish(workflow.StepPlacement)
}

// Upload records the drawing reference and completes the upload step.
func (l *Lesson) Upload(ref string) error {
	if err := l.require(workflow.StepUpload); err != nil {
		return err
	}
	if _, err := l.sessions.Apply(session.SetUploadedImage{Ref: ref}); err != nil {
		return err
	}
	return l.finish(workflow.StepUpload)
}

// Verify runs the vision check on the uploaded drawing. On collaborator
// failure the session and workflow are left unchanged.
func (l *Lesson) Verify(ctx context.Context) (session.CVResult, error) {
	if err := l.require(workflow.StepVerify); err != nil {
		return session.CVResult{}, err
	}
	state := l.State()
	if state.UploadedImage == nil {
		return session.CVResult{}, ErrNoUpload
	}

	raw, err := l.client.FetchCVResult(ctx, *state.UploadedImage)
	if err != nil {
		return session.CVResult{}, fmt.Errorf("vision check failed, try again: %w", err)
	}

	result := toSessionCV(raw)
	if _, err := l.sessions.Apply(session.SetCVResult{Result: result}); err != nil {
		return session.CVResult{}, err
	}
	return result, l.finish(workflow.StepVerify)
}

// SubmitCoordinates records the coordinates the learner read back from
// their drawing.
func (l *Lesson) SubmitCoordinates(coords session.Coordinates) error {
	if err := l.require(workflow.StepCoords); err != nil {
		return err
	}
	if _, err := l.sessions.Apply(session.SetStudentCoordinates{Coords: coords}); err != nil {
		return err
	}
	return l.finish(workflow.StepCoords)
}

// SubmitPrediction records the learner's RGB guess and fetches the AI color
// for the robot's coordinates. The collaborator call happens first, so a
// failure leaves both the guess and the workflow unrecorded.
func (l *Lesson) SubmitPrediction(ctx context.Context, guess environ.RGB) error {
	if err := l.require(workflow.StepPredict); err != nil {
		return err
	}
	coords := l.State().RobotCoordinates
	aiColor, err := l.client.FetchAIColor(ctx, coords.X, coords.Y, coords.Z)
	if err != nil {
		return fmt.Errorf("color service failed, try again: %w", err)
	}

	if _, err := l.sessions.Apply(session.SetStudentRGB{Color: guess}); err != nil {
		return err
	}
	if _, err := l.sessions.Apply(session.SetAIRGB{Color: environ.RGB{R: aiColor.R, G: aiColor.G, B: aiColor.B}}); err != nil {
		return err
	}
	return l.finish(workflow.StepPredict)
}

// Compare scores the learner's prediction against the AI color and
// completes the compare step.
func (l *Lesson) Compare() (Comparison, error) {
	if err := l.require(workflow.StepCompare); err != nil {
		return Comparison{}, err
	}
	state := l.State()
	if state.AIRGB == nil {
		return Comparison{}, fmt.Errorf("%w: no AI color recorded", ErrStepLocked)
	}

	cmp := CompareColors(state.StudentRGB, *state.AIRGB)
	return cmp, l.finish(workflow.StepCompare)
}

// Chat sends a question to the tutor and records both sides of the exchange.
// The first successful exchange completes the chat step.
func (l *Lesson) Chat(ctx context.Context, text string) (string, error) {
	if err := l.require(workflow.StepChat); err != nil {
		return "", err
	}
	state := l.State()
	reply, err := l.client.SendChatMessage(ctx, text, collab.ChatContext{
		RobotX:      state.RobotCoordinates.X,
		RobotY:      state.RobotCoordinates.Y,
		RobotZ:      state.RobotCoordinates.Z,
		CurrentStep: string(state.CurrentStep),
	})
	if err != nil {
		return "", fmt.Errorf("tutor unavailable, try again: %w", err)
	}

	now := time.Now().UTC()
	if _, err := l.sessions.Apply(session.AppendChatMessage{Role: "user", Content: text, Timestamp: now}); err != nil {
		return "", err
	}
	if _, err := l.sessions.Apply(session.AppendChatMessage{Role: "assistant", Content: reply, Timestamp: time.Now().UTC()}); err != nil {
		return "", err
	}
	if !state.StepCompleted(workflow.StepChat) {
		if err := l.finish(workflow.StepChat); err != nil {
			return "", err
		}
	}
	return reply, nil
}

// #endregion steps

// #region summary

// Finish saves the completed run to the results table and submits it to the
// remote sink. The remote submission is fire-and-forget: a failure is
// logged, never surfaced.
func (l *Lesson) Finish(ctx context.Context) (store.ResultRecord, error) {
	state := l.State()
	if !state.StepCompleted(workflow.StepCompare) {
		return store.ResultRecord{}, ErrNotCompared
	}

	cmp := Comparison{}
	if state.AIRGB != nil {
		cmp = CompareColors(state.StudentRGB, *state.AIRGB)
	}
	res := l.Scan()

	rec := store.ResultRecord{
		ResultID:  uuid.New().String(),
		StudentID: state.StudentID,
		RobotCoordinates: store.CoordsRecord{
			X: state.RobotCoordinates.X,
			Y: state.RobotCoordinates.Y,
			Z: state.RobotCoordinates.Z,
		},
		StudentRGB: store.RGBRecord{R: state.StudentRGB.R, G: state.StudentRGB.G, B: state.StudentRGB.B},
		Accuracy:   cmp.Overall,
		PlantState: string(res.Plant.State),
		CreatedAt:  time.Now().UTC(),
	}
	if state.AIRGB != nil {
		rec.AIRGB = &store.RGBRecord{R: state.AIRGB.R, G: state.AIRGB.G, B: state.AIRGB.B}
	}

	if err := l.st.SaveResult(rec); err != nil {
		return store.ResultRecord{}, fmt.Errorf("save result: %w", err)
	}

	if _, err := l.client.SaveSessionResult(ctx, collab.ResultUpload{
		StudentID: rec.StudentID,
		Accuracy:  rec.Accuracy,
		CreatedAt: rec.CreatedAt,
	}); err != nil {
		log.Printf("[LESSON] remote result submission failed: %v", err)
	}

	return rec, nil
}

// Reset abandons the run and starts a fresh session with a new identity.
func (l *Lesson) Reset() error {
	_, err := l.sessions.Apply(session.Reset{})
	return err
}

// #endregion summary

// #region conversion

// toSessionCV converts a collaborator CV result to the session type.
func toSessionCV(raw collab.CVResult) session.CVResult {
	boxes := make([]session.BoundingBox, len(raw.BoundingBoxes))
	for i, b := range raw.BoundingBoxes {
		boxes[i] = session.BoundingBox{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	}
	return session.CVResult{
		Accuracy:        raw.Accuracy,
		DetectedObjects: raw.DetectedObjects,
		BoundingBoxes:   boxes,
		Confidence:      raw.Confidence,
	}
}

// #endregion conversion
