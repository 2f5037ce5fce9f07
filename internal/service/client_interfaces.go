package service

import (
	"context"

	"github.com/MKhiriev/go-quiz-timer/models"
)

// SessionClient keeps a locally ticking countdown consistent with the session
// authority. It owns the session identifier, the tick and resync loops and
// answer submission, and reports every state change on Events.
//
// Lifecycle: loading -> running -> finished. Finished is terminal until Reset,
// which returns the client to loading.
type SessionClient interface {
	// Initialize loads the persisted session id, if any, and fetches the quiz.
	// It must succeed before StartOrResume.
	Initialize(ctx context.Context) error

	// StartOrResume resumes the persisted session or starts a new one and
	// arms the tick and resync loops unless the session is already finished.
	// The loops live until Finish, Reset, Close or cancellation of ctx.
	StartOrResume(ctx context.Context) error

	// Tick advances the local countdown by one step. Reaching zero finishes
	// the session exactly once. It never calls the authority directly.
	Tick(ctx context.Context)

	// Resync replaces the local countdown with the authority's snapshot.
	// Errors are logged and returned; the next cycle retries.
	Resync(ctx context.Context) error

	// SelectAnswer records a choice locally and mirrors it to the authority
	// in the background. It reports false when the answer was rejected
	// because the session is finished or the choice does not exist.
	SelectAnswer(ctx context.Context, questionID models.QuestionID, choiceIndex int) bool

	// Finish marks the session finished, stops both loops and returns the
	// Result. A Result that was already fetched is returned without another
	// request.
	Finish(ctx context.Context, auto bool) (models.Result, error)

	// Reset forgets the session locally, including the persisted id and the
	// answer cache, and returns to loading. The authority is not notified.
	// Reset must not be called from a loop callback.
	Reset(ctx context.Context) error

	// Snapshot returns a copy of the current state.
	Snapshot() models.Snapshot

	// Events returns the channel of state change notifications. Events are
	// dropped when the consumer falls behind.
	Events() <-chan models.SessionEvent

	// Close stops the loops and waits for in-flight background writes.
	Close()
}
