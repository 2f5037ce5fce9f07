package store

import (
	"context"

	"github.com/MKhiriev/go-quiz-timer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single active session identifier of the
// client across restarts.
type SessionRepository interface {
	// LoadSessionID returns [ErrSessionIDNotFound] when nothing is stored.
	LoadSessionID(ctx context.Context) (string, error)
	SaveSessionID(ctx context.Context, sessionID string) error
	ClearSessionID(ctx context.Context) error
}

// AnswerRepository is the optimistic local answer cache, keyed by session.
type AnswerRepository interface {
	SaveAnswer(ctx context.Context, sessionID string, questionID models.QuestionID, choiceIndex int) error
	GetAnswers(ctx context.Context, sessionID string) (models.AnswerMap, error)
	// DeleteAnswers drops the cache of every session.
	DeleteAnswers(ctx context.Context) error
}
