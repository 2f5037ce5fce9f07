// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authority

import (
	"context"

	"github.com/MKhiriev/go-quiz-timer/models"
)

// Authority is the server side of the session protocol.
type Authority interface {
	// Quiz returns the public quiz descriptor without correct answers.
	Quiz(ctx context.Context) models.Quiz

	// Start returns the snapshot of a known session, or creates a new session
	// when sessionID is empty or unknown.
	Start(ctx context.Context, sessionID string) (models.Session, error)

	// Status returns the authoritative snapshot of a session. A session whose
	// time ran out is finished on the spot.
	Status(ctx context.Context, sessionID string) (models.Session, error)

	// SubmitAnswer overwrites the answer for a question.
	SubmitAnswer(ctx context.Context, req models.AnswerRequest) error

	// Finish closes the session and returns its Result. Only the first call
	// scores; later calls return the stored Result.
	Finish(ctx context.Context, sessionID string) (models.Result, error)
}
