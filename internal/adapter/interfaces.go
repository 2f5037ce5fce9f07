// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// remote quiz session authority.
//
// The primary abstraction is [AuthorityAdapter], which decouples the session
// client from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPAuthorityAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quiz-timer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/authority_adapter_mock.go -package=mock

// AuthorityAdapter is the client's view of the session authority, which owns
// the quiz content, the session clock and scoring.
type AuthorityAdapter interface {
	// GetQuiz fetches the read-only quiz descriptor.
	GetQuiz(ctx context.Context) (models.Quiz, error)

	// Start resumes the session identified by sessionID, or creates a new one
	// when sessionID is empty or unknown to the authority. The returned
	// session id may differ from the requested one.
	Start(ctx context.Context, sessionID string) (models.Session, error)

	// Status returns the authoritative snapshot of a running session.
	Status(ctx context.Context, sessionID string) (models.Session, error)

	// SubmitAnswer records an answer. Repeated submissions for the same
	// question overwrite each other. The response body is ignored.
	SubmitAnswer(ctx context.Context, req models.AnswerRequest) error

	// Finish closes the session and returns its Result. The authority answers
	// repeated calls with the same Result.
	Finish(ctx context.Context, sessionID string) (models.Result, error)
}
