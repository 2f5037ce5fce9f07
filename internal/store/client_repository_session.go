package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quiz-timer/internal/logger"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) LoadSessionID(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadStateQuery(sessionIDKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sessionID string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionIDNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.LoadSessionID").
			Msg("failed to load persisted session id")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if sessionID == "" {
		return "", ErrSessionIDNotFound
	}

	return sessionID, nil
}

func (l *localSessionRepository) SaveSessionID(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveStateQuery(sessionIDKey, sessionID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.SaveSessionID").
			Str("session_id", sessionID).
			Msg("failed to persist session id")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localSessionRepository) ClearSessionID(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStateQuery(sessionIDKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.ClearSessionID").
			Msg("failed to clear session id")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
