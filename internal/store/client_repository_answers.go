package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/models"
)

type localAnswerRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalAnswerRepository(db *DB, logger *logger.Logger) AnswerRepository {
	return &localAnswerRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localAnswerRepository) SaveAnswer(ctx context.Context, sessionID string, questionID models.QuestionID, choiceIndex int) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveAnswerQuery(sessionID, questionID, choiceIndex)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localAnswerRepository.SaveAnswer").
			Str("session_id", sessionID).
			Str("question_id", questionID.String()).
			Msg("failed to upsert answer")
		return fmt.Errorf("failed to save answer (question_id=%s): %w", questionID, err)
	}

	return nil
}

func (l *localAnswerRepository) GetAnswers(ctx context.Context, sessionID string) (models.AnswerMap, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAnswersQuery(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localAnswerRepository.GetAnswers").
			Str("session_id", sessionID).
			Msg("failed to query cached answers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	answers := models.AnswerMap{}
	for rows.Next() {
		var (
			questionID  string
			choiceIndex int
		)
		if err = rows.Scan(&questionID, &choiceIndex); err != nil {
			return nil, fmt.Errorf("failed to scan cached answer: %w", err)
		}
		answers[models.QuestionID(questionID)] = choiceIndex
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached answers: %w", err)
	}

	return answers, nil
}

func (l *localAnswerRepository) DeleteAnswers(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAnswersQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localAnswerRepository.DeleteAnswers").
			Msg("failed to drop answer cache")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
