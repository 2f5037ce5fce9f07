package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAnswer(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLocalAnswerRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO answers").
		WithArgs("abc", "2", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveAnswer(context.Background(), "abc", "2", 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAnswer_DBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLocalAnswerRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO answers").WillReturnError(errors.New("database is locked"))

	err := repo.SaveAnswer(context.Background(), "abc", "2", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question_id=2")
}

func TestGetAnswers(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLocalAnswerRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT question_id, choice_index FROM answers").
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "choice_index"}).
			AddRow("1", 0).
			AddRow("2", 3))

	answers, err := repo.GetAnswers(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, models.AnswerMap{"1": 0, "2": 3}, answers)
}

func TestGetAnswers_EmptyIsNotNil(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLocalAnswerRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT question_id, choice_index FROM answers").
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "choice_index"}))

	answers, err := repo.GetAnswers(context.Background(), "abc")

	require.NoError(t, err)
	assert.NotNil(t, answers)
	assert.Empty(t, answers)
}

func TestGetAnswers_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLocalAnswerRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT question_id").WillReturnError(errors.New("no such table: answers"))

	_, err := repo.GetAnswers(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestDeleteAnswers(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLocalAnswerRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM answers").WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, repo.DeleteAnswers(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
