package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-quiz-timer/models"
)

const (
	clientStateTable = "client_state"
	answersTable     = "answers"

	// sessionIDKey is the durable key the session identifier is stored under.
	sessionIDKey = "quiz_session_id"
)

// sqlite understands "?" placeholders
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveStateQuery(name, value string) (string, []any, error) {
	return builder.
		Insert(clientStateTable).
		Columns("name", "value", "updated_at").
		Values(name, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildLoadStateQuery(name string) (string, []any, error) {
	return builder.
		Select("value").
		From(clientStateTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildDeleteStateQuery(name string) (string, []any, error) {
	return builder.
		Delete(clientStateTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildSaveAnswerQuery(sessionID string, questionID models.QuestionID, choiceIndex int) (string, []any, error) {
	return builder.
		Insert(answersTable).
		Columns("session_id", "question_id", "choice_index", "updated_at").
		Values(sessionID, string(questionID), choiceIndex, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(session_id, question_id) DO UPDATE SET choice_index = excluded.choice_index, updated_at = excluded.updated_at").
		ToSql()
}

func buildGetAnswersQuery(sessionID string) (string, []any, error) {
	return builder.
		Select("question_id", "choice_index").
		From(answersTable).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("question_id").
		ToSql()
}

func buildDeleteAnswersQuery() (string, []any, error) {
	return builder.
		Delete(answersTable).
		ToSql()
}
