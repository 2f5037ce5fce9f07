package authority

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionFinished  = errors.New("session is finished")
	ErrEmptySessionID   = errors.New("session id is empty")
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrChoiceOutOfRange = errors.New("choice index out of range")

	ErrInvalidQuizContent = errors.New("invalid quiz content")
)
