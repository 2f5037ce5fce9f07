package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-quiz-timer/internal/authority"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	authority.ErrEmptySessionID:   http.StatusBadRequest,
	authority.ErrUnknownQuestion:  http.StatusBadRequest,
	authority.ErrChoiceOutOfRange: http.StatusBadRequest,
	authority.ErrSessionNotFound:  http.StatusNotFound,
	authority.ErrSessionFinished:  http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
