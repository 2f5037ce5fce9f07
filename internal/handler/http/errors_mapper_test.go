package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-quiz-timer/internal/authority"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid json", err: fmt.Errorf("%w: eof", ErrInvalidJSON), want: http.StatusBadRequest},
		{name: "empty id", err: authority.ErrEmptySessionID, want: http.StatusBadRequest},
		{name: "unknown question", err: fmt.Errorf("%w: 9", authority.ErrUnknownQuestion), want: http.StatusBadRequest},
		{name: "choice out of range", err: authority.ErrChoiceOutOfRange, want: http.StatusBadRequest},
		{name: "wrapped not found", err: fmt.Errorf("%w: abc", authority.ErrSessionNotFound), want: http.StatusNotFound},
		{name: "finished", err: authority.ErrSessionFinished, want: http.StatusConflict},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
