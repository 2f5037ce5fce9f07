// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-quiz-timer/internal/adapter"
	"github.com/MKhiriev/go-quiz-timer/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrMalformedResponse):
		return "The quiz server sent an unexpected response. Press r to try again."
	case errors.Is(err, adapter.ErrNotFound):
		return "The session is no longer known to the quiz server."
	case errors.Is(err, adapter.ErrUnavailable), errors.Is(err, adapter.ErrInternalServerError):
		return "The quiz server is having trouble. Try again in a moment."
	case errors.Is(err, service.ErrNoSession):
		return "There is no session to submit."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the quiz server is unreachable."
	}

	return err.Error()
}
