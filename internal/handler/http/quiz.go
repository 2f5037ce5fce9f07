// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/internal/utils"
	"github.com/MKhiriev/go-quiz-timer/models"
)

// answerAck is the body of a successful POST /answer.
type answerAck struct {
	OK bool `json:"ok"`
}

func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	quiz := h.authority.Quiz(r.Context())
	h.writeJSON(w, r, quiz, http.StatusOK)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req models.StartRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	session, err := h.authority.Start(r.Context(), req.SessionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, session, http.StatusOK)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.authority.Status(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, session, http.StatusOK)
}

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.authority.SubmitAnswer(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, answerAck{OK: true}, http.StatusOK)
}

func (h *Handler) finishSession(w http.ResponseWriter, r *http.Request) {
	var req models.FinishRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.authority.Finish(r.Context(), req.SessionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

// writeError maps err to a status code. Internal errors are not echoed to
// the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
