// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authority

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/models"
)

// IDGenerator issues session identifiers.
type IDGenerator interface {
	Generate() string
}

type service struct {
	content  QuizContent
	quiz     models.Quiz
	duration time.Duration
	clock    clockwork.Clock
	ids      IDGenerator
	logger   *logger.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService builds an in-memory [Authority] serving content. A nil clock
// selects the wall clock.
func NewService(content QuizContent, clock clockwork.Clock, ids IDGenerator, logger *logger.Logger) (Authority, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &service{
		content:  content,
		quiz:     content.Public(),
		duration: time.Duration(content.DurationSeconds) * time.Second,
		clock:    clock,
		ids:      ids,
		logger:   logger,
		sessions: make(map[string]*session),
	}, nil
}

func (s *service) Quiz(ctx context.Context) models.Quiz {
	quiz := s.quiz
	quiz.Questions = append([]models.Question(nil), s.quiz.Questions...)
	return quiz
}

func (s *service) Start(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	if sessionID != "" {
		if sess, ok := s.sessions[sessionID]; ok {
			s.expireLocked(sess, now)
			log.Debug().Str("session_id", sessionID).Msg("session resumed")
			return sess.snapshot(now, s.duration), nil
		}
		log.Info().Str("session_id", sessionID).Msg("unknown session requested, issuing a new one")
	}

	sess := &session{
		id:        s.ids.Generate(),
		startedAt: now,
		answers:   models.AnswerMap{},
	}
	s.sessions[sess.id] = sess

	log.Info().Str("session_id", sess.id).Int("duration_seconds", s.content.DurationSeconds).Msg("session started")
	return sess.snapshot(now, s.duration), nil
}

func (s *service) Status(ctx context.Context, sessionID string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookupLocked(sessionID)
	if err != nil {
		return models.Session{}, err
	}

	now := s.clock.Now()
	s.expireLocked(sess, now)
	return sess.snapshot(now, s.duration), nil
}

func (s *service) SubmitAnswer(ctx context.Context, req models.AnswerRequest) error {
	question, ok := s.content.question(req.QuestionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, req.QuestionID)
	}
	if req.ChoiceIndex < 0 || req.ChoiceIndex >= len(question.Choices) {
		return fmt.Errorf("%w: %d", ErrChoiceOutOfRange, req.ChoiceIndex)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookupLocked(req.SessionID)
	if err != nil {
		return err
	}

	s.expireLocked(sess, s.clock.Now())
	if sess.finished {
		return ErrSessionFinished
	}

	sess.answers[req.QuestionID] = req.ChoiceIndex

	logger.FromContext(ctx).Debug().
		Str("session_id", sess.id).
		Str("question_id", req.QuestionID.String()).
		Int("choice_index", req.ChoiceIndex).
		Msg("answer recorded")
	return nil
}

func (s *service) Finish(ctx context.Context, sessionID string) (models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookupLocked(sessionID)
	if err != nil {
		return models.Result{}, err
	}

	s.finishLocked(sess)

	result := *sess.result
	result.Answers = result.Answers.Clone()

	logger.FromContext(ctx).Info().
		Str("session_id", sess.id).
		Int("score", result.Score).
		Int("total", result.Total).
		Msg("session finished")
	return result, nil
}

func (s *service) lookupLocked(sessionID string) (*session, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return sess, nil
}

// expireLocked finishes a session whose time has run out.
func (s *service) expireLocked(sess *session, now time.Time) {
	if !sess.finished && sess.remaining(now, s.duration) == 0 {
		s.finishLocked(sess)
	}
}

// finishLocked scores the session once.
func (s *service) finishLocked(sess *session) {
	sess.finished = true
	if sess.result != nil {
		return
	}

	sess.result = &models.Result{
		Score:   s.content.score(sess.answers),
		Total:   len(s.content.Questions),
		Answers: sess.answers.Clone(),
	}
}
