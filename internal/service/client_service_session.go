// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-quiz-timer/internal/adapter"
	"github.com/MKhiriev/go-quiz-timer/internal/config"
	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/internal/store"
	"github.com/MKhiriev/go-quiz-timer/internal/workers"
	"github.com/MKhiriev/go-quiz-timer/models"
)

const (
	eventBufferSize  = 64
	answerOutboxSize = 128
)

// SessionOptions tunes the loops of a [SessionClient]. Zero intervals fall
// back to the config defaults and a nil Clock selects the wall clock.
type SessionOptions struct {
	TickInterval   time.Duration
	ResyncInterval time.Duration
	Clock          clockwork.Clock
}

// answerWrite is one queued mirror of a local selection.
type answerWrite struct {
	ctx        context.Context
	generation uint64
	req        models.AnswerRequest
}

type sessionClient struct {
	authority adapter.AuthorityAdapter
	sessions  store.SessionRepository
	answers   store.AnswerRepository
	logger    *logger.Logger

	loops *workers.Group

	mu     sync.Mutex
	state  *sessionState
	closed bool

	events chan models.SessionEvent
	// outbox serialises answer writes so that the authority and the local
	// cache observe selections in the order the user made them.
	outbox  chan answerWrite
	pending sync.WaitGroup
}

// NewSessionClient wires a [SessionClient] on top of the client storages and
// the authority adapter.
func NewSessionClient(storages *store.ClientStorages, authority adapter.AuthorityAdapter, opts SessionOptions, logger *logger.Logger) SessionClient {
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.DefaultTickInterval
	}
	if opts.ResyncInterval <= 0 {
		opts.ResyncInterval = config.DefaultResyncInterval
	}

	c := &sessionClient{
		authority: authority,
		sessions:  storages.SessionRepository,
		answers:   storages.AnswerRepository,
		logger:    logger,
		state:     newSessionState(),
		events:    make(chan models.SessionEvent, eventBufferSize),
		outbox:    make(chan answerWrite, answerOutboxSize),
	}

	c.loops = workers.NewGroup(
		workers.NewIntervalWorker("tick", opts.TickInterval, opts.Clock, c.Tick, logger),
		workers.NewIntervalWorker("resync", opts.ResyncInterval, opts.Clock, func(ctx context.Context) {
			_ = c.Resync(ctx)
		}, logger),
	)

	c.pending.Add(1)
	go c.runAnswerWriter()

	return c
}

func (c *sessionClient) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.state.status != models.StatusLoading {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	gen := c.state.generation
	c.mu.Unlock()

	sessionID, err := c.sessions.LoadSessionID(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionIDNotFound) {
			c.logger.Warn().Err(err).Msg("could not read persisted session id, starting fresh")
		}
		sessionID = ""
	}

	quiz, err := c.authority.GetQuiz(ctx)
	if err != nil {
		c.logger.Err(err).Msg("failed to fetch quiz")
		c.publish(models.EventError, err)
		return fmt.Errorf("%w: %w", ErrQuizNotLoaded, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.state.generation {
		return ErrSessionReset
	}
	c.state.sessionID = sessionID
	c.state.quiz = &quiz

	c.logger.Info().
		Str("persisted_session_id", sessionID).
		Int("questions", len(quiz.Questions)).
		Int("duration_seconds", quiz.DurationSeconds).
		Msg("quiz loaded")
	return nil
}

func (c *sessionClient) StartOrResume(ctx context.Context) error {
	c.mu.Lock()
	if c.state.quiz == nil {
		c.mu.Unlock()
		return ErrQuizNotLoaded
	}
	if c.state.status != models.StatusLoading {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	persisted, gen := c.state.sessionID, c.state.generation
	c.mu.Unlock()

	session, err := c.authority.Start(ctx, persisted)
	if err != nil {
		c.logger.Err(err).Str("persisted_session_id", persisted).Msg("failed to start session")
		c.publish(models.EventError, err)
		return fmt.Errorf("start session: %w", err)
	}

	log := c.logger.WithSession(session.SessionID)
	if err = c.sessions.SaveSessionID(ctx, session.SessionID); err != nil {
		log.Warn().Err(err).Msg("failed to persist session id")
	}

	cached := models.AnswerMap{}
	if session.SessionID == persisted {
		answers, err := c.answers.GetAnswers(ctx, session.SessionID)
		if err != nil {
			log.Warn().Err(err).Msg("failed to restore cached answers")
		} else {
			cached = answers
		}
	} else {
		if persisted != "" {
			log.Info().Str("stale_session_id", persisted).Msg("authority issued a new session")
		}
		if err = c.answers.DeleteAnswers(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to drop stale answer cache")
		}
	}

	c.mu.Lock()
	if gen != c.state.generation {
		c.mu.Unlock()
		return ErrSessionReset
	}
	if c.state.status != models.StatusLoading {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.state.start(session, cached)
	running := c.state.status == models.StatusRunning
	c.publishLocked(models.EventStarted, nil)
	if !running {
		c.publishLocked(models.EventFinished, nil)
	}
	c.mu.Unlock()

	if !running {
		log.Info().Msg("resumed session is already finished")
		c.finishAsync(ctx, false)
		return nil
	}

	c.loops.Start(ctx)

	// Finish or Reset may have run while the loops were being armed.
	c.mu.Lock()
	stale := gen != c.state.generation || c.state.status != models.StatusRunning
	c.mu.Unlock()
	if stale {
		c.loops.Cancel()
	}

	log.Info().Int("remaining", session.Remaining).Msg("session running")
	return nil
}

func (c *sessionClient) Tick(ctx context.Context) {
	c.mu.Lock()
	if c.state.status != models.StatusRunning {
		c.mu.Unlock()
		return
	}

	expired := c.state.tick()
	if expired {
		c.publishLocked(models.EventFinished, nil)
	} else {
		c.publishLocked(models.EventTick, nil)
	}
	sessionID := c.state.sessionID
	c.mu.Unlock()

	if expired {
		c.logger.WithSession(sessionID).Info().Msg("time is up")
		c.loops.Cancel()
		c.finishAsync(ctx, true)
	}
}

func (c *sessionClient) Resync(ctx context.Context) error {
	c.mu.Lock()
	if c.state.status != models.StatusRunning || c.state.sessionID == "" {
		c.mu.Unlock()
		return nil
	}
	sessionID, gen := c.state.sessionID, c.state.generation
	c.mu.Unlock()

	log := c.logger.WithSession(sessionID)

	session, err := c.authority.Status(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Msg("resync failed, keeping local countdown")
		return fmt.Errorf("resync: %w", err)
	}

	c.mu.Lock()
	if gen != c.state.generation || c.state.status != models.StatusRunning {
		c.mu.Unlock()
		log.Debug().Msg("dropping stale resync response")
		return nil
	}

	drift := c.state.remaining - clampRemaining(session.Remaining)
	finished := c.state.resync(session)
	c.publishLocked(models.EventResynced, nil)
	if finished {
		c.publishLocked(models.EventFinished, nil)
	}
	c.mu.Unlock()

	log.Debug().Int("remaining", session.Remaining).Int("drift", drift).Bool("finished", finished).Msg("resynced")

	if finished {
		c.loops.Cancel()
		c.finishAsync(ctx, false)
	}
	return nil
}

func (c *sessionClient) SelectAnswer(ctx context.Context, questionID models.QuestionID, choiceIndex int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.selectAnswer(questionID, choiceIndex) {
		return false
	}
	c.publishLocked(models.EventAnswered, nil)

	if c.state.sessionID == "" || c.state.status == models.StatusLoading || c.closed {
		return true
	}

	write := answerWrite{
		ctx:        context.WithoutCancel(ctx),
		generation: c.state.generation,
		req: models.AnswerRequest{
			SessionID:   c.state.sessionID,
			QuestionID:  questionID,
			ChoiceIndex: choiceIndex,
		},
	}

	select {
	case c.outbox <- write:
	default:
		c.logger.WithSession(c.state.sessionID).Warn().
			Str("question_id", questionID.String()).
			Msg("answer outbox is full, remote write dropped")
	}
	return true
}

func (c *sessionClient) Finish(ctx context.Context, auto bool) (models.Result, error) {
	c.mu.Lock()
	if c.state.status == models.StatusLoading || c.state.sessionID == "" {
		c.mu.Unlock()
		return models.Result{}, ErrNoSession
	}
	if c.state.markFinished() {
		c.publishLocked(models.EventFinished, nil)
	}
	sessionID, gen := c.state.sessionID, c.state.generation
	cached := c.state.result
	var result models.Result
	if cached != nil {
		result = cloneResult(*cached)
	}
	c.mu.Unlock()

	c.loops.Cancel()

	if cached != nil {
		return result, nil
	}

	log := c.logger.WithSession(sessionID)
	log.Info().Bool("auto", auto).Msg("finishing session")

	result, err := c.authority.Finish(ctx, sessionID)
	if err != nil {
		log.Err(err).Msg("failed to fetch result")
		c.mu.Lock()
		if gen == c.state.generation {
			c.publishLocked(models.EventError, err)
		}
		c.mu.Unlock()
		return models.Result{}, fmt.Errorf("finish session: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.state.generation {
		return result, nil
	}

	stored, first := c.state.storeResult(result)
	if first {
		c.publishLocked(models.EventResult, nil)
		log.Info().Int("score", stored.Score).Int("total", stored.Total).Msg("result received")
	}
	return stored, nil
}

func (c *sessionClient) Reset(ctx context.Context) error {
	c.loops.Stop()

	c.mu.Lock()
	previous := c.state.sessionID
	c.state.reset()
	c.drainEventsLocked()
	c.publishLocked(models.EventReset, nil)
	c.mu.Unlock()

	var errs error
	if err := c.sessions.ClearSessionID(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("clear session id: %w", err))
	}
	if err := c.answers.DeleteAnswers(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("clear answer cache: %w", err))
	}

	if errs != nil {
		c.logger.Err(errs).Str("session_id", previous).Msg("reset left local state behind")
		return errs
	}

	c.logger.Info().Str("session_id", previous).Msg("session reset")
	return nil
}

func (c *sessionClient) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.snapshot()
}

func (c *sessionClient) Events() <-chan models.SessionEvent {
	return c.events
}

func (c *sessionClient) Close() {
	c.loops.Stop()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.outbox)
	c.mu.Unlock()

	c.pending.Wait()
}

// finishAsync fetches the Result off the caller's goroutine. It is used from
// the loop callbacks, which must not block on the network.
func (c *sessionClient) finishAsync(ctx context.Context, auto bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.pending.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.pending.Done()
		// the loop context is cancelled by Finish itself
		_, _ = c.Finish(context.WithoutCancel(ctx), auto)
	}()
}

func (c *sessionClient) runAnswerWriter() {
	defer c.pending.Done()

	for write := range c.outbox {
		c.mu.Lock()
		stale := write.generation != c.state.generation
		c.mu.Unlock()
		if stale {
			continue
		}

		req := write.req
		log := c.logger.WithSession(req.SessionID).With().
			Str("question_id", req.QuestionID.String()).
			Int("choice_index", req.ChoiceIndex).
			Logger()

		if err := c.answers.SaveAnswer(write.ctx, req.SessionID, req.QuestionID, req.ChoiceIndex); err != nil {
			log.Warn().Err(err).Msg("failed to cache answer")
		}
		if err := c.authority.SubmitAnswer(write.ctx, req); err != nil {
			log.Warn().Err(err).Msg("failed to submit answer")
		}
	}
}

func (c *sessionClient) publish(kind models.EventKind, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publishLocked(kind, err)
}

// drainEventsLocked discards events buffered for the previous session.
func (c *sessionClient) drainEventsLocked() {
	for {
		select {
		case <-c.events:
		default:
			return
		}
	}
}

// publishLocked must be called with c.mu held.
func (c *sessionClient) publishLocked(kind models.EventKind, err error) {
	event := models.SessionEvent{
		Kind:     kind,
		Snapshot: c.state.snapshot(),
		Err:      err,
	}

	select {
	case c.events <- event:
	default:
		c.logger.Debug().Str("event", string(kind)).Msg("event dropped, consumer is behind")
	}
}
