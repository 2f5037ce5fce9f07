package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-quiz-timer/internal/config"
	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/internal/utils"
	"github.com/MKhiriev/go-quiz-timer/models"
	"github.com/go-resty/resty/v2"
)

const (
	quizPath    = "/quiz"
	startPath   = "/start"
	sessionPath = "/session/{sessionId}"
	answerPath  = "/answer"
	finishPath  = "/finish"
)

type httpAuthorityAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAuthorityAdapter constructs an HTTP/JSON implementation of
// [AuthorityAdapter]. It normalises the base URL from adapterCfg.HTTPAddress
// and applies adapterCfg.RequestTimeout to every request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAuthorityAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AuthorityAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	logger.Info().Str("base_url", baseURL).Dur("timeout", adapterCfg.RequestTimeout).Msg("authority adapter created")
	return &httpAuthorityAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetQuiz implements [AuthorityAdapter]. It issues GET /quiz.
func (h *httpAuthorityAdapter) GetQuiz(ctx context.Context) (models.Quiz, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(quizPath)
	if err != nil {
		return models.Quiz{}, fmt.Errorf("get quiz request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Quiz{}, err
	}

	var quiz models.Quiz
	if err = decodeBody(resp, &quiz); err != nil {
		return models.Quiz{}, fmt.Errorf("get quiz: %w", err)
	}
	if quiz.DurationSeconds <= 0 {
		return models.Quiz{}, fmt.Errorf("get quiz: %w: non-positive duration %d", ErrMalformedResponse, quiz.DurationSeconds)
	}

	return quiz, nil
}

// Start implements [AuthorityAdapter]. It issues POST /start with
// {"sessionId": ...}, or {} when sessionID is empty.
func (h *httpAuthorityAdapter) Start(ctx context.Context, sessionID string) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.StartRequest{SessionID: sessionID}).
		Post(startPath)
	if err != nil {
		return models.Session{}, fmt.Errorf("start request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return decodeSession(resp, "start")
}

// Status implements [AuthorityAdapter]. It issues GET /session/{id}.
func (h *httpAuthorityAdapter) Status(ctx context.Context, sessionID string) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("sessionId", sessionID).
		Get(sessionPath)
	if err != nil {
		return models.Session{}, fmt.Errorf("session status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return decodeSession(resp, "session status")
}

// SubmitAnswer implements [AuthorityAdapter]. It issues POST /answer and
// ignores the acknowledgement body.
func (h *httpAuthorityAdapter) SubmitAnswer(ctx context.Context, req models.AnswerRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(answerPath)
	if err != nil {
		return fmt.Errorf("submit answer request: %w", err)
	}

	return mapHTTPError(resp)
}

// Finish implements [AuthorityAdapter]. It issues POST /finish.
func (h *httpAuthorityAdapter) Finish(ctx context.Context, sessionID string) (models.Result, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FinishRequest{SessionID: sessionID}).
		Post(finishPath)
	if err != nil {
		return models.Result{}, fmt.Errorf("finish request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Result{}, err
	}

	var result models.Result
	if err = decodeBody(resp, &result); err != nil {
		return models.Result{}, fmt.Errorf("finish: %w", err)
	}
	if result.Answers == nil {
		result.Answers = models.AnswerMap{}
	}

	return result, nil
}

func decodeSession(resp *resty.Response, op string) (models.Session, error) {
	var session models.Session
	if err := decodeBody(resp, &session); err != nil {
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if session.SessionID == "" {
		return models.Session{}, fmt.Errorf("%s: %w: empty sessionId", op, ErrMalformedResponse)
	}

	return session, nil
}

// decodeBody unmarshals the raw body regardless of the Content-Type the
// authority advertised.
func decodeBody(resp *resty.Response, v any) error {
	body := resp.Body()
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
