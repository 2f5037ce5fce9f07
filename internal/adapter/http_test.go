// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-quiz-timer/internal/config"
	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpAuthorityAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpAuthorityAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPAuthorityAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAuthorityAdapter)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPAuthorityAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPAuthorityAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "localhost:4000", want: "http://localhost:4000"},
		{in: " http://127.0.0.1:4000/ ", want: "http://127.0.0.1:4000"},
		{in: "https://quiz.example.com", want: "https://quiz.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetQuiz ─────────────────────────────────────────────────────────────────

func TestGetQuiz_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/quiz", r.URL.Path)

		_, _ = w.Write([]byte(`{"durationSeconds":600,"questions":[{"id":1,"q":"2+2?","choices":["3","4"]}]}`))
	}))
	defer srv.Close()

	quiz, err := newTestAdapter(t, srv.URL).GetQuiz(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 600, quiz.DurationSeconds)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, models.QuestionID("1"), quiz.Questions[0].ID)
	assert.Equal(t, "2+2?", quiz.Questions[0].Prompt)
}

func TestGetQuiz_ZeroDurationIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"durationSeconds":0,"questions":[]}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetQuiz(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetQuiz_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetQuiz(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Start ───────────────────────────────────────────────────────────────────

func TestStart_FreshClientSendsEmptyObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/start", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{}`, string(body))

		_, _ = w.Write([]byte(`{"sessionId":"abc","remaining":600,"finished":false}`))
	}))
	defer srv.Close()

	session, err := newTestAdapter(t, srv.URL).Start(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, models.Session{SessionID: "abc", Remaining: 600}, session)
}

func TestStart_ResumeSendsSessionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.StartRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "abc", req.SessionID)

		_, _ = w.Write([]byte(`{"sessionId":"abc","remaining":0,"finished":true}`))
	}))
	defer srv.Close()

	session, err := newTestAdapter(t, srv.URL).Start(context.Background(), "abc")

	require.NoError(t, err)
	assert.True(t, session.Finished)
	assert.Zero(t, session.Remaining)
}

func TestStart_MalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "not json", body: "<html>oops</html>"},
		{name: "missing session id", body: `{"remaining":600,"finished":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Start(context.Background(), "")
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestStart_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Start(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start request")
}

// ── Status ──────────────────────────────────────────────────────────────────

func TestStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/session/abc", r.URL.Path)

		_, _ = w.Write([]byte(`{"sessionId":"abc","remaining":42,"finished":false}`))
	}))
	defer srv.Close()

	session, err := newTestAdapter(t, srv.URL).Status(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, 42, session.Remaining)
}

func TestStatus_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"session not found"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Status(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── SubmitAnswer ────────────────────────────────────────────────────────────

func TestSubmitAnswer_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/answer", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"sessionId":"abc","questionId":2,"choiceIndex":1}`, string(body))

		// ack body is ignored
		_, _ = w.Write([]byte(`whatever`))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).SubmitAnswer(context.Background(), models.AnswerRequest{
		SessionID: "abc", QuestionID: "2", ChoiceIndex: 1,
	})
	assert.NoError(t, err)
}

func TestSubmitAnswer_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).SubmitAnswer(context.Background(), models.AnswerRequest{SessionID: "abc"})
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Finish ──────────────────────────────────────────────────────────────────

func TestFinish_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/finish", r.URL.Path)

		var req models.FinishRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "abc", req.SessionID)

		_, _ = w.Write([]byte(`{"score":2,"total":3,"answers":{"1":1,"2":0}}`))
	}))
	defer srv.Close()

	result, err := newTestAdapter(t, srv.URL).Finish(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, models.Result{Score: 2, Total: 3, Answers: models.AnswerMap{"1": 1, "2": 0}}, result)
}

func TestFinish_NullAnswersBecomeEmptyMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"score":0,"total":3,"answers":null}`))
	}))
	defer srv.Close()

	result, err := newTestAdapter(t, srv.URL).Finish(context.Background(), "abc")

	require.NoError(t, err)
	assert.NotNil(t, result.Answers)
}

func TestFinish_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Finish(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFinish_RequestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPAuthorityAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Finish(context.Background(), "abc")
	assert.Error(t, err)
}
