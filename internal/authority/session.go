package authority

import (
	"time"

	"github.com/MKhiriev/go-quiz-timer/models"
)

type session struct {
	id        string
	startedAt time.Time
	answers   models.AnswerMap
	finished  bool
	result    *models.Result
}

// remaining rounds up to whole seconds and is never negative.
func (s *session) remaining(now time.Time, duration time.Duration) int {
	if s.finished {
		return 0
	}
	left := duration - now.Sub(s.startedAt)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

func (s *session) snapshot(now time.Time, duration time.Duration) models.Session {
	return models.Session{
		SessionID: s.id,
		Remaining: s.remaining(now, duration),
		Finished:  s.finished,
	}
}
