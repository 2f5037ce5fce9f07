package service

import "github.com/MKhiriev/go-quiz-timer/models"

// sessionState is the single owner of the mutable session fields. All
// methods must be called with sessionClient.mu held.
type sessionState struct {
	// generation is bumped on every reset so that responses belonging to a
	// forgotten session can be recognised and dropped.
	generation uint64

	sessionID string
	status    models.SessionStatus
	remaining int
	answers   models.AnswerMap
	result    *models.Result
	quiz      *models.Quiz
}

func newSessionState() *sessionState {
	return &sessionState{
		status:  models.StatusLoading,
		answers: models.AnswerMap{},
	}
}

func clampRemaining(remaining int) int {
	return max(remaining, 0)
}

// start applies the authority's answer to a start request. Local selections
// made before the session existed are kept on top of the cached ones.
func (s *sessionState) start(session models.Session, cached models.AnswerMap) {
	answers := cached.Clone()
	for questionID, choice := range s.answers {
		answers[questionID] = choice
	}

	s.sessionID = session.SessionID
	s.remaining = clampRemaining(session.Remaining)
	s.answers = answers
	s.status = models.StatusRunning
	if session.Finished {
		s.status = models.StatusFinished
	}
}

// tick decrements the countdown of a running session and reports whether it
// just ran out.
func (s *sessionState) tick() (expired bool) {
	if s.status != models.StatusRunning {
		return false
	}

	if s.remaining <= 1 {
		s.remaining = 0
		s.status = models.StatusFinished
		return true
	}

	s.remaining--
	return false
}

// resync overwrites the countdown with the authority's values.
func (s *sessionState) resync(session models.Session) (finished bool) {
	s.remaining = clampRemaining(session.Remaining)
	if session.Finished {
		s.status = models.StatusFinished
		return true
	}
	return false
}

// markFinished reports whether the call changed the status.
func (s *sessionState) markFinished() bool {
	if s.status == models.StatusFinished {
		return false
	}
	s.status = models.StatusFinished
	return true
}

func (s *sessionState) selectAnswer(questionID models.QuestionID, choiceIndex int) bool {
	if s.status == models.StatusFinished || choiceIndex < 0 {
		return false
	}

	if s.quiz != nil {
		question, ok := s.quiz.Question(questionID)
		if !ok || choiceIndex >= len(question.Choices) {
			return false
		}
	}

	s.answers[questionID] = choiceIndex
	return true
}

// storeResult keeps the first Result it is given and returns the stored one.
func (s *sessionState) storeResult(result models.Result) (models.Result, bool) {
	if s.result != nil {
		return cloneResult(*s.result), false
	}

	stored := cloneResult(result)
	s.result = &stored
	return cloneResult(stored), true
}

func (s *sessionState) reset() {
	*s = sessionState{
		generation: s.generation + 1,
		status:     models.StatusLoading,
		answers:    models.AnswerMap{},
	}
}

func (s *sessionState) snapshot() models.Snapshot {
	snapshot := models.Snapshot{
		Generation: s.generation,
		Status:     s.status,
		SessionID:  s.sessionID,
		Remaining:  s.remaining,
		Answers:    s.answers.Clone(),
		Quiz:       s.quiz,
	}
	if s.result != nil {
		result := cloneResult(*s.result)
		snapshot.Result = &result
	}
	return snapshot
}

func cloneResult(result models.Result) models.Result {
	result.Answers = result.Answers.Clone()
	return result
}
