package models

import "maps"

// SessionStatus is the client-side lifecycle state of a quiz session.
type SessionStatus string

const (
	// StatusLoading means no session is active yet: the quiz is being
	// fetched or the session is being started.
	StatusLoading SessionStatus = "loading"

	// StatusRunning means the countdown is ticking and answers are accepted.
	StatusRunning SessionStatus = "running"

	// StatusFinished is terminal until an explicit reset.
	StatusFinished SessionStatus = "finished"
)

// Session is the authority-owned view of a quiz session.
type Session struct {
	SessionID string `json:"sessionId"`
	Remaining int    `json:"remaining"`
	Finished  bool   `json:"finished"`
}

// StartRequest asks the authority to resume the given session or create a
// new one. An empty SessionID is omitted from the body.
type StartRequest struct {
	SessionID string `json:"sessionId,omitempty"`
}

// AnswerRequest records a single answer selection.
type AnswerRequest struct {
	SessionID   string     `json:"sessionId"`
	QuestionID  QuestionID `json:"questionId"`
	ChoiceIndex int        `json:"choiceIndex"`
}

// FinishRequest closes a session and asks for its Result.
type FinishRequest struct {
	SessionID string `json:"sessionId"`
}

// Result is the scored outcome of a finished session.
type Result struct {
	Score   int       `json:"score"`
	Total   int       `json:"total"`
	Answers AnswerMap `json:"answers"`
}

// AnswerMap maps a question id to the selected choice index.
type AnswerMap map[QuestionID]int

// Clone returns an independent copy of the map. A nil map clones into an
// empty one.
func (a AnswerMap) Clone() AnswerMap {
	if a == nil {
		return AnswerMap{}
	}
	return maps.Clone(a)
}
