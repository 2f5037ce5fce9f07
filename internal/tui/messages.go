package tui

import "github.com/MKhiriev/go-quiz-timer/models"

// sessionReadyMsg reports the outcome of Initialize followed by StartOrResume.
type sessionReadyMsg struct {
	err error
}

type sessionEventMsg struct {
	event models.SessionEvent
}

type syncDoneMsg struct {
	err error
}

type finishDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
