package models

// EventKind names a session lifecycle event published to the presentation layer.
type EventKind string

const (
	EventStarted  EventKind = "started"
	EventTick     EventKind = "tick"
	EventResynced EventKind = "resynced"
	EventAnswered EventKind = "answered"
	EventFinished EventKind = "finished"
	EventResult   EventKind = "result"
	EventReset    EventKind = "reset"
	EventError    EventKind = "error"
)

// Snapshot is an immutable copy of the client session state. Generation
// grows on every reset; snapshots from an earlier generation are stale.
type Snapshot struct {
	Generation uint64
	Status     SessionStatus
	SessionID  string
	Remaining  int
	Answers    AnswerMap
	Result     *Result
	Quiz       *Quiz
}

// SessionEvent is a state change notification. Err is set only for
// EventError.
type SessionEvent struct {
	Kind     EventKind
	Snapshot Snapshot
	Err      error
}
