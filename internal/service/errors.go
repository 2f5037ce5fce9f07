package service

import "errors"

// Sentinel errors returned by [SessionClient].
var (
	// ErrQuizNotLoaded is returned when StartOrResume is called before a
	// successful Initialize, or when Initialize cannot fetch the quiz.
	ErrQuizNotLoaded = errors.New("quiz is not loaded")

	// ErrNoSession is returned by Finish when no session has been started.
	ErrNoSession = errors.New("no active session")

	// ErrAlreadyStarted is returned by Initialize and StartOrResume once the
	// client has left the loading state.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrSessionReset is returned when a reset happened while the call was
	// waiting on the authority; its outcome has been discarded.
	ErrSessionReset = errors.New("session was reset")
)
