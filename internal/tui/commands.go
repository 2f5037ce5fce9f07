package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quiz-timer/internal/service"
	"github.com/MKhiriev/go-quiz-timer/models"
)

const statusTTL = 2 * time.Second

func cmdStart(ctx context.Context, client service.SessionClient) tea.Cmd {
	return func() tea.Msg {
		if err := client.Initialize(ctx); err != nil {
			return sessionReadyMsg{err: err}
		}
		return sessionReadyMsg{err: client.StartOrResume(ctx)}
	}
}

// waitForEvent blocks until the next session event or until done is closed.
func waitForEvent(events <-chan models.SessionEvent, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case event := <-events:
			return sessionEventMsg{event: event}
		case <-done:
			return nil
		}
	}
}

func cmdSync(ctx context.Context, client service.SessionClient) tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{err: client.Resync(ctx)}
	}
}

func cmdFinish(ctx context.Context, client service.SessionClient) tea.Cmd {
	return func() tea.Msg {
		_, err := client.Finish(ctx, false)
		return finishDoneMsg{err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
