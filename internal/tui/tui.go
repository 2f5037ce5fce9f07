package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/internal/service"
	"github.com/MKhiriev/go-quiz-timer/models"
)

type TUI struct {
	client    service.SessionClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(client service.SessionClient, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{client: client, buildInfo: buildInfo, logger: logger}
}

// Run shows the quiz until the user quits or asks for a new quiz. reset
// reports the latter; the caller is expected to reset the client and call
// Run again.
func (t *TUI) Run(ctx context.Context) (reset bool, err error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newQuizModel(ctx, runCtx.Done(), t.client, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, fmt.Errorf("run quiz view: %w", err)
	}

	result, ok := finalModel.(quizModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	t.logger.Debug().Bool("reset", result.reset).Msg("quiz view closed")
	return result.reset, nil
}
