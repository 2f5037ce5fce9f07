package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/internal/service"
)

type App struct {
	session service.SessionClient
	view    View
	logger  *logger.Logger
}

func NewApp(services *service.ClientServices, view View, logger *logger.Logger) *App {
	return &App{
		session: services.SessionClient,
		view:    view,
		logger:  logger,
	}
}

// Run shows the quiz view, resetting the session and showing it again for
// as long as the user asks for a new quiz.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	defer a.session.Close()

	for round := 1; ; round++ {
		a.logger.Info().Int("round", round).Msg("showing quiz")

		reset, err := a.view.Run(ctx)
		if err != nil {
			return fmt.Errorf("quiz view: %w", err)
		}
		if !reset {
			a.logger.Info().Msg("user quit")
			return nil
		}

		if err = a.session.Reset(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("reset was incomplete")
		}
	}
}
