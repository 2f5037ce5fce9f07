package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-timer/internal/authority"
	"github.com/MKhiriev/go-quiz-timer/internal/config"
	handler "github.com/MKhiriev/go-quiz-timer/internal/handler/http"
	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/internal/server"
	"github.com/MKhiriev/go-quiz-timer/internal/utils"
	"github.com/MKhiriev/go-quiz-timer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("quiz-authority")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	content, err := authority.LoadQuizContent(cfg.QuizFile)
	if err != nil {
		log.Fatal().Err(err).Str("quiz_file", cfg.QuizFile).Msg("error loading quiz content")
	}

	svc, err := authority.NewService(content, nil, utils.NewUUIDGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating authority")
	}

	srv, err := server.NewServer(handler.NewHandler(svc, cfg.AllowedOrigins, log).Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
