package service

import (
	"github.com/MKhiriev/go-quiz-timer/internal/adapter"
	"github.com/MKhiriev/go-quiz-timer/internal/config"
	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/internal/store"
)

type ClientServices struct {
	SessionClient SessionClient
}

func NewClientServices(storages *store.ClientStorages, authority adapter.AuthorityAdapter, workersCfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionClient: NewSessionClient(storages, authority, SessionOptions{
			TickInterval:   workersCfg.TickInterval,
			ResyncInterval: workersCfg.ResyncInterval,
		}, logger),
	}
}
