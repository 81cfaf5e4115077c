package app

import (
	"go.uber.org/zap"

	"github.com/atulmcoder/sbsauto2Server/internal/config"
	"github.com/atulmcoder/sbsauto2Server/internal/database"
	"github.com/atulmcoder/sbsauto2Server/internal/repository"
	"github.com/atulmcoder/sbsauto2Server/internal/service"
	"github.com/atulmcoder/sbsauto2Server/internal/storage"
)

// App connects the database and the media host and wires the dependencies.
func App(cfg *config.Config, logger *zap.Logger) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	logger.Info("database connected")

	mediaClient, err := storage.NewMediaClient(cfg)
	if err != nil {
		logger.Fatal("could not initialize media client", zap.Error(err))
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, mediaClient)

	return db, repo, services
}
