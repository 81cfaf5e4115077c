package service

import (
	"github.com/atulmcoder/sbsauto2Server/internal/config"
	"github.com/atulmcoder/sbsauto2Server/internal/repository"
	"github.com/atulmcoder/sbsauto2Server/internal/storage"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	Contact ContactService
}

func NewService(rep *repository.Repository, cfg *config.Config, media storage.MediaStorage) *Service {
	return &Service{
		Auth:    NewAuthService(cfg),
		Product: NewProductService(rep.Product, media, cfg),
		Contact: NewContactService(rep.Contact),
	}
}
