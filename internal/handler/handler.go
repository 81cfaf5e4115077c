package handlers

import (
	"github.com/go-playground/validator/v10"

	"github.com/atulmcoder/sbsauto2Server/internal/config"
	"github.com/atulmcoder/sbsauto2Server/internal/service"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck() error
}

type Handlers struct {
	AuthService    service.AuthService
	ProductService service.ProductService
	ContactService service.ContactService
	DB             HealthChecker
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, db HealthChecker, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		ProductService: services.Product,
		ContactService: services.Contact,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
