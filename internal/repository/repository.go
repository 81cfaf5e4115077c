package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/atulmcoder/sbsauto2Server/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, productID string) error
}

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]models.Contact, error)
}

type Repository struct {
	Product ProductRepository
	Contact ContactRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Product: NewProductRepository(db),
		Contact: NewContactRepository(db),
	}
}
