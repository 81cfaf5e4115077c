package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atulmcoder/sbsauto2Server/internal/errs"
	"github.com/atulmcoder/sbsauto2Server/internal/models"
)

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepositoryImpl {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *models.Product) error {
	if product.ProductID == "" {
		product.ProductID = uuid.New().String()
	}

	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO products
		(product_id, year, make, model, tag, stock, engine, transmission, drivetrain,
		 exterior, interior, odometer, hwy_l100km, city_l100km, carfax_url, price,
		 description, hwy, city, features, badges, contact, main_image, gallery, created_at)
		VALUES
		(:product_id, :year, :make, :model, :tag, :stock, :engine, :transmission, :drivetrain,
		 :exterior, :interior, :odometer, :hwy_l100km, :city_l100km, :carfax_url, :price,
		 :description, :hwy, :city, :features, :badges, :contact, :main_image, :gallery, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}

	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product

	query := `SELECT * FROM products WHERE product_id = $1`

	err := r.db.GetContext(ctx, &product, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", productID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching product: %w", err)
	}

	return &product, nil
}

func (r *ProductRepositoryImpl) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT * FROM products ORDER BY created_at DESC`

	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching products: %w", err)
	}

	return products, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products SET
			year = :year,
			make = :make,
			model = :model,
			tag = :tag,
			stock = :stock,
			engine = :engine,
			transmission = :transmission,
			drivetrain = :drivetrain,
			exterior = :exterior,
			interior = :interior,
			odometer = :odometer,
			hwy_l100km = :hwy_l100km,
			city_l100km = :city_l100km,
			carfax_url = :carfax_url,
			price = :price,
			description = :description,
			hwy = :hwy,
			city = :city,
			features = :features,
			badges = :badges,
			contact = :contact,
			main_image = :main_image,
			gallery = :gallery
		WHERE product_id = :product_id
	`

	result, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("product %s: %w", product.ProductID, errs.ErrNotFound)
	}

	return nil
}

// Delete removes the row if it exists. A missing row is not an error:
// delete is not preceded by an existence check.
func (r *ProductRepositoryImpl) Delete(ctx context.Context, productID string) error {
	query := `DELETE FROM products WHERE product_id = $1`

	_, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}

	return nil
}
