package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/atulmcoder/sbsauto2Server/internal/errs"
	"github.com/atulmcoder/sbsauto2Server/internal/models"
)

type ContactRepositoryImpl struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *models.Contact) error {
	if contact.ContactID == "" {
		contact.ContactID = uuid.New().String()
	}

	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO contacts (contact_id, first_name, last_name, email, mobile, message, created_at)
		VALUES (:contact_id, :first_name, :last_name, :email, :mobile, :message, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, contact)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("email %s: %w", contact.Email, errs.ErrDuplicateKey)
		}
		return fmt.Errorf("error creating contact: %w", err)
	}

	return nil
}

func (r *ContactRepositoryImpl) GetAll(ctx context.Context) ([]models.Contact, error) {
	query := `SELECT * FROM contacts ORDER BY created_at DESC`

	contacts := []models.Contact{}
	err := r.db.SelectContext(ctx, &contacts, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching contacts: %w", err)
	}

	return contacts, nil
}
