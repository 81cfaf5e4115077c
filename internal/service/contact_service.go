package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/atulmcoder/sbsauto2Server/internal/errs"
	"github.com/atulmcoder/sbsauto2Server/internal/models"
	"github.com/atulmcoder/sbsauto2Server/internal/repository"
)

// CreateContactRequest declares the accepted contact-form shape up front.
type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required"`
	Message   string `json:"message"`
}

type ContactService interface {
	Create(ctx context.Context, req CreateContactRequest) (*models.Contact, error)
	GetAll(ctx context.Context) ([]models.Contact, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	validate    *validator.Validate
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		validate:    validator.New(),
	}
}

func (s *contactService) Create(ctx context.Context, req CreateContactRequest) (*models.Contact, error) {
	// Normalize before validating so padded input is not rejected.
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Mobile = strings.TrimSpace(req.Mobile)
	req.Message = strings.TrimSpace(req.Message)

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("firstName, lastName, email and mobile are required: %w", errs.ErrValidation)
	}

	contact := &models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Message:   req.Message,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *contactService) GetAll(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepo.GetAll(ctx)
}
