package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atulmcoder/sbsauto2Server/internal/errs"
	"github.com/atulmcoder/sbsauto2Server/internal/models"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func validContactRequest() CreateContactRequest {
	return CreateContactRequest{
		FirstName: "Jordan",
		LastName:  "Lee",
		Email:     "  Jordan.Lee@Example.COM ",
		Mobile:    "416-555-0100",
		Message:   "Is the Civic still available?",
	}
}

func TestContactService_Create_NormalizesEmail(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Contact")).Return(nil)

	contact, err := svc.Create(context.Background(), validContactRequest())
	require.NoError(t, err)

	assert.Equal(t, "jordan.lee@example.com", contact.Email)
	assert.Equal(t, "Jordan", contact.FirstName)
	repo.AssertExpectations(t)
}

func TestContactService_Create_MissingRequiredField(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo)

	tests := []struct {
		name   string
		mutate func(*CreateContactRequest)
	}{
		{"missing firstName", func(r *CreateContactRequest) { r.FirstName = "" }},
		{"missing lastName", func(r *CreateContactRequest) { r.LastName = "" }},
		{"missing email", func(r *CreateContactRequest) { r.Email = "" }},
		{"bad email", func(r *CreateContactRequest) { r.Email = "not-an-email" }},
		{"missing mobile", func(r *CreateContactRequest) { r.Mobile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContactRequest()
			req.Email = "jordan@example.com"
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}

	// Nothing was persisted for any rejected submission.
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactService_Create_OptionalMessage(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Contact")).Return(nil)

	req := validContactRequest()
	req.Email = "jordan@example.com"
	req.Message = ""

	contact, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, contact.Message)
}

func TestContactService_Create_DuplicateEmail(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Contact")).
		Return(fmt.Errorf("email taken: %w", errs.ErrDuplicateKey))

	req := validContactRequest()
	req.Email = "jordan@example.com"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, errs.ErrDuplicateKey)
}
