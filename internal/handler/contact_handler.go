package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atulmcoder/sbsauto2Server/internal/errs"
	"github.com/atulmcoder/sbsauto2Server/internal/models"
	"github.com/atulmcoder/sbsauto2Server/internal/service"
)

type ContactCreatedResponse struct {
	Message string          `json:"message"`
	User    *models.Contact `json:"user"`
}

type DuplicateFieldResponse struct {
	Message string `json:"message"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req service.CreateContactRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	contact, err := h.ContactService.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateKey) {
			WriteJSON(w, DuplicateFieldResponse{
				Message: "Duplicate email: value already exists",
				Field:   "email",
				Value:   req.Email,
			}, http.StatusConflict)
			return
		}
		WriteError(w, err.Error(), StatusFromError(err))
		return
	}

	WriteJSON(w, ContactCreatedResponse{
		Message: "User registered successfully",
		User:    contact,
	}, http.StatusCreated)
}

func (h *Handlers) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.ContactService.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, contacts, http.StatusOK)
}
