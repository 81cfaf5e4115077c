package handlers

import (
	"encoding/json"
	"net/http"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		WriteError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	WriteJSON(w, LoginResponse{OK: true, Token: token}, http.StatusOK)
}
