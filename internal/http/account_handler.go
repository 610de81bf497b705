package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"musicapi/internal/entity"
	"musicapi/internal/usecase"
)

type AccountHandler struct {
	users usecase.UserStore
}

func NewAccountHandler(users usecase.UserStore) *AccountHandler {
	return &AccountHandler{users: users}
}

type registerReq struct {
	Email    string `json:"email" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new account. The email is the unique key; a duplicate
// registration is rejected before the write. Credentials are stored as
// plain values, matching what Login compares against.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.UserName = strings.TrimSpace(req.UserName)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Missing email, username, or password.", details)
		return
	}

	_, err := h.users.GetByEmail(r.Context(), req.Email)
	if err == nil {
		JSONError(w, http.StatusBadRequest, "ALREADY_EXISTS", "Email already exists.", nil)
		return
	}
	if !errors.Is(err, usecase.ErrNotFound) {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	newUser := &entity.User{
		Email:           req.Email,
		UserName:        req.UserName,
		Password:        req.Password,
		SubscribedSongs: []string{},
	}
	if err := h.users.Put(r.Context(), newUser); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONMessage(w, "Signup successful.")
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login is a stateless credential check; no token or session is issued.
// An unknown email and a wrong password return the same message so the
// response does not leak which one was wrong.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Missing email or password.", details)
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Incorrect email address or password.", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	if user.Password != req.Password {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Incorrect email address or password.", nil)
		return
	}

	JSONMessage(w, "Login successful.")
}
