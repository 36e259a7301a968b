package user

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Login    string  `json:"login"`
		Password string  `json:"password"`
		Role     string  `json:"role"`
		Email    *string `json:"email"`
		Picture  *string `json:"picture"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Login == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Login and password are required")
		return
	}

	newUser, err := h.service.Register(req.Login, req.Password, req.Role, req.Email, req.Picture)
	if err != nil {
		switch {
		case errors.Is(err, ErrLoginAlreadyExists):
			respondError(w, http.StatusBadRequest, ErrLoginAlreadyExists.Error())
		case errors.Is(err, ErrLoginLength),
			errors.Is(err, ErrPasswordTooShort),
			errors.Is(err, ErrInvalidRole),
			errors.Is(err, ErrInvalidEmail):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "User successfully registered.",
		"data":    newUser,
	})
}
