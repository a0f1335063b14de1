package handler

import (
	"net/http"

	"github.com/Dan9191/finance-tracker/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if !h.decode(w, r, &in) {
		return
	}
	res, err := h.svc.Register(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "User registered successfully", res)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !h.decode(w, r, &in) {
		return
	}
	if in.Email == "" || in.Password == "" {
		fail(w, http.StatusBadRequest, "Please provide email and password")
		return
	}
	res, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "Login successful", res)
}

// Me returns the authenticated user's profile
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", user)
}

// UpdateProfile changes name, income or currency
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in service.ProfileInput
	if !h.decode(w, r, &in) {
		return
	}
	user, err := h.svc.UpdateProfile(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "Profile updated successfully", user)
}
