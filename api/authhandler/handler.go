// Package authhandler serves signup, login and the caller's profile.
package authhandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goldvault/transparent-gold-backend/api"
	"github.com/goldvault/transparent-gold-backend/auth"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	users        *auth.UserStore
	tokens       *auth.TokenIssuer
	maxBodyBytes int64
	log          *slog.Logger
}

func NewHandler(users *auth.UserStore, tokens *auth.TokenIssuer, maxBodyBytes int64, log *slog.Logger) *Handler {
	return &Handler{users: users, tokens: tokens, maxBodyBytes: maxBodyBytes, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/signup", h.HandleSignup)
	r.Post("/auth/login", h.HandleLogin)
	r.With(auth.RequireBearer(h.tokens, h.log)).Get("/profile", h.HandleProfile)
}

// HandleSignup registers a user. Body: api.Credentials.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	if err := api.DecodeJSON(w, r, h.maxBodyBytes, &creds); err != nil {
		api.WriteError(w, err)
		return
	}

	err := h.users.Signup(creds.Email, creds.Password)
	switch {
	case err == nil:
		h.log.Info("user signed up", "email", creds.Email)
		api.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "ok"})
	case errors.Is(err, auth.ErrMissingCredentials), errors.Is(err, auth.ErrUserExists):
		api.WriteMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		api.WriteMessage(w, http.StatusBadRequest, "password too long")
	default:
		h.log.Error("signup failed", "err", err)
		api.WriteMessage(w, http.StatusInternalServerError, "signup failed")
	}
}

// HandleLogin exchanges credentials for a bearer token.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	if err := api.DecodeJSON(w, r, h.maxBodyBytes, &creds); err != nil {
		api.WriteError(w, err)
		return
	}

	if _, err := h.users.Authenticate(creds.Email, creds.Password); err != nil {
		api.WriteMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Issue(creds.Email)
	if err != nil {
		h.log.Error("failed to issue token", "err", err)
		api.WriteMessage(w, http.StatusInternalServerError, "login failed")
		return
	}
	api.WriteJSON(w, http.StatusOK, api.LoginResponse{Token: token})
}

// HandleProfile returns the authenticated caller's email and gold holding.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())
	user, err := h.users.Get(email)
	if err != nil {
		// Token outlived the in-memory user directory.
		api.WriteMessage(w, http.StatusUnauthorized, "invalid token")
		return
	}
	api.WriteJSON(w, http.StatusOK, api.ProfileResponse{Email: user.Email, Gold: user.Gold.InexactFloat64()})
}
