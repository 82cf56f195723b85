package http

import (
	"encoding/json"
	"net/http"

	"notes-saas-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type signupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	TenantSlug string `json:"tenantSlug"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.TenantSlug == "" {
		respondError(w, http.StatusBadRequest, "Email, password, and tenant required")
		return
	}

	user, err := h.authSvc.Signup(r.Context(), req.Email, req.Password, req.TenantSlug)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.TenantSlug == "" {
		respondError(w, http.StatusBadRequest, "Email, password, and tenant required")
		return
	}

	user, err := h.authSvc.CreateAdmin(r.Context(), req.Email, req.Password, req.TenantSlug)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Admin user created successfully",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	access, refresh, user, tenant, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token":        access,
		"refreshToken": refresh,
		"user": map[string]any{
			"id":     user.ID,
			"email":  user.Email,
			"role":   user.Role,
			"tenant": tenant,
		},
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		respondError(w, http.StatusBadRequest, "Refresh token required")
		return
	}

	access, refresh, err := h.authSvc.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token":        access,
		"refreshToken": refresh,
	})
}

// ListTenants feeds the signup form's tenant picker.
func (h *AuthHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.authSvc.ListTenants(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := make([]map[string]string, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, map[string]string{"slug": t.Slug, "name": t.Name})
	}
	respondJSON(w, http.StatusOK, out)
}
