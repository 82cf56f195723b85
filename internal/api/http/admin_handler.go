package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	users, err := h.adminSvc.ListUsers(r.Context(), identity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password required")
		return
	}
	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleMember
	}
	if !domain.ValidRole(role) {
		respondError(w, http.StatusBadRequest, "Invalid role. Must be member or admin")
		return
	}

	user, err := h.adminSvc.CreateUser(r.Context(), identity, req.Email, req.Password, role)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	idStr := mux.Vars(r)["userId"]
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.adminSvc.DeleteUser(r.Context(), identity, int32(id)); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "User and their notes deleted successfully"})
}

func (h *AdminHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	notes, err := h.adminSvc.ListTenantNotes(r.Context(), identity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	respondJSON(w, http.StatusOK, notes)
}

func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	analytics, err := h.adminSvc.Analytics(r.Context(), identity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, analytics)
}
