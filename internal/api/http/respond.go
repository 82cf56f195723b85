package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/logger"
	"notes-saas-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain outcomes onto HTTP statuses. Resource
// lookups collapse ErrAccessDenied and ErrNotFound into the same 404 so a
// caller can never tell "not yours" from "not there".
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTrialExpired):
		respondJSON(w, http.StatusForbidden, map[string]any{
			"error":        "Free trial expired. Upgrade to Pro for unlimited notes.",
			"trialExpired": true,
		})
	case errors.Is(err, domain.ErrDuplicateRequest):
		respondError(w, http.StatusBadRequest, "You already have a pending upgrade request")
	case errors.Is(err, domain.ErrInvalidState):
		respondError(w, http.StatusConflict, "Request has already been resolved")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrAccessDenied):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrEmailTaken):
		respondError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrSelfDeletion):
		respondError(w, http.StatusBadRequest, "Cannot delete your own account")
	default:
		logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
	}
}
