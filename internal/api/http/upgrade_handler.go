package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/service"
)

type UpgradeHandler struct {
	upgradeSvc service.UpgradeService
}

func NewUpgradeHandler(upgradeSvc service.UpgradeService) *UpgradeHandler {
	return &UpgradeHandler{upgradeSvc: upgradeSvc}
}

func (h *UpgradeHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	req, err := h.upgradeSvc.CreateRequest(r.Context(), identity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

// Status returns the caller's most recent upgrade request, or null.
func (h *UpgradeHandler) Status(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	req, err := h.upgradeSvc.Status(r.Context(), identity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusOK, nil)
			return
		}
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *UpgradeHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	reqs, err := h.upgradeSvc.ListRequests(r.Context(), identity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.UpgradeRequest{}
	}
	respondJSON(w, http.StatusOK, reqs)
}

type reviewRequest struct {
	Status string `json:"status"` // "approved" or "rejected"
}

func (h *UpgradeHandler) Review(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var body reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req *domain.UpgradeRequest
	switch body.Status {
	case string(domain.UpgradeRequestStatusApproved):
		req, err = h.upgradeSvc.Approve(r.Context(), identity, int32(id))
	case string(domain.UpgradeRequestStatusRejected):
		req, err = h.upgradeSvc.Reject(r.Context(), identity, int32(id))
	default:
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

// DirectUpgrade is the admin bypass: POST /api/tenants/{slug}/upgrade.
func (h *UpgradeHandler) DirectUpgrade(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}
	slug := mux.Vars(r)["slug"]

	tenant, err := h.upgradeSvc.DirectUpgrade(r.Context(), identity, slug)
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			respondError(w, http.StatusForbidden, "Access denied")
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Subscription upgraded to Pro",
		"tenant":  tenant,
	})
}
