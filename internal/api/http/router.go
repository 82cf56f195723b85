package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/security"
	"notes-saas-backend/internal/service"
)

// NewRouter wires every route. Public auth endpoints sit outside the auth
// middleware; everything else requires a valid access token, and the admin
// subtrees additionally require the admin role.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	noteSvc service.NoteService,
	upgradeSvc service.UpgradeService,
	adminSvc service.AdminService,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	authMw := NewAuthMiddleware(tokens)
	adminOnly := RequireRole(domain.RoleAdmin)

	authHandler := NewAuthHandler(authSvc)
	noteHandler := NewNoteHandler(noteSvc)
	upgradeHandler := NewUpgradeHandler(upgradeSvc)
	adminHandler := NewAdminHandler(adminSvc)

	// Public auth surface
	auth := router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")
	auth.HandleFunc("/create-admin", authHandler.CreateAdmin).Methods("POST")
	auth.HandleFunc("/tenants", authHandler.ListTenants).Methods("GET")

	// Notes
	notes := router.PathPrefix("/api/notes").Subrouter()
	notes.Use(authMw.Authenticate)
	notes.HandleFunc("", noteHandler.Create).Methods("POST")
	notes.HandleFunc("", noteHandler.List).Methods("GET")
	notes.HandleFunc("/{id:[0-9]+}", noteHandler.Get).Methods("GET")
	notes.HandleFunc("/{id:[0-9]+}", noteHandler.Update).Methods("PUT")
	notes.HandleFunc("/{id:[0-9]+}", noteHandler.Delete).Methods("DELETE")

	// Upgrade requests
	upgrades := router.PathPrefix("/api/upgrade-requests").Subrouter()
	upgrades.Use(authMw.Authenticate)
	upgrades.HandleFunc("", upgradeHandler.CreateRequest).Methods("POST")
	upgrades.HandleFunc("/status", upgradeHandler.Status).Methods("GET")

	upgradeAdmin := upgrades.PathPrefix("/admin").Subrouter()
	upgradeAdmin.Use(adminOnly)
	upgradeAdmin.HandleFunc("", upgradeHandler.ListRequests).Methods("GET")
	upgradeAdmin.HandleFunc("/{id:[0-9]+}", upgradeHandler.Review).Methods("PUT")

	// Direct tenant upgrade (admin bypass)
	tenants := router.PathPrefix("/api/tenants").Subrouter()
	tenants.Use(authMw.Authenticate)
	tenants.Use(adminOnly)
	tenants.HandleFunc("/{slug}/upgrade", upgradeHandler.DirectUpgrade).Methods("POST")

	// Admin surface
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(authMw.Authenticate)
	admin.Use(adminOnly)
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods("GET")
	admin.HandleFunc("/users", adminHandler.CreateUser).Methods("POST")
	admin.HandleFunc("/users/{userId:[0-9]+}", adminHandler.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/notes", adminHandler.ListNotes).Methods("GET")
	admin.HandleFunc("/analytics", adminHandler.Analytics).Methods("GET")

	return router
}
