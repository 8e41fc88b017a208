package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"volunmatch-backend/internal/security"
	"volunmatch-backend/internal/service"
)

// Handler bundles the services exposed over HTTP.
type Handler struct {
	matchSvc     service.MatchService
	settingsSvc  service.SettingsService
	profileSvc   service.ProfileService
	adminSvc     service.AdminService
	tokenManager security.TokenManager
	validate     *validator.Validate
}

func NewHandler(
	matchSvc service.MatchService,
	settingsSvc service.SettingsService,
	profileSvc service.ProfileService,
	adminSvc service.AdminService,
	tokenManager security.TokenManager,
) *Handler {
	return &Handler{
		matchSvc:     matchSvc,
		settingsSvc:  settingsSvc,
		profileSvc:   profileSvc,
		adminSvc:     adminSvc,
		tokenManager: tokenManager,
		validate:     validator.New(),
	}
}

// Router builds the HTTP route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/volunteer", h.RegisterVolunteer).Methods(http.MethodPost)
	r.HandleFunc("/api/association", h.RegisterAssociation).Methods(http.MethodPost)

	r.HandleFunc("/api/match/run", h.RunMatching).Methods(http.MethodPost)
	r.HandleFunc("/api/match/notify", h.NotifyMatches).Methods(http.MethodPost)
	r.HandleFunc("/match/confirm", h.ConfirmMatch).Methods(http.MethodGet)

	r.HandleFunc("/api/admin/login", h.AdminLogin).Methods(http.MethodPost)

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(h.adminAuth)
	admin.HandleFunc("/settings", h.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings", h.SaveSettings).Methods(http.MethodPut)
	admin.HandleFunc("/approve", h.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
