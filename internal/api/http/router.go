package http

import (
	"context"
	"net/http"
	"time"

	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/metrics"
	"skkuri-backend/internal/service"

	"github.com/gorilla/mux"
)

// Pinger reports database reachability for /healthz.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Dependencies are the services the HTTP API dispatches to.
type Dependencies struct {
	Auth       service.AuthService
	Users      service.UserService
	Membership service.MembershipService
	Directory  service.DirectoryService
	Activity   service.ActivityService
	DB         Pinger
	// MaxUploadBytes caps the artwork multipart body.
	MaxUploadBytes int64
}

// NewRouter registers every route. Static segments are registered before
// the {club_id} patterns they would otherwise be captured by.
func NewRouter(deps Dependencies) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, AccessLogMiddleware, RecoverMiddleware, NewAuthMiddleware(deps.Auth).Handler)

	r.HandleFunc("/healthz", healthHandler(deps.DB)).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	auth := &authHandler{auth: deps.Auth}
	r.HandleFunc("/auth/create", auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/token", auth.Token).Methods(http.MethodPost)

	users := &userHandler{users: deps.Users}
	r.HandleFunc("/user/profile", users.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/user/profile", users.UpdateProfile).Methods(http.MethodPost)
	r.HandleFunc("/user/clubs", users.ListClubs).Methods(http.MethodGet)

	clubs := &clubHandler{directory: deps.Directory}
	r.HandleFunc("/club", clubs.List).Methods(http.MethodGet)
	r.HandleFunc("/club/recruiting", clubs.ListRecruiting).Methods(http.MethodGet)
	r.HandleFunc("/club/search", clubs.Search).Methods(http.MethodGet)
	r.HandleFunc("/club/categories/main", clubs.MainCategories).Methods(http.MethodGet)
	r.HandleFunc("/club/categories/sub", clubs.SubCategories).Methods(http.MethodGet)
	r.HandleFunc("/club/category/{main}", clubs.ByMainCategory).Methods(http.MethodGet)
	r.HandleFunc("/club/category/{main}/{sub}", clubs.ByCategory).Methods(http.MethodGet)
	r.HandleFunc("/club/{club_id}", clubs.Get).Methods(http.MethodGet)

	apps := &applicationHandler{membership: deps.Membership}
	r.HandleFunc("/application/form/{club_id}", apps.GetForm).Methods(http.MethodGet)
	r.HandleFunc("/application/form/{club_id}", apps.CreateForm).Methods(http.MethodPost)
	r.HandleFunc("/application/form/{club_id}", apps.DeleteForm).Methods(http.MethodDelete)
	r.HandleFunc("/application/submit/{club_id}", apps.Submit).Methods(http.MethodPost)
	r.HandleFunc("/application/recruit/{club_id}", apps.ToggleRecruiting).Methods(http.MethodPut)
	r.HandleFunc("/application/applicants/{club_id}", apps.ListApplicants).Methods(http.MethodGet)
	r.HandleFunc("/application/admit/{club_id}/{recruit_id}", apps.Admit).Methods(http.MethodPut)
	r.HandleFunc("/application/deny/{club_id}/{recruit_id}", apps.Deny).Methods(http.MethodPut)
	r.HandleFunc("/application/members/{club_id}", apps.ListMembers).Methods(http.MethodGet)

	act := &activityHandler{activity: deps.Activity}
	r.HandleFunc("/activity/schedule/{club_id}", act.ListSchedules).Methods(http.MethodGet)
	r.HandleFunc("/activity/schedule/{club_id}", act.CreateSchedule).Methods(http.MethodPost)
	r.HandleFunc("/activity/schedule/{club_id}/{item_id}", act.DeleteSchedule).Methods(http.MethodDelete)
	r.HandleFunc("/activity/notice/{club_id}", act.ListNotices).Methods(http.MethodGet)
	r.HandleFunc("/activity/notice/{club_id}", act.CreateNotice).Methods(http.MethodPost)
	r.HandleFunc("/activity/notice/{club_id}/{item_id}", act.DeleteNotice).Methods(http.MethodDelete)
	r.HandleFunc("/activity/description/{club_id}", act.GetDescription).Methods(http.MethodGet)
	r.HandleFunc("/activity/description/{club_id}", act.UpdateDescription).Methods(http.MethodPut)

	RegisterArtworkRoutes(r, deps.Activity, deps.MaxUploadBytes)

	return r
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.WarnContext(r.Context(), "Health check failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
