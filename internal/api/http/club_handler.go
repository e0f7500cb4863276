package http

import (
	"net/http"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/service"

	"github.com/gorilla/mux"
)

type clubHandler struct {
	directory service.DirectoryService
}

func (h *clubHandler) writeClubs(w http.ResponseWriter, r *http.Request, clubs []domain.Club, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(clubs))
}

func (h *clubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.directory.ListClubs(r.Context())
	h.writeClubs(w, r, clubs, err)
}

func (h *clubHandler) ListRecruiting(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.directory.ListRecruiting(r.Context())
	h.writeClubs(w, r, clubs, err)
}

func (h *clubHandler) Search(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.directory.SearchByName(r.Context(), r.URL.Query().Get("name"))
	h.writeClubs(w, r, clubs, err)
}

func (h *clubHandler) ByMainCategory(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.directory.ListByMainCategory(r.Context(), mux.Vars(r)["main"])
	h.writeClubs(w, r, clubs, err)
}

func (h *clubHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clubs, err := h.directory.ListByCategory(r.Context(), vars["main"], vars["sub"])
	h.writeClubs(w, r, clubs, err)
}

func (h *clubHandler) MainCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.directory.ListMainCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(categories))
}

// SubCategories optionally narrows to one main category via ?main=.
func (h *clubHandler) SubCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.directory.ListSubCategories(r.Context(), r.URL.Query().Get("main"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(categories))
}

func (h *clubHandler) Get(w http.ResponseWriter, r *http.Request) {
	clubID, err := pathID(r, "club_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	club, err := h.directory.GetClub(r.Context(), clubID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}
