package http

import (
	"net/http"

	"skkuri-backend/internal/service"
)

type userHandler struct {
	users service.UserService
}

type profileRequest struct {
	Email         string `json:"email"`
	Nickname      string `json:"nickname"`
	Department    string `json:"department"`
	StudentNumber string `json:"student_number"`
	PhoneNumber   string `json:"phone_num"`
}

func (h *userHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := IdentityFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.users.GetProfile(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *userHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := IdentityFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.users.UpdateProfile(r.Context(), id.UserID, service.ProfileInput(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *userHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	id, err := IdentityFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	clubs, err := h.users.ListMyClubs(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(clubs))
}
