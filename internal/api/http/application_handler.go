package http

import (
	"fmt"
	"net/http"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/service"
	"skkuri-backend/internal/utils"
)

type applicationHandler struct {
	membership service.MembershipService
}

// contentRequest carries comma separated questions or answers. Questions may
// also be sent as a list.
type contentRequest struct {
	Content   string   `json:"content"`
	Questions []string `json:"questions,omitempty"`
}

func (c contentRequest) text() string {
	if c.Content == "" && len(c.Questions) > 0 {
		return utils.JoinContent(c.Questions)
	}
	return c.Content
}

type formResponse struct {
	ClubID    int32    `json:"club_id"`
	Content   string   `json:"content"`
	Questions []string `json:"questions"`
}

type submitResponse struct {
	ID      int32  `json:"id"`
	Message string `json:"message"`
}

// clubRequest resolves the authenticated caller and the club_id path variable.
func clubRequest(r *http.Request) (actorID, clubID int32, err error) {
	id, err := IdentityFromContext(r.Context())
	if err != nil {
		return 0, 0, err
	}
	clubID, err = pathID(r, "club_id")
	if err != nil {
		return 0, 0, err
	}
	return id.UserID, clubID, nil
}

func (h *applicationHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	clubID, err := pathID(r, "club_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	form, err := h.membership.GetForm(r.Context(), clubID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, formResponse{
		ClubID:    form.ClubID,
		Content:   form.Content,
		Questions: nonNil(utils.SplitContent(form.Content)),
	})
}

func (h *applicationHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.membership.CreateForm(r.Context(), actorID, clubID, req.text()); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "application form created")
}

func (h *applicationHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.membership.DeleteForm(r.Context(), actorID, clubID); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "application form deleted")
}

func (h *applicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := h.membership.Submit(r.Context(), userID, clubID, req.text())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, submitResponse{ID: id, Message: "application submitted"})
}

func (h *applicationHandler) ToggleRecruiting(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	status, err := h.membership.ToggleRecruiting(r.Context(), actorID, clubID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// ListApplicants accepts an optional ?status=pending|approved|denied filter.
func (h *applicationHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var filter *domain.ApprovalStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := domain.ParseApprovalStatus(raw)
		if !ok {
			writeError(w, r, fmt.Errorf("%w: unknown status %q", service.ErrInvalidInput, raw))
			return
		}
		filter = &status
	}
	recruits, err := h.membership.ListApplicants(r.Context(), actorID, clubID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(recruits))
}

func (h *applicationHandler) Admit(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

func (h *applicationHandler) Deny(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *applicationHandler) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	recruitID, err := pathID(r, "recruit_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.membership.Decide(r.Context(), actorID, clubID, recruitID, approve); err != nil {
		writeError(w, r, err)
		return
	}
	if approve {
		writeMessage(w, http.StatusOK, "applicant approved")
		return
	}
	writeMessage(w, http.StatusOK, "applicant denied")
}

func (h *applicationHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	members, err := h.membership.ListMembers(r.Context(), actorID, clubID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(members))
}
