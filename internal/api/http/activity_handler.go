package http

import (
	"context"
	"fmt"
	"net/http"

	"skkuri-backend/internal/service"
	"skkuri-backend/internal/utils"
)

type activityHandler struct {
	activity service.ActivityService
}

type scheduleRequest struct {
	Content      string `json:"content"`
	ScheduleDate string `json:"schedule_date"`
}

type noticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type descriptionRequest struct {
	Content string `json:"content"`
}

type descriptionResponse struct {
	ClubID      int32  `json:"club_id"`
	Description string `json:"description"`
}

func (h *activityHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	clubID, err := pathID(r, "club_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	schedules, err := h.activity.ListSchedules(r.Context(), clubID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(schedules))
}

func (h *activityHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req scheduleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	date, err := utils.ParseScheduleDate(req.ScheduleDate)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: schedule_date: %v", service.ErrInvalidInput, err))
		return
	}
	schedule, err := h.activity.CreateSchedule(r.Context(), actorID, clubID, req.Content, date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, schedule)
}

func (h *activityHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	h.deleteItem(w, r, h.activity.DeleteSchedule, "schedule deleted")
}

func (h *activityHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	clubID, err := pathID(r, "club_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	notices, err := h.activity.ListNotices(r.Context(), clubID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(notices))
}

func (h *activityHandler) CreateNotice(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req noticeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	notice, err := h.activity.CreateNotice(r.Context(), actorID, clubID, req.Title, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, notice)
}

func (h *activityHandler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	h.deleteItem(w, r, h.activity.DeleteNotice, "notice deleted")
}

func (h *activityHandler) GetDescription(w http.ResponseWriter, r *http.Request) {
	clubID, err := pathID(r, "club_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	description, err := h.activity.GetDescription(r.Context(), clubID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, descriptionResponse{ClubID: clubID, Description: description})
}

func (h *activityHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req descriptionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.activity.UpdateDescription(r.Context(), actorID, clubID, req.Content); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "description updated")
}

// deleteItem serves DELETE /activity/<kind>/{club_id}/{item_id}.
func (h *activityHandler) deleteItem(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, actorID, clubID, itemID int32) error, msg string) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	itemID, err := pathID(r, "item_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := del(r.Context(), actorID, clubID, itemID); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}
