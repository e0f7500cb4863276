package domain

import "strings"

type ApplicationForm struct {
	ID      int32  `json:"id"`
	ClubID  int32  `json:"club_id"`
	Content string `json:"content"` // comma separated questions
}

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusDenied   ApprovalStatus = "DENIED"
)

// ParseApprovalStatus accepts the status names case-insensitively.
func ParseApprovalStatus(s string) (ApprovalStatus, bool) {
	switch status := ApprovalStatus(strings.ToUpper(strings.TrimSpace(s))); status {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusDenied:
		return status, true
	}
	return "", false
}

// Terminal reports whether no further decision may be applied.
func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusDenied
}

// Recruit is a single application of a user to a club.
type Recruit struct {
	ID        int32          `json:"id"`
	UserID    int32          `json:"user_id"`
	ClubID    int32          `json:"club_id"`
	Content   string         `json:"content"` // comma separated answers
	Status    ApprovalStatus `json:"status"`
	CreatedOn string         `json:"created_on"`
	DecidedOn *string        `json:"decided_on,omitempty"`
	DecidedBy *int32         `json:"decided_by,omitempty"`

	// Applicant details, populated when listing applicants.
	Nickname      string `json:"nickname,omitempty"`
	Email         string `json:"email,omitempty"`
	Department    string `json:"department,omitempty"`
	StudentNumber string `json:"student_number,omitempty"`
	PhoneNumber   string `json:"phone_num,omitempty"`
}
