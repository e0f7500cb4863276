package jobs

import (
	"context"
	"fmt"
	"sort"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
)

// SendPendingApplicationDigest mails every manager of a club with pending
// applications the number still awaiting a decision.
func (jr *JobRunner) SendPendingApplicationDigest() error {
	return jr.runWithRecovery(JobPendingApplicationDigest, func(ctx context.Context) error {
		sent, err := jr.sendPendingApplicationDigest(ctx)
		if err != nil {
			return err
		}
		logger.Info("Pending application digest finished", "emails_sent", sent)
		return nil
	})
}

func (jr *JobRunner) sendPendingApplicationDigest(ctx context.Context) (int, error) {
	counts, err := jr.deps.Recruits.ListPendingCounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending applications: %w", err)
	}

	clubIDs := make([]int32, 0, len(counts))
	for id, n := range counts {
		if n > 0 {
			clubIDs = append(clubIDs, id)
		}
	}
	sort.Slice(clubIDs, func(i, j int) bool { return clubIDs[i] < clubIDs[j] })

	sent := 0
	for _, clubID := range clubIDs {
		club, err := jr.deps.Clubs.GetByID(ctx, clubID)
		if err != nil {
			logger.Error("Failed to load club for digest", "clubID", clubID, "error", err)
			continue
		}
		managers, err := jr.deps.Members.ListByClubAndRole(ctx, clubID, domain.MemberRoleManager)
		if err != nil {
			logger.Error("Failed to list managers for digest", "clubID", clubID, "error", err)
			continue
		}
		for _, m := range managers {
			if m.Email == "" {
				continue
			}
			if err := jr.deps.Email.SendPendingApplicationsDigest(ctx, m.Email, m.Nickname, club.Name, counts[clubID]); err != nil {
				logger.Error("Failed to send digest", "clubID", clubID, "userID", m.UserID, "error", err)
				continue
			}
			sent++
		}
	}
	return sent, nil
}
