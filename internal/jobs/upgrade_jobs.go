package jobs

import (
	"context"
	"time"

	"notes-saas-backend/internal/logger"
)

// ExpireStaleUpgradeRequests auto-rejects pending upgrade requests older
// than the configured maximum age, so abandoned requests do not block
// their owners from filing a fresh one forever.
func (jr *JobRunner) ExpireStaleUpgradeRequests() {
	jr.runWithRecovery("expire-stale-upgrade-requests", func() {
		ctx := context.Background()
		maxAge := time.Duration(jr.config.Quota.StaleRequestMaxAgeDays) * 24 * time.Hour
		cutoff := time.Now().Add(-maxAge)

		rejected, err := jr.store.UpgradeRequestRepository.RejectOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale upgrade requests", "error", err)
			return
		}
		if rejected > 0 {
			logger.Info("Expired stale upgrade requests", "count", rejected, "older_than_days", jr.config.Quota.StaleRequestMaxAgeDays)
		}
	})
}

// SendPendingRequestReminders mails each tenant's admins a daily summary of
// upgrade requests still awaiting review.
func (jr *JobRunner) SendPendingRequestReminders() {
	jr.runWithRecovery("send-pending-request-reminders", func() {
		ctx := context.Background()

		counts, err := jr.store.UpgradeRequestRepository.CountPendingByTenant(ctx)
		if err != nil {
			logger.Error("Failed to count pending upgrade requests", "error", err)
			return
		}

		for _, c := range counts {
			admins, err := jr.store.UserRepository.ListAdminsByTenant(ctx, c.TenantID)
			if err != nil {
				logger.Error("Failed to list admins for reminder", "tenant_id", c.TenantID, "error", err)
				continue
			}
			for _, admin := range admins {
				if err := jr.emailSvc.SendPendingRequestReminder(ctx, admin.Email, c.TenantName, c.Pending); err != nil {
					logger.Error("Failed to send pending request reminder", "email", admin.Email, "error", err)
				}
			}
		}
	})
}
