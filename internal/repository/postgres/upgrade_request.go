package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/repository"
)

type upgradeRequestRepository struct {
	db *sql.DB
}

func NewUpgradeRequestRepository(db *sql.DB) repository.UpgradeRequestRepository {
	return &upgradeRequestRepository{db: db}
}

func (r *upgradeRequestRepository) InsertPending(ctx context.Context, userID, tenantID int32) (*domain.UpgradeRequest, error) {
	// Guarded insert: writes nothing if the user already has a pending
	// request. A partial unique index on (user_id) WHERE status='pending'
	// backs this up at the schema level.
	query := `INSERT INTO upgrade_requests (user_id, tenant_id, status, created_at, updated_at)
	          SELECT $1, $2, $3, $4, $4
	          WHERE NOT EXISTS (
	              SELECT 1 FROM upgrade_requests WHERE user_id = $1 AND status = $3
	          )
	          RETURNING id, created_at, updated_at`
	req := &domain.UpgradeRequest{
		UserID:   userID,
		TenantID: tenantID,
		Status:   domain.UpgradeRequestStatusPending,
	}
	err := r.db.QueryRowContext(ctx, query, userID, tenantID, domain.UpgradeRequestStatusPending, time.Now()).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDuplicateRequest
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *upgradeRequestRepository) FindLatestByUser(ctx context.Context, userID int32) (*domain.UpgradeRequest, error) {
	req := &domain.UpgradeRequest{}
	query := `SELECT id, user_id, tenant_id, status, created_at, updated_at
	          FROM upgrade_requests WHERE user_id = $1
	          ORDER BY created_at DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&req.ID, &req.UserID, &req.TenantID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *upgradeRequestRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.UpgradeRequest, error) {
	query := `SELECT ur.id, ur.user_id, ur.tenant_id, u.email, ur.status, ur.created_at, ur.updated_at
	          FROM upgrade_requests ur JOIN users u ON ur.user_id = u.id
	          WHERE ur.tenant_id = $1
	          ORDER BY ur.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.UpgradeRequest
	for rows.Next() {
		var req domain.UpgradeRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.TenantID, &req.UserEmail, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *upgradeRequestRepository) SetStatus(ctx context.Context, id, tenantID int32, status domain.UpgradeRequestStatus) (*domain.UpgradeRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req := &domain.UpgradeRequest{}
	err = tx.QueryRowContext(ctx,
		`UPDATE upgrade_requests SET status = $1, updated_at = $2
		 WHERE id = $3 AND tenant_id = $4 AND status = $5
		 RETURNING id, user_id, tenant_id, status, created_at, updated_at`,
		status, time.Now(), id, tenantID, domain.UpgradeRequestStatusPending).
		Scan(&req.ID, &req.UserID, &req.TenantID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Distinguish a settled in-tenant request from one that is absent
		// or belongs to another tenant; the latter two must look the same.
		var existing domain.UpgradeRequestStatus
		probe := tx.QueryRowContext(ctx,
			`SELECT status FROM upgrade_requests WHERE id = $1 AND tenant_id = $2`, id, tenantID).
			Scan(&existing)
		if probe == nil {
			return nil, domain.ErrInvalidState
		}
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// Approval carries the tenant to pro in the same transaction.
	if status == domain.UpgradeRequestStatusApproved {
		if _, err := tx.ExecContext(ctx,
			`UPDATE tenants SET subscription_plan = $1 WHERE id = $2`,
			domain.PlanPro, req.TenantID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *upgradeRequestRepository) RejectOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE upgrade_requests SET status = $1, updated_at = $2
		 WHERE status = $3 AND created_at < $4`,
		domain.UpgradeRequestStatusRejected, time.Now(), domain.UpgradeRequestStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *upgradeRequestRepository) CountPendingByTenant(ctx context.Context) ([]domain.PendingRequestCount, error) {
	query := `SELECT t.id, t.name, COUNT(ur.id)
	          FROM upgrade_requests ur JOIN tenants t ON ur.tenant_id = t.id
	          WHERE ur.status = $1
	          GROUP BY t.id, t.name`
	rows, err := r.db.QueryContext(ctx, query, domain.UpgradeRequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.PendingRequestCount
	for rows.Next() {
		var c domain.PendingRequestCount
		if err := rows.Scan(&c.TenantID, &c.TenantName, &c.Pending); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
