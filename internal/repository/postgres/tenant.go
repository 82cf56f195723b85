package postgres

import (
	"context"
	"database/sql"
	"errors"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/repository"
)

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

const tenantColumns = `id, name, slug, subscription_plan, notes_created_count, trial_used, created_at`

func scanTenant(row *sql.Row) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.SubscriptionPlan, &t.NotesCreatedCount, &t.TrialUsed, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tenantRepository) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	return scanTenant(r.db.QueryRowContext(ctx, query, id))
}

func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE slug = $1`
	return scanTenant(r.db.QueryRowContext(ctx, query, slug))
}

func (r *tenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		var t domain.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.SubscriptionPlan, &t.NotesCreatedCount, &t.TrialUsed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (r *tenantRepository) SetPlanBySlug(ctx context.Context, slug string, plan domain.SubscriptionPlan) (*domain.Tenant, error) {
	query := `UPDATE tenants SET subscription_plan = $1 WHERE slug = $2 RETURNING ` + tenantColumns
	return scanTenant(r.db.QueryRowContext(ctx, query, plan, slug))
}
