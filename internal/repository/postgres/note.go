package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/repository"
)

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, n *domain.Note) error {
	query := `INSERT INTO notes (title, content, tenant_id, created_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, n.Title, n.Content, n.TenantID, n.CreatedBy, time.Now()).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (r *noteRepository) CreateWithTrialQuota(ctx context.Context, n *domain.Note, limit int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Conditional increment first: the row lock it takes serializes
	// concurrent creations for the same tenant, and zero rows affected
	// means the quota is already spent.
	res, err := tx.ExecContext(ctx,
		`UPDATE tenants SET notes_created_count = notes_created_count + 1, trial_used = TRUE
		 WHERE id = $1 AND notes_created_count < $2`,
		n.TenantID, limit)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTrialExpired
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO notes (title, content, tenant_id, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, created_at, updated_at`,
		n.Title, n.Content, n.TenantID, n.CreatedBy, time.Now()).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

const noteColumns = `n.id, n.title, n.content, n.tenant_id, n.created_by, u.email, n.created_at, n.updated_at`

func (r *noteRepository) GetByID(ctx context.Context, id, tenantID int32) (*domain.Note, error) {
	n := &domain.Note{}
	query := `SELECT ` + noteColumns + `
	          FROM notes n JOIN users u ON n.created_by = u.id
	          WHERE n.id = $1 AND n.tenant_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, tenantID).
		Scan(&n.ID, &n.Title, &n.Content, &n.TenantID, &n.CreatedBy, &n.CreatedByEmail, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *noteRepository) listQuery(ctx context.Context, query string, args ...any) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.TenantID, &n.CreatedBy, &n.CreatedByEmail, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Note, error) {
	query := `SELECT ` + noteColumns + `
	          FROM notes n JOIN users u ON n.created_by = u.id
	          WHERE n.tenant_id = $1
	          ORDER BY n.created_at DESC`
	return r.listQuery(ctx, query, tenantID)
}

func (r *noteRepository) ListByOwner(ctx context.Context, tenantID, ownerID int32) ([]domain.Note, error) {
	query := `SELECT ` + noteColumns + `
	          FROM notes n JOIN users u ON n.created_by = u.id
	          WHERE n.tenant_id = $1 AND n.created_by = $2
	          ORDER BY n.created_at DESC`
	return r.listQuery(ctx, query, tenantID, ownerID)
}

func (r *noteRepository) Update(ctx context.Context, n *domain.Note) error {
	query := `UPDATE notes SET title = $1, content = $2, updated_at = $3
	          WHERE id = $4 AND tenant_id = $5 RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, n.Title, n.Content, time.Now(), n.ID, n.TenantID).Scan(&n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *noteRepository) Delete(ctx context.Context, id, tenantID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *noteRepository) CountByTenant(ctx context.Context, tenantID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes WHERE tenant_id = $1`, tenantID).Scan(&count)
	return count, err
}

func (r *noteRepository) RecentActivity(ctx context.Context, tenantID int32, days int) ([]domain.NoteActivity, error) {
	query := fmt.Sprintf(`SELECT TO_CHAR(DATE(created_at), 'YYYY-MM-DD'), COUNT(*)
	          FROM notes
	          WHERE tenant_id = $1 AND created_at >= NOW() - INTERVAL '%d days'
	          GROUP BY DATE(created_at)
	          ORDER BY DATE(created_at) DESC`, days)
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activity []domain.NoteActivity
	for rows.Next() {
		var a domain.NoteActivity
		if err := rows.Scan(&a.Date, &a.NotesCreated); err != nil {
			return nil, err
		}
		activity = append(activity, a)
	}
	return activity, rows.Err()
}
