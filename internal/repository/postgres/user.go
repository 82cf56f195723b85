package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, role, tenant_id, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Role, u.TenantID, time.Now()).Scan(&u.ID, &u.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password_hash, role, tenant_id, created_at FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.TenantID, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password_hash, role, tenant_id, created_at FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.TenantID, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.User, error) {
	query := `SELECT u.id, u.email, u.role, u.tenant_id, u.created_at, COUNT(n.id) AS notes_count
	          FROM users u
	          LEFT JOIN notes n ON u.id = n.created_by
	          WHERE u.tenant_id = $1
	          GROUP BY u.id, u.email, u.role, u.tenant_id, u.created_at
	          ORDER BY u.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.TenantID, &u.CreatedAt, &u.NotesCount); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) ListAdminsByTenant(ctx context.Context, tenantID int32) ([]domain.User, error) {
	query := `SELECT id, email, role, tenant_id, created_at FROM users WHERE tenant_id = $1 AND role = $2`
	rows, err := r.db.QueryContext(ctx, query, tenantID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.TenantID, &u.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, u)
	}
	return admins, rows.Err()
}

func (r *userRepository) CountByTenant(ctx context.Context, tenantID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE tenant_id = $1`, tenantID).Scan(&count)
	return count, err
}

func (r *userRepository) Delete(ctx context.Context, id, tenantID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The user's notes go with them.
	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE created_by = $1 AND tenant_id = $2`, id, tenantID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1 AND tenant_id = $2`, id, tenantID)
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

	return tx.Commit()
}
