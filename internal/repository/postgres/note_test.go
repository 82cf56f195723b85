package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"notes-saas-backend/internal/domain"
)

func TestNoteRepository_CreateWithTrialQuota(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNoteRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		n := &domain.Note{Title: "t", Content: "c", TenantID: 10, CreatedBy: 5}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE tenants SET notes_created_count = notes_created_count \\+ 1").
			WithArgs(int32(10), int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO notes").
			WithArgs(n.Title, n.Content, n.TenantID, n.CreatedBy, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(1, time.Now(), time.Now()))
		mock.ExpectCommit()

		err := repo.CreateWithTrialQuota(ctx, n, 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), n.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QuotaExhausted", func(t *testing.T) {
		n := &domain.Note{Title: "t", Content: "c", TenantID: 10, CreatedBy: 5}

		// Conditional increment touches no row once the counter has
		// reached the limit; nothing else may run in the transaction.
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE tenants SET notes_created_count = notes_created_count \\+ 1").
			WithArgs(int32(10), int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CreateWithTrialQuota(ctx, n, 3)
		assert.ErrorIs(t, err, domain.ErrTrialExpired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNoteRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "content", "tenant_id", "created_by", "email", "created_at", "updated_at"}).
			AddRow(7, "t", "c", 10, 5, "user@acme.test", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM notes n JOIN users u").
			WithArgs(int32(7), int32(10)).
			WillReturnRows(rows)

		note, err := repo.GetByID(ctx, 7, 10)
		assert.NoError(t, err)
		assert.Equal(t, "user@acme.test", note.CreatedByEmail)
	})

	t.Run("CrossTenantNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM notes n JOIN users u").
			WithArgs(int32(7), int32(20)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "tenant_id", "created_by", "email", "created_at", "updated_at"}))

		note, err := repo.GetByID(ctx, 7, 20)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, note)
	})
}

func TestNoteRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNoteRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM notes WHERE id = \\$1 AND tenant_id = \\$2").
			WithArgs(int32(7), int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 7, 10))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM notes WHERE id = \\$1 AND tenant_id = \\$2").
			WithArgs(int32(7), int32(20)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 7, 20), domain.ErrNotFound)
	})
}
