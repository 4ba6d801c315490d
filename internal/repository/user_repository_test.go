package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"cartly-be/internal/apperr"
)

func TestUserRepoCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("a@b.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(itemID, "a@b.com", "hash", time.Now()))

	user, err := repo.Create("a@b.com", "hash")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserRepoCreate_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	// The unique index refuses the insert; the handler never raced a lookup
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("a@b.com", "hash").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create("a@b.com", "hash")
	if apperr.KindOf(err) != apperr.KindAlreadyExists {
		t.Fatalf("expected already-exists, got %v", err)
	}
}

func TestUserRepoFindByEmail_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT id, email").
		WithArgs("ghost@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail("ghost@b.com")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}
