package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/grafibook/automotora/internal/common"
	"github.com/grafibook/automotora/internal/server/models"
)

func newMessageRepoWithMock(t *testing.T) (*PostgresMessageRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresMessageRepository(db), mock, db
}

func TestMessageCreate(t *testing.T) {
	repo, mock, db := newMessageRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO messages`).
		WithArgs("Jane", "jane@example.com", "Is the Ranger still available?", "2026-09-12").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	m := &models.Message{
		Name: "Jane", Email: "jane@example.com",
		Content: "Is the Ranger still available?", ReservationDate: "2026-09-12",
	}
	got, err := repo.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 3 || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestMessageList_NewestFirst(t *testing.T) {
	repo, mock, db := newMessageRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "content", "reservation_date", "created_at"}).
		AddRow(int64(2), "Bob", "bob@example.com", "second", "", time.Now()).
		AddRow(int64(1), "Ann", "ann@example.com", "first", "2026-09-20", time.Now().Add(-time.Hour))

	mock.ExpectQuery(`SELECT .+ FROM messages ORDER BY created_at DESC`).WillReturnRows(rows)

	msgs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(msgs) != 2 || msgs[0].ID != 2 {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}

func TestMessageUpdate(t *testing.T) {
	repo, mock, db := newMessageRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "content", "reservation_date", "created_at"}).
		AddRow(int64(5), "Jane", "jane@example.com", "corrected text", "2026-09-13", now)

	mock.ExpectQuery(`UPDATE messages`).
		WithArgs("Jane", "jane@example.com", "corrected text", "2026-09-13", int64(5)).
		WillReturnRows(rows)

	m := &models.Message{
		ID: 5, Name: "Jane", Email: "jane@example.com",
		Content: "corrected text", ReservationDate: "2026-09-13",
	}
	got, err := repo.Update(context.Background(), m)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Content != "corrected text" || got.ReservationDate != "2026-09-13" {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestMessageUpdate_NotFound(t *testing.T) {
	repo, mock, db := newMessageRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE messages`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.Message{ID: 404, Name: "x", Email: "x@x", Content: "x"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestMessageGet_NotFound(t *testing.T) {
	repo, mock, db := newMessageRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM messages WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 9)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
