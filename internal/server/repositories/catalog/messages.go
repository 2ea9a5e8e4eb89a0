package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/grafibook/automotora/internal/common"
	"github.com/grafibook/automotora/internal/dbx"
	"github.com/grafibook/automotora/internal/server/models"
)

type PostgresMessageRepository struct {
	db dbx.DBTX
}

func NewPostgresMessageRepository(db dbx.DBTX) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

const messageColumns = `id, name, email, content, reservation_date, created_at`

func scanMessage(row interface{ Scan(dest ...any) error }, m *models.Message) error {
	return row.Scan(&m.ID, &m.Name, &m.Email, &m.Content, &m.ReservationDate, &m.CreatedAt)
}

func (r *PostgresMessageRepository) List(ctx context.Context) ([]models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := scanMessage(rows, &m); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return messages, nil
}

func (r *PostgresMessageRepository) Get(ctx context.Context, id int64) (*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	m := &models.Message{}
	if err := scanMessage(r.db.QueryRowContext(ctx, query, id), m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresMessageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	query :=
		`INSERT INTO messages (name, email, content, reservation_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		message.Name, message.Email, message.Content, message.ReservationDate).
		Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return message, nil
}

func (r *PostgresMessageRepository) Update(ctx context.Context, message *models.Message) (*models.Message, error) {
	query :=
		`UPDATE messages
		 SET name = $1, email = $2, content = $3, reservation_date = $4
		 WHERE id = $5
		 RETURNING ` + messageColumns

	updated := &models.Message{}
	err := scanMessage(r.db.QueryRowContext(ctx, query,
		message.Name, message.Email, message.Content, message.ReservationDate, message.ID), updated)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresMessageRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
