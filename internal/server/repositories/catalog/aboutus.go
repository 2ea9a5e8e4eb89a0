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

type PostgresAboutUsRepository struct {
	db dbx.DBTX
}

func NewPostgresAboutUsRepository(db dbx.DBTX) *PostgresAboutUsRepository {
	return &PostgresAboutUsRepository{db: db}
}

// Get returns the current about-us content. The site renders a single
// record; when several exist the oldest one wins.
func (r *PostgresAboutUsRepository) Get(ctx context.Context) (*models.AboutUs, error) {
	query := `SELECT id, title, first_text, subtitle, second_text FROM about_us ORDER BY id LIMIT 1`

	a := &models.AboutUs{}
	err := r.db.QueryRowContext(ctx, query).
		Scan(&a.ID, &a.Title, &a.FirstText, &a.Subtitle, &a.SecondText)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresAboutUsRepository) Create(ctx context.Context, content *models.AboutUs) (*models.AboutUs, error) {
	query :=
		`INSERT INTO about_us (title, first_text, subtitle, second_text)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		content.Title, content.FirstText, content.Subtitle, content.SecondText).Scan(&content.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return content, nil
}

func (r *PostgresAboutUsRepository) Update(ctx context.Context, content *models.AboutUs) (*models.AboutUs, error) {
	query :=
		`UPDATE about_us
		 SET title = $1, first_text = $2, subtitle = $3, second_text = $4
		 WHERE id = $5
		 RETURNING id, title, first_text, subtitle, second_text
		 `

	updated := &models.AboutUs{}
	err := r.db.QueryRowContext(ctx, query,
		content.Title, content.FirstText, content.Subtitle, content.SecondText, content.ID).
		Scan(&updated.ID, &updated.Title, &updated.FirstText, &updated.Subtitle, &updated.SecondText)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresAboutUsRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM about_us WHERE id = $1`, id)
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
