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

type PostgresServiceRepository struct {
	db dbx.DBTX
}

func NewPostgresServiceRepository(db dbx.DBTX) *PostgresServiceRepository {
	return &PostgresServiceRepository{db: db}
}

func (r *PostgresServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	query := `SELECT id, name, description, price FROM services ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return services, nil
}

func (r *PostgresServiceRepository) Get(ctx context.Context, id int64) (*models.Service, error) {
	query := `SELECT id, name, description, price FROM services WHERE id = $1`

	s := &models.Service{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.Price)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresServiceRepository) Create(ctx context.Context, service *models.Service) (*models.Service, error) {
	query :=
		`INSERT INTO services (name, description, price)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		service.Name, service.Description, service.Price).Scan(&service.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return service, nil
}

func (r *PostgresServiceRepository) Update(ctx context.Context, service *models.Service) (*models.Service, error) {
	query :=
		`UPDATE services
		 SET name = $1, description = $2, price = $3
		 WHERE id = $4
		 RETURNING id, name, description, price
		 `

	updated := &models.Service{}
	err := r.db.QueryRowContext(ctx, query,
		service.Name, service.Description, service.Price, service.ID).
		Scan(&updated.ID, &updated.Name, &updated.Description, &updated.Price)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresServiceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
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
