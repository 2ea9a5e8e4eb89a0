package catalog

import (
	"context"
	"fmt"

	"github.com/grafibook/automotora/internal/common"
	"github.com/grafibook/automotora/internal/dbx"
	"github.com/grafibook/automotora/internal/server/models"
)

type PostgresSaleRepository struct {
	db dbx.DBTX
}

func NewPostgresSaleRepository(db dbx.DBTX) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

func (r *PostgresSaleRepository) List(ctx context.Context) ([]models.Sale, error) {
	query := `SELECT id, title, description, price, image FROM sales ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.Image); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sales, nil
}

func (r *PostgresSaleRepository) Create(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	query :=
		`INSERT INTO sales (title, description, price, image)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		sale.Title, sale.Description, sale.Price, sale.Image).Scan(&sale.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sale, nil
}

func (r *PostgresSaleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id)
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
