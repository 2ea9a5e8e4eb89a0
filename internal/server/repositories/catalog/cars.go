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

type PostgresCarRepository struct {
	db dbx.DBTX
}

func NewPostgresCarRepository(db dbx.DBTX) *PostgresCarRepository {
	return &PostgresCarRepository{db: db}
}

const carColumns = `id, make, model, year, price, image, color, engine, kms, combustible, description, additional_images`

func scanCar(row interface{ Scan(dest ...any) error }, c *models.Car) error {
	return row.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Price, &c.Image,
		&c.Color, &c.Engine, &c.Kms, &c.Combustible, &c.Description, &c.AdditionalImages)
}

func (r *PostgresCarRepository) List(ctx context.Context) ([]models.Car, error) {
	query := `SELECT ` + carColumns + ` FROM car_stock ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	cars := []models.Car{}
	for rows.Next() {
		var c models.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cars, nil
}

func (r *PostgresCarRepository) Get(ctx context.Context, id int64) (*models.Car, error) {
	query := `SELECT ` + carColumns + ` FROM car_stock WHERE id = $1`

	c := &models.Car{}
	if err := scanCar(r.db.QueryRowContext(ctx, query, id), c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresCarRepository) Create(ctx context.Context, car *models.Car) (*models.Car, error) {
	query :=
		`INSERT INTO car_stock (make, model, year, price, image, color, engine, kms, combustible, description, additional_images)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		car.Make, car.Model, car.Year, car.Price, car.Image, car.Color,
		car.Engine, car.Kms, car.Combustible, car.Description, car.AdditionalImages).Scan(&car.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return car, nil
}

func (r *PostgresCarRepository) Update(ctx context.Context, car *models.Car) (*models.Car, error) {
	query :=
		`UPDATE car_stock
		 SET make = $1, model = $2, year = $3, price = $4, image = $5, color = $6, engine = $7, kms = $8, combustible = $9, description = $10, additional_images = $11
		 WHERE id = $12
		 RETURNING ` + carColumns

	updated := &models.Car{}
	err := scanCar(r.db.QueryRowContext(ctx, query,
		car.Make, car.Model, car.Year, car.Price, car.Image, car.Color, car.Engine,
		car.Kms, car.Combustible, car.Description, car.AdditionalImages, car.ID), updated)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresCarRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM car_stock WHERE id = $1`, id)
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
