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

type PostgresTeamRepository struct {
	db dbx.DBTX
}

func NewPostgresTeamRepository(db dbx.DBTX) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

func (r *PostgresTeamRepository) List(ctx context.Context) ([]models.TeamMember, error) {
	query := `SELECT id, name, position FROM team ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	members := []models.TeamMember{}
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Position); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return members, nil
}

func (r *PostgresTeamRepository) Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	query :=
		`INSERT INTO team (name, position)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, member.Name, member.Position).Scan(&member.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return member, nil
}

func (r *PostgresTeamRepository) Update(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	query :=
		`UPDATE team
		 SET name = $1, position = $2
		 WHERE id = $3
		 RETURNING id, name, position
		 `

	updated := &models.TeamMember{}
	err := r.db.QueryRowContext(ctx, query, member.Name, member.Position, member.ID).
		Scan(&updated.ID, &updated.Name, &updated.Position)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresTeamRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM team WHERE id = $1`, id)
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
