package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/grafibook/automotora/internal/server/migrations"
	"github.com/grafibook/automotora/internal/server/repositories/catalog"
	"github.com/grafibook/automotora/internal/server/repositories/users"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	users    users.Repository
	cars     catalog.CarRepository
	products catalog.ProductRepository
	services catalog.ServiceRepository
	sales    catalog.SaleRepository
	team     catalog.TeamRepository
	aboutUs  catalog.AboutUsRepository
	messages catalog.MessageRepository
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		cars:     catalog.NewPostgresCarRepository(db),
		products: catalog.NewPostgresProductRepository(db),
		services: catalog.NewPostgresServiceRepository(db),
		sales:    catalog.NewPostgresSaleRepository(db),
		team:     catalog.NewPostgresTeamRepository(db),
		aboutUs:  catalog.NewPostgresAboutUsRepository(db),
		messages: catalog.NewPostgresMessageRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresRepositoryManager) Conn() *sql.DB { return m.db }

func (m *PostgresRepositoryManager) Close() error { return m.db.Close() }

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Users() users.Repository { return m.users }

func (m *PostgresRepositoryManager) Cars() catalog.CarRepository         { return m.cars }
func (m *PostgresRepositoryManager) Products() catalog.ProductRepository { return m.products }
func (m *PostgresRepositoryManager) Services() catalog.ServiceRepository { return m.services }
func (m *PostgresRepositoryManager) Sales() catalog.SaleRepository       { return m.sales }
func (m *PostgresRepositoryManager) Team() catalog.TeamRepository        { return m.team }
func (m *PostgresRepositoryManager) AboutUs() catalog.AboutUsRepository  { return m.aboutUs }
func (m *PostgresRepositoryManager) Messages() catalog.MessageRepository { return m.messages }
