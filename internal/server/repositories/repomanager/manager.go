// Package repomanager constructs and hands out the Postgres repositories.
// The database handle is an explicit dependency injected at construction;
// nothing in the server holds a global connection.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/grafibook/automotora/internal/server/repositories/catalog"
	"github.com/grafibook/automotora/internal/server/repositories/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Close() error
	RunMigrations(ctx context.Context) error

	Users() users.Repository

	Cars() catalog.CarRepository
	Products() catalog.ProductRepository
	Services() catalog.ServiceRepository
	Sales() catalog.SaleRepository
	Team() catalog.TeamRepository
	AboutUs() catalog.AboutUsRepository
	Messages() catalog.MessageRepository
}
