// Package catalog contains the repositories for the public site content:
// car stock, product stock, services, sales, team, about-us, and contact
// messages. Each repository is a plain CRUD mapping over a single table.
package catalog

import (
	"context"

	"github.com/grafibook/automotora/internal/server/models"
)

type CarRepository interface {
	List(ctx context.Context) ([]models.Car, error)
	Get(ctx context.Context, id int64) (*models.Car, error)
	Create(ctx context.Context, car *models.Car) (*models.Car, error)
	Update(ctx context.Context, car *models.Car) (*models.Car, error)
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id int64) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) (*models.Service, error)
	Update(ctx context.Context, service *models.Service) (*models.Service, error)
	Delete(ctx context.Context, id int64) error
}

type SaleRepository interface {
	List(ctx context.Context) ([]models.Sale, error)
	Create(ctx context.Context, sale *models.Sale) (*models.Sale, error)
	Delete(ctx context.Context, id int64) error
}

type TeamRepository interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error)
	Update(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error)
	Delete(ctx context.Context, id int64) error
}

type AboutUsRepository interface {
	Get(ctx context.Context) (*models.AboutUs, error)
	Create(ctx context.Context, content *models.AboutUs) (*models.AboutUs, error)
	Update(ctx context.Context, content *models.AboutUs) (*models.AboutUs, error)
	Delete(ctx context.Context, id int64) error
}

type MessageRepository interface {
	List(ctx context.Context) ([]models.Message, error)
	Get(ctx context.Context, id int64) (*models.Message, error)
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	Update(ctx context.Context, message *models.Message) (*models.Message, error)
	Delete(ctx context.Context, id int64) error
}
