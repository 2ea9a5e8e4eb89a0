package services

import (
	"context"
	"fmt"

	"github.com/grafibook/automotora/internal/common"
	"github.com/grafibook/automotora/internal/server/models"
	"github.com/grafibook/automotora/internal/server/repositories/repomanager"
)

// CatalogService fronts the catalog repositories with input validation.
// It deliberately stays thin: the resources are plain table mappings and the
// repositories already translate storage errors into the shared taxonomy.
type CatalogService struct {
	repos repomanager.RepositoryManager
}

func NewCatalogService(repos repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{repos: repos}
}

// --- cars ---

func (s *CatalogService) ListCars(ctx context.Context) ([]models.Car, error) {
	return s.repos.Cars().List(ctx)
}

func (s *CatalogService) GetCar(ctx context.Context, id int64) (*models.Car, error) {
	return s.repos.Cars().Get(ctx, id)
}

func (s *CatalogService) CreateCar(ctx context.Context, car *models.Car) (*models.Car, error) {
	if car.Make == "" || car.Model == "" {
		return nil, fmt.Errorf("%w: make and model are required", common.ErrorValidation)
	}
	if car.Year <= 0 || car.Price < 0 {
		return nil, fmt.Errorf("%w: year and price must be positive", common.ErrorValidation)
	}
	return s.repos.Cars().Create(ctx, car)
}

func (s *CatalogService) UpdateCar(ctx context.Context, car *models.Car) (*models.Car, error) {
	if car.Make == "" || car.Model == "" {
		return nil, fmt.Errorf("%w: make and model are required", common.ErrorValidation)
	}
	return s.repos.Cars().Update(ctx, car)
}

func (s *CatalogService) DeleteCar(ctx context.Context, id int64) error {
	return s.repos.Cars().Delete(ctx, id)
}

// --- products ---

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repos.Products().List(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repos.Products().Get(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return s.repos.Products().Create(ctx, product)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.repos.Products().Delete(ctx, id)
}

// --- services ---

func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.repos.Services().List(ctx)
}

func (s *CatalogService) GetService(ctx context.Context, id int64) (*models.Service, error) {
	return s.repos.Services().Get(ctx, id)
}

func (s *CatalogService) CreateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	if service.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return s.repos.Services().Create(ctx, service)
}

func (s *CatalogService) UpdateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	if service.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return s.repos.Services().Update(ctx, service)
}

func (s *CatalogService) DeleteService(ctx context.Context, id int64) error {
	return s.repos.Services().Delete(ctx, id)
}

// --- sales ---

func (s *CatalogService) ListSales(ctx context.Context) ([]models.Sale, error) {
	return s.repos.Sales().List(ctx)
}

func (s *CatalogService) CreateSale(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	if sale.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.repos.Sales().Create(ctx, sale)
}

func (s *CatalogService) DeleteSale(ctx context.Context, id int64) error {
	return s.repos.Sales().Delete(ctx, id)
}

// --- team ---

func (s *CatalogService) ListTeam(ctx context.Context) ([]models.TeamMember, error) {
	return s.repos.Team().List(ctx)
}

func (s *CatalogService) CreateTeamMember(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	if member.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return s.repos.Team().Create(ctx, member)
}

func (s *CatalogService) UpdateTeamMember(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	if member.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return s.repos.Team().Update(ctx, member)
}

func (s *CatalogService) DeleteTeamMember(ctx context.Context, id int64) error {
	return s.repos.Team().Delete(ctx, id)
}

// --- about us ---

func (s *CatalogService) GetAboutUs(ctx context.Context) (*models.AboutUs, error) {
	return s.repos.AboutUs().Get(ctx)
}

func (s *CatalogService) CreateAboutUs(ctx context.Context, content *models.AboutUs) (*models.AboutUs, error) {
	if content.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.repos.AboutUs().Create(ctx, content)
}

func (s *CatalogService) UpdateAboutUs(ctx context.Context, content *models.AboutUs) (*models.AboutUs, error) {
	if content.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.repos.AboutUs().Update(ctx, content)
}

func (s *CatalogService) DeleteAboutUs(ctx context.Context, id int64) error {
	return s.repos.AboutUs().Delete(ctx, id)
}

// --- messages ---

func (s *CatalogService) ListMessages(ctx context.Context) ([]models.Message, error) {
	return s.repos.Messages().List(ctx)
}

func (s *CatalogService) GetMessage(ctx context.Context, id int64) (*models.Message, error) {
	return s.repos.Messages().Get(ctx, id)
}

func (s *CatalogService) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	if message.Name == "" || message.Email == "" || message.Content == "" {
		return nil, fmt.Errorf("%w: name, email and content are required", common.ErrorValidation)
	}
	return s.repos.Messages().Create(ctx, message)
}

func (s *CatalogService) UpdateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	if message.Name == "" || message.Email == "" || message.Content == "" {
		return nil, fmt.Errorf("%w: name, email and content are required", common.ErrorValidation)
	}
	return s.repos.Messages().Update(ctx, message)
}

func (s *CatalogService) DeleteMessage(ctx context.Context, id int64) error {
	return s.repos.Messages().Delete(ctx, id)
}
