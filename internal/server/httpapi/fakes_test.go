package httpapi

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/grafibook/automotora/internal/common"
	"github.com/grafibook/automotora/internal/server/models"
	"github.com/grafibook/automotora/internal/server/repositories/catalog"
	"github.com/grafibook/automotora/internal/server/repositories/users"
)

// In-memory repositories backing the handler tests. They mirror the error
// contract of the Postgres implementations.

type fakeUsersRepo struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*models.User
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byName[u.Username]; exists {
		return nil, common.ErrorAlreadyExists
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.byName[u.Username] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeCarsRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.Car
}

func (f *fakeCarsRepo) List(_ context.Context) ([]models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Car{}
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCarsRepo) Get(_ context.Context, id int64) (*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (f *fakeCarsRepo) Create(_ context.Context, car *models.Car) (*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	car.ID = f.nextID
	f.byID[car.ID] = *car
	return car, nil
}

func (f *fakeCarsRepo) Update(_ context.Context, car *models.Car) (*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[car.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	f.byID[car.ID] = *car
	return car, nil
}

func (f *fakeCarsRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeMessagesRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.Message
}

func (f *fakeMessagesRepo) List(_ context.Context) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Message{}
	for _, m := range f.byID {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMessagesRepo) Get(_ context.Context, id int64) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &m, nil
}

func (f *fakeMessagesRepo) Create(_ context.Context, message *models.Message) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	message.ID = f.nextID
	message.CreatedAt = time.Now()
	f.byID[message.ID] = *message
	return message, nil
}

func (f *fakeMessagesRepo) Update(_ context.Context, message *models.Message) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.byID[message.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	message.CreatedAt = existing.CreatedAt
	f.byID[message.ID] = *message
	return message, nil
}

func (f *fakeMessagesRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

// The remaining resources are not exercised end-to-end here; their repos
// just satisfy the interface.

type emptyProductsRepo struct{}

func (emptyProductsRepo) List(context.Context) ([]models.Product, error) {
	return []models.Product{}, nil
}
func (emptyProductsRepo) Get(context.Context, int64) (*models.Product, error) {
	return nil, common.ErrorNotFound
}
func (emptyProductsRepo) Create(_ context.Context, p *models.Product) (*models.Product, error) {
	return p, nil
}
func (emptyProductsRepo) Delete(context.Context, int64) error { return common.ErrorNotFound }

type emptyServicesRepo struct{}

func (emptyServicesRepo) List(context.Context) ([]models.Service, error) {
	return []models.Service{}, nil
}
func (emptyServicesRepo) Get(context.Context, int64) (*models.Service, error) {
	return nil, common.ErrorNotFound
}
func (emptyServicesRepo) Create(_ context.Context, s *models.Service) (*models.Service, error) {
	return s, nil
}
func (emptyServicesRepo) Update(_ context.Context, s *models.Service) (*models.Service, error) {
	return nil, common.ErrorNotFound
}
func (emptyServicesRepo) Delete(context.Context, int64) error { return common.ErrorNotFound }

type emptySalesRepo struct{}

func (emptySalesRepo) List(context.Context) ([]models.Sale, error) { return []models.Sale{}, nil }
func (emptySalesRepo) Create(_ context.Context, s *models.Sale) (*models.Sale, error) {
	return s, nil
}
func (emptySalesRepo) Delete(context.Context, int64) error { return common.ErrorNotFound }

type emptyTeamRepo struct{}

func (emptyTeamRepo) List(context.Context) ([]models.TeamMember, error) {
	return []models.TeamMember{}, nil
}
func (emptyTeamRepo) Create(_ context.Context, m *models.TeamMember) (*models.TeamMember, error) {
	return m, nil
}
func (emptyTeamRepo) Update(_ context.Context, m *models.TeamMember) (*models.TeamMember, error) {
	return nil, common.ErrorNotFound
}
func (emptyTeamRepo) Delete(context.Context, int64) error { return common.ErrorNotFound }

type emptyAboutUsRepo struct{}

func (emptyAboutUsRepo) Get(context.Context) (*models.AboutUs, error) {
	return nil, common.ErrorNotFound
}
func (emptyAboutUsRepo) Create(_ context.Context, a *models.AboutUs) (*models.AboutUs, error) {
	return a, nil
}
func (emptyAboutUsRepo) Update(_ context.Context, a *models.AboutUs) (*models.AboutUs, error) {
	return nil, common.ErrorNotFound
}
func (emptyAboutUsRepo) Delete(context.Context, int64) error { return common.ErrorNotFound }

type fakeRepoManager struct {
	users    *fakeUsersRepo
	cars     *fakeCarsRepo
	messages *fakeMessagesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:    &fakeUsersRepo{byName: map[string]*models.User{}},
		cars:     &fakeCarsRepo{byID: map[int64]models.Car{}},
		messages: &fakeMessagesRepo{byID: map[int64]models.Message{}},
	}
}

func (f *fakeRepoManager) Conn() *sql.DB                       { return nil }
func (f *fakeRepoManager) Close() error                        { return nil }
func (f *fakeRepoManager) RunMigrations(context.Context) error { return nil }
func (f *fakeRepoManager) Users() users.Repository             { return f.users }
func (f *fakeRepoManager) Cars() catalog.CarRepository         { return f.cars }
func (f *fakeRepoManager) Products() catalog.ProductRepository { return emptyProductsRepo{} }
func (f *fakeRepoManager) Services() catalog.ServiceRepository { return emptyServicesRepo{} }
func (f *fakeRepoManager) Sales() catalog.SaleRepository       { return emptySalesRepo{} }
func (f *fakeRepoManager) Team() catalog.TeamRepository        { return emptyTeamRepo{} }
func (f *fakeRepoManager) AboutUs() catalog.AboutUsRepository  { return emptyAboutUsRepo{} }
func (f *fakeRepoManager) Messages() catalog.MessageRepository { return f.messages }
