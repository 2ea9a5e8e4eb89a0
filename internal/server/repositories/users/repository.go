package users

import (
	"context"

	"github.com/grafibook/automotora/internal/server/models"
)

// Repository is the credential store: exact-match lookup by username and
// account creation. The authentication path never updates or deletes users.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
