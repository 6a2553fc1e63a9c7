package users

import (
	"context"

	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	Exists(ctx context.Context, login string) (bool, error)
}
