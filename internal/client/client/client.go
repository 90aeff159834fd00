package client

import (
	"context"

	"github.com/mpetrenko/authcore/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email, password, name string) error
	Login(ctx context.Context, email, password string) error
	CurrentUser(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	IsLoggedIn() bool
}
