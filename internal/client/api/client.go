package api

import (
	"context"

	"github.com/ultraupload/ultraupload/internal/client/models"
)

// Result is what a successful login or registration yields.
type Result struct {
	Token string
	User  models.User
}

// Client is the backend contract used by the session manager.
type Client interface {
	Login(ctx context.Context, email, password string) (Result, error)
	Register(ctx context.Context, req models.RegistrationRequest) (Result, error)
}
