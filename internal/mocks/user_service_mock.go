package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bulbeats/api/internal/models"
	"github.com/bulbeats/api/internal/services"
)

type MockUserService struct {
	mock.Mock
}

// Ensure MockUserService implements UserServiceInterface
var _ services.UserServiceInterface = (*MockUserService)(nil)

func (m *MockUserService) EnsureUser(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
