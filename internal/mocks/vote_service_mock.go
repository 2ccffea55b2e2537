package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bulbeats/api/internal/models"
	"github.com/bulbeats/api/internal/services"
)

type MockVoteService struct {
	mock.Mock
}

// Ensure MockVoteService implements VoteServiceInterface
var _ services.VoteServiceInterface = (*MockVoteService)(nil)

func (m *MockVoteService) CastVote(ctx context.Context, beat models.Beat, choice models.VoteChoice, voter models.User) error {
	args := m.Called(ctx, beat, choice, voter)
	return args.Error(0)
}

func (m *MockVoteService) GetLeaderboard(ctx context.Context, limit int) ([]models.BeatAggregate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BeatAggregate), args.Error(1)
}
