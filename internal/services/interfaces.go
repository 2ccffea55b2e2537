package services

import (
	"context"

	"github.com/bulbeats/api/internal/models"
)

// UserServiceInterface defines the interface for identity operations
type UserServiceInterface interface {
	EnsureUser(ctx context.Context, username string) (*models.User, error)
}

// VoteServiceInterface defines the interface for the vote ledger
type VoteServiceInterface interface {
	CastVote(ctx context.Context, beat models.Beat, choice models.VoteChoice, voter models.User) error
	GetLeaderboard(ctx context.Context, limit int) ([]models.BeatAggregate, error)
}

// Ensure the implementations satisfy the interfaces
var (
	_ UserServiceInterface = (*UserService)(nil)
	_ VoteServiceInterface = (*VoteService)(nil)
)
