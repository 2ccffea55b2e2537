package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/bulbeats/api/internal/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNameTaken signals that the slug was already claimed by a different
// display name. Not an exception: the caller should pick another name.
var ErrNameTaken = errors.New("username is already taken")

// ErrInvalidUsername rejects names that normalize to an empty slug.
var ErrInvalidUsername = errors.New("username must contain at least one letter or digit")

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a display name into a stable key: lowercased, runs of
// non-alphanumerics collapsed to hyphens, leading/trailing hyphens trimmed.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonAlnum.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

type UserService struct {
	firestoreClient *firestore.Client
}

func NewUserService(firestoreClient *firestore.Client) *UserService {
	return &UserService{
		firestoreClient: firestoreClient,
	}
}

// EnsureUser claims the slug for the display name. Slugs are a soft-unique
// namespace keyed by first writer: a new slug is created, the original
// claimant re-enters idempotently (refreshing last_seen), and anyone else is
// refused with ErrNameTaken.
func (s *UserService) EnsureUser(ctx context.Context, username string) (*models.User, error) {
	slug := Slugify(username)
	if slug == "" {
		return nil, ErrInvalidUsername
	}

	userRef := s.firestoreClient.Collection("users").Doc(slug)
	var user models.User

	err := s.firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(userRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to read user: %w", err)
		}

		now := time.Now()
		if snap != nil && snap.Exists() {
			if err := snap.DataTo(&user); err != nil {
				return fmt.Errorf("failed to parse user: %w", err)
			}
			if user.Username != username {
				return ErrNameTaken
			}
			user.LastSeen = now
		} else {
			user = models.User{
				Slug:      slug,
				Username:  username,
				CreatedAt: now,
				LastSeen:  now,
			}
		}

		return tx.Set(userRef, user)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}
