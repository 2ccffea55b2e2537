package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/bulbeats/api/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrVoteConflict surfaces when the store exhausts its transaction retry
// budget. Transient: the caller may simply re-cast the vote.
var ErrVoteConflict = errors.New("vote could not be committed, try again")

// ErrInvalidChoice rejects vote values other than like/dislike.
var ErrInvalidChoice = errors.New("vote must be 'like' or 'dislike'")

type VoteService struct {
	firestoreClient *firestore.Client
}

func NewVoteService(firestoreClient *firestore.Client) *VoteService {
	return &VoteService{
		firestoreClient: firestoreClient,
	}
}

// voteDelta computes the counter adjustments for a new choice given the
// voter's existing one. A repeat of the same choice is a no-op; a flip moves
// one count between buckets, never changing likes+dislikes by more than one
// per vote event.
func voteDelta(existing *models.VoteChoice, next models.VoteChoice) (likesDelta, dislikesDelta int, noop bool) {
	if existing != nil && *existing == next {
		return 0, 0, true
	}

	if next == models.VoteLike {
		likesDelta = 1
	} else {
		dislikesDelta = 1
	}

	if existing != nil {
		if *existing == models.VoteLike {
			likesDelta--
		} else {
			dislikesDelta--
		}
	}

	return likesDelta, dislikesDelta, false
}

// CastVote records the voter's current choice for a beat and updates the
// beat's aggregate counters in a single transaction, so concurrent voters on
// the same beat never lose updates and a double-click never double counts.
func (s *VoteService) CastVote(ctx context.Context, beat models.Beat, choice models.VoteChoice, voter models.User) error {
	if !choice.Valid() {
		return ErrInvalidChoice
	}

	beatRef := s.firestoreClient.Collection("beats").Doc(beat.VideoID)
	voteRef := beatRef.Collection("votes").Doc(voter.Slug)

	err := s.firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		voteSnap, err := tx.Get(voteRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to read vote: %w", err)
		}

		var existing *models.VoteChoice
		if voteSnap != nil && voteSnap.Exists() {
			var prior models.Vote
			if err := voteSnap.DataTo(&prior); err != nil {
				return fmt.Errorf("failed to parse vote: %w", err)
			}
			existing = &prior.Choice
		}

		likesDelta, dislikesDelta, noop := voteDelta(existing, choice)
		if noop {
			return nil
		}

		beatSnap, err := tx.Get(beatRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to read beat aggregate: %w", err)
		}

		now := time.Now()
		aggregate := models.BeatAggregate{
			VideoID:      beat.VideoID,
			Title:        beat.Title,
			Thumbnail:    beat.Thumbnail,
			ChannelTitle: beat.ChannelTitle,
			BPM:          beat.BPM,
			TypeBeat:     beat.TypeBeat,
			FirstSeenAt:  now,
		}
		if beatSnap != nil && beatSnap.Exists() {
			if err := beatSnap.DataTo(&aggregate); err != nil {
				return fmt.Errorf("failed to parse beat aggregate: %w", err)
			}
		}

		aggregate.Likes += likesDelta
		aggregate.Dislikes += dislikesDelta
		aggregate.NetVotes = aggregate.Likes - aggregate.Dislikes
		aggregate.LastVoteAt = now

		if err := tx.Set(beatRef, aggregate); err != nil {
			return fmt.Errorf("failed to update beat aggregate: %w", err)
		}

		vote := models.Vote{
			Username: voter.Username,
			Choice:   choice,
			VotedAt:  now,
		}
		if err := tx.Set(voteRef, vote); err != nil {
			return fmt.Errorf("failed to write vote: %w", err)
		}

		return nil
	})

	if err != nil {
		if status.Code(err) == codes.Aborted {
			return ErrVoteConflict
		}
		return err
	}
	return nil
}

// GetLeaderboard returns the top beats by net votes, descending. Tie order
// between equal scores is whatever the store returns.
func (s *VoteService) GetLeaderboard(ctx context.Context, limit int) ([]models.BeatAggregate, error) {
	query := s.firestoreClient.Collection("beats").
		OrderBy("net_votes", firestore.Desc).
		Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var beats []models.BeatAggregate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
		}

		var aggregate models.BeatAggregate
		if err := doc.DataTo(&aggregate); err != nil {
			return nil, fmt.Errorf("failed to parse beat aggregate: %w", err)
		}

		beats = append(beats, aggregate)
	}

	return beats, nil
}
