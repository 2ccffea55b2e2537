package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/bulbeats/api/internal/models"
)

type VoteServiceTestSuite struct {
	suite.Suite
}

func choicePtr(c models.VoteChoice) *models.VoteChoice {
	return &c
}

func (suite *VoteServiceTestSuite) TestVoteDelta() {
	tests := []struct {
		name          string
		existing      *models.VoteChoice
		next          models.VoteChoice
		likesDelta    int
		dislikesDelta int
		noop          bool
	}{
		{
			name:       "first like",
			existing:   nil,
			next:       models.VoteLike,
			likesDelta: 1,
		},
		{
			name:          "first dislike",
			existing:      nil,
			next:          models.VoteDislike,
			dislikesDelta: 1,
		},
		{
			name:     "repeated like is a no-op",
			existing: choicePtr(models.VoteLike),
			next:     models.VoteLike,
			noop:     true,
		},
		{
			name:     "repeated dislike is a no-op",
			existing: choicePtr(models.VoteDislike),
			next:     models.VoteDislike,
			noop:     true,
		},
		{
			name:          "flip like to dislike",
			existing:      choicePtr(models.VoteLike),
			next:          models.VoteDislike,
			likesDelta:    -1,
			dislikesDelta: 1,
		},
		{
			name:          "flip dislike to like",
			existing:      choicePtr(models.VoteDislike),
			next:          models.VoteLike,
			likesDelta:    1,
			dislikesDelta: -1,
		},
	}

	for _, tc := range tests {
		suite.T().Run(tc.name, func(t *testing.T) {
			likes, dislikes, noop := voteDelta(tc.existing, tc.next)
			assert.Equal(t, tc.likesDelta, likes)
			assert.Equal(t, tc.dislikesDelta, dislikes)
			assert.Equal(t, tc.noop, noop)

			// A single vote event never changes likes+dislikes by more than one.
			total := likes + dislikes
			assert.True(t, total == 0 || total == 1)
		})
	}
}

func (suite *VoteServiceTestSuite) TestVoteSequenceNetEffect() {
	// like then dislike on the same beat: the flip undoes the like, so the
	// combined effect is likes unchanged and dislikes one higher, with
	// netVotes recomputed from the counters.
	likes, dislikes := 5, 2

	l1, d1, noop := voteDelta(nil, models.VoteLike)
	suite.False(noop)
	likes, dislikes = likes+l1, dislikes+d1

	l2, d2, noop := voteDelta(choicePtr(models.VoteLike), models.VoteDislike)
	suite.False(noop)
	likes, dislikes = likes+l2, dislikes+d2

	suite.Equal(5, likes)
	suite.Equal(3, dislikes)
	suite.Equal(2, likes-dislikes)
}

func (suite *VoteServiceTestSuite) TestIdempotentDoubleLike() {
	likes := 0

	l1, _, noop := voteDelta(nil, models.VoteLike)
	suite.False(noop)
	likes += l1

	// Second like from the same voter commits nothing.
	_, _, noop = voteDelta(choicePtr(models.VoteLike), models.VoteLike)
	suite.True(noop)

	suite.Equal(1, likes)
}

func (suite *VoteServiceTestSuite) TestChoiceValidation() {
	assert.True(suite.T(), models.VoteLike.Valid())
	assert.True(suite.T(), models.VoteDislike.Valid())
	assert.False(suite.T(), models.VoteChoice("upvote").Valid())
	assert.False(suite.T(), models.VoteChoice("").Valid())
}

func TestVoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoteServiceTestSuite))
}
