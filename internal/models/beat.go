package models

import "time"

// VoteChoice is the direction of a swipe vote.
type VoteChoice string

const (
	VoteLike    VoteChoice = "like"
	VoteDislike VoteChoice = "dislike"
)

// Valid reports whether the choice is one of the two accepted values.
func (c VoteChoice) Valid() bool {
	return c == VoteLike || c == VoteDislike
}

// Beat is a search result candidate shown to the user. BPM and TypeBeat are
// best-effort extractions from the video title.
type Beat struct {
	VideoID      string `json:"video_id" firestore:"video_id"`
	Title        string `json:"title" firestore:"title"`
	Thumbnail    string `json:"thumbnail" firestore:"thumbnail"`
	ChannelTitle string `json:"channel_title" firestore:"channel_title"`
	BPM          int    `json:"bpm,omitempty" firestore:"bpm"`
	TypeBeat     string `json:"type_beat,omitempty" firestore:"type_beat"`
}

// Vote is the current choice of one voter for one beat. At most one exists
// per (voter, beat) pair; a flip overwrites it.
type Vote struct {
	Username string     `firestore:"username"`
	Choice   VoteChoice `firestore:"vote"`
	VotedAt  time.Time  `firestore:"voted_at"`
}

// BeatAggregate holds the vote counters for a beat. Likes and dislikes always
// equal the count of vote documents under the beat with the matching choice;
// NetVotes is recomputed from the counters inside the same transaction that
// updates them.
type BeatAggregate struct {
	VideoID      string    `json:"video_id" firestore:"video_id"`
	Title        string    `json:"title" firestore:"title"`
	Thumbnail    string    `json:"thumbnail" firestore:"thumbnail"`
	ChannelTitle string    `json:"channel_title" firestore:"channel_title"`
	BPM          int       `json:"bpm,omitempty" firestore:"bpm"`
	TypeBeat     string    `json:"type_beat,omitempty" firestore:"type_beat"`
	Likes        int       `json:"likes" firestore:"likes"`
	Dislikes     int       `json:"dislikes" firestore:"dislikes"`
	NetVotes     int       `json:"net_votes" firestore:"net_votes"`
	FirstSeenAt  time.Time `json:"first_seen_at" firestore:"first_seen_at"`
	LastVoteAt   time.Time `json:"last_vote_at" firestore:"last_vote_at"`
}
