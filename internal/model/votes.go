package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrSingleSelection is returned when more than one option is selected on a
// single-select poll.
var ErrSingleSelection = errors.New("only one option can be selected for this type of poll")

// Vote is a voter's current selection for a poll. Votes are keyed by
// (poll_id, voter_id); casting again replaces the previous selection, so at
// most one row exists per voter per poll.
type Vote struct {
	PollID            uuid.UUID `json:"poll_id"`
	VoterID           uuid.UUID `json:"voter_id"`
	SelectedOptionIDs []string  `json:"selected_option_ids"`
	PollTypeVoted     string    `json:"poll_type_voted"`
	VotedAt           time.Time `json:"voted_at"`
}

type CastVoteRequest struct {
	SelectedOptionIDs []string `json:"selected_option_ids"`
}

type CastVoteResponse struct {
	PollID            uuid.UUID `json:"poll_id"`
	SelectedOptionIDs []string  `json:"selected_option_ids"`
	VotedAt           time.Time `json:"voted_at"`
}
