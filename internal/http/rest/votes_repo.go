package rest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pooller/pooller-api/internal/model"
)

var ErrVoteNotFound = errors.New("vote not found")

// UpsertVoteRepo records a vote keyed by (poll_id, voter_id). A repeat vote
// from the same voter replaces the previous row: last write wins, no history.
func (api *API) UpsertVoteRepo(ctx context.Context, vote model.Vote) (time.Time, error) {
	stmt := `
        INSERT INTO votes (poll_id, voter_id, selected_option_ids, poll_type_voted, voted_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (poll_id, voter_id) DO UPDATE
        SET selected_option_ids = EXCLUDED.selected_option_ids,
            poll_type_voted = EXCLUDED.poll_type_voted,
            voted_at = NOW()
        RETURNING voted_at
    `
	var votedAt time.Time
	err := api.DB.QueryRow(ctx, stmt,
		vote.PollID, vote.VoterID, vote.SelectedOptionIDs, vote.PollTypeVoted,
	).Scan(&votedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("upserting vote: %w", err)
	}
	return votedAt, nil
}

func (api *API) GetVoteRepo(ctx context.Context, pollID, voterID uuid.UUID) (model.Vote, error) {
	stmt := `
        SELECT poll_id, voter_id, selected_option_ids, poll_type_voted, voted_at
        FROM votes
        WHERE poll_id = $1 AND voter_id = $2
    `
	var vote model.Vote
	err := api.DB.QueryRow(ctx, stmt, pollID, voterID).Scan(
		&vote.PollID,
		&vote.VoterID,
		&vote.SelectedOptionIDs,
		&vote.PollTypeVoted,
		&vote.VotedAt,
	)
	if err == pgx.ErrNoRows {
		return model.Vote{}, ErrVoteNotFound
	}
	if err != nil {
		return model.Vote{}, fmt.Errorf("getting vote: %w", err)
	}
	return vote, nil
}
