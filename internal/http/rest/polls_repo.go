package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pooller/pooller-api/internal/model"
)

var (
	ErrPollNotFound     = errors.New("poll not found")
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrMissingVoteInput = errors.New("poll id and at least one selected option are required")
)

// CreatePollRepo inserts a new poll. Options are stored as a JSONB document
// on the poll row; the store assigns created_at.
func (api *API) CreatePollRepo(ctx context.Context, poll model.Poll) (model.CreatePollResponse, error) {
	optionsJSON, err := json.Marshal(poll.Options)
	if err != nil {
		return model.CreatePollResponse{}, fmt.Errorf("marshalling poll options: %w", err)
	}

	stmt := `
        INSERT INTO polls (
            id, description, options, creator_id, allow_multiple_votes, original_poll_type
        ) VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	var newPoll model.CreatePollResponse
	err = api.DB.QueryRow(ctx, stmt,
		poll.ID, poll.Description, optionsJSON, poll.CreatorID,
		poll.AllowMultipleVotes, poll.OriginalPollType,
	).Scan(&newPoll.PollID, &newPoll.CreatedAt)
	if err != nil {
		return model.CreatePollResponse{}, fmt.Errorf("creating poll: %w", err)
	}
	return newPoll, nil
}

// ListPollsRepo returns polls newest first, capped at limit.
func (api *API) ListPollsRepo(ctx context.Context, limit int) ([]model.Poll, error) {
	stmt := `
        SELECT id, description, options, creator_id, created_at,
               allow_multiple_votes, original_poll_type
        FROM polls
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := api.DB.Query(ctx, stmt, limit)
	if err != nil {
		return nil, fmt.Errorf("querying polls: %w", err)
	}
	defer rows.Close()

	var polls []model.Poll
	for rows.Next() {
		poll, err := scanPoll(rows)
		if err != nil {
			return nil, err
		}
		polls = append(polls, poll)
	}
	return polls, rows.Err()
}

func (api *API) GetPollByIDRepo(ctx context.Context, id uuid.UUID) (model.Poll, error) {
	stmt := `
        SELECT id, description, options, creator_id, created_at,
               allow_multiple_votes, original_poll_type
        FROM polls
        WHERE id = $1
    `
	row := api.DB.QueryRow(ctx, stmt, id)

	poll, err := scanPoll(row)
	if err == pgx.ErrNoRows {
		return model.Poll{}, ErrPollNotFound
	}
	if err != nil {
		return model.Poll{}, err
	}
	return poll, nil
}

func scanPoll(row pgx.Row) (model.Poll, error) {
	var poll model.Poll
	var optionsJSON []byte

	err := row.Scan(
		&poll.ID, &poll.Description, &optionsJSON, &poll.CreatorID,
		&poll.CreatedAt, &poll.AllowMultipleVotes, &poll.OriginalPollType,
	)
	if err != nil {
		return model.Poll{}, err
	}

	if err := json.Unmarshal(optionsJSON, &poll.Options); err != nil {
		return model.Poll{}, fmt.Errorf("unmarshalling poll options: %w", err)
	}
	return poll, nil
}
