package rest

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pooller/pooller-api/internal/model"
	"github.com/pooller/pooller-api/util"
	"github.com/pooller/pooller-api/util/values"
)

func (api *API) CreatePollHelper(ctx context.Context, req model.CreatePollRequest, creatorID uuid.UUID) (model.CreatePollResponse, string, string, error) {
	if creatorID == uuid.Nil {
		return model.CreatePollResponse{}, values.NotAuthorised, "User not authenticated.", ErrNotAuthenticated
	}

	now := time.Now()
	poll := model.Poll{
		ID:                 util.GenerateUUID(),
		Description:        req.Description,
		Options:            model.BuildPollOptions(req.PollType, req.Options, now),
		CreatorID:          creatorID,
		AllowMultipleVotes: model.AllowsMultipleVotes(req.PollType),
		OriginalPollType:   req.PollType,
	}

	newPoll, err := api.CreatePollRepo(ctx, poll)
	if err != nil {
		return model.CreatePollResponse{}, values.Error, "Failed to create poll", err
	}

	return newPoll, values.Created, "Poll created successfully!", nil
}

// ListPollsHelper swallows store failures: the listing page degrades to "no
// polls" and the error goes to the log only.
func (api *API) ListPollsHelper(ctx context.Context) []model.Poll {
	polls, err := api.ListPollsRepo(ctx, model.ListPollsLimit)
	if err != nil {
		log.Println("error listing polls", err)
		return []model.Poll{}
	}
	if polls == nil {
		polls = []model.Poll{}
	}
	return polls
}

func (api *API) GetPollHelper(ctx context.Context, pollID string) (model.Poll, string, string, error) {
	id, err := util.StringToUUID(pollID)
	if err != nil {
		return model.Poll{}, values.BadRequestBody, "invalid poll ID", err
	}

	poll, err := api.GetPollByIDRepo(ctx, id)
	if err != nil {
		if err == ErrPollNotFound {
			return model.Poll{}, values.NotFound, "Poll not found.", err
		}
		return model.Poll{}, values.Error, "failed to get poll", err
	}

	return poll, values.Success, "Poll retrieved successfully", nil
}

// CastVoteHelper runs the vote preconditions in order, short-circuiting on
// the first failure, then records the vote. Re-voting overwrites the voter's
// previous selection; the (poll_id, voter_id) key makes the write an
// idempotent replacement rather than an accumulating record.
func (api *API) CastVoteHelper(ctx context.Context, pollID string, selectedOptionIDs []string, voterID uuid.UUID) (model.CastVoteResponse, string, string, error) {
	if voterID == uuid.Nil {
		return model.CastVoteResponse{}, values.NotAuthorised, "User not authenticated.", ErrNotAuthenticated
	}

	if !util.NotBlank(pollID) || len(selectedOptionIDs) == 0 {
		return model.CastVoteResponse{}, values.BadRequestBody, "Poll ID and at least one selected option are required.", ErrMissingVoteInput
	}

	id, err := util.StringToUUID(pollID)
	if err != nil {
		return model.CastVoteResponse{}, values.BadRequestBody, "invalid poll ID", err
	}

	poll, err := api.GetPollByIDRepo(ctx, id)
	if err != nil {
		if err == ErrPollNotFound {
			return model.CastVoteResponse{}, values.NotFound, "Poll not found.", err
		}
		return model.CastVoteResponse{}, values.Error, "failed to get poll", err
	}

	if err := poll.ValidateSelection(selectedOptionIDs); err != nil {
		return model.CastVoteResponse{}, values.Unprocessable, err.Error(), err
	}

	vote := model.Vote{
		PollID:            poll.ID,
		VoterID:           voterID,
		SelectedOptionIDs: selectedOptionIDs,
		PollTypeVoted:     poll.OriginalPollType,
	}

	votedAt, err := api.UpsertVoteRepo(ctx, vote)
	if err != nil {
		return model.CastVoteResponse{}, values.Error, "Failed to cast vote", err
	}

	return model.CastVoteResponse{
		PollID:            poll.ID,
		SelectedOptionIDs: selectedOptionIDs,
		VotedAt:           votedAt,
	}, values.Success, "Vote cast successfully!", nil
}
