package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pooller/pooller-api/internal/model"
	"github.com/pooller/pooller-api/util"
	"github.com/pooller/pooller-api/util/tracing"
	"github.com/pooller/pooller-api/util/values"
	"github.com/pooller/pooller-api/util/websockets"
)

func (api *API) PollRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.ListPolls))
	mux.Method(http.MethodGet, "/{pollID}", Handler(api.GetPollByID))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.CreatePoll))
		r.Method(http.MethodPost, "/{pollID}/votes", Handler(api.CastVote))
		r.Method(http.MethodGet, "/{pollID}/votes/me", Handler(api.GetMyVote))
	})

	return mux
}

func (api *API) CreatePoll(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreatePollRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	creatorID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "User not authenticated.", values.NotAuthorised, &tc)
	}

	newPoll, status, message, err := api.CreatePollHelper(r.Context(), req, creatorID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	go api.Deps.WebSocket.BroadcastEvent(websockets.Event{
		Type:   websockets.MsgTypePollCreated,
		PollID: newPoll.PollID.String(),
	})

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       newPoll,
	}
}

// ListPolls returns the newest polls, capped at 12. A store failure degrades
// to an empty list rather than an error page.
func (api *API) ListPolls(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	polls := api.ListPollsHelper(r.Context())

	return &ServerResponse{
		Message:    "Polls retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       polls,
	}
}

func (api *API) GetPollByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pollID := chi.URLParam(r, "pollID")

	poll, status, message, err := api.GetPollHelper(r.Context(), pollID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       poll,
	}
}

func (api *API) CastVote(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pollID := chi.URLParam(r, "pollID")

	var req model.CastVoteRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	voterID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "User not authenticated.", values.NotAuthorised, &tc)
	}

	vote, status, message, err := api.CastVoteHelper(r.Context(), pollID, req.SelectedOptionIDs, voterID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	go func() {
		api.Deps.WebSocket.BroadcastEvent(websockets.Event{
			Type:   websockets.MsgTypeVoteUpdate,
			PollID: pollID,
		})
		// Receipt for the voter's own connection, carrying the recorded ballot.
		api.Deps.WebSocket.SendToUser(voterID.String(), websockets.Event{
			Type:    websockets.MsgTypeVoteUpdate,
			PollID:  pollID,
			Payload: vote,
		})
	}()

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       vote,
	}
}

// GetMyVote returns the caller's current vote on a poll, if any.
func (api *API) GetMyVote(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pollID := chi.URLParam(r, "pollID")
	id, err := util.StringToUUID(pollID)
	if err != nil {
		return respondWithError(err, "invalid poll ID", values.BadRequestBody, &tc)
	}

	voterID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "User not authenticated.", values.NotAuthorised, &tc)
	}

	vote, err := api.GetVoteRepo(r.Context(), id, voterID)
	if err != nil {
		if err == ErrVoteNotFound {
			return respondWithError(err, "No vote cast on this poll", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get vote", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Vote retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       vote,
	}
}
