package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pooller/pooller-api/internal/model"
	"github.com/pooller/pooller-api/util"
	"github.com/pooller/pooller-api/util/tracing"
	"github.com/pooller/pooller-api/util/values"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Route("/", func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/profile", Handler(api.GetProfile))
		r.Method(http.MethodPut, "/profile", Handler(api.UpdateProfile))
		r.Method(http.MethodDelete, "/account", Handler(api.DeleteAccount))
	})

	return mux
}

func (api *API) GetProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	user, err := api.GetUserByID(r.Context(), userID.String())
	if err != nil {
		return respondWithError(err, "failed to get user profile", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User profile retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       user,
	}
}

func (api *API) UpdateProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	var req model.User
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	req.ID = userID

	err = api.UpdateUserRepo(r.Context(), req)
	if err != nil {
		return respondWithError(err, "failed to update user profile", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "User profile updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       req,
	}
}

func (api *API) DeleteAccount(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	err = api.DeleteUserRepo(r.Context(), userID.String())
	if err != nil {
		return respondWithError(err, "failed to delete account", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Account deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
