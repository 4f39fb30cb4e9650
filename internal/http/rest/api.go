package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pooller/pooller-api/config"
	deps "github.com/pooller/pooller-api/internal/debs"
	smtp "github.com/pooller/pooller-api/util/email"
	"github.com/pooller/pooller-api/util/values"
	"github.com/pooller/pooller-api/util/websockets"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
	Mailer *smtp.Mailer
	DB     *pgxpool.Pool

	sessionCancel func()
}

// Init wires the session mirror into the websocket feed: every session change
// published by the auth callbacks is broadcast as a session_update event.
// The subscription is released in Shutdown.
func (api *API) Init() {
	states, cancel := api.Deps.Session.Subscribe()
	api.sessionCancel = cancel

	go func() {
		for state := range states {
			api.Deps.WebSocket.BroadcastEvent(websockets.Event{
				Type:    websockets.MsgTypeSessionUpdate,
				Payload: state,
			})
		}
	}()
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)

	mux.Get("/",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Pooller API"))
		},
	)

	mux.Mount("/auth", api.AuthRoutes())
	mux.Mount("/polls", api.PollRoutes())
	mux.Mount("/users", api.UserRoutes())
	mux.Get("/ws", api.Deps.WebSocket.HandleConnections)

	return mux
}

func (a *API) Shutdown() error {
	if a.sessionCancel != nil {
		a.sessionCancel()
	}

	err := a.Server.Shutdown(context.Background())
	if err != nil {
		return err
	}
	return nil
}
