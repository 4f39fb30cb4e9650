package deps

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pooller/pooller-api/config"
	"github.com/pooller/pooller-api/internal/db"
	"github.com/pooller/pooller-api/internal/session"
	"github.com/pooller/pooller-api/util/websockets"
)

type Dependencies struct {
	DB        *db.DB
	WebSocket *websockets.WebSocketManager
	Session   *session.Mirror
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	websocket := websockets.NewWebSocketManager()
	mirror := session.NewMirror()

	deps := Dependencies{
		DB:        database,
		WebSocket: websocket,
		Session:   mirror,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
