package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Message types
const (
	MsgTypeSubscribe     = "subscribe"
	MsgTypePollCreated   = "poll_created"
	MsgTypeVoteUpdate    = "vote_update"
	MsgTypeSessionUpdate = "session_update"
)

// Client represents a connected WebSocket user
type Client struct {
	Conn   *websocket.Conn
	UserID string
}

type WebSocketManager struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *websocket.Conn
	send       chan DirectMessage
	mu         sync.Mutex
}

// DirectMessage carries a payload to a single connected user.
type DirectMessage struct {
	ReceiverID string `json:"receiver_id"`
	Payload    []byte `json:"payload"`
}

// Message struct for incoming WebSocket messages
type Message struct {
	Type   string `json:"type"`
	UserID string `json:"user_id,omitempty"`
}

// Event is the outgoing envelope for poll, vote and session updates.
type Event struct {
	Type    string      `json:"type"`
	PollID  string      `json:"poll_id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}
