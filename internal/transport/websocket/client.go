package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Connection serialises writes to one socket. conn.WriteJSON is not safe for
// concurrent use.
type Connection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	// game currently played on this socket, empty before new_game
	gameID string
}

func NewConnection(conn *websocket.Conn) *Connection {
	return &Connection{conn: conn}
}

// SendMessage sends a JSON message to the client
func (c *Connection) SendMessage(message interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}

func (c *Connection) SendError(message string) error {
	return c.SendMessage(domain.ErrorMessage{Type: "error", Message: message})
}

// Ping uses a control frame, which gorilla allows concurrently with writers.
func (c *Connection) Ping() error {
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *Connection) Close() error {
	return c.conn.Close()
}
